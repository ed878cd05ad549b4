package gen

import (
	"errors"
	"fmt"
	"go/token"
	"strings"
	"unicode"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

// Standard errors for the gen package
var (
	ErrNoPackage = errors.New("gen: manifest declares no package")
	ErrNoType    = errors.New("gen: manifest declares no type")
)

// DuplicateFieldError reports a field name declared more than once in a
// manifest.
type DuplicateFieldError struct {
	Name string
}

func (e *DuplicateFieldError) Error() string {
	return fmt.Sprintf("gen: field %q declared more than once", e.Name)
}

// UnknownTypeError reports a field whose declared type has no generation
// rule.
type UnknownTypeError struct {
	Field string
	Type  string
}

func (e *UnknownTypeError) Error() string {
	return fmt.Sprintf("gen: field %q has unsupported type %q", e.Field, e.Type)
}

// Manifest is the declarative input: the package and type to generate and
// the ordered field specifications.
type Manifest struct {
	// Package is the Go package the generated file belongs to.
	Package string `yaml:"package"`

	// Type is the name of the generated struct.
	Type string `yaml:"type"`

	// Prefix, when set, is prepended to every field's variable name at
	// generation time.
	Prefix string `yaml:"prefix"`

	// Fields are the specifications, in declaration order.
	Fields []Field `yaml:"fields"`
}

// Field is one specification: the environment variable, the struct field it
// populates, and the Go type its value is parsed into.
type Field struct {
	Env       string `yaml:"env"`
	Name      string `yaml:"name"`
	Type      string `yaml:"type"`
	Default   string `yaml:"default"`
	Optional  bool   `yaml:"optional"`
	Separator string `yaml:"separator"`
	Doc       string `yaml:"doc"`
}

// typeImports maps every supported manifest type to the import it needs
// beyond the env package, if any.
var typeImports = map[string]string{
	"string":  "",
	"bool":    "",
	"int":     "", "int8": "", "int16": "", "int32": "", "int64": "",
	"uint":    "", "uint8": "", "uint16": "", "uint32": "", "uint64": "",
	"float32": "", "float64": "",
	"time.Duration": "time",
	"time.Time":     "time",
	"*url.URL":      "net/url",
	"net.IP":        "net",
	"uuid.UUID":     "github.com/google/uuid",
	"[]string":      "",
	"[]int":         "",
	"[]byte":        "",
}

// ParseManifest decodes and validates a YAML manifest.
func ParseManifest(data []byte) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("gen: decoding manifest: %w", err)
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

// Validate checks the manifest without generating anything. All declaration
// errors, including field name collisions, surface here.
func (m *Manifest) Validate() error {
	if m.Package == "" {
		return ErrNoPackage
	}
	if !token.IsIdentifier(m.Package) {
		return fmt.Errorf("gen: package %q is not a valid identifier", m.Package)
	}
	if m.Type == "" {
		return ErrNoType
	}
	if !isExportedIdentifier(m.Type) {
		return fmt.Errorf("gen: type %q is not an exported identifier", m.Type)
	}

	seen := make(map[string]struct{}, len(m.Fields))
	for _, f := range m.Fields {
		if !isExportedIdentifier(f.Name) {
			return fmt.Errorf("gen: field name %q is not an exported identifier", f.Name)
		}
		if _, dup := seen[f.Name]; dup {
			return &DuplicateFieldError{Name: f.Name}
		}
		seen[f.Name] = struct{}{}

		if f.Env == "" {
			return fmt.Errorf("gen: field %q names no environment variable", f.Name)
		}
		if _, ok := typeImports[f.Type]; !ok {
			return &UnknownTypeError{Field: f.Name, Type: f.Type}
		}
		// The comma ends a tag modifier, so these values cannot carry one.
		if strings.Contains(f.Default, ",") {
			return fmt.Errorf("gen: field %q: default value must not contain a comma", f.Name)
		}
		if strings.Contains(f.Separator, ",") || strings.Contains(f.Env, ",") {
			return fmt.Errorf("gen: field %q: variable and separator must not contain a comma", f.Name)
		}
	}
	return nil
}

func isExportedIdentifier(s string) bool {
	if !token.IsIdentifier(s) {
		return false
	}
	r, _ := utf8.DecodeRuneInString(s)
	return unicode.IsUpper(r)
}
