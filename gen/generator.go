package gen

import (
	"bytes"
	"fmt"
	"go/format"
	"sort"
	"strings"
	"text/template"
)

// envImport is the package the generated construction routine delegates to.
const envImport = "github.com/gobeaver/envkit/env"

const fileTemplate = `// Code generated by envgen. DO NOT EDIT.

package {{.Package}}

import (
{{.ImportBlock}}
)

// {{.Type}} is populated from the process environment.
type {{.Type}} struct {
{{- range .Fields}}
	// {{.Comment}}
	{{.Name}} {{.GoType}} {{.Tag}}
{{- end}}
}

// Load{{.Type}} reads every declared environment variable and returns a
// fully populated {{.Type}}. The first variable that is unset or cannot be
// parsed into its field type fails the whole call.
func Load{{.Type}}(opts ...env.Option) (*{{.Type}}, error) {
	cfg := &{{.Type}}{}
	if err := env.Load(cfg, opts...); err != nil {
		return nil, err
	}
	return cfg, nil
}

// MustLoad{{.Type}} is Load{{.Type}}, panicking on error.
func MustLoad{{.Type}}(opts ...env.Option) *{{.Type}} {
	cfg, err := Load{{.Type}}(opts...)
	if err != nil {
		panic(err)
	}
	return cfg
}
`

var fileTmpl = template.Must(template.New("file").Parse(fileTemplate))

type fileData struct {
	Package     string
	Type        string
	ImportBlock string
	Fields      []fieldData
}

type fieldData struct {
	Name    string
	GoType  string
	Comment string
	Tag     string
}

// Generate renders the manifest into gofmt-formatted Go source. The
// manifest must already validate; Generate validates again so it is safe on
// a hand-built Manifest value.
func Generate(m *Manifest) ([]byte, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}

	data := fileData{
		Package:     m.Package,
		Type:        m.Type,
		ImportBlock: importBlock(m),
		Fields:      make([]fieldData, 0, len(m.Fields)),
	}
	for _, f := range m.Fields {
		comment := fmt.Sprintf("%s is read from %s.", f.Name, m.Prefix+f.Env)
		if f.Doc != "" {
			comment += " " + f.Doc
		}
		data.Fields = append(data.Fields, fieldData{
			Name:    f.Name,
			GoType:  f.Type,
			Comment: comment,
			Tag:     tagLiteral(m.Prefix, f),
		})
	}

	var buf bytes.Buffer
	if err := fileTmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("gen: rendering %s: %w", m.Type, err)
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("gen: formatting %s: %w", m.Type, err)
	}
	return src, nil
}

// tagLiteral renders one field's struct tag in the env package's grammar.
func tagLiteral(prefix string, f Field) string {
	tag := prefix + f.Env
	if f.Optional {
		tag += ",optional"
	}
	if f.Default != "" {
		tag += ",default:" + f.Default
	}
	if f.Separator != "" {
		tag += ",separator:" + f.Separator
	}
	return "`env:\"" + tag + "\"`"
}

// importBlock renders the import paths the generated file needs, standard
// library first.
func importBlock(m *Manifest) string {
	std := map[string]struct{}{}
	third := map[string]struct{}{envImport: {}}
	for _, f := range m.Fields {
		imp := typeImports[f.Type]
		if imp == "" {
			continue
		}
		if strings.Contains(strings.SplitN(imp, "/", 2)[0], ".") {
			third[imp] = struct{}{}
		} else {
			std[imp] = struct{}{}
		}
	}

	var lines []string
	for _, group := range []map[string]struct{}{std, third} {
		if len(group) == 0 {
			continue
		}
		paths := make([]string, 0, len(group))
		for p := range group {
			paths = append(paths, p)
		}
		sort.Strings(paths)
		if len(lines) > 0 {
			lines = append(lines, "")
		}
		for _, p := range paths {
			lines = append(lines, fmt.Sprintf("\t%q", p))
		}
	}
	return strings.Join(lines, "\n")
}
