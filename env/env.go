package env

import (
	"errors"
	"os"
	"reflect"
	"strings"

	"go.uber.org/zap"

	"github.com/gobeaver/envkit/dotenv"
)

// Options controls how declared environment variables are resolved.
type Options struct {
	// Prefix is prepended to every declared variable name.
	Prefix string

	// Dotenv lists .env files to seed the process environment with before
	// any lookup. Files that do not exist are skipped. Nil disables dotenv
	// loading entirely.
	Dotenv []string

	// CollectAll gathers every field failure instead of aborting on the
	// first one. The returned error joins all of them.
	CollectAll bool

	// Logger, when set, traces each variable lookup at debug level.
	Logger *zap.Logger
}

// Option mutates Options.
type Option func(*Options)

// NewOptions applies opts to a zero Options value.
func NewOptions(opts ...Option) *Options {
	o := &Options{}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithPrefix prepends prefix to every declared variable name, so a field
// tagged `env:"PORT"` loaded with WithPrefix("MYAPP_") reads MYAPP_PORT.
func WithPrefix(prefix string) Option {
	return func(o *Options) { o.Prefix = prefix }
}

// WithDotenv seeds the process environment from the named .env files before
// resolving any variable. Without arguments it loads "./.env". Files that do
// not exist are ignored; variables already present in the environment win.
func WithDotenv(files ...string) Option {
	return func(o *Options) {
		if len(files) == 0 {
			files = []string{".env"}
		}
		o.Dotenv = files
	}
}

// CollectAll reports every missing or unparseable variable instead of
// stopping at the first one.
func CollectAll() Option {
	return func(o *Options) { o.CollectAll = true }
}

// WithLogger traces variable resolution at debug level.
func WithLogger(logger *zap.Logger) Option {
	return func(o *Options) { o.Logger = logger }
}

// Seed loads the configured .env files into the process environment. Load
// calls it automatically; it is exported for callers that resolve variables
// themselves.
func (o *Options) Seed() error {
	if o.Dotenv == nil {
		return nil
	}
	return dotenv.LoadOptional(o.Dotenv...)
}

// Resolve looks up one declared variable, applying the prefix. It reports
// a MissingError when the variable is absent from the environment; an empty
// value is present, not missing.
func (o *Options) Resolve(name string) (string, error) {
	full := o.Prefix + name
	raw, ok := os.LookupEnv(full)
	if !ok {
		return "", &MissingError{Variable: full}
	}
	if o.Logger != nil {
		o.Logger.Debug("environment variable resolved",
			zap.String("variable", full),
		)
	}
	return raw, nil
}

// Load populates cfg from the process environment. cfg must be a non-nil
// pointer to a struct. Every exported field tagged `env:"NAME"` is resolved
// and parsed into the field's type; untagged struct fields are walked
// recursively. See the package documentation for the tag grammar.
//
// Construction is all-or-nothing: on error cfg must not be used. By default
// the first failure aborts the pass in declaration order; CollectAll returns
// every failure joined.
func Load(cfg any, opts ...Option) error {
	o := NewOptions(opts...)
	if err := o.Seed(); err != nil {
		return err
	}

	rv := reflect.ValueOf(cfg)
	if rv.Kind() != reflect.Pointer || rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
		return ErrNotStructPointer
	}

	var errs []error
	if err := loadStruct(rv.Elem(), o, &errs); err != nil {
		return err
	}
	return errors.Join(errs...)
}

// MustLoad is Load, panicking on error. It mirrors treating an incomplete
// environment as a fatal startup precondition.
func MustLoad(cfg any, opts ...Option) {
	if err := Load(cfg, opts...); err != nil {
		panic(err)
	}
}

// loadStruct walks the exported fields of v. In fail-fast mode the first
// field error is returned; in collect mode field errors accumulate in errs
// and only non-field errors (bad declarations) are returned.
func loadStruct(v reflect.Value, o *Options, errs *[]error) error {
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if !sf.IsExported() {
			continue
		}
		fv := v.Field(i)

		tag, ok := sf.Tag.Lookup("env")
		if !ok {
			// Untagged struct fields group related variables.
			switch {
			case sf.Type.Kind() == reflect.Struct:
				if err := loadStruct(fv, o, errs); err != nil {
					return err
				}
			case sf.Type.Kind() == reflect.Pointer && sf.Type.Elem().Kind() == reflect.Struct:
				if fv.IsNil() {
					fv.Set(reflect.New(sf.Type.Elem()))
				}
				if err := loadStruct(fv.Elem(), o, errs); err != nil {
					return err
				}
			}
			continue
		}
		if tag == "-" {
			continue
		}

		spec, err := parseTag(tag)
		if err != nil {
			return err
		}
		if err := loadField(fv, sf, spec, o); err != nil {
			if !o.CollectAll {
				return err
			}
			*errs = append(*errs, err)
		}
	}
	return nil
}

// tagSpec is one parsed `env` tag: the declared variable name plus modifiers.
type tagSpec struct {
	name       string
	optional   bool
	hasDefault bool
	defaultVal string
	separator  string
}

func parseTag(tag string) (tagSpec, error) {
	parts := strings.Split(tag, ",")
	spec := tagSpec{name: parts[0]}
	if spec.name == "" {
		return spec, ErrEmptyTag
	}
	for _, part := range parts[1:] {
		switch {
		case part == "optional":
			spec.optional = true
		case strings.HasPrefix(part, "default:"):
			spec.hasDefault = true
			spec.defaultVal = strings.TrimPrefix(part, "default:")
		case strings.HasPrefix(part, "separator:"):
			spec.separator = strings.TrimPrefix(part, "separator:")
		}
	}
	return spec, nil
}

func loadField(fv reflect.Value, sf reflect.StructField, spec tagSpec, o *Options) error {
	name := o.Prefix + spec.name
	source := "environment"

	raw, ok := os.LookupEnv(name)
	if !ok {
		switch {
		case spec.hasDefault:
			raw = spec.defaultVal
			source = "default"
		case spec.optional:
			if o.Logger != nil {
				o.Logger.Debug("optional environment variable not set",
					zap.String("variable", name),
					zap.String("field", sf.Name),
				)
			}
			return nil
		default:
			return &MissingError{Variable: name}
		}
	}

	if err := setValue(fv, raw, spec.separator); err != nil {
		var unsupported *UnsupportedTypeError
		if errors.As(err, &unsupported) {
			unsupported.Field = sf.Name
			return unsupported
		}
		return &ParseError{Variable: name, Value: raw, Type: sf.Type.String(), Err: err}
	}

	if o.Logger != nil {
		o.Logger.Debug("environment variable loaded",
			zap.String("variable", name),
			zap.String("field", sf.Name),
			zap.String("source", source),
		)
	}
	return nil
}
