package schema

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/google/uuid"

	"github.com/gobeaver/envkit/env"
)

// Kind is the target type of a declared field.
type Kind int

const (
	KindString Kind = iota
	KindBool
	KindInt
	KindUint
	KindFloat
	KindDuration
	KindTime
	KindURL
	KindUUID
	KindStrings
)

// String returns the Go type a Kind materializes as.
func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindBool:
		return "bool"
	case KindInt:
		return "int64"
	case KindUint:
		return "uint64"
	case KindFloat:
		return "float64"
	case KindDuration:
		return "time.Duration"
	case KindTime:
		return "time.Time"
	case KindURL:
		return "*url.URL"
	case KindUUID:
		return "uuid.UUID"
	case KindStrings:
		return "[]string"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// zero is the value an optional, unset field carries in the record.
func (k Kind) zero() any {
	switch k {
	case KindString:
		return ""
	case KindBool:
		return false
	case KindInt:
		return int64(0)
	case KindUint:
		return uint64(0)
	case KindFloat:
		return float64(0)
	case KindDuration:
		return time.Duration(0)
	case KindTime:
		return time.Time{}
	case KindURL:
		return (*url.URL)(nil)
	case KindUUID:
		return uuid.Nil
	case KindStrings:
		return []string(nil)
	default:
		return nil
	}
}

// parse converts a raw environment value into the Kind's Go type.
func (k Kind) parse(raw string) (any, error) {
	switch k {
	case KindString:
		return raw, nil
	case KindBool:
		return env.ParseAs[bool](raw)
	case KindInt:
		return env.ParseAs[int64](raw)
	case KindUint:
		return env.ParseAs[uint64](raw)
	case KindFloat:
		return env.ParseAs[float64](raw)
	case KindDuration:
		return env.ParseAs[time.Duration](raw)
	case KindTime:
		return env.ParseAs[time.Time](raw)
	case KindURL:
		return env.ParseAs[*url.URL](raw)
	case KindUUID:
		return env.ParseAs[uuid.UUID](raw)
	case KindStrings:
		return env.ParseAs[[]string](raw)
	default:
		return nil, fmt.Errorf("schema: no parser for %s", k)
	}
}

// Field is one declared specification: an environment variable, the record
// field it populates, and the type its value is parsed into. Fields are
// immutable once declared.
type Field struct {
	name       string
	variable   string
	kind       Kind
	optional   bool
	hasDefault bool
	defaultVal string
	doc        string
}

// Name returns the record field identifier.
func (f Field) Name() string { return f.name }

// Variable returns the environment variable the field reads.
func (f Field) Variable() string { return f.variable }

// Kind returns the declared target type.
func (f Field) Kind() Kind { return f.kind }

// Doc returns the field's documentation line, if any.
func (f Field) Doc() string { return f.doc }

// FieldOption refines a field specification.
type FieldOption func(*Field)

// Default supplies a raw value used when the variable is unset. It is parsed
// with the same rules as an environment value.
func Default(value string) FieldOption {
	return func(f *Field) {
		f.hasDefault = true
		f.defaultVal = value
	}
}

// Optional leaves the field at its zero value when the variable is unset
// instead of failing construction.
func Optional() FieldOption {
	return func(f *Field) { f.optional = true }
}

// Doc attaches a one-line description, shown by Usage.
func Doc(text string) FieldOption {
	return func(f *Field) { f.doc = text }
}

func newField(name, variable string, kind Kind, opts []FieldOption) Field {
	f := Field{name: name, variable: variable, kind: kind}
	for _, opt := range opts {
		opt(&f)
	}
	return f
}

// String declares a string field read from variable.
func String(name, variable string, opts ...FieldOption) Field {
	return newField(name, variable, KindString, opts)
}

// Bool declares a bool field read from variable.
func Bool(name, variable string, opts ...FieldOption) Field {
	return newField(name, variable, KindBool, opts)
}

// Int declares an int64 field read from variable.
func Int(name, variable string, opts ...FieldOption) Field {
	return newField(name, variable, KindInt, opts)
}

// Uint declares a uint64 field read from variable.
func Uint(name, variable string, opts ...FieldOption) Field {
	return newField(name, variable, KindUint, opts)
}

// Float declares a float64 field read from variable.
func Float(name, variable string, opts ...FieldOption) Field {
	return newField(name, variable, KindFloat, opts)
}

// Duration declares a time.Duration field read from variable.
func Duration(name, variable string, opts ...FieldOption) Field {
	return newField(name, variable, KindDuration, opts)
}

// Time declares a time.Time field read from variable in RFC 3339 form.
func Time(name, variable string, opts ...FieldOption) Field {
	return newField(name, variable, KindTime, opts)
}

// URL declares a *url.URL field read from variable.
func URL(name, variable string, opts ...FieldOption) Field {
	return newField(name, variable, KindURL, opts)
}

// UUID declares a uuid.UUID field read from variable.
func UUID(name, variable string, opts ...FieldOption) Field {
	return newField(name, variable, KindUUID, opts)
}

// Strings declares a []string field read from variable as a comma-separated
// list.
func Strings(name, variable string, opts ...FieldOption) Field {
	return newField(name, variable, KindStrings, opts)
}

// Schema is an ordered, validated list of field specifications. It is fixed
// at declaration time; only Construct touches the environment.
type Schema struct {
	fields []Field
}

// New validates the declared fields and returns the schema. Field
// identifiers must be unique and non-empty, and every field must name an
// environment variable. Variable names need not be unique: two fields may
// read the same variable.
func New(fields ...Field) (*Schema, error) {
	seen := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		if f.name == "" {
			return nil, ErrEmptyFieldName
		}
		if f.variable == "" {
			return nil, fmt.Errorf("field %q: %w", f.name, ErrEmptyVariable)
		}
		if _, dup := seen[f.name]; dup {
			return nil, &DuplicateFieldError{Name: f.name}
		}
		seen[f.name] = struct{}{}
	}
	return &Schema{fields: append([]Field(nil), fields...)}, nil
}

// MustNew is New, panicking on a declaration error.
func MustNew(fields ...Field) *Schema {
	s, err := New(fields...)
	if err != nil {
		panic(err)
	}
	return s
}

// Fields returns a copy of the declared specifications in order.
func (s *Schema) Fields() []Field {
	return append([]Field(nil), s.fields...)
}

// Construct performs one synchronous pass over the declared fields: resolve
// the variable, parse the value, assign. It returns a fully populated
// record or a typed error; there is no partial result. Accepted options are
// the env package's (env.WithPrefix, env.WithDotenv, env.CollectAll,
// env.WithLogger).
func (s *Schema) Construct(opts ...env.Option) (*Record, error) {
	o := env.NewOptions(opts...)
	if err := o.Seed(); err != nil {
		return nil, err
	}

	rec := &Record{
		fields:  make(map[string]Field, len(s.fields)),
		values:  make(map[string]any, len(s.fields)),
		present: make(map[string]bool, len(s.fields)),
	}
	var errs []error
	fail := func(err error) error {
		if !o.CollectAll {
			return err
		}
		errs = append(errs, err)
		return nil
	}

	for _, f := range s.fields {
		rec.fields[f.name] = f

		raw, err := o.Resolve(f.variable)
		if err != nil {
			var missing *env.MissingError
			if !errors.As(err, &missing) {
				return nil, err
			}
			switch {
			case f.hasDefault:
				raw = f.defaultVal
			case f.optional:
				rec.values[f.name] = f.kind.zero()
				continue
			default:
				if err := fail(err); err != nil {
					return nil, err
				}
				continue
			}
		}

		value, err := f.kind.parse(raw)
		if err != nil {
			perr := &env.ParseError{
				Variable: o.Prefix + f.variable,
				Value:    raw,
				Type:     f.kind.String(),
				Err:      err,
			}
			if err := fail(perr); err != nil {
				return nil, err
			}
			continue
		}
		rec.values[f.name] = value
		rec.present[f.name] = true
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return rec, nil
}

// MustConstruct is Construct, panicking on failure.
func (s *Schema) MustConstruct(opts ...env.Option) *Record {
	rec, err := s.Construct(opts...)
	if err != nil {
		panic(err)
	}
	return rec
}

// Usage renders a table of the declared variables, their types, whether
// they are required, and their doc lines. Intended for startup failure
// messages and -help output.
func (s *Schema) Usage() string {
	var b strings.Builder
	tw := tabwriter.NewWriter(&b, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "VARIABLE\tTYPE\tREQUIRED\tDESCRIPTION")
	for _, f := range s.fields {
		required := "yes"
		switch {
		case f.hasDefault:
			required = fmt.Sprintf("no (default %q)", f.defaultVal)
		case f.optional:
			required = "no"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", f.variable, f.kind, required, f.doc)
	}
	tw.Flush()
	return b.String()
}
