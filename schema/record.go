package schema

import (
	"fmt"
	"net/url"
	"time"

	"github.com/google/uuid"
)

// Record is a configuration record materialized by Construct. It is
// immutable: the construction pass is the only writer, and every accessor
// reads the already-parsed value.
//
// The typed accessors panic when asked for an undeclared field or the wrong
// type for a declared field. Both are programmer errors in the consuming
// code, equivalent to a compile error on the struct-tag path.
type Record struct {
	fields  map[string]Field
	values  map[string]any
	present map[string]bool
}

// Value returns the parsed value of a field and whether the field is
// declared. Optional fields that were unset report their zero value.
func (r *Record) Value(name string) (any, bool) {
	v, ok := r.values[name]
	return v, ok
}

// Has reports whether the field's variable was present in the environment
// (or filled from its default). It is false only for unset optional fields.
func (r *Record) Has(name string) bool {
	return r.present[name]
}

func (r *Record) typed(name string, kind Kind) any {
	f, ok := r.fields[name]
	if !ok {
		panic(fmt.Sprintf("schema: record has no field %q", name))
	}
	if f.kind != kind {
		panic(fmt.Sprintf("schema: field %q is %s, not %s", name, f.kind, kind))
	}
	return r.values[name]
}

// String returns a KindString field.
func (r *Record) String(name string) string {
	return r.typed(name, KindString).(string)
}

// Bool returns a KindBool field.
func (r *Record) Bool(name string) bool {
	return r.typed(name, KindBool).(bool)
}

// Int returns a KindInt field.
func (r *Record) Int(name string) int64 {
	return r.typed(name, KindInt).(int64)
}

// Uint returns a KindUint field.
func (r *Record) Uint(name string) uint64 {
	return r.typed(name, KindUint).(uint64)
}

// Float returns a KindFloat field.
func (r *Record) Float(name string) float64 {
	return r.typed(name, KindFloat).(float64)
}

// Duration returns a KindDuration field.
func (r *Record) Duration(name string) time.Duration {
	return r.typed(name, KindDuration).(time.Duration)
}

// Time returns a KindTime field.
func (r *Record) Time(name string) time.Time {
	return r.typed(name, KindTime).(time.Time)
}

// URL returns a KindURL field. It is nil for an unset optional field.
func (r *Record) URL(name string) *url.URL {
	return r.typed(name, KindURL).(*url.URL)
}

// UUID returns a KindUUID field.
func (r *Record) UUID(name string) uuid.UUID {
	return r.typed(name, KindUUID).(uuid.UUID)
}

// Strings returns a KindStrings field.
func (r *Record) Strings(name string) []string {
	v := r.typed(name, KindStrings).([]string)
	return append([]string(nil), v...)
}
