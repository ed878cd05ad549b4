package env

import (
	"encoding"
	"net/url"
	"reflect"
	"strconv"
	"strings"
	"time"
)

var (
	durationType = reflect.TypeOf(time.Duration(0))
	urlType      = reflect.TypeOf(url.URL{})
	urlPtrType   = reflect.TypeOf(&url.URL{})
)

// ParseAs converts a single raw string into T using the same conversion rules
// Load applies to tagged struct fields.
//
//	age, err := env.ParseAs[uint32]("20")
//	addr, err := env.ParseAs[*url.URL]("https://example.com")
func ParseAs[T any](raw string) (T, error) {
	var out T
	if err := setValue(reflect.ValueOf(&out).Elem(), raw, defaultSeparator); err != nil {
		var zero T
		return zero, err
	}
	return out, nil
}

const defaultSeparator = ","

// setValue converts raw into v. The separator applies to slice elements.
func setValue(v reflect.Value, raw, sep string) error {
	t := v.Type()

	// Types strconv cannot express come first. time.Duration would otherwise
	// be caught by the Int64 kind, url.URL by the struct kind.
	switch t {
	case durationType:
		d, err := time.ParseDuration(raw)
		if err != nil {
			return err
		}
		v.Set(reflect.ValueOf(d))
		return nil
	case urlType:
		u, err := url.Parse(raw)
		if err != nil {
			return err
		}
		v.Set(reflect.ValueOf(*u))
		return nil
	case urlPtrType:
		u, err := url.Parse(raw)
		if err != nil {
			return err
		}
		v.Set(reflect.ValueOf(u))
		return nil
	}

	// time.Time, net.IP, uuid.UUID and user-defined parseable types all come
	// through their TextUnmarshaler implementations.
	if v.CanAddr() {
		if tu, ok := v.Addr().Interface().(encoding.TextUnmarshaler); ok {
			return tu.UnmarshalText([]byte(raw))
		}
	}

	switch t.Kind() {
	case reflect.String:
		v.SetString(raw)
	case reflect.Bool:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return err
		}
		v.SetBool(b)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		i, err := strconv.ParseInt(raw, 10, t.Bits())
		if err != nil {
			return err
		}
		v.SetInt(i)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		u, err := strconv.ParseUint(raw, 10, t.Bits())
		if err != nil {
			return err
		}
		v.SetUint(u)
	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(raw, t.Bits())
		if err != nil {
			return err
		}
		v.SetFloat(f)
	case reflect.Slice:
		return setSlice(v, raw, sep)
	case reflect.Pointer:
		elem := reflect.New(t.Elem())
		if err := setValue(elem.Elem(), raw, sep); err != nil {
			return err
		}
		v.Set(elem)
	default:
		return &UnsupportedTypeError{Type: t.String()}
	}
	return nil
}

func setSlice(v reflect.Value, raw, sep string) error {
	t := v.Type()

	// []byte carries the raw value, it is not a separated list.
	if t.Elem().Kind() == reflect.Uint8 {
		v.SetBytes([]byte(raw))
		return nil
	}

	if sep == "" {
		sep = defaultSeparator
	}
	parts := strings.Split(raw, sep)
	out := reflect.MakeSlice(t, len(parts), len(parts))
	for i, part := range parts {
		if err := setValue(out.Index(i), part, sep); err != nil {
			return err
		}
	}
	v.Set(out)
	return nil
}
