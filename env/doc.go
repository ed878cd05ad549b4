// Package env populates typed configuration structs from process environment
// variables with per-field type casting.
//
// Applications declare a plain struct whose fields carry `env` tags naming the
// environment variable each field is read from. Load walks the struct, looks
// up every declared variable, parses its string value into the field's type,
// and assigns it. Construction is all-or-nothing: a declared variable that is
// unset or unparseable fails the whole call with a typed error, never a
// silently defaulted or partially filled struct.
//
// # Basic Usage
//
// Declare the configuration shape and load it at startup:
//
//	type Config struct {
//	    YourName string `env:"YOUR_NAME"`
//	    YourAge  uint32 `env:"YOUR_AGE"`
//	}
//
//	var cfg Config
//	if err := env.Load(&cfg); err != nil {
//	    log.Fatal(err)
//	}
//
// With YOUR_NAME=Brad and YOUR_AGE=20 set in the environment, cfg.YourName is
// "Brad" and cfg.YourAge is 20.
//
// # Tag Grammar
//
// The `env` tag names the variable and accepts comma-separated modifiers:
//
//	Field string `env:"VAR_NAME"`                  // required
//	Field int    `env:"VAR_NAME,default:8080"`     // fall back when unset
//	Field bool   `env:"VAR_NAME,optional"`         // zero value when unset
//	Field []string `env:"VAR_NAME,separator:|"`    // slice separator (default ",")
//	Field string `env:"-"`                         // never loaded
//
// Declared fields are required: if the variable is not present in the
// environment and no default is given, Load fails with a MissingError naming
// the variable. A variable set to the empty string is present, not missing.
// Default values cannot contain commas; the comma ends the modifier.
//
// # Supported Types
//
// Conversion covers string, bool, all integer and unsigned integer widths,
// float32/float64, time.Duration, time.Time (RFC 3339), url.URL and *url.URL,
// net.IP, uuid.UUID, slices of any supported element type, []byte (raw), and
// any type implementing encoding.TextUnmarshaler. A tagged field of any other
// type is an UnsupportedTypeError.
//
// # Options
//
// Load accepts functional options:
//
//	err := env.Load(&cfg,
//	    env.WithPrefix("MYAPP_"),   // look up MYAPP_VAR_NAME
//	    env.WithDotenv(),           // seed the environment from .env first
//	    env.CollectAll(),           // report every failing field, not the first
//	    env.WithLogger(logger),     // trace lookups at debug level
//	)
//
// By default the first missing or unparseable variable aborts the pass in
// declaration order. CollectAll gathers every field error and returns them
// joined, which gives complete diagnostics for multi-field configs.
//
// # Error Handling
//
// Failures are typed and can be inspected with errors.As:
//
//	var missing *env.MissingError
//	if errors.As(err, &missing) {
//	    log.Fatalf("set %s before starting", missing.Variable)
//	}
//
// MustLoad panics instead of returning an error, for programs that treat an
// incomplete environment as a startup precondition:
//
//	var cfg Config
//	env.MustLoad(&cfg)
//
// # Nested Structs
//
// Untagged struct fields (and pointers to structs) are walked recursively, so
// related variables can be grouped:
//
//	type Config struct {
//	    Database struct {
//	        Host string `env:"DB_HOST"`
//	        Port int    `env:"DB_PORT,default:5432"`
//	    }
//	}
package env
