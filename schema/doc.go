// Package schema declares environment-backed configuration at runtime and
// materializes it into immutable records.
//
// Where the env package maps variables onto a struct the caller compiles in,
// schema builds the record shape from an ordered list of field
// specifications, each naming an environment variable, a field identifier,
// and a target type. That suits tools that learn their configuration shape
// at startup, plugin hosts, and generated code.
//
// # Declaring a Schema
//
//	s, err := schema.New(
//	    schema.String("your_name", "YOUR_NAME"),
//	    schema.Uint("your_age", "YOUR_AGE"),
//	    schema.Duration("timeout", "TIMEOUT", schema.Default("30s")),
//	)
//
// Field identifiers must be unique within one declaration; New rejects a
// duplicate with a DuplicateFieldError before any environment access
// happens. Two fields may read the same variable. A zero-field schema is
// valid and constructs trivially.
//
// # Constructing a Record
//
// Construct performs a single synchronous pass over the fields in declared
// order: look up the variable, parse its value into the declared type,
// assign. The first unset variable fails with env.MissingError, the first
// unparseable value with env.ParseError; no partial record is ever
// returned. Construction only reads the process environment, so repeated
// calls against an unchanged environment yield identical records.
//
//	rec, err := s.Construct()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(rec.String("your_name")) // "Brad"
//	fmt.Println(rec.Uint("your_age"))    // 20
//
// Construct accepts the env package's options (env.WithPrefix,
// env.WithDotenv, env.CollectAll, env.WithLogger). MustConstruct panics on
// failure for programs that treat configuration as a startup precondition.
//
// # Records
//
// A Record is immutable after construction. Typed accessors (String, Int,
// Bool, Duration, ...) panic when given an undeclared field name or the
// wrong type for a field; that is a programmer error of the same class as
// misspelling a struct field, not a runtime condition. Value and Has offer
// non-panicking inspection.
package schema
