// Package gen expands a declarative manifest of environment-variable field
// specifications into Go source: a configuration struct definition plus the
// construction routine that populates it.
//
// The manifest is YAML, one entry per field:
//
//	package: appconfig
//	type: Configuration
//	fields:
//	  - env: YOUR_NAME
//	    name: YourName
//	    type: string
//	  - env: YOUR_AGE
//	    name: YourAge
//	    type: uint32
//	  - env: TIMEOUT
//	    name: Timeout
//	    type: time.Duration
//	    default: "30s"
//	    doc: upstream request budget
//
// Generate renders and gofmt-formats a file containing the struct (fields
// tagged for the env package, each carrying a doc comment naming its source
// variable) and LoadConfiguration / MustLoadConfiguration constructors:
//
//	m, err := gen.ParseManifest(data)
//	src, err := gen.Generate(m)
//
// Validation happens entirely at generation time: package, type, and field
// names must be Go identifiers (field names exported), field names must be
// unique, and types must come from the supported set. An identifier
// collision is therefore reported when the code is generated, never when it
// runs.
//
// The envgen command wraps this package for go:generate use:
//
//	//go:generate envgen -manifest env.yaml -out zz_config.go
package gen
