package main

import (
	"fmt"
	"log"

	"github.com/gobeaver/envkit/schema"
)

func main() {
	// The record shape is declared at runtime, one specification per
	// environment variable.
	s := schema.MustNew(
		schema.String("your_name", "YOUR_NAME", schema.Doc("display name")),
		schema.Uint("your_age", "YOUR_AGE"),
		schema.Duration("timeout", "TIMEOUT", schema.Default("30s")),
	)

	rec, err := s.Construct()
	if err != nil {
		log.Printf("configuration error: %v", err)
		log.Fatalf("expected variables:\n%s", s.Usage())
	}

	fmt.Printf("Hello, %s\n", rec.String("your_name"))
	if rec.Uint("your_age") >= 18 {
		fmt.Println("Voting age")
	}
	fmt.Printf("timeout=%s\n", rec.Duration("timeout"))
}
