package main

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/gobeaver/envkit/env"
)

// Config is populated entirely from the process environment.
// Try: YOUR_NAME=Brad YOUR_AGE=20 go run basic.go
type Config struct {
	YourName string        `env:"YOUR_NAME"`
	YourAge  uint32        `env:"YOUR_AGE"`
	Timeout  time.Duration `env:"TIMEOUT,default:30s"`
	Debug    bool          `env:"DEBUG,optional"`
}

func main() {
	var cfg Config
	if err := env.Load(&cfg, env.WithDotenv()); err != nil {
		var missing *env.MissingError
		if errors.As(err, &missing) {
			log.Fatalf("set %s before starting", missing.Variable)
		}
		log.Fatal(err)
	}

	fmt.Printf("Hello, %s\n", cfg.YourName)
	if cfg.YourAge >= 18 {
		fmt.Println("Voting age")
	} else {
		fmt.Println("Too young to vote")
	}
	fmt.Printf("timeout=%s debug=%v\n", cfg.Timeout, cfg.Debug)
}
