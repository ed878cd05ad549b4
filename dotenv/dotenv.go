// Package dotenv seeds the process environment from .env files.
//
// It is a thin veneer over github.com/joho/godotenv that the env and schema
// packages use to make dotenv loading an opt-in resolution step. Variables
// already present in the environment always win over file contents, matching
// twelve-factor precedence; Overload exists for the rare tooling case where
// the file should win.
//
//	if err := dotenv.Load(".env", ".env.local"); err != nil {
//	    log.Fatal(err)
//	}
package dotenv

import (
	"errors"
	"io"
	"io/fs"

	"github.com/joho/godotenv"
)

// Load reads the named files into the process environment without
// overwriting variables that are already set. Without arguments it loads
// "./.env". A missing file is an error; use LoadOptional to tolerate it.
func Load(files ...string) error {
	return godotenv.Load(files...)
}

// Overload is Load, but file contents overwrite existing variables.
func Overload(files ...string) error {
	return godotenv.Overload(files...)
}

// LoadOptional is Load, skipping files that do not exist. Construction
// options use it so a checked-in config can name a .env file that only
// exists on developer machines.
func LoadOptional(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return err
		}
	}
	return nil
}

// Parse reads .env syntax from r and returns the key/value pairs without
// touching the process environment.
func Parse(r io.Reader) (map[string]string, error) {
	return godotenv.Parse(r)
}
