// Package dotenv loads .env files into the process environment.
package dotenv

import (
	"errors"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

// DefaultFile is read by LoadDefault
const DefaultFile = ".env"

// Load reads the named .env files and sets their variables in the
// environment. Variables that are already set keep their values.
func Load(filenames ...string) error {
	return godotenv.Load(filenames...)
}

// LoadIfExists loads filename and reports whether it was found. A missing
// file is not an error.
func LoadIfExists(filename string) (bool, error) {
	if _, err := os.Stat(filename); errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err := Load(filename); err != nil {
		return true, err
	}
	return true, nil
}

// LoadDefault loads .env file from the current directory
func LoadDefault() (bool, error) {
	return LoadIfExists(DefaultFile)
}
