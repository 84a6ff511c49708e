package server

import (
	"github.com/joho/godotenv"
)

// DefaultEnvFiles are read at startup; earlier files win
var DefaultEnvFiles = []string{"local.env", ".env"}

// LoadEnvFiles loads each file that exists and returns the ones loaded. Variables that are
// already set are never overwritten, so earlier files and the real environment take
// precedence.
func LoadEnvFiles(paths ...string) []string {
	loaded := make([]string, 0, len(paths))
	for _, path := range paths {
		if err := godotenv.Load(path); err != nil {
			continue
		}
		loaded = append(loaded, path)
	}
	return loaded
}
