package dotenv

import (
	"errors"
	"os"
	"strings"
)

// Environment is the key/value table assignments are applied to.
type Environment interface {
	Lookup(key string) (string, bool)
	Set(key, value string) error
}

// OSEnvironment applies assignments to the process environment.
type OSEnvironment struct{}

func (OSEnvironment) Lookup(key string) (string, bool) {
	return os.LookupEnv(key)
}

func (OSEnvironment) Set(key, value string) error {
	return os.Setenv(key, value)
}

var errInvalidKey = errors.New("invalid environment key")

// MapEnvironment is an in-memory Environment. It rejects the same keys
// os.Setenv does.
type MapEnvironment map[string]string

func (m MapEnvironment) Lookup(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}

func (m MapEnvironment) Set(key, value string) error {
	if key == "" || strings.ContainsAny(key, "=\x00") || strings.ContainsRune(value, 0) {
		return errInvalidKey
	}
	m[key] = value
	return nil
}
