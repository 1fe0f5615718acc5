package token

import (
	"fmt"
	"os"
	"strings"
)

// Environment variables consulted by EnvSource, in precedence order.
// Both names are honored by the Hub's own client libraries.
var envVars = []string{"HF_TOKEN", "HUGGING_FACE_HUB_TOKEN"}

// StaticSource holds an explicitly supplied token value, typically
// from a command line flag. An empty value resolves to
// ErrTokenNotFound so a StaticSource can sit unconditionally at the
// head of a chain.
type StaticSource struct {
	Value string
}

// Name identifies the source as an explicit flag value.
func (s StaticSource) Name() string {
	return "flag"
}

// Resolve returns the static value.
func (s StaticSource) Resolve() (Token, error) {
	value := strings.TrimSpace(s.Value)
	if value == "" {
		return Token{}, ErrTokenNotFound
	}
	return Token{Value: value, Source: s.Name()}, nil
}

// EnvSource reads the token from the process environment.
type EnvSource struct{}

// Name identifies the source as the environment.
func (e EnvSource) Name() string {
	return "env"
}

// Resolve returns the first non-empty token variable.
func (e EnvSource) Resolve() (Token, error) {
	for _, key := range envVars {
		if value := strings.TrimSpace(os.Getenv(key)); value != "" {
			return Token{Value: value, Source: fmt.Sprintf("env:%s", key)}, nil
		}
	}
	return Token{}, ErrTokenNotFound
}

// FileSource reads the token from the Hub token file. An empty Path
// means the default location (see DefaultTokenPath).
type FileSource struct {
	Path string
}

// Name identifies the source as the token file.
func (f FileSource) Name() string {
	return "file"
}

// Resolve loads the stored token, if any.
func (f FileSource) Resolve() (Token, error) {
	return FileStore{Path: f.Path}.Load()
}
