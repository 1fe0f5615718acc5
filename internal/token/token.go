// Package token resolves the Hugging Face Hub access token used for
// authenticated clones.
//
// The provisioner never prompts. The credential is resolved once at
// startup from, in order: an explicit value (command line flag), the
// HF_TOKEN and HUGGING_FACE_HUB_TOKEN environment variables, and the
// token file maintained by the Hub's own tooling. The first source
// that yields a value wins, and the winning source is recorded on the
// token for diagnostics.
package token

import "errors"

// Common errors returned by token resolution and storage.
var (
	// ErrTokenNotFound indicates that a source holds no token.
	ErrTokenNotFound = errors.New("token not found")

	// ErrTokenInvalid indicates that a token value is unusable.
	ErrTokenInvalid = errors.New("token is invalid")
)

// Token is a Hub access credential together with the name of the
// source it was resolved from.
type Token struct {
	Value  string
	Source string
}

// IsZero reports whether no token was resolved.
func (t Token) IsZero() bool {
	return t.Value == ""
}

// Source is a single place a token may come from.
type Source interface {
	// Resolve returns the token held by this source. It returns
	// ErrTokenNotFound when the source has no token.
	Resolve() (Token, error)

	// Name identifies the source in logs and token metadata.
	Name() string
}

// Resolve returns the first token found across sources, in order.
// It returns ErrTokenNotFound when no source holds one; any other
// error aborts the chain immediately.
func Resolve(sources ...Source) (Token, error) {
	for _, s := range sources {
		t, err := s.Resolve()
		if err == nil {
			return t, nil
		}
		if !errors.Is(err, ErrTokenNotFound) {
			return Token{}, err
		}
	}
	return Token{}, ErrTokenNotFound
}

// DefaultSources returns the standard resolution chain: the explicit
// value first, then the process environment, then the Hub token file.
func DefaultSources(explicit string) []Source {
	return []Source{
		StaticSource{Value: explicit},
		EnvSource{},
		FileSource{},
	}
}
