package token

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	tokenFileName = "token"
	hfHomeEnv     = "HF_HOME"
)

// DefaultTokenPath returns the location of the Hub token file:
// $HF_HOME/token when HF_HOME is set, ~/.cache/huggingface/token
// otherwise. This is where the Hub's own CLI stores the credential,
// so a token configured either way is shared.
func DefaultTokenPath() (string, error) {
	if hfHome := os.Getenv(hfHomeEnv); hfHome != "" {
		return filepath.Join(hfHome, tokenFileName), nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate home directory: %w", err)
	}
	return filepath.Join(home, ".cache", "huggingface", tokenFileName), nil
}

// FileStore reads and writes the Hub token file. The file holds the
// bare token value; surrounding whitespace is ignored on load.
type FileStore struct {
	// Path of the token file. Empty means DefaultTokenPath.
	Path string
}

func (s FileStore) path() (string, error) {
	if s.Path != "" {
		return s.Path, nil
	}
	return DefaultTokenPath()
}

// Load reads the stored token. It returns ErrTokenNotFound when the
// file does not exist or holds only whitespace.
func (s FileStore) Load() (Token, error) {
	path, err := s.path()
	if err != nil {
		return Token{}, err
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Token{}, ErrTokenNotFound
	}
	if err != nil {
		return Token{}, fmt.Errorf("failed to read token file: %w", err)
	}

	value := strings.TrimSpace(string(data))
	if value == "" {
		return Token{}, ErrTokenNotFound
	}

	return Token{Value: value, Source: fmt.Sprintf("file:%s", path)}, nil
}

// Save writes the token value with owner-only permissions, creating
// parent directories as needed. An existing token is overwritten.
func (s FileStore) Save(value string) error {
	value = strings.TrimSpace(value)
	if value == "" {
		return ErrTokenInvalid
	}

	path, err := s.path()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("failed to create token directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(value+"\n"), 0600); err != nil {
		return fmt.Errorf("failed to write token file: %w", err)
	}

	return nil
}

// Delete removes the token file. A missing file is not an error.
func (s FileStore) Delete() error {
	path, err := s.path()
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove token file: %w", err)
	}
	return nil
}
