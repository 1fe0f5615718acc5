// Package urlutils provides utilities for handling Hugging Face Hub
// repository URLs. It supports parsing and validation of HTTPS URLs
// for model, dataset and space repositories, plus credential redaction
// for log output.
package urlutils

import (
	"errors"
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

var (
	// ErrInvalidURL indicates that the provided URL is not valid
	ErrInvalidURL = errors.New("invalid URL format")

	// ErrInvalidHost indicates that the host is not a Hub instance
	ErrInvalidHost = errors.New("invalid Hub host")

	// ErrInvalidPath indicates that the URL path is not a valid repository path
	ErrInvalidPath = errors.New("invalid repository path")

	// ErrNotHTTPS indicates that the URL does not use HTTPS protocol
	ErrNotHTTPS = errors.New("URL must use HTTPS protocol")

	// Owner and repository names follow the Hub's namespace rules:
	// alphanumeric start, then alphanumerics, dots, dashes, underscores.
	ownerRegex = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9._-]{0,95}$`)
	repoRegex  = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9._-]{0,95}$`)
)

// ParseRepoURL parses and validates a Hub HTTPS repository URL.
// It accepts URLs in the following formats:
//   - https://huggingface.co/owner/repo
//   - https://huggingface.co/owner/repo.git
//   - https://huggingface.co/datasets/owner/repo
//   - https://huggingface.co/spaces/owner/repo
//
// Any credentials embedded in the URL are dropped from the result.
func ParseRepoURL(rawURL string) (*url.URL, error) {
	if strings.HasPrefix(rawURL, "git@") {
		return nil, ErrNotHTTPS
	}
	if !strings.HasPrefix(rawURL, "https://") {
		return nil, ErrInvalidURL
	}

	rawURL = strings.TrimSuffix(rawURL, ".git")

	parsedURL, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidURL, err)
	}
	parsedURL.User = nil

	if !isValidHubHost(parsedURL.Host) {
		return nil, fmt.Errorf("%w: %s", ErrInvalidHost, parsedURL.Host)
	}

	pathParts := strings.Split(strings.Trim(parsedURL.Path, "/"), "/")
	switch len(pathParts) {
	case 2:
		// Model repositories live directly under the owner.
	case 3:
		if pathParts[0] != "datasets" && pathParts[0] != "spaces" {
			return nil, fmt.Errorf("%w: unknown repository namespace %q", ErrInvalidPath, pathParts[0])
		}
		pathParts = pathParts[1:]
	default:
		return nil, fmt.Errorf("%w: URL must include owner and repository", ErrInvalidPath)
	}

	if !ownerRegex.MatchString(pathParts[0]) {
		return nil, fmt.Errorf("%w: invalid owner name format", ErrInvalidPath)
	}

	if !repoRegex.MatchString(pathParts[1]) {
		return nil, fmt.Errorf("%w: invalid repository name format", ErrInvalidPath)
	}

	return parsedURL, nil
}

// ValidateURL checks if the provided URL is a valid Hub repository URL.
func ValidateURL(rawURL string) error {
	_, err := ParseRepoURL(rawURL)
	return err
}

// Redacted returns rawURL with any userinfo credentials removed, for
// safe inclusion in logs and error messages. Unparseable input is
// returned unchanged.
func Redacted(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.User == nil {
		return rawURL
	}
	u.User = nil
	return u.String()
}

// isValidHubHost checks if the host is the Hub or its short domain.
func isValidHubHost(host string) bool {
	return host == "huggingface.co" || host == "hf.co"
}
