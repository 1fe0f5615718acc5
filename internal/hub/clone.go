package hub

import (
	"context"
	"io"
	"path/filepath"
	"strings"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/transport/http"
	logger "github.com/sirupsen/logrus"

	"github.com/RagerGr/go-hfassets/internal/errors"
	"github.com/RagerGr/go-hfassets/internal/fsutils"
	"github.com/RagerGr/go-hfassets/internal/token"
	"github.com/RagerGr/go-hfassets/internal/urlutils"
)

// basicAuthUser is the username sent alongside token authentication.
// The Hub ignores it when the password is an access token.
const basicAuthUser = "hfassets"

// Options contains configuration for fetching the asset repository.
type Options struct {
	// URL of the remote repository.
	URL string

	// CloneDir is the directory the repository is cloned into. It is
	// removed first if it already exists.
	CloneDir string

	// Token authenticates the clone. May be zero for public
	// repositories unless AuthRequired is set.
	Token token.Token

	// AuthRequired refuses to attempt an anonymous clone.
	AuthRequired bool

	// Progress, when non-nil, receives the server's sideband progress
	// messages during the clone.
	Progress io.Writer
}

// plainClone is a variable so tests can substitute the clone call.
var plainClone = git.PlainCloneContext

// Clone fetches the repository into opts.CloneDir, replacing any
// previous clone wholesale. Every failure comes back as a
// *errors.FetchError; the caller is expected to abort on it.
func Clone(ctx context.Context, opts Options) error {
	redacted := urlutils.Redacted(opts.URL)

	// Skip URL validation for local paths (used in tests).
	if !filepath.IsAbs(opts.URL) && !strings.HasPrefix(opts.URL, "file://") {
		if err := urlutils.ValidateURL(opts.URL); err != nil {
			return &errors.FetchError{URL: redacted, Err: err}
		}
	}

	if opts.AuthRequired && opts.Token.IsZero() {
		return &errors.FetchError{URL: redacted, Err: token.ErrTokenNotFound}
	}

	if err := fsutils.EnsureDirAbsent(opts.CloneDir); err != nil {
		return &errors.FetchError{URL: redacted, Err: err}
	}

	cloneOpts := &git.CloneOptions{
		URL:      opts.URL,
		Progress: opts.Progress,
	}
	if !opts.Token.IsZero() {
		cloneOpts.Auth = &http.BasicAuth{
			Username: basicAuthUser,
			Password: opts.Token.Value,
		}
		logger.Debugf("Cloning %s with token from %s", redacted, opts.Token.Source)
	} else {
		logger.Debugf("Cloning %s anonymously", redacted)
	}

	if _, err := plainClone(ctx, opts.CloneDir, false, cloneOpts); err != nil {
		return &errors.FetchError{URL: redacted, Err: err}
	}

	return nil
}
