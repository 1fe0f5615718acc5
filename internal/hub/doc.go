// Package hub fetches the remote asset repository from the Hugging
// Face Hub.
//
// Hub repositories are plain git repositories served over HTTPS, so a
// fetch is a full clone of the default branch, performed in-process
// with go-git. Authentication uses HTTP basic auth: the Hub accepts
// any username as long as the password is a valid access token.
//
// The clone directory is disposable. Any existing directory is removed
// before cloning, so every run starts from an exact copy of the
// remote's current state. Nothing incremental is attempted, and a
// failed clone is not cleaned up.
//
// Example Usage:
//
//	opts := hub.Options{
//	    URL:          "https://huggingface.co/RagerGr/NLP2025-Ambiguity",
//	    CloneDir:     "/path/to/project/tmp_hf_repo",
//	    Token:        tok,
//	    AuthRequired: true,
//	}
//
//	if err := hub.Clone(ctx, opts); err != nil {
//	    log.Fatalf("Failed to fetch assets: %v", err)
//	}
package hub
