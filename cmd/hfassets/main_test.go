package main

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/RagerGr/go-hfassets/internal/errors"
	"github.com/RagerGr/go-hfassets/internal/hub"
	"github.com/RagerGr/go-hfassets/internal/manifest"
)

// isolateTokenEnv keeps the ambient user environment (real tokens,
// real token file) out of the tests.
func isolateTokenEnv(t *testing.T) {
	t.Helper()
	t.Setenv("HF_TOKEN", "")
	t.Setenv("HUGGING_FACE_HUB_TOKEN", "")
	t.Setenv("HF_HOME", t.TempDir())
}

// mockClone replaces the fetch with one that lays out the given remote
// folders inside the requested clone dir, and records the options it
// was called with.
func mockClone(t *testing.T, remotes map[string]string) *hub.Options {
	t.Helper()
	captured := &hub.Options{}

	orig := cloneFunc
	cloneFunc = func(ctx context.Context, opts hub.Options) error {
		*captured = opts
		for remote, content := range remotes {
			dir := filepath.Join(opts.CloneDir, remote)
			if err := os.MkdirAll(dir, 0755); err != nil {
				return err
			}
			if err := os.WriteFile(filepath.Join(dir, "f.txt"), []byte(content), 0644); err != nil {
				return err
			}
		}
		return nil
	}
	t.Cleanup(func() { cloneFunc = orig })

	return captured
}

func defaultRemoteContents() map[string]string {
	return map[string]string{
		"data_vocab":       "data vocab payload",
		"models_vocab":     "models vocab payload",
		"data _enronsent":  "data enron payload",
		"models_enronsent": "models enron payload",
	}
}

func TestNewRootCmd(t *testing.T) {
	cmd := newRootCmd()

	assert.Equal(t, "hfassets", cmd.Use)
	for _, name := range []string{"root", "manifest", "token", "dry-run", "verbose"} {
		assert.NotNil(t, cmd.Flags().Lookup(name), "missing flag --%s", name)
	}
}

func TestRootCmdRejectsArguments(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	cmd.SetArgs([]string{"unexpected"})

	err := cmd.Execute()
	assert.Error(t, err)
}

func TestRunProvisionsEverything(t *testing.T) {
	isolateTokenEnv(t)
	root := t.TempDir()
	captured := mockClone(t, defaultRemoteContents())

	err := run(context.Background(), &runOptions{root: root, token: "hf_test"})
	require.NoError(t, err)

	assert.Equal(t, manifest.DefaultRepoURL, captured.URL)
	assert.True(t, captured.AuthRequired)
	assert.Equal(t, filepath.Join(root, "tmp_hf_repo"), captured.CloneDir)
	assert.Equal(t, "hf_test", captured.Token.Value)

	wantPayloads := map[string]string{
		filepath.Join("Evaluation", "try1", "data", "f.txt"):   "data vocab payload",
		filepath.Join("ML", "try1", "data", "f.txt"):           "data vocab payload",
		filepath.Join("Evaluation", "try1", "models", "f.txt"): "models vocab payload",
		filepath.Join("ML", "try1", "models", "f.txt"):         "models vocab payload",
		filepath.Join("ML", "try2", "data", "f.txt"):           "data enron payload",
		filepath.Join("Evaluation", "try2", "data", "f.txt"):   "data enron payload",
		filepath.Join("ML", "try2", "models", "f.txt"):         "models enron payload",
		filepath.Join("Evaluation", "try2", "models", "f.txt"): "models enron payload",
	}
	for rel, want := range wantPayloads {
		data, err := os.ReadFile(filepath.Join(root, rel))
		require.NoError(t, err, rel)
		assert.Equal(t, want, string(data), rel)
	}
}

func TestRunDryRunTouchesNothing(t *testing.T) {
	isolateTokenEnv(t)
	root := t.TempDir()

	cloneCalled := false
	orig := cloneFunc
	cloneFunc = func(ctx context.Context, opts hub.Options) error {
		cloneCalled = true
		return nil
	}
	t.Cleanup(func() { cloneFunc = orig })

	err := run(context.Background(), &runOptions{root: root, dryRun: true})
	require.NoError(t, err)

	assert.False(t, cloneCalled, "dry run must not fetch")
	entries, err := os.ReadDir(root)
	require.NoError(t, err)
	assert.Empty(t, entries, "dry run must not create anything")
}

func TestRunManifestOverride(t *testing.T) {
	isolateTokenEnv(t)
	root := t.TempDir()
	captured := mockClone(t, map[string]string{"custom_assets": "custom payload"})

	manifestPath := filepath.Join(t.TempDir(), "manifest.yaml")
	content := `
repo:
  url: https://huggingface.co/owner/other-assets
  auth_required: false
mappings:
  - remote: custom_assets
    destinations:
      - base: Out/one
        name: data
`
	require.NoError(t, os.WriteFile(manifestPath, []byte(content), 0644))

	err := run(context.Background(), &runOptions{root: root, manifestPath: manifestPath})
	require.NoError(t, err)

	assert.Equal(t, "https://huggingface.co/owner/other-assets", captured.URL)
	assert.False(t, captured.AuthRequired)

	data, err := os.ReadFile(filepath.Join(root, "Out", "one", "data", "f.txt"))
	require.NoError(t, err)
	assert.Equal(t, "custom payload", string(data))
}

func TestRunInvalidManifest(t *testing.T) {
	isolateTokenEnv(t)
	root := t.TempDir()

	cloneCalled := false
	orig := cloneFunc
	cloneFunc = func(ctx context.Context, opts hub.Options) error {
		cloneCalled = true
		return nil
	}
	t.Cleanup(func() { cloneFunc = orig })

	manifestPath := filepath.Join(t.TempDir(), "manifest.yaml")
	content := `
repo:
  url: https://huggingface.co/owner/assets
mappings:
  - remote: a
    destinations:
      - base: Out
        name: data
  - remote: b
    destinations:
      - base: Out
        name: data
`
	require.NoError(t, os.WriteFile(manifestPath, []byte(content), 0644))

	err := run(context.Background(), &runOptions{root: root, manifestPath: manifestPath})
	assert.ErrorContains(t, err, "duplicate destination")
	assert.False(t, cloneCalled, "an invalid manifest must fail before fetching")
}

func TestRunCloneFailureAborts(t *testing.T) {
	isolateTokenEnv(t)
	root := t.TempDir()

	orig := cloneFunc
	cloneFunc = func(ctx context.Context, opts hub.Options) error {
		return &apperrors.FetchError{URL: opts.URL, Err: os.ErrDeadlineExceeded}
	}
	t.Cleanup(func() { cloneFunc = orig })

	err := run(context.Background(), &runOptions{root: root, token: "hf_test"})

	var fetchErr *apperrors.FetchError
	require.ErrorAs(t, err, &fetchErr)
	assert.NoDirExists(t, filepath.Join(root, "Evaluation"))
	assert.NoDirExists(t, filepath.Join(root, "ML"))
}
