// Package main implements hfassets, the one-shot provisioner that
// pulls the NLP2025-Ambiguity asset repository from the Hugging Face
// Hub and installs its data and model folders into the local
// Evaluation and ML experiment trees.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/RagerGr/go-hfassets/internal/hub"
	"github.com/RagerGr/go-hfassets/internal/install"
	"github.com/RagerGr/go-hfassets/internal/manifest"
	"github.com/RagerGr/go-hfassets/internal/paths"
	"github.com/RagerGr/go-hfassets/internal/progress"
	"github.com/RagerGr/go-hfassets/internal/token"
)

type runOptions struct {
	root         string
	manifestPath string
	token        string
	dryRun       bool
	verbose      bool
}

// cloneFunc is a variable so tests can substitute the fetch.
var cloneFunc = hub.Clone

func newRootCmd() *cobra.Command {
	opts := &runOptions{}

	cmd := &cobra.Command{
		Use:   "hfassets",
		Short: "Provision NLP2025-Ambiguity assets from the Hugging Face Hub",
		Long: `hfassets clones the RagerGr/NLP2025-Ambiguity repository from the
Hugging Face Hub into a temporary folder under the project root, then copies
its data and model folders into the Evaluation and ML experiment trees.

The clone is replaced wholesale on every run. Destination directories are
created as needed and merged into: files the remote replaces are overwritten,
everything else is left alone. The first failure aborts the run without
rolling back what was already copied.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.verbose {
				logger.SetLevel(logger.DebugLevel)
			}
			return run(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVar(&opts.root, "root", "", "project root (default: the directory containing this binary)")
	cmd.Flags().StringVar(&opts.manifestPath, "manifest", "", "YAML manifest overriding the built-in mapping table")
	cmd.Flags().StringVar(&opts.token, "token", "", "Hub access token (default: HF_TOKEN, HUGGING_FACE_HUB_TOKEN or the token file)")
	cmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "print the fetch and copy plan without changing anything")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")

	return cmd
}

func run(ctx context.Context, opts *runOptions) error {
	m := manifest.Default()
	if opts.manifestPath != "" {
		loaded, err := manifest.Load(opts.manifestPath)
		if err != nil {
			return err
		}
		m = loaded
	}

	resolved, err := paths.Resolve(opts.root, m.CloneDir)
	if err != nil {
		return err
	}
	logger.Debugf("Project root: %s", resolved.ProjectRoot)

	installer := install.Installer{
		Paths:    resolved,
		Mappings: m.Mappings,
		Tracker:  progress.NewConsoleTracker(),
	}

	if opts.dryRun {
		printPlan(m, resolved, installer.Plan())
		return nil
	}

	tok, err := token.Resolve(token.DefaultSources(opts.token)...)
	if err != nil && !errors.Is(err, token.ErrTokenNotFound) {
		return err
	}
	if !tok.IsZero() {
		logger.Debugf("Using Hub token from %s", tok.Source)
	}

	logger.Infof("Cloning %s into %s", m.Repo.URL, resolved.CloneDir)
	fetchOpts := hub.Options{
		URL:          m.Repo.URL,
		CloneDir:     resolved.CloneDir,
		Token:        tok,
		AuthRequired: m.Repo.AuthRequired,
	}
	if opts.verbose {
		fetchOpts.Progress = os.Stderr
	}
	if err := cloneFunc(ctx, fetchOpts); err != nil {
		return err
	}

	results, err := installer.Run(ctx)
	if err != nil {
		return err
	}

	for _, r := range results {
		logger.Infof("Installed %s: %d files (%d bytes) into %d destinations",
			r.Remote, r.Files, r.Bytes, len(r.Destinations))
	}
	logger.Infof("Provisioning complete")

	return nil
}

func printPlan(m manifest.Manifest, resolved paths.Paths, plan []install.PlannedCopy) {
	fmt.Printf("Would clone %s into %s (replacing any existing clone)\n", m.Repo.URL, resolved.CloneDir)
	for _, p := range plan {
		fmt.Printf("Would copy %s into %s\n", p.Remote, p.Dest)
	}
}

func main() {
	logger.SetFormatter(&logger.TextFormatter{
		ForceColors:   true,
		FullTimestamp: true,
	})
	if os.Getenv("DEBUG") == "true" {
		logger.SetLevel(logger.DebugLevel)
	}

	if err := newRootCmd().Execute(); err != nil {
		logger.Fatalf("Error executing 'hfassets': %s", err)
	}
}
