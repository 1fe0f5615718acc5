// Package manifest defines which folders of the remote asset
// repository are installed where. The built-in table returned by
// Default is the product configuration; Load exists so an alternate
// table can be supplied without rebuilding.
package manifest

import (
	"fmt"
	"os"
	"path/filepath"

	mapset "github.com/deckarep/golang-set/v2"
	"gopkg.in/yaml.v3"

	"github.com/RagerGr/go-hfassets/internal/urlutils"
)

// DefaultRepoURL is the remote asset repository provisioned by
// default.
const DefaultRepoURL = "https://huggingface.co/RagerGr/NLP2025-Ambiguity"

// DefaultCloneDirName is the directory, directly under the project
// root, that the repository is cloned into.
const DefaultCloneDirName = "tmp_hf_repo"

// Repo identifies the remote repository and whether cloning it
// requires a credential.
type Repo struct {
	URL          string `yaml:"url"`
	AuthRequired bool   `yaml:"auth_required"`
}

// Destination is one install location for a remote folder: the
// directory Base, relative to the project root, receives the folder's
// contents under the name Name.
type Destination struct {
	Base string `yaml:"base"`
	Name string `yaml:"name"`
}

// Mapping associates one remote folder with the ordered list of
// destinations its contents are copied to.
type Mapping struct {
	Remote       string        `yaml:"remote"`
	Destinations []Destination `yaml:"destinations"`
}

// Manifest is the full provisioning table. Mappings are processed in
// slice order, destinations within a mapping in list order.
type Manifest struct {
	Repo     Repo      `yaml:"repo"`
	CloneDir string    `yaml:"clone_dir"`
	Mappings []Mapping `yaml:"mappings"`
}

// Default returns the built-in manifest. Every call returns a fresh
// copy, so a caller mutating its result cannot affect later callers.
//
// The remote name "data _enronsent" contains an embedded space. That
// is the folder's actual name in the remote repository, not a typo in
// this table.
func Default() Manifest {
	return Manifest{
		Repo: Repo{
			URL:          DefaultRepoURL,
			AuthRequired: true,
		},
		CloneDir: DefaultCloneDirName,
		Mappings: []Mapping{
			{
				Remote: "data_vocab",
				Destinations: []Destination{
					{Base: filepath.Join("Evaluation", "try1"), Name: "data"},
					{Base: filepath.Join("ML", "try1"), Name: "data"},
				},
			},
			{
				Remote: "models_vocab",
				Destinations: []Destination{
					{Base: filepath.Join("Evaluation", "try1"), Name: "models"},
					{Base: filepath.Join("ML", "try1"), Name: "models"},
				},
			},
			{
				Remote: "data _enronsent",
				Destinations: []Destination{
					{Base: filepath.Join("ML", "try2"), Name: "data"},
					{Base: filepath.Join("Evaluation", "try2"), Name: "data"},
				},
			},
			{
				Remote: "models_enronsent",
				Destinations: []Destination{
					{Base: filepath.Join("ML", "try2"), Name: "models"},
					{Base: filepath.Join("Evaluation", "try2"), Name: "models"},
				},
			},
		},
	}
}

// Load reads a manifest from a YAML file, fills in defaults for
// omitted fields and validates the result. The expected shape:
//
//	repo:
//	  url: https://huggingface.co/owner/repo
//	  auth_required: true
//	clone_dir: tmp_hf_repo
//	mappings:
//	  - remote: data_vocab
//	    destinations:
//	      - base: Evaluation/try1
//	        name: data
func Load(path string) (Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Manifest{}, fmt.Errorf("failed to read manifest file: %w", err)
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return Manifest{}, fmt.Errorf("failed to parse manifest file: %w", err)
	}

	m.MergeDefaults()
	if err := m.Validate(); err != nil {
		return Manifest{}, fmt.Errorf("invalid manifest %s: %w", path, err)
	}
	return m, nil
}

// MergeDefaults fills in defaults for omitted optional fields.
func (m *Manifest) MergeDefaults() {
	if m.CloneDir == "" {
		m.CloneDir = DefaultCloneDirName
	}
}

// Validate checks the invariants the executor relies on: a well-formed
// repository URL, a clone dir that stays directly under the project
// root, and a mapping table free of duplicate remotes and duplicate
// destinations.
func (m Manifest) Validate() error {
	if m.Repo.URL == "" {
		return fmt.Errorf("repository URL cannot be empty")
	}
	if err := urlutils.ValidateURL(m.Repo.URL); err != nil {
		return fmt.Errorf("invalid repository URL: %w", err)
	}

	if m.CloneDir == "" {
		return fmt.Errorf("clone dir cannot be empty")
	}
	if m.CloneDir != filepath.Base(m.CloneDir) || m.CloneDir == "." || m.CloneDir == ".." {
		return fmt.Errorf("clone dir must be a single path element, got %q", m.CloneDir)
	}

	if len(m.Mappings) == 0 {
		return fmt.Errorf("manifest has no mappings")
	}

	remotes := mapset.NewSet[string]()
	dests := mapset.NewSet[string]()
	for _, mapping := range m.Mappings {
		if mapping.Remote == "" {
			return fmt.Errorf("mapping has an empty remote folder name")
		}
		if !remotes.Add(mapping.Remote) {
			return fmt.Errorf("duplicate remote folder %q in mappings", mapping.Remote)
		}
		if len(mapping.Destinations) == 0 {
			return fmt.Errorf("remote folder %q has no destinations", mapping.Remote)
		}
		for _, d := range mapping.Destinations {
			if d.Base == "" || d.Name == "" {
				return fmt.Errorf("remote folder %q has a destination with an empty base or name", mapping.Remote)
			}
			if filepath.IsAbs(d.Base) {
				return fmt.Errorf("destination base %q must be relative to the project root", d.Base)
			}
			if d.Name != filepath.Base(d.Name) {
				return fmt.Errorf("destination name %q must be a single path element", d.Name)
			}
			key := filepath.Join(d.Base, d.Name)
			if !dests.Add(key) {
				return fmt.Errorf("duplicate destination %s in mappings", key)
			}
		}
	}

	return nil
}

// Lookup returns the mapping for the given remote folder name.
func (m Manifest) Lookup(remote string) (Mapping, bool) {
	for _, entry := range m.Mappings {
		if entry.Remote == remote {
			return entry, true
		}
	}
	return Mapping{}, false
}
