package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"objc-codegen/internal/common"
	"objc-codegen/internal/objectspec"
	"objc-codegen/internal/plugin"
)

// ErrEmptyLookupName is returned for a type lookup without a name.
var ErrEmptyLookupName = errors.New("type lookup has empty name")

// File is the parsed configuration file.
type File struct {
	Version     string       `yaml:"version"`
	Library     string       `yaml:"library,omitempty"`
	Includes    []string     `yaml:"includes,omitempty"`
	Excludes    []string     `yaml:"excludes,omitempty"`
	TypeLookups []TypeLookup `yaml:"typeLookups,omitempty"`
}

// TypeLookup is the YAML form of objectspec.TypeLookup.
type TypeLookup struct {
	Name              string `yaml:"name"`
	Library           string `yaml:"library,omitempty"`
	File              string `yaml:"file,omitempty"`
	CanForwardDeclare bool   `yaml:"canForwardDeclare,omitempty"`
}

// LoadFile loads and parses a configuration file from the given path.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into a File.
func Parse(data []byte) (*File, error) {
	var f File

	err := yaml.Unmarshal(data, &f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	applyDefaults(&f)

	if err := f.Validate(); err != nil {
		return nil, err
	}

	return &f, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(f *File) {
	if f.Version == "" {
		f.Version = "1"
	}
}

// Validate checks that every type lookup has a name.
func (f *File) Validate() error {
	for i, l := range f.TypeLookups {
		if l.Name == "" {
			return fmt.Errorf("typeLookups[%d]: %w", i, ErrEmptyLookupName)
		}
	}

	return nil
}

// Marshal serializes a File to YAML.
func Marshal(f *File) ([]byte, error) {
	return yaml.Marshal(f)
}

// DefaultLibrary returns the configured library, or None when unset.
func (f *File) DefaultLibrary() common.Option[string] {
	return common.FromString(f.Library)
}

// Lookups converts the configured type lookups. Empty library and file
// values become None.
func (f *File) Lookups() []objectspec.TypeLookup {
	out := make([]objectspec.TypeLookup, 0, len(f.TypeLookups))
	for _, l := range f.TypeLookups {
		out = append(out, objectspec.TypeLookup{
			Name:              l.Name,
			Library:           common.FromString(l.Library),
			File:              common.FromString(l.File),
			CanForwardDeclare: l.CanForwardDeclare,
		})
	}

	return out
}

// Apply fills spec's library when unset and adds the configured lookups and
// exclusions. Lookups already on the spec come first.
func (f *File) Apply(spec objectspec.Type) objectspec.Type {
	spec.LibraryName = spec.LibraryName.Or(f.DefaultLibrary())
	spec.TypeLookups = append(append([]objectspec.TypeLookup(nil), spec.TypeLookups...), f.Lookups()...)
	spec.Excludes = append(append([]string(nil), spec.Excludes...), f.Excludes...)

	return spec
}

// HostOptions returns the plugin host options driven by the file. The
// configured includes are enabled for every spec the host builds.
func (f *File) HostOptions() []plugin.HostOption {
	return []plugin.HostOption{plugin.WithDefaultIncludes(f.Includes...)}
}
