package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"objc-codegen/internal/common"
	"objc-codegen/internal/objectspec"
	"objc-codegen/internal/plugin"
	"objc-codegen/internal/plugins/initnew"
)

const sample = `
library: RMModels
includes: [RMInitNewUnavailable]
excludes: [RMCoding]
typeLookups:
  - name: RMTag
    library: RMTagging
    file: RMTagTypes
    canForwardDeclare: true
  - name: RMState
`

func TestParse(t *testing.T) {
	f, err := Parse([]byte(sample))
	require.NoError(t, err)

	assert.Equal(t, "1", f.Version)
	assert.Equal(t, common.Some("RMModels"), f.DefaultLibrary())
	assert.Equal(t, []string{"RMInitNewUnavailable"}, f.Includes)
	assert.Equal(t, []objectspec.TypeLookup{
		{Name: "RMTag", Library: common.Some("RMTagging"), File: common.Some("RMTagTypes"), CanForwardDeclare: true},
		{Name: "RMState"},
	}, f.Lookups())
}

func TestParse_EmptyLookupName(t *testing.T) {
	_, err := Parse([]byte("typeLookups:\n  - file: Foo\n"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrEmptyLookupName))
	assert.Contains(t, err.Error(), "typeLookups[0]")
}

func TestParse_InvalidYAML(t *testing.T) {
	_, err := Parse([]byte("typeLookups: ["))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config YAML")
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "objc-codegen.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o644))

	f, err := LoadFile(path)
	require.NoError(t, err)
	assert.Len(t, f.TypeLookups, 2)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestMarshalRoundTripKeepsDefaults(t *testing.T) {
	f, err := Parse([]byte(sample))
	require.NoError(t, err)

	data, err := Marshal(f)
	require.NoError(t, err)
	assert.Contains(t, string(data), "version: \"1\"")
	assert.Contains(t, string(data), "canForwardDeclare: true")
}

func TestApply(t *testing.T) {
	f, err := Parse([]byte(sample))
	require.NoError(t, err)

	spec := objectspec.Type{
		Name:        "RMPost",
		TypeLookups: []objectspec.TypeLookup{{Name: "RMUser"}},
	}

	got := f.Apply(spec)
	assert.Equal(t, common.Some("RMModels"), got.LibraryName)
	assert.Equal(t, []string{"RMUser", "RMTag", "RMState"}, lookupNames(got.TypeLookups))
	assert.Equal(t, []string{"RMCoding"}, got.Excludes)
	assert.Len(t, spec.TypeLookups, 1)

	spec.LibraryName = common.Some("RMPosts")
	assert.Equal(t, common.Some("RMPosts"), f.Apply(spec).LibraryName)
}

func TestHostOptions_EnableConfiguredIncludes(t *testing.T) {
	f, err := Parse([]byte(sample))
	require.NoError(t, err)

	spec := objectspec.Type{
		Name:       "RMPost",
		Attributes: []objectspec.Attribute{{Name: "title", Type: objectspec.AttributeType{Name: "NSString"}}},
	}
	plugins := []plugin.Plugin[objectspec.Type]{initnew.New()}

	file, err := plugin.NewHost(plugins, f.HostOptions()...).Build(spec)
	require.NoError(t, err)
	assert.Len(t, file.InstanceMethods, 1)
	assert.Len(t, file.ClassMethods, 1)

	file, err = plugin.NewHost(plugins).Build(spec)
	require.NoError(t, err)
	assert.Empty(t, file.InstanceMethods)

	excluded := spec
	excluded.Excludes = []string{initnew.Include}
	file, err = plugin.NewHost(plugins, f.HostOptions()...).Build(excluded)
	require.NoError(t, err)
	assert.Empty(t, file.InstanceMethods)
}

func lookupNames(lookups []objectspec.TypeLookup) []string {
	var names []string
	for _, l := range lookups {
		names = append(names, l.Name)
	}

	return names
}
