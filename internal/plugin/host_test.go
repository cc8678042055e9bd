package plugin

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"objc-codegen/internal/code"
	"objc-codegen/internal/common"
	"objc-codegen/internal/diagnostic"
	"objc-codegen/internal/filewriter"
	"objc-codegen/internal/objc"
	"objc-codegen/internal/objectspec"
)

// fakePlugin returns canned hook values for one spec type.
type fakePlugin struct {
	Base[objectspec.Type]

	name        string
	requires    []string
	methods     []objc.Method
	imports     []objc.Import
	decls       []objc.ForwardDeclaration
	fileType    common.Option[code.FileType]
	nullability common.Option[objc.ClassNullability]
	restricted  bool
	errs        []diagnostic.Diagnostic
	comment     string
	extraFiles  []code.File
	extraTypes  []objectspec.Type
	requestDir  string
}

func (p fakePlugin) Name() string                    { return p.name }
func (p fakePlugin) RequiredIncludesToRun() []string { return p.requires }

func (p fakePlugin) InstanceMethods(objectspec.Type) []objc.Method { return p.methods }
func (p fakePlugin) Imports(objectspec.Type) []objc.Import         { return p.imports }

func (p fakePlugin) ForwardDeclarations(objectspec.Type) []objc.ForwardDeclaration {
	return p.decls
}

func (p fakePlugin) FileType(objectspec.Type) common.Option[code.FileType] { return p.fileType }

func (p fakePlugin) Nullability(objectspec.Type) common.Option[objc.ClassNullability] {
	return p.nullability
}

func (p fakePlugin) SubclassingRestricted(objectspec.Type) bool { return p.restricted }

func (p fakePlugin) ValidationErrors(objectspec.Type) []diagnostic.Diagnostic { return p.errs }

func (p fakePlugin) AdditionalFiles(objectspec.Type) []code.File { return p.extraFiles }

func (p fakePlugin) AdditionalTypes(objectspec.Type) []objectspec.Type { return p.extraTypes }

func (p fakePlugin) TransformBaseFile(_ objectspec.Type, file code.File) code.File {
	if p.comment != "" {
		file.Comments = append(file.Comments, objc.Comment{Content: p.comment})
	}

	return file
}

func (p fakePlugin) TransformFileRequest(r filewriter.Request) filewriter.Request {
	if p.requestDir != "" {
		r.Dir = r.Dir + "/" + p.requestDir
	}

	return r
}

func method(selector string) objc.Method {
	return objc.Method{Keywords: []objc.Keyword{{Name: selector}}}
}

func plugins(ps ...fakePlugin) []Plugin[objectspec.Type] {
	out := make([]Plugin[objectspec.Type], 0, len(ps))
	for _, p := range ps {
		out = append(out, p)
	}

	return out
}

var userSpec = objectspec.Type{Name: "RMUser"}

func TestBuild_ConcatenatesListHooksInRegistrationOrder(t *testing.T) {
	t.Parallel()

	host := NewHost(plugins(
		fakePlugin{name: "a", methods: []objc.Method{method("first")}},
		fakePlugin{name: "b", methods: []objc.Method{method("second")}},
	))

	file, err := host.Build(userSpec)
	require.NoError(t, err)
	require.Len(t, file.InstanceMethods, 2)
	assert.Equal(t, "first", file.InstanceMethods[0].Selector())
	assert.Equal(t, "second", file.InstanceMethods[1].Selector())
	assert.Equal(t, "RMUser", file.Name)
}

func TestBuild_FirstOptionalValueWins(t *testing.T) {
	t.Parallel()

	host := NewHost(plugins(
		fakePlugin{name: "none"},
		fakePlugin{
			name:        "cpp",
			fileType:    common.Some(code.FileTypeObjectiveCPlusPlus),
			nullability: common.Some(objc.ClassNullabilityAssumeNonnull),
		},
		fakePlugin{
			name:        "plain",
			fileType:    common.Some(code.FileTypeObjectiveC),
			nullability: common.Some(objc.ClassNullabilityDefault),
		},
	))

	file, err := host.Build(userSpec)
	require.NoError(t, err)
	assert.Equal(t, code.FileTypeObjectiveCPlusPlus, file.Type)
	assert.Equal(t, common.Some(objc.ClassNullabilityAssumeNonnull), file.Nullability)
}

func TestBuild_DefaultsWithoutPlugins(t *testing.T) {
	t.Parallel()

	file, err := NewHost[objectspec.Type](nil).Build(userSpec)
	require.NoError(t, err)
	assert.Equal(t, code.FileTypeObjectiveC, file.Type)
	assert.True(t, file.Nullability.IsNone())
	assert.False(t, file.SubclassingRestricted)
	assert.Empty(t, file.Imports)
}

func TestBuild_SubclassingRestrictedIfAny(t *testing.T) {
	t.Parallel()

	host := NewHost(plugins(fakePlugin{name: "a"}, fakePlugin{name: "b", restricted: true}))

	file, err := host.Build(userSpec)
	require.NoError(t, err)
	assert.True(t, file.SubclassingRestricted)
}

func TestBuild_DeduplicatesImportsAndDeclarations(t *testing.T) {
	t.Parallel()

	host := NewHost(plugins(
		fakePlugin{
			name:    "a",
			imports: []objc.Import{{File: "RMPost.h"}, {File: "CGGeometry.h", Library: common.Some("CoreGraphics")}},
			decls:   []objc.ForwardDeclaration{objc.ForwardClassDeclaration("RMPost")},
		},
		fakePlugin{
			name:    "b",
			imports: []objc.Import{{File: "RMPost.h", IsPublic: true}, {File: "CGGeometry.h"}},
			decls: []objc.ForwardDeclaration{
				objc.ForwardClassDeclaration("RMPost"),
				objc.ForwardProtocolDeclaration("RMPost"),
			},
		},
	))

	file, err := host.Build(userSpec)
	require.NoError(t, err)
	assert.Equal(t, []objc.Import{
		{File: "RMPost.h", IsPublic: true},
		{File: "CGGeometry.h", Library: common.Some("CoreGraphics")},
		{File: "CGGeometry.h"},
	}, file.Imports)
	assert.Equal(t, []objc.ForwardDeclaration{
		objc.ForwardClassDeclaration("RMPost"),
		objc.ForwardProtocolDeclaration("RMPost"),
	}, file.ForwardDeclarations)
}

func TestBuild_TransformBaseFileChainsInOrder(t *testing.T) {
	t.Parallel()

	host := NewHost(plugins(
		fakePlugin{name: "a", comment: "one"},
		fakePlugin{name: "b", comment: "two"},
	))

	file, err := host.Build(userSpec)
	require.NoError(t, err)
	assert.Equal(t, []objc.Comment{{Content: "one"}, {Content: "two"}}, file.Comments)
}

func TestBuild_ValidationErrorsBlockFile(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zap.WarnLevel)
	host := NewHost(plugins(
		fakePlugin{name: "a", errs: []diagnostic.Diagnostic{diagnostic.NewError("E1", "bad", "", "name")}},
		fakePlugin{name: "b", methods: []objc.Method{method("init")}},
		fakePlugin{name: "c", errs: []diagnostic.Diagnostic{diagnostic.NewError("E2", "worse", "Other", "")}},
	), WithLogger(zap.New(core)))

	diags := host.Validate(userSpec)
	require.Len(t, diags.Errors, 2)
	assert.Equal(t, "a", diags.Errors[0].Plugin)
	assert.Equal(t, "RMUser", diags.Errors[0].TypeName)
	assert.Equal(t, "Other", diags.Errors[1].TypeName)

	file, err := host.Build(userSpec)
	assert.Nil(t, file)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrValidation))
	assert.Contains(t, err.Error(), "[E1] bad")
	assert.Contains(t, err.Error(), "[E2] worse")
	assert.Equal(t, 1, logs.FilterMessage("validation failed").Len())
}

func TestBuild_DiagnosticWithoutSeverityBlocksFile(t *testing.T) {
	t.Parallel()

	host := NewHost(plugins(
		fakePlugin{name: "a", errs: []diagnostic.Diagnostic{{Code: "bad", Message: "spec is invalid"}}},
	))

	file, err := host.Build(userSpec)
	assert.Nil(t, file)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrValidation))
	assert.Contains(t, err.Error(), "[bad] spec is invalid")
}

func TestBuild_WarningBlocksFile(t *testing.T) {
	t.Parallel()

	warning := diagnostic.Diagnostic{Severity: diagnostic.DiagnosticWarning, Code: "W1", Message: "odd name"}
	host := NewHost(plugins(fakePlugin{name: "a", errs: []diagnostic.Diagnostic{warning}}))

	diags := host.Validate(userSpec)
	assert.Empty(t, diags.Errors)
	require.Len(t, diags.Warnings, 1)

	file, err := host.Build(userSpec)
	assert.Nil(t, file)
	require.ErrorIs(t, err, ErrValidation)
	assert.Contains(t, err.Error(), "warning (a) [RMUser]: [W1] odd name")
}

func TestValidate_MergesPluginsInOrder(t *testing.T) {
	t.Parallel()

	host := NewHost(plugins(
		fakePlugin{name: "a", errs: []diagnostic.Diagnostic{
			{Severity: diagnostic.DiagnosticWarning, Code: "W1"},
			{Code: "E1"},
		}},
		fakePlugin{name: "b", errs: []diagnostic.Diagnostic{{Code: "E2"}}},
	))

	diags := host.Validate(userSpec)
	require.Len(t, diags.Errors, 2)
	assert.Equal(t, "E1", diags.Errors[0].Code)
	assert.Equal(t, "a", diags.Errors[0].Plugin)
	assert.Equal(t, "E2", diags.Errors[1].Code)
	assert.Equal(t, "b", diags.Errors[1].Plugin)
	require.Len(t, diags.Warnings, 1)
	assert.Equal(t, "a", diags.Warnings[0].Plugin)
}

func TestBuild_ComputesActivePluginsOnce(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zap.DebugLevel)
	host := NewHost(plugins(
		fakePlugin{name: "always", extraFiles: []code.File{{Name: "RMUserBuilder"}}},
		fakePlugin{name: "opt-in", requires: []string{"RMOptIn"}},
	), WithLogger(zap.New(core)))

	_, err := host.Build(userSpec)
	require.NoError(t, err)
	assert.Equal(t, 1, logs.FilterMessage("plugin skipped").Len())

	logs.TakeAll()

	requests, err := host.Requests(userSpec, "out")
	require.NoError(t, err)
	require.Len(t, requests, 2)
	assert.Equal(t, 1, logs.FilterMessage("plugin skipped").Len())
}

func TestActivePlugins_RequiredIncludes(t *testing.T) {
	t.Parallel()

	host := NewHost(plugins(
		fakePlugin{name: "always"},
		fakePlugin{name: "opt-in", requires: []string{"RMOptIn"}},
		fakePlugin{name: "default", requires: []string{"RMDefault"}},
		fakePlugin{name: "both", requires: []string{"RMOptIn", "RMDefault"}},
	), WithDefaultIncludes("RMDefault"))

	names := func(spec objectspec.Type) []string {
		var out []string
		for _, p := range host.ActivePlugins(spec) {
			out = append(out, p.Name())
		}

		return out
	}

	assert.Equal(t, []string{"always", "default"}, names(userSpec))
	assert.Equal(t, []string{"always", "opt-in", "default", "both"},
		names(objectspec.Type{Name: "RMUser", Includes: []string{"RMOptIn"}}))
	assert.Equal(t, []string{"always", "opt-in"},
		names(objectspec.Type{Name: "RMUser", Includes: []string{"RMOptIn"}, Excludes: []string{"RMDefault"}}))
}

func TestAdditionalFilesAndTypes(t *testing.T) {
	t.Parallel()

	host := NewHost(plugins(
		fakePlugin{name: "a", extraFiles: []code.File{{Name: "RMUserBuilder"}}},
		fakePlugin{name: "b", extraTypes: []objectspec.Type{{Name: "RMUserPatch"}}},
		fakePlugin{name: "c", extraFiles: []code.File{{Name: "RMUserDiff"}}},
	))

	files := host.AdditionalFiles(userSpec)
	require.Len(t, files, 2)
	assert.Equal(t, "RMUserBuilder", files[0].Name)
	assert.Equal(t, "RMUserDiff", files[1].Name)

	assert.Equal(t, []objectspec.Type{{Name: "RMUserPatch"}}, host.AdditionalTypes(userSpec))
}

func TestRequests_TransformChainsLeftToRight(t *testing.T) {
	t.Parallel()

	host := NewHost(plugins(
		fakePlugin{name: "a", requestDir: "first", extraFiles: []code.File{{Name: "RMUserBuilder"}}},
		fakePlugin{name: "b", requestDir: "second"},
	))

	requests, err := host.Requests(userSpec, "out")
	require.NoError(t, err)
	require.Len(t, requests, 2)

	assert.Equal(t, "RMUser", requests[0].Name)
	assert.Equal(t, "out/first/second", requests[0].Dir)
	assert.Equal(t, "RMUserBuilder", requests[1].Name)
	assert.Equal(t, "out/first/second", requests[1].Dir)
}

func TestNewHost_ClonesPluginList(t *testing.T) {
	t.Parallel()

	list := plugins(fakePlugin{name: "a"})
	host := NewHost(list)
	list[0] = fakePlugin{name: "replaced"}

	active := host.ActivePlugins(userSpec)
	require.Len(t, active, 1)
	assert.Equal(t, "a", active[0].Name())
}
