package plugin

import (
	"errors"
	"fmt"
	"slices"

	"go.uber.org/zap"

	"objc-codegen/internal/code"
	"objc-codegen/internal/common"
	"objc-codegen/internal/diagnostic"
	"objc-codegen/internal/filewriter"
	"objc-codegen/internal/objc"
)

// ErrValidation is wrapped by Build when any plugin reports a diagnostic.
var ErrValidation = errors.New("plugin validation failed")

type hostConfig struct {
	logger          *zap.Logger
	defaultIncludes []string
}

// HostOption configures a Host.
type HostOption func(*hostConfig)

// WithLogger sets the logger used for activation and validation messages.
func WithLogger(logger *zap.Logger) HostOption {
	return func(c *hostConfig) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithDefaultIncludes enables includes for every spec, in addition to the
// spec's own includes.
func WithDefaultIncludes(includes ...string) HostOption {
	return func(c *hostConfig) {
		c.defaultIncludes = append(c.defaultIncludes, includes...)
	}
}

// Host composes an ordered list of plugins.
type Host[S Spec] struct {
	plugins []Plugin[S]
	config  hostConfig
}

// NewHost returns a host for plugins in registration order.
func NewHost[S Spec](plugins []Plugin[S], opts ...HostOption) *Host[S] {
	cfg := hostConfig{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Host[S]{plugins: slices.Clone(plugins), config: cfg}
}

// ActivePlugins returns the plugins that run for spec, in registration
// order. A plugin runs when each of its required includes is enabled by
// default or by the spec, and the spec excludes none of them.
func (h *Host[S]) ActivePlugins(spec S) []Plugin[S] {
	excluded := spec.PluginExcludes()
	enabled := func(include string) bool {
		if slices.Contains(excluded, include) {
			return false
		}

		return slices.Contains(h.config.defaultIncludes, include) ||
			slices.Contains(spec.PluginIncludes(), include)
	}

	var active []Plugin[S]
	for _, p := range h.plugins {
		required := p.RequiredIncludesToRun()
		if !common.IsEmpty(required) && !allOf(required, enabled) {
			h.config.logger.Debug("plugin skipped",
				zap.String("plugin", p.Name()),
				zap.String("type", spec.TypeName()),
				zap.Strings("requires", required))

			continue
		}

		active = append(active, p)
	}

	return active
}

func allOf(values []string, pred func(string) bool) bool {
	for _, v := range values {
		if !pred(v) {
			return false
		}
	}

	return true
}

// Validate collects the validation errors of every active plugin.
func (h *Host[S]) Validate(spec S) diagnostic.Diagnostics {
	return validate(spec, h.ActivePlugins(spec))
}

func validate[S Spec](spec S, active []Plugin[S]) diagnostic.Diagnostics {
	var diags diagnostic.Diagnostics
	for _, p := range active {
		var own diagnostic.Diagnostics
		for _, d := range p.ValidationErrors(spec) {
			d.Plugin = p.Name()
			if d.TypeName == "" {
				d.TypeName = spec.TypeName()
			}

			own.Add(d)
		}

		diags.Merge(own)
	}

	return diags
}

// Build validates spec and assembles the file contributed by the active
// plugins. Any diagnostic returned by a validation hook, warnings included,
// blocks the file: Build then returns an error wrapping ErrValidation.
func (h *Host[S]) Build(spec S) (*code.File, error) {
	return h.build(spec, h.ActivePlugins(spec))
}

func (h *Host[S]) build(spec S, active []Plugin[S]) (*code.File, error) {
	diags := validate(spec, active)
	if !diags.IsValid() {
		h.config.logger.Warn("validation failed",
			zap.String("type", spec.TypeName()),
			zap.Int("errors", len(diags.Errors)),
			zap.Int("warnings", len(diags.Warnings)))

		return nil, fmt.Errorf("%w for %s: %w", ErrValidation, spec.TypeName(), diags.Error())
	}

	file := assemble(spec, active)

	for _, p := range active {
		file = p.TransformBaseFile(spec, file)
	}

	h.config.logger.Debug("file built",
		zap.String("type", spec.TypeName()),
		zap.Int("plugins", len(active)),
		zap.Int("imports", len(file.Imports)),
		zap.Int("forward_declarations", len(file.ForwardDeclarations)))

	return &file, nil
}

func assemble[S Spec](spec S, plugins []Plugin[S]) code.File {
	file := code.File{Name: spec.TypeName()}

	fileType := common.None[code.FileType]()
	for _, p := range plugins {
		fileType = fileType.Or(p.FileType(spec))
		file.Nullability = file.Nullability.Or(p.Nullability(spec))
		file.SubclassingRestricted = file.SubclassingRestricted || p.SubclassingRestricted(spec)

		file.Comments = append(file.Comments, p.HeaderComments(spec)...)
		file.Imports = append(file.Imports, p.Imports(spec)...)
		file.ForwardDeclarations = append(file.ForwardDeclarations, p.ForwardDeclarations(spec)...)
		file.ImplementedProtocols = append(file.ImplementedProtocols, p.ImplementedProtocols(spec)...)
		file.ClassMethods = append(file.ClassMethods, p.ClassMethods(spec)...)
		file.InstanceMethods = append(file.InstanceMethods, p.InstanceMethods(spec)...)
		file.Properties = append(file.Properties, p.Properties(spec)...)
		file.InstanceVariables = append(file.InstanceVariables, p.InstanceVariables(spec)...)
		file.Functions = append(file.Functions, p.Functions(spec)...)
		file.Macros = append(file.Macros, p.Macros(spec)...)
		file.StaticConstants = append(file.StaticConstants, p.StaticConstants(spec)...)
		file.Enumerations = append(file.Enumerations, p.Enumerations(spec)...)
		file.BlockTypes = append(file.BlockTypes, p.BlockTypes(spec)...)
	}

	file.Type = fileType.OrElse(code.FileTypeObjectiveC)
	file.Imports = dedupImports(file.Imports)
	file.ForwardDeclarations = dedupForwardDeclarations(file.ForwardDeclarations)

	return file
}

type importKey struct {
	file    string
	library common.Option[string]
}

// dedupImports keeps the first import per header and library. A duplicate
// that is public or needs C++ upgrades the kept one.
func dedupImports(imports []objc.Import) []objc.Import {
	var out []objc.Import
	index := make(map[importKey]int)

	for _, imp := range imports {
		key := importKey{file: imp.File, library: imp.Library}
		if i, ok := index[key]; ok {
			out[i].IsPublic = out[i].IsPublic || imp.IsPublic
			out[i].RequiresCPlusPlus = out[i].RequiresCPlusPlus || imp.RequiresCPlusPlus

			continue
		}

		index[key] = len(out)
		out = append(out, imp)
	}

	return out
}

func dedupForwardDeclarations(decls []objc.ForwardDeclaration) []objc.ForwardDeclaration {
	var out []objc.ForwardDeclaration
	seen := make(map[objc.ForwardDeclaration]struct{})

	for _, d := range decls {
		if _, ok := seen[d]; ok {
			continue
		}

		seen[d] = struct{}{}
		out = append(out, d)
	}

	return out
}

// AdditionalFiles returns the extra files the active plugins contribute.
func (h *Host[S]) AdditionalFiles(spec S) []code.File {
	return additionalFiles(spec, h.ActivePlugins(spec))
}

func additionalFiles[S Spec](spec S, active []Plugin[S]) []code.File {
	var files []code.File
	for _, p := range active {
		files = append(files, p.AdditionalFiles(spec)...)
	}

	return files
}

// AdditionalTypes returns the extra specs the active plugins ask to generate.
func (h *Host[S]) AdditionalTypes(spec S) []S {
	var specs []S
	for _, p := range h.ActivePlugins(spec) {
		specs = append(specs, p.AdditionalTypes(spec)...)
	}

	return specs
}

// TransformRequest passes request through every active plugin in order.
func (h *Host[S]) TransformRequest(spec S, request filewriter.Request) filewriter.Request {
	return transformRequest(h.ActivePlugins(spec), request)
}

func transformRequest[S Spec](active []Plugin[S], request filewriter.Request) filewriter.Request {
	for _, p := range active {
		request = p.TransformFileRequest(request)
	}

	return request
}

// Requests builds spec and returns the transformed request for its file
// followed by one request per additional file.
func (h *Host[S]) Requests(spec S, dir string) ([]filewriter.Request, error) {
	active := h.ActivePlugins(spec)

	file, err := h.build(spec, active)
	if err != nil {
		return nil, err
	}

	requests := []filewriter.Request{transformRequest(active, filewriter.NewRequest(dir, file))}
	for _, extra := range additionalFiles(spec, active) {
		requests = append(requests, transformRequest(active, filewriter.NewRequest(dir, &extra)))
	}

	return requests, nil
}
