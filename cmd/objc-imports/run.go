package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"objc-codegen/internal/common"
	"objc-codegen/internal/config"
	"objc-codegen/internal/imports"
	"objc-codegen/internal/objc"
	"objc-codegen/internal/objectspec"
	"objc-codegen/primitive"
)

type options struct {
	configPath   string
	library      string
	listBuiltins bool
	verbose      bool
	types        []string
}

func parseArgs(args []string) (*options, error) {
	opts := &options{}

	fs := pflag.NewFlagSet("objc-imports", pflag.ContinueOnError)
	fs.StringVarP(&opts.configPath, "config", "c", "", "configuration file with type lookups")
	fs.StringVarP(&opts.library, "library", "l", "", "library of the generated object (overrides config)")
	fs.BoolVar(&opts.listBuiltins, "list-builtins", false, "list the registered system types")
	fs.BoolVarP(&opts.verbose, "verbose", "v", false, "log debug output to stderr")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	opts.types = fs.Args()
	if len(opts.types) == 0 && !opts.listBuiltins {
		return nil, errors.New("at least one TYPE[:REFERENCE] is required")
	}

	return opts, nil
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if !verbose {
		return zap.NewNop(), nil
	}

	return zap.NewDevelopment()
}

func run(args []string, out io.Writer) error {
	opts, err := parseArgs(args)
	if err != nil {
		return err
	}

	logger, err := newLogger(opts.verbose)
	if err != nil {
		return fmt.Errorf("creating logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	if opts.listBuiltins {
		return render(out, builtinRows())
	}

	cfg := &config.File{}
	if opts.configPath != "" {
		cfg, err = config.LoadFile(opts.configPath)
		if err != nil {
			return err
		}

		logger.Debug("config loaded",
			zap.String("path", opts.configPath),
			zap.Int("type_lookups", len(cfg.TypeLookups)))
	}

	library := common.FromString(opts.library).Or(cfg.DefaultLibrary())
	lookups := cfg.Lookups()

	rows := [][]string{{"TYPE", "KIND", "IMPORT", "FORWARD", "PUBLIC", "RESOLVED"}}
	for _, arg := range opts.types {
		attr := attributeFor(arg)
		logger.Debug("classifying", zap.String("name", attr.Type.Name), zap.String("reference", attr.Type.Reference))
		rows = append(rows, classify(library, lookups, attr))
	}

	return render(out, rows)
}

// attributeFor parses NAME or NAME:REFERENCE. Without a reference, built-in
// names are taken by value and anything else as an object pointer.
func attributeFor(arg string) objectspec.Attribute {
	name, reference, found := strings.Cut(arg, ":")
	if !found {
		reference = name
		if primitive.FromType(objc.Type{Name: name, Reference: name}) == primitive.KindUnmatched {
			reference = name + " *"
		}
	}

	return objectspec.Attribute{Name: name, Type: objectspec.AttributeType{Name: name, Reference: reference}}
}

func classify(library common.Option[string], lookups []objectspec.TypeLookup, attr objectspec.Attribute) []string {
	name := attr.Type.Name
	computed := objectspec.ComputeTypeOfAttribute(attr)

	return []string{
		name,
		primitive.FromType(computed).String(),
		strconv.FormatBool(imports.IsImportRequiredForTypeWithName(name)),
		strconv.FormatBool(imports.CanForwardDeclareTypeForAttribute(attr)),
		strconv.FormatBool(imports.RequiresPublicImportForType(name, computed)),
		resolved(library, lookups, attr),
	}
}

func resolved(library common.Option[string], lookups []objectspec.TypeLookup, attr objectspec.Attribute) string {
	for _, lookup := range lookups {
		if lookup.Name == attr.Type.Name {
			return describe(imports.ImportForTypeLookup(library, !lookup.CanForwardDeclare, lookup)) + " (lookup)"
		}
	}

	if !imports.ShouldIncludeImportForType(lookups, attr.Type.Name) {
		return "-"
	}

	return describe(imports.ImportForAttribute(library, false, attr))
}

func describe(imp objc.Import) string {
	visibility := "private"
	if imp.IsPublic {
		visibility = "public"
	}

	return imp.String() + " " + visibility
}

func builtinRows() [][]string {
	rows := [][]string{{"TYPE", "IMPORT"}}
	for _, name := range primitive.SystemTypeNames() {
		entry, _ := primitive.LookupSystemType(name)
		rows = append(rows, []string{name, common.Match(entry, describe, func() string { return "-" })})
	}

	return rows
}

func render(out io.Writer, rows [][]string) error {
	table, err := pterm.DefaultTable.WithHasHeader().WithData(pterm.TableData(rows)).Srender()
	if err != nil {
		return fmt.Errorf("rendering table: %w", err)
	}

	_, err = fmt.Fprintln(out, table)

	return err
}
