// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rfaulhaber/proc-macro-workshop/internal/logger"
	"github.com/rfaulhaber/proc-macro-workshop/internal/prompts"
	"github.com/rfaulhaber/proc-macro-workshop/internal/render"
	"github.com/rfaulhaber/proc-macro-workshop/internal/session"
)

type generateOptions struct {
	format   string
	output   string
	wrapper  string
	pkg      string
	imports  []string
	stdout   bool
	emitType bool
	watch    bool
}

func newGenerateCmd(printers render.Register) *cobra.Command {
	opts := &generateOptions{}

	cmd := &cobra.Command{
		Use:   "generate <definition-file>...",
		Short: "Generate builder source for record definitions",
		Long: fmt.Sprintf(`Generate a builder for every record type in the given definition files.

Definition files are YAML or JSON, either buildergen definitions or JSON
Schema objects. Each input file produces one output file named
<file>_builder<ext> in the output directory.

Available formats: %s`, strings.Join(printers.Available(), ", ")),
		Example: `  # Generate Go builders next to the definitions
  buildergen generate point.yaml

  # Generate Rust builders with a custom optional wrapper
  buildergen generate --format rust --wrapper Maybe point.yaml

  # Print to stdout instead of writing files
  buildergen generate --stdout point.yaml

  # Regenerate whenever a definition changes
  buildergen generate --watch --output models *.yaml`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, printers, opts, args)
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", "", fmt.Sprintf("Output format (%s)", strings.Join(printers.Available(), ", ")))
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Output directory (also used as the Go package name)")
	cmd.Flags().StringVarP(&opts.wrapper, "wrapper", "w", "", "Optional wrapper type name (defaults to the format's own)")
	cmd.Flags().StringVarP(&opts.pkg, "package", "p", "", "Package name for generated Go files")
	cmd.Flags().StringSliceVar(&opts.imports, "import", nil, "Extra import for generated files (repeatable)")
	cmd.Flags().BoolVar(&opts.stdout, "stdout", false, "Write generated source to stdout")
	cmd.Flags().BoolVar(&opts.emitType, "emit-type", false, "Also declare the record types")
	cmd.Flags().BoolVar(&opts.watch, "watch", false, "Regenerate when a definition file changes")

	return cmd
}

// generator holds the resolved settings of one generate run.
type generator struct {
	log     logger.Logger
	printer render.Printer
	wrapper string
	output  string
	stdout  bool
	render  render.Options
}

func runGenerate(cmd *cobra.Command, printers render.Register, opts *generateOptions, files []string) error {
	sess, err := session.RequireFromCommand(cmd)
	if err != nil {
		return err
	}
	cfg := sess.Config

	if opts.stdout && opts.watch {
		return fmt.Errorf("--stdout and --watch are mutually exclusive")
	}

	format := opts.format
	if format == "" {
		format = cfg.Format
	}
	output := opts.output
	if output == "" {
		output = cfg.Output
	}

	if prompts.IsInteractive() && (format == "" || (output == "" && !opts.stdout)) {
		if err := prompts.RunGenerateForm(&format, &output, output == "" && !opts.stdout, printers.Available()); err != nil {
			return err
		}
	}
	if output == "" {
		output = "."
	}

	printer, err := resolvePrinter(printers, format, cfg)
	if err != nil {
		return err
	}

	log := logger.FromContext(cmd.Context())

	g := &generator{
		log:     log,
		printer: printer,
		wrapper: resolveWrapper(opts.wrapper, cfg, printer),
		output:  output,
		stdout:  opts.stdout,
		render: render.Options{
			Package:  opts.pkg,
			Imports:  append(append([]string{}, cfg.Imports...), opts.imports...),
			EmitType: opts.emitType || cfg.EmitType,
		},
	}
	if g.render.Package == "" {
		g.render.Package = cfg.Package
	}
	if g.render.Package == "" {
		g.render.Package = packageFromDir(output)
	}

	log.Debug("generating", "format", printer.Name(), "wrapper", g.wrapper, "output", output, "files", len(files))

	if !g.stdout {
		if err := os.MkdirAll(output, 0o750); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Generating %s builders for %d file(s)...\n", printer.Name(), len(files))
	}

	var errors []string
	var written []prompts.ResultField

	for _, file := range files {
		outFile, err := g.generate(cmd, file)
		if err != nil {
			errors = append(errors, fmt.Sprintf("%s: %v", file, err))
			continue
		}
		if outFile != "" {
			written = append(written, prompts.ResultField{Label: file, Value: outFile})
		}
	}

	if !g.stdout {
		prompts.PrintResult(cmd.OutOrStdout(), written,
			fmt.Sprintf("Successfully generated %d of %d file(s)", len(written), len(files)))
	}

	if len(errors) > 0 {
		prompts.PrintErrors(cmd.ErrOrStderr(), errors)
		return fmt.Errorf("failed to generate %d file(s)", len(errors))
	}

	if opts.watch {
		return watchDefinitions(cmd.Context(), files, func(file string) error {
			outFile, err := g.generate(cmd, file)
			if err == nil {
				log.Info("regenerated", "file", file, "output", outFile)
			}
			return err
		})
	}

	return nil
}

// generate renders one definition file and writes it out.
// It returns the written path, or "" when writing to stdout.
func (g *generator) generate(cmd *cobra.Command, file string) (string, error) {
	plans, err := loadPlans(file, g.wrapper, g.log)
	if err != nil {
		return "", err
	}

	opts := g.render
	opts.Source = filepath.Base(file)

	data, err := g.printer.Render(plans, opts)
	if err != nil {
		return "", err
	}

	if g.stdout {
		_, err := cmd.OutOrStdout().Write(data)
		return "", err
	}

	outFile := filepath.Join(g.output, outputName(file, g.printer.FileExtension()))
	if err := os.WriteFile(outFile, data, 0o600); err != nil {
		return "", err
	}
	return outFile, nil
}
