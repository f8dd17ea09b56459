package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"fern/internal/diagfmt"
	"fern/internal/driver"
	"fern/internal/project"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] [file.fn | dir]",
	Short: "Tokenize fern source",
	Long: `Tokenize breaks fern source into its constituent tokens.

With no argument a builtin sample program is tokenized. A directory argument
tokenizes every .fn file underneath it.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTokenize,
}

func init() {
	tokenizeCmd.Flags().String("format", "pretty", "output format (pretty|json|msgpack)")
}

func runTokenize(cmd *cobra.Command, args []string) error {
	format, colorMode, maxDiagnostics, err := tokenizeSettings(cmd)
	if err != nil {
		return err
	}

	switch format {
	case "pretty", "json", "msgpack":
	default:
		return fmt.Errorf("unknown format: %s", format)
	}

	useColor := colorMode == "on" || (colorMode == "auto" && isTerminal(os.Stderr))

	if len(args) == 0 {
		res := driver.TokenizeBytes("<sample>", []byte(builtinSample), maxDiagnostics)
		return renderResult(res, format, useColor)
	}

	path := args[0]
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("cannot stat %s: %w", path, err)
	}

	if info.IsDir() {
		results, err := driver.TokenizeDir(cmd.Context(), path, maxDiagnostics)
		if err != nil {
			return fmt.Errorf("tokenization failed: %w", err)
		}
		failed := 0
		for _, r := range results {
			fmt.Fprintf(os.Stdout, "== %s ==\n", r.Path)
			if err := renderResult(r.Result, format, useColor); err != nil {
				failed++
			}
		}
		if failed > 0 {
			return fmt.Errorf("%d of %d files failed to tokenize", failed, len(results))
		}
		return nil
	}

	res, err := driver.Tokenize(path, maxDiagnostics)
	if err != nil {
		return fmt.Errorf("tokenization failed: %w", err)
	}
	return renderResult(res, format, useColor)
}

// renderResult prints diagnostics to stderr and, when tokenization succeeded,
// the token stream to stdout in the requested format.
func renderResult(res *driver.TokenizeResult, format string, useColor bool) error {
	if res.Bag.HasWarnings() {
		res.Bag.Sort()
		opts := diagfmt.PrettyOpts{
			Color:   useColor,
			Context: 1,
		}
		diagfmt.Pretty(os.Stderr, res.Bag, res.FileSet, opts)
	}

	if res.Err != nil {
		return fmt.Errorf("lexical error: %w", res.Err)
	}

	switch format {
	case "pretty":
		return diagfmt.FormatTokensPretty(os.Stdout, res.Tokens)
	case "json":
		return diagfmt.FormatTokensJSON(os.Stdout, res.Tokens)
	case "msgpack":
		return diagfmt.FormatTokensMsgpack(os.Stdout, res.File.Path, res.Tokens)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// tokenizeSettings resolves flags against fern.toml defaults: explicit flags
// win, then the manifest, then the built-in defaults.
func tokenizeSettings(cmd *cobra.Command) (format, colorMode string, maxDiagnostics int, err error) {
	format, err = cmd.Flags().GetString("format")
	if err != nil {
		return "", "", 0, fmt.Errorf("failed to get format flag: %w", err)
	}
	colorMode, err = cmd.Root().PersistentFlags().GetString("color")
	if err != nil {
		return "", "", 0, fmt.Errorf("failed to get color flag: %w", err)
	}
	maxDiagnostics, err = cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return "", "", 0, fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}

	manifest, ok, err := project.LoadManifest(".")
	if err != nil {
		return "", "", 0, err
	}
	if !ok {
		return format, colorMode, maxDiagnostics, nil
	}

	if !cmd.Flags().Changed("format") && manifest.Config.Output.Format != "" {
		format = manifest.Config.Output.Format
	}
	if !cmd.Root().PersistentFlags().Changed("color") && manifest.Config.Output.Color != "" {
		colorMode = manifest.Config.Output.Color
	}
	if !cmd.Root().PersistentFlags().Changed("max-diagnostics") && manifest.Config.Limits.MaxDiagnostics > 0 {
		maxDiagnostics = manifest.Config.Limits.MaxDiagnostics
	}
	return format, colorMode, maxDiagnostics, nil
}
