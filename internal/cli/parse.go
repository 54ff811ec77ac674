package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/tagsoup/internal/configloader"
	"github.com/yaklabco/tagsoup/internal/logging"
	"github.com/yaklabco/tagsoup/internal/ui/pretty"
	"github.com/yaklabco/tagsoup/pkg/config"
	"github.com/yaklabco/tagsoup/pkg/fsutil"
	"github.com/yaklabco/tagsoup/pkg/hast"
	"github.com/yaklabco/tagsoup/pkg/mdconv"
	"github.com/yaklabco/tagsoup/pkg/srcdetect"
	"github.com/yaklabco/tagsoup/pkg/tagsoup"
)

// outputFilePermissions is the file mode for rendered output files.
const outputFilePermissions = 0644

type parseFlags struct {
	format    string
	input     string
	output    string
	positions bool
	compact   bool
	stats     bool
}

func newParseCommand() *cobra.Command {
	flags := &parseFlags{}

	cmd := &cobra.Command{
		Use:   "parse [paths...]",
		Short: "Parse HTML into a node tree",
		Long:  parseLongDescription,
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParse(cmd, args, flags, "")
		},
	}

	addParseFlags(cmd, flags)
	cmd.Flags().StringVar(&flags.format, "format", "",
		"output format: json, html, tree")

	return cmd
}

const parseLongDescription = `Parse HTML documents into node trees.

Reads from stdin when no paths are given. Any input is accepted:
malformed markup is recovered rather than rejected. Markdown documents
are detected and converted to HTML before parsing.

Examples:
  tagsoup parse index.html             # Parse a file, print JSON
  cat page.html | tagsoup parse        # Parse stdin
  tagsoup parse --format tree doc.html # Indented outline
  tagsoup parse --positions doc.html   # Include source spans
  tagsoup parse README.md              # Markdown converted first`

func newFormatCommand() *cobra.Command {
	flags := &parseFlags{}

	cmd := &cobra.Command{
		Use:   "format [paths...]",
		Short: "Normalize HTML markup",
		Long: `Parse HTML and re-emit it as normalized markup.

Tag names are lower-cased, attribute quoting is made consistent, and
implicit closes become explicit. Reads from stdin when no paths are
given.

Examples:
  tagsoup format messy.html            # Print normalized markup
  tagsoup format -o clean.html in.html # Write to a file`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParse(cmd, args, flags, config.FormatHTML)
		},
	}

	addParseFlags(cmd, flags)

	return cmd
}

func addParseFlags(cmd *cobra.Command, flags *parseFlags) {
	cmd.Flags().StringVar(&flags.input, "input", "",
		"input interpretation: auto, html, markdown")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "",
		"write output to file instead of stdout")
	cmd.Flags().BoolVar(&flags.positions, "positions", false,
		"include source spans on output nodes")
	cmd.Flags().BoolVar(&flags.compact, "compact", false,
		"emit compact JSON without indentation")
	cmd.Flags().BoolVar(&flags.stats, "stats", false,
		"print tree statistics to stderr")
}

// runParse is the shared pipeline behind parse and format.
// forcedFormat pins the output format; empty means the flag/config decides.
func runParse(cmd *cobra.Command, args []string, flags *parseFlags, forcedFormat config.OutputFormat) error {
	logger := logging.Default()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = logging.WithLogger(ctx, logger)

	finalCfg, err := resolveConfig(ctx, cmd, flags, forcedFormat)
	if err != nil {
		return err
	}

	logger.Debug("configuration loaded",
		logging.FieldInput, finalCfg.Input,
		logging.FieldFormat, finalCfg.Format,
		logging.FieldPositions, finalCfg.IncludePositions,
	)

	writer, closeWriter, err := openOutput(cmd, finalCfg.Output)
	if err != nil {
		return err
	}
	defer closeWriter()

	colorMode, err := cmd.Flags().GetString("color")
	if err != nil {
		colorMode = "auto"
	}
	styles := pretty.NewStyles(pretty.IsColorEnabled(colorMode, writer))

	opts := finalCfg.ParseOptions()
	converter := mdconv.New()

	documents, err := collectDocuments(ctx, args)
	if err != nil {
		return err
	}

	for _, doc := range documents {
		nodes, err := parseDocument(ctx, doc, finalCfg, opts, converter)
		if err != nil {
			return err
		}

		if flags.stats {
			statsStyles := pretty.NewStyles(pretty.IsColorEnabled(colorMode, cmd.ErrOrStderr()))
			fmt.Fprint(cmd.ErrOrStderr(), statsStyles.FormatStatsOneLine(pretty.Collect(nodes)))
		}

		if err := renderTree(writer, nodes, finalCfg, opts, styles); err != nil {
			return err
		}
	}

	return nil
}

// resolveConfig merges CLI flags over discovered configuration.
func resolveConfig(ctx context.Context, cmd *cobra.Command, flags *parseFlags, forcedFormat config.OutputFormat) (*config.Config, error) {
	cliCfg := &config.Config{}
	if flags.format != "" {
		cliCfg.Format = config.OutputFormat(flags.format)
	}
	if flags.input != "" {
		cliCfg.Input = config.InputFormat(flags.input)
	}
	if flags.positions {
		cliCfg.IncludePositions = true
	}
	cliCfg.Output = flags.output

	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("get config flag: %w", err)
	}

	workDir, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("get working directory: %w", err)
	}

	loadResult, err := configloader.Load(ctx, configloader.LoadOptions{
		WorkingDir:   workDir,
		ExplicitPath: configPath,
		CLIConfig:    cliCfg,
	})
	if err != nil {
		return nil, errors.Join(errors.New("failed to load configuration"), err)
	}

	logger := logging.Default()
	for _, warning := range loadResult.Warnings {
		logger.Warn(warning)
	}
	if len(loadResult.LoadedFrom) > 0 {
		logger.Debug("loaded configuration from", "files", loadResult.LoadedFrom)
	}

	finalCfg := loadResult.Config
	if forcedFormat != "" {
		finalCfg.Format = forcedFormat
	}
	if flags.compact {
		finalCfg.Pretty = false
	}

	return finalCfg, nil
}

// document is one input to the pipeline.
type document struct {
	path    string // empty for stdin
	content []byte
}

// collectDocuments reads the named files, or stdin when no paths are given.
func collectDocuments(ctx context.Context, args []string) ([]document, error) {
	if len(args) == 0 {
		content, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return []document{{content: content}}, nil
	}

	documents := make([]document, 0, len(args))
	for _, path := range args {
		content, err := fsutil.ReadFile(ctx, path)
		if err != nil {
			return nil, err
		}
		documents = append(documents, document{path: path, content: content})
	}
	return documents, nil
}

// parseDocument runs one document through detection, conversion, and parsing.
func parseDocument(
	ctx context.Context,
	doc document,
	cfg *config.Config,
	opts tagsoup.Options,
	converter *mdconv.Converter,
) ([]*hast.Node, error) {
	logger := logging.FromContext(ctx)
	content := doc.content

	markdown := false
	switch cfg.Input {
	case config.InputMarkdown:
		markdown = true
	case config.InputHTML:
		markdown = false
	default:
		markdown = srcdetect.Detect(doc.path, content) == srcdetect.FormatMarkdown
	}

	logger.Debug("parsing document",
		logging.FieldPath, doc.path,
		logging.FieldBytes, len(content),
		logging.FieldMarkdown, markdown,
	)

	if markdown {
		converted, err := converter.Convert(ctx, content)
		if err != nil {
			return nil, fmt.Errorf("convert %s: %w", displayPath(doc.path), err)
		}
		content = converted
	}

	return tagsoup.ParseWithOptions(string(content), opts), nil
}

// renderTree emits a node tree in the configured output format.
func renderTree(writer io.Writer, nodes []*hast.Node, cfg *config.Config, opts tagsoup.Options, styles *pretty.Styles) error {
	switch cfg.Format {
	case config.FormatHTML:
		if _, err := io.WriteString(writer, tagsoup.StringifyWithOptions(nodes, opts)); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
		_, err := io.WriteString(writer, "\n")
		return err

	case config.FormatTree:
		renderer := pretty.NewTreeRenderer(styles, writer)
		_, err := io.WriteString(writer, renderer.Render(nodes))
		return err

	default: // json
		var (
			data []byte
			err  error
		)
		if cfg.Pretty {
			data, err = json.MarshalIndent(nodes, "", "  ")
		} else {
			data, err = json.Marshal(nodes)
		}
		if err != nil {
			return fmt.Errorf("marshal tree: %w", err)
		}
		if _, err := writer.Write(append(data, '\n')); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
		return nil
	}
}

// openOutput returns the destination writer and a close function.
func openOutput(cmd *cobra.Command, path string) (io.Writer, func(), error) {
	if path == "" {
		return cmd.OutOrStdout(), func() {}, nil
	}

	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, outputFilePermissions)
	if err != nil {
		return nil, nil, fmt.Errorf("open output file: %w", err)
	}
	return file, func() { _ = file.Close() }, nil
}

// displayPath names a document in error messages.
func displayPath(path string) string {
	if path == "" {
		return "stdin"
	}
	return path
}
