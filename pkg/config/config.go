// Package config defines core configuration types for tagsoup.
// These types are pure data structures with no dependency on any
// particular config loader.
package config

// OutputFormat specifies how a parsed tree is rendered.
type OutputFormat string

const (
	// FormatJSON emits the node tree as JSON.
	FormatJSON OutputFormat = "json"
	// FormatHTML re-serializes the tree as markup.
	FormatHTML OutputFormat = "html"
	// FormatTree renders an indented node outline for terminals.
	FormatTree OutputFormat = "tree"
)

// IsValid returns true if the output format is recognized.
func (f OutputFormat) IsValid() bool {
	switch f {
	case FormatJSON, FormatHTML, FormatTree:
		return true
	default:
		return false
	}
}

// InputFormat specifies how input documents are interpreted.
type InputFormat string

const (
	// InputAuto detects HTML versus Markdown per document.
	InputAuto InputFormat = "auto"
	// InputHTML treats every document as HTML.
	InputHTML InputFormat = "html"
	// InputMarkdown converts every document from Markdown first.
	InputMarkdown InputFormat = "markdown"
)

// IsValid returns true if the input format is recognized.
func (f InputFormat) IsValid() bool {
	switch f {
	case InputAuto, InputHTML, InputMarkdown:
		return true
	default:
		return false
	}
}

// TagTables holds additions to the built-in tag classification tables.
// Entries extend the defaults; they never replace them.
type TagTables struct {
	// Void tags never have children or a closing tag.
	Void []string `mapstructure:"void" yaml:"void"`

	// Closing tags implicitly close a same-named open sibling.
	Closing []string `mapstructure:"closing" yaml:"closing"`

	// Childless tags hold raw text that is not parsed as markup.
	Childless []string `mapstructure:"childless" yaml:"childless"`

	// AncestorBreakers suppress implicit closing across the named ancestors.
	AncestorBreakers map[string][]string `mapstructure:"ancestor_breakers" yaml:"ancestor_breakers"`
}

// Config is the root configuration structure for tagsoup.
type Config struct {
	// Input specifies how documents are interpreted ("auto", "html", "markdown").
	Input InputFormat `mapstructure:"input" yaml:"input"`

	// Format specifies the output rendering ("json", "html", "tree").
	Format OutputFormat `mapstructure:"format" yaml:"format"`

	// IncludePositions retains source spans on output nodes.
	IncludePositions bool `mapstructure:"include_positions" yaml:"include_positions"`

	// Pretty indents JSON output.
	Pretty bool `mapstructure:"pretty" yaml:"pretty"`

	// Tags extends the built-in tag classification tables.
	Tags TagTables `mapstructure:"tags" yaml:"tags"`

	// CLI-level options (not persisted to config files).

	// Output is the destination path; empty means stdout.
	Output string `mapstructure:"-" yaml:"-"`

	// Debug enables debug logging.
	Debug bool `mapstructure:"-" yaml:"-"`
}

// NewConfig returns a Config with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Input:            InputAuto,
		Format:           FormatJSON,
		IncludePositions: false,
		Pretty:           true,
	}
}
