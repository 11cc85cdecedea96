package format

import "fmt"

// QuoteStyle is the preferred quote style for string literals.
type QuoteStyle int

const (
	// QuotePreserve keeps whatever quote character the source already used.
	QuotePreserve QuoteStyle = iota
	// QuoteDouble prefers double quotes when the conversion is safe.
	QuoteDouble
	// QuoteSingle prefers single quotes when the conversion is safe.
	QuoteSingle
)

func (q QuoteStyle) String() string {
	switch q {
	case QuotePreserve:
		return "preserve"
	case QuoteDouble:
		return "double"
	case QuoteSingle:
		return "single"
	default:
		return "unknown"
	}
}

// MarshalYAML renders a QuoteStyle the way a human would write it in a
// config file, lowercase, matching the rest of the key's values.
func (q QuoteStyle) MarshalYAML() (any, error) {
	return q.String(), nil
}

// UnmarshalYAML accepts the lowercase names written in a config file.
func (q *QuoteStyle) UnmarshalYAML(unmarshal func(any) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}
	switch s {
	case "preserve":
		*q = QuotePreserve
	case "double":
		*q = QuoteDouble
	case "single":
		*q = QuoteSingle
	default:
		return fmt.Errorf("unknown quote_style %q: expected preserve, double, or single", s)
	}
	return nil
}

// BracketSpacing controls whether collections get a space just inside their
// delimiters.
type BracketSpacing int

const (
	// SpacingSpaced renders `{ a: 1 }` and `[ 1, 2 ]`.
	SpacingSpaced BracketSpacing = iota
	// SpacingCompact renders `{a: 1}` and `[1, 2]`.
	SpacingCompact
)

func (b BracketSpacing) String() string {
	switch b {
	case SpacingSpaced:
		return "spaced"
	case SpacingCompact:
		return "compact"
	default:
		return "unknown"
	}
}

func (b BracketSpacing) MarshalYAML() (any, error) {
	return b.String(), nil
}

func (b *BracketSpacing) UnmarshalYAML(unmarshal func(any) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}
	switch s {
	case "spaced":
		*b = SpacingSpaced
	case "compact":
		*b = SpacingCompact
	default:
		return fmt.Errorf("unknown bracket_spacing %q: expected spaced or compact", s)
	}
	return nil
}

// TrailingComma controls whether a multiline collection gets a trailing
// comma after its last element.
type TrailingComma int

const (
	// CommaAlways adds a trailing comma to every multiline collection.
	CommaAlways TrailingComma = iota
	// CommaNever never adds one.
	CommaNever
)

func (c TrailingComma) String() string {
	switch c {
	case CommaAlways:
		return "always"
	case CommaNever:
		return "never"
	default:
		return "unknown"
	}
}

func (c TrailingComma) MarshalYAML() (any, error) {
	return c.String(), nil
}

func (c *TrailingComma) UnmarshalYAML(unmarshal func(any) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}
	switch s {
	case "always":
		*c = CommaAlways
	case "never":
		*c = CommaNever
	default:
		return fmt.Errorf("unknown trailing_comma %q: expected always or never", s)
	}
	return nil
}

// ConfigError reports an out-of-range configuration value.
type ConfigError struct {
	Message string
}

func (e *ConfigError) Error() string {
	return e.Message
}

// Config holds every knob the layout emitter consults. Zero-value Config is
// not a usable configuration; callers should start from Default() and
// override individual fields.
type Config struct {
	IndentWidth    int            `yaml:"indent_width"`
	MaxWidth       int            `yaml:"max_width"`
	QuoteStyle     QuoteStyle     `yaml:"quote_style"`
	BracketSpacing BracketSpacing `yaml:"bracket_spacing"`
	TrailingComma  TrailingComma  `yaml:"trailing_comma"`
}

// Default returns nufmt's stock configuration: 2-space indent, 100-column
// width, double quotes, spaced brackets, trailing commas always.
func Default() Config {
	return Config{
		IndentWidth:    2,
		MaxWidth:       100,
		QuoteStyle:     QuoteDouble,
		BracketSpacing: SpacingSpaced,
		TrailingComma:  CommaAlways,
	}
}

// Validate checks that every field is within its accepted range.
func (c Config) Validate() error {
	if c.IndentWidth <= 0 || c.IndentWidth > 16 {
		return &ConfigError{Message: fmt.Sprintf("indent_width must be between 1 and 16, got %d", c.IndentWidth)}
	}
	if c.MaxWidth < 20 || c.MaxWidth > 500 {
		return &ConfigError{Message: fmt.Sprintf("max_width must be between 20 and 500, got %d", c.MaxWidth)}
	}
	return nil
}

// Indent returns the literal whitespace for the given indent level.
func (c Config) Indent(level int) string {
	if level <= 0 {
		return ""
	}
	n := level * c.IndentWidth
	buf := make([]byte, n)
	for i := range buf {
		buf[i] = ' '
	}
	return string(buf)
}
