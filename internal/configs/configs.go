package configs

import (
	"os"

	"github.com/BurntSushi/toml"
	"github.com/fatih/color"

	lberrors "github.com/phodge/lumberjack/internal/errors"
	"github.com/phodge/lumberjack/internal/level"
	"github.com/phodge/lumberjack/internal/ui"
	"github.com/phodge/lumberjack/internal/verbosity"
)

// DefaultFileName is the per-project configuration file looked up in the
// working directory.
const DefaultFileName = ".lumberjack.toml"

// Config is the optional on-disk configuration: the verbosity default
// table, custom severity levels, and custom display styles. All sections
// are optional; a missing file means compiled-in defaults.
type Config struct {
	Verbosity VerbosityConfig `toml:"verbosity"`
	Levels    []LevelConfig   `toml:"levels"`
	Styles    []StyleConfig   `toml:"styles"`
}

// VerbosityConfig overrides the threshold resolution parameters.
type VerbosityConfig struct {
	// Step is the rank distance each -v flag removes from the base
	// threshold. Zero keeps the built-in step.
	Step int `toml:"step"`

	// EscalationStep is the rank distance added per nesting level. Zero
	// means the verbosity step.
	EscalationStep int `toml:"escalation_step"`

	// Defaults maps context names (interactive, ci, piped, daemon) to
	// level names, overriding the built-in table entry by entry.
	Defaults map[string]string `toml:"defaults"`
}

// LevelConfig registers one custom severity.
type LevelConfig struct {
	Name string `toml:"name"`
	Rank int    `toml:"rank"`
}

// StyleConfig registers one custom display style.
type StyleConfig struct {
	Name string `toml:"name"`
	// Color is a fatih/color foreground name: black, red, green, yellow,
	// blue, magenta, cyan, white, or a "hi-" prefixed bright variant.
	Color string `toml:"color"`
	Bold  bool   `toml:"bold"`
	// Prefix and Suffix decorate the text when color is disabled.
	Prefix string `toml:"prefix"`
	Suffix string `toml:"suffix"`
}

// Load reads the configuration at path. A missing file is not an error:
// it yields an empty Config, meaning compiled-in defaults everywhere.
// Configuration is read-only; the logger never writes it back.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, lberrors.Configf("cannot parse %s: %v", path, err)
	}
	return cfg, nil
}

// BuildRegistry returns the standard registry with the config's custom
// levels registered. Registration failures (duplicate names or ranks)
// propagate as RegistrationErrors.
func (c *Config) BuildRegistry() (*level.Registry, error) {
	reg := level.Standard()
	for _, lc := range c.Levels {
		if _, err := reg.Register(lc.Name, lc.Rank); err != nil {
			return nil, err
		}
	}
	return reg, nil
}

// BuildResolver returns the default resolver with the config's overrides
// applied. Context and level names are validated: an unknown name in the
// table is a ConfigurationError, not a silent default.
func (c *Config) BuildResolver(reg *level.Registry) (verbosity.Resolver, error) {
	r := verbosity.DefaultResolver()
	if c.Verbosity.Step > 0 {
		r.Step = c.Verbosity.Step
	}
	for ctxName, levelName := range c.Verbosity.Defaults {
		kind, err := verbosity.ParseContext(ctxName)
		if err != nil {
			return verbosity.Resolver{}, err
		}
		lv, err := reg.Get(levelName)
		if err != nil {
			return verbosity.Resolver{}, lberrors.Configf(
				"default threshold for context %q names unknown level %q", ctxName, levelName)
		}
		r.Defaults[kind] = lv.Rank()
	}
	return r, nil
}

// BuildStyles returns the default style set with the config's custom
// styles registered on top.
func (c *Config) BuildStyles() (*ui.StyleSet, error) {
	styles := ui.DefaultStyles()
	for _, stc := range c.Styles {
		attrs, err := colorAttrs(stc.Color, stc.Bold)
		if err != nil {
			return nil, err
		}
		f := ui.NewFormatter(color.New(attrs...), stc.Prefix, stc.Suffix)
		if err := styles.Register(stc.Name, f); err != nil {
			return nil, err
		}
	}
	return styles, nil
}

var colorNames = map[string]color.Attribute{
	"black":      color.FgBlack,
	"red":        color.FgRed,
	"green":      color.FgGreen,
	"yellow":     color.FgYellow,
	"blue":       color.FgBlue,
	"magenta":    color.FgMagenta,
	"cyan":       color.FgCyan,
	"white":      color.FgWhite,
	"hi-black":   color.FgHiBlack,
	"hi-red":     color.FgHiRed,
	"hi-green":   color.FgHiGreen,
	"hi-yellow":  color.FgHiYellow,
	"hi-blue":    color.FgHiBlue,
	"hi-magenta": color.FgHiMagenta,
	"hi-cyan":    color.FgHiCyan,
	"hi-white":   color.FgHiWhite,
}

func colorAttrs(name string, bold bool) ([]color.Attribute, error) {
	attr, ok := colorNames[name]
	if !ok {
		return nil, lberrors.Configf("unknown style color %q", name)
	}
	attrs := []color.Attribute{attr}
	if bold {
		attrs = append(attrs, color.Bold)
	}
	return attrs, nil
}
