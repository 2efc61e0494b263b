package config

import (
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/cwbudde/ebus-comparator/circuit/comparator"
	"github.com/cwbudde/ebus-comparator/circuit/divider"
	"github.com/cwbudde/ebus-comparator/dsp/signal"
	"github.com/cwbudde/ebus-comparator/plot"
)

// ErrInvalidChart is returned for unusable chart dimensions or output paths.
var ErrInvalidChart = errors.New("config: invalid chart settings")

// Config holds all settings for one chart run
type Config struct {
	Divider    DividerConfig    `mapstructure:"divider" yaml:"divider"`
	Comparator ComparatorConfig `mapstructure:"comparator" yaml:"comparator"`
	Sweep      SweepConfig      `mapstructure:"sweep" yaml:"sweep"`
	Chart      ChartConfig      `mapstructure:"chart" yaml:"chart"`
	Log        LogConfig        `mapstructure:"log" yaml:"log"`
}

// DividerConfig holds the resistor pair in ohms
type DividerConfig struct {
	R1 float64 `mapstructure:"r1" yaml:"r1"`
	R2 float64 `mapstructure:"r2" yaml:"r2"`
}

// ComparatorConfig holds the reference voltage and output levels
type ComparatorConfig struct {
	Threshold float64 `mapstructure:"threshold" yaml:"threshold"`
	Low       float64 `mapstructure:"low" yaml:"low"`
	High      float64 `mapstructure:"high" yaml:"high"`
}

// SweepConfig holds the bus voltage range
type SweepConfig struct {
	Start float64 `mapstructure:"start" yaml:"start"`
	Stop  float64 `mapstructure:"stop" yaml:"stop"`
	Step  float64 `mapstructure:"step" yaml:"step"`
}

// ChartConfig holds output settings. LabelX and LabelY place the
// trip-point label in data coordinates.
type ChartConfig struct {
	Output string  `mapstructure:"output" yaml:"output"`
	Width  int     `mapstructure:"width" yaml:"width"`
	Height int     `mapstructure:"height" yaml:"height"`
	LabelX float64 `mapstructure:"label_x" yaml:"label_x"`
	LabelY float64 `mapstructure:"label_y" yaml:"label_y"`
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level string `mapstructure:"level" yaml:"level"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("divider.r1", 237.0)
	v.SetDefault("divider.r2", 100.0)
	v.SetDefault("comparator.threshold", 3.5)
	v.SetDefault("comparator.low", 0.0)
	v.SetDefault("comparator.high", 7.0)
	v.SetDefault("sweep.start", 9.0)
	v.SetDefault("sweep.stop", 24.5)
	v.SetDefault("sweep.step", 0.01)
	v.SetDefault("chart.output", "outputs.png")
	v.SetDefault("chart.width", 800)
	v.SetDefault("chart.height", 600)
	v.SetDefault("chart.label_x", 14.0)
	v.SetDefault("chart.label_y", 3.2)
	v.SetDefault("log.level", "info")
}

// Default returns the built-in configuration.
func Default() *Config {
	cfg, err := Load("")
	if err != nil {
		// Built-in defaults always decode and validate.
		panic(err)
	}
	return cfg
}

// Load reads configuration from path on top of the built-in defaults and
// validates it. An empty path yields the defaults. The file type follows
// the extension (yaml, json, toml). Environment variables are not
// consulted.
func Load(path string) (*Config, error) {
	cfg, err := Read(path)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Read is Load without validation. Callers that override values after
// reading must call Validate themselves.
func Read(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: decode: %w", err)
	}

	return &cfg, nil
}

// Validate checks every section by constructing the corresponding
// component.
func (c *Config) Validate() error {
	if _, err := c.BuildDivider(); err != nil {
		return err
	}
	if _, err := c.BuildComparator(); err != nil {
		return err
	}
	if _, err := c.BuildRange(); err != nil {
		return err
	}
	if c.Chart.Width <= 0 || c.Chart.Height <= 0 {
		return fmt.Errorf("%w: size %dx%d", ErrInvalidChart, c.Chart.Width, c.Chart.Height)
	}
	if _, err := plot.FormatFromPath(c.Chart.Output); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidChart, err)
	}
	if _, err := c.LogLevel(); err != nil {
		return err
	}
	return nil
}

// BuildDivider constructs the configured divider.
func (c *Config) BuildDivider() (*divider.Divider, error) {
	return divider.New(c.Divider.R1, c.Divider.R2)
}

// BuildComparator constructs the configured comparator.
func (c *Config) BuildComparator() (*comparator.Comparator, error) {
	return comparator.New(c.Comparator.Threshold, c.Comparator.Low, c.Comparator.High)
}

// BuildRange constructs the configured sweep range.
func (c *Config) BuildRange() (signal.Range, error) {
	return signal.NewRange(c.Sweep.Start, c.Sweep.Stop, c.Sweep.Step)
}

// Figure returns the chart layout with the configured size.
func (c *Config) Figure() *plot.Figure {
	fig := plot.DefaultFigure()
	fig.Width = c.Chart.Width
	fig.Height = c.Chart.Height
	return fig
}

// LogLevel parses the configured log level.
func (c *Config) LogLevel() (zerolog.Level, error) {
	lvl, err := zerolog.ParseLevel(c.Log.Level)
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("config: log level: %w", err)
	}
	return lvl, nil
}

// WriteYAML writes the configuration as YAML.
func (c *Config) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return fmt.Errorf("config: encode: %w", err)
	}
	return enc.Close()
}
