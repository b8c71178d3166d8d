package config

// Config is the uikit configuration document (uikit.yaml).
type Config struct {
	Version string       `yaml:"version" validate:"required,semver"`
	Theme   ThemeConfig  `yaml:"theme,omitempty"`
	Colors  ColorsConfig `yaml:"colors,omitempty"`
	Log     LogConfig    `yaml:"log,omitempty"`
}

// ThemeConfig selects the colour scheme components render with.
type ThemeConfig struct {
	Scheme string `yaml:"scheme,omitempty" validate:"omitempty,oneof=light dark"`
}

// ColorsConfig drives the sync-colors command.
type ColorsConfig struct {
	Input   string `yaml:"input,omitempty" validate:"omitempty,css_path"`
	Output  string `yaml:"output,omitempty" validate:"omitempty,go_file"`
	Package string `yaml:"package,omitempty" validate:"omitempty,go_ident"`
}

// LogConfig controls the zerolog output of the CLI.
type LogConfig struct {
	Level string `yaml:"level,omitempty" validate:"omitempty,oneof=debug info warn error"`
	Human *bool  `yaml:"human,omitempty"`
}

const (
	DefaultVersion      = "1.0.0"
	DefaultScheme       = "light"
	DefaultColorsInput  = "global.css"
	DefaultColorsOutput = "internal/ui/tokens/colors_gen.go"
	DefaultPackage      = "tokens"
	DefaultLogLevel     = "info"
)

// Default returns the configuration used when no file is supplied.
func Default() *Config {
	cfg := &Config{Version: DefaultVersion}
	cfg.applyDefaults()
	return cfg
}

// HumanLogs reports whether logs should use the console writer.
func (c *Config) HumanLogs() bool {
	if c == nil || c.Log.Human == nil {
		return true
	}
	return *c.Log.Human
}

func (c *Config) applyDefaults() {
	if c.Theme.Scheme == "" {
		c.Theme.Scheme = DefaultScheme
	}
	if c.Colors.Input == "" {
		c.Colors.Input = DefaultColorsInput
	}
	if c.Colors.Output == "" {
		c.Colors.Output = DefaultColorsOutput
	}
	if c.Colors.Package == "" {
		c.Colors.Package = DefaultPackage
	}
	if c.Log.Level == "" {
		c.Log.Level = DefaultLogLevel
	}
}
