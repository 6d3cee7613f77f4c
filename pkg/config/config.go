package config

// Config represents the complete server configuration
type Config struct {
	Log        LogConfig    `mapstructure:"log" json:"log" yaml:"log"`
	Server     ServerConfig `mapstructure:"server" json:"server" yaml:"server"`
	FMP        FMPConfig    `mapstructure:"fmp" json:"fmp" yaml:"fmp"`
	Search     ModuleConfig `mapstructure:"search" json:"search" yaml:"search"`
	Quote      ModuleConfig `mapstructure:"quote" json:"quote" yaml:"quote"`
	Company    ModuleConfig `mapstructure:"company" json:"company" yaml:"company"`
	Statements ModuleConfig `mapstructure:"statements" json:"statements" yaml:"statements"`
	Calendar   ModuleConfig `mapstructure:"calendar" json:"calendar" yaml:"calendar"`
	News       ModuleConfig `mapstructure:"news" json:"news" yaml:"news"`
}

// LogConfig contains logging configuration
type LogConfig struct {
	Level string `mapstructure:"level" json:"level" yaml:"level"`
}

// ServerConfig contains server configuration. Mode is "stdio" or "http".
type ServerConfig struct {
	Host string `mapstructure:"host" json:"host" yaml:"host"`
	Port int    `mapstructure:"port" json:"port" yaml:"port"`
	Mode string `mapstructure:"mode" json:"mode" yaml:"mode"`
}

// FMPConfig contains the upstream FMP API configuration. The API key is
// required and normally supplied via the FMP_API_KEY environment variable.
type FMPConfig struct {
	APIKey  string `mapstructure:"apikey" json:"apikey" yaml:"apikey"`
	BaseURL string `mapstructure:"baseUrl" json:"baseUrl" yaml:"baseUrl"`
	Timeout int    `mapstructure:"timeout" json:"timeout" yaml:"timeout"`
}

// ToolsConfig contains tool naming configuration
type ToolsConfig struct {
	Prefix string `mapstructure:"prefix" json:"prefix" yaml:"prefix"`
	Suffix string `mapstructure:"suffix" json:"suffix" yaml:"suffix"`
}

// ModuleConfig contains per-category module configuration
type ModuleConfig struct {
	Enabled bool        `mapstructure:"enabled" json:"enabled" yaml:"enabled"`
	Tools   ToolsConfig `mapstructure:"tools" json:"tools" yaml:"tools"`
}

// Default returns a configuration with every module enabled and the spec'd
// transport defaults.
func Default() Config {
	return Config{
		Log:        LogConfig{Level: "info"},
		Server:     ServerConfig{Host: "localhost", Port: 3000, Mode: "stdio"},
		Search:     ModuleConfig{Enabled: true},
		Quote:      ModuleConfig{Enabled: true},
		Company:    ModuleConfig{Enabled: true},
		Statements: ModuleConfig{Enabled: true},
		Calendar:   ModuleConfig{Enabled: true},
		News:       ModuleConfig{Enabled: true},
	}
}
