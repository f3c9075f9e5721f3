package cfgcore

import (
	"time"

	"github.com/open-control-systems/clock-guard/components/timeguard/tgcore"
)

// Config is the application configuration.
type Config struct {
	Authority AuthorityConfig `mapstructure:"authority"`
	DB        DBConfig        `mapstructure:"db"`
	Log       LogConfig       `mapstructure:"log"`
	Tolerance ToleranceConfig `mapstructure:"tolerance"`
	Watch     WatchConfig     `mapstructure:"watch"`
	Server    ServerConfig    `mapstructure:"server"`
	MDNS      MDNSConfig      `mapstructure:"mdns"`
	InfluxDB  InfluxDBConfig  `mapstructure:"influxdb"`

	// Timezone is an IANA time zone sent to the time server, local one if empty.
	Timezone string `mapstructure:"timezone"`
}

// AuthorityConfig describes the remote time server.
type AuthorityConfig struct {
	URL     string        `mapstructure:"url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// DBConfig describes the baseline storage. Empty path keeps the baseline in memory.
type DBConfig struct {
	Path string `mapstructure:"path"`
}

// LogConfig describes the log file. Empty path keeps logging to stderr.
type LogConfig struct {
	Path       string `mapstructure:"path"`
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups"`
}

// ToleranceConfig contains the verification tolerances.
type ToleranceConfig struct {
	BootTime time.Duration `mapstructure:"boot_time"`
	Server   time.Duration `mapstructure:"server"`
}

// WatchConfig configures the periodic verification.
type WatchConfig struct {
	Interval      time.Duration `mapstructure:"interval"`
	ExitOnSuccess bool          `mapstructure:"exit_on_success"`
}

// ServerConfig configures the HTTP server.
type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
}

// MDNSConfig configures the mDNS advertisement of the HTTP server.
type MDNSConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Instance string `mapstructure:"instance"`
}

// InfluxDBConfig configures the verification results export, disabled if URL is empty.
type InfluxDBConfig struct {
	URL    string `mapstructure:"url"`
	Org    string `mapstructure:"org"`
	Token  string `mapstructure:"token"`
	Bucket string `mapstructure:"bucket"`
}

// DefaultConfig returns the configuration used when nothing is overridden.
func DefaultConfig() Config {
	return Config{
		Authority: AuthorityConfig{
			URL:     "https://santoshm.com.np/englishdate/index.php",
			Timeout: time.Second * 10,
		},
		Log: LogConfig{
			MaxSizeMB:  10,
			MaxBackups: 3,
		},
		Tolerance: ToleranceConfig{
			BootTime: tgcore.DefaultBootTimeTolerance,
			Server:   tgcore.DefaultServerTolerance,
		},
		Watch: WatchConfig{
			Interval: time.Minute * 5,
		},
		Server: ServerConfig{
			Host: "0.0.0.0",
			Port: 8080,
		},
		MDNS: MDNSConfig{
			Instance: "clock-guard",
		},
	}
}

// CheckerParams converts the configuration to the checker parameters.
func (c *Config) CheckerParams() tgcore.Params {
	return tgcore.Params{
		BootTimeTolerance: c.Tolerance.BootTime,
		ServerTolerance:   c.Tolerance.Server,
		Timezone:          c.Timezone,
	}
}
