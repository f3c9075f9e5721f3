package cfgcore

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/open-control-systems/clock-guard/components/status"
)

// EnvPrefix is a prefix of environment variables overriding the configuration,
// e.g. CLOCK_GUARD_AUTHORITY_URL overrides "authority.url".
const EnvPrefix = "CLOCK_GUARD"

// Loader merges defaults, an optional config file, environment variables and
// command line flags, in the increasing order of priority.
//
// References:
//   - https://github.com/spf13/viper
type Loader struct {
	v          *viper.Viper
	configPath string
}

// NewLoader is an initialization of Loader.
func NewLoader() *Loader {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	setDefaults(v, DefaultConfig())

	return &Loader{
		v: v,
	}
}

// WithConfigPath sets a config file, the file format is derived from the extension.
func (l *Loader) WithConfigPath(path string) *Loader {
	l.configPath = path

	return l
}

// BindFlag overrides key with flag, if the flag was set on the command line.
func (l *Loader) BindFlag(key string, flag *pflag.Flag) error {
	if flag == nil {
		return fmt.Errorf("config-loader: unknown flag: key=%s: %w", key, status.StatusInvalidState)
	}

	return l.v.BindPFlag(key, flag)
}

// Load reads and validates the configuration.
func (l *Loader) Load() (*Config, error) {
	if l.configPath != "" {
		l.v.SetConfigFile(l.configPath)

		if err := l.v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config-loader: failed to read config file: path=%s: %w",
				l.configPath, err)
		}
	}

	cfg := &Config{}
	if err := l.v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("config-loader: failed to decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks that the configuration values are in range.
func (c *Config) Validate() error {
	if c.Authority.Timeout < 0 {
		return fmt.Errorf("config: negative authority.timeout: %w", status.StatusInvalidState)
	}

	if c.Tolerance.BootTime < 0 || c.Tolerance.Server < 0 {
		return fmt.Errorf("config: negative tolerance: %w", status.StatusInvalidState)
	}

	if c.Watch.Interval <= 0 {
		return fmt.Errorf("config: watch.interval should be positive: %w",
			status.StatusInvalidState)
	}

	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return fmt.Errorf("config: invalid server.port: port=%d: %w",
			c.Server.Port, status.StatusInvalidState)
	}

	return nil
}

func setDefaults(v *viper.Viper, cfg Config) {
	v.SetDefault("authority.url", cfg.Authority.URL)
	v.SetDefault("authority.timeout", cfg.Authority.Timeout)

	v.SetDefault("db.path", cfg.DB.Path)

	v.SetDefault("log.path", cfg.Log.Path)
	v.SetDefault("log.max_size_mb", cfg.Log.MaxSizeMB)
	v.SetDefault("log.max_backups", cfg.Log.MaxBackups)

	v.SetDefault("timezone", cfg.Timezone)

	v.SetDefault("tolerance.boot_time", cfg.Tolerance.BootTime)
	v.SetDefault("tolerance.server", cfg.Tolerance.Server)

	v.SetDefault("watch.interval", cfg.Watch.Interval)
	v.SetDefault("watch.exit_on_success", cfg.Watch.ExitOnSuccess)

	v.SetDefault("server.host", cfg.Server.Host)
	v.SetDefault("server.port", cfg.Server.Port)

	v.SetDefault("mdns.enabled", cfg.MDNS.Enabled)
	v.SetDefault("mdns.instance", cfg.MDNS.Instance)

	v.SetDefault("influxdb.url", cfg.InfluxDB.URL)
	v.SetDefault("influxdb.org", cfg.InfluxDB.Org)
	v.SetDefault("influxdb.token", cfg.InfluxDB.Token)
	v.SetDefault("influxdb.bucket", cfg.InfluxDB.Bucket)
}
