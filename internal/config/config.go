package config

import (
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/Dicklesworthstone/sysview/internal/errors"
)

// EnvPrefix is prepended to every environment override, e.g. SYSVIEW_INTERVAL.
const EnvPrefix = "SYSVIEW"

// Config carries runtime options for sysview.
type Config struct {
	Interval time.Duration
	Once     bool
	ProcPath string
	SysPath  string
	LogFile  string
	Debug    bool
}

func Default() Config {
	return Config{
		Interval: time.Second,
		Once:     false,
		ProcPath: "/proc",
		SysPath:  "/sys",
		LogFile:  "",
		Debug:    false,
	}
}

// RegisterFlags adds the config flags with their defaults to fs.
func RegisterFlags(fs *pflag.FlagSet) {
	d := Default()
	fs.String("config", "", "optional YAML config file")
	fs.Duration("interval", d.Interval, "refresh interval")
	fs.Bool("once", d.Once, "print the summary rows once and exit")
	fs.String("proc", d.ProcPath, "procfs mount point")
	fs.String("sys", d.SysPath, "sysfs mount point")
	fs.String("log-file", d.LogFile, "write logs to this file while the TUI runs")
	fs.Bool("debug", d.Debug, "enable debug logging")
}

// Load resolves the config from, in increasing priority: defaults, the
// config file named by --config, SYSVIEW_* environment variables, and flags
// set explicitly on fs.
func Load(fs *pflag.FlagSet) (Config, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(fs); err != nil {
		return Config{}, errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to bind flags", "")
	}

	if path := v.GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, errors.WrapWithCode(err, errors.ErrConfig,
				"Failed to read config file: "+path,
				"Check the file exists and is valid YAML")
		}
	}

	interval, err := parseInterval(v.GetString("interval"))
	if err != nil {
		return Config{}, errors.WrapWithCode(err, errors.ErrConfig,
			"Invalid interval: "+v.GetString("interval"),
			"Use a duration like 500ms or 2s")
	}

	cfg := Config{
		Interval: interval,
		Once:     v.GetBool("once"),
		ProcPath: v.GetString("proc"),
		SysPath:  v.GetString("sys"),
		LogFile:  v.GetString("log-file"),
		Debug:    v.GetBool("debug"),
	}
	return cfg, cfg.Validate()
}

// parseInterval accepts Go durations and bare numbers of seconds.
func parseInterval(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	d, err := time.ParseDuration(s)
	if err == nil {
		return d, nil
	}
	if d, err2 := time.ParseDuration(s + "s"); err2 == nil {
		return d, nil
	}
	return 0, err
}

func (c Config) Validate() error {
	if c.Interval <= 0 {
		return errors.New(errors.ErrConfig,
			"Refresh interval must be positive",
			"Pass --interval with a duration like 1s")
	}
	if c.ProcPath == "" || c.SysPath == "" {
		return errors.New(errors.ErrConfig,
			"procfs and sysfs paths must not be empty",
			"Leave --proc and --sys unset to use /proc and /sys")
	}
	return nil
}
