package config

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment override, e.g. AFK_MAX_DELAY.
const EnvPrefix = "AFK"

// ConfigFlag names the flag pointing at an optional YAML config file.
const ConfigFlag = "config"

// BindFlags registers every configuration flag on flags.
func BindFlags(flags *pflag.FlagSet) {
	def := Default()

	flags.Int("max-distance", def.MaxDistance, "Max distance in pixels for the pointer to move. The pointer won't move at all if there is no room!")
	flags.Int("min-distance", def.MinDistance, "Min distance in pixels for the pointer to move")
	flags.Int("max-delay", def.MaxDelay, "Max delay time in seconds")
	flags.Int("min-delay", def.MinDelay, "Min delay time in seconds")
	flags.BoolP("debug", "d", false, "Activate debug mode")
	flags.CountP("verbose", "v", "Verbose mode (-v, -vv, -vvv, etc.)")

	flags.String("duration", "", "Stop after this long (e.g., \"2h30m\" or \"90\" for minutes)")
	flags.String("until", "", "Stop at this time of day (e.g., \"17:30\" or \"5:30PM\")")
	flags.Bool("dry-run", false, "Log moves without touching the pointer")
	flags.Bool("tui", false, "Show an interactive status screen")
	flags.String("mover", "", "Force a pointer backend (uinput, ydotool, xdotool, dry-run)")
	flags.String("log-file", "", "Write JSON logs to this file (rotated)")
	flags.String(ConfigFlag, "", "Config file (YAML, keys match the long flag names)")
}

// Load resolves the configuration from flags, AFK_* environment variables and an
// optional config file, in that order of precedence.
func Load(v *viper.Viper, flags *pflag.FlagSet) (Config, error) {
	if err := v.BindPFlags(flags); err != nil {
		return Config{}, fmt.Errorf("binding flags: %w", err)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if path := v.GetString(ConfigFlag); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("reading config file %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	return cfg, nil
}
