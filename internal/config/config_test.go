package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoundsValid(t *testing.T) {
	tests := []struct {
		name         string
		cfg          Config
		wantDistance bool
		wantDelay    bool
	}{
		{
			name:         "defaults",
			cfg:          Default(),
			wantDistance: true,
			wantDelay:    true,
		},
		{
			name:         "equal bounds",
			cfg:          Config{MinDistance: 7, MaxDistance: 7, MinDelay: 3, MaxDelay: 3},
			wantDistance: true,
			wantDelay:    true,
		},
		{
			name:         "all zero",
			cfg:          Config{},
			wantDistance: true,
			wantDelay:    true,
		},
		{
			name:         "distance inverted",
			cfg:          Config{MinDistance: 50, MaxDistance: 10, MinDelay: 5, MaxDelay: 30},
			wantDistance: false,
			wantDelay:    true,
		},
		{
			name:         "delay inverted",
			cfg:          Config{MinDistance: 1, MaxDistance: 100, MinDelay: 30, MaxDelay: 5},
			wantDistance: true,
			wantDelay:    false,
		},
		{
			name:         "negative but ordered",
			cfg:          Config{MinDistance: -10, MaxDistance: 10, MinDelay: -1, MaxDelay: 0},
			wantDistance: true,
			wantDelay:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantDistance, tt.cfg.DistanceBoundsValid())
			assert.Equal(t, tt.wantDelay, tt.cfg.DelayBoundsValid())
		})
	}
}

func parse(t *testing.T, args ...string) (*viper.Viper, *pflag.FlagSet) {
	t.Helper()
	flags := pflag.NewFlagSet("afk", pflag.ContinueOnError)
	BindFlags(flags)
	require.NoError(t, flags.Parse(args))
	return viper.New(), flags
}

func TestLoadDefaults(t *testing.T) {
	v, flags := parse(t)

	cfg, err := Load(v, flags)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadFlags(t *testing.T) {
	v, flags := parse(t,
		"--max-distance", "40",
		"--min-distance", "2",
		"--max-delay", "9",
		"--min-delay", "4",
		"-d",
		"-vv",
		"--dry-run",
		"--duration", "2h30m",
	)

	cfg, err := Load(v, flags)
	require.NoError(t, err)
	assert.Equal(t, Config{
		MaxDistance: 40,
		MinDistance: 2,
		MaxDelay:    9,
		MinDelay:    4,
		Debug:       true,
		Verbosity:   2,
		DryRun:      true,
		Duration:    "2h30m",
	}, cfg)
}

func TestLoadEnvironment(t *testing.T) {
	t.Setenv("AFK_MAX_DELAY", "12")
	t.Setenv("AFK_MIN_DISTANCE", "3")

	v, flags := parse(t, "--min-distance", "8")

	cfg, err := Load(v, flags)
	require.NoError(t, err)
	assert.Equal(t, 12, cfg.MaxDelay, "environment overrides defaults")
	assert.Equal(t, 8, cfg.MinDistance, "explicit flags override environment")
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "afk.yaml")
	content := "max-distance: 25\nmin-delay: 2\nmover: xdotool\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	v, flags := parse(t, "--config", path, "--min-delay", "3")

	cfg, err := Load(v, flags)
	require.NoError(t, err)
	assert.Equal(t, 25, cfg.MaxDistance)
	assert.Equal(t, 3, cfg.MinDelay)
	assert.Equal(t, "xdotool", cfg.Mover)
	assert.Equal(t, DefaultMaxDelay, cfg.MaxDelay)
}

func TestLoadMissingConfigFile(t *testing.T) {
	v, flags := parse(t, "--config", filepath.Join(t.TempDir(), "missing.yaml"))

	_, err := Load(v, flags)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{name: "defaults", cfg: Default()},
		{
			name: "largest distance",
			cfg:  Config{MinDistance: -DistanceLimit, MaxDistance: DistanceLimit, MinDelay: 5, MaxDelay: 30},
		},
		{
			name: "largest delay",
			cfg:  Config{MinDistance: 1, MaxDistance: 100, MinDelay: -int(DelayLimit), MaxDelay: int(DelayLimit)},
		},
		{
			name:    "distance too large",
			cfg:     Config{MinDistance: 1, MaxDistance: DistanceLimit + 1, MinDelay: 5, MaxDelay: 30},
			wantErr: "distance bounds",
		},
		{
			name:    "distance too negative",
			cfg:     Config{MinDistance: -DistanceLimit - 1, MaxDistance: 1, MinDelay: 5, MaxDelay: 30},
			wantErr: "distance bounds",
		},
		{
			name:    "delay too large",
			cfg:     Config{MinDistance: 1, MaxDistance: 100, MinDelay: 5, MaxDelay: int(DelayLimit) + 1},
			wantErr: "delay bounds",
		},
		{
			name:    "inverted but small is left to the step",
			cfg:     Config{MinDistance: 50, MaxDistance: 10, MinDelay: 30, MaxDelay: 5},
			wantErr: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadRejectsOversizedBounds(t *testing.T) {
	v, flags := parse(t, "--max-delay", "10000000000")
	_, err := Load(v, flags)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "delay bounds must be within")

	v, flags = parse(t, "--max-distance", "4000000000")
	_, err = Load(v, flags)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "distance bounds must be within")
}
