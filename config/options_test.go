package config_test

import (
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"

	"github.com/coreflowdata/epochcore/config"
)

func TestLoad_Defaults(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	config.BindFlags(fs)
	require.NoError(t, fs.Parse(nil))

	cfg, err := config.Load(viper.New(), fs)
	require.NoError(t, err)

	require.Equal(t, uint64(100_000), cfg.MaxNumRecordsBeforePersist)
	require.Equal(t, uint64(60), cfg.MaxIntervalBeforePersistInSeconds)
	require.False(t, cfg.EnableAppCheckpoints)
}

func TestLoad_OverridesFromFlags(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	config.BindFlags(fs)
	require.NoError(t, fs.Parse([]string{
		"--max_num_records_before_persist=5",
		"--enable_app_checkpoints=true",
	}))

	cfg, err := config.Load(viper.New(), fs)
	require.NoError(t, err)

	require.Equal(t, uint64(5), cfg.MaxNumRecordsBeforePersist)
	require.True(t, cfg.EnableAppCheckpoints)
}

func TestConfig_EpochManagerOptionsTranslatesIntervalToDuration(t *testing.T) {
	cfg := config.Config{
		MaxNumRecordsBeforePersist:        42,
		MaxIntervalBeforePersistInSeconds: 30,
		EnableAppCheckpoints:              true,
	}

	options := cfg.EpochManagerOptions()

	require.Equal(t, uint64(42), options.MaxNumRecordsBeforePersist)
	require.Equal(t, 30*time.Second, options.MaxIntervalBeforePersist)
	require.True(t, options.EnableCheckpoints)
}
