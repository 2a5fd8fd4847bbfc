// Package config loads the epoch manager's persist-policy knobs and a
// handful of ambient settings (checkpoint directory, log level) from
// flags/env/file via pflag/viper/cobra. SQL/schema/connector
// configuration for the rest of the pipeline lives elsewhere.
package config

import (
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/coreflowdata/epochcore/module/epoch"
)

// Keys are the exact names used for the persisted (opaque-to-the-core)
// configuration surface.
const (
	KeyMaxNumRecordsBeforePersist           = "max_num_records_before_persist"
	KeyMaxIntervalBeforePersistInSeconds    = "max_interval_before_persist_in_seconds"
	KeyEnableAppCheckpoints                 = "enable_app_checkpoints"
	KeyCheckpointDir                        = "checkpoint_dir"
	KeyLogLevel                             = "log_level"
)

// Config is the thin, opaque-to-the-core settings bag this package
// understands; EpochManagerOptions() turns it into epoch.Options.
type Config struct {
	MaxNumRecordsBeforePersist        uint64
	MaxIntervalBeforePersistInSeconds uint64
	EnableAppCheckpoints              bool
	CheckpointDir                     string
	LogLevel                          string
}

// BindFlags registers the config surface on fs with its documented
// defaults, so a cobra command can call this once in its PreRun and
// then Load after fs.Parse.
func BindFlags(fs *pflag.FlagSet) {
	fs.Uint64(KeyMaxNumRecordsBeforePersist, 100_000, "records ingested before a persist is triggered")
	fs.Uint64(KeyMaxIntervalBeforePersistInSeconds, 60, "seconds elapsed before a persist is triggered")
	fs.Bool(KeyEnableAppCheckpoints, false, "enable durable checkpoint writers")
	fs.String(KeyCheckpointDir, "./checkpoints", "directory for the embedded checkpoint database")
	fs.String(KeyLogLevel, "info", "log level (trace, debug, info, warn, error)")
}

// Load reads the bound flags (plus any matching environment variables,
// via v.AutomaticEnv) into a Config.
func Load(v *viper.Viper, fs *pflag.FlagSet) (Config, error) {
	if err := v.BindPFlags(fs); err != nil {
		return Config{}, errors.Wrap(err, "could not bind flags")
	}
	v.AutomaticEnv()

	cfg := Config{
		MaxNumRecordsBeforePersist:        v.GetUint64(KeyMaxNumRecordsBeforePersist),
		MaxIntervalBeforePersistInSeconds: v.GetUint64(KeyMaxIntervalBeforePersistInSeconds),
		EnableAppCheckpoints:              v.GetBool(KeyEnableAppCheckpoints),
		CheckpointDir:                     v.GetString(KeyCheckpointDir),
		LogLevel:                          v.GetString(KeyLogLevel),
	}
	return cfg, nil
}

// EpochManagerOptions translates Config into epoch.Options, leaving the
// ambient hooks (RecordCounter, Metrics, Log, HistorySize) at their
// zero/default values for the caller to fill in.
func (c Config) EpochManagerOptions() epoch.Options {
	options := epoch.DefaultOptions()
	options.MaxNumRecordsBeforePersist = c.MaxNumRecordsBeforePersist
	options.MaxIntervalBeforePersist = time.Duration(c.MaxIntervalBeforePersistInSeconds) * time.Second
	options.EnableCheckpoints = c.EnableAppCheckpoints
	return options
}
