package providers

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"solaced/internal/structures"
)

func NewConfigProvider(flags *structures.CliFlags) (*structures.Config, error) {
	var conf structures.Config

	filename := filepath.Base(flags.ConfigPath)
	viper.AddConfigPath(filepath.Dir(flags.ConfigPath))
	viper.SetConfigName(strings.TrimSuffix(filename, filepath.Ext(filename)))
	viper.SetConfigType("yaml")

	viper.BindEnv("logger.level", "SOLACED_LOG_LEVEL")
	viper.BindEnv("retention.sweepInterval", "SOLACED_SWEEP_INTERVAL")
	viper.BindEnv("retention.workers", "SOLACED_SWEEP_WORKERS")
	viper.BindEnv("persistence.saveInterval", "SOLACED_SAVE_INTERVAL")
	viper.BindEnv("cache.enabled", "SOLACED_CACHE_ENABLED")
	viper.BindEnv("cache.size", "SOLACED_CACHE_SIZE")

	err := viper.ReadInConfig()
	if err != nil {
		return nil, err
	}

	err = viper.Unmarshal(&conf)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into config struct: %w", err)
	}

	cnfValidator := NewCnfValidator(&conf)
	err = cnfValidator.Validate()
	if err != nil {
		return nil, err
	}

	conf.AppName = "SolaceDaemon"
	conf.Path = flags.ConfigPath
	conf.Debug = flags.DebugMode

	return &conf, nil
}
