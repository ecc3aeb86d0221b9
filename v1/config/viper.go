package config

import (
	"fmt"
	"log"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

type RunnerConfig struct {
	WorkerDelay time.Duration `mapstructure:"worker_delay"`
	MainDelay   time.Duration `mapstructure:"main_delay"`
	Input       int           `mapstructure:"input"`
}

type PoolConfig struct {
	Size   int `mapstructure:"size"`
	Buffer int `mapstructure:"buffer"`
}

type Logger struct {
	Level string `mapstructure:"level"`
}

type Config struct {
	Runner RunnerConfig `mapstructure:"runner"`
	Pool   PoolConfig   `mapstructure:"worker_pool"`
	Logger Logger       `mapstructure:"logger"`
}

var Conf Config

// Default is the configuration used when no file is present.
func Default() Config {
	return Config{
		Runner: RunnerConfig{
			WorkerDelay: 2 * time.Second,
			MainDelay:   time.Second,
			Input:       5,
		},
		Pool: PoolConfig{
			Size:   2,
			Buffer: 4,
		},
		Logger: Logger{Level: "info"},
	}
}

func Load(confPath string) error {
	viper.SetConfigFile(confPath)
	viper.SetConfigType("yml")

	if err := viper.ReadInConfig(); err != nil {
		return fmt.Errorf("viper read in config: %w", err)
	}

	if err := viper.Unmarshal(&Conf); err != nil {
		return fmt.Errorf("viper unmarshal: %w", err)
	}

	return nil
}

// Watch re-reads the file on every change and hands the fresh config to
// onChanged. A file that no longer parses is logged and skipped, so the
// last good config stays in effect.
func Watch(onChanged func(c Config)) {
	viper.OnConfigChange(func(e fsnotify.Event) {
		var next Config

		if err := viper.Unmarshal(&next); err != nil {
			log.Printf("config reload skipped: %v", err)

			return
		}

		Conf = next

		if onChanged != nil {
			onChanged(next)
		}
	})

	viper.WatchConfig()
}
