package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	KeyDB      = "db"
	KeyLogFile = "log_file"
	KeyDebug   = "debug"

	EnvPrefix = "REM"
	FileName  = "rem"
)

type Config struct {
	DB      string `mapstructure:"db"`
	LogFile string `mapstructure:"log_file"`
	Debug   bool   `mapstructure:"debug"`
}

// DataDir is where the database, log and config file live by default:
// $XDG_CONFIG_HOME/rem, falling back to ~/.rem.
func DataDir() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "rem")
	}
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".rem")
	}
	return ".rem"
}

func Defaults(dataDir string) Config {
	return Config{
		DB:      filepath.Join(dataDir, "rem.db"),
		LogFile: filepath.Join(dataDir, "rem.log"),
	}
}

// Load resolves the configuration from, in increasing precedence, the
// defaults, rem.yaml (cfgFile when set, else in dataDir), REM_* variables
// and flags changed on the command line. Only an explicitly named config
// file has to exist.
func Load(v *viper.Viper, flags *pflag.FlagSet, cfgFile, dataDir string) (Config, error) {
	defaults := Defaults(dataDir)
	v.SetDefault(KeyDB, defaults.DB)
	v.SetDefault(KeyLogFile, defaults.LogFile)
	v.SetDefault(KeyDebug, defaults.Debug)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if flags != nil {
		for _, key := range []string{KeyDB, KeyLogFile, KeyDebug} {
			if f := flags.Lookup(strings.ReplaceAll(key, "_", "-")); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return Config{}, fmt.Errorf("bind flag %s: %w", f.Name, err)
				}
			}
		}
	}

	if cfgFile != "" {
		if _, err := os.Stat(cfgFile); err != nil {
			return Config{}, fmt.Errorf("config file: %w", err)
		}
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(dataDir)
		v.SetConfigName(FileName)
		v.SetConfigType("yaml")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if strings.TrimSpace(cfg.DB) == "" {
		return Config{}, errors.New("config: db path is empty")
	}
	return cfg, nil
}

// EnsureDirs creates the directories holding the database and log file.
func (c Config) EnsureDirs() error {
	for _, p := range []string{c.DB, c.LogFile} {
		if p == "" {
			continue
		}
		if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
			return fmt.Errorf("create %s: %w", filepath.Dir(p), err)
		}
	}
	return nil
}
