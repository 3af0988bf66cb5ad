package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/bdlm/log"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/olirobz31/dashboard-analytics-pro/internal/paths"
	"github.com/olirobz31/dashboard-analytics-pro/pkg/types"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	configFileExt  = "config.yaml"

	cfgKeyBackend   = "backend"
	cfgKeyDataDir   = "data_dir"
	cfgKeyRedisAddr = "redis_addr"
	cfgKeyRedisDB   = "redis_db"
	cfgKeyPageSize  = "page_size"
	cfgKeyLogLevel  = "log_level"

	defaultBackend  = types.BackendFile
	defaultLogLevel = "warn"
)

// configFile is the layout written to config.yaml on first run.
type configFile struct {
	Backend   string `yaml:"backend"`
	DataDir   string `yaml:"data_dir,omitempty"`
	RedisAddr string `yaml:"redis_addr,omitempty"`
	RedisDB   int    `yaml:"redis_db,omitempty"`
	PageSize  int    `yaml:"page_size"`
	LogLevel  string `yaml:"log_level"`
}

func defaultConfigFile() configFile {
	return configFile{
		Backend:  defaultBackend,
		PageSize: types.DefaultPageSize,
		LogLevel: defaultLogLevel,
	}
}

// loadConfig reads config.yaml from configDir with Viper, creating the
// directory and a default file on first run. A missing config.yaml is not an
// error. DASHBOARD_LOG_LEVEL overrides the file's log level.
func loadConfig(configDir string) (*viper.Viper, error) {
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return nil, fmt.Errorf("ensure config dir: %w", err)
	}
	if _, err := writeConfigIfMissing(filepath.Join(configDir, configFileExt), defaultConfigFile()); err != nil {
		return nil, fmt.Errorf("ensure default config: %w", err)
	}

	v := viper.New()
	v.SetDefault(cfgKeyBackend, defaultBackend)
	v.SetDefault(cfgKeyPageSize, types.DefaultPageSize)
	v.SetDefault(cfgKeyLogLevel, defaultLogLevel)
	v.SetDefault(cfgKeyRedisDB, 0)
	if err := v.BindEnv(cfgKeyLogLevel, paths.EnvLogLevel); err != nil {
		return nil, fmt.Errorf("bind env: %w", err)
	}
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return v, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	return v, nil
}

// writeConfigIfMissing writes cfg to path unless the file already exists.
// Reports whether it wrote the file.
func writeConfigIfMissing(path string, cfg configFile) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return false, nil
	}
	if !os.IsNotExist(err) {
		return false, fmt.Errorf("stat config file: %w", err)
	}

	data, err := yaml.Marshal(&cfg)
	if err != nil {
		return false, fmt.Errorf("marshal config: %w", err)
	}
	header := []byte("# Dashboard CLI configuration\n# backend: memory, file, sqlite, or redis (redis needs redis_addr)\n")
	if err := os.WriteFile(path, append(header, data...), 0o644); err != nil {
		return false, err
	}
	return true, nil
}

// setupLogging points the logger at w and applies the first non-empty level
// of flag and configured. An unknown level falls back to warn.
func setupLogging(w io.Writer, flag, configured string) {
	levelName := flag
	if levelName == "" {
		levelName = configured
	}
	if levelName == "" {
		levelName = defaultLogLevel
	}
	log.SetOutput(w)
	log.SetFormatter(&log.TextFormatter{})

	level, err := log.ParseLevel(levelName)
	if err != nil {
		level, _ = log.ParseLevel(defaultLogLevel)
		log.SetLevel(level)
		log.WithField("level", levelName).Warn("unknown log level, using warn")
		return
	}
	log.SetLevel(level)
}
