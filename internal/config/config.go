package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/Makepad-fr/bmi/internal/locale"
	"github.com/Makepad-fr/bmi/internal/logger"
	"github.com/Makepad-fr/bmi/internal/model"
)

const (
	configName = "config"
	envPrefix  = "BMI"

	DefaultExportPath    = "bmi-history.json"
	DefaultFlashDuration = 3 * time.Second
)

// Config is the resolved runtime configuration.
type Config struct {
	Units         model.UnitMode
	Locale        string
	Theme         string
	FlashDuration time.Duration
	LogLevel      string
	LogFile       string
	ExportPath    string
}

// Load reads config.yml (from path if given, otherwise from the search
// paths) and BMI_* environment variables. A missing file is not an error.
func Load(path string) (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(configName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("configs")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "bmi"))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}
	return fromViper(v)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("units", model.Metric.String())
	v.SetDefault("locale", locale.Default)
	v.SetDefault("theme", "classic")
	v.SetDefault("flash_duration", DefaultFlashDuration)
	v.SetDefault("log.level", logger.InfoLevel)
	v.SetDefault("log.file", "")
	v.SetDefault("export.path", DefaultExportPath)
}

func fromViper(v *viper.Viper) (Config, error) {
	units, err := model.ParseUnitMode(v.GetString("units"))
	if err != nil {
		return Config{}, fmt.Errorf("config units: %w", err)
	}
	cfg := Config{
		Units:         units,
		Locale:        strings.ToLower(v.GetString("locale")),
		Theme:         strings.ToLower(v.GetString("theme")),
		FlashDuration: v.GetDuration("flash_duration"),
		LogLevel:      strings.ToLower(v.GetString("log.level")),
		LogFile:       v.GetString("log.file"),
		ExportPath:    v.GetString("export.path"),
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks values that can also be set from flags after Load.
func (c Config) Validate() error {
	if _, err := locale.Lookup(c.Locale); err != nil {
		return fmt.Errorf("config locale: %w", err)
	}
	switch c.Theme {
	case "classic", "neon", "mono":
	default:
		return fmt.Errorf("config theme: unknown theme %q", c.Theme)
	}
	if !logger.ValidLevel(c.LogLevel) {
		return fmt.Errorf("config log.level: unknown level %q", c.LogLevel)
	}
	if c.FlashDuration <= 0 {
		return fmt.Errorf("config flash_duration: must be positive, got %s", c.FlashDuration)
	}
	if c.ExportPath == "" {
		return errors.New("config export.path: must not be empty")
	}
	return nil
}
