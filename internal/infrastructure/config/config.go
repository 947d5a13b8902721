package config

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/spf13/viper"

	sharedConfig "github.com/subtrack-inc/subtrack/internal/shared/config"
)

type Config struct {
	Database     sharedConfig.DatabaseConfig     `mapstructure:"database"`
	Logger       sharedConfig.LoggerConfig       `mapstructure:"logger"`
	Scheduler    sharedConfig.SchedulerConfig    `mapstructure:"scheduler"`
	Notification sharedConfig.NotificationConfig `mapstructure:"notification"`
	ExchangeRate sharedConfig.ExchangeRateConfig `mapstructure:"exchange_rate"`
}

var (
	appConfig   *Config
	appConfigMu sync.RWMutex
)

// Load loads configuration from file and environment variables. A missing
// config file is not an error; defaults plus environment cover that case.
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./configs")
	viper.AddConfigPath("../configs")
	viper.AddConfigPath("../../configs")

	viper.SetEnvPrefix("SUBTRACK")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	appConfigMu.Lock()
	appConfig = &config
	appConfigMu.Unlock()

	return &config, nil
}

// Get returns the loaded configuration
func Get() *Config {
	appConfigMu.RLock()
	defer appConfigMu.RUnlock()
	return appConfig
}

// setDefaults sets default configuration values
func setDefaults() {
	// Database defaults: a local sqlite file keeps first runs dependency-free
	viper.SetDefault("database.driver", "sqlite")
	viper.SetDefault("database.path", "subtrack.db")
	viper.SetDefault("database.host", "localhost")
	viper.SetDefault("database.port", 3306)
	viper.SetDefault("database.username", "root")
	viper.SetDefault("database.password", "password")
	viper.SetDefault("database.database", "subtrack_dev")
	viper.SetDefault("database.max_idle_conns", 10)
	viper.SetDefault("database.max_open_conns", 100)
	viper.SetDefault("database.conn_max_lifetime", 60)

	// Logger defaults
	viper.SetDefault("logger.level", "info")
	viper.SetDefault("logger.format", "console")
	viper.SetDefault("logger.output_path", "stdout")

	// Scheduler defaults
	viper.SetDefault("scheduler.renewal_interval_minutes", 60)
	viper.SetDefault("scheduler.reminder_interval_minutes", 360)
	viper.SetDefault("scheduler.renewal_horizon_days", 30)

	// Notification defaults
	viper.SetDefault("notification.enabled", false)
	viper.SetDefault("notification.recipient", "")
	viper.SetDefault("notification.smtp_host", "localhost")
	viper.SetDefault("notification.smtp_port", 1025)
	viper.SetDefault("notification.smtp_user", "")
	viper.SetDefault("notification.smtp_pass", "")
	viper.SetDefault("notification.from_address", "noreply@subtrack.local")
	viper.SetDefault("notification.from_name", "SubTrack")

	// Exchange rate defaults
	viper.SetDefault("exchange_rate.base", "USD")
	viper.SetDefault("exchange_rate.rates", map[string]float64{"USD": 1.0})
}
