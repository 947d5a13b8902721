package config

import "fmt"

// DatabaseConfig selects and tunes the relational store.
type DatabaseConfig struct {
	Driver          string `mapstructure:"driver" validate:"oneof=sqlite mysql"`
	Path            string `mapstructure:"path"` // sqlite file path
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port"`
	Username        string `mapstructure:"username"`
	Password        string `mapstructure:"password"`
	Database        string `mapstructure:"database"`
	MaxIdleConns    int    `mapstructure:"max_idle_conns"`
	MaxOpenConns    int    `mapstructure:"max_open_conns"`
	ConnMaxLifetime int    `mapstructure:"conn_max_lifetime"` // minutes
}

// DSN builds the MySQL connection string.
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=true&loc=UTC",
		c.Username, c.Password, c.Host, c.Port, c.Database)
}

type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"` // console or json
	OutputPath string `mapstructure:"output_path"`
}

// SchedulerConfig tunes the background workers.
type SchedulerConfig struct {
	RenewalIntervalMinutes  int `mapstructure:"renewal_interval_minutes"`
	ReminderIntervalMinutes int `mapstructure:"reminder_interval_minutes"`
	RenewalHorizonDays      int `mapstructure:"renewal_horizon_days"`
}

// NotificationConfig configures reminder delivery.
type NotificationConfig struct {
	Enabled     bool   `mapstructure:"enabled"`
	Recipient   string `mapstructure:"recipient" validate:"omitempty,email"`
	SMTPHost    string `mapstructure:"smtp_host"`
	SMTPPort    int    `mapstructure:"smtp_port"`
	SMTPUser    string `mapstructure:"smtp_user"`
	SMTPPass    string `mapstructure:"smtp_pass"`
	FromAddress string `mapstructure:"from_address"`
	FromName    string `mapstructure:"from_name"`
}

// ExchangeRateConfig holds the static currency conversion table used for
// insight display. Rates are quoted against the base currency.
type ExchangeRateConfig struct {
	Base  string             `mapstructure:"base"`
	Rates map[string]float64 `mapstructure:"rates"`
}
