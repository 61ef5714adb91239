package config

import (
	"fmt"
	"time"
)

type ServerConfig struct {
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port"`
	Mode            string `mapstructure:"mode"`
	ShutdownTimeout int    `mapstructure:"shutdown_timeout"`
	// AllowedOrigins lists browser origins allowed by CORS; "*" admits all.
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

func (s *ServerConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

const (
	DriverSQLite = "sqlite"
	DriverMySQL  = "mysql"
)

type DatabaseConfig struct {
	Driver            string `mapstructure:"driver"`
	Path              string `mapstructure:"path"`
	Host              string `mapstructure:"host"`
	Port              int    `mapstructure:"port"`
	Username          string `mapstructure:"username"`
	Password          string `mapstructure:"password"`
	Database          string `mapstructure:"database"`
	MaxIdleConns      int    `mapstructure:"max_idle_conns"`
	MaxOpenConns      int    `mapstructure:"max_open_conns"`
	ConnMaxLifetime   int    `mapstructure:"conn_max_lifetime"`
	MigrationStrategy string `mapstructure:"migration_strategy"`
}

// GetDSN builds the connection string for the configured driver.
func (d *DatabaseConfig) GetDSN() string {
	if d.Driver == DriverSQLite {
		path := d.Path
		if path == "" {
			path = "datarequests.db"
		}
		return fmt.Sprintf("file:%s?_foreign_keys=on&_busy_timeout=5000", path)
	}
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=UTC",
		d.Username, d.Password, d.Host, d.Port, d.Database)
}

type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	OutputPath string `mapstructure:"output_path"`
}

type JWTConfig struct {
	Secret           string `mapstructure:"secret"`
	Issuer           string `mapstructure:"issuer"`
	AccessExpMinutes int    `mapstructure:"access_exp_minutes"`
}

func (j *JWTConfig) AccessTTL() time.Duration {
	return time.Duration(j.AccessExpMinutes) * time.Minute
}

type AuthConfig struct {
	JWT JWTConfig `mapstructure:"jwt"`
}

type AuthzConfig struct {
	PersistPolicies bool `mapstructure:"persist_policies"`
}

type RedisConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	// IdentityTTL is the lifetime of cached identity entries, in seconds.
	IdentityTTL int `mapstructure:"identity_ttl"`
}

func (r *RedisConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}
