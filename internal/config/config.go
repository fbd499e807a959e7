package config

import (
	"github.com/spf13/viper"
)

const (
	DefaultDatabasePath = "./arssetima.db"
	DefaultSettingsPath = "./settings.json"
	DefaultBackupDir    = "./backups"
)

type (
	Config struct {
		Database
		Settings
		Backup
		Seed
		Logging
		Global
	}

	Database struct {
		Path string
	}
	Settings struct {
		Path string
	}
	Backup struct {
		Dir         string
		AutoEnabled bool
		Schedule    string // Cron format: "0 3 * * *" = daily at 03:00
		Compress    bool   // Write .json.gz instead of .json
	}
	Seed struct {
		Enabled bool
	}
	Logging struct {
		Level string
	}
	Global struct {
		ShutdownTimeoutInSeconds int
	}
)

func NewConfig() *Config {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("database_path", DefaultDatabasePath)
	v.SetDefault("settings_path", DefaultSettingsPath)
	v.SetDefault("backup_dir", DefaultBackupDir)
	v.SetDefault("backup_auto_enabled", false)
	v.SetDefault("backup_schedule", "0 3 * * *") // Daily at 03:00
	v.SetDefault("backup_compress", false)
	v.SetDefault("seed_enabled", true)
	v.SetDefault("log_level", "info")
	v.SetDefault("shutdown_timeout_in_seconds", 2)

	return &Config{
		Database: Database{
			Path: v.GetString("DATABASE_PATH"),
		},
		Settings: Settings{
			Path: v.GetString("SETTINGS_PATH"),
		},
		Backup: Backup{
			Dir:         v.GetString("BACKUP_DIR"),
			AutoEnabled: v.GetBool("BACKUP_AUTO_ENABLED"),
			Schedule:    v.GetString("BACKUP_SCHEDULE"),
			Compress:    v.GetBool("BACKUP_COMPRESS"),
		},
		Seed: Seed{
			Enabled: v.GetBool("SEED_ENABLED"),
		},
		Logging: Logging{
			Level: v.GetString("LOG_LEVEL"),
		},
		Global: Global{
			ShutdownTimeoutInSeconds: v.GetInt("SHUTDOWN_TIMEOUT_IN_SECONDS"),
		},
	}
}
