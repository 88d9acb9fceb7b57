package config

import (
	"log"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Server struct {
		Port            string `mapstructure:"port"`
		MetricsPort     string `mapstructure:"metrics_port"`
		PollingInterval int    `mapstructure:"polling_interval_seconds"`
		LogLevel        string `mapstructure:"log_level"`
	} `mapstructure:"server"`
	Database struct {
		Driver   string `mapstructure:"driver"` // "postgres" or "sqlite"
		Host     string `mapstructure:"host"`
		Port     string `mapstructure:"port"`
		User     string `mapstructure:"user"`
		Password string `mapstructure:"password"`
		Name     string `mapstructure:"name"`
		Path     string `mapstructure:"path"` // sqlite file
	} `mapstructure:"database"`
	Auth struct {
		JWTSecret     string `mapstructure:"jwt_secret"`
		TokenTTLHours int    `mapstructure:"token_ttl_hours"`
		AdminEmail    string `mapstructure:"admin_email"`
		AdminPassword string `mapstructure:"admin_password"`
	} `mapstructure:"auth"`
	Storage struct {
		Provider     string `mapstructure:"provider"` // "local" or "s3"
		LocalStorage string `mapstructure:"local_storage"`
		KeyID        string `mapstructure:"key_id"`
		AppKey       string `mapstructure:"app_key"`
		Endpoint     string `mapstructure:"endpoint"`
		Region       string `mapstructure:"region"`
		BucketIngest string `mapstructure:"bucket_ingest"`
		BucketAssets string `mapstructure:"bucket_assets"`
	} `mapstructure:"storage"`
}

func Load() *Config {
	viper.SetEnvPrefix("FESTIVAL")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// Register keys
	viper.BindEnv("server.port")
	viper.BindEnv("server.metrics_port")
	viper.BindEnv("server.polling_interval_seconds")
	viper.BindEnv("server.log_level")

	viper.BindEnv("database.driver")
	viper.BindEnv("database.host")
	viper.BindEnv("database.port")
	viper.BindEnv("database.user")
	viper.BindEnv("database.password")
	viper.BindEnv("database.name")
	viper.BindEnv("database.path")

	viper.BindEnv("auth.jwt_secret")
	viper.BindEnv("auth.token_ttl_hours")
	viper.BindEnv("auth.admin_email")
	viper.BindEnv("auth.admin_password")

	viper.BindEnv("storage.provider")
	viper.BindEnv("storage.local_storage")
	viper.BindEnv("storage.key_id")
	viper.BindEnv("storage.app_key")
	viper.BindEnv("storage.endpoint")
	viper.BindEnv("storage.region")
	viper.BindEnv("storage.bucket_ingest")
	viper.BindEnv("storage.bucket_assets")

	// Defaults
	viper.SetDefault("server.port", ":8081")
	viper.SetDefault("server.metrics_port", ":9091")
	viper.SetDefault("server.polling_interval_seconds", 30)
	viper.SetDefault("server.log_level", "info")

	viper.SetDefault("database.driver", "postgres")
	viper.SetDefault("database.path", "./mifestival.db")

	viper.SetDefault("auth.token_ttl_hours", 72)

	viper.SetDefault("storage.provider", "local")
	viper.SetDefault("storage.local_storage", "./data")
	viper.SetDefault("storage.bucket_ingest", "festival-directory-ingest")
	viper.SetDefault("storage.bucket_assets", "festival-assets")

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("../")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.Printf("Warning: Config error: %s", err)
		} else {
			log.Println("Info: config.yaml not found, using Environment Variables only.")
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		log.Fatalf("Unable to decode config: %v", err)
	}

	if cfg.Auth.JWTSecret == "" {
		log.Fatal("Critical: JWT secret is missing (FESTIVAL_AUTH_JWT_SECRET)")
	}
	if cfg.Database.Driver == "postgres" && cfg.Database.Host == "" {
		log.Fatal("Critical: database host is missing (FESTIVAL_DATABASE_HOST)")
	}

	return &cfg
}
