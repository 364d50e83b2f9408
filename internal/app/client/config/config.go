package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	defaultServerAddress = "localhost:8080"
	defaultLogLevel      = "info"
	defaultEnv           = "local"
	defaultConfigDir     = ".btp"
	defaultPageSize      = 25
)

type Config struct {
	Env           string `mapstructure:"app_env"`
	ServerAddress string `mapstructure:"server_address"`
	LogLevel      string `mapstructure:"log_level"`
	ConfigDir     string `mapstructure:"config_dir"`
	TokenPath     string `mapstructure:"token_path"`
	DataPath      string `mapstructure:"data_path"`
	PageSize      int    `mapstructure:"page_size"`
	EnableTLS     bool   `mapstructure:"enable_tls"`
}

// MustLoad, istemci yapılandırmasını yükler.
func MustLoad() *Config {
	// .env dosyasını çalıştırma dizininde, yoksa bir üstte ara
	envPath := ".env"
	if _, err := os.Stat(envPath); os.IsNotExist(err) {
		envPath = "../.env"
	}

	if _, err := os.Stat(envPath); err == nil {
		if err := godotenv.Load(envPath); err != nil {
			fmt.Printf(".env dosyası yüklenemedi: %v\n", err)
		}
	}

	viper.AutomaticEnv()

	// Varsayılanlar
	viper.SetDefault("APP_ENV", defaultEnv)
	viper.SetDefault("SERVER_ADDRESS", defaultServerAddress)
	viper.SetDefault("LOG_LEVEL", defaultLogLevel)
	viper.SetDefault("CONFIG_DIR", defaultConfigDir)
	viper.SetDefault("PAGE_SIZE", defaultPageSize)
	viper.SetDefault("ENABLE_TLS", false)

	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = "."
	}

	configDir := viper.GetString("CONFIG_DIR")
	if configDir == defaultConfigDir {
		configDir = filepath.Join(homeDir, configDir)
	}

	if err := os.MkdirAll(configDir, 0700); err != nil {
		fmt.Printf("yapılandırma dizini oluşturulamadı: %v\n", err)
	}

	// Oturum bilgileri ve yerel arama günlüğü bu dizinde tutulur
	tokenPath := filepath.Join(configDir, "auth.json")
	dataPath := filepath.Join(configDir, "aramalar.db")

	config := &Config{
		Env:           viper.GetString("APP_ENV"),
		ServerAddress: viper.GetString("SERVER_ADDRESS"),
		LogLevel:      viper.GetString("LOG_LEVEL"),
		ConfigDir:     configDir,
		TokenPath:     tokenPath,
		DataPath:      dataPath,
		PageSize:      viper.GetInt("PAGE_SIZE"),
		EnableTLS:     viper.GetBool("ENABLE_TLS"),
	}

	if err := config.validate(); err != nil {
		panic(fmt.Sprintf("yapılandırma hatası: %v", err))
	}

	return config
}

func (c *Config) validate() error {
	if c.ServerAddress == "" {
		return fmt.Errorf("server_address boş olamaz")
	}
	if c.PageSize < 1 {
		return fmt.Errorf("page_size en az 1 olmalı")
	}
	return nil
}

// IsProd, prod ortamı mı kontrol eder
func (c *Config) IsProd() bool {
	return c.Env == "prod"
}

// IsDev, dev ortamı mı kontrol eder
func (c *Config) IsDev() bool {
	return c.Env == "dev"
}

// IsLocal, local ortam mı kontrol eder
func (c *Config) IsLocal() bool {
	return c.Env == "local" || c.Env == ""
}
