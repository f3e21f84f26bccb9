// internal/config/config.go
package config

import (
	"log"

	"github.com/spf13/viper"
)

type Config struct {
	Server struct {
		Port string `mapstructure:"port"`
	} `mapstructure:"server"`
	Firestore struct {
		ProjectID       string `mapstructure:"project_id"`
		CredentialsFile string `mapstructure:"credentials_file"`
	} `mapstructure:"firestore"`
	CORS struct {
		AllowedOrigins []string `mapstructure:"allowed_origins"`
	} `mapstructure:"cors"`
	Log struct {
		Level string `mapstructure:"level"`
	} `mapstructure:"log"`
	Static struct {
		Dir string `mapstructure:"dir"`
	} `mapstructure:"static"`
}

var Cfg Config

func LoadConfig(path string) error {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(path)
	viper.AddConfigPath(".")

	// 環境変数での上書きを許可 (例: APP_SERVER_PORT, APP_FIRESTORE_PROJECT_ID)
	viper.SetEnvPrefix("APP")
	viper.AutomaticEnv()
	viper.BindEnv("server.port", "APP_SERVER_PORT")
	viper.BindEnv("firestore.project_id", "APP_FIRESTORE_PROJECT_ID")
	viper.BindEnv("firestore.credentials_file", "APP_FIRESTORE_CREDENTIALS_FILE")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Println("Warning: Config file not found. Using default settings or environment variables if available.")
		} else {
			log.Printf("Error reading config file: %s\n", err)
			return err
		}
	}

	if err := viper.Unmarshal(&Cfg); err != nil {
		log.Printf("Error unmarshalling config: %s\n", err)
		return err
	}

	// --- デフォルト値の設定 ---
	if Cfg.Server.Port == "" {
		log.Printf("Server port not set, using default '%s'", DefaultServerPort)
		Cfg.Server.Port = DefaultServerPort
	}
	if Cfg.Log.Level == "" {
		Cfg.Log.Level = DefaultLogLevel
	}
	if Cfg.Static.Dir == "" {
		Cfg.Static.Dir = DefaultStaticDir
	}
	if len(Cfg.CORS.AllowedOrigins) == 0 {
		Cfg.CORS.AllowedOrigins = DefaultAllowedOrigins
	}
	if Cfg.Firestore.ProjectID == "" {
		log.Println("Warning: Firestore project ID is not set in config.")
	}

	log.Println("Config loaded successfully")
	log.Printf("Server Port: %s", Cfg.Server.Port)
	log.Printf("Firestore Project: %s", Cfg.Firestore.ProjectID)

	return nil
}
