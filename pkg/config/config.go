package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Server  ServerConfig
	SQLite  SQLiteConfig
	Ingest  IngestConfig
	Chat    ChatConfig
	Logging LoggingConfig
}

type ServerConfig struct {
	Host         string
	Port         int
	ReadTimeout  int
	WriteTimeout int
	BodyLimit    int
}

type SQLiteConfig struct {
	Path string
}

type IngestConfig struct {
	// MaxFileSizeMB bounds a single uploaded file; larger files are
	// rejected with a per-file status.
	MaxFileSizeMB int
}

type ChatConfig struct {
	// SimilarityThreshold is the minimum cosine score for a record to count
	// as relevant to a question.
	SimilarityThreshold float64
	// TopK is how many best-scoring records are considered before the
	// threshold filter.
	TopK int
}

type LoggingConfig struct {
	Level      string
	Format     string
	OutputPath string
}

func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	viper.AddConfigPath("/etc/lifeboard")

	viper.SetEnvPrefix("LIFEBOARD")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &config, nil
}

func setDefaults() {
	viper.SetDefault("server.host", "127.0.0.1")
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.readTimeout", 30)
	viper.SetDefault("server.writeTimeout", 30)
	viper.SetDefault("server.bodyLimit", 26214400)

	viper.SetDefault("sqlite.path", "./data/lifeboard.db")

	viper.SetDefault("ingest.maxFileSizeMB", 20)

	viper.SetDefault("chat.similarityThreshold", 0.3)
	viper.SetDefault("chat.topK", 5)

	viper.SetDefault("logging.level", "info")
	viper.SetDefault("logging.format", "json")
	viper.SetDefault("logging.outputPath", "stdout")
}
