package config

import (
	"sync"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/zhukovvlad/integrator-go/cmd/pkg/logging"
)

// MatcherServiceConfig описывает внешний сервис нечеткого сопоставления поставщиков.
// Сервис принимает свободный текст названия поставщика и возвращает
// найденную или созданную запись поставщика с оценкой схожести.
type MatcherServiceConfig struct {
	URL                 string  `yaml:"url" env-required:"true"`
	SimilarityThreshold float64 `yaml:"similarity_threshold" env-default:"0.82"`
}

type ServicesConfig struct {
	MatcherService MatcherServiceConfig `yaml:"matcher_service"`
}

type CORSConfig struct {
	AllowedOrigins []string `yaml:"allowed_origins" env:"CORS_ALLOWED_ORIGINS"`
}

// ImportConfig — настройки пайплайна импорта оборудования.
type ImportConfig struct {
	// MaxFileSizeMB ограничивает размер загружаемого файла.
	MaxFileSizeMB int64 `yaml:"max_file_size_mb" env-default:"25"`
	// RateLimitRPS / RateLimitBurst — ограничение частоты запросов на импорт.
	RateLimitRPS   int `yaml:"rate_limit_rps" env-default:"5"`
	RateLimitBurst int `yaml:"rate_limit_burst" env-default:"10"`
}

type Config struct {
	IsDebug *bool `yaml:"is_debug" env-required:"true"`
	Listen  struct {
		Type   string `yaml:"type" env-default:"port"`
		BindIP string `yaml:"bind_ip" env-default:"127.0.0.1"`
		Port   string `yaml:"port" env-default:"8080"`
	} `yaml:"listen"`
	CORS     CORSConfig     `yaml:"cors"`
	Import   ImportConfig   `yaml:"import"`
	Services ServicesConfig `yaml:"services"`
}

var instance *Config
var once sync.Once

func GetConfig() *Config {
	once.Do(func() {
		logger := logging.GetLogger()
		logger.Info("read application configuration")
		instance = &Config{}
		if err := cleanenv.ReadConfig("./cmd/config/config.yml", instance); err != nil {
			help, _ := cleanenv.GetDescription(instance, nil)
			logger.Info(help)
			logger.Fatal(err)
		}
	})

	return instance
}
