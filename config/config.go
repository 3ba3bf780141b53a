package config

import (
	"time"

	"github.com/gotify/configor"
)

var Conf *Configuration

type Configuration struct {
	App struct {
		ListenAddr string `default:"" env:"APP_HOST"`
		Port       int    `default:"8080"  env:"APP_PORT"`
		TimeZone   string `default:"Asia/Tokyo" env:"APP_TIME_ZONE"`
		LogLevel   string `default:"info" env:"APP_LOG_LEVEL"`
	}
	Database struct {
		Host           string `default:"127.0.0.1" env:"DB_HOST"`
		Port           string `default:"5432" env:"DB_PORT"`
		Name           string `default:"recruit" env:"DB_NAME"`
		User           string `default:"postgres" env:"DB_USER"`
		Password       string `default:"postgres" env:"DB_PASSWORD"`
		MigrateOnStart *bool  `default:"true" env:"DB_MIGRATE_ON_START"`
		DebugMode      *bool  `default:"false" env:"DB_DEBUG_MODE"`
		MaxOpenConns   int    `default:"20" env:"DB_MAX_OPEN_CONNS"`
	}
	Auth struct {
		JWTSecret      string `default:"" env:"JWT_SECRET"`
		JWTExpireInSec int64  `default:"86400" env:"JWT_EXPIRE_IN_SEC"`
	}
	Smtp struct {
		User       string `default:"" env:"SMTP_USER"`
		Password   string `default:"" env:"SMTP_PASSWORD"`
		Host       string `default:"" env:"SMTP_HOST"`
		Port       string `default:"" env:"SMTP_PORT"`
		Sender     string `default:"" env:"SMTP_SENDER"`
		TLSEnabled *bool  `default:"true" env:"SMTP_TLS_ENABLED"`
	}
	AI struct {
		// openai | yandexgpt
		Provider string `default:"openai" env:"AI_PROVIDER"`
		OpenAI   struct {
			APIKey  string        `default:"" env:"OPENAI_API_KEY"`
			Model   string        `default:"gpt-4o" env:"OPENAI_MODEL"`
			BaseURL string        `default:"" env:"OPENAI_BASE_URL"`
			Timeout time.Duration `default:"60s" env:"OPENAI_TIMEOUT"`
		}
		YandexGPT struct {
			IAMToken  string `default:"" env:"YANDEX_GPT_IAM_TOKEN"`
			CatalogID string `default:"" env:"YANDEX_GPT_CATALOG_ID"`
		}
	}
	Evaluation struct {
		MaxAttempts   int           `default:"3" env:"EVALUATION_MAX_ATTEMPTS"`
		BackoffStepMs int           `default:"1000" env:"EVALUATION_BACKOFF_STEP_MS"`
		SweepInterval time.Duration `default:"5m" env:"EVALUATION_SWEEP_INTERVAL"`
		PendingAge    time.Duration `default:"15m" env:"EVALUATION_PENDING_AGE"`
	}
	RateLimit struct {
		Limit  int           `default:"10" env:"RATE_LIMIT"`
		Window time.Duration `default:"60s" env:"RATE_LIMIT_WINDOW"`
	}
}

func configFiles() []string {
	return []string{"config.yml"}
}

func InitConfig() {
	if Conf != nil {
		return
	}
	conf := new(Configuration)
	err := configor.New(&configor.Config{}).Load(conf, configFiles()...)
	if err != nil {
		panic(err)
	}
	Conf = conf
}

// Location часовой пояс для дат в сообщениях, при ошибке - UTC
func (c *Configuration) Location() *time.Location {
	loc, err := time.LoadLocation(c.App.TimeZone)
	if err != nil {
		return time.UTC
	}
	return loc
}
