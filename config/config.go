package config

import (
	"log"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	AppName      string   `env:"MENTOR_APP_NAME" envDefault:"career-mentor"`
	AppEnv       string   `env:"MENTOR_APP_ENV" envDefault:"local"`
	HTTPHost     string   `env:"MENTOR_HTTP_HOST" envDefault:"0.0.0.0"`
	HTTPPort     string   `env:"MENTOR_HTTP_PORT" envDefault:"8080"`
	HTTPBasePath string   `env:"MENTOR_HTTP_BASE_PATH" envDefault:"/api"`
	CORSOrigins  []string `env:"MENTOR_CORS_ORIGINS" envSeparator:"," envDefault:"*"`

	DBHost     string `env:"MENTOR_DB_HOST" envDefault:"localhost"`
	DBPort     string `env:"MENTOR_DB_PORT" envDefault:"5432"`
	DBUser     string `env:"MENTOR_DB_USER" envDefault:"app"`
	DBPassword string `env:"MENTOR_DB_PASSWORD" envDefault:"app_password"`
	DBName     string `env:"MENTOR_DB_NAME" envDefault:"mentordb"`
	DBSSLMode  string `env:"MENTOR_DB_SSLMODE" envDefault:"disable"`

	// SessionTTL bounds every freshly issued session; expiry is enforced
	// lazily at lookup, nothing sweeps the table.
	SessionTTL    time.Duration `env:"MENTOR_SESSION_TTL" envDefault:"168h"`
	SessionCookie string        `env:"MENTOR_SESSION_COOKIE" envDefault:"session_token"`

	IdentityExchangeURL string        `env:"MENTOR_IDENTITY_EXCHANGE_URL" envDefault:"https://demobackend.emergentagent.com/auth/v1/env/oauth/session-data"`
	IdentityTimeout     time.Duration `env:"MENTOR_IDENTITY_TIMEOUT" envDefault:"10s"`

	LLMBaseURL string        `env:"MENTOR_LLM_BASE_URL" envDefault:"https://api.openai.com/v1"`
	LLMAPIKey  string        `env:"MENTOR_LLM_API_KEY"`
	LLMModel   string        `env:"MENTOR_LLM_MODEL" envDefault:"gpt-4o-mini"`
	LLMTimeout time.Duration `env:"MENTOR_LLM_TIMEOUT" envDefault:"30s"`

	NATSURL                   string `env:"NATS_URL"`
	NATSSessionCreatedSubject string `env:"NATS_SUBJECT_SESSION_CREATED" envDefault:"mentor.session.created"`
	NATSRoadmapCreatedSubject string `env:"NATS_SUBJECT_ROADMAP_CREATED" envDefault:"mentor.roadmap.created"`
}

func Load() (*Config, error) {
	_ = godotenv.Load()
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	return cfg
}
