package config

import (
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

type Config struct {
	Env            string         `yaml:"env" env:"APP_ENV" env-default:"local"`
	Log            Log            `yaml:"log"`
	Http           Http           `yaml:"http"`
	Clients        Clients        `yaml:"clients"`
	Infrastructure Infrastructure `yaml:"infrastructure"`
	Report         Report         `yaml:"report"`
	Bulk           Bulk           `yaml:"bulk"`
}

type Log struct {
	Level  string `yaml:"level" env:"LOG_LEVEL" env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

type Http struct {
	Address   string `yaml:"address" env:"HTTP_ADDRESS" env-default:":8080"`
	AppName   string `yaml:"app_name" env:"HTTP_APP_NAME" env-default:"wrapped-reports"`
	BodyLimit int    `yaml:"body_limit" env:"HTTP_BODY_LIMIT" env-default:"10485760"`
}

type Clients struct {
	OpenAI  OpenAI  `yaml:"openai"`
	Website Website `yaml:"website"`
	Browser Browser `yaml:"browser"`
}

// OpenAI points at any OpenAI-compatible chat completion endpoint.
type OpenAI struct {
	ApiKey      string        `yaml:"api_key" env:"GROQ_API_KEY"`
	BaseUrl     string        `yaml:"base_url" env:"GROQ_BASE_URL" env-default:"https://api.groq.com/openai/v1"`
	Model       string        `yaml:"model" env:"GROQ_MODEL" env-default:"llama-3.3-70b-versatile"`
	Temperature float64       `yaml:"temperature" env:"GROQ_TEMPERATURE" env-default:"0.8"`
	MaxTokens   int64         `yaml:"max_tokens" env:"GROQ_MAX_TOKENS" env-default:"2048"`
	Timeout     time.Duration `yaml:"timeout" env:"GROQ_TIMEOUT" env-default:"0s"`
}

type Website struct {
	Timeout   time.Duration `yaml:"timeout" env:"WEBSITE_TIMEOUT" env-default:"5s"`
	MaxChars  int           `yaml:"max_chars" env:"WEBSITE_MAX_CHARS" env-default:"2000"`
	UserAgent string        `yaml:"user_agent" env:"WEBSITE_USER_AGENT" env-default:"Mozilla/5.0 (compatible; ReportBuilder/1.0)"`
}

type Browser struct {
	ControlUrl  string        `yaml:"control_url" env:"BROWSER_CONTROL_URL"`
	Bin         string        `yaml:"bin" env:"BROWSER_BIN"`
	Headless    bool          `yaml:"headless" env:"BROWSER_HEADLESS" env-default:"true"`
	Width       int           `yaml:"width" env:"BROWSER_WIDTH" env-default:"448"`
	Height      int           `yaml:"height" env:"BROWSER_HEIGHT" env-default:"796"`
	Scale       float64       `yaml:"scale" env:"BROWSER_SCALE" env-default:"2"`
	SettleDelay time.Duration `yaml:"settle_delay" env:"BROWSER_SETTLE_DELAY" env-default:"500ms"`
}

type Infrastructure struct {
	Redis Redis `yaml:"redis"`
	Amqp  Amqp  `yaml:"amqp"`
}

// Redis is optional; an empty address keeps bulk jobs in memory.
type Redis struct {
	Address  string `yaml:"address" env:"REDIS_ADDRESS"`
	Password string `yaml:"password" env:"REDIS_PASSWORD"`
	DB       int    `yaml:"db" env:"REDIS_DB" env-default:"0"`
	Prefix   string `yaml:"prefix" env:"REDIS_PREFIX" env-default:"wrapped:job:"`
}

// Amqp is optional; an empty url disables report publishing.
type Amqp struct {
	Url      string `yaml:"url" env:"AMQP_URL"`
	Exchange string `yaml:"exchange" env:"AMQP_EXCHANGE" env-default:"wrapped.reports"`
}

type Report struct {
	Period string `yaml:"period" env:"REPORT_PERIOD" env-default:"November 2024"`
}

type Bulk struct {
	Pacing time.Duration `yaml:"pacing" env:"BULK_PACING" env-default:"1s"`
	JobTTL time.Duration `yaml:"job_ttl" env:"BULK_JOB_TTL" env-default:"24h"`
}

// Load reads .env when present, then CONFIG_PATH (yaml) or the environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if path := os.Getenv("CONFIG_PATH"); path != "" {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, err
		}
		return &cfg, nil
	}

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic("config: " + err.Error())
	}
	return cfg
}
