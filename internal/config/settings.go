package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	StoreDriverPostgres = "postgres"
	StoreDriverRedis    = "redis"
)

type Settings struct {
	Port     string `yaml:"port"`
	LogLevel string `yaml:"log_level"`

	StoreDriver string `yaml:"store_driver"`
	DatabaseDSN string `yaml:"database_dsn"`
	DBName      string `yaml:"db_name"`

	Redis struct {
		Addr     string `yaml:"addr"`
		Password string `yaml:"password"`
		DB       int    `yaml:"db"`
	} `yaml:"redis"`

	Gemini struct {
		APIKey    string `yaml:"api_key"`
		Model     string `yaml:"model"`
		MaxTokens int32  `yaml:"max_tokens"`
	} `yaml:"gemini"`

	StaticDir          string   `yaml:"static_dir"`
	CORSAllowedOrigins []string `yaml:"cors_allowed_origins"`
	StrictValidation   bool     `yaml:"strict_validation"`
}

func defaultSettings() *Settings {
	s := &Settings{
		Port:               "8080",
		LogLevel:           "info",
		StoreDriver:        StoreDriverPostgres,
		StaticDir:          "frontend/public",
		CORSAllowedOrigins: []string{"*"},
	}
	s.Redis.Addr = "localhost:6379"
	s.Gemini.Model = "gemini-2.0-flash"
	s.Gemini.MaxTokens = 4096
	return s
}

// Load reads settings from an optional .env file, an optional YAML file named
// by CONFIG_FILE and finally the process environment, later sources winning.
func Load() (*Settings, error) {
	_ = godotenv.Load()

	s := defaultSettings()

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := s.loadFile(path); err != nil {
			return nil, err
		}
	}

	if err := s.applyEnv(); err != nil {
		return nil, err
	}

	if s.StoreDriver != StoreDriverPostgres && s.StoreDriver != StoreDriverRedis {
		return nil, fmt.Errorf("unsupported STORE_DRIVER %q", s.StoreDriver)
	}

	return s, nil
}

func (s *Settings) loadFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open config file: %w", err)
	}
	defer f.Close()

	if err := yaml.NewDecoder(f).Decode(s); err != nil {
		return fmt.Errorf("decode config file %s: %w", path, err)
	}
	return nil
}

func (s *Settings) applyEnv() error {
	setString(&s.Port, "PORT")
	setString(&s.LogLevel, "LOG_LEVEL")
	setString(&s.StoreDriver, "STORE_DRIVER")
	setString(&s.DatabaseDSN, "DATABASE_DSN")
	setString(&s.DBName, "DB_NAME")
	setString(&s.Redis.Addr, "REDIS_ADDR")
	setString(&s.Redis.Password, "REDIS_PASSWORD")
	setString(&s.Gemini.APIKey, "GEMINI_API_KEY")
	setString(&s.Gemini.Model, "GEMINI_MODEL")
	setString(&s.StaticDir, "STATIC_DIR")

	if v := os.Getenv("REDIS_DB"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid REDIS_DB: %w", err)
		}
		s.Redis.DB = n
	}

	if v := os.Getenv("GEMINI_MAX_TOKENS"); v != "" {
		n, err := strconv.ParseInt(v, 10, 32)
		if err != nil || n <= 0 {
			return fmt.Errorf("invalid GEMINI_MAX_TOKENS %q", v)
		}
		s.Gemini.MaxTokens = int32(n)
	}

	if v := os.Getenv("QUIZ_STRICT_VALIDATION"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid QUIZ_STRICT_VALIDATION: %w", err)
		}
		s.StrictValidation = b
	}

	if v := os.Getenv("CORS_ALLOWED_ORIGINS"); v != "" {
		var origins []string
		for _, o := range strings.Split(v, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
		s.CORSAllowedOrigins = origins
	}

	return nil
}

func setString(dst *string, key string) {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		*dst = v
	}
}
