package config

import (
	"errors"
	"fmt"
	"net"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"wound-analyzer/internal/domain/entity"
)

type Config struct {
	Server      ServerConfig      `mapstructure:"server"`
	Storage     StorageConfig     `mapstructure:"storage"`
	Calibration CalibrationConfig `mapstructure:"calibration"`
	LLM         LLMConfig         `mapstructure:"llm"`
	Telegram    TelegramConfig    `mapstructure:"telegram"`
}

type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            string        `mapstructure:"port"`
	Mode            string        `mapstructure:"mode"`
	MaxBodyBytes    int64         `mapstructure:"max_body_bytes"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

type StorageConfig struct {
	SaveDir     string `mapstructure:"save_dir"`
	JPEGQuality int    `mapstructure:"jpeg_quality"`
}

// CalibrationConfig коэффициенты перевода пикселей в сантиметры
type CalibrationConfig struct {
	ReferenceArea   float64 `mapstructure:"reference_area"`
	WoundAreaFactor float64 `mapstructure:"wound_area_factor"`
	BoxAreaFactor   float64 `mapstructure:"box_area_factor"`
	PixelsPerCm     float64 `mapstructure:"pixels_per_cm"`
}

type LLMConfig struct {
	Provider      string        `mapstructure:"provider"`
	Model         string        `mapstructure:"model"`
	Temperature   float64       `mapstructure:"temperature"`
	OpenAIKey     string        `mapstructure:"openai_api_key"`
	OpenAIBaseURL string        `mapstructure:"openai_base_url"`
	GeminiKey     string        `mapstructure:"gemini_api_key"`
	Timeout       time.Duration `mapstructure:"timeout"`
}

type TelegramConfig struct {
	Token string `mapstructure:"token"`
}

// Переменные окружения для ключей конфигурации
var envBindings = map[string]string{
	"server.host":                   "HOST",
	"server.port":                   "PORT",
	"server.mode":                   "GIN_MODE",
	"server.max_body_bytes":         "MAX_BODY_BYTES",
	"storage.save_dir":              "SAVE_DIR",
	"storage.jpeg_quality":          "JPEG_QUALITY",
	"calibration.reference_area":    "CALIBRATION_REFERENCE_AREA",
	"calibration.wound_area_factor": "CALIBRATION_WOUND_AREA_FACTOR",
	"calibration.box_area_factor":   "CALIBRATION_BOX_AREA_FACTOR",
	"calibration.pixels_per_cm":     "CALIBRATION_PIXELS_PER_CM",
	"llm.provider":                  "LLM_PROVIDER",
	"llm.model":                     "LLM_MODEL",
	"llm.openai_api_key":            "OPENAI_API_KEY",
	"llm.openai_base_url":           "OPENAI_BASE_URL",
	"llm.gemini_api_key":            "GEMINI_API_KEY",
	"telegram.token":                "TELEGRAM_TOKEN",
}

// Load читает .env, YAML-файл (если путь задан) и переменные окружения.
func Load(configPath string) (*Config, error) {
	// Загружаем .env файл (игнорируем ошибку если файла нет)
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)

	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("bind %s: %w", env, err)
		}
	}

	if configPath != "" {
		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", "5000")
	v.SetDefault("server.mode", "debug")
	v.SetDefault("server.max_body_bytes", 20<<20)
	v.SetDefault("server.read_timeout", 30*time.Second)
	v.SetDefault("server.write_timeout", 2*time.Minute)
	v.SetDefault("server.shutdown_timeout", 5*time.Second)

	v.SetDefault("storage.save_dir", "captured_images")
	v.SetDefault("storage.jpeg_quality", 95)

	v.SetDefault("calibration.reference_area", entity.DefaultReferenceArea)
	v.SetDefault("calibration.wound_area_factor", entity.DefaultWoundAreaFactor)
	v.SetDefault("calibration.box_area_factor", entity.DefaultBoxAreaFactor)
	v.SetDefault("calibration.pixels_per_cm", entity.DefaultPixelsPerCm)

	v.SetDefault("llm.provider", "openai")
	v.SetDefault("llm.model", "gpt-4")
	v.SetDefault("llm.temperature", 0.0)
	v.SetDefault("llm.openai_api_key", "")
	v.SetDefault("llm.openai_base_url", "https://api.openai.com/v1")
	v.SetDefault("llm.gemini_api_key", "")
	v.SetDefault("llm.timeout", time.Minute)

	v.SetDefault("telegram.token", "")
}

// Validate проверяет значения, без которых сервис работать не может
func (c *Config) Validate() error {
	var errs []error

	if c.Server.Port == "" {
		errs = append(errs, errors.New("server port is required"))
	}
	if c.Storage.SaveDir == "" {
		errs = append(errs, errors.New("save directory is required"))
	}
	if c.Storage.JPEGQuality < 1 || c.Storage.JPEGQuality > 100 {
		errs = append(errs, fmt.Errorf("jpeg quality must be within 1..100, got %d", c.Storage.JPEGQuality))
	}

	cal := c.Calibration
	for name, val := range map[string]float64{
		"reference_area":    cal.ReferenceArea,
		"wound_area_factor": cal.WoundAreaFactor,
		"box_area_factor":   cal.BoxAreaFactor,
		"pixels_per_cm":     cal.PixelsPerCm,
	} {
		if val <= 0 {
			errs = append(errs, fmt.Errorf("calibration %s must be positive, got %v", name, val))
		}
	}

	switch c.LLM.Provider {
	case "openai", "gemini":
	default:
		errs = append(errs, fmt.Errorf("unknown llm provider %q", c.LLM.Provider))
	}

	return errors.Join(errs...)
}

// Addr адрес для http.Server
func (c *Config) Addr() string {
	return net.JoinHostPort(c.Server.Host, c.Server.Port)
}

// EntityCalibration переводит настройки в доменную калибровку
func (c *Config) EntityCalibration() entity.Calibration {
	return entity.Calibration{
		ReferenceArea:   c.Calibration.ReferenceArea,
		WoundAreaFactor: c.Calibration.WoundAreaFactor,
		BoxAreaFactor:   c.Calibration.BoxAreaFactor,
		PixelsPerCm:     c.Calibration.PixelsPerCm,
	}
}

// APIKey ключ выбранного провайдера
func (l LLMConfig) APIKey() string {
	if l.Provider == "gemini" {
		return l.GeminiKey
	}
	return l.OpenAIKey
}
