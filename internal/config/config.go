package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	DBUrl      string
	JWTSecret  string
	JWTTTL     time.Duration
	ServerPort string
	Timezone   string
	LogLevel   string
	LogPretty  bool

	AllowOrigins []string

	RedisURL string

	WhatsApp WhatsAppConfig

	// Quando true, apenas pagamentos explicitamente "paid" disparam avisos.
	PaymentNotifyRequirePaid bool

	S3 S3Config

	MercadoPagoAccessToken string

	LoginRate RateLimitConfig

	// Confere MX/A do domínio do e-mail no cadastro.
	EmailDomainCheck bool
}

type WhatsAppConfig struct {
	APIURL           string
	InstanceID       string
	Token            string
	CoordinatorPhone string
	CCPhones         []string
}

// Configured indica se as credenciais do gateway estão completas.
func (w WhatsAppConfig) Configured() bool {
	return w.APIURL != "" && w.InstanceID != "" && w.Token != ""
}

type S3Config struct {
	Endpoint  string
	Region    string
	Bucket    string
	AccessKey string
	SecretKey string
	PublicURL string
}

func (s S3Config) Configured() bool {
	return s.Bucket != "" && s.AccessKey != "" && s.SecretKey != ""
}

type RateLimitConfig struct {
	RequestsPerSecond float64
	Burst             int
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		DBUrl:      strings.TrimSpace(getEnv("DATABASE_URL", "")),
		JWTSecret:  getEnv("JWT_SECRET", "changeme"),
		ServerPort: getEnv("SERVER_PORT", "8080"),
		Timezone:   getEnv("TIMEZONE", "America/Campo_Grande"),
		LogLevel:   getEnv("LOG_LEVEL", "info"),
		RedisURL:   strings.TrimSpace(getEnv("REDIS_URL", "")),

		WhatsApp: WhatsAppConfig{
			APIURL:           strings.TrimSpace(getEnv("ULTRAMSG_API_URL", "")),
			InstanceID:       strings.TrimSpace(getEnv("ULTRAMSG_INSTANCE_ID", "")),
			Token:            strings.TrimSpace(getEnv("ULTRAMSG_TOKEN", "")),
			CoordinatorPhone: strings.TrimSpace(getEnv("COORDINATOR_PHONE", "")),
			CCPhones:         splitList(getEnv("NOTIFY_CC_PHONES", "")),
		},

		S3: S3Config{
			Endpoint:  strings.TrimSpace(getEnv("S3_ENDPOINT", "")),
			Region:    getEnv("S3_REGION", "us-east-1"),
			Bucket:    strings.TrimSpace(getEnv("S3_BUCKET", "")),
			AccessKey: strings.TrimSpace(getEnv("S3_ACCESS_KEY", "")),
			SecretKey: strings.TrimSpace(getEnv("S3_SECRET_KEY", "")),
			PublicURL: strings.TrimSpace(getEnv("S3_PUBLIC_URL", "")),
		},

		MercadoPagoAccessToken: strings.TrimSpace(getEnv("MERCADOPAGO_ACCESS_TOKEN", "")),
		AllowOrigins:           splitList(getEnv("ALLOW_ORIGINS", "")),
	}

	var err error

	if cfg.JWTTTL, err = parseDuration("JWT_TTL", 24*time.Hour); err != nil {
		return nil, err
	}
	if cfg.LogPretty, err = parseBool("LOG_PRETTY", true); err != nil {
		return nil, err
	}
	if cfg.PaymentNotifyRequirePaid, err = parseBool("PAYMENT_NOTIFY_REQUIRE_PAID", false); err != nil {
		return nil, err
	}

	if cfg.EmailDomainCheck, err = parseBool("EMAIL_DOMAIN_CHECK", false); err != nil {
		return nil, err
	}

	rps, err := parseFloat("LOGIN_RATE_PER_SEC", 1)
	if err != nil {
		return nil, err
	}
	burst, err := parseInt("LOGIN_BURST", 5)
	if err != nil {
		return nil, err
	}
	cfg.LoginRate = RateLimitConfig{RequestsPerSecond: rps, Burst: burst}

	if port, err := strconv.Atoi(cfg.ServerPort); err != nil || port <= 0 {
		return nil, errors.New("SERVER_PORT inválida")
	}

	return cfg, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%s", c.ServerPort)
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

func parseDuration(key string, def time.Duration) (time.Duration, error) {
	val := getEnv(key, "")
	if val == "" {
		return def, nil
	}
	d, err := time.ParseDuration(val)
	if err != nil || d <= 0 {
		return 0, errors.New(key + " inválido")
	}
	return d, nil
}

func parseBool(key string, def bool) (bool, error) {
	val := getEnv(key, "")
	if val == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(val)
	if err != nil {
		return false, errors.New(key + " inválido")
	}
	return b, nil
}

func parseFloat(key string, def float64) (float64, error) {
	val := getEnv(key, "")
	if val == "" {
		return def, nil
	}
	f, err := strconv.ParseFloat(val, 64)
	if err != nil || f <= 0 {
		return 0, errors.New(key + " inválido")
	}
	return f, nil
}

func parseInt(key string, def int) (int, error) {
	val := getEnv(key, "")
	if val == "" {
		return def, nil
	}
	n, err := strconv.Atoi(val)
	if err != nil || n <= 0 {
		return 0, errors.New(key + " inválido")
	}
	return n, nil
}
