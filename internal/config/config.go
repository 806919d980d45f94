package config

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/caarlos0/env/v6"
)

const (
	defaultAddress        = "localhost:8080"
	defaultCatalogURL     = "https://frontend-take-home-service.fetch.com"
	defaultCatalogUser    = "dogfinder"
	defaultCatalogEmail   = "dogfinder@example.com"
	defaultSecretKey      = "dogfinder_secret_key"
	defaultBreedsTTL      = time.Hour
	defaultRequestTimeout = 10 * time.Second
	defaultSessionTTL     = 2 * time.Hour
	defaultPageSize       = 25
	defaultLogLevel       = "info"
)

// DefaultConfig конфигурация по умолчанию
var DefaultConfig = Config{
	address:        defaultAddress,
	catalogURL:     defaultCatalogURL,
	catalogUser:    defaultCatalogUser,
	catalogEmail:   defaultCatalogEmail,
	secretKey:      defaultSecretKey,
	breedsTTL:      defaultBreedsTTL,
	requestTimeout: defaultRequestTimeout,
	sessionTTL:     defaultSessionTTL,
	pageSize:       defaultPageSize,
	logLevel:       defaultLogLevel,
}

// Config конфигурация приложения. только для чтения
type Config struct {
	address        string
	catalogURL     string
	catalogUser    string
	catalogEmail   string
	secretKey      string
	redisAddr      string
	breedsTTL      time.Duration
	requestTimeout time.Duration
	sessionTTL     time.Duration
	pageSize       int
	logLevel       string
}

// appConfig промежуточная структура для флагов и переменных окружения
type appConfig struct {
	Address        string        `env:"SERVER_ADDRESS"`
	CatalogURL     string        `env:"CATALOG_URL"`
	CatalogUser    string        `env:"CATALOG_USER_NAME"`
	CatalogEmail   string        `env:"CATALOG_USER_EMAIL"`
	SecretKey      string        `env:"SECRET_KEY"`
	RedisAddr      string        `env:"REDIS_ADDR"`
	BreedsTTL      time.Duration `env:"BREEDS_CACHE_TTL"`
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
	SessionTTL     time.Duration `env:"SESSION_TTL"`
	PageSize       int           `env:"PAGE_SIZE"`
	LogLevel       string        `env:"LOG_LEVEL"`
}

// ParseConfig разбор флагов args и переменных окружения. переменные окружения имеют приоритет над флагами
func ParseConfig(log *slog.Logger, args ...string) (Config, error) {
	ac := appConfig{}

	fs := flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
	fs.StringVar(&ac.Address, "a", defaultAddress, "адрес сервера")
	fs.StringVar(&ac.CatalogURL, "c", defaultCatalogURL, "адрес каталога собак")
	fs.StringVar(&ac.CatalogUser, "u", defaultCatalogUser, "имя для авторизации в каталоге")
	fs.StringVar(&ac.CatalogEmail, "e", defaultCatalogEmail, "email для авторизации в каталоге")
	fs.StringVar(&ac.SecretKey, "k", defaultSecretKey, "ключ для подписи токенов")
	fs.StringVar(&ac.RedisAddr, "r", "", "адрес redis для кеширования пород")
	fs.DurationVar(&ac.BreedsTTL, "breeds-ttl", defaultBreedsTTL, "время жизни кеша пород")
	fs.DurationVar(&ac.RequestTimeout, "t", defaultRequestTimeout, "таймаут запроса к каталогу")
	fs.DurationVar(&ac.SessionTTL, "s", defaultSessionTTL, "время жизни неактивной сессии")
	fs.IntVar(&ac.PageSize, "p", defaultPageSize, "размер страницы по умолчанию")
	fs.StringVar(&ac.LogLevel, "l", defaultLogLevel, "уровень логирования")
	if err := fs.Parse(args); err != nil {
		return Config{}, fmt.Errorf("разбор флагов. %w", err)
	}

	if err := env.Parse(&ac); err != nil {
		return Config{}, fmt.Errorf("разбор переменных окружения. %w", err)
	}

	if ac.PageSize <= 0 || ac.PageSize > 100 {
		return Config{}, fmt.Errorf("размер страницы должен быть от 1 до 100, получено %d", ac.PageSize)
	}

	cfg := Config{
		address:        ac.Address,
		catalogURL:     ac.CatalogURL,
		catalogUser:    ac.CatalogUser,
		catalogEmail:   ac.CatalogEmail,
		secretKey:      ac.SecretKey,
		redisAddr:      ac.RedisAddr,
		breedsTTL:      ac.BreedsTTL,
		requestTimeout: ac.RequestTimeout,
		sessionTTL:     ac.SessionTTL,
		pageSize:       ac.PageSize,
		logLevel:       ac.LogLevel,
	}
	log.Debug(
		"конфигурация",
		slog.String("адрес", cfg.address),
		slog.String("каталог", cfg.catalogURL),
		slog.Bool("кеш пород", cfg.redisAddr != ""),
	)
	return cfg, nil
}

func (c Config) Address() string {
	return c.address
}
func (c Config) CatalogURL() string {
	return c.catalogURL
}
func (c Config) CatalogUser() string {
	return c.catalogUser
}
func (c Config) CatalogEmail() string {
	return c.catalogEmail
}
func (c Config) SecretKey() string {
	return c.secretKey
}
func (c Config) RedisAddr() string {
	return c.redisAddr
}
func (c Config) BreedsTTL() time.Duration {
	return c.breedsTTL
}
func (c Config) RequestTimeout() time.Duration {
	return c.requestTimeout
}
func (c Config) SessionTTL() time.Duration {
	return c.sessionTTL
}
func (c Config) PageSize() int {
	return c.pageSize
}
func (c Config) LogLevel() string {
	return c.logLevel
}
