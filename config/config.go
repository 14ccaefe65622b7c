package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

// Drivers de armazenamento suportados.
const (
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
	DriverMemory   = "memory"
)

// Config armazena todas as configurações do aplicativo GoBeer.
type Config struct {
	// Geral
	Port        string
	Environment string
	LogLevel    string

	// Banco de Dados (PostgreSQL ou MySQL; "memory" dispensa o DB)
	StorageDriver string
	DatabaseURL   string
	DBTimeout     time.Duration
	AutoMigrate   bool

	// Cache (Redis)
	RedisAddr    string
	CacheTimeout time.Duration
	CacheTTL     time.Duration

	// Segurança (JWT)
	AuthRequired bool
	JWTSecretKey string
	TokenExpiry  time.Duration

	// Rate Limiting
	RateLimitMaxRequests int
	RateLimitPeriod      time.Duration

	// Eventos (Kafka); sem brokers o publisher apenas registra em log
	KafkaBrokers    []string
	KafkaTopicBeers string
}

// LoadConfig carrega as configurações a partir das variáveis de ambiente.
// Campos obrigatórios são checados em Validate.
func LoadConfig() *Config {
	return &Config{
		Port:        getEnv("PORT", "8080"),
		Environment: getEnv("ENV", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),

		StorageDriver: strings.ToLower(getEnv("STORAGE_DRIVER", DriverPostgres)),
		DatabaseURL:   getEnv("DATABASE_URL", ""),
		DBTimeout:     getDurationEnv("DB_TIMEOUT_SEC", 5) * time.Second,
		AutoMigrate:   getBoolEnv("AUTO_MIGRATE", false),

		RedisAddr:    getEnv("REDIS_ADDR", "localhost:6379"),
		CacheTimeout: getDurationEnv("CACHE_TIMEOUT_SEC", 10) * time.Second,
		CacheTTL:     getDurationEnv("CACHE_TTL_SEC", 300) * time.Second,

		AuthRequired: getBoolEnv("AUTH_REQUIRED", false),
		JWTSecretKey: getEnv("JWT_SECRET_KEY", ""),
		TokenExpiry:  getDurationEnv("JWT_EXPIRY_MIN", 60) * time.Minute,

		RateLimitMaxRequests: getIntEnv("RATE_LIMIT_MAX_REQUESTS", 100),
		RateLimitPeriod:      getDurationEnv("RATE_LIMIT_PERIOD_MIN", 1) * time.Minute,

		KafkaBrokers:    getListEnv("KAFKA_BROKERS"),
		KafkaTopicBeers: getEnv("KAFKA_TOPIC_BEERS", "beers.events"),
	}
}

// Validate garante que a aplicação não inicie sem as variáveis obrigatórias.
func (c *Config) Validate() error {
	switch c.StorageDriver {
	case DriverPostgres, DriverMySQL:
		if c.DatabaseURL == "" {
			return fmt.Errorf("a variável de ambiente DATABASE_URL deve ser definida para o driver %s", c.StorageDriver)
		}
	case DriverMemory:
	default:
		return fmt.Errorf("STORAGE_DRIVER inválido: %q (use postgres, mysql ou memory)", c.StorageDriver)
	}

	if c.JWTSecretKey == "" {
		return fmt.Errorf("a variável de ambiente JWT_SECRET_KEY deve ser definida")
	}
	return nil
}

// UsesSQL indica se o driver configurado é um banco relacional.
func (c *Config) UsesSQL() bool {
	return c.StorageDriver == DriverPostgres || c.StorageDriver == DriverMySQL
}

// Funções Helpers (Auxiliares)

// getEnv lê a variável de ambiente ou retorna um valor padrão.
func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getDurationEnv lê uma variável de ambiente numérica e retorna-a como time.Duration.
func getDurationEnv(key string, defaultValue int) time.Duration {
	return time.Duration(getIntEnv(key, defaultValue))
}

// getIntEnv lê uma variável de ambiente numérica e retorna-a como int.
func getIntEnv(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("⚠️ Aviso: Valor de %s ('%s') não é um número inteiro válido. Usando padrão (%d).", key, valueStr, defaultValue)
		return defaultValue
	}
	return value
}

// getBoolEnv aceita os formatos de strconv.ParseBool ("true", "1", "false"...).
func getBoolEnv(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Printf("⚠️ Aviso: Valor de %s ('%s') não é booleano. Usando padrão (%t).", key, valueStr, defaultValue)
		return defaultValue
	}
	return value
}

// getListEnv lê uma lista separada por vírgulas, ignorando itens vazios.
func getListEnv(key string) []string {
	raw := getEnv(key, "")
	if raw == "" {
		return nil
	}
	var out []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
