package cache

import (
	"context"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"

	"gobeer/internal/pkg/logger"
)

// Client define o contrato de interface para qualquer serviço de cache que o Repositório
// e os middlewares possam usar.
type Client interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	Delete(ctx context.Context, key string) error
	// Incr incrementa o contador; uma chave nova começa em 1 e expira após expiration.
	Incr(ctx context.Context, key string, expiration time.Duration) (int64, error)
}

// ErrCacheMiss é retornado quando a chave não é encontrada no cache.
var ErrCacheMiss = errors.New("cache: chave não encontrada")

// RedisClient é a implementação concreta da interface Client, usando Redis.
type RedisClient struct {
	rdb *redis.Client
}

// NewClient conecta ao Redis em addr. Se o PING falhar, devolve um cache em memória
// para que o serviço continue funcional sem o Redis.
func NewClient(addr string, timeout time.Duration, log logger.Logger) Client {
	rdb := redis.NewClient(&redis.Options{
		Addr:         addr,
		DialTimeout:  timeout,
		ReadTimeout:  timeout,
		WriteTimeout: timeout,
		PoolSize:     10,
		MinIdleConns: 2,
		MaxRetries:   3,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Warn("Falha ao conectar ao Redis, usando cache em memória.", map[string]interface{}{
			"addr":  addr,
			"error": err.Error(),
		})
		_ = rdb.Close()
		return NewMemoryClient()
	}

	log.Info("Conexão Redis estabelecida.", map[string]interface{}{"addr": addr})
	return &RedisClient{rdb: rdb}
}

// NewRedisClientFrom embrulha um *redis.Client já configurado.
func NewRedisClientFrom(rdb *redis.Client) *RedisClient {
	return &RedisClient{rdb: rdb}
}

// Get recupera o valor associado a uma chave.
func (c *RedisClient) Get(ctx context.Context, key string) (string, error) {
	val, err := c.rdb.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", ErrCacheMiss
	}
	if err != nil {
		return "", err
	}
	return val, nil
}

// Set define um valor para uma chave com um tempo de expiração.
func (c *RedisClient) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	return c.rdb.Set(ctx, key, value, expiration).Err()
}

// Delete remove uma chave do cache.
func (c *RedisClient) Delete(ctx context.Context, key string) error {
	return c.rdb.Del(ctx, key).Err()
}

// Incr usa INCR; a expiração é definida apenas quando a chave nasce (janela fixa).
func (c *RedisClient) Incr(ctx context.Context, key string, expiration time.Duration) (int64, error) {
	count, err := c.rdb.Incr(ctx, key).Result()
	if err != nil {
		return 0, err
	}
	if count == 1 {
		if err := c.rdb.Expire(ctx, key, expiration).Err(); err != nil {
			return count, err
		}
	}
	return count, nil
}

// Close encerra o pool de conexões.
func (c *RedisClient) Close() error {
	return c.rdb.Close()
}
