package cache

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// MemoryClient é o fallback em memória quando o Redis não está disponível.
// Entradas expiradas são descartadas na leitura.
type MemoryClient struct {
	mu   sync.Mutex
	data map[string]memoryEntry
	now  func() time.Time
}

type memoryEntry struct {
	value     string
	expiresAt time.Time // zero = sem expiração
}

// NewMemoryClient cria um cache em memória vazio.
func NewMemoryClient() *MemoryClient {
	return &MemoryClient{
		data: make(map[string]memoryEntry),
		now:  time.Now,
	}
}

func (c *MemoryClient) expired(e memoryEntry) bool {
	return !e.expiresAt.IsZero() && !c.now().Before(e.expiresAt)
}

func (c *MemoryClient) deadline(expiration time.Duration) time.Time {
	if expiration <= 0 {
		return time.Time{}
	}
	return c.now().Add(expiration)
}

// Get recupera o valor associado a uma chave.
func (c *MemoryClient) Get(_ context.Context, key string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.data[key]
	if !ok {
		return "", ErrCacheMiss
	}
	if c.expired(e) {
		delete(c.data, key)
		return "", ErrCacheMiss
	}
	return e.value, nil
}

// Set aceita os mesmos tipos que o Redis (string, []byte, números).
func (c *MemoryClient) Set(_ context.Context, key string, value interface{}, expiration time.Duration) error {
	var str string
	switch v := value.(type) {
	case string:
		str = v
	case []byte:
		str = string(v)
	default:
		str = fmt.Sprint(v)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = memoryEntry{value: str, expiresAt: c.deadline(expiration)}
	return nil
}

// Delete remove uma chave do cache.
func (c *MemoryClient) Delete(_ context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.data, key)
	return nil
}

// Incr segue a mesma semântica do RedisClient: a expiração nasce com a chave.
func (c *MemoryClient) Incr(_ context.Context, key string, expiration time.Duration) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.data[key]
	if !ok || c.expired(e) {
		c.data[key] = memoryEntry{value: "1", expiresAt: c.deadline(expiration)}
		return 1, nil
	}

	var count int64
	if _, err := fmt.Sscan(e.value, &count); err != nil {
		return 0, fmt.Errorf("cache: valor da chave %s não é inteiro: %w", key, err)
	}
	count++
	e.value = fmt.Sprint(count)
	c.data[key] = e
	return count, nil
}
