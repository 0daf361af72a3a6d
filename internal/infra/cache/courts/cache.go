package courts

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/m04kA/CourtBookingService/internal/domain"
)

const activeCourtsKey = "courts:active"

// Cache кэш справочника активных кортов в redis
type Cache struct {
	client *redis.Client
	ttl    time.Duration
	prefix string
}

// NewCache создает кэш. prefix отделяет ключи разных окружений.
func NewCache(client *redis.Client, prefix string, ttl time.Duration) *Cache {
	return &Cache{client: client, ttl: ttl, prefix: prefix}
}

// NewRedisClient подключается к redis и проверяет соединение
func NewRedisClient(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("%w: ping %s: %v", ErrCache, addr, err)
	}

	return client, nil
}

// GetActive читает список активных кортов
func (c *Cache) GetActive(ctx context.Context) ([]*domain.Court, error) {
	data, err := c.client.Get(ctx, c.key()).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrCacheMiss
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetActive - get: %v", ErrCache, err)
	}

	var entries []courtEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("%w: GetActive - decode: %v", ErrCache, err)
	}

	return toDomain(entries), nil
}

// SetActive сохраняет список активных кортов на ttl
func (c *Cache) SetActive(ctx context.Context, courts []*domain.Court) error {
	data, err := json.Marshal(fromDomain(courts))
	if err != nil {
		return fmt.Errorf("%w: SetActive - encode: %v", ErrCache, err)
	}

	if err := c.client.Set(ctx, c.key(), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("%w: SetActive - set: %v", ErrCache, err)
	}

	return nil
}

func (c *Cache) key() string {
	if c.prefix == "" {
		return activeCourtsKey
	}
	return c.prefix + ":" + activeCourtsKey
}
