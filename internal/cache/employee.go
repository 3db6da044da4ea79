package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/staffdesk/staffdesk/internal/model"
)

// Cache key layout and TTLs.
const (
	employeeKeyPrefix = "employee:phone:"
	negCacheKeySuffix = ":neg"

	// DefaultEmployeeTTL is the TTL for cached employee data.
	DefaultEmployeeTTL = 1 * time.Hour

	// NegativeCacheTTL is the TTL for cached lookup misses.
	NegativeCacheTTL = 5 * time.Minute
)

// Common cache errors.
var (
	// ErrCacheMiss means the cache holds nothing for the phone number.
	ErrCacheMiss = errors.New("cache miss")

	// ErrNotFoundCached means a recent lookup already established that
	// no employee has this phone number.
	ErrNotFoundCached = errors.New("not-found entry cached")
)

func employeeKey(phone string) string {
	return employeeKeyPrefix + phone
}

// GetEmployeeByPhone retrieves a cached employee by phone number.
// Returns ErrNotFoundCached when a negative entry exists and ErrCacheMiss
// when the cache holds nothing either way.
func (c *Cache) GetEmployeeByPhone(ctx context.Context, phone string) (*model.CachedEmployee, error) {
	key := employeeKey(phone)

	result, err := c.client.HGetAll(ctx, key).Result()
	if err != nil {
		return nil, fmt.Errorf("redis hgetall failed: %w", err)
	}

	if len(result) > 0 {
		return &model.CachedEmployee{
			ID:        result["id"],
			Name:      result["name"],
			Email:     result["email"],
			CreatedAt: result["created_at"],
			UpdatedAt: result["updated_at"],
		}, nil
	}

	neg, err := c.client.Exists(ctx, key+negCacheKeySuffix).Result()
	if err != nil {
		return nil, fmt.Errorf("redis exists failed: %w", err)
	}
	if neg > 0 {
		return nil, ErrNotFoundCached
	}

	return nil, ErrCacheMiss
}

// SetEmployee stores an employee keyed by phone number and clears any
// negative entry left over from earlier misses.
func (c *Cache) SetEmployee(ctx context.Context, employee *model.Employee) error {
	key := employeeKey(employee.Phone)
	cached := employee.ToCachedEmployee()

	fields := map[string]any{
		"id":         cached.ID,
		"name":       cached.Name,
		"email":      cached.Email,
		"created_at": cached.CreatedAt,
		"updated_at": cached.UpdatedAt,
	}

	pipe := c.client.Pipeline()
	pipe.HSet(ctx, key, fields)
	pipe.Expire(ctx, key, DefaultEmployeeTTL)
	pipe.Del(ctx, key+negCacheKeySuffix)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to cache employee: %w", err)
	}

	return nil
}

// SetNotFound records that no employee has the given phone number.
func (c *Cache) SetNotFound(ctx context.Context, phone string) error {
	key := employeeKey(phone) + negCacheKeySuffix

	if err := c.client.Set(ctx, key, "1", NegativeCacheTTL).Err(); err != nil {
		return fmt.Errorf("failed to cache negative entry: %w", err)
	}

	return nil
}
