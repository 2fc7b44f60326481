package repository

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/hrops/hr-admin-service/internal/domain"
)

// CachingDepartmentRepository decorates a DepartmentRepository with a
// read-through Redis cache on GetByID. Writes go to the inner repository
// first, then invalidate the affected entry; cache failures are best effort
// and never surface to callers.
type CachingDepartmentRepository struct {
	inner DepartmentRepository
	rdb   *redis.Client
	ttl   time.Duration
}

// NewCachingDepartmentRepository wraps inner with Redis caching. A nil client
// or non-positive ttl disables caching entirely.
func NewCachingDepartmentRepository(rdb *redis.Client, ttl time.Duration, inner DepartmentRepository) *CachingDepartmentRepository {
	return &CachingDepartmentRepository{inner: inner, rdb: rdb, ttl: ttl}
}

func (c *CachingDepartmentRepository) enabled() bool {
	return c.rdb != nil && c.ttl > 0
}

func cacheKey(id string) string {
	return "departments:id:" + id
}

func (c *CachingDepartmentRepository) Create(ctx context.Context, dept *domain.Department) error {
	return c.inner.Create(ctx, dept)
}

func (c *CachingDepartmentRepository) Update(ctx context.Context, dept *domain.Department) error {
	if err := c.inner.Update(ctx, dept); err != nil {
		return err
	}
	c.invalidate(ctx, dept.ID)
	return nil
}

func (c *CachingDepartmentRepository) GetByID(ctx context.Context, id string) (*domain.Department, error) {
	if !c.enabled() {
		return c.inner.GetByID(ctx, id)
	}

	key := cacheKey(id)
	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var dept domain.Department
		if err := json.Unmarshal(b, &dept); err == nil {
			return &dept, nil
		}
		_ = c.rdb.Del(ctx, key).Err()
	}

	dept, err := c.inner.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if b, err := json.Marshal(dept); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}
	return dept, nil
}

// GetByName always hits the store: uniqueness checks must not act on stale
// cache entries.
func (c *CachingDepartmentRepository) GetByName(ctx context.Context, name string) (*domain.Department, error) {
	return c.inner.GetByName(ctx, name)
}

func (c *CachingDepartmentRepository) List(ctx context.Context) ([]domain.Department, error) {
	return c.inner.List(ctx)
}

func (c *CachingDepartmentRepository) SoftDelete(ctx context.Context, id string) error {
	if err := c.inner.SoftDelete(ctx, id); err != nil {
		return err
	}
	c.invalidate(ctx, id)
	return nil
}

func (c *CachingDepartmentRepository) invalidate(ctx context.Context, id string) {
	if !c.enabled() {
		return
	}
	_ = c.rdb.Del(ctx, cacheKey(id)).Err()
}
