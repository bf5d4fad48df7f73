package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	"freshbasket/models"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/singleflight"
)

const activeKey = "catalog:active"

// loadTimeout bounds a shared store read. The read outlives any single
// caller's cancellation.
const loadTimeout = 10 * time.Second

// Cache keeps the active product list in Redis. Concurrent misses share one
// store read. Redis failures fall through to the loader.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
	group  singleflight.Group
}

func NewCache(client *redis.Client, ttl time.Duration) *Cache {
	return &Cache{client: client, ttl: ttl}
}

type loader func(ctx context.Context) ([]models.Product, error)

func (c *Cache) active(ctx context.Context, load loader) ([]models.Product, error) {
	data, err := c.client.Get(ctx, activeKey).Bytes()
	if err == nil {
		var products []models.Product
		if err := json.Unmarshal(data, &products); err == nil {
			return products, nil
		}
		log.Printf("catalog cache: dropping undecodable entry")
	} else if !errors.Is(err, redis.Nil) {
		log.Printf("catalog cache get: %v", err)
	}

	ch := c.group.DoChan(activeKey, func() (interface{}, error) {
		loadCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), loadTimeout)
		defer cancel()
		products, err := load(loadCtx)
		if err != nil {
			return nil, err
		}
		if payload, err := json.Marshal(products); err == nil {
			if err := c.client.Set(loadCtx, activeKey, payload, c.ttl).Err(); err != nil {
				log.Printf("catalog cache set: %v", err)
			}
		}
		return products, nil
	})
	select {
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.([]models.Product), nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Invalidate drops the cached list.
func (c *Cache) Invalidate(ctx context.Context) error {
	return c.client.Del(ctx, activeKey).Err()
}
