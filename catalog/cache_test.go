package catalog

import (
	"context"
	"errors"
	"testing"
	"time"

	"freshbasket/models"
	"freshbasket/store"

	"github.com/redis/go-redis/v9"
)

// deadRedis points at a port nothing listens on, so every command fails fast.
func deadRedis(t *testing.T) *redis.Client {
	t.Helper()
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func TestCache_FallsBackToStoreWhenRedisIsDown(t *testing.T) {
	ctx := context.Background()
	mem := store.NewMemory()
	cat := New(mem.Products(), NewCache(deadRedis(t), time.Minute))
	if err := cat.Seed(ctx); err != nil {
		t.Fatalf("Seed() error = %v", err)
	}

	products, err := cat.ListActive(ctx)
	if err != nil {
		t.Fatalf("ListActive() error = %v", err)
	}
	if len(products) != len(SeedProducts) {
		t.Fatalf("expected %d products, got %d", len(SeedProducts), len(products))
	}
	featured, err := cat.Featured(ctx, 8)
	if err != nil || len(featured) != 8 || featured[0].ID != 1 {
		t.Fatalf("Featured() = %v, %v", featured, err)
	}
}

func TestCache_PropagatesStoreFailure(t *testing.T) {
	cache := NewCache(deadRedis(t), time.Minute)
	_, err := cache.active(context.Background(), func(context.Context) ([]models.Product, error) {
		return nil, store.ErrUnavailable
	})
	if !errors.Is(err, store.ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
}

func TestCache_InvalidateReportsRedisError(t *testing.T) {
	if err := NewCache(deadRedis(t), time.Minute).Invalidate(context.Background()); err == nil {
		t.Fatal("Invalidate() against a dead Redis must fail")
	}
}

// A caller that gives up must not fail the shared load for the others.
func TestCache_CancelledCallerDoesNotCancelSharedLoad(t *testing.T) {
	cache := NewCache(deadRedis(t), time.Minute)
	started := make(chan struct{})
	release := make(chan struct{})
	loadErr := make(chan error, 1)
	load := func(ctx context.Context) ([]models.Product, error) {
		close(started)
		<-release
		loadErr <- ctx.Err()
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		return []models.Product{{ProductID: "1", ID: 1, Name: "Green Apples"}}, nil
	}

	firstCtx, cancelFirst := context.WithCancel(context.Background())
	firstDone := make(chan error, 1)
	go func() {
		_, err := cache.active(firstCtx, load)
		firstDone <- err
	}()
	<-started
	cancelFirst()
	if err := <-firstDone; !errors.Is(err, context.Canceled) {
		t.Fatalf("cancelled caller got %v, want context.Canceled", err)
	}

	secondDone := make(chan []models.Product, 1)
	go func() {
		products, err := cache.active(context.Background(), load)
		if err != nil {
			t.Errorf("second caller error = %v", err)
		}
		secondDone <- products
	}()
	time.Sleep(20 * time.Millisecond)
	close(release)

	if err := <-loadErr; err != nil {
		t.Fatalf("shared load saw a cancelled context: %v", err)
	}
	if products := <-secondDone; len(products) != 1 || products[0].Name != "Green Apples" {
		t.Fatalf("second caller got %+v", products)
	}
}
