package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newTestCache(t *testing.T, ttl time.Duration) (*Cache, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return New(client, ttl), mr
}

type snapshot struct {
	Kabupaten string  `json:"kabupaten"`
	NDVI      float64 `json:"ndvi"`
}

func TestSetGetRoundTrip(t *testing.T) {
	c, _ := newTestCache(t, time.Minute)
	ctx := context.Background()

	in := snapshot{Kabupaten: "bangkalan", NDVI: 0.71}
	if err := c.Set(ctx, "dashboard:bangkalan", in); err != nil {
		t.Fatalf("Set: %v", err)
	}

	var out snapshot
	if err := c.Get(ctx, "dashboard:bangkalan", &out); err != nil {
		t.Fatalf("Get: %v", err)
	}
	if out != in {
		t.Errorf("Get = %+v, want %+v", out, in)
	}
}

func TestGetMiss(t *testing.T) {
	c, _ := newTestCache(t, time.Minute)

	var out snapshot
	if err := c.Get(context.Background(), "absent", &out); !errors.Is(err, ErrMiss) {
		t.Fatalf("err = %v, want ErrMiss", err)
	}
}

func TestEntriesExpire(t *testing.T) {
	c, mr := newTestCache(t, time.Minute)
	ctx := context.Background()

	if err := c.Set(ctx, "dashboard:sampang", snapshot{Kabupaten: "sampang"}); err != nil {
		t.Fatalf("Set: %v", err)
	}

	mr.FastForward(2 * time.Minute)

	var out snapshot
	if err := c.Get(ctx, "dashboard:sampang", &out); !errors.Is(err, ErrMiss) {
		t.Fatalf("err after ttl = %v, want ErrMiss", err)
	}
}

func TestInvalidate(t *testing.T) {
	c, _ := newTestCache(t, time.Minute)
	ctx := context.Background()

	if err := c.Set(ctx, "dashboard:sumenep", snapshot{Kabupaten: "sumenep"}); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := c.Invalidate(ctx, "dashboard:sumenep"); err != nil {
		t.Fatalf("Invalidate: %v", err)
	}

	var out snapshot
	if err := c.Get(ctx, "dashboard:sumenep", &out); !errors.Is(err, ErrMiss) {
		t.Fatalf("err after invalidate = %v, want ErrMiss", err)
	}
}
