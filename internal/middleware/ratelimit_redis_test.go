package middleware

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

func newTestRedis(t *testing.T) *redis.Client {
	t.Helper()

	url := os.Getenv("REDIS_URL")
	if url == "" {
		t.Skip("REDIS_URL not set")
	}

	opts, err := redis.ParseURL(url)
	if err != nil {
		t.Fatalf("parse REDIS_URL: %v", err)
	}
	client := redis.NewClient(opts)
	t.Cleanup(func() { _ = client.Close() })

	err = client.Ping(context.Background()).Err()
	if err != nil {
		t.Fatalf("ping redis: %v", err)
	}
	return client
}

func TestRedisLimiter(t *testing.T) {
	client := newTestRedis(t)
	ctx := context.Background()
	prefix := "momhive:test:" + uuid.NewString()

	t.Cleanup(func() {
		keys, _ := client.Keys(ctx, prefix+":*").Result()
		if len(keys) > 0 {
			_ = client.Del(ctx, keys...).Err()
		}
	})

	rl := NewRedisLimiter(client, prefix, 3, time.Hour)

	for i := range 3 {
		allowed, err := rl.Allow(ctx, "1.2.3.4")
		if err != nil {
			t.Fatalf("allow: %v", err)
		}
		if !allowed {
			t.Fatalf("request %d should be allowed", i+1)
		}
	}

	allowed, err := rl.Allow(ctx, "1.2.3.4")
	if err != nil {
		t.Fatalf("allow: %v", err)
	}
	if allowed {
		t.Error("fourth request should be limited")
	}

	allowed, err = rl.Allow(ctx, "5.6.7.8")
	if err != nil {
		t.Fatalf("allow: %v", err)
	}
	if !allowed {
		t.Error("other clients have their own budget")
	}

	bucket := time.Now().UnixNano() / int64(time.Hour)
	ttl, err := client.TTL(ctx, fmt.Sprintf("%s:%s:%d", prefix, "1.2.3.4", bucket)).Result()
	if err != nil {
		t.Fatalf("ttl: %v", err)
	}
	if ttl <= 0 || ttl > time.Hour {
		t.Errorf("window key ttl = %v, want within an hour", ttl)
	}
}

func TestRedisLimiterBehindRateLimit(t *testing.T) {
	client := newTestRedis(t)
	prefix := "momhive:test:" + uuid.NewString()

	h := RateLimit(NewLimiter(client, prefix, 1, time.Hour))(okHandler)

	var codes []int
	for range 2 {
		req := httptest.NewRequest(http.MethodPost, "/login", nil)
		req.RemoteAddr = "10.1.1.1:4000"
		rec := httptest.NewRecorder()
		h(rec, req)
		codes = append(codes, rec.Code)
	}
	if codes[0] != http.StatusOK || codes[1] != http.StatusTooManyRequests {
		t.Errorf("statuses %v, want [200 429]", codes)
	}

	keys, _ := client.Keys(context.Background(), prefix+":*").Result()
	if len(keys) > 0 {
		_ = client.Del(context.Background(), keys...).Err()
	}
}
