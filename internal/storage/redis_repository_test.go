package storage

import (
	"context"
	"testing"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func TestRedisRepository(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("start miniredis: %v", err)
	}
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	repo := NewRedisRepository(client, DefaultRedisPrefix)
	t.Cleanup(func() { _ = repo.Close() })

	exerciseRepository(t, repo)

	if err := repo.Set(context.Background(), "@tab", "false"); err != nil {
		t.Fatalf("set: %v", err)
	}
	got, err := mr.Get("tabdo:@tab")
	if err != nil {
		t.Fatalf("raw get: %v", err)
	}
	if got != "false" {
		t.Fatalf("expected prefixed key to hold false, got %q", got)
	}
}

func TestOpenRedisFromURL(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("start miniredis: %v", err)
	}
	t.Cleanup(mr.Close)

	repo, err := Open(BackendRedis, "redis://"+mr.Addr()+"/0")
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer repo.Close()
	if err := repo.Set(context.Background(), "k", "v"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if !mr.Exists("tabdo:k") {
		t.Fatal("expected key in redis")
	}

	if _, err := Open(BackendRedis, "not a url"); err == nil {
		t.Fatal("expected error for bad url")
	}
}
