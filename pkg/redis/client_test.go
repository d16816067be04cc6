package redis

import (
	"context"
	"net"
	"testing"

	"github.com/GunarsK-portfolio/recipe-service/internal/config"
	"github.com/alicebob/miniredis/v2"
)

func TestNewClient(t *testing.T) {
	mr := miniredis.RunT(t)
	host, port, err := net.SplitHostPort(mr.Addr())
	if err != nil {
		t.Fatalf("SplitHostPort() error = %v", err)
	}

	client, err := NewClient(context.Background(), &config.Config{RedisHost: host, RedisPort: port})
	if err != nil {
		t.Fatalf("NewClient() error = %v", err)
	}
	defer client.Close()

	if err := Ping(client)(context.Background()); err != nil {
		t.Errorf("Ping() error = %v", err)
	}

	mr.Close()
	if err := Ping(client)(context.Background()); err == nil {
		t.Error("Ping() should fail once Redis is gone")
	}
}

func TestNewClient_Unreachable(t *testing.T) {
	mr := miniredis.RunT(t)
	host, port, _ := net.SplitHostPort(mr.Addr())
	mr.Close()

	if _, err := NewClient(context.Background(), &config.Config{RedisHost: host, RedisPort: port}); err == nil {
		t.Error("NewClient() should fail when Redis is unreachable")
	}
}
