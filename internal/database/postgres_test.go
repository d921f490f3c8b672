package database

import (
	"context"
	"os"
	"testing"
	"time"
)

func TestDefaultPostgresConfig(t *testing.T) {
	cfg := DefaultPostgresConfig()

	if cfg.Host != "localhost" {
		t.Errorf("expected host 'localhost', got '%s'", cfg.Host)
	}
	if cfg.Port != 5432 {
		t.Errorf("expected port 5432, got %d", cfg.Port)
	}
	if cfg.Database != "project_mgmt" {
		t.Errorf("expected database 'project_mgmt', got '%s'", cfg.Database)
	}
	if cfg.MaxConns != 25 {
		t.Errorf("expected max conns 25, got %d", cfg.MaxConns)
	}
	if cfg.MaxRetries != 3 {
		t.Errorf("expected max retries 3, got %d", cfg.MaxRetries)
	}
}

func TestPostgresConfig_DSN(t *testing.T) {
	cfg := &PostgresConfig{
		Host:     "localhost",
		Port:     5432,
		User:     "testuser",
		Password: "testpass",
		Database: "testdb",
		SSLMode:  "disable",
	}

	dsn := cfg.DSN()
	expected := "host=localhost port=5432 user=testuser password=testpass dbname=testdb sslmode=disable"

	if dsn != expected {
		t.Errorf("DSN mismatch:\nexpected: %s\ngot: %s", expected, dsn)
	}
}

func TestNewPostgres_InvalidConfig(t *testing.T) {
	cfg := &PostgresConfig{
		Host:           "invalid-host-that-does-not-exist",
		Port:           9999,
		User:           "invalid",
		Password:       "invalid",
		Database:       "invalid",
		SSLMode:        "disable",
		MaxRetries:     0,
		RetryInterval:  100 * time.Millisecond,
		ConnectTimeout: 1 * time.Second,
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := NewPostgres(ctx, cfg); err == nil {
		t.Error("expected error for invalid config, got nil")
	}
}

// Integration tests - run only when a database is available.

func TestNewPostgres_Integration(t *testing.T) {
	if os.Getenv("INTEGRATION_TEST") != "true" {
		t.Skip("Skipping integration test. Set INTEGRATION_TEST=true to run")
	}

	ctx := context.Background()
	db, err := NewPostgres(ctx, DefaultPostgresConfig())
	if err != nil {
		t.Fatalf("failed to connect to postgres: %v", err)
	}
	defer db.Close()

	if err := db.Ping(ctx); err != nil {
		t.Errorf("ping failed: %v", err)
	}
	if !db.IsConnected(ctx) {
		t.Error("expected IsConnected to return true")
	}
	if db.Pool() == nil {
		t.Error("expected Pool() to return non-nil")
	}
	if err := db.HealthCheck(ctx); err != nil {
		t.Errorf("health check failed: %v", err)
	}

	stats := db.Stats()
	if stats == nil {
		t.Fatal("expected Stats() to return non-nil")
	}
	if stats.MaxConns() != DefaultPostgresConfig().MaxConns {
		t.Errorf("expected max conns %d, got %d", DefaultPostgresConfig().MaxConns, stats.MaxConns())
	}
}
