package config

import "testing"

func TestLoadStripsRedisScheme(t *testing.T) {
	t.Setenv("REDIS_URI", "redis://localhost:6379")
	if cfg := Load(); cfg.RedisAddr != "localhost:6379" {
		t.Fatalf("RedisAddr = %q", cfg.RedisAddr)
	}

	// A bare scheme leaves no address at all.
	t.Setenv("REDIS_URI", "redis://")
	if cfg := Load(); cfg.RedisAddr != "" {
		t.Fatalf("bare scheme: RedisAddr = %q", cfg.RedisAddr)
	}

	t.Setenv("REDIS_URI", "localhost:6379")
	if cfg := Load(); cfg.RedisAddr != "localhost:6379" {
		t.Fatalf("plain address changed: %q", cfg.RedisAddr)
	}
}

func TestLoadBackendSelection(t *testing.T) {
	t.Setenv("DB_BACKEND", "")
	t.Setenv("ASTRA_DB_API_ENDPOINT", "")
	if cfg := Load(); cfg.Backend != BackendMongo {
		t.Fatalf("default backend = %q", cfg.Backend)
	}

	t.Setenv("ASTRA_DB_API_ENDPOINT", "https://db-id-region.apps.astra.datastax.com")
	if cfg := Load(); cfg.Backend != BackendAstra {
		t.Fatalf("astra endpoint set, backend = %q", cfg.Backend)
	}

	// Explicit choice wins over endpoint sniffing.
	t.Setenv("DB_BACKEND", "mongo")
	if cfg := Load(); cfg.Backend != BackendMongo {
		t.Fatalf("explicit backend = %q", cfg.Backend)
	}
}
