package shared_test

import (
	"testing"
	"time"

	"holidaze/internal/shared"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("NOROFF_API_KEY", "k")
	t.Setenv("CACHE_TTL_SECONDS", "")
	c := shared.Load()
	if c.NoroffBase != "https://v2.api.noroff.dev" {
		t.Fatalf("base: %q", c.NoroffBase)
	}
	if c.CacheTTL != 300*time.Second || c.WarmWorkers != 8 || c.NoroffRPS != 5 {
		t.Fatalf("unexpected defaults: %+v", c)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":9999")
	t.Setenv("REDIS_DB", "3")
	t.Setenv("WARM_WORKERS", "not-a-number")
	t.Setenv("REQUEST_TIMEOUT_SECONDS", "5")
	c := shared.Load()
	if c.HTTPAddr != ":9999" || c.RedisDB != 3 || c.RequestTimeout != 5*time.Second {
		t.Fatalf("unexpected config: %+v", c)
	}
	if c.WarmWorkers != 8 {
		t.Fatalf("invalid int should fall back, got %d", c.WarmWorkers)
	}
}
