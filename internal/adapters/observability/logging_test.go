package observability

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestNewLogger_JSONWithService(t *testing.T) {
	var buf bytes.Buffer
	l := newLogger(&buf, "prod", "debug", "holidaze-api")
	l.Debug().Str("venue", "v1").Msg("quote")

	var line map[string]any
	if err := json.Unmarshal(buf.Bytes(), &line); err != nil {
		t.Fatalf("not json: %q", buf.String())
	}
	if line["service"] != "holidaze-api" || line["venue"] != "v1" || line["level"] != "debug" {
		t.Fatalf("unexpected line %v", line)
	}
}

func TestNewLogger_LevelFilter(t *testing.T) {
	var buf bytes.Buffer
	l := newLogger(&buf, "prod", "warn", "holidaze-api")
	l.Info().Msg("dropped")
	if buf.Len() != 0 {
		t.Fatalf("info should be filtered at warn, got %q", buf.String())
	}
	l.Warn().Msg("kept")
	if !strings.Contains(buf.String(), "kept") {
		t.Fatalf("warn missing: %q", buf.String())
	}
}

func TestNewLogger_BadLevelIsInfo(t *testing.T) {
	var buf bytes.Buffer
	l := newLogger(&buf, "dev", "loud", "holidaze-warmer")
	l.Debug().Msg("dropped")
	l.Info().Msg("hello")
	out := buf.String()
	if strings.Contains(out, "dropped") || !strings.Contains(out, "hello") {
		t.Fatalf("unexpected output %q", out)
	}
}
