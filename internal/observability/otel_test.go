package observability

import (
	"context"
	"testing"

	"github.com/yungbote/trivia-backend/internal/platform/logger"
)

func TestParseRatio(t *testing.T) {
	cases := map[string]float64{
		"":     0.1,
		"junk": 0.1,
		"0.5":  0.5,
		"-1":   0,
		"3":    1,
	}
	for in, want := range cases {
		if got := parseRatio(in); got != want {
			t.Fatalf("parseRatio(%q)=%v want %v", in, got, want)
		}
	}
}

func TestOtelConfigFromEnv(t *testing.T) {
	t.Setenv("OTEL_ENABLED", "true")
	t.Setenv("OTEL_SERVICE_NAME", "quiz")
	t.Setenv("OTEL_SAMPLER_RATIO", "0.25")
	cfg := OtelConfigFromEnv()
	if !cfg.Enabled || cfg.ServiceName != "quiz" || cfg.SampleRatio != 0.25 {
		t.Fatalf("unexpected config: %+v", cfg)
	}
}

func TestInitOTelDisabledIsNoop(t *testing.T) {
	log, err := logger.New("test")
	if err != nil {
		t.Fatalf("logger: %v", err)
	}
	shutdown := InitOTel(context.Background(), log, OtelConfig{Enabled: false})
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown: %v", err)
	}
}
