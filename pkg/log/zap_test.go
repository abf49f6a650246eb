package log_test

import (
	"context"
	"testing"

	"hardware-inventory/pkg/log"
)

func TestRequestID(t *testing.T) {
	ctx := context.Background()
	if got := log.RequestID(ctx); got != "" {
		t.Errorf("expected empty request id, got %q", got)
	}

	ctx = log.WithRequestID(ctx, "req-1")
	if got := log.RequestID(ctx); got != "req-1" {
		t.Errorf("expected req-1, got %q", got)
	}
}

func TestInit(t *testing.T) {
	cases := []log.ZapConfig{
		{Level: "debug", Mode: "debug", Encoding: "console", ColorEnabled: true},
		{Level: "info", Mode: log.ModeProduction, Encoding: log.EncodingJSON},
		{Level: "not-a-level", Mode: "debug", Encoding: "console"},
	}

	for _, cfg := range cases {
		t.Run(cfg.Mode+"/"+cfg.Level, func(t *testing.T) {
			l := log.Init(cfg)
			if l == nil {
				t.Fatal("expected logger")
			}
			ctx := log.WithRequestID(context.Background(), "req-2")
			l.Debugf(ctx, "debug %d", 1)
			l.Info(ctx, "info")
			l.Warnf(ctx, "warn %s", "x")
		})
	}
}
