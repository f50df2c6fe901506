package logger

import (
	"context"
	"testing"

	"uniformnavi/internal/config"
	"uniformnavi/internal/reqctx"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]zapcore.Level{
		"debug":   zapcore.DebugLevel,
		"info":    zapcore.InfoLevel,
		"warn":    zapcore.WarnLevel,
		"error":   zapcore.ErrorLevel,
		"verbose": zapcore.InfoLevel,
	}
	for in, want := range cases {
		if got := parseLevel(in); got != want {
			t.Errorf("parseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestWithCtx_AddsRequestID(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	prev := Log
	Log = zap.New(core)
	t.Cleanup(func() { Log = prev })

	ctx := reqctx.WithRequestID(context.Background(), "req-42")
	WithCtx(ctx).Info("hello")
	WithCtx(context.Background()).Info("plain")

	entries := logs.All()
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if got := entries[0].ContextMap()["request_id"]; got != "req-42" {
		t.Fatalf("request_id: got %v", got)
	}
	if _, ok := entries[1].ContextMap()["request_id"]; ok {
		t.Fatal("request_id must be absent without one in context")
	}
}

func TestInitLogger_Dev(t *testing.T) {
	prev := Log
	t.Cleanup(func() { Log = prev })

	InitLogger(&config.Config{Log: "dev", LogLevel: "debug"})
	if Log == nil {
		t.Fatal("logger not initialised")
	}
	if !Log.Core().Enabled(zapcore.DebugLevel) {
		t.Fatal("debug level must be enabled")
	}
}
