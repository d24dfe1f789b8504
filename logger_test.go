package linmath

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"sync"
	"testing"
)

func TestNopHandler(t *testing.T) {
	h := nopHandler{}
	for _, level := range []slog.Level{slog.LevelDebug, slog.LevelInfo, slog.LevelWarn, slog.LevelError} {
		if h.Enabled(context.Background(), level) {
			t.Errorf("nopHandler.Enabled(%v) = true, want false", level)
		}
	}
	if err := h.Handle(context.Background(), slog.Record{}); err != nil {
		t.Errorf("nopHandler.Handle() = %v, want nil", err)
	}
	if _, ok := h.WithAttrs([]slog.Attr{slog.String("k", "v")}).(nopHandler); !ok {
		t.Error("WithAttrs did not return a nopHandler")
	}
	if _, ok := h.WithGroup("g").(nopHandler); !ok {
		t.Error("WithGroup did not return a nopHandler")
	}
}

func TestSetLoggerNilRestoresSilence(t *testing.T) {
	defer SetLogger(nil)

	SetLogger(slog.Default())
	if Logger() == nil {
		t.Fatal("Logger() = nil after SetLogger")
	}
	SetLogger(nil)
	if Logger().Enabled(context.Background(), slog.LevelError) {
		t.Error("logger still enabled after SetLogger(nil)")
	}
}

func TestSingularInverseLogsDebug(t *testing.T) {
	defer SetLogger(nil)

	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})))

	if _, err := Mat2Zero().Inverse(); err == nil {
		t.Fatal("Inverse of zero Mat2 succeeded")
	}
	if _, err := Mat3Zero().Inverse(); err == nil {
		t.Fatal("Inverse of zero Mat3 succeeded")
	}

	out := buf.String()
	if !strings.Contains(out, "Mat2.Inverse") || !strings.Contains(out, "Mat3.Inverse") {
		t.Errorf("debug log missing singular records: %q", out)
	}
}

func TestSetLoggerConcurrent(t *testing.T) {
	defer SetLogger(nil)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			SetLogger(slog.Default())
		}()
		go func() {
			defer wg.Done()
			_, _ = Mat2Zero().Inverse()
		}()
	}
	wg.Wait()
}
