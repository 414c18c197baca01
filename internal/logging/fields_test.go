package logging

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"
)

func TestWithCommon(t *testing.T) {
	attrs := WithCommon(nil, "svc", "v1")
	if len(attrs) != 2 || attrs[0].Key != FieldService || attrs[1].Value.String() != "v1" {
		t.Fatalf("unexpected attrs %+v", attrs)
	}

	kept := WithCommon([]slog.Attr{slog.String("existing", "x")}, "", "")
	if len(kept) != 1 || kept[0].Key != "existing" {
		t.Fatalf("expected original attrs preserved, got %+v", kept)
	}
}

func TestHelpersLogAtTheirLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	Debug(logger, "d")
	Info(logger, "i")
	Warn(logger, "w", slog.String(FieldSeason, "2013REG"))
	Error(logger, "e", errors.New("boom"))
	Error(logger, "e-nil", nil)

	out := buf.String()
	for _, want := range []string{"level=DEBUG msg=d", "level=INFO msg=i", "season=2013REG", "error=boom"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in %q", want, out)
		}
	}
	if strings.Contains(out, "msg=e-nil error") {
		t.Fatalf("expected no error attr for nil error, got %q", out)
	}
}

func TestHelpersIgnoreNilLogger(t *testing.T) {
	Debug(nil, "d")
	Info(nil, "i")
	Warn(nil, "w")
	Error(nil, "e", errors.New("boom"))
}
