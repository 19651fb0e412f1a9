package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestNew_JSONOutput(t *testing.T) {
	var buf bytes.Buffer
	log := New(Options{Level: "debug", Output: &buf, Service: "record-store"})
	log.Info().Str("user_id", "42").Msg("hello")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("expected JSON output, got %q: %v", buf.String(), err)
	}
	if entry["message"] != "hello" || entry["user_id"] != "42" || entry["service"] != "record-store" {
		t.Fatalf("unexpected entry: %+v", entry)
	}
	if entry["level"] != "info" {
		t.Fatalf("expected info level, got %v", entry["level"])
	}
	if _, ok := entry["caller"]; !ok {
		t.Fatalf("expected caller field, got %+v", entry)
	}
}

func TestNew_LevelFilters(t *testing.T) {
	var buf bytes.Buffer
	log := New(Options{Level: "warn", Output: &buf})
	log.Info().Msg("dropped")
	log.Warn().Msg("kept")

	if strings.Contains(buf.String(), "dropped") || !strings.Contains(buf.String(), "kept") {
		t.Fatalf("unexpected output: %s", buf.String())
	}
}

func TestNew_IndependentLoggers(t *testing.T) {
	var first, second bytes.Buffer
	a := New(Options{Output: &first})
	b := New(Options{Output: &second, Service: "other"})
	a.Info().Msg("a")
	b.Info().Msg("b")

	if !strings.Contains(first.String(), `"message":"a"`) || strings.Contains(first.String(), "other") {
		t.Fatalf("unexpected first output: %s", first.String())
	}
	if !strings.Contains(second.String(), `"service":"other"`) {
		t.Fatalf("unexpected second output: %s", second.String())
	}
}

func TestNew_Pretty(t *testing.T) {
	var buf bytes.Buffer
	log := New(Options{Output: &buf, Pretty: true})
	log.Info().Msg("readable")

	if json.Valid(bytes.TrimSpace(buf.Bytes())) || !strings.Contains(buf.String(), "readable") {
		t.Fatalf("expected console output, got %q", buf.String())
	}
}

func TestParseLevel(t *testing.T) {
	cases := map[string]zerolog.Level{
		"trace":   zerolog.TraceLevel,
		"DEBUG":   zerolog.DebugLevel,
		" warn ":  zerolog.WarnLevel,
		"warning": zerolog.WarnLevel,
		"error":   zerolog.ErrorLevel,
		"":        zerolog.InfoLevel,
		"bogus":   zerolog.InfoLevel,
	}
	for in, want := range cases {
		if got := parseLevel(in); got != want {
			t.Errorf("parseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}
