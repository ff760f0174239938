package logger

import (
	"bytes"
	"encoding/json"
	"io"
	"strings"
	"testing"

	"github.com/deppfellow/go-shops/internal/config"
	"github.com/jackc/pgx/v5/tracelog"
	"github.com/newrelic/go-agent/v3/integrations/logcontext-v2/zerologWriter"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/rs/zerolog"
)

func TestNewLoggerJSONFields(t *testing.T) {
	cfg := config.DefaultObservabilityConfig()
	cfg.Environment = "test"

	var buf bytes.Buffer
	l := newLogger(&buf, cfg, nil)
	l.Info().Str("shop_id", "abc").Msg("created")

	var line map[string]any
	if err := json.Unmarshal(buf.Bytes(), &line); err != nil {
		t.Fatalf("expected JSON line, got %q: %v", buf.String(), err)
	}
	if line["service"] != config.ServiceName {
		t.Fatalf("expected service field, got %v", line["service"])
	}
	if line["environment"] != "test" {
		t.Fatalf("expected environment field, got %v", line["environment"])
	}
	if line["shop_id"] != "abc" || line["message"] != "created" {
		t.Fatalf("unexpected line: %v", line)
	}
}

func TestNewLoggerLevel(t *testing.T) {
	cfg := config.DefaultObservabilityConfig()
	cfg.Logging.Level = "warn"

	var buf bytes.Buffer
	l := newLogger(&buf, cfg, nil)
	l.Info().Msg("dropped")
	if buf.Len() != 0 {
		t.Fatalf("expected info to be filtered at warn level, got %q", buf.String())
	}
	l.Warn().Msg("kept")
	if !strings.Contains(buf.String(), "kept") {
		t.Fatalf("expected warn line, got %q", buf.String())
	}
}

func TestNewLoggerServiceDisabled(t *testing.T) {
	svc, err := NewLoggerService(config.DefaultObservabilityConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if svc.GetApplication() != nil {
		t.Fatalf("expected nil application without license key")
	}
	// Must not panic.
	svc.Shutdown()

	var nilSvc *LoggerService
	if nilSvc.GetApplication() != nil {
		t.Fatalf("expected nil application from nil service")
	}
}

func TestGetPgxTraceLogLevel(t *testing.T) {
	tests := []struct {
		in   zerolog.Level
		want tracelog.LogLevel
	}{
		{zerolog.TraceLevel, tracelog.LogLevelTrace},
		{zerolog.DebugLevel, tracelog.LogLevelDebug},
		{zerolog.InfoLevel, tracelog.LogLevelInfo},
		{zerolog.WarnLevel, tracelog.LogLevelWarn},
		{zerolog.ErrorLevel, tracelog.LogLevelError},
		{zerolog.Disabled, tracelog.LogLevelNone},
	}
	for _, tt := range tests {
		if got := tracelog.LogLevel(GetPgxTraceLogLevel(tt.in)); got != tt.want {
			t.Errorf("GetPgxTraceLogLevel(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestWithTraceContextNilTransaction(t *testing.T) {
	var buf bytes.Buffer
	l := WithTraceContext(zerolog.New(&buf), nil)
	l.Info().Msg("x")
	if strings.Contains(buf.String(), "trace.id") {
		t.Fatalf("expected no trace fields, got %q", buf.String())
	}
}

func TestLogWriterForwardsOnlyJSON(t *testing.T) {
	app, err := newrelic.NewApplication(
		newrelic.ConfigAppName("shops-test"),
		newrelic.ConfigEnabled(false),
	)
	if err != nil {
		t.Fatalf("new relic app: %v", err)
	}
	t.Cleanup(func() { app.Shutdown(0) })

	cfg := config.DefaultObservabilityConfig()
	cfg.NewRelic.AppLogForwardingEnabled = true
	var buf bytes.Buffer

	cfg.Logging.Format = "console"
	console, ok := logWriter(&buf, cfg, app).(zerolog.ConsoleWriter)
	if !ok {
		t.Fatalf("expected console writer, got %T", logWriter(&buf, cfg, app))
	}
	if console.Out != io.Writer(&buf) {
		t.Fatalf("console output must not be routed through the forwarding writer, got %T", console.Out)
	}

	cfg.Logging.Format = "json"
	if _, ok := logWriter(&buf, cfg, app).(zerologWriter.ZerologWriter); !ok {
		t.Fatalf("expected JSON output to be forwarded, got %T", logWriter(&buf, cfg, app))
	}

	cfg.NewRelic.AppLogForwardingEnabled = false
	if w := logWriter(&buf, cfg, app); w != io.Writer(&buf) {
		t.Fatalf("expected plain output with forwarding off, got %T", w)
	}
}
