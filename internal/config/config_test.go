package config

import (
	"testing"
	"time"
)

func TestLoad_AppEnvValidation(t *testing.T) {
	t.Setenv("APP_ENV", "invalid")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid APP_ENV")
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.ServiceName != "sleeper-mcp" {
		t.Fatalf("unexpected ServiceName: %q", cfg.ServiceName)
	}
	if cfg.SleeperBaseURL != "https://api.sleeper.app" {
		t.Fatalf("unexpected SleeperBaseURL: %q", cfg.SleeperBaseURL)
	}
	if cfg.SleeperUserLookupRetries != 2 {
		t.Fatalf("unexpected SleeperUserLookupRetries: %d", cfg.SleeperUserLookupRetries)
	}
	if cfg.AggregatorMaxWorkers != 4 {
		t.Fatalf("unexpected AggregatorMaxWorkers: %d", cfg.AggregatorMaxWorkers)
	}
	if cfg.KeepaliveEnabled {
		t.Fatalf("expected KeepaliveEnabled=false by default")
	}
	if cfg.KeepaliveInterval != 5*time.Minute {
		t.Fatalf("unexpected KeepaliveInterval: %s", cfg.KeepaliveInterval)
	}
}

func TestLoad_SleeperSettingsParsing(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")
	t.Setenv("SLEEPER_BASE_URL", "http://localhost:9999")
	t.Setenv("SLEEPER_TIMEOUT", "20s")
	t.Setenv("SLEEPER_USER_LOOKUP_TIMEOUT", "5s")
	t.Setenv("SLEEPER_USER_LOOKUP_RETRIES", "4")
	t.Setenv("SLEEPER_CIRCUIT_FAILURE_COUNT", "3")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.SleeperBaseURL != "http://localhost:9999" {
		t.Fatalf("unexpected SleeperBaseURL: %q", cfg.SleeperBaseURL)
	}
	if cfg.SleeperTimeout != 20*time.Second {
		t.Fatalf("unexpected SleeperTimeout: %s", cfg.SleeperTimeout)
	}
	if cfg.SleeperUserLookupTimeout != 5*time.Second {
		t.Fatalf("unexpected SleeperUserLookupTimeout: %s", cfg.SleeperUserLookupTimeout)
	}
	if cfg.SleeperUserLookupRetries != 4 {
		t.Fatalf("unexpected SleeperUserLookupRetries: %d", cfg.SleeperUserLookupRetries)
	}
	if cfg.SleeperCircuitFailureCount != 3 {
		t.Fatalf("unexpected SleeperCircuitFailureCount: %d", cfg.SleeperCircuitFailureCount)
	}
}

func TestLoad_AggregatorWorkersMustBePositive(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")
	t.Setenv("AGGREGATOR_MAX_WORKERS", "0")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error for AGGREGATOR_MAX_WORKERS=0")
	}
}

func TestLoad_KeepaliveRequiresURLWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")
	t.Setenv("KEEPALIVE_ENABLED", "true")
	t.Setenv("KEEPALIVE_URL", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when KEEPALIVE_ENABLED=true without KEEPALIVE_URL")
	}
}

func TestLoad_UptraceRequiresDSNWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "true")
	t.Setenv("UPTRACE_DSN", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when UPTRACE_ENABLED=true without UPTRACE_DSN")
	}
}

func TestLoad_UptraceDSNFromOTLPHeaders(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "true")
	t.Setenv("UPTRACE_DSN", "")
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", `uptrace-dsn="https://token@api.uptrace.dev/123"`)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.UptraceDSN != "https://token@api.uptrace.dev/123" {
		t.Fatalf("unexpected UptraceDSN: %q", cfg.UptraceDSN)
	}
}

func TestLoad_PprofDefaultsAddrWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")
	t.Setenv("PPROF_ENABLED", "true")
	t.Setenv("PPROF_ADDR", "  ")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.PprofAddr != ":6060" {
		t.Fatalf("expected default pprof addr :6060, got %q", cfg.PprofAddr)
	}
}

func TestLoad_PyroscopeRequiresServerAddressWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")
	t.Setenv("PYROSCOPE_ENABLED", "true")
	t.Setenv("PYROSCOPE_SERVER_ADDRESS", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when PYROSCOPE_ENABLED=true without PYROSCOPE_SERVER_ADDRESS")
	}
}

func TestLoad_LogLevelParsing(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")
	t.Setenv("APP_LOG_LEVEL", "warn")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.LogLevel.String() != "warn" {
		t.Fatalf("unexpected LogLevel: %s", cfg.LogLevel.String())
	}
}
