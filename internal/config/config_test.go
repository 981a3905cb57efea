package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/riskibarqy/tournament-standings/internal/platform/logging"
)

func baseEnv(t *testing.T) {
	t.Helper()
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")
	t.Setenv("SNAPSHOT_PATH", "testdata/snapshot.json")
}

func TestLoad_AppEnvValidation(t *testing.T) {
	baseEnv(t)
	t.Setenv("APP_ENV", "invalid")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid APP_ENV")
	}
}

func TestLoad_SnapshotPathRequired(t *testing.T) {
	baseEnv(t)
	t.Setenv("SNAPSHOT_PATH", " ")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error without SNAPSHOT_PATH")
	}
}

func TestLoad_Defaults(t *testing.T) {
	baseEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.SnapshotRefreshInterval != 5*time.Second {
		t.Fatalf("unexpected refresh interval: %s", cfg.SnapshotRefreshInterval)
	}
	if cfg.LeaderboardHistoryLimit != 10 || cfg.LeaderboardTableLimit != 30 {
		t.Fatalf("unexpected leaderboard limits: history=%d table=%d", cfg.LeaderboardHistoryLimit, cfg.LeaderboardTableLimit)
	}
	if cfg.StandingsMaxWorkers != 4 {
		t.Fatalf("unexpected max workers: %d", cfg.StandingsMaxWorkers)
	}
	if !cfg.CacheEnabled || cfg.CacheTTL != 60*time.Second {
		t.Fatalf("unexpected cache defaults: enabled=%v ttl=%s", cfg.CacheEnabled, cfg.CacheTTL)
	}
	if cfg.LogLevel != logging.LevelInfo {
		t.Fatalf("unexpected log level: %s", cfg.LogLevel)
	}
	if cfg.ServiceName != "tournament-standings-api" {
		t.Fatalf("unexpected service name: %q", cfg.ServiceName)
	}
}

func TestLoad_EngineSettings(t *testing.T) {
	baseEnv(t)
	t.Setenv("SNAPSHOT_REFRESH_INTERVAL", "2s")
	t.Setenv("STANDINGS_MAX_WORKERS", "8")
	t.Setenv("LEADERBOARD_HISTORY_LIMIT", "5")
	t.Setenv("LEADERBOARD_TABLE_LIMIT", "20")
	t.Setenv("APP_LOG_LEVEL", "debug")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.SnapshotRefreshInterval != 2*time.Second || cfg.StandingsMaxWorkers != 8 {
		t.Fatalf("unexpected engine settings: %+v", cfg)
	}
	if cfg.LeaderboardHistoryLimit != 5 || cfg.LeaderboardTableLimit != 20 {
		t.Fatalf("unexpected leaderboard limits: %+v", cfg)
	}
	if cfg.LogLevel != logging.LevelDebug {
		t.Fatalf("unexpected log level: %s", cfg.LogLevel)
	}
}

func TestLoad_RejectsInvalidEngineSettings(t *testing.T) {
	tests := map[string]string{
		"SNAPSHOT_REFRESH_INTERVAL": "0s",
		"STANDINGS_MAX_WORKERS":     "0",
		"LEADERBOARD_HISTORY_LIMIT": "ten",
		"LEADERBOARD_TABLE_LIMIT":   "-1",
		"CACHE_TTL":                 "0s",
		"CACHE_ENABLED":             "maybe",
	}
	for key, value := range tests {
		t.Run(key, func(t *testing.T) {
			baseEnv(t)
			t.Setenv(key, value)
			if _, err := Load(); err == nil {
				t.Fatalf("expected error for %s=%q", key, value)
			}
		})
	}
}

func TestLoad_UptraceRequiresDSNWhenEnabled(t *testing.T) {
	baseEnv(t)
	t.Setenv("UPTRACE_ENABLED", "true")
	t.Setenv("UPTRACE_DSN", "")
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when UPTRACE_ENABLED=true without UPTRACE_DSN")
	}
}

func TestLoad_UptraceDSNFromOTLPHeaders(t *testing.T) {
	baseEnv(t)
	t.Setenv("UPTRACE_ENABLED", "true")
	t.Setenv("UPTRACE_DSN", "")
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", "x-foo=bar, uptrace-dsn='https://token@api.uptrace.dev/1'")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.UptraceDSN != "https://token@api.uptrace.dev/1" {
		t.Fatalf("unexpected uptrace dsn: %q", cfg.UptraceDSN)
	}
}

func TestLoad_PprofDefaultsAddrWhenEnabled(t *testing.T) {
	baseEnv(t)
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
	baseEnv(t)
	t.Setenv("PYROSCOPE_ENABLED", "true")
	t.Setenv("PYROSCOPE_SERVER_ADDRESS", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when PYROSCOPE_ENABLED=true without PYROSCOPE_SERVER_ADDRESS")
	}
}

func TestLoad_PyroscopeAppNameDefaultsToServiceName(t *testing.T) {
	baseEnv(t)
	t.Setenv("APP_SERVICE_NAME", "tournament-standings-test")
	t.Setenv("PYROSCOPE_ENABLED", "true")
	t.Setenv("PYROSCOPE_SERVER_ADDRESS", "http://localhost:4040")
	t.Setenv("PYROSCOPE_APP_NAME", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.PyroscopeAppName != "tournament-standings-test" {
		t.Fatalf("unexpected pyroscope app name: %q", cfg.PyroscopeAppName)
	}
}

func TestLoad_CORSOriginsDefaultAndParsing(t *testing.T) {
	baseEnv(t)

	t.Run("default wildcard", func(t *testing.T) {
		t.Setenv("CORS_ALLOWED_ORIGINS", "")
		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if len(cfg.CORSAllowedOrigins) != 1 || cfg.CORSAllowedOrigins[0] != "*" {
			t.Fatalf("unexpected default CORS origins: %+v", cfg.CORSAllowedOrigins)
		}
	})

	t.Run("comma separated parsing", func(t *testing.T) {
		t.Setenv("CORS_ALLOWED_ORIGINS", " https://a.example.com, http://localhost:5173 ")
		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if len(cfg.CORSAllowedOrigins) != 2 {
			t.Fatalf("unexpected CORS origins length: %d", len(cfg.CORSAllowedOrigins))
		}
		if cfg.CORSAllowedOrigins[0] != "https://a.example.com" {
			t.Fatalf("unexpected first CORS origin: %s", cfg.CORSAllowedOrigins[0])
		}
	})
}

func TestLoad_EnvFile(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")
	t.Setenv("LEADERBOARD_TABLE_LIMIT", "25")

	path := filepath.Join(t.TempDir(), "test.env")
	content := "SNAPSHOT_PATH=/data/from-env-file.json\nLEADERBOARD_TABLE_LIMIT=12\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write env file: %v", err)
	}
	t.Setenv("ENV_FILE", path)
	if _, ok := os.LookupEnv("SNAPSHOT_PATH"); ok {
		t.Skip("SNAPSHOT_PATH already set in the process environment")
	}
	t.Cleanup(func() { _ = os.Unsetenv("SNAPSHOT_PATH") })

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.SnapshotPath != "/data/from-env-file.json" {
		t.Fatalf("unexpected snapshot path: %q", cfg.SnapshotPath)
	}
	if cfg.LeaderboardTableLimit != 25 {
		t.Fatalf("env file must not override process env, got %d", cfg.LeaderboardTableLimit)
	}
}

func TestLoad_MissingEnvFile(t *testing.T) {
	baseEnv(t)
	t.Setenv("ENV_FILE", filepath.Join(t.TempDir(), "missing.env"))
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for missing ENV_FILE")
	}
}
