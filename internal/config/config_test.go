package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	cfg "github.com/mentorlink/mentorlink/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// isolate points the user config dir at a temp dir and runs from another
// temp dir so no real mentorlink.yaml is picked up.
func isolate(t *testing.T) string {
	t.Helper()
	tmp := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmp, "xdg"))
	t.Setenv("HOME", tmp)
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	work := filepath.Join(tmp, "work")
	if err := os.MkdirAll(work, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.Chdir(work); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })
	return tmp
}

func TestLoadConfig_DefaultsWhenNoFile(t *testing.T) {
	isolate(t)

	got, err := cfg.LoadConfig[cfg.Config](&cobra.Command{}, cfg.Defaults(), nil)
	if !errors.As(err, &viper.ConfigFileNotFoundError{}) {
		t.Fatalf("expected ConfigFileNotFoundError, got: %T %v", err, err)
	}
	if got.Database.Type != "sqlite" {
		t.Fatalf("expected sqlite default, got %q", got.Database.Type)
	}
	if got.Auth.TokenTTL != 24*time.Hour {
		t.Fatalf("expected 24h token ttl, got %v", got.Auth.TokenTTL)
	}
	if got.Reaper.Interval != time.Hour {
		t.Fatalf("expected 1h reaper interval, got %v", got.Reaper.Interval)
	}
	if got.Server.Addr != ":8080" {
		t.Fatalf("expected :8080, got %q", got.Server.Addr)
	}
}

func TestLoadConfig_ReadsExplicitFile(t *testing.T) {
	tmp := isolate(t)
	yaml := "database:\n  type: postgres\n  dsn: postgresql://user@/db\nlanguage: de\nauth:\n  token_ttl: 2h\n"
	file := filepath.Join(tmp, "cfg.yaml")
	if err := os.WriteFile(file, []byte(yaml), 0o600); err != nil {
		t.Fatalf("write file: %v", err)
	}

	got, err := cfg.LoadConfig[cfg.Config](&cobra.Command{}, cfg.Defaults(), &file)
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if got.Database.Type != "postgres" {
		t.Fatalf("expected postgres, got %q", got.Database.Type)
	}
	if got.Language != "de" {
		t.Fatalf("expected de, got %q", got.Language)
	}
	if got.Auth.TokenTTL != 2*time.Hour {
		t.Fatalf("expected 2h, got %v", got.Auth.TokenTTL)
	}
}

func TestLoadConfig_EnvOverridesFile(t *testing.T) {
	tmp := isolate(t)
	file := filepath.Join(tmp, "cfg.yaml")
	if err := os.WriteFile(file, []byte("database:\n  dsn: from-file.db\n"), 0o600); err != nil {
		t.Fatalf("write file: %v", err)
	}
	t.Setenv("MENTORLINK_DATABASE_DSN", "from-env.db")

	got, err := cfg.LoadConfig[cfg.Config](nil, cfg.Defaults(), &file)
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if got.Database.Dsn != "from-env.db" {
		t.Fatalf("expected env to win, got %q", got.Database.Dsn)
	}
}

func TestLoadConfig_FlagOverridesEnv(t *testing.T) {
	isolate(t)
	t.Setenv("MENTORLINK_SERVER_ADDR", ":9000")

	cmd := &cobra.Command{}
	cmd.Flags().String("server.addr", ":8080", "")
	if err := cmd.Flags().Set("server.addr", ":7000"); err != nil {
		t.Fatalf("set flag: %v", err)
	}

	got, _ := cfg.LoadConfig[cfg.Config](cmd, cfg.Defaults(), nil)
	if got.Server.Addr != ":7000" {
		t.Fatalf("expected flag value, got %q", got.Server.Addr)
	}
}

func TestWriteConfigFile_RoundTrip(t *testing.T) {
	tmp := isolate(t)

	c := cfg.Config{}
	c.Database.Type = "mysql"
	c.Database.Dsn = "user@tcp(localhost)/mentorlink"
	c.Language = "en"
	c.Auth.TokenTTL = 3 * time.Hour

	path := filepath.Join(tmp, "out", "mentorlink.yaml")
	if err := cfg.WriteConfigFileTo(&c, path); err != nil {
		t.Fatalf("WriteConfigFileTo failed: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("expected config file at %s: %v", path, err)
	}
	if info.Mode().Perm() != 0o600 {
		t.Fatalf("expected 0600 permissions, got %v", info.Mode().Perm())
	}

	got, err := cfg.LoadConfig[cfg.Config](nil, cfg.Defaults(), &path)
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if got.Database.Type != "mysql" || got.Auth.TokenTTL != 3*time.Hour {
		t.Fatalf("round trip mismatch: %+v", got)
	}
}

func TestWriteConfigFile_UserPath(t *testing.T) {
	isolate(t)

	c := cfg.Config{}
	c.Database.Type = "sqlite"
	if err := cfg.WriteConfigFile(&c, false); err != nil {
		t.Fatalf("WriteConfigFile failed: %v", err)
	}
	path, err := cfg.GetConfigPath(false)
	if err != nil {
		t.Fatalf("GetConfigPath failed: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected config file at %s, stat error: %v", path, err)
	}
}

func TestLoadDotEnv(t *testing.T) {
	tmp := isolate(t)
	envFile := filepath.Join(tmp, "test.env")
	if err := os.WriteFile(envFile, []byte("MENTORLINK_LANGUAGE=de\n"), 0o600); err != nil {
		t.Fatalf("write env: %v", err)
	}
	t.Setenv("MENTORLINK_LANGUAGE", "")
	_ = os.Unsetenv("MENTORLINK_LANGUAGE")

	if err := cfg.LoadDotEnv(envFile, filepath.Join(tmp, "missing.env")); err != nil {
		t.Fatalf("LoadDotEnv: %v", err)
	}
	if got := os.Getenv("MENTORLINK_LANGUAGE"); got != "de" {
		t.Fatalf("expected de from .env, got %q", got)
	}
}

func TestValidate(t *testing.T) {
	c := cfg.Config{}
	c.Database.Type = "oracle"
	c.Database.Dsn = "x"
	c.Auth.TokenTTL = time.Hour
	if err := c.Validate(); err == nil {
		t.Fatalf("expected unsupported type error")
	}
	c.Database.Type = "sqlite"
	if err := c.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	c.Auth.TokenTTL = 0
	if err := c.Validate(); err == nil {
		t.Fatalf("expected token ttl error")
	}
}
