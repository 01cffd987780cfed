package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadJSONCAndPrecedence(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	work := t.TempDir()
	oldwd, _ := os.Getwd()
	if err := os.Chdir(work); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(oldwd) })

	globalDir := filepath.Join(home, ".oracle")
	if err := os.MkdirAll(globalDir, 0o755); err != nil {
		t.Fatal(err)
	}
	globalCfg := `{
  // global
  "provider": {"model": "global-model"},
  "ui": {"shake_duration_ms": 500}
}`
	if err := os.WriteFile(filepath.Join(globalDir, "config.json"), []byte(globalCfg), 0o644); err != nil {
		t.Fatal(err)
	}
	projectCfg := `{
  "provider": {"model": "project-model"}
}`
	if err := os.WriteFile("oracle.config.json", []byte(projectCfg), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Provider.Model != "project-model" {
		t.Fatalf("model=%q", cfg.Provider.Model)
	}
	// 全局配置未被项目覆盖的字段要保留 / global fields not overridden survive
	if cfg.UI.ShakeDurationMS != 500 {
		t.Fatalf("shake=%d, want 500", cfg.UI.ShakeDurationMS)
	}
}

func TestEnvOverride(t *testing.T) {
	t.Setenv("ORACLE_MODEL", "env-model")
	t.Setenv("ORACLE_DATA_DIR", t.TempDir())
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Provider.Model != "env-model" {
		t.Fatalf("model=%q", cfg.Provider.Model)
	}
}

func TestAPIKeyFallbackEnv(t *testing.T) {
	t.Setenv("ORACLE_API_KEY", "")
	t.Setenv("DASHSCOPE_API_KEY", "sk-fallback")
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Provider.APIKey != "sk-fallback" {
		t.Fatalf("api key=%q", cfg.Provider.APIKey)
	}
}

func TestDefaultsAndNormalize(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	work := t.TempDir()
	oldwd, _ := os.Getwd()
	if err := os.Chdir(work); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(oldwd) })

	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Provider.Model == "" || cfg.Provider.TimeoutMS <= 0 {
		t.Fatalf("provider defaults missing: %+v", cfg.Provider)
	}
	if cfg.UI.ShakeDurationMS != DefaultShakeDurationMS {
		t.Fatalf("shake=%d", cfg.UI.ShakeDurationMS)
	}
	// ~ 展开成绝对路径 / tilde expands to an absolute path
	if !filepath.IsAbs(cfg.Storage.DataDir) {
		t.Fatalf("data dir not absolute: %q", cfg.Storage.DataDir)
	}
}

func TestInvalidShakeEnv(t *testing.T) {
	t.Setenv("ORACLE_SHAKE_MS", "not-a-number")
	if _, err := Load(""); err == nil {
		t.Fatalf("invalid ORACLE_SHAKE_MS must fail")
	}
}

func TestExplicitPathOverridesDiscovery(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.json")
	if err := os.WriteFile(path, []byte(`{"provider":{"model":"custom-model"}}`), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Provider.Model != "custom-model" {
		t.Fatalf("model=%q", cfg.Provider.Model)
	}
}
