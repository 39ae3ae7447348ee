package cmd

import "testing"

func TestLoadConfigFlagsOverrideFile(t *testing.T) {
	err := runCmd.ParseFlags([]string{
		"--config", "../../../internal/config/testdata/demo.toml",
		"--mode", "none",
		"--log-level", "warn",
	})
	if err != nil {
		t.Fatal(err)
	}

	cfg, err := loadConfig(runCmd)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Mode != "none" {
		t.Errorf("Mode = %q, want none", cfg.Mode)
	}
	if cfg.LogLevel != "warn" {
		t.Errorf("LogLevel = %q, want warn", cfg.LogLevel)
	}
	if cfg.Locale != "de" {
		t.Errorf("Locale = %q, file value lost", cfg.Locale)
	}
	if len(cfg.Options) != 3 {
		t.Errorf("got %d options, want 3 from the file", len(cfg.Options))
	}
}
