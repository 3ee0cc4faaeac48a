package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
)

func TestLLMConfigValidate(t *testing.T) {
	tcs := map[string]struct {
		cfg     LLMConfig
		wantErr bool
	}{
		"valid": {
			cfg: LLMConfig{Providers: []ProviderConfig{
				{Name: "gemini", Model: "m", Enabled: true, Priority: 1},
				{Name: "qwen", Model: "m", Enabled: true, Priority: 2},
			}},
		},
		"empty": {
			cfg:     LLMConfig{},
			wantErr: true,
		},
		"missing name": {
			cfg:     LLMConfig{Providers: []ProviderConfig{{Model: "m", Enabled: true, Priority: 1}}},
			wantErr: true,
		},
		"missing model": {
			cfg:     LLMConfig{Providers: []ProviderConfig{{Name: "qwen", Enabled: true, Priority: 1}}},
			wantErr: true,
		},
		"duplicate priority": {
			cfg: LLMConfig{Providers: []ProviderConfig{
				{Name: "gemini", Model: "m", Enabled: true, Priority: 1},
				{Name: "qwen", Model: "m", Enabled: true, Priority: 1},
			}},
			wantErr: true,
		},
		"none enabled": {
			cfg:     LLMConfig{Providers: []ProviderConfig{{Name: "qwen", Model: "m"}}},
			wantErr: true,
		},
		"disabled provider priority ignored": {
			cfg: LLMConfig{Providers: []ProviderConfig{
				{Name: "gemini", Model: "m", Enabled: true, Priority: 1},
				{Name: "qwen", Model: "m", Priority: 0},
			}},
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			err := tc.cfg.Validate()
			if (err != nil) != tc.wantErr {
				t.Fatalf("expected error=%v, got %v", tc.wantErr, err)
			}
		})
	}
}

func TestExpandEnvVar(t *testing.T) {
	t.Setenv("MTE_TEST_SECRET", "s3cret")

	if got := expandEnvVar("${MTE_TEST_SECRET}"); got != "s3cret" {
		t.Errorf("expected expanded value, got %q", got)
	}
	if got := expandEnvVar("plain"); got != "plain" {
		t.Errorf("expected plain value untouched, got %q", got)
	}
	if got := expandEnvVar(""); got != "" {
		t.Errorf("expected empty value, got %q", got)
	}
}

func TestLoad(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	dir := t.TempDir()
	yaml := []byte(`
storage:
  driver: sqlite
sqlite:
  path: ` + filepath.Join(dir, "tasks.db") + `
extraction:
  timeout: 10s
llm:
  providers:
    - name: gemini
      enabled: true
      priority: 1
      api_key: key
      model: gemini-2.5-flash
`)
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), yaml, 0o600); err != nil {
		t.Fatal(err)
	}

	wd, _ := os.Getwd()
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Storage.Driver != StorageDriverSQLite {
		t.Errorf("expected sqlite driver, got %q", cfg.Storage.Driver)
	}
	if cfg.Extraction.Timeout.Seconds() != 10 {
		t.Errorf("expected 10s extraction timeout, got %v", cfg.Extraction.Timeout)
	}
	if cfg.Extraction.MaxTranscriptChars != 50000 {
		t.Errorf("expected default max transcript chars, got %d", cfg.Extraction.MaxTranscriptChars)
	}
	if len(cfg.LLM.Providers) != 1 || cfg.LLM.Providers[0].Name != "gemini" {
		t.Errorf("unexpected providers %+v", cfg.LLM.Providers)
	}
	if err := cfg.LLM.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
}
