package shell

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func writeRC(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "rc.yaml")
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfig_OverridesDefaults(t *testing.T) {
	path := writeRC(t, "prompt: '$ '\nmax-line-bytes: 512\nmax-history: 10\n")
	cfg := defaultConfig()
	if err := loadConfig(path, &cfg); err != nil {
		t.Fatal(err)
	}
	want := Config{Prompt: "$ ", MaxLine: 512, MaxHistory: 10}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("config (-want +got):\n%s", diff)
	}
}

func TestLoadConfig_PartialFileKeepsDefaults(t *testing.T) {
	path := writeRC(t, "prompt: '% '\n")
	def := defaultConfig()
	cfg := def
	if err := loadConfig(path, &cfg); err != nil {
		t.Fatal(err)
	}
	want := Config{Prompt: "% ", MaxLine: def.MaxLine, MaxHistory: def.MaxHistory}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("config (-want +got):\n%s", diff)
	}
}

func TestLoadConfig_RejectsUnknownKeys(t *testing.T) {
	path := writeRC(t, "promt: oops\n")
	cfg := defaultConfig()
	err := loadConfig(path, &cfg)
	if err == nil || !strings.Contains(err.Error(), "promt") {
		t.Errorf("loadConfig -> %v, want error mentioning the unknown key", err)
	}
}

func TestLoadConfig_NonPositiveSizesFallBackToDefaults(t *testing.T) {
	path := writeRC(t, "max-line-bytes: 0\nmax-history: -1\n")
	cfg := defaultConfig()
	if err := loadConfig(path, &cfg); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(defaultConfig(), cfg); diff != "" {
		t.Errorf("config (-want +got):\n%s", diff)
	}
}

func TestLoadConfig_MissingFileIsNotAnError(t *testing.T) {
	cfg := defaultConfig()
	if err := loadConfig(filepath.Join(t.TempDir(), "absent.yaml"), &cfg); err != nil {
		t.Errorf("loadConfig on missing file -> %v, want nil", err)
	}
}

func TestLoadConfig_EmptyFileKeepsDefaults(t *testing.T) {
	path := writeRC(t, "")
	cfg := defaultConfig()
	if err := loadConfig(path, &cfg); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(defaultConfig(), cfg); diff != "" {
		t.Errorf("config (-want +got):\n%s", diff)
	}
}
