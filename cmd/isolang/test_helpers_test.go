package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

type cliTestEnv struct {
	homeDir     string
	configPath  string
	catalogPath string
}

func setupCLITestEnv(t *testing.T) *cliTestEnv {
	t.Helper()

	base := t.TempDir()
	homeDir := filepath.Join(base, "home")
	if err := os.MkdirAll(homeDir, 0o755); err != nil {
		t.Fatalf("mkdir home: %v", err)
	}
	t.Setenv("HOME", homeDir)
	t.Setenv("ISOLANG_CATALOG_PATH", "")
	t.Setenv("ISOLANG_LOG_LEVEL", "")
	t.Setenv("NO_COLOR", "1")

	env := &cliTestEnv{
		homeDir:     homeDir,
		configPath:  filepath.Join(homeDir, ".config", "isolang", "config.toml"),
		catalogPath: filepath.Join(base, "data", "languages.db"),
	}
	if err := os.MkdirAll(filepath.Dir(env.configPath), 0o755); err != nil {
		t.Fatalf("mkdir config dir: %v", err)
	}
	writeTestConfig(t, env.configPath, env.catalogPath, `["fr", "de"]`)
	return env
}

func writeTestConfig(t *testing.T, path, catalogPath, preferred string) {
	t.Helper()
	content := fmt.Sprintf(
		"[language]\nfallback = \"en\"\npreferred = %s\n\n[search]\nlimit = 5\n\n[catalog]\npath = %q\nlock_timeout = 5\n\n[logging]\nlevel = \"error\"\n",
		preferred,
		filepath.ToSlash(catalogPath),
	)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
}

func runCLI(t *testing.T, args []string, configPath string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	var flags []string
	if configPath != "" {
		flags = append(flags, "--config", configPath)
	}
	cmd.SetArgs(append(flags, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func requireContains(t *testing.T, output, substr string) {
	t.Helper()
	if !strings.Contains(output, substr) {
		t.Fatalf("expected %q to contain %q", output, substr)
	}
}
