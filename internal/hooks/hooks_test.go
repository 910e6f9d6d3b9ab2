package hooks

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadConfig_Missing(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg != nil {
		t.Error("LoadConfig() should return nil when no config file exists")
	}
}

func TestLoadConfig_Valid(t *testing.T) {
	dir := t.TempDir()
	content := `version: 1
hooks:
  on_step:
    command: "echo step {{step}}"
    timeout: 10
  on_finish:
    command: "echo done"
  on_cancel:
    command: "echo cancelled"
`
	if err := os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := LoadConfig(dir)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg == nil {
		t.Fatal("LoadConfig() returned nil for existing config")
	}
	if cfg.Version != 1 {
		t.Errorf("Version = %d, want 1", cfg.Version)
	}
	if cfg.Hooks.OnStep == nil || cfg.Hooks.OnStep.Command != "echo step {{step}}" {
		t.Errorf("OnStep hook not parsed: %+v", cfg.Hooks.OnStep)
	}
	if cfg.Hooks.OnStep.Timeout != 10 {
		t.Errorf("OnStep timeout = %d, want 10", cfg.Hooks.OnStep.Timeout)
	}
	if cfg.Hooks.OnFinish == nil || cfg.Hooks.OnCancel == nil {
		t.Error("OnFinish/OnCancel hooks not parsed")
	}
}

func TestLoadConfig_Malformed(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ConfigFileName), []byte("hooks: ["), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	if _, err := LoadConfig(dir); err == nil {
		t.Error("LoadConfig() should fail on malformed yaml")
	}
}

func TestExecute(t *testing.T) {
	ctx := context.Background()
	workDir := t.TempDir()
	vars := Variables{Flow: "setup", Step: "welcome", Run: "run-1"}

	tests := []struct {
		name     string
		hook     *HookConfig
		expected string
	}{
		{
			name:     "nil hook",
			hook:     nil,
			expected: "",
		},
		{
			name:     "empty command",
			hook:     &HookConfig{},
			expected: "",
		},
		{
			name:     "plain echo",
			hook:     &HookConfig{Command: "echo 'hello'", Timeout: 5},
			expected: "hello\n",
		},
		{
			name:     "variable expansion",
			hook:     &HookConfig{Command: "echo {{flow}}/{{step}}/{{run}}", Timeout: 5},
			expected: "setup/welcome/run-1\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output, err := Execute(ctx, tt.hook, workDir, vars)
			if err != nil {
				t.Fatalf("Execute() error = %v", err)
			}
			if output != tt.expected {
				t.Errorf("Execute() output = %q, expected %q", output, tt.expected)
			}
		})
	}
}

func TestExecute_FailureIsGraceful(t *testing.T) {
	ctx := context.Background()
	hook := &HookConfig{Command: "exit 3", Timeout: 5}

	output, err := Execute(ctx, hook, t.TempDir(), Variables{})
	if err != nil {
		t.Fatalf("Execute() should degrade gracefully, got error %v", err)
	}
	if !strings.Contains(output, "Hook command failed") {
		t.Errorf("Execute() output = %q, expected failure notice", output)
	}
}

func TestExecute_ContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel() // Cancel immediately

	hook := &HookConfig{Command: "echo 'test'", Timeout: 5}

	_, err := Execute(ctx, hook, t.TempDir(), Variables{})
	if err == nil {
		t.Error("Execute() expected error for cancelled context, got nil")
	}
}

func TestExpandVariables(t *testing.T) {
	vars := Variables{Flow: "onboard", Step: "name", Run: "r42"}
	got := expandVariables("f={{flow}} s={{step}} r={{run}} r={{run}}", vars)
	want := "f=onboard s=name r=r42 r=r42"
	if got != want {
		t.Errorf("expandVariables() = %q, want %q", got, want)
	}
}
