package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestGetEnv(t *testing.T) {
	t.Setenv("SNAKE_TEST_STR", "hello")
	if got := GetEnv("SNAKE_TEST_STR", "x"); got != "hello" {
		t.Errorf("GetEnv = %q, want hello", got)
	}
	if got := GetEnv("SNAKE_TEST_UNSET", "x"); got != "x" {
		t.Errorf("GetEnv fallback = %q, want x", got)
	}
}

func TestGetEnvInt(t *testing.T) {
	t.Setenv("SNAKE_TEST_INT", " 42 ")
	t.Setenv("SNAKE_TEST_BAD", "forty")
	if got := GetEnvInt("SNAKE_TEST_INT", 1); got != 42 {
		t.Errorf("GetEnvInt = %d, want 42", got)
	}
	if got := GetEnvInt("SNAKE_TEST_BAD", 7); got != 7 {
		t.Errorf("GetEnvInt bad value = %d, want fallback 7", got)
	}
	if got := GetEnvInt("SNAKE_TEST_UNSET", 3); got != 3 {
		t.Errorf("GetEnvInt unset = %d, want 3", got)
	}
}

func TestGetEnvBool(t *testing.T) {
	tests := []struct {
		value    string
		fallback bool
		want     bool
	}{
		{"true", false, true},
		{"YES", false, true},
		{"1", false, true},
		{"off", true, false},
		{"0", true, false},
		{"maybe", true, true},
		{"maybe", false, false},
	}
	for _, tt := range tests {
		t.Setenv("SNAKE_TEST_BOOL", tt.value)
		if got := GetEnvBool("SNAKE_TEST_BOOL", tt.fallback); got != tt.want {
			t.Errorf("GetEnvBool(%q, %v) = %v, want %v", tt.value, tt.fallback, got, tt.want)
		}
	}
}

func TestGetEnvDuration(t *testing.T) {
	t.Setenv("SNAKE_TEST_DUR", "150ms")
	if got := GetEnvDuration("SNAKE_TEST_DUR", time.Second); got != 150*time.Millisecond {
		t.Errorf("GetEnvDuration = %v, want 150ms", got)
	}
	t.Setenv("SNAKE_TEST_DUR", "soon")
	if got := GetEnvDuration("SNAKE_TEST_DUR", time.Second); got != time.Second {
		t.Errorf("GetEnvDuration bad value = %v, want 1s", got)
	}
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "snake.env")
	if err := os.WriteFile(path, []byte("SNAKE_TEST_DOTENV=from-file\nSNAKE_TEST_KEEP=from-file\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("SNAKE_TEST_KEEP", "from-env")
	// Registered so t.Setenv restores it after the test.
	t.Setenv("SNAKE_TEST_DOTENV", "")
	os.Unsetenv("SNAKE_TEST_DOTENV")

	if err := LoadDotEnv(path); err != nil {
		t.Fatalf("LoadDotEnv: %v", err)
	}
	if got := os.Getenv("SNAKE_TEST_DOTENV"); got != "from-file" {
		t.Errorf("SNAKE_TEST_DOTENV = %q, want from-file", got)
	}
	if got := os.Getenv("SNAKE_TEST_KEEP"); got != "from-env" {
		t.Errorf("existing variable overridden: %q", got)
	}
}

func TestLoadDotEnvMissingFile(t *testing.T) {
	if err := LoadDotEnv(filepath.Join(t.TempDir(), "nope.env")); err != nil {
		t.Errorf("missing file should be ignored, got %v", err)
	}
}
