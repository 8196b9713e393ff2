package config

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func intPtr(v int) *int       { return &v }
func int64Ptr(v int64) *int64 { return &v }
func strPtr(v string) *string { return &v }

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("defaults failed validation: %v", err)
	}
}

func TestValidateBounds(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantMsg string
	}{
		{"width too small", func(c *Config) { c.ASCIIWidth = 19 }, "ascii_width"},
		{"width too large", func(c *Config) { c.ASCIIWidth = 201 }, "ascii_width"},
		{"fps too small", func(c *Config) { c.DefaultFPS = 0 }, "default_fps"},
		{"fps too large", func(c *Config) { c.DefaultFPS = 61 }, "default_fps"},
		{"image size too small", func(c *Config) { c.ImageMaxSize = 1024 }, "image_max_size"},
		{"image size too large", func(c *Config) { c.ImageMaxSize = 101 << 20 }, "image_max_size"},
		{"video size too small", func(c *Config) { c.VideoMaxSize = 0 }, "video_max_size"},
		{"video size too large", func(c *Config) { c.VideoMaxSize = 501 << 20 }, "video_max_size"},
		{"empty palette", func(c *Config) { c.ASCIIChars = "" }, "ascii_chars"},
		{"background not hex", func(c *Config) { c.BackgroundColor = "black" }, "background_color"},
		{"background too short", func(c *Config) { c.BackgroundColor = "#12345" }, "background_color"},
		{"background bad digit", func(c *Config) { c.BackgroundColor = "#12345g" }, "background_color"},
		{"text missing hash", func(c *Config) { c.TextColor = "00ff00" }, "text_color"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected *ValidationError, got %T", err)
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("error %q should name %s", err, tt.wantMsg)
			}
		})
	}
}

func TestStoreStartsWithDefaults(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "config.json"), testLogger())
	if store.Current() != Default() {
		t.Errorf("fresh store = %+v, want defaults", store.Current())
	}
}

func TestStoreUpdatePersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")

	store := NewStore(path, testLogger())
	got, err := store.Update(Patch{ASCIIWidth: intPtr(120), TextColor: strPtr("#ffffff")})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if got.ASCIIWidth != 120 || got.TextColor != "#ffffff" {
		t.Errorf("updated config = %+v", got)
	}
	if got.DefaultFPS != Default().DefaultFPS {
		t.Error("unpatched fields should keep their values")
	}

	reloaded := NewStore(path, testLogger())
	if reloaded.Current().ASCIIWidth != 120 {
		t.Errorf("reloaded width = %d, want 120", reloaded.Current().ASCIIWidth)
	}
}

func TestStoreUpdateInvalidLeavesCurrent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	store := NewStore(path, testLogger())

	_, err := store.Update(Patch{ASCIIWidth: intPtr(5000)})
	if err == nil {
		t.Fatal("expected validation error")
	}
	if store.Current().ASCIIWidth != 80 {
		t.Errorf("width changed to %d after rejected update", store.Current().ASCIIWidth)
	}
	if NewStore(path, testLogger()).Current().ASCIIWidth != 80 {
		t.Error("rejected update must not be persisted")
	}
}

func TestStoreLoadCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	store := NewStore(path, testLogger())
	if store.Current() != Default() {
		t.Errorf("corrupt file should fall back to defaults, got %+v", store.Current())
	}
}

func TestStoreLoadOutOfRangeFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{"ascii_width": 5000}`), 0o644); err != nil {
		t.Fatal(err)
	}

	store := NewStore(path, testLogger())
	if store.Current().ASCIIWidth != 80 {
		t.Errorf("out-of-range file should fall back to defaults, got width %d", store.Current().ASCIIWidth)
	}
}

func TestStoreLoadPartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{"ascii_width": 100}`), 0o644); err != nil {
		t.Fatal(err)
	}

	store := NewStore(path, testLogger())
	cfg := store.Current()
	if cfg.ASCIIWidth != 100 {
		t.Errorf("width = %d, want 100 from file", cfg.ASCIIWidth)
	}
	if cfg.DefaultFPS != 10 {
		t.Errorf("fps = %d, want default 10 for absent field", cfg.DefaultFPS)
	}
}

func TestStoreReset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	store := NewStore(path, testLogger())

	if _, err := store.Update(Patch{DefaultFPS: intPtr(30), ImageMaxSize: int64Ptr(20 << 20)}); err != nil {
		t.Fatalf("update: %v", err)
	}
	got, err := store.Reset()
	if err != nil {
		t.Fatalf("reset: %v", err)
	}
	if got != Default() {
		t.Errorf("reset returned %+v, want defaults", got)
	}
	if NewStore(path, testLogger()).Current() != Default() {
		t.Error("reset must be persisted")
	}
}

func TestStoreMemoryOnly(t *testing.T) {
	store := NewStore("", testLogger())
	got, err := store.Update(Patch{ASCIIWidth: intPtr(40)})
	if err != nil {
		t.Fatalf("update without a backing file: %v", err)
	}
	if got.ASCIIWidth != 40 {
		t.Errorf("width = %d, want 40", got.ASCIIWidth)
	}
}
