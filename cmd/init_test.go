package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/tonhe/vistaconf/internal/config"
)

func TestStarterConfigParses(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vista.conf")
	if err := os.WriteFile(path, []byte(starterConfig), 0644); err != nil {
		t.Fatalf("writing starter config: %v", err)
	}

	cfg, err := config.Parse(path, nil)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if len(cfg.Servers) != 1 || cfg.Servers[0].Address != "localhost" {
		t.Errorf("expected a single localhost server, got %v", cfg.Servers)
	}
	if cfg.Layout == nil {
		t.Fatal("expected the starter config to declare a layout")
	}
	if !cfg.Layout.ShowHeader {
		t.Error("expected the header enabled")
	}
	if cfg.Layout.ErrLogRows != 5 {
		t.Errorf("expected errlog 5, got %d", cfg.Layout.ErrLogRows)
	}
	if len(cfg.Layout.Boxes) != 5 {
		t.Errorf("expected 5 boxes, got %d", len(cfg.Layout.Boxes))
	}
}
