package preview

import (
	"strings"
	"testing"

	"github.com/tonhe/vistaconf/internal/config"
)

func TestRenderNoLayout(t *testing.T) {
	out := Render(nil, 80)
	if !strings.Contains(out, "no layout declared") {
		t.Errorf("expected hint for a nil layout, got %q", out)
	}
}

func TestRenderEmptyLayout(t *testing.T) {
	out := Render(&config.Layout{}, 80)
	if !strings.Contains(out, "layout is empty") {
		t.Errorf("expected hint for an empty layout, got %q", out)
	}
}

func TestRenderBoxes(t *testing.T) {
	l := &config.Layout{
		ShowHeader: true,
		ErrLogRows: 4,
		Boxes: []config.Box{
			{Category: config.CategoryCPU, Options: config.OptHour | config.OptDay},
			{Category: config.CategoryMem, Options: config.OptMin},
			{Category: config.CategoryHost, Options: config.OptAccess},
		},
	}
	out := Render(l, 100)
	for _, want := range []string{"header", "cpu", "hour day", "mem", "min", "host", "access", "errlog (4 rows)"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected rendered layout to contain %q", want)
		}
	}
}

func TestRenderWrapsNarrowWidth(t *testing.T) {
	l := &config.Layout{Boxes: []config.Box{
		{Category: config.CategoryCPU},
		{Category: config.CategoryMem},
		{Category: config.CategoryNet},
		{Category: config.CategoryDisc},
	}}
	narrow := strings.Count(Render(l, 24), "\n")
	wide := strings.Count(Render(l, 120), "\n")
	if narrow <= wide {
		t.Errorf("expected narrow render to wrap onto more lines: narrow %d, wide %d", narrow, wide)
	}
}
