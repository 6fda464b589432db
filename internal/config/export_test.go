package config

import (
	"bytes"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/BurntSushi/toml"
)

func exportFixture() *Config {
	return &Config{
		WaitTime: 60 * time.Second,
		Servers: []Server{
			{Address: "web1"},
			{Address: "db1", WaitTime: 30 * time.Second},
		},
		Layout: &Layout{
			ShowHeader: true,
			ErrLogRows: 5,
			Boxes: []Box{
				{Category: CategoryCPU, Options: OptQmin | OptHour},
				{Category: CategoryHost, Options: OptAccess},
			},
		},
	}
}

func TestSnapshot(t *testing.T) {
	s := exportFixture().Snapshot()

	if s.WaitTime != "1m0s" {
		t.Errorf("expected waittime '1m0s', got %q", s.WaitTime)
	}
	if len(s.Servers) != 2 {
		t.Fatalf("expected 2 servers, got %d", len(s.Servers))
	}
	if s.Servers[0].WaitTime != "1m0s" || s.Servers[0].Override {
		t.Errorf("expected web1 on the global cadence, got %+v", s.Servers[0])
	}
	if s.Servers[1].WaitTime != "30s" || !s.Servers[1].Override {
		t.Errorf("expected db1 with a 30s override, got %+v", s.Servers[1])
	}
	if s.Layout == nil {
		t.Fatal("expected a layout")
	}
	if !s.Layout.Header || s.Layout.ErrLog != 5 {
		t.Errorf("expected header and errlog 5, got %+v", s.Layout)
	}
	if s.Layout.Boxes[0].Category != "cpu" {
		t.Errorf("expected category 'cpu', got %q", s.Layout.Boxes[0].Category)
	}
	if !reflect.DeepEqual(s.Layout.Boxes[0].Options, []string{"qmin", "hour"}) {
		t.Errorf("expected options [qmin hour], got %v", s.Layout.Boxes[0].Options)
	}
	if !reflect.DeepEqual(s.Layout.Boxes[1].Options, []string{"access"}) {
		t.Errorf("expected options [access], got %v", s.Layout.Boxes[1].Options)
	}
}

func TestSnapshotNoLayout(t *testing.T) {
	s := (&Config{WaitTime: DefaultWaitTime}).Snapshot()
	if s.Layout != nil {
		t.Errorf("expected nil layout in snapshot, got %+v", s.Layout)
	}
	if s.WaitTime != "1m0s" {
		t.Errorf("expected waittime '1m0s', got %q", s.WaitTime)
	}
}

func TestWriteSnapshotRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteSnapshot(&buf, exportFixture()); err != nil {
		t.Fatalf("WriteSnapshot() error: %v", err)
	}
	if !strings.Contains(buf.String(), `address = "web1"`) {
		t.Errorf("expected web1 in the TOML output, got:\n%s", buf.String())
	}

	var decoded Snapshot
	if err := toml.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}
	if decoded.WaitTime != "1m0s" {
		t.Errorf("expected waittime '1m0s', got %q", decoded.WaitTime)
	}
	if len(decoded.Servers) != 2 || decoded.Servers[1].Address != "db1" {
		t.Errorf("servers did not survive the round trip: %+v", decoded.Servers)
	}
	if decoded.Layout == nil || len(decoded.Layout.Boxes) != 2 {
		t.Fatalf("layout did not survive the round trip: %+v", decoded.Layout)
	}
	if !reflect.DeepEqual(decoded.Layout.Boxes[0].Options, []string{"qmin", "hour"}) {
		t.Errorf("options did not survive the round trip: %v", decoded.Layout.Boxes[0].Options)
	}
}
