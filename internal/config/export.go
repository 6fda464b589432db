package config

import (
	"io"

	"github.com/BurntSushi/toml"
)

// Snapshot is the TOML-facing mirror of a resolved configuration, written
// by the export subcommand for external tooling. Wait times are rendered
// as duration strings and option bits as keyword lists so consumers never
// need this package's constants.
type Snapshot struct {
	WaitTime string           `toml:"waittime"`
	Servers  []SnapshotServer `toml:"servers,omitempty"`
	Layout   *SnapshotLayout  `toml:"layout,omitempty"`
}

// SnapshotServer carries one host with its effective poll cadence.
// Override marks cadences that came from the server's own block rather
// than the global wait time.
type SnapshotServer struct {
	Address  string `toml:"address"`
	WaitTime string `toml:"waittime"`
	Override bool   `toml:"override"`
}

// SnapshotLayout mirrors Layout with keywords instead of bit sets.
type SnapshotLayout struct {
	Header bool          `toml:"header"`
	ErrLog int           `toml:"errlog"`
	Boxes  []SnapshotBox `toml:"boxes,omitempty"`
}

// SnapshotBox names a box's category and options by their configuration
// keywords.
type SnapshotBox struct {
	Category string   `toml:"category"`
	Options  []string `toml:"options,omitempty"`
}

// Snapshot converts the configuration into its exportable mirror.
func (c *Config) Snapshot() *Snapshot {
	s := &Snapshot{WaitTime: c.WaitTime.String()}
	for i := range c.Servers {
		srv := &c.Servers[i]
		s.Servers = append(s.Servers, SnapshotServer{
			Address:  srv.Address,
			WaitTime: c.WaitTimeFor(srv).String(),
			Override: srv.WaitTime > 0,
		})
	}
	if c.Layout != nil {
		sl := &SnapshotLayout{
			Header: c.Layout.ShowHeader,
			ErrLog: c.Layout.ErrLogRows,
		}
		for _, b := range c.Layout.Boxes {
			sl.Boxes = append(sl.Boxes, SnapshotBox{
				Category: b.Category.String(),
				Options:  b.Options.Names(),
			})
		}
		s.Layout = sl
	}
	return s
}

// WriteSnapshot encodes the configuration's snapshot as TOML.
func WriteSnapshot(w io.Writer, c *Config) error {
	return toml.NewEncoder(w).Encode(c.Snapshot())
}
