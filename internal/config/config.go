package config

import "time"

// DefaultWaitTime is the global poll cadence applied when the
// configuration never declares one.
const DefaultWaitTime = 60 * time.Second

// Category identifies the metric family an on-screen box displays.
type Category int

const (
	CategoryCPU Category = iota
	CategoryMem
	CategoryNet
	CategoryDisc
	CategoryLink
	CategoryHost
	CategoryProcs
	CategoryRProcs
	CategoryFiles
)

var categoryNames = [...]string{
	CategoryCPU:    "cpu",
	CategoryMem:    "mem",
	CategoryNet:    "net",
	CategoryDisc:   "disc",
	CategoryLink:   "link",
	CategoryHost:   "host",
	CategoryProcs:  "nprocs",
	CategoryRProcs: "rprocs",
	CategoryFiles:  "nfiles",
}

// String returns the configuration keyword for the category.
func (c Category) String() string {
	if c < 0 || int(c) >= len(categoryNames) {
		return "unknown"
	}
	return categoryNames[c]
}

// Option is a bit set of display options attached to a box. Which bits are
// legal depends on the box's category.
type Option uint16

const (
	OptQminBars Option = 1 << iota
	OptQmin
	OptMin
	OptHour
	OptDay
	OptWeek
	OptYear
	OptIP
	OptState
	OptAccess
)

// optionNames lists every option bit with its keyword, in display order.
var optionNames = []struct {
	bit  Option
	name string
}{
	{OptQminBars, "qmin_bars"},
	{OptQmin, "qmin"},
	{OptMin, "min"},
	{OptHour, "hour"},
	{OptDay, "day"},
	{OptWeek, "week"},
	{OptYear, "year"},
	{OptIP, "ip"},
	{OptState, "state"},
	{OptAccess, "access"},
}

// Has reports whether every bit of mask is set in o.
func (o Option) Has(mask Option) bool {
	return o&mask == mask
}

// Names returns the keywords of the option bits set in o, in a stable
// order.
func (o Option) Names() []string {
	var names []string
	for _, e := range optionNames {
		if o&e.bit != 0 {
			names = append(names, e.name)
		}
	}
	return names
}

// Box is one on-screen metric panel.
type Box struct {
	Category Category
	Options  Option
}

// Server is one remote host to poll.
type Server struct {
	// Address is the host exactly as written in the configuration file or
	// on the command line.
	Address string

	// WaitTime overrides the global poll cadence for this host. Zero means
	// no override.
	WaitTime time.Duration
}

// Layout describes the on-screen arrangement of metric boxes.
type Layout struct {
	// ShowHeader enables the header bar above the boxes.
	ShowHeader bool

	// ErrLogRows is the number of rows reserved for the error log below
	// the boxes. Zero disables it.
	ErrLogRows int

	// Boxes appear on screen in declaration order.
	Boxes []Box
}

// Config is a fully parsed monitor configuration. It is built once by
// Parse and treated as read-only afterward.
type Config struct {
	// WaitTime is the global poll cadence for servers without an override.
	WaitTime time.Duration

	// Servers holds the hosts to poll, in declaration order.
	Servers []Server

	// Layout is nil when the configuration never declares one.
	Layout *Layout
}

// WaitTimeFor resolves the poll cadence for s: the per-server override
// when one was declared, otherwise the global wait time. The poller must
// schedule with this rather than reading Server.WaitTime directly.
func (c *Config) WaitTimeFor(s *Server) time.Duration {
	if s.WaitTime > 0 {
		return s.WaitTime
	}
	return c.WaitTime
}
