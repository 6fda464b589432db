package config

import (
	"errors"
	"io/fs"
	"math"
	"os"
	"strconv"
	"strings"
	"time"
)

// Numeric bounds for the language. Wait times may not drop below 15
// seconds; every count shares the same 32-bit ceiling regardless of the
// platform's int width.
const (
	minWaitSeconds = 15
	maxNumber      = math.MaxInt32
)

// Parse loads the monitor configuration at path. hosts carries addresses
// given on the command line, which take precedence over any servers
// declared in the file:
//
//   - If path does not exist, the configuration is built from hosts alone
//     with defaults applied; that is not an error.
//   - If the file exists but cannot be read, the read error is returned.
//   - If the file parses and hosts is non-empty, the file's server list is
//     replaced by one built from hosts; the parsed layout and global wait
//     time are kept.
//
// The first syntax error aborts the parse and is returned as a
// *ParseError; no configuration is produced.
func Parse(path string, hosts []string) (*Config, error) {
	cfg := &Config{WaitTime: DefaultWaitTime}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			cfg.Servers = serversFromHosts(hosts)
			return cfg, nil
		}
		return nil, err
	}

	p := &parser{source: path, toks: tokenize(string(data)), cfg: cfg}
	if err := p.run(); err != nil {
		return nil, err
	}

	if len(hosts) > 0 {
		cfg.Servers = serversFromHosts(hosts)
	}
	return cfg, nil
}

// serversFromHosts builds the command-line server list: one entry per
// host, no overrides.
func serversFromHosts(hosts []string) []Server {
	if len(hosts) == 0 {
		return nil
	}
	servers := make([]Server, len(hosts))
	for i, h := range hosts {
		servers[i] = Server{Address: h}
	}
	return servers
}

// run dispatches top-level statements until the input is exhausted.
func (p *parser) run() error {
	for !p.atEnd() {
		switch {
		case p.eqAdvance("servers"):
			if err := p.parseServers(); err != nil {
				return err
			}
		case p.eqAdvance("layout"):
			if err := p.parseLayout(); err != nil {
				return err
			}
		case p.eqAdvance("waittime"):
			if err := p.parseWaitTime(); err != nil {
				return err
			}
		default:
			return p.errUnknown()
		}
	}
	return nil
}

// parseBounded reads tok as a decimal integer in [lo, hi]. On failure the
// reason is one of "invalid", "too small" or "too large".
func parseBounded(tok string, lo, hi int64) (int64, string) {
	n, err := strconv.ParseInt(tok, 10, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			if strings.HasPrefix(tok, "-") {
				return 0, "too small"
			}
			return 0, "too large"
		}
		return 0, "invalid"
	}
	if n < lo {
		return 0, "too small"
	}
	if n > hi {
		return 0, "too large"
	}
	return n, ""
}

// parseWaitTime handles the rest of "waittime NUMBER ;", setting the
// global poll cadence.
func (p *parser) parseWaitTime() error {
	if err := p.need(); err != nil {
		return err
	}
	secs, reason := parseBounded(p.cur(), minWaitSeconds, maxNumber)
	if reason != "" {
		return p.errNumber("global waittime", reason)
	}
	p.cfg.WaitTime = time.Duration(secs) * time.Second
	if err := p.advance(); err != nil {
		return err
	}
	return p.expectAdvance(";")
}

// parseServers handles the rest of "servers HOST... [ { args } ] ;".
// Every token up to the terminator is taken as a host address; the
// optional trailing block may set a wait time that applies retroactively
// to the hosts this statement declared.
func (p *parser) parseServers() error {
	count := 0
	for !p.atEnd() {
		if p.eq(";") || p.eq("{") {
			break
		}
		// Copy the address so the configuration doesn't pin the file
		// buffer after Parse returns.
		p.cfg.Servers = append(p.cfg.Servers, Server{Address: strings.Clone(p.cur())})
		p.skip()
		count++
	}
	if count == 0 {
		return &ParseError{Source: p.source, Detail: "no servers in statement", Err: ErrNoServers}
	}
	if err := p.need(); err != nil {
		return err
	}
	if p.eqAdvance("{") {
		if err := p.parseServerArgs(count); err != nil {
			return err
		}
		if err := p.expect(";"); err != nil {
			return err
		}
	}
	p.skip()
	return nil
}

// parseServerArgs handles the block after a servers statement. Only the
// waittime keyword is recognized, and the semicolon after its value is
// optional. A wait time set here is written onto the count hosts the
// enclosing statement just declared, and no others.
func (p *parser) parseServerArgs(count int) error {
	var wait time.Duration
	for !p.atEnd() && !p.eq("}") {
		if !p.eqAdvance("waittime") {
			return p.errUnknown()
		}
		if err := p.need(); err != nil {
			return err
		}
		secs, reason := parseBounded(p.cur(), minWaitSeconds, maxNumber)
		if reason != "" {
			return p.errNumber("server waittime", reason)
		}
		wait = time.Duration(secs) * time.Second
		if err := p.advance(); err != nil {
			return err
		}
		_ = p.eqAdvance(";")
	}
	if err := p.expectAdvance("}"); err != nil {
		return err
	}
	if wait == 0 {
		return nil
	}
	for i := 0; i < count; i++ {
		p.cfg.Servers[len(p.cfg.Servers)-1-i].WaitTime = wait
	}
	return nil
}

// parseLayout handles the rest of "layout { ... } ;". At most one layout
// may appear per configuration; the check runs as soon as the block opens
// so that two empty layouts still collide.
func (p *parser) parseLayout() error {
	if err := p.expectAdvance("{"); err != nil {
		return err
	}
	if p.cfg.Layout != nil {
		return &ParseError{Source: p.source, Detail: "layout already declared", Err: ErrDuplicateLayout}
	}
	l := &Layout{}
	p.cfg.Layout = l

	for !p.atEnd() {
		if p.eq("}") {
			break
		}
		switch {
		case p.eqAdvance("header"):
			l.ShowHeader = true
		case p.eqAdvance("errlog"):
			if err := p.need(); err != nil {
				return err
			}
			rows, reason := parseBounded(p.cur(), 0, maxNumber)
			if reason != "" {
				return p.errNumber("layout errlog", reason)
			}
			l.ErrLogRows = int(rows)
			p.skip()
		case p.eqAdvance("host"):
			if err := p.parseBoxes(l); err != nil {
				return err
			}
		default:
			return p.errUnknown()
		}
		if p.eq("}") {
			break
		}
		if err := p.expectAdvance(";"); err != nil {
			return err
		}
		if p.eq("}") {
			break
		}
	}

	if err := p.expectAdvance("}"); err != nil {
		return err
	}
	return p.expectAdvance(";")
}

// boxSpec ties a category keyword to its legal option keywords. Fixed
// bits are set on every box of the category regardless of input.
type boxSpec struct {
	cat   Category
	opts  map[string]Option
	fixed Option
}

// trendOptions belongs to the sampled counters that can draw the
// quarter-minute bar graph; rateOptions drops qmin_bars for the byte-rate
// pairs; linkOptions is link state probing only.
var (
	trendOptions = map[string]Option{
		"qmin_bars": OptQminBars,
		"qmin":      OptQmin,
		"min":       OptMin,
		"hour":      OptHour,
		"day":       OptDay,
		"week":      OptWeek,
		"year":      OptYear,
	}
	rateOptions = map[string]Option{
		"qmin": OptQmin,
		"min":  OptMin,
		"hour": OptHour,
		"day":  OptDay,
		"week": OptWeek,
		"year": OptYear,
	}
	linkOptions = map[string]Option{
		"ip":     OptIP,
		"state":  OptState,
		"access": OptAccess,
	}
)

// boxSpecs maps each category keyword to its grammar. host boxes accept no
// option keywords and always carry the access flag.
var boxSpecs = map[string]boxSpec{
	"cpu":    {cat: CategoryCPU, opts: trendOptions},
	"mem":    {cat: CategoryMem, opts: trendOptions},
	"net":    {cat: CategoryNet, opts: rateOptions},
	"disc":   {cat: CategoryDisc, opts: rateOptions},
	"link":   {cat: CategoryLink, opts: linkOptions},
	"host":   {cat: CategoryHost, fixed: OptAccess},
	"nprocs": {cat: CategoryProcs, opts: trendOptions},
	"rprocs": {cat: CategoryRProcs, opts: trendOptions},
	"nfiles": {cat: CategoryFiles, opts: trendOptions},
}

// parseBoxes handles the host { ... } block inside layout, appending one
// box per definition. An empty block is legal and produces no boxes.
func (p *parser) parseBoxes(l *Layout) error {
	if err := p.expectAdvance("{"); err != nil {
		return err
	}
	if p.eqAdvance("}") {
		return nil
	}
	for !p.atEnd() {
		spec, ok := boxSpecs[p.cur()]
		if !ok {
			return p.errUnknown()
		}
		p.skip()
		box := Box{Category: spec.cat, Options: spec.fixed}
		for !p.atEnd() {
			if p.eq(";") || p.eq("}") {
				break
			}
			bit, ok := spec.opts[p.cur()]
			if !ok {
				return p.errUnknown()
			}
			box.Options |= bit
			p.skip()
		}
		l.Boxes = append(l.Boxes, box)
		if p.eq("}") {
			break
		}
		if err := p.expectAdvance(";"); err != nil {
			return err
		}
		if p.eq("}") {
			break
		}
	}
	return p.expectAdvance("}")
}
