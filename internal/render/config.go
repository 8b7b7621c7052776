// Package render holds the per-field rendering configuration and the styled
// text primitives rows are built from.
package render

import (
	"fmt"
	"math"
	"strconv"

	"github.com/dustin/go-humanize"
)

// Format selects how a raw value is turned into text.
type Format int

const (
	FormatPlain Format = iota
	FormatPercent
	FormatBytes
	FormatByteRate
	FormatCountRate
)

// Config is the rendering metadata for one field.
type Config struct {
	Title     string
	Width     int
	Format    Format
	Precision int    // digits after the point for Plain and CountRate
	Suffix    string // appended to Plain and CountRate values

	// precisionSet marks an explicit WithPrecision, so that 0 is honored.
	precisionSet bool
}

// Option overrides part of a Config.
type Option func(*Config)

func WithWidth(w int) Option { return func(c *Config) { c.Width = w } }

func WithTitle(t string) Option { return func(c *Config) { c.Title = t } }

func WithFormat(f Format) Option { return func(c *Config) { c.Format = f } }

func WithPrecision(p int) Option {
	return func(c *Config) {
		c.Precision = p
		c.precisionSet = true
	}
}

func WithSuffix(s string) Option { return func(c *Config) { c.Suffix = s } }

// Apply returns a copy of c with opts applied in order. c itself is untouched.
func (c Config) Apply(opts ...Option) Config {
	for _, o := range opts {
		o(&c)
	}
	return c
}

// FormatValue renders v according to the config's format rule.
func (c Config) FormatValue(v float64) string {
	switch c.Format {
	case FormatPercent:
		return fmt.Sprintf("%.1f%%", v)
	case FormatBytes:
		return humanize.IBytes(nonNegative(v))
	case FormatByteRate:
		return humanize.IBytes(nonNegative(v)) + "/s"
	case FormatCountRate:
		return strconv.FormatFloat(v, 'f', c.precision(1), 64) + c.Suffix
	default:
		return strconv.FormatFloat(v, 'f', c.precision(0), 64) + c.Suffix
	}
}

func (c Config) precision(def int) int {
	if c.precisionSet || c.Precision > 0 {
		return c.Precision
	}
	return def
}

// nonNegative converts v for humanize. Negative, NaN and infinite values
// render as zero.
func nonNegative(v float64) uint64 {
	if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	if v >= math.MaxUint64 {
		return math.MaxUint64
	}
	return uint64(v)
}
