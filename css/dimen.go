package css

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"github.com/npillmayer/tyse/core/dimen"
	"github.com/npillmayer/tyse/core/percent"
)

// The layout stage downstream operates on device units (dimen.DU), not on
// raw declaration values. DimenT is the bridge: an option type over the
// outcomes a Value can have as a dimension — a fixed device-unit length,
// a percentage, one of the keywords auto/inherit/initial, or nothing at
// all. Layout applies its own default-value policy for the none case;
// this package performs no defaulting.

const (
	dimenNone uint32 = 0

	dimenAbsolute uint32 = 0x0001
	dimenAuto     uint32 = 0x0002
	dimenInherit  uint32 = 0x0003
	dimenInitial  uint32 = 0x0004
	kindMask      uint32 = 0x000f

	dimenPercent uint32 = 0x0100
	relativeMask uint32 = 0xff00
)

// DimenT is an option type for CSS dimensions.
type DimenT struct {
	d       dimen.DU
	percent percent.Percent
	flags   uint32
}

// None creates an unset CSS dimension.
func None() DimenT {
	return DimenT{flags: dimenNone}
}

// Auto creates a CSS dimension of keyword-value "auto".
func Auto() DimenT {
	return DimenT{flags: dimenAuto}
}

// Inherit creates a CSS dimension of keyword-value "inherit".
func Inherit() DimenT {
	return DimenT{flags: dimenInherit}
}

// Initial creates a CSS dimension of keyword-value "initial".
func Initial() DimenT {
	return DimenT{flags: dimenInitial}
}

// JustDimen creates a CSS dimension with a fixed value of x.
func JustDimen(x dimen.DU) DimenT {
	return DimenT{d: x, flags: dimenAbsolute}
}

// Percentage creates a CSS dimension with a %-relative value.
func Percentage(n percent.Percent) DimenT {
	return DimenT{percent: n, flags: dimenPercent}
}

// DimenOf converts a declaration value into a CSS dimension. Pixel
// lengths convert to device units at the CSS ratio of 1px = 3/4pt.
// Values with no dimension interpretation (colors, unknown keywords)
// yield None().
func DimenOf(v Value) DimenT {
	switch v := v.(type) {
	case Length:
		if v.Unit == UnitPercent {
			return Percentage(percent.FromInt(int(v.N)))
		}
		return JustDimen(dimen.DU(v.N * float64(dimen.PT) * 3 / 4))
	case Keyword:
		switch v {
		case "auto":
			return Auto()
		case "inherit":
			return Inherit()
		case "initial":
			return Initial()
		}
	}
	return None()
}

// IsNone is a predicate for an unset dimension.
func (d DimenT) IsNone() bool {
	return d.flags == dimenNone
}

// ---------------------------------------------------------------------------

// Match returns a matcher for pattern-matching a dimension.
func (d DimenT) Match() *DimenMatcher {
	return &DimenMatcher{dimen: d}
}

// DimenMatcher supports the match-switch idiom on DimenT:
//
//	switch m := d.Match(); m {
//	case m.Just(&du):       …
//	case m.Percentage(&p):  …
//	case m.IsKind(css.Auto()): …
//	}
type DimenMatcher struct {
	dimen DimenT
}

// IsKind matches dimensions of the same kind as d, disregarding the
// numeric payload.
func (m *DimenMatcher) IsKind(d DimenT) *DimenMatcher {
	switch {
	case (m.dimen.flags & kindMask) == (d.flags & kindMask):
		if (m.dimen.flags & relativeMask) != (d.flags & relativeMask) {
			return nil
		}
		return m
	case (m.dimen.flags&relativeMask > 0) && (d.flags&relativeMask > 0):
		return m
	}
	return nil
}

// Just matches a fixed dimension, depositing its device-unit value in du.
func (m *DimenMatcher) Just(du *dimen.DU) *DimenMatcher {
	if m.dimen.flags&kindMask == dimenAbsolute {
		if du != nil {
			*du = m.dimen.d
		}
		return m
	}
	return nil
}

// Percentage matches a %-relative dimension, depositing its value in p.
func (m *DimenMatcher) Percentage(p *percent.Percent) *DimenMatcher {
	if m.dimen.flags&dimenPercent > 0 {
		if p != nil {
			*p = m.dimen.percent
		}
		return m
	}
	return nil
}
