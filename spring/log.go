// SPDX-License-Identifier: MIT

package spring

import "log/slog"

// The package never logs. These LogValuers let callers pass spring values
// straight to a *slog.Logger and get grouped attributes.

// LogValue implements slog.LogValuer.
func (c Config[F]) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Float64("angular_freq", float64(c.angularFreq)),
		slog.Float64("damping_ratio", float64(c.dampingRatio)),
	)
}

// LogValue implements slog.LogValuer. Only the active regime's payload is
// included.
func (p Params[F]) LogValue() slog.Value {
	attrs := []slog.Attr{slog.String("regime", p.regime.String())}
	switch p.regime {
	case OverDamped:
		attrs = append(attrs,
			slog.Float64("zb", float64(p.zb)),
			slog.Float64("z1", float64(p.z1)),
			slog.Float64("z2", float64(p.z2)),
		)
	case CriticallyDamped:
		attrs = append(attrs, slog.Float64("angular_freq", float64(p.angularFreq)))
	case UnderDamped:
		attrs = append(attrs,
			slog.Float64("oz", float64(p.oz)),
			slog.Float64("a", float64(p.a)),
		)
	}

	return slog.GroupValue(attrs...)
}

// LogValue implements slog.LogValuer.
func (ts TimeStep[F]) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Float64("pp", float64(ts.pp)),
		slog.Float64("pv", float64(ts.pv)),
		slog.Float64("vp", float64(ts.vp)),
		slog.Float64("vv", float64(ts.vv)),
	)
}

// LogValue implements slog.LogValuer.
func (s Spring[F]) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Float64("position", float64(s.Position)),
		slog.Float64("velocity", float64(s.Velocity)),
		slog.Float64("equilibrium", float64(s.Equilibrium)),
	)
}

// LogValue implements slog.LogValuer.
func (c *Collection[F]) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("regime", c.params.regime.String()),
		slog.Int("len", len(c.springs)),
		slog.Any("positions", c.Positions()),
	)
}
