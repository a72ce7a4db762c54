// SPDX-License-Identifier: MIT

package spring

import "sort"

// preset is a named (ω, ζ) pair.
type preset struct {
	angularFreq  float64
	dampingRatio float64
}

var presets = map[string]preset{
	"gentle":   {angularFreq: 4, dampingRatio: 0.9},
	"wobbly":   {angularFreq: 8, dampingRatio: 0.3},
	"snappy":   {angularFreq: 18, dampingRatio: 0.8},
	"stiff":    {angularFreq: 30, dampingRatio: 1},
	"sluggish": {angularFreq: 3, dampingRatio: 2.5},
	"critical": {angularFreq: 6, dampingRatio: 1},
}

// Preset returns the named Config in precision F. ok is false for unknown
// names.
//
//	cfg, _ := spring.Preset[float32]("wobbly")
func Preset[F Float](name string) (Config[F], bool) {
	p, ok := presets[name]
	if !ok {
		return Config[F]{}, false
	}
	return NewConfig(F(p.angularFreq), F(p.dampingRatio)), true
}

// ListPresets returns the preset names in ascending order.
func ListPresets() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}
