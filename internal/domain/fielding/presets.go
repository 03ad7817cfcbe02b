package fielding

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed presets.yaml
var presetsYAML []byte

type Coordinates struct {
	X float64
	Y float64
}

// Slot is one authored position of a chart.
type Slot struct {
	Name string  `yaml:"name"`
	X    float64 `yaml:"x"`
	Y    float64 `yaml:"y"`
}

// Table is an ordered fielding chart.
type Table struct {
	slots []Slot
	index map[string]int
}

func newTable(slots []Slot) (Table, error) {
	t := Table{slots: slots, index: make(map[string]int, len(slots))}
	for i, slot := range slots {
		if !IsKnownPosition(slot.Name) {
			return Table{}, fmt.Errorf("unknown position %q", slot.Name)
		}
		if _, dup := t.index[slot.Name]; dup {
			return Table{}, fmt.Errorf("duplicate position %q", slot.Name)
		}
		t.index[slot.Name] = i
	}
	return t, nil
}

func (t Table) Lookup(name string) (Coordinates, bool) {
	i, ok := t.index[name]
	if !ok {
		return Coordinates{}, false
	}
	return Coordinates{X: t.slots[i].X, Y: t.slots[i].Y}, true
}

func (t Table) Slots() []Slot {
	return append([]Slot(nil), t.slots...)
}

type presetFile struct {
	PowerplayRHB []Slot `yaml:"powerplay_rhb"`
	NormalRHB    []Slot `yaml:"normal_rhb"`
	PowerplayLHB []Slot `yaml:"powerplay_lhb"`
	NormalLHB    []Slot `yaml:"normal_lhb"`
}

// Presets holds the four authored charts.
type Presets struct {
	PowerplayRHB Table
	NormalRHB    Table
	PowerplayLHB Table
	NormalLHB    Table
}

// Select returns the chart for the field restriction and batter.
// Anything that is not one of the first three combinations falls back to
// the normal left-hander chart.
func (p Presets) Select(isPowerplay bool, batsman BatsmanType) Table {
	switch {
	case isPowerplay && batsman == BatsmanRHB:
		return p.PowerplayRHB
	case isPowerplay && batsman == BatsmanLHB:
		return p.PowerplayLHB
	case !isPowerplay && batsman == BatsmanRHB:
		return p.NormalRHB
	default:
		return p.NormalLHB
	}
}

func ParsePresets(raw []byte) (Presets, error) {
	var file presetFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return Presets{}, fmt.Errorf("decode fielding presets: %w", err)
	}

	var (
		out Presets
		err error
	)
	for _, item := range []struct {
		name  string
		slots []Slot
		dst   *Table
	}{
		{"powerplay_rhb", file.PowerplayRHB, &out.PowerplayRHB},
		{"normal_rhb", file.NormalRHB, &out.NormalRHB},
		{"powerplay_lhb", file.PowerplayLHB, &out.PowerplayLHB},
		{"normal_lhb", file.NormalLHB, &out.NormalLHB},
	} {
		if len(item.slots) == 0 {
			return Presets{}, fmt.Errorf("fielding preset %s is empty", item.name)
		}
		if *item.dst, err = newTable(item.slots); err != nil {
			return Presets{}, fmt.Errorf("fielding preset %s: %w", item.name, err)
		}
	}
	return out, nil
}

var defaultPresets = func() Presets {
	p, err := ParsePresets(presetsYAML)
	if err != nil {
		panic(err)
	}
	return p
}()

// DefaultPresets returns the embedded charts.
func DefaultPresets() Presets {
	return defaultPresets
}
