package config

import "sort"

var Presets = map[string]*Config{
	"monochromatic": {
		Order: 3, Output: "text",
		Hamiltonian: []LeafConfig{
			{Rotating: false, Coeff: "1"},
			{Rotating: true, Coeff: "1"},
		},
	},
	"drive_only": {
		Order: 3, Output: "text",
		Hamiltonian: []LeafConfig{
			{Rotating: true, Coeff: "1"},
		},
	},
	"strong_drive": {
		Order: 4, Output: "text",
		Hamiltonian: []LeafConfig{
			{Rotating: false, Coeff: "1"},
			{Rotating: true, Coeff: "2"},
		},
	},
	"weak_drive": {
		Order: 4, Output: "text",
		Hamiltonian: []LeafConfig{
			{Rotating: false, Coeff: "1"},
			{Rotating: true, Coeff: "1/4"},
		},
	},
}

// GetPreset returns the named preset, or nil when it does not exist.
func GetPreset(name string) *Config {
	return Presets[name]
}

// ListPresets returns the preset names in sorted order.
func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
