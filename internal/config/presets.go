package config

import "sort"

var Presets = map[string]*Config{
	"classic": {Width: 80, Height: 24, FPS: 25, Theme: "cyberpunk"},
	"wide":    {Width: 120, Height: 32, FPS: 30, Theme: "ocean"},
	"chill":   {FPS: 12, Theme: "minimal"},
	"frantic": {FPS: 60, Theme: "retro"},
}

func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
