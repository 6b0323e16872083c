package config

import (
	"math"
	"sort"
)

var Presets = map[string]*Config{
	"classic": {
		Texture: DefaultTexture, Step: math.Pi / 90, FPS: 60,
		Glyphs: "texture", Presenter: "ansi", Theme: DefaultTheme,
	},
	"fast": {
		Texture: DefaultTexture, Step: math.Pi / 30, FPS: 60,
		Glyphs: "texture", Presenter: "ansi", Theme: DefaultTheme,
	},
	"braille": {
		Texture: DefaultTexture, Step: math.Pi / 90, FPS: 60,
		Glyphs: "braille", Presenter: "ansi", Theme: "ocean",
	},
	"stripes": {
		Texture: DefaultTexture, Step: math.Pi / 60, FPS: 60,
		Glyphs: "stripes", Presenter: "ansi", Theme: "mono",
	},
	"slowmo": {
		Texture: DefaultTexture, Step: math.Pi / 360, FPS: 30,
		Glyphs: "texture", Presenter: "ansi", Theme: DefaultTheme,
	},
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := *p
	return &cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
