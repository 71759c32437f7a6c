package gfx

import (
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/freesans"
	"tinygo.org/x/tinyfont/proggy"
)

const defaultFontName = "sans12"

var fonts = map[string]tinyfont.Fonter{
	"sans9":       &freesans.Regular9pt7b,
	"sans12":      &freesans.Regular12pt7b,
	"sans18":      &freesans.Regular18pt7b,
	"sans-bold12": &freesans.Bold12pt7b,
	"proggy8":     &proggy.TinySZ8pt7b,
}

// FontByName resolves a profile font name.
func FontByName(name string) (tinyfont.Fonter, bool) {
	f, ok := fonts[name]
	return f, ok
}

// DefaultFont is the splash font used when a profile names none or an unknown one.
func DefaultFont() tinyfont.Fonter { return fonts[defaultFontName] }
