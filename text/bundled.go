package text

import (
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomedium"
	"golang.org/x/image/font/gofont/gomediumitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/gomonobolditalic"
	"golang.org/x/image/font/gofont/gomonoitalic"
	"golang.org/x/image/font/gofont/goregular"
)

// Bundled family names.
const (
	FamilyGo     = "Go"
	FamilyGoMono = "Go Mono"
)

// DefaultFamily is used for text that names no font.
const DefaultFamily = FamilyGo

// bundledFonts returns the Go font families compiled into the binary.
func bundledFonts() []FontFile {
	return []FontFile{
		{Family: FamilyGo, Weight: WeightRegular, data: goregular.TTF},
		{Family: FamilyGo, Weight: WeightRegular, Italic: true, data: goitalic.TTF},
		{Family: FamilyGo, Weight: WeightMedium, data: gomedium.TTF},
		{Family: FamilyGo, Weight: WeightMedium, Italic: true, data: gomediumitalic.TTF},
		{Family: FamilyGo, Weight: WeightBold, data: gobold.TTF},
		{Family: FamilyGo, Weight: WeightBold, Italic: true, data: gobolditalic.TTF},
		{Family: FamilyGoMono, Weight: WeightRegular, data: gomono.TTF},
		{Family: FamilyGoMono, Weight: WeightRegular, Italic: true, data: gomonoitalic.TTF},
		{Family: FamilyGoMono, Weight: WeightBold, data: gomonobold.TTF},
		{Family: FamilyGoMono, Weight: WeightBold, Italic: true, data: gomonobolditalic.TTF},
	}
}
