package text

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
)

// Standard numeric font weights.
const (
	WeightThin       = 100
	WeightExtraLight = 200
	WeightLight      = 300
	WeightRegular    = 400
	WeightMedium     = 500
	WeightSemiBold   = 600
	WeightBold       = 700
	WeightExtraBold  = 800
	WeightBlack      = 900
)

// weightNames is ordered so that compound names match before their
// suffixes ("extrabold" before "bold").
var weightNames = []struct {
	name   string
	weight int
}{
	{"extralight", WeightExtraLight},
	{"ultralight", WeightExtraLight},
	{"extrabold", WeightExtraBold},
	{"ultrabold", WeightExtraBold},
	{"semibold", WeightSemiBold},
	{"demibold", WeightSemiBold},
	{"hairline", WeightThin},
	{"thin", WeightThin},
	{"light", WeightLight},
	{"regular", WeightRegular},
	{"normal", WeightRegular},
	{"medium", WeightMedium},
	{"bold", WeightBold},
	{"black", WeightBlack},
	{"heavy", WeightBlack},
}

var italicPatterns = []string{"italic", "oblique", "it"}

var folder = cases.Fold()

// foldName case-folds s and drops the separators people put inside style
// names ("Semi-Bold", "extra_bold", "Extra Bold").
func foldName(s string) string {
	s = folder.String(strings.TrimSpace(s))
	return strings.NewReplacer("-", "", "_", "", " ", "").Replace(s)
}

// ParseWeight parses a numeric weight ("700") or a named one ("bold",
// "Semi-Bold"). Numeric weights must be multiples of 100 in 100..900.
func ParseWeight(s string) (int, error) {
	if n, err := strconv.Atoi(strings.TrimSpace(s)); err == nil {
		if n < 100 || n > 900 || n%100 != 0 {
			return 0, fmt.Errorf("text: weight %d out of range 100..900", n)
		}
		return n, nil
	}
	name := foldName(s)
	for _, w := range weightNames {
		if name == w.name {
			return w.weight, nil
		}
	}
	return 0, fmt.Errorf("text: unknown weight %q", s)
}

// WeightName returns the canonical name of a standard weight.
func WeightName(weight int) string {
	switch weight {
	case WeightThin:
		return "thin"
	case WeightExtraLight:
		return "extralight"
	case WeightLight:
		return "light"
	case WeightRegular:
		return "regular"
	case WeightMedium:
		return "medium"
	case WeightSemiBold:
		return "semibold"
	case WeightBold:
		return "bold"
	case WeightExtraBold:
		return "extrabold"
	case WeightBlack:
		return "black"
	default:
		return strconv.Itoa(weight)
	}
}

// NearestWeight picks the entry of available closest to want.
// Ties go to the heavier weight. It returns want when available is empty.
func NearestWeight(want int, available []int) int {
	best, bestDist := want, -1
	for _, w := range available {
		d := w - want
		if d < 0 {
			d = -d
		}
		if bestDist < 0 || d < bestDist || (d == bestDist && w > best) {
			best, bestDist = w, d
		}
	}
	return best
}

// parseVariant extracts weight and italic from a style fragment of a font
// file name such as "BoldItalic" or "semibold-it".
func parseVariant(variant string) (weight int, italic bool) {
	v := folder.String(variant)
	for _, p := range italicPatterns {
		if strings.Contains(v, p) {
			italic = true
		}
	}
	if w, ok := namedWeight(variant); ok {
		return w, italic
	}
	return WeightRegular, italic
}

// namedWeight returns the weight a style fragment names, if it names one.
func namedWeight(variant string) (int, bool) {
	v := foldName(variant)
	for _, p := range italicPatterns {
		v = strings.ReplaceAll(v, p, "")
	}
	for _, w := range weightNames {
		if strings.Contains(v, w.name) {
			return w.weight, true
		}
	}
	return 0, false
}

// splitFontFilename splits a file name without extension into family and
// variant: "Roboto-BoldItalic" gives ("Roboto", "BoldItalic"). A space only
// separates the two when the remainder names a style.
func splitFontFilename(name string) (family, variant string) {
	if i := strings.IndexAny(name, "-_"); i > 0 && i < len(name)-1 {
		return name[:i], name[i+1:]
	}
	if i := strings.IndexByte(name, ' '); i > 0 {
		rest := strings.TrimSpace(name[i+1:])
		if w, it := parseVariant(rest); w != WeightRegular || it {
			return name[:i], rest
		}
	}
	return name, ""
}
