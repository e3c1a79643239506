package text

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	gotext "github.com/go-text/typesetting/font"
	ot "github.com/go-text/typesetting/font/opentype"
)

// FontFile is one concrete font variant: a file on disk or font data held
// in memory (bundled and registered fonts).
type FontFile struct {
	Family string
	Weight int
	Italic bool
	Path   string // empty for in-memory fonts

	data []byte
}

// key identifies the font data for the source cache.
func (f FontFile) key() string {
	if f.Path != "" {
		return f.Path
	}
	return fmt.Sprintf("mem:%s/%d/%t", normFamily(f.Family), f.Weight, f.Italic)
}

func (f FontFile) load() (*FontSource, error) {
	if f.Path == "" {
		return NewFontSource(f.data)
	}
	return NewFontSourceFromFile(f.Path)
}

// normFamily folds a family name for lookups: "Open Sans", "open-sans" and
// "OPENSANS" all match.
func normFamily(s string) string {
	s = gotext.NormalizeFamily(folder.String(strings.TrimSpace(s)))
	return strings.NewReplacer("-", "", "_", "").Replace(s)
}

// catalog indexes font variants by folded family name.
type catalog struct {
	families map[string][]FontFile
}

func newCatalog() *catalog {
	return &catalog{families: make(map[string][]FontFile)}
}

func (c *catalog) add(f FontFile) {
	k := normFamily(f.Family)
	if k == "" {
		return
	}
	for _, have := range c.families[k] {
		if have.Path != "" && have.Path == f.Path && have.Weight == f.Weight && have.Italic == f.Italic {
			return
		}
	}
	c.families[k] = append(c.families[k], f)
}

func (c *catalog) lookup(family string) []FontFile {
	return c.families[normFamily(family)]
}

func (c *catalog) len() int {
	n := 0
	for _, v := range c.families {
		n += len(v)
	}
	return n
}

// isFontFile reports whether name has an extension the scanner reads.
// Collections (.ttc) are skipped: a single family lookup needs one face.
func isFontFile(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".ttf", ".otf":
		return true
	}
	return false
}

// scanDirs walks dirs recursively and indexes every font file found.
// Missing directories are ignored. Unreadable files are skipped with a
// warning.
func scanDirs(dirs []string) *catalog {
	c := newCatalog()
	var buf []byte
	for _, dir := range dirs {
		if dir == "" {
			continue
		}
		if _, err := os.Stat(dir); err != nil {
			continue
		}
		_ = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				if d != nil && d.IsDir() {
					return fs.SkipDir
				}
				return nil
			}
			if d.IsDir() || !isFontFile(d.Name()) {
				return nil
			}
			for _, f := range describeFile(path, &buf) {
				c.add(f)
			}
			return nil
		})
	}
	Logger().Debug("text: font scan complete", "dirs", len(dirs), "variants", c.len())
	return c
}

// describeFile returns the catalog entries for one font file: one under the
// family its tables declare, and one under the family its file name implies
// when the two differ.
func describeFile(path string, buf *[]byte) []FontFile {
	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	nameFamily, variant := splitFontFilename(base)
	nameWeight, nameItalic := parseVariant(variant)
	byName := FontFile{Family: nameFamily, Weight: nameWeight, Italic: nameItalic, Path: path}

	f, err := os.Open(path)
	if err != nil {
		Logger().Warn("text: skipping unreadable font file", "path", path, "err", err)
		return nil
	}
	defer f.Close()

	ld, err := ot.NewLoader(f)
	if err != nil {
		Logger().Warn("text: skipping unreadable font file", "path", path, "err", err)
		return nil
	}
	var desc gotext.Description
	desc, *buf = gotext.Describe(ld, *buf)
	d, ok := fromGoText(desc)
	if !ok {
		return []FontFile{byName}
	}

	byTable := FontFile{Family: d.Family, Weight: d.Weight, Italic: d.Italic, Path: path}
	if w, ok := namedWeight(variant); ok {
		byTable.Weight = w
	}
	if normFamily(d.Family) == normFamily(nameFamily) {
		return []FontFile{byTable}
	}
	return []FontFile{byTable, byName}
}

// systemFontDirs returns the platform font directories.
func systemFontDirs() []string {
	home, _ := os.UserHomeDir()
	switch runtime.GOOS {
	case "darwin":
		return []string{
			"/System/Library/Fonts",
			"/System/Library/Fonts/Supplemental",
			"/Library/Fonts",
			filepath.Join(home, "Library", "Fonts"),
		}
	case "windows":
		windir := os.Getenv("WINDIR")
		if windir == "" {
			windir = `C:\Windows`
		}
		return []string{
			filepath.Join(windir, "Fonts"),
			filepath.Join(os.Getenv("LOCALAPPDATA"), "Microsoft", "Windows", "Fonts"),
		}
	default:
		return []string{
			"/usr/share/fonts",
			"/usr/local/share/fonts",
			filepath.Join(home, ".fonts"),
			filepath.Join(home, ".local", "share", "fonts"),
		}
	}
}
