package text

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"

	"github.com/gogpu/ggthumb/internal/cache"
)

// Environment variables read by EnvOptions.
const (
	EnvFontDir     = "GGTHUMB_FONT_DIR"
	EnvDefaultFont = "GGTHUMB_DEFAULT_FONT"
	EnvCacheDir    = "GGTHUMB_CACHE_DIR"
)

const (
	faceCacheLimit   = 256
	sourceCacheLimit = 64
)

type resolverConfig struct {
	fontDirs      []string
	systemDirs    []string
	systemFonts   bool
	bundled       bool
	cacheDir      string
	fetcher       Fetcher
	defaultFamily string
}

func defaultResolverConfig() resolverConfig {
	return resolverConfig{
		systemFonts:   true,
		bundled:       true,
		defaultFamily: DefaultFamily,
	}
}

// ResolverOption configures a Resolver.
type ResolverOption func(*resolverConfig)

// WithFontDirs adds directories searched before the platform font
// directories.
func WithFontDirs(dirs ...string) ResolverOption {
	return func(c *resolverConfig) {
		c.fontDirs = append(c.fontDirs, dirs...)
	}
}

// WithSystemDirs replaces the platform font directories.
func WithSystemDirs(dirs ...string) ResolverOption {
	return func(c *resolverConfig) {
		c.systemDirs = dirs
	}
}

// WithSystemFonts enables or disables the platform font directories.
func WithSystemFonts(enabled bool) ResolverOption {
	return func(c *resolverConfig) {
		c.systemFonts = enabled
	}
}

// WithBundledFonts enables or disables the compiled-in Go fonts.
func WithBundledFonts(enabled bool) ResolverOption {
	return func(c *resolverConfig) {
		c.bundled = enabled
	}
}

// WithCacheDir sets the directory downloaded web fonts are kept in.
func WithCacheDir(dir string) ResolverOption {
	return func(c *resolverConfig) {
		c.cacheDir = dir
	}
}

// WithFetcher sets the downloader used for web fonts.
func WithFetcher(f Fetcher) ResolverOption {
	return func(c *resolverConfig) {
		c.fetcher = f
	}
}

// WithDefaultFamily sets the family used for requests that name none.
func WithDefaultFamily(family string) ResolverOption {
	return func(c *resolverConfig) {
		if family != "" {
			c.defaultFamily = family
		}
	}
}

// EnvOptions returns the options implied by the GGTHUMB_* environment
// variables. GGTHUMB_FONT_DIR replaces the platform font directories and
// may hold several paths separated by the OS list separator.
func EnvOptions() []ResolverOption {
	var opts []ResolverOption
	if v := os.Getenv(EnvFontDir); v != "" {
		opts = append(opts, WithSystemDirs(filepath.SplitList(v)...))
	}
	if v := os.Getenv(EnvDefaultFont); v != "" {
		opts = append(opts, WithDefaultFamily(v))
	}
	if v := os.Getenv(EnvCacheDir); v != "" {
		opts = append(opts, WithCacheDir(v))
	}
	return opts
}

// Resolver maps font requests to font files and caches the faces made
// from them.
//
// Search order for a family:
//  1. bundled and registered fonts, or the family itself when it is a path
//     to a font file
//  2. directories given with WithFontDirs
//  3. platform font directories
//  4. a download, when the family is an http(s) URL
//
// The first source that knows the family wins. Within it a missing weight
// falls back to the nearest available one.
//
// Resolver is safe for concurrent use.
type Resolver struct {
	cfg resolverConfig
	web *webFonts

	mu         sync.Mutex
	registered *catalog
	scanned    bool
	local      *catalog
	system     *catalog

	sources *cache.Cache[string, *FontSource]
	faces   *cache.Cache[faceKey, *Face]
}

type faceKey struct {
	family string
	weight int
	italic bool
	size   float64
}

// NewResolver creates a resolver. Directories are scanned lazily on the
// first lookup that needs them.
func NewResolver(opts ...ResolverOption) *Resolver {
	cfg := defaultResolverConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.cacheDir == "" {
		cfg.cacheDir = defaultCacheDir()
	}

	r := &Resolver{
		cfg:        cfg,
		web:        &webFonts{dir: cfg.cacheDir, fetcher: cfg.fetcher},
		registered: newCatalog(),
		sources:    cache.New[string, *FontSource](sourceCacheLimit),
		faces:      cache.New[faceKey, *Face](faceCacheLimit),
	}
	if cfg.bundled {
		for _, f := range bundledFonts() {
			r.registered.add(f)
		}
	}
	return r
}

var (
	defaultMu       sync.Mutex
	defaultResolver *Resolver
)

// Default returns the process-wide resolver, created on first use from
// EnvOptions.
func Default() *Resolver {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	if defaultResolver == nil {
		defaultResolver = NewResolver(EnvOptions()...)
	}
	return defaultResolver
}

// SetDefault replaces the process-wide resolver. Pass nil to have the next
// Default call build a fresh one.
func SetDefault(r *Resolver) {
	defaultMu.Lock()
	defaultResolver = r
	defaultMu.Unlock()
}

// DefaultFamily returns the family used for requests that name none.
func (r *Resolver) DefaultFamily() string { return r.cfg.defaultFamily }

// CacheDir returns the web font cache directory.
func (r *Resolver) CacheDir() string { return r.cfg.cacheDir }

// Register adds in-memory font data under family. It takes precedence over
// every directory search.
func (r *Resolver) Register(family string, weight int, italic bool, data []byte) error {
	src, err := NewFontSource(data)
	if err != nil {
		return &FontLoadError{Family: family, Weight: weight, Italic: italic, Err: err}
	}
	f := FontFile{Family: family, Weight: weight, Italic: italic, data: src.data}
	r.mu.Lock()
	r.registered.add(f)
	r.mu.Unlock()
	r.sources.Set(f.key(), src)
	r.faces.Clear()
	return nil
}

// RegisterFile adds a font file under the family and style it declares.
func (r *Resolver) RegisterFile(path string) error {
	src, err := NewFontSourceFromFile(path)
	if err != nil {
		return &FontLoadError{Family: path, Err: err}
	}
	d := src.Describe()
	r.mu.Lock()
	r.registered.add(FontFile{Family: d.Family, Weight: d.Weight, Italic: d.Italic, Path: path})
	r.mu.Unlock()
	r.sources.Set(path, src)
	r.faces.Clear()
	return nil
}

// ClearCache drops cached faces and fonts and forces a rescan of the font
// directories. Downloaded web fonts stay on disk.
func (r *Resolver) ClearCache() {
	r.faces.Clear()
	r.sources.Clear()
	r.mu.Lock()
	r.scanned = false
	r.local, r.system = nil, nil
	r.mu.Unlock()
}

// Resolve finds the font file for a request. An empty family means the
// default family and weight 0 means regular.
func (r *Resolver) Resolve(ctx context.Context, family string, weight int, italic bool) (FontFile, error) {
	if family == "" {
		family = r.cfg.defaultFamily
	}
	if weight == 0 {
		weight = WeightRegular
	}

	if IsURL(family) {
		p, err := r.web.file(ctx, family)
		if err != nil {
			return FontFile{}, &FontLoadError{Family: family, Weight: weight, Italic: italic, Err: err}
		}
		return FontFile{Family: family, Weight: weight, Italic: italic, Path: p}, nil
	}

	if isFontFile(family) {
		if _, err := os.Stat(family); err == nil {
			return FontFile{Family: family, Weight: weight, Italic: italic, Path: family}, nil
		}
	}

	for _, c := range r.catalogs() {
		if variants := c.lookup(family); len(variants) > 0 {
			return pickVariant(family, variants, weight, italic), nil
		}
	}
	return FontFile{}, &FontLoadError{Family: family, Weight: weight, Italic: italic, Err: ErrFontNotFound}
}

// catalogs returns the search tiers in order, scanning directories once.
func (r *Resolver) catalogs() []*catalog {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.scanned {
		r.local = scanDirs(r.cfg.fontDirs)
		if r.cfg.systemFonts {
			dirs := r.cfg.systemDirs
			if dirs == nil {
				dirs = systemFontDirs()
			}
			r.system = scanDirs(dirs)
		} else {
			r.system = newCatalog()
		}
		r.scanned = true
	}
	return []*catalog{r.registered, r.local, r.system}
}

// pickVariant prefers the requested style, then the exact weight, then the
// nearest weight.
func pickVariant(family string, variants []FontFile, weight int, italic bool) FontFile {
	var candidates []FontFile
	for _, v := range variants {
		if v.Italic == italic {
			candidates = append(candidates, v)
		}
	}
	if len(candidates) == 0 {
		candidates = variants
	}

	weights := make([]int, len(candidates))
	for i, v := range candidates {
		if v.Weight == weight {
			return v
		}
		weights[i] = v.Weight
	}

	nearest := NearestWeight(weight, weights)
	Logger().Warn("text: font weight fallback",
		"family", family, "requested", weight, "using", nearest)
	for _, v := range candidates {
		if v.Weight == nearest {
			return v
		}
	}
	return candidates[0]
}

// Source loads the font behind a resolved file, sharing parsed fonts
// between requests.
func (r *Resolver) Source(f FontFile) (*FontSource, error) {
	src, err := r.sources.GetOrLoad(f.key(), f.load)
	if err != nil {
		return nil, &FontLoadError{Family: f.Family, Weight: f.Weight, Italic: f.Italic, Err: err}
	}
	return src, nil
}

// Face returns a face for the request at size pixels per em. Faces are
// cached by (family, weight, italic, size) and loaded once per key even
// under concurrent requests.
func (r *Resolver) Face(ctx context.Context, family string, weight int, italic bool, size float64) (*Face, error) {
	if family == "" {
		family = r.cfg.defaultFamily
	}
	if weight == 0 {
		weight = WeightRegular
	}
	key := faceKey{family: family, weight: weight, italic: italic, size: size}
	if !IsURL(family) && !isFontFile(family) {
		key.family = normFamily(family)
	}

	face, err := r.faces.GetOrLoad(key, func() (*Face, error) {
		file, err := r.Resolve(ctx, family, weight, italic)
		if err != nil {
			return nil, err
		}
		src, err := r.Source(file)
		if err != nil {
			return nil, err
		}
		Logger().Debug("text: font resolved",
			"family", family, "weight", weight, "italic", italic, "size", size, "file", file.key())
		return src.Face(size)
	})
	if err != nil {
		var fle *FontLoadError
		if errors.As(err, &fle) {
			return nil, err
		}
		return nil, &FontLoadError{Family: family, Weight: weight, Italic: italic, Err: err}
	}
	return face, nil
}
