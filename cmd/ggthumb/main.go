// Command ggthumb renders a thumbnail document (JSON or YAML) to an image.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/pflag"

	"github.com/gogpu/ggthumb"
	"github.com/gogpu/ggthumb/document"
	"github.com/gogpu/ggthumb/internal/config"
	"github.com/gogpu/ggthumb/internal/fetch"
	"github.com/gogpu/ggthumb/text"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

type options struct {
	input       string
	output      string
	format      string
	quality     int
	base64      bool
	dataURL     bool
	fontDirs    []string
	cacheDir    string
	defaultFont string
	configPath  string
	noSystem    bool
	verbose     bool
	showVersion bool
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var o options
	fs := pflag.NewFlagSet("ggthumb", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVarP(&o.input, "input", "i", "", "Document to render (.json, .yaml); - reads stdin")
	fs.StringVarP(&o.output, "output", "o", "", "Output image path; - writes to stdout")
	fs.StringVarP(&o.format, "format", "f", "", "Output format: png, jpeg or webp (default: from output extension)")
	fs.IntVarP(&o.quality, "quality", "q", 0, "JPEG or WEBP quality 1-100 (0 = default)")
	fs.BoolVar(&o.base64, "base64", false, "Print the image as base64 instead of writing a file")
	fs.BoolVar(&o.dataURL, "data-url", false, "Print the image as a data: URL")
	fs.StringSliceVar(&o.fontDirs, "font-dir", nil, "Extra font directory (repeatable)")
	fs.StringVar(&o.cacheDir, "cache-dir", "", "Web font cache directory")
	fs.StringVar(&o.defaultFont, "default-font", "", "Family used when a text layer names none")
	fs.StringVarP(&o.configPath, "config", "c", "", "Config file (default: user config dir)")
	fs.BoolVar(&o.noSystem, "no-system-fonts", false, "Do not search platform font directories")
	fs.BoolVarP(&o.verbose, "verbose", "v", false, "Log rendering details to stderr")
	fs.BoolVar(&o.showVersion, "version", false, "Show version information")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		return 2
	}
	if o.showVersion {
		fmt.Fprintf(stdout, "ggthumb version %s (commit: %s, built: %s)\n", version, commit, date)
		return 0
	}
	if o.input == "" && fs.NArg() == 1 {
		o.input = fs.Arg(0)
	}
	if o.input == "" {
		fmt.Fprintln(stderr, "Error: no input document (use -i)")
		fs.PrintDefaults()
		return 2
	}
	if o.output == "" && !o.base64 && !o.dataURL {
		fmt.Fprintln(stderr, "Error: no output (use -o, --base64 or --data-url)")
		return 2
	}

	level := slog.LevelInfo
	if o.verbose {
		level = slog.LevelDebug
	}
	ggthumb.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})))
	defer ggthumb.SetLogger(nil)

	cfg, err := config.Resolve(o.configPath)
	if err != nil {
		fmt.Fprintf(stderr, "Error loading config: %v\n", err)
		return 1
	}

	canvas, err := loadCanvas(o.input, stdin)
	if err != nil {
		fmt.Fprintf(stderr, "Error reading document: %v\n", err)
		return 1
	}

	enc, err := encodeOptions(o, cfg)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 2
	}

	r := newRenderer(o, cfg)
	pm, err := r.Render(ctx, canvas)
	if err != nil {
		fmt.Fprintf(stderr, "Error rendering: %v\n", err)
		return 1
	}

	if err := writeOutput(o, pm, enc, stdout); err != nil {
		fmt.Fprintf(stderr, "Error writing output: %v\n", err)
		return 1
	}
	return 0
}

func loadCanvas(input string, stdin io.Reader) (*ggthumb.Canvas, error) {
	if input != "-" {
		return document.Load(input)
	}
	data, err := io.ReadAll(stdin)
	if err != nil {
		return nil, err
	}
	return document.Decode(data)
}

// encodeOptions picks the output format: the flag, then the config file,
// then the output extension, then PNG.
func encodeOptions(o options, cfg *config.Resolved) (ggthumb.EncodeOptions, error) {
	opts := ggthumb.EncodeOptions{Quality: cfg.Quality}
	if o.quality != 0 {
		opts.Quality = o.quality
	}

	name := o.format
	if name == "" {
		name = cfg.Format
	}
	switch {
	case name != "":
		f, err := ggthumb.ParseFormat(name)
		if err != nil {
			return opts, err
		}
		opts.Format = f
	case o.output != "" && o.output != "-":
		f, err := ggthumb.FormatFromPath(o.output)
		if err != nil {
			return opts, err
		}
		opts.Format = f
	}

	// A quality from the config file does not apply to PNG output.
	if opts.EncodedFormat() == ggthumb.FormatPNG && o.quality == 0 {
		opts.Quality = 0
	}
	return opts, nil
}

func newRenderer(o options, cfg *config.Resolved) *ggthumb.Renderer {
	downloader := fetch.NewDownloader(cfg.Timeout)

	cacheDir := cfg.CacheDir
	if o.cacheDir != "" {
		cacheDir = o.cacheDir
	}
	ropts := []text.ResolverOption{
		text.WithFontDirs(append(append([]string{}, o.fontDirs...), cfg.FontDirs...)...),
		text.WithSystemFonts(cfg.SystemFonts && !o.noSystem),
		text.WithFetcher(downloader),
	}
	if cacheDir != "" {
		ropts = append(ropts, text.WithCacheDir(cacheDir))
	}
	if len(cfg.SystemDirs) > 0 {
		ropts = append(ropts, text.WithSystemDirs(cfg.SystemDirs...))
	}

	opts := []ggthumb.RendererOption{
		ggthumb.WithFontResolver(text.NewResolver(ropts...)),
		ggthumb.WithFetcher(downloader),
	}
	family := cfg.DefaultFont
	if o.defaultFont != "" {
		family = o.defaultFont
	}
	if family != "" {
		opts = append(opts, ggthumb.WithDefaultFont(family))
	}
	return ggthumb.NewRenderer(opts...)
}

func writeOutput(o options, pm *ggthumb.Pixmap, enc ggthumb.EncodeOptions, stdout io.Writer) error {
	switch {
	case o.dataURL:
		s, err := ggthumb.DataURL(pm, enc)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(stdout, s)
		return err
	case o.base64:
		s, err := ggthumb.EncodeBase64(pm, enc)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(stdout, s)
		return err
	case o.output == "-":
		return ggthumb.Encode(stdout, pm, enc)
	}

	data, err := ggthumb.EncodeBytes(pm, enc)
	if err != nil {
		return err
	}
	if err := fetch.WriteFileAtomic(o.output, data); err != nil {
		return err
	}
	ggthumb.Logger().Info("thumbnail written",
		"path", o.output,
		"format", strings.ToUpper(enc.EncodedFormat().String()),
		"width", pm.Width(),
		"height", pm.Height(),
		"bytes", len(data),
	)
	return nil
}
