package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/ironsheep/genome-mosaic/internal/config"
	"github.com/ironsheep/genome-mosaic/internal/imaging"
	"github.com/ironsheep/genome-mosaic/internal/mosaic"
	"github.com/ironsheep/genome-mosaic/internal/render"
	"github.com/ironsheep/genome-mosaic/internal/server"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	cfg, err := config.FromEnv(config.Default())
	if err != nil {
		fmt.Fprintf(os.Stderr, "mosaic: %v\n", err)
		os.Exit(2)
	}

	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("genome-mosaic %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			printHelp()
			return
		case "serve":
			serve(cfg)
			return
		}
	}

	if err := parseFlags(&cfg, os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "mosaic: %v\n", err)
		os.Exit(2)
	}
	if err := config.SetupLogging(cfg.LogLevel); err != nil {
		log.Fatal(err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	path, err := generate(cfg, time.Now())
	if err != nil {
		log.Fatal(err)
	}
	if path != "" {
		fmt.Println(path)
	}
}

func printHelp() {
	fmt.Println("genome-mosaic - turn a photograph into a brick mosaic illustration")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  mosaic -input photo.jpg [flags]   Generate one illustration")
	fmt.Println("  mosaic serve                      Run the MCP server on stdin/stdout")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  --version, -v    Print version information")
	fmt.Println("  --help, -h       Print this help message")
	fmt.Println()
	fmt.Println("Flags:")
	fmt.Println("  -input string       Source photograph")
	fmt.Println("  -width int          Output width in pixels, 1000-12000 (default 6000)")
	fmt.Println("  -ratio float        Height-to-width crop ratio (default 0.618)")
	fmt.Println("  -stride int         Pixel sampling stride (default 2)")
	fmt.Println("  -format string      svg, png, jpeg or none (default svg)")
	fmt.Println("  -out string         Output directory (default .)")
	fmt.Println("  -background string  Colour between bricks (default #ffffff)")
	fmt.Println("  -quality int        JPEG quality 1-100 (default 90)")
	fmt.Println("  -log-level string   logrus level (default info)")
	fmt.Println()
	fmt.Println("Environment variables:")
	for _, env := range []string{
		config.EnvInput, config.EnvWidth, config.EnvRatio, config.EnvStride,
		config.EnvFormat, config.EnvOutputDir, config.EnvBackground,
		config.EnvQuality, config.EnvLogLevel,
	} {
		fmt.Printf("  %s\n", env)
	}
	fmt.Println()
	fmt.Println("Flags override environment variables.")
}

// parseFlags overrides cfg with the flags in args.
func parseFlags(cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("mosaic", flag.ContinueOnError)
	fs.StringVar(&cfg.Input, "input", cfg.Input, "source photograph")
	fs.IntVar(&cfg.Width, "width", cfg.Width, "output width in pixels")
	fs.Float64Var(&cfg.Ratio, "ratio", cfg.Ratio, "height-to-width crop ratio")
	fs.IntVar(&cfg.Stride, "stride", cfg.Stride, "pixel sampling stride")
	fs.StringVar(&cfg.OutputDir, "out", cfg.OutputDir, "output directory")
	fs.IntVar(&cfg.JPEGQuality, "quality", cfg.JPEGQuality, "JPEG quality")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level")
	format := fs.String("format", cfg.Format.String(), "export format")
	background := fs.String("background", cfg.Background.Hex(), "background colour")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("unexpected argument %q", fs.Arg(0))
	}

	f, err := render.ParseFormat(*format)
	if err != nil {
		return err
	}
	cfg.Format = f

	bg, err := config.ParseColor(*background)
	if err != nil {
		return err
	}
	cfg.Background = bg
	return nil
}

// generate runs one illustration and returns the exported path.
func generate(cfg config.Config, now time.Time) (string, error) {
	start := time.Now()

	cache := imaging.NewImageCache()
	src, err := cache.Load(cfg.Input)
	if err != nil {
		return "", err
	}
	img, err := imaging.Prepare(src, cfg.Width, cfg.Ratio)
	if err != nil {
		return "", err
	}
	ill, err := mosaic.Generate(img, cfg.MosaicOptions())
	if err != nil {
		return "", err
	}
	path, err := render.Export(ill, cfg.Format, cfg.OutputDir, now, cfg.RenderOptions())
	if err != nil {
		return "", err
	}

	log.WithFields(log.Fields{
		"input":   cfg.Input,
		"bricks":  len(ill.Fills),
		"signal":  ill.Signal.Hex(),
		"elapsed": time.Since(start).Round(time.Millisecond),
	}).Info("Illustration done")
	return path, nil
}

func serve(cfg config.Config) {
	if err := config.SetupLogging(cfg.LogLevel); err != nil {
		log.Fatal(err)
	}
	log.WithFields(log.Fields{
		"version": Version,
		"built":   BuildTime,
		"commit":  GitCommit,
	}).Debug("Genome mosaic MCP server")

	srv := server.New(cfg)
	if err := srv.Run(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
