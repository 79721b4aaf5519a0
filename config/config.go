package config

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"doppel/hasher"
	"doppel/version"
)

type Config struct {
	Root            string
	Digest          string
	MinSize         int64
	IncludePatterns []string
	ExcludePatterns []string
	Concurrency     int
	MaxIOPerSecond  int
	OutputFormat    string
	LogLevel        string
	DetectTypes     bool
	SkipHardlinks   bool
	ConcurrencySet  bool
}

func LoadConfig() (*Config, error) {
	cfg := &Config{
		Root:           ".",
		Digest:         "blake3",
		MinSize:        1,
		Concurrency:    runtime.NumCPU(),
		MaxIOPerSecond: 0,
		OutputFormat:   "table",
		LogLevel:       "info",
	}

	digest := flag.String("digest", cfg.Digest, fmt.Sprintf("Digest algorithm for content comparison: %s (default: %s).", strings.Join(hasher.Available(), ", "), cfg.Digest))
	minSize := flag.Int64("min-size", cfg.MinSize, fmt.Sprintf("Minimum file size in bytes to consider (default: %d).", cfg.MinSize))
	includes := flag.String("include", "", "Comma-separated list of include patterns (default: none).")
	excludes := flag.String("exclude", "", "Comma-separated list of exclude patterns (default: none).")
	concurrency := flag.Int("concurrency", cfg.Concurrency, fmt.Sprintf("Number of hashing workers (default: %d).", cfg.Concurrency))
	maxIO := flag.Int("max-io-per-second", cfg.MaxIOPerSecond, "Maximum file opens per second while hashing (default: 0, unlimited).")
	format := flag.String("format", cfg.OutputFormat, fmt.Sprintf("Report format: table, json, or csv (default: %s).", cfg.OutputFormat))
	detectTypes := flag.Bool("detect-types", cfg.DetectTypes, fmt.Sprintf("Annotate each duplicate group with a detected media type (default: %t).", cfg.DetectTypes))
	skipHardlinks := flag.Bool("skip-hardlinks", cfg.SkipHardlinks, fmt.Sprintf("Count each hardlinked file once (default: %t).", cfg.SkipHardlinks))
	logLevel := flag.String("log-level", cfg.LogLevel, fmt.Sprintf("Log level: debug, info, warn, error, fatal, or panic (default: %s).", cfg.LogLevel))
	showVersion := flag.Bool("version", false, "Print version and exit")

	flag.Usage = displayHelp
	flag.Parse()

	if *showVersion {
		fmt.Printf("Doppel version %s\n", version.Version)
		os.Exit(0)
	}

	cfg.Digest = strings.ToLower(strings.TrimSpace(*digest))
	cfg.MinSize = *minSize
	cfg.IncludePatterns = parseCommaSeparated(*includes)
	cfg.ExcludePatterns = parseCommaSeparated(*excludes)
	cfg.Concurrency = *concurrency
	cfg.MaxIOPerSecond = *maxIO
	cfg.OutputFormat = strings.ToLower(strings.TrimSpace(*format))
	cfg.DetectTypes = *detectTypes
	cfg.SkipHardlinks = *skipHardlinks
	cfg.LogLevel = *logLevel

	flag.Visit(func(f *flag.Flag) {
		if f.Name == "concurrency" {
			cfg.ConcurrencySet = true
		}
	})

	switch flag.NArg() {
	case 0:
	case 1:
		cfg.Root = flag.Arg(0)
	default:
		return nil, fmt.Errorf("expected at most one root path, got %d arguments", flag.NArg())
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	root, err := filepath.Abs(cfg.Root)
	if err != nil {
		return nil, fmt.Errorf("could not resolve root path %s: %v", cfg.Root, err)
	}
	cfg.Root = root

	return cfg, nil
}

func displayHelp() {
	fmt.Println("Doppel - Duplicate File Finder")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  doppel [options] [root]")
	fmt.Println()
	fmt.Println("Options:")
	flag.PrintDefaults()
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  doppel /data/photos")
	fmt.Println("  doppel --digest sha256 --format json /home")
	fmt.Println("  doppel --exclude \"*.log\" --min-size 4096 .")
}

func (cfg *Config) validate() error {
	info, err := os.Stat(cfg.Root)
	if err != nil {
		return fmt.Errorf("invalid root path %s: %v", cfg.Root, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("root path %s is not a directory", cfg.Root)
	}
	if _, ok := hasher.Lookup(cfg.Digest); !ok {
		return fmt.Errorf("invalid digest algorithm: %s (supported: %s)", cfg.Digest, strings.Join(hasher.Available(), ", "))
	}
	if cfg.MinSize < 1 {
		return fmt.Errorf("min-size must be at least 1")
	}
	if cfg.Concurrency <= 0 {
		return fmt.Errorf("concurrency must be positive")
	}
	if cfg.MaxIOPerSecond < 0 {
		return fmt.Errorf("max-io-per-second must be zero or positive")
	}
	if cfg.OutputFormat != "table" && cfg.OutputFormat != "json" && cfg.OutputFormat != "csv" {
		return fmt.Errorf("invalid output format: %s (supported: table, json, csv)", cfg.OutputFormat)
	}
	if cfg.LogLevel != "debug" && cfg.LogLevel != "info" && cfg.LogLevel != "warn" &&
		cfg.LogLevel != "error" && cfg.LogLevel != "fatal" && cfg.LogLevel != "panic" {
		return fmt.Errorf("invalid log level: %s", cfg.LogLevel)
	}
	return nil
}

func parseCommaSeparated(input string) []string {
	if input == "" {
		return []string{}
	}
	items := strings.Split(input, ",")
	for i, item := range items {
		items[i] = strings.TrimSpace(item)
	}
	return items
}
