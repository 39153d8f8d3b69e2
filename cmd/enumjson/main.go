// Command enumjson generates JSON converters for annotated enums in Go
// packages. See the documentation of github.com/sublee/enumjson.
//
// Usage:
//
//	enumjson [flags] [packages]
//
// The packages default to the package in the working directory. Each
// generated file is written next to its converter type and reported as
// "Generated: <path>".
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"regexp"
	"strings"

	goversion "github.com/caarlos0/go-version"
	"golang.org/x/sys/unix"

	enumjsoninternal "github.com/sublee/enumjson/internal/enumjson"
)

// Set by the release build with -ldflags "-X main.version=...".
var (
	version   = ""
	commit    = ""
	treeState = ""
	date      = ""
	builtBy   = ""
)

var (
	tagsFlag    = flag.String("b", "", "comma-separated build tags")
	testsFlag   = flag.Bool("t", false, "include test files")
	colorFlag   = flag.String("c", "auto", "colorize error positions (auto|always|never)")
	debugFlag   = flag.Bool("debug", false, "log skipped declarations and resolved conversions")
	logFileFlag = flag.String("log-file", "", "write logs to the file instead of stderr")
	versionFlag = flag.Bool("version", false, "print version information and exit")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: enumjson [flags] [packages]\n")
		flag.PrintDefaults()
	}
	flag.Parse()
	os.Exit(run())
}

func run() int {
	info := buildVersion()
	if *versionFlag {
		fmt.Println(info.String())
		return 0
	}

	color, err := useColor(*colorFlag)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}

	logOut, closeLog, err := openLog(*logFileFlag)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	defer closeLog()

	level := slog.LevelWarn
	if *debugFlag {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(logOut, &slog.HandlerOptions{Level: level})))

	wd, err := os.Getwd()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	patterns := flag.Args()
	if len(patterns) == 0 {
		patterns = []string{"."}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	enumjsoninternal.Version = stampVersion(info)
	files, err := enumjsoninternal.Main(ctx, wd, os.Environ(), *tagsFlag, *testsFlag, patterns)
	if err != nil {
		msg := err.Error()
		if color {
			msg = dimPositions(msg)
		}
		fmt.Fprintln(os.Stderr, msg)
		return 1
	}

	for path, code := range files {
		if !filepath.IsAbs(path) {
			path = filepath.Join(wd, path)
		}
		if err := os.WriteFile(path, code, 0o644); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		if rel, err := filepath.Rel(wd, path); err == nil {
			path = rel
		}
		fmt.Println("Generated:", path)
	}
	return 0
}

func openLog(path string) (io.Writer, func(), error) {
	if path == "" {
		return os.Stderr, func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return f, func() { _ = f.Close() }, nil
}

func buildVersion() goversion.Info {
	return goversion.GetVersionInfo(
		goversion.WithAppDetails("enumjson", "JSON converters for Go enums", "https://github.com/sublee/enumjson"),
		func(i *goversion.Info) {
			if version != "" {
				i.GitVersion = version
			}
			if commit != "" {
				i.GitCommit = commit
			}
			if treeState != "" {
				i.GitTreeState = treeState
			}
			if date != "" {
				i.BuildDate = date
			}
			if builtBy != "" {
				i.BuiltBy = builtBy
			}
		},
	)
}

// stampVersion returns the version to write into generated headers. Local
// builds have no meaningful version and stamp nothing, so that regenerating
// with them does not churn files.
func stampVersion(info goversion.Info) string {
	v := info.GitVersion
	if v == "" || v == "(devel)" || strings.HasPrefix(v, "devel") {
		return ""
	}
	return v
}

func useColor(mode string) (bool, error) {
	switch mode {
	case "auto":
		return isatty(os.Stderr), nil
	case "always":
		return true, nil
	case "never":
		return false, nil
	}
	return false, fmt.Errorf("invalid -c value %q: want auto, always, or never", mode)
}

// isatty reports whether f is a terminal.
func isatty(f *os.File) bool {
	_, err := unix.IoctlGetWinsize(int(f.Fd()), unix.TIOCGWINSZ)
	return err == nil
}

// rePos matches the position prefix of an error line.
var rePos = regexp.MustCompile(`(?m)^[^\s:]+:\d+:\d+:`)

// dimPositions dims the position prefix of each error line so that messages
// stand out.
func dimPositions(msg string) string {
	const (
		dim   = "\033[2m"
		reset = "\033[0m"
	)
	return rePos.ReplaceAllString(msg, dim+"$0"+reset)
}
