package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/alecthomas/kong"
	cvpdf "github.com/smarquez/cvforge/adapters/pdf"
	cvtemplate "github.com/smarquez/cvforge/adapters/template"
	"github.com/smarquez/cvforge/build"
)

var CLI struct {
	Theme   string `arg:"" optional:"" help:"Theme name; defaults to the default theme"`
	Format  string `short:"f" help:"Output format" enum:"pdf,html" default:"pdf"`
	Dir     string `short:"C" help:"Project directory" default:"." type:"path"`
	Browser string `help:"Chromium binary path (otherwise auto-detected)"`
	Verbose bool   `short:"v" help:"Enable verbose logging"`
}

func main() {
	kong.Parse(&CLI,
		kong.Name("cvforge"),
		kong.Description("Render localized resume variants to HTML or PDF."))

	logLevel := slog.LevelInfo
	if CLI.Verbose {
		logLevel = slog.LevelDebug
	}
	logger := slogLogger{log: slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	}))}

	paths := build.DefaultPaths(CLI.Dir)
	target := build.Target(CLI.Format)

	var printer build.PrintEngine
	if target == build.TargetPDF {
		engine := &cvpdf.ChromiumEngine{
			BrowserPath: CLI.Browser,
			Timeout:     60 * time.Second,
		}
		defer engine.Close()
		printer = engine
	}

	runner := &build.Runner{
		Paths:     paths,
		Config:    &build.Store{Path: paths.ConfigFile, Logger: logger},
		Theme:     &build.ThemeResolver{Dir: paths.Themes, Default: build.DefaultTheme, Logger: logger},
		Overrides: &build.Merger{Dir: paths.Overrides, Logger: logger},
		Templates: &cvtemplate.Renderer{Path: paths.Template, Logger: logger},
		Printer:   printer,
		Target:    target,
		ThemeName: CLI.Theme,
		Logger:    logger,
	}

	summary, err := runner.Run(context.Background())
	if err != nil {
		ge := build.AsGoError(err)
		logger.Errorf("build aborted: %s", ge.Error())
		exit(printer, 2)
	}

	logger.Infof("build %s finished: %d rendered, %d failed", summary.BuildID, summary.Succeeded, summary.Failed)
	if summary.Failed > 0 {
		exit(printer, 1)
	}
}

// exit releases the print engine before terminating, since os.Exit skips
// deferred calls.
func exit(printer build.PrintEngine, code int) {
	if printer != nil {
		_ = printer.Close()
	}
	os.Exit(code)
}

type slogLogger struct {
	log *slog.Logger
}

func (l slogLogger) Debugf(format string, args ...any) { l.log.Debug(fmt.Sprintf(format, args...)) }
func (l slogLogger) Infof(format string, args ...any)  { l.log.Info(fmt.Sprintf(format, args...)) }
func (l slogLogger) Errorf(format string, args ...any) { l.log.Error(fmt.Sprintf(format, args...)) }
