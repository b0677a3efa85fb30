// Package build implements the resume build pipeline: record discovery,
// persona configuration, override merging, path resolution, theme loading,
// and per-record rendering to HTML or PDF.
package build

import (
	"context"
	"path/filepath"
	"time"
)

// Target is the rendered output format.
type Target string

const (
	TargetHTML Target = "html"
	TargetPDF  Target = "pdf"
)

// Ext returns the file extension for the target, without the dot.
func (t Target) Ext() string {
	if t == TargetHTML {
		return "html"
	}
	return "pdf"
}

// Record is one resume document. The pipeline enforces no schema; the
// template consumes whatever fields exist.
type Record map[string]any

// PersonaConfig customizes output naming and content for one persona.
type PersonaConfig struct {
	PersonaID       string `json:"personaId"`
	DisplayName     string `json:"displayName"`
	DefaultLanguage string `json:"defaultLanguage"`
	DefaultRole     string `json:"defaultRole"`
	OutputNaming    string `json:"outputNaming"`
}

// Paths holds the conventional locations the pipeline reads and writes.
type Paths struct {
	Src        string
	Dist       string
	Themes     string
	Template   string
	ConfigFile string
	Overrides  string
}

// DefaultPaths returns the conventional project layout rooted at dir.
func DefaultPaths(dir string) Paths {
	return Paths{
		Src:        filepath.Join(dir, "src"),
		Dist:       filepath.Join(dir, "dist"),
		Themes:     filepath.Join(dir, "themes"),
		Template:   filepath.Join(dir, "templates", "resume.html"),
		ConfigFile: filepath.Join(dir, "config", "persona.json"),
		Overrides:  filepath.Join(dir, "overrides"),
	}
}

// Meta carries build metadata into the render context.
type Meta struct {
	GeneratedAt time.Time
	Theme       string
}

// RenderContext is the composite handed to the template engine for one
// record. It is constructed fresh per record and owned by the renderer
// for the duration of one render call.
type RenderContext struct {
	Resume Record
	CSS    string
	Lang   string
	Meta   Meta
}

// TemplateEngine expands a template with a render context into a text
// document.
type TemplateEngine interface {
	Render(ctx context.Context, rc RenderContext) ([]byte, error)
}

// PrintEngine turns an HTML document into paginated PDF bytes.
type PrintEngine interface {
	Render(ctx context.Context, html []byte) ([]byte, error)
	Close() error
}

// Logger provides logging hooks.
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Errorf(format string, args ...any)
}

// NopLogger is a no-op logger.
type NopLogger struct{}

func (NopLogger) Debugf(string, ...any) {}
func (NopLogger) Infof(string, ...any)  {}
func (NopLogger) Errorf(string, ...any) {}
