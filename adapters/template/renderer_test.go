package cvtemplate

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/smarquez/cvforge/build"
)

func renderContext() build.RenderContext {
	return build.RenderContext{
		Resume: build.Record{
			"basics": map[string]any{
				"name": "Sergio Marquez",
				"url":  "https://sergiomarquez.dev",
			},
			"work": []any{
				map[string]any{
					"name":      "ACME",
					"position":  "Backend Engineer",
					"startDate": "2021-06-01",
					"endDate":   "",
				},
			},
		},
		CSS:  "body { margin: 0; }",
		Lang: "en",
		Meta: build.Meta{GeneratedAt: time.Date(2025, 1, 15, 12, 0, 0, 0, time.UTC), Theme: "default"},
	}
}

func TestRenderer_EmbeddedDefaultTemplate(t *testing.T) {
	renderer := &Renderer{}

	out, err := renderer.Render(context.Background(), renderContext())
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	doc := string(out)

	for _, want := range []string{
		`lang="en"`,
		"Sergio Marquez",
		"body { margin: 0; }",
		"sergiomarquez.dev",
		"Jun 2021",
		"Present",
		`content="default"`,
	} {
		if !strings.Contains(doc, want) {
			t.Fatalf("expected rendered document to contain %q:\n%s", want, doc)
		}
	}
	if strings.Contains(doc, "https://sergiomarquez.dev") {
		t.Fatal("expected protocol stripped from displayed url")
	}
}

func TestRenderer_TemplateFromDisk(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resume.html")
	tpl := `{{ resume.basics.name }}|{{ formatDate(resume.work.0.startDate) }}|{{ removeProtocol(resume.basics.url) }}`
	if err := os.WriteFile(path, []byte(tpl), 0o644); err != nil {
		t.Fatalf("write template: %v", err)
	}

	renderer := &Renderer{Path: path}
	out, err := renderer.Render(context.Background(), renderContext())
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if got := string(out); got != "Sergio Marquez|Jun 2021|sergiomarquez.dev" {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestRenderer_HelpersUseRecordLocaleAndLabels(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resume.html")
	if err := os.WriteFile(path, []byte(`{{ formatDate(resume.work.0.startDate) }}/{{ formatDate(resume.work.0.endDate) }}`), 0o644); err != nil {
		t.Fatalf("write template: %v", err)
	}

	rc := renderContext()
	rc.Lang = "es"
	rc.Resume["labels"] = map[string]any{"present": "Actualidad"}

	renderer := &Renderer{Path: path}
	out, err := renderer.Render(context.Background(), rc)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if got := string(out); got != "Jun 2021/Actualidad" {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestRenderer_MissingDiskTemplateFallsBackToEmbedded(t *testing.T) {
	renderer := &Renderer{Path: filepath.Join(t.TempDir(), "missing.html")}

	out, err := renderer.Render(context.Background(), renderContext())
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(string(out), "<!DOCTYPE html>") {
		t.Fatal("expected embedded default template output")
	}
}
