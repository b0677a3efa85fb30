package build

import (
	"context"
	"os"
)

// Renderer composes a record, stylesheet, and locale context into a
// rendered document and writes it to its output path. HTML targets write
// the expanded template directly; PDF targets hand it to the print
// engine first.
type Renderer struct {
	Templates TemplateEngine
	Printer   PrintEngine
	Target    Target
}

// Render renders one record to outPath. A failure is terminal for that
// record only; the renderer never retries.
func (r *Renderer) Render(ctx context.Context, rc RenderContext, outPath string) error {
	if r.Templates == nil {
		return NewError(KindInternal, "renderer requires a template engine", nil)
	}

	doc, err := r.Templates.Render(ctx, rc)
	if err != nil {
		return NewError(KindRender, "template expansion failed", err)
	}

	out := doc
	if r.Target == TargetPDF {
		if r.Printer == nil {
			return NewError(KindInternal, "pdf target requires a print engine", nil)
		}
		out, err = r.Printer.Render(ctx, doc)
		if err != nil {
			return NewError(KindRender, "pdf print failed", err)
		}
	}

	if err := os.WriteFile(outPath, out, 0o644); err != nil {
		return NewError(KindRender, "cannot write "+outPath, err)
	}
	return nil
}
