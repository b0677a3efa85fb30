package cvtemplate

import (
	"context"
	_ "embed"
	"os"
	"sync"
	"time"

	"github.com/flosch/pongo2/v6"
	"github.com/smarquez/cvforge/build"
)

//go:embed assets/resume.html
var defaultTemplate []byte

// Renderer expands render contexts through a pongo2 template. It
// implements build.TemplateEngine. The template is parsed once and reused
// for the whole batch.
type Renderer struct {
	Path   string
	Logger build.Logger

	once sync.Once
	tpl  *pongo2.Template
	err  error
}

// Render expands the template with one record's render context.
func (r *Renderer) Render(_ context.Context, rc build.RenderContext) ([]byte, error) {
	r.once.Do(r.load)
	if r.err != nil {
		return nil, r.err
	}

	labels := build.LabelsFrom(rc.Resume)
	lang := rc.Lang

	out, err := r.tpl.ExecuteBytes(pongo2.Context{
		"resume": map[string]any(rc.Resume),
		"css":    rc.CSS,
		"lang":   lang,
		"meta": map[string]any{
			"generatedAt": rc.Meta.GeneratedAt.Format(time.RFC3339),
			"theme":       rc.Meta.Theme,
		},
		"formatDate": func(in *pongo2.Value) *pongo2.Value {
			return pongo2.AsValue(build.FormatDate(in.String(), lang, labels))
		},
		"removeProtocol": func(in *pongo2.Value) *pongo2.Value {
			return pongo2.AsValue(build.RemoveProtocol(in.String()))
		},
	})
	if err != nil {
		return nil, build.NewError(build.KindRender, "template execution failed", err)
	}
	return out, nil
}

func (r *Renderer) load() {
	logger := r.Logger
	if logger == nil {
		logger = build.NopLogger{}
	}

	if r.Path != "" {
		if _, err := os.Stat(r.Path); err == nil {
			r.tpl, r.err = pongo2.FromFile(r.Path)
			if r.err != nil {
				r.err = build.NewError(build.KindRender, "cannot parse template "+r.Path, r.err)
			}
			return
		}
		logger.Debugf("template %s not found, using embedded default", r.Path)
	}

	r.tpl, r.err = pongo2.FromBytes(defaultTemplate)
	if r.err != nil {
		r.err = build.NewError(build.KindInternal, "cannot parse embedded template", r.err)
	}
}
