package build

import (
	"context"
	"encoding/json"
	"os"
	"time"

	"github.com/google/uuid"
)

// Runner orchestrates one build: theme resolution, record discovery, and
// sequential per-record rendering with isolated failure handling.
type Runner struct {
	Paths     Paths
	Config    *Store
	Theme     *ThemeResolver
	Overrides *Merger
	Templates TemplateEngine
	Printer   PrintEngine
	Target    Target
	ThemeName string
	Logger    Logger
	Now       func() time.Time
	BuildID   func() string
}

// Summary reports the outcome of one build.
type Summary struct {
	BuildID   string
	Theme     string
	Total     int
	Succeeded int
	Failed    int
	Artifacts []string
}

// Run executes the build. Configuration, theme, and discovery problems
// are fatal and abort before any record is processed; a failure on an
// individual record is logged with the offending path and the batch
// continues. Records render strictly sequentially in discovery order.
func (r *Runner) Run(ctx context.Context) (Summary, error) {
	if r.Logger == nil {
		r.Logger = NopLogger{}
	}
	if r.Now == nil {
		r.Now = time.Now
	}
	if r.BuildID == nil {
		r.BuildID = uuid.NewString
	}
	if r.Target == "" {
		r.Target = TargetPDF
	}
	if r.Config == nil || r.Theme == nil || r.Templates == nil {
		return Summary{}, NewError(KindInternal, "runner is not fully configured", nil)
	}

	summary := Summary{BuildID: r.BuildID()}
	cfg := r.Config.Load()

	theme, err := r.Theme.Load(r.ThemeName)
	if err != nil {
		return summary, err
	}
	summary.Theme = theme.Name

	records, err := Discover(r.Paths.Src)
	if err != nil {
		return summary, err
	}
	if len(records) == 0 {
		return summary, NewError(KindNoInput, "no "+RecordFilename+" records found under "+r.Paths.Src, nil)
	}
	summary.Total = len(records)
	r.Logger.Infof("build %s: %d record(s), theme %q, target %s", summary.BuildID, len(records), theme.Name, r.Target)

	resolver := &Resolver{Src: r.Paths.Src, Dist: r.Paths.Dist, Config: cfg, Now: r.Now}
	renderer := &Renderer{Templates: r.Templates, Printer: r.Printer, Target: r.Target}

	for _, path := range records {
		out, err := r.renderRecord(ctx, path, cfg, theme, resolver, renderer)
		if err != nil {
			summary.Failed++
			r.Logger.Errorf("record %s failed: %v", path, err)
			continue
		}
		summary.Succeeded++
		summary.Artifacts = append(summary.Artifacts, out)
		r.Logger.Infof("rendered %s -> %s", path, out)
	}
	return summary, nil
}

func (r *Runner) renderRecord(ctx context.Context, path string, cfg PersonaConfig, theme Theme, resolver *Resolver, renderer *Renderer) (string, error) {
	rec, err := readRecord(path)
	if err != nil {
		return "", err
	}
	if r.Overrides != nil {
		rec = r.Overrides.Apply(rec, cfg.PersonaID)
	}

	out, err := resolver.Resolve(path, r.Target)
	if err != nil {
		return "", err
	}

	rc := RenderContext{
		Resume: rec,
		CSS:    theme.CSS,
		Lang:   out.Lang,
		Meta:   Meta{GeneratedAt: r.Now(), Theme: theme.Name},
	}
	if err := renderer.Render(ctx, rc, out.Path); err != nil {
		return "", err
	}
	return out.Path, nil
}

func readRecord(path string) (Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, NewError(KindRecord, "cannot read record "+path, err)
	}
	var rec Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, NewError(KindRecord, "record "+path+" is not valid JSON", err)
	}
	return rec, nil
}
