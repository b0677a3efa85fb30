package build

import (
	"os"
	"path/filepath"
	"strings"
	"time"
)

// SplitLocaleRole reads role and locale from a discovered record's
// position under the source root. The supported layout is
// <role>/.../<lang>/resume.json: role is the first path segment relative
// to the root and the locale is the record's parent directory. Records
// nested less than two directories deep return ok=false and fall back to
// timestamp naming.
func SplitLocaleRole(root, path string) (role, lang string, ok bool) {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return "", "", false
	}
	segments := strings.Split(filepath.ToSlash(rel), "/")
	if len(segments) < 3 {
		return "", "", false
	}
	return segments[0], segments[len(segments)-2], true
}

// ResolveOutputName substitutes the tokens {persona}, {role}, {lang} and
// {date} in the configured naming template. Unrecognized tokens are left
// verbatim.
func ResolveOutputName(tmpl, persona, role, lang string, now time.Time) string {
	return strings.NewReplacer(
		"{persona}", persona,
		"{role}", role,
		"{lang}", lang,
		"{date}", now.Format("2006-01-02"),
	).Replace(tmpl)
}

// FallbackOutputName names records whose source position carries no
// role/locale metadata.
func FallbackOutputName(now time.Time, target Target) string {
	return "resume-" + now.Format("20060102T150405") + "." + target.Ext()
}

// Resolver derives output paths for discovered records and guarantees
// their parent directories exist before anything is written.
type Resolver struct {
	Src    string
	Dist   string
	Config PersonaConfig
	Now    func() time.Time
}

// ResolvedOutput describes where one record renders to and the locale
// metadata driving its render context.
type ResolvedOutput struct {
	Path string
	Role string
	Lang string
}

// Resolve computes the output path for a record. PDF targets use the
// configured naming template under the distribution root; HTML targets
// mirror the source tree as <dist>/<role>/<lang>/index.html. Records
// without role/locale metadata use the timestamp fallback name for
// either target so shallow records never share an output path with a
// fixed name.
func (r *Resolver) Resolve(recordPath string, target Target) (ResolvedOutput, error) {
	now := r.Now
	if now == nil {
		now = time.Now
	}

	role, lang, ok := SplitLocaleRole(r.Src, recordPath)
	if !ok {
		role = r.Config.DefaultRole
		lang = r.Config.DefaultLanguage
	}

	var out string
	switch {
	case target == TargetHTML && ok:
		out = filepath.Join(r.Dist, role, lang, "index.html")
	case ok:
		name := ResolveOutputName(r.Config.OutputNaming, r.Config.PersonaID, role, lang, now())
		if !strings.HasSuffix(strings.ToLower(name), ".pdf") {
			name += ".pdf"
		}
		out = filepath.Join(r.Dist, name)
	default:
		out = filepath.Join(r.Dist, FallbackOutputName(now(), target))
	}

	if err := os.MkdirAll(filepath.Dir(out), 0o755); err != nil {
		return ResolvedOutput{}, NewError(KindRender, "cannot create output directory for "+out, err)
	}
	return ResolvedOutput{Path: out, Role: role, Lang: lang}, nil
}
