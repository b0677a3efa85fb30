package build

import (
	"regexp"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/goodsign/monday"
)

// presentLabel is the fallback for open-ended date ranges when the record
// supplies no labels.present override.
const presentLabel = "Present"

var monthLocales = map[string]monday.Locale{
	"en": monday.LocaleEnUS,
	"es": monday.LocaleEsES,
	"fr": monday.LocaleFrFR,
	"de": monday.LocaleDeDE,
	"it": monday.LocaleItIT,
	"pt": monday.LocalePtPT,
}

var dateLayouts = []string{"2006-01-02", "2006-01", "2006"}

var protocolPattern = regexp.MustCompile(`^([a-zA-Z][a-zA-Z0-9+.-]*:)?//`)

// FormatDate renders a record date as "<abbreviated month> <year>" in the
// record's locale. Empty input yields the record's labels.present
// override when given, otherwise "Present". Input that parses under none
// of the accepted layouts passes through unchanged so a malformed date
// never aborts a render.
//
// The month abbreviation is normalized across locales: a trailing
// abbreviation period is stripped, the first letter is capitalized, and
// month and year are joined by exactly one space.
func FormatDate(raw, lang string, labels map[string]string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		if label, ok := labels["present"]; ok && label != "" {
			return label
		}
		return presentLabel
	}

	var parsed time.Time
	var err error
	for _, layout := range dateLayouts {
		if parsed, err = time.Parse(layout, raw); err == nil {
			break
		}
	}
	if err != nil {
		return raw
	}

	locale, ok := monthLocales[strings.ToLower(lang)]
	if !ok {
		locale = monday.LocaleEnUS
	}

	month := strings.TrimSuffix(monday.Format(parsed, "Jan", locale), ".")
	month = capitalize(month)
	return month + " " + parsed.Format("2006")
}

// RemoveProtocol strips a leading scheme:// or protocol-relative //
// prefix from a URL, leaving the remainder unchanged.
func RemoveProtocol(url string) string {
	return protocolPattern.ReplaceAllString(url, "")
}

// LabelsFrom extracts the record's string label overrides, if any.
func LabelsFrom(rec Record) map[string]string {
	raw, ok := rec["labels"].(map[string]any)
	if !ok {
		return nil
	}
	labels := make(map[string]string, len(raw))
	for key, value := range raw {
		if s, ok := value.(string); ok {
			labels[key] = s
		}
	}
	return labels
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
