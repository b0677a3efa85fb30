// Package cvtemplate expands the resume template with pongo2. The engine
// exposes two helpers to the template, formatDate and removeProtocol,
// bound per record to the record's locale and label overrides.
//
// The template is read from the conventional path when present; otherwise
// the embedded default template is used.
package cvtemplate
