// Package cvpdf prints rendered HTML to paginated PDF with a shared
// headless Chromium instance. The browser is acquired lazily on the first
// render, reused for the whole batch, and released by Close.
package cvpdf
