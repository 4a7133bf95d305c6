// Package stdlib bundles Axion's standard-library modules as embedded
// source text, resolved by the Module Loader for bare include names
// (spec.md §4.5/§6). Axion ships its standard library written *in*
// Axion itself and distributed as a bundled resource — matching the
// Python reference's
// `importlib.resources.open_text("axion.stdlib", f"{path}.ax")`.
package stdlib

import "embed"

//go:embed math.ax strings.ax
var modules embed.FS

// Lookup returns the source text of the bundled module named by a bare
// include name (no `.ax` suffix — the loader appends it), and whether
// that module exists.
func Lookup(name string) (string, bool) {
	data, err := modules.ReadFile(name + ".ax")
	if err != nil {
		return "", false
	}
	return string(data), true
}
