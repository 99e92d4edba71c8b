// Package docs rebuilds the distribution documentation: regenerated TeX
// fragments from the package definition files, captured console listings from
// the freshly built binary, and the multi-pass pdflatex builds of the six
// shipped documents. The whole package sits behind a capability gate on the
// typesetting toolchain.
package docs

import (
	"os"
	"os/exec"
)

// LatexAvailable reports whether the typesetting toolchain can be used.
// MF6DIST_SKIP_DOCS=1 forces the gate shut even when pdflatex is installed.
func LatexAvailable() bool {
	if os.Getenv("MF6DIST_SKIP_DOCS") == "1" {
		return false
	}
	_, err := exec.LookPath("pdflatex")
	return err == nil
}
