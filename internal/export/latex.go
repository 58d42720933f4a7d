// Package export builds standalone LaTeX documents from rendered expansion
// results.
package export

import (
	"fmt"
	"os"
	"strings"
)

// Entry is one perturbative order, already rendered to LaTeX.
type Entry struct {
	N int
	S string
	K string
}

// Document assembles a compilable LaTeX article listing the generator and
// effective Hamiltonian per order.
func Document(title string, entries []Entry) string {
	var b strings.Builder
	b.WriteString("\\documentclass{article}\n")
	b.WriteString("\\usepackage{amsmath}\n")
	b.WriteString("\\allowdisplaybreaks\n")
	b.WriteString("\\begin{document}\n")
	fmt.Fprintf(&b, "\\section*{%s}\n", title)
	for _, e := range entries {
		b.WriteString("\\begin{align*}\n")
		fmt.Fprintf(&b, "S^{(%d)} &= %s \\\\\n", e.N, e.S)
		fmt.Fprintf(&b, "K^{(%d)} &= %s\n", e.N, e.K)
		b.WriteString("\\end{align*}\n")
	}
	b.WriteString("\\end{document}\n")
	return b.String()
}

// Write renders the document to a file.
func Write(path, title string, entries []Entry) error {
	return os.WriteFile(path, []byte(Document(title, entries)), 0644)
}
