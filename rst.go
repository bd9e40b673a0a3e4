package config

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/kdraeder/cime/internal/rst"
)

// RenderVariables writes the attribute table: one row per registered
// attribute in registration order, with the recorded default, its type name
// and the description.
func (r *Registry) RenderVariables(w io.Writer) {
	rst.WriteHeader(w, "Variables", "Config Variables:", '"')

	headers := []string{"Variable", "Default", "Type", "Description"}
	rows := make([][]string, 0, len(r.order))
	for _, name := range r.order {
		attr := r.attrs[name]
		rows = append(rows, []string{
			attr.Name,
			attr.Default.String(),
			attr.Default.Kind().String(),
			attr.Description,
		})
	}
	rst.WriteTable(w, headers, rows)
}

// RenderMethods writes one code block per documented behavior: the name and
// parameter signature, then the help text between indented quote markers.
// Behaviors without help text are skipped.
func (r *Registry) RenderMethods(w io.Writer) {
	rst.WriteHeader(w, "Methods", "Config Methods:", '"')

	for _, b := range r.behaviors {
		if b.Doc == "" {
			continue
		}
		fmt.Fprint(w, ".. code-block::\n\n")
		fmt.Fprintf(w, "  def %s(%s):\n", b.Name, b.Params)
		fmt.Fprintln(w, `      """`)
		for _, line := range strings.Split(b.Doc, "\n") {
			fmt.Fprintf(w, "      %s\n", line)
		}
		fmt.Fprintln(w, `      """`)
	}
}

// RenderRST writes the variables table and the methods block separated by a
// blank line.
func (r *Registry) RenderRST(w io.Writer) {
	r.RenderVariables(w)
	fmt.Fprintln(w)
	r.RenderMethods(w)
}

// PrintRST renders the full documentation to standard output.
func (r *Registry) PrintRST() {
	r.RenderRST(os.Stdout)
}
