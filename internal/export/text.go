package export

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/suma-ulsa/codexgo/internal/engine"
	"github.com/suma-ulsa/codexgo/internal/model"
)

// renderText writes the default human-readable report.
func renderText(w io.Writer, results []engine.BlockResult) error {
	for i, br := range results {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "== %s (%s) ==\n", br.Entity, br.Keyword)

		if br.Err != nil {
			fmt.Fprintf(w, "error: %v\n", br.Err)
			continue
		}
		if br.Result.Stored {
			fmt.Fprintln(w, "stored")
			continue
		}
		for _, v := range br.Result.Values {
			if err := writeTextValue(w, v); err != nil {
				return err
			}
		}
	}
	return nil
}

func writeTextValue(w io.Writer, v model.Value) error {
	switch v.Kind {
	case model.KindScalar:
		fmt.Fprintf(w, "%s: %g\n", v.Label(), v.Scalar)
	case model.KindText:
		fmt.Fprintf(w, "%s: %s\n", v.Label(), v.Text)
	case model.KindVector:
		fmt.Fprintf(w, "%s: [%s]\n", v.Label(), joinFloats(v.Vector))
	case model.KindTable:
		fmt.Fprintf(w, "%s:\n", v.Label())
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "  "+strings.Join(v.Table.Columns, "\t"))
		for _, row := range v.Table.Rows {
			fmt.Fprintln(tw, "  "+strings.Join(row, "\t"))
		}
		if err := tw.Flush(); err != nil {
			return err
		}
	case model.KindError:
		fmt.Fprintf(w, "%s: error: %v\n", v.Label(), v.Err)
	}
	return nil
}
