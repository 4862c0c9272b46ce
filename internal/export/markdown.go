package export

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/russross/blackfriday/v2"

	"github.com/suma-ulsa/codexgo/internal/engine"
	"github.com/suma-ulsa/codexgo/internal/model"
)

// renderMarkdown writes one section per block with values as lists and
// tables as pipe tables.
func renderMarkdown(w io.Writer, results []engine.BlockResult) error {
	for i, br := range results {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "## %s (%s)\n\n", br.Entity, br.Keyword)

		if br.Err != nil {
			fmt.Fprintf(w, "**error:** %v\n", br.Err)
			continue
		}
		if br.Result.Stored {
			fmt.Fprintln(w, "_stored_")
			continue
		}
		for _, v := range br.Result.Values {
			writeMarkdownValue(w, v)
		}
	}
	return nil
}

func writeMarkdownValue(w io.Writer, v model.Value) {
	switch v.Kind {
	case model.KindScalar:
		fmt.Fprintf(w, "- **%s**: %g\n", v.Label(), v.Scalar)
	case model.KindText:
		fmt.Fprintf(w, "- **%s**: %s\n", v.Label(), v.Text)
	case model.KindVector:
		fmt.Fprintf(w, "- **%s**: [%s]\n", v.Label(), joinFloats(v.Vector))
	case model.KindTable:
		fmt.Fprintf(w, "\n**%s**\n\n", v.Label())
		fmt.Fprintf(w, "| %s |\n", strings.Join(v.Table.Columns, " | "))
		fmt.Fprintf(w, "|%s\n", strings.Repeat(" --- |", len(v.Table.Columns)))
		for _, row := range v.Table.Rows {
			fmt.Fprintf(w, "| %s |\n", strings.Join(row, " | "))
		}
		fmt.Fprintln(w)
	case model.KindError:
		fmt.Fprintf(w, "- **%s**: error: %v\n", v.Label(), v.Err)
	}
}

// renderHTML renders the markdown report and converts it to HTML.
func renderHTML(w io.Writer, results []engine.BlockResult) error {
	var buf bytes.Buffer
	if err := renderMarkdown(&buf, results); err != nil {
		return err
	}
	html := blackfriday.Run(buf.Bytes(), blackfriday.WithExtensions(blackfriday.CommonExtensions))
	_, err := w.Write(html)
	return err
}
