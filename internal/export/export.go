// Package export renders the engine's ordered result sequence to the
// supported output formats: text, json, yaml, csv, markdown and html. The
// sequence order is preserved verbatim so rendered output mirrors script
// order.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"gopkg.in/yaml.v2"

	"github.com/suma-ulsa/codexgo/internal/engine"
	"github.com/suma-ulsa/codexgo/internal/model"
)

// Formats lists the accepted format names.
var Formats = []string{"text", "json", "yaml", "csv", "markdown", "html"}

// ValidFormat reports whether name is a known output format.
func ValidFormat(name string) bool {
	for _, f := range Formats {
		if f == name {
			return true
		}
	}
	return false
}

// Render writes results to w in the named format.
func Render(w io.Writer, format string, results []engine.BlockResult) error {
	switch format {
	case "text":
		return renderText(w, results)
	case "json":
		return renderJSON(w, results)
	case "yaml":
		return renderYAML(w, results)
	case "csv":
		return renderCSV(w, results)
	case "markdown":
		return renderMarkdown(w, results)
	case "html":
		return renderHTML(w, results)
	}
	return fmt.Errorf("unknown output format %q", format)
}

// Marshalling view of one value, shared by the json and yaml renderers.
type reportValue struct {
	Name   string       `json:"name" yaml:"name"`
	Kind   string       `json:"kind" yaml:"kind"`
	Scalar *float64     `json:"scalar,omitempty" yaml:"scalar,omitempty"`
	Text   string       `json:"text,omitempty" yaml:"text,omitempty"`
	Vector []float64    `json:"vector,omitempty" yaml:"vector,omitempty"`
	Table  *reportTable `json:"table,omitempty" yaml:"table,omitempty"`
	Error  string       `json:"error,omitempty" yaml:"error,omitempty"`
}

type reportTable struct {
	Columns []string   `json:"columns" yaml:"columns"`
	Rows    [][]string `json:"rows" yaml:"rows"`
}

type reportBlock struct {
	Entity string        `json:"entity" yaml:"entity"`
	Domain string        `json:"domain" yaml:"domain"`
	Stored bool          `json:"stored,omitempty" yaml:"stored,omitempty"`
	Error  string        `json:"error,omitempty" yaml:"error,omitempty"`
	Values []reportValue `json:"values,omitempty" yaml:"values,omitempty"`
}

func buildReport(results []engine.BlockResult) []reportBlock {
	out := make([]reportBlock, 0, len(results))
	for _, br := range results {
		rb := reportBlock{Entity: br.Entity, Domain: br.Keyword}
		if br.Err != nil {
			rb.Error = br.Err.Error()
			out = append(out, rb)
			continue
		}
		rb.Stored = br.Result.Stored
		for _, v := range br.Result.Values {
			rv := reportValue{Name: v.Label()}
			switch v.Kind {
			case model.KindScalar:
				rv.Kind = "scalar"
				s := v.Scalar
				rv.Scalar = &s
			case model.KindText:
				rv.Kind = "text"
				rv.Text = v.Text
			case model.KindVector:
				rv.Kind = "vector"
				rv.Vector = v.Vector
			case model.KindTable:
				rv.Kind = "table"
				rv.Table = &reportTable{Columns: v.Table.Columns, Rows: v.Table.Rows}
			case model.KindError:
				rv.Kind = "error"
				rv.Error = v.Err.Error()
			}
			rb.Values = append(rb.Values, rv)
		}
		out = append(out, rb)
	}
	return out
}

func renderJSON(w io.Writer, results []engine.BlockResult) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(buildReport(results))
}

func renderYAML(w io.Writer, results []engine.BlockResult) error {
	return yaml.NewEncoder(w).Encode(buildReport(results))
}

// renderCSV flattens every value to one row: entity, domain, value, kind,
// content. Tables emit one row per table line.
func renderCSV(w io.Writer, results []engine.BlockResult) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"entity", "domain", "value", "kind", "content"}); err != nil {
		return err
	}
	for _, rb := range buildReport(results) {
		if rb.Error != "" {
			if err := cw.Write([]string{rb.Entity, rb.Domain, "", "error", rb.Error}); err != nil {
				return err
			}
			continue
		}
		if rb.Stored {
			if err := cw.Write([]string{rb.Entity, rb.Domain, "", "stored", ""}); err != nil {
				return err
			}
			continue
		}
		for _, v := range rb.Values {
			content := ""
			switch v.Kind {
			case "scalar":
				content = strconv.FormatFloat(*v.Scalar, 'g', -1, 64)
			case "text":
				content = v.Text
			case "vector":
				content = joinFloats(v.Vector)
			case "error":
				content = v.Error
			}
			if v.Kind == "table" {
				for _, row := range v.Table.Rows {
					rec := append([]string{rb.Entity, rb.Domain, v.Name, "table"}, joinStrings(row))
					if err := cw.Write(rec); err != nil {
						return err
					}
				}
				continue
			}
			if err := cw.Write([]string{rb.Entity, rb.Domain, v.Name, v.Kind, content}); err != nil {
				return err
			}
		}
	}
	cw.Flush()
	return cw.Error()
}

func joinFloats(v []float64) string {
	out := ""
	for i, f := range v {
		if i > 0 {
			out += ", "
		}
		out += strconv.FormatFloat(f, 'g', -1, 64)
	}
	return out
}

func joinStrings(v []string) string {
	out := ""
	for i, s := range v {
		if i > 0 {
			out += "; "
		}
		out += s
	}
	return out
}
