package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"gopkg.in/yaml.v3"
)

const (
	formatTable = "table"
	formatJSON  = "json"
	formatYAML  = "yaml"
)

func parseFormat(s string) (string, error) {
	switch s {
	case formatTable, formatJSON, formatYAML:
		return s, nil
	default:
		return "", fmt.Errorf("unsupported output format %q (want table, json or yaml)", s)
	}
}

var (
	warnColor  = color.New(color.FgYellow)
	errorColor = color.New(color.FgRed, color.Bold)
	infoColor  = color.New(color.FgCyan)
)

// renderer writes command results. Documents and tables go to out; notes
// go to errOut so json and yaml output stays machine readable.
type renderer struct {
	out    io.Writer
	errOut io.Writer
	format string
}

func (r *renderer) structured() bool {
	return r.format != formatTable
}

// document writes v as JSON or YAML. YAML keys follow the JSON tags.
func (r *renderer) document(v any) error {
	if r.format == formatYAML {
		return writeYAML(r.out, v)
	}
	enc := json.NewEncoder(r.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func (r *renderer) table(headers []string, rows [][]string) {
	t := tablewriter.NewWriter(r.out)
	t.SetHeader(headers)
	t.SetAutoWrapText(false)
	t.SetRowLine(false)
	t.AppendBulk(rows)
	t.Render()
}

// properties renders label/value pairs as a two column table.
func (r *renderer) properties(pairs [][2]string) {
	rows := make([][]string, len(pairs))
	for i, p := range pairs {
		rows[i] = []string{p[0], p[1]}
	}
	r.table([]string{"Property", "Value"}, rows)
}

func (r *renderer) info(format string, args ...any) {
	_, _ = infoColor.Fprintf(r.out, format+"\n", args...)
}

func (r *renderer) warn(format string, args ...any) {
	_, _ = warnColor.Fprintf(r.errOut, format+"\n", args...)
}

// PrintError reports a failed command on w.
func PrintError(w io.Writer, err error) {
	_, _ = errorColor.Fprintf(w, "error: %v\n", err)
}

// writeYAML encodes v through its JSON form so field names match the HTTP
// API, then re-emits it in block style.
func writeYAML(w io.Writer, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encoding document: %w", err)
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("re-reading document: %w", err)
	}
	blockStyle(&doc)

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(&doc); err != nil {
		return fmt.Errorf("writing yaml: %w", err)
	}
	return enc.Close()
}

// blockStyle clears the flow and quoting styles JSON input parses with.
func blockStyle(n *yaml.Node) {
	n.Style = 0
	for _, c := range n.Content {
		blockStyle(c)
	}
}
