package runner

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/goccy/go-yaml"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mattn/go-isatty"
	"github.com/projectdiscovery/textdist"
)

const (
	FormatTable    = "table"
	FormatYAML     = "yaml"
	FormatTemplate = "template"
)

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }

// openOutput returns the output file or stdout when path is empty
func openOutput(path string) (io.WriteCloser, error) {
	if path == "" {
		return nopCloser{os.Stdout}, nil
	}
	fs, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return nil, err
	}
	return fs, nil
}

// resolveFormat picks table output for terminals unless a format or template was given
func resolveFormat(format, template string, writer io.Writer) string {
	switch {
	case format != "":
		return format
	case template != "":
		return FormatTemplate
	case isTerminal(writer):
		return FormatTable
	}
	return FormatTemplate
}

func isTerminal(writer io.Writer) bool {
	if nc, ok := writer.(nopCloser); ok {
		writer = nc.Writer
	}
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

type columnAlignment int

const (
	alignLeft columnAlignment = iota
	alignRight
)

func renderTable(headers []string, rows [][]string, aligns []columnAlignment) string {
	columns := len(headers)
	if columns == 0 {
		return ""
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)

	header := make(table.Row, columns)
	for i := 0; i < columns; i++ {
		header[i] = headers[i]
	}
	tw.AppendHeader(header)

	for _, row := range rows {
		r := make(table.Row, columns)
		for i := 0; i < columns; i++ {
			if i < len(row) {
				r[i] = row[i]
			}
		}
		tw.AppendRow(r)
	}

	columnConfigs := make([]table.ColumnConfig, 0, columns)
	for i := 0; i < columns; i++ {
		align := text.AlignLeft
		if i < len(aligns) && aligns[i] == alignRight {
			align = text.AlignRight
		}
		columnConfigs = append(columnConfigs, table.ColumnConfig{
			Number:      i + 1,
			Align:       align,
			AlignHeader: text.AlignLeft,
		})
	}
	tw.SetColumnConfigs(columnConfigs)

	return tw.Render()
}

func writeResultsTable(w io.Writer, results []*textdist.Result) error {
	rows := make([][]string, 0, len(results))
	for _, r := range results {
		rows = append(rows, []string{strconv.Itoa(r.PairID), r.Metric, string(r.Kind), r.FormatValue()})
	}
	_, err := fmt.Fprintln(w, renderTable(
		[]string{"pair", "metric", "kind", "value"},
		rows,
		[]columnAlignment{alignRight, alignLeft, alignLeft, alignRight},
	))
	return err
}

func writeResultsYAML(w io.Writer, results []*textdist.Result) error {
	bin, err := yaml.Marshal(results)
	if err != nil {
		return err
	}
	_, err = w.Write(bin)
	return err
}

// matrixDocument is the yaml form of a matrix
type matrixDocument struct {
	Metric  string      `yaml:"metric"`
	Kind    string      `yaml:"kind"`
	Phrases []string    `yaml:"phrases"`
	Rows    [][]float64 `yaml:"rows"`
}

func writeMatricesYAML(w io.Writer, matrices []*textdist.Matrix) error {
	docs := make([]matrixDocument, 0, len(matrices))
	for _, mx := range matrices {
		rows, err := mx.Rows()
		if err != nil {
			return err
		}
		docs = append(docs, matrixDocument{
			Metric:  mx.Metric().Name,
			Kind:    string(mx.Metric().Kind),
			Phrases: mx.Phrases(),
			Rows:    rows,
		})
	}
	bin, err := yaml.Marshal(docs)
	if err != nil {
		return err
	}
	_, err = w.Write(bin)
	return err
}

func writeMatricesTable(w io.Writer, matrices []*textdist.Matrix) error {
	for _, mx := range matrices {
		rows, err := mx.Rows()
		if err != nil {
			return err
		}
		n := len(mx.Phrases())
		headers := []string{mx.Metric().Name}
		aligns := []columnAlignment{alignLeft}
		for i := 0; i < n; i++ {
			headers = append(headers, strconv.Itoa(i+1))
			aligns = append(aligns, alignRight)
		}
		cells := make([][]string, 0, n)
		for i, phrase := range mx.Phrases() {
			row := []string{fmt.Sprintf("%d %s", i+1, phrase)}
			for _, value := range rows[i] {
				result := textdist.Result{Kind: mx.Metric().Kind, Value: value}
				row = append(row, result.FormatValue())
			}
			cells = append(cells, row)
		}
		if _, err := fmt.Fprintln(w, renderTable(headers, cells, aligns)); err != nil {
			return err
		}
	}
	return nil
}

// writeMatricesTemplate renders the upper triangle of every matrix, the pair
// of cell (i, j) is i*n+j+1
func writeMatricesTemplate(w io.Writer, matrices []*textdist.Matrix, template string) error {
	for _, mx := range matrices {
		phrases := mx.Phrases()
		for i := range phrases {
			for j := i + 1; j < len(phrases); j++ {
				value, err := mx.Score(i, j)
				if err != nil {
					return err
				}
				result := &textdist.Result{
					PairID:  i*len(phrases) + j + 1,
					Metric:  mx.Metric().Name,
					Kind:    mx.Metric().Kind,
					Value:   value,
					Phrase1: phrases[i],
					Phrase2: phrases[j],
				}
				if _, err := fmt.Fprintln(w, textdist.Replace(template, result.Map())); err != nil {
					return err
				}
			}
		}
	}
	return nil
}
