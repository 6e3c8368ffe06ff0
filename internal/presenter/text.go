package presenter

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"
)

// WriteText imprime o relatório como tabela alinhada.
func WriteText(w io.Writer, result any, loc *time.Location) error {
	t, err := Tabulate(result, loc)
	if err != nil {
		return err
	}
	return t.WriteText(w)
}

func (t Table) WriteText(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "%s: %d row(s)\n", t.Title, len(t.Rows)); err != nil {
		return err
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(t.Headers, "\t"))
	for _, row := range t.Rows {
		cells := make([]string, len(row))
		for i, v := range row {
			cells[i] = FormatCell(v)
		}
		fmt.Fprintln(tw, strings.Join(cells, "\t"))
	}
	return tw.Flush()
}
