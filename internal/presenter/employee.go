package presenter

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/Werneck0live/office-admin/internal/models"
)

// WriteEmployee imprime um funcionário do prédio como pares campo/valor.
func WriteEmployee(w io.Writer, e *models.BuildingEmployee) error {
	services := make([]string, 0, len(e.ServicesSupervised))
	for _, id := range e.ServicesSupervised {
		services = append(services, id.Hex())
	}
	birth := noValue
	if !e.Birthdate.IsZero() {
		birth = e.Birthdate.UTC().Format("2006-01-02")
	}

	tw := tabwriter.NewWriter(w, 0, 0, 1, ' ', 0)
	fields := [][2]string{
		{"id", e.ID.Hex()},
		{"employee_code", e.EmployeeCode},
		{"full_name", e.FullName},
		{"birthdate", birth},
		{"address", e.Address},
		{"phone", e.Phone},
		{"level", FormatCell(e.Level)},
		{"position", e.Position},
		{"services_supervised", "[" + strings.Join(services, ", ") + "]"},
		{"salary_rate", FormatCell(e.SalaryRate)},
	}
	for _, f := range fields {
		fmt.Fprintf(tw, "  %s:\t%s\n", f[0], f[1])
	}
	return tw.Flush()
}
