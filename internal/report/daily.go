package report

import (
	"context"
	"fmt"
	"time"

	"github.com/Werneck0live/office-admin/internal/models"
	"github.com/Werneck0live/office-admin/internal/store"
)

const DayLayout = "2006-01-02"

type Entry struct {
	EntryTime time.Time `json:"entry_time"`
	ExitTime  time.Time `json:"exit_time"`
	Location  string    `json:"location"`
}

type DailyEntries struct {
	EmployeeID   models.EmployeeID `json:"employee_id"`
	FullName     string            `json:"full_name"`
	Phone        string            `json:"phone"`
	EntryCount   int               `json:"entry_count"`
	DailyEntries []Entry           `json:"daily_entries"`
}

// ParseDay lê uma data YYYY-MM-DD no fuso informado.
func ParseDay(s string, loc *time.Location) (time.Time, error) {
	d, err := time.ParseInLocation(DayLayout, s, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return d, nil
}

// DayBounds devolve 00:00:00.000 e 23:59:59.999 do dia no fuso loc.
// O fim é usado com <, então uma entrada exatamente em 23:59:59.999 fica de fora.
func DayBounds(day time.Time, loc *time.Location) (start, end time.Time) {
	y, m, d := day.In(loc).Date()
	start = time.Date(y, m, d, 0, 0, 0, 0, loc)
	end = time.Date(y, m, d, 23, 59, 59, int(999*time.Millisecond), loc)
	return start, end
}

// DailyEntries lista, para cada funcionário do prédio e na ordem do banco,
// as entradas registradas no dia.
func (e *Engine) DailyEntries(ctx context.Context, day time.Time) ([]DailyEntries, error) {
	employees, err := store.FindAll[models.BuildingEmployee](ctx, e.src, models.CollBuildingEmployees, nil)
	if err != nil {
		return nil, err
	}
	ids := make([]models.EmployeeID, 0, len(employees))
	for _, emp := range employees {
		ids = append(ids, emp.ID)
	}
	logs, err := store.FindAll[models.AccessLog](ctx, e.src, models.CollAccessLogs,
		store.Filter{"employee_id": store.In(ids...)})
	if err != nil {
		return nil, err
	}

	start, end := DayBounds(day, e.loc)
	joined := store.LeftJoin(employees, logs,
		store.Key(func(emp models.BuildingEmployee) models.EmployeeID { return emp.ID }),
		func(l models.AccessLog) models.EmployeeID { return l.EmployeeID })

	out := make([]DailyEntries, 0, len(joined))
	for _, j := range joined {
		entries := []Entry{}
		for _, l := range j.Children {
			if l.EntryTime.Before(start) || !l.EntryTime.Before(end) {
				continue
			}
			entries = append(entries, Entry{EntryTime: l.EntryTime, ExitTime: l.ExitTime, Location: l.Location})
		}
		out = append(out, DailyEntries{
			EmployeeID:   j.Parent.ID,
			FullName:     j.Parent.FullName,
			Phone:        j.Parent.Phone,
			EntryCount:   len(entries),
			DailyEntries: entries,
		})
	}
	return out, nil
}
