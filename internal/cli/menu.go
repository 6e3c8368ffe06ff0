// Package cli implementa o menu interativo de administração do prédio.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/Werneck0live/office-admin/internal/models"
	"github.com/Werneck0live/office-admin/internal/report"
)

type EmployeeStore interface {
	Create(ctx context.Context, e *models.BuildingEmployee) (models.EmployeeID, error)
	GetByID(ctx context.Context, id models.EmployeeID) (*models.BuildingEmployee, error)
	Update(ctx context.Context, id models.EmployeeID, fields bson.M) (*models.BuildingEmployee, error)
	Delete(ctx context.Context, id models.EmployeeID) error
}

type Reports interface {
	TotalCompanyCosts(ctx context.Context) ([]report.CompanyCost, error)
	DailyEntries(ctx context.Context, day time.Time) ([]report.DailyEntries, error)
	MonthlyRevenueByEmployee(ctx context.Context) ([]report.MonthlyRevenue, error)
	EmployeesWithMonthlySalary(ctx context.Context) ([]report.MonthlySalary, error)
}

type Notifier interface {
	Notify(ctx context.Context, action, entityID, entityName string)
}

type Menu struct {
	Employees EmployeeStore
	Reports   Reports
	Events    Notifier // opcional
	Location  *time.Location
	OpTimeout time.Duration

	in  *bufio.Reader
	out io.Writer
	log *slog.Logger
}

func NewMenu(in io.Reader, out io.Writer, log *slog.Logger) *Menu {
	if log == nil {
		log = slog.Default()
	}
	return &Menu{
		Location: time.Local,
		in:       bufio.NewReader(in),
		out:      out,
		log:      log.With("cmp", "cli"),
	}
}

var menuLines = []string{
	"1. Add new employee",
	"2. Get employee by ID",
	"3. Update employee",
	"4. Delete employee",
	"5. Total company costs",
	"6. Employee entries on a day",
	"7. Monthly revenue by employee",
	"8. Employees with monthly salary",
	"0. Exit",
}

// Run repete o menu até a opção 0 ou fim da entrada. Erros de um comando
// são logados e o menu continua.
func (m *Menu) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		fmt.Fprintln(m.out, "\nChoose an action:")
		for _, l := range menuLines {
			fmt.Fprintln(m.out, l)
		}

		choice, err := m.prompt("Enter your choice: ")
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		if choice == "0" {
			fmt.Fprintln(m.out, "Exiting program.")
			return nil
		}

		if err := m.dispatch(ctx, choice); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			m.log.Error("command_failed", "choice", choice, "err", err)
			fmt.Fprintf(m.out, "Error: %v\n", err)
		}
	}
}

func (m *Menu) dispatch(ctx context.Context, choice string) error {
	switch choice {
	case "1":
		return m.addEmployee(ctx)
	case "2":
		id, err := m.prompt("Enter employee ID: ")
		if err != nil {
			return err
		}
		return m.getEmployee(ctx, id)
	case "3":
		id, err := m.prompt("Enter employee ID to update: ")
		if err != nil {
			return err
		}
		return m.updateEmployee(ctx, id)
	case "4":
		id, err := m.prompt("Enter employee ID to delete: ")
		if err != nil {
			return err
		}
		return m.deleteEmployee(ctx, id)
	case "5":
		return m.totalCompanyCosts(ctx)
	case "6":
		date, err := m.prompt("Enter date (YYYY-MM-DD): ")
		if err != nil {
			return err
		}
		return m.dailyEntries(ctx, date)
	case "7":
		return m.monthlyRevenue(ctx)
	case "8":
		return m.monthlySalary(ctx)
	default:
		fmt.Fprintln(m.out, "Invalid choice. Please try again.")
		return nil
	}
}

func (m *Menu) prompt(label string) (string, error) {
	fmt.Fprint(m.out, label)
	line, err := m.in.ReadString('\n')
	if err != nil && (!errors.Is(err, io.EOF) || line == "") {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// withTimeout limita cada comando; OpTimeout zero não limita.
func (m *Menu) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if m.OpTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, m.OpTimeout)
}

func (m *Menu) notify(ctx context.Context, action string, id models.EmployeeID, name string) {
	if m.Events != nil {
		m.Events.Notify(ctx, action, id.Hex(), name)
	}
}
