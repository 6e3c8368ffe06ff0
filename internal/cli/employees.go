package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/Werneck0live/office-admin/internal/broker"
	"github.com/Werneck0live/office-admin/internal/models"
	"github.com/Werneck0live/office-admin/internal/presenter"
	"github.com/Werneck0live/office-admin/internal/repository"
)

// Valores fixos usados pelas opções 1 e 3 do menu.
const updatedPhone = "0912341111"

func sampleEmployee() models.BuildingEmployee {
	return models.BuildingEmployee{
		EmployeeCode:       "NVB003",
		FullName:           "Tran Van E",
		Birthdate:          time.Date(1988, 4, 20, 0, 0, 0, 0, time.UTC),
		Address:            "789 đường C",
		Phone:              "0913456789",
		Level:              4,
		Position:           "Bảo vệ",
		ServicesSupervised: []models.ServiceID{},
		SalaryRate:         0.012,
	}
}

func (m *Menu) addEmployee(ctx context.Context) error {
	ctx, cancel := m.withTimeout(ctx)
	defer cancel()

	e := sampleEmployee()
	if _, err := m.Employees.Create(ctx, &e); err != nil {
		return fmt.Errorf("add employee: %w", err)
	}
	fmt.Fprintln(m.out, "New building employee added:")
	m.notify(ctx, broker.ActionEmployeeCreated, e.ID, e.FullName)
	return presenter.WriteEmployee(m.out, &e)
}

func (m *Menu) getEmployee(ctx context.Context, rawID string) error {
	id, ok := m.parseEmployeeID(rawID)
	if !ok {
		return nil
	}
	ctx, cancel := m.withTimeout(ctx)
	defer cancel()

	e, err := m.Employees.GetByID(ctx, id)
	if m.notFound(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("get employee: %w", err)
	}
	fmt.Fprintln(m.out, "Employee details:")
	return presenter.WriteEmployee(m.out, e)
}

func (m *Menu) updateEmployee(ctx context.Context, rawID string) error {
	id, ok := m.parseEmployeeID(rawID)
	if !ok {
		return nil
	}
	ctx, cancel := m.withTimeout(ctx)
	defer cancel()

	e, err := m.Employees.Update(ctx, id, bson.M{"phone": updatedPhone})
	if m.notFound(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("update employee: %w", err)
	}
	fmt.Fprintln(m.out, "Updated employee:")
	m.notify(ctx, broker.ActionEmployeeUpdated, e.ID, e.FullName)
	return presenter.WriteEmployee(m.out, e)
}

func (m *Menu) deleteEmployee(ctx context.Context, rawID string) error {
	id, ok := m.parseEmployeeID(rawID)
	if !ok {
		return nil
	}
	ctx, cancel := m.withTimeout(ctx)
	defer cancel()

	err := m.Employees.Delete(ctx, id)
	if m.notFound(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("delete employee: %w", err)
	}
	fmt.Fprintf(m.out, "Deleted employee with ID: %s\n", id.Hex())
	m.notify(ctx, broker.ActionEmployeeDeleted, id, "")
	return nil
}

// Um id mal formado não existe no banco; é tratado como não encontrado.
func (m *Menu) parseEmployeeID(raw string) (models.EmployeeID, bool) {
	id, err := models.ParseID[models.BuildingEmployee](raw)
	if err != nil {
		m.log.Debug("invalid_employee_id", "raw", raw, "err", err)
		fmt.Fprintln(m.out, "No employee found with that ID")
		return id, false
	}
	return id, true
}

func (m *Menu) notFound(err error) bool {
	if errors.Is(err, repository.ErrNotFound) {
		fmt.Fprintln(m.out, "No employee found with that ID")
		return true
	}
	return false
}
