package handlers

import (
	"errors"
	"strings"
)

func validateCreateDTO(d EmployeeCreateDTO) error {
	if strings.TrimSpace(d.EmployeeCode) == "" {
		return errors.New("employee_code is required")
	}
	if strings.TrimSpace(d.FullName) == "" {
		return errors.New("full_name is required")
	}
	if d.Level < 0 {
		return errors.New("level must be >= 0")
	}
	return validateSalaryRate(d.SalaryRate)
}

func validatePatchDTO(d EmployeePatchDTO) error {
	if d.EmployeeCode != nil && strings.TrimSpace(*d.EmployeeCode) == "" {
		return errors.New("employee_code must not be empty")
	}
	if d.FullName != nil && strings.TrimSpace(*d.FullName) == "" {
		return errors.New("full_name must not be empty")
	}
	if d.Level != nil && *d.Level < 0 {
		return errors.New("level must be >= 0")
	}
	if d.SalaryRate != nil {
		return validateSalaryRate(*d.SalaryRate)
	}
	return nil
}

// salary_rate é multiplicador sobre a receita, não valor monetário
func validateSalaryRate(r float64) error {
	if r < 0 || r > 1 {
		return errors.New("salary_rate must be between 0 and 1")
	}
	return nil
}
