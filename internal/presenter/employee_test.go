package presenter

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Werneck0live/office-admin/internal/models"
)

func TestWriteEmployee(t *testing.T) {
	svc := models.NewID[models.BuildingService]()
	e := &models.BuildingEmployee{
		ID:                 models.NewID[models.BuildingEmployee](),
		EmployeeCode:       "NVB003",
		FullName:           "Tran Van E",
		Birthdate:          time.Date(1988, 4, 20, 0, 0, 0, 0, time.UTC),
		Level:              4,
		ServicesSupervised: []models.ServiceID{svc},
		SalaryRate:         0.012,
	}
	var buf bytes.Buffer
	require.NoError(t, WriteEmployee(&buf, e))

	out := buf.String()
	assert.Contains(t, out, e.ID.Hex())
	assert.Contains(t, out, "1988-04-20")
	assert.Contains(t, out, "["+svc.Hex()+"]")
	assert.Contains(t, out, "0.012")
	assert.Regexp(t, `level:\s+4\n`, out)
}
