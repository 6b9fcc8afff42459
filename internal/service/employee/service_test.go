package employee

import (
	"context"
	"errors"
	"testing"

	"github.com/adspro/dashboard-backend-go/internal/domain/employee"
	"github.com/adspro/dashboard-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const employeeID = "65a1b2c3d4e5f6a7b8c9d0e1"

type fakeEmployeeRepository struct {
	list    []employee.Employee
	created employee.CreateEmployeeRequest
	updated employee.UpdateEmployeeRequest
	deleted string
}

func (f *fakeEmployeeRepository) List(ctx context.Context) ([]employee.Employee, error) {
	return f.list, nil
}

func (f *fakeEmployeeRepository) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.Employee, error) {
	f.created = req
	return employee.Employee{ID: employeeID, Name: req.Name, Email: req.Email, Role: req.Role, Status: req.Status}, nil
}

func (f *fakeEmployeeRepository) Update(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.Employee, error) {
	f.updated = req
	return employee.Employee{ID: req.ID, Status: *req.Status}, nil
}

func (f *fakeEmployeeRepository) Delete(ctx context.Context, id string) error {
	f.deleted = id
	return nil
}

func TestListActive(t *testing.T) {
	repo := &fakeEmployeeRepository{list: []employee.Employee{
		{ID: "1", Name: "Alice", Status: employee.StatusActive},
		{ID: "2", Name: "Bob", Status: employee.StatusNonActive},
	}}
	svc := NewEmployeeService(repo)

	all, err := svc.List(context.Background())
	require.NoError(t, err)
	active, err := svc.ListActive(context.Background())
	require.NoError(t, err)

	assert.Len(t, all, 2)
	require.Len(t, active, 1)
	assert.Equal(t, "Alice", active[0].Name)
}

func TestCreate_DefaultsStatusAndRole(t *testing.T) {
	repo := &fakeEmployeeRepository{}
	svc := NewEmployeeService(repo)

	resp, err := svc.Create(context.Background(), employee.CreateEmployeeRequest{
		Name:   "Cara",
		Email:  "cara@adspro.com",
		Status: employee.StatusNonActive,
	})

	require.NoError(t, err)
	assert.Equal(t, employee.StatusActive, repo.created.Status)
	assert.Equal(t, employee.DefaultRole, resp.Role)
	assert.Equal(t, employeeID, resp.ID)
}

func TestCreate_InvalidEmail(t *testing.T) {
	svc := NewEmployeeService(&fakeEmployeeRepository{})

	_, err := svc.Create(context.Background(), employee.CreateEmployeeRequest{Name: "Cara", Email: "cara"})

	var validationErrs validator.ValidationErrors
	require.True(t, errors.As(err, &validationErrs))
	assert.Equal(t, "email must be a valid email address", validationErrs.ToMap()["email"])
}

func TestUpdate_Status(t *testing.T) {
	repo := &fakeEmployeeRepository{}
	svc := NewEmployeeService(repo)
	status := employee.StatusNonActive

	resp, err := svc.Update(context.Background(), employee.UpdateEmployeeRequest{ID: employeeID, Status: &status})

	require.NoError(t, err)
	assert.Equal(t, employee.StatusNonActive, resp.Status)
	assert.Equal(t, employeeID, repo.updated.ID)
}

func TestUpdate_EmptyBody(t *testing.T) {
	svc := NewEmployeeService(&fakeEmployeeRepository{})

	_, err := svc.Update(context.Background(), employee.UpdateEmployeeRequest{ID: employeeID})

	var validationErrs validator.ValidationErrors
	require.True(t, errors.As(err, &validationErrs))
	assert.Contains(t, validationErrs.ToMap(), "body")
}

func TestDelete_InvalidID(t *testing.T) {
	repo := &fakeEmployeeRepository{}
	svc := NewEmployeeService(repo)

	assert.ErrorIs(t, svc.Delete(context.Background(), "123"), employee.ErrInvalidEmployeeID)
	require.NoError(t, svc.Delete(context.Background(), employeeID))
	assert.Equal(t, employeeID, repo.deleted)
}
