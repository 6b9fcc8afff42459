package rest

import (
	"context"
	"fmt"

	"github.com/adspro/dashboard-backend-go/internal/domain/employee"
	"github.com/adspro/dashboard-backend-go/internal/pkg/backend"
)

const employeesPath = "/employees"

type employeeRepositoryImpl struct {
	client *backend.Client
}

func NewEmployeeRepository(client *backend.Client) employee.EmployeeRepository {
	return &employeeRepositoryImpl{client: client}
}

// List implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) List(ctx context.Context) ([]employee.Employee, error) {
	sess, err := GetSession(ctx)
	if err != nil {
		return nil, err
	}

	var list []employee.Employee
	if err := r.client.Get(ctx, sess, employeesPath, nil, &list); err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	return list, nil
}

// Create implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.Employee, error) {
	sess, err := GetSession(ctx)
	if err != nil {
		return employee.Employee{}, err
	}

	var created employee.Employee
	if err := r.client.Post(ctx, sess, employeesPath, req, &created); err != nil {
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}
	return created, nil
}

// Update implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Update(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.Employee, error) {
	sess, err := GetSession(ctx)
	if err != nil {
		return employee.Employee{}, err
	}

	var updated employee.Employee
	if err := r.client.Patch(ctx, sess, itemPath(employeesPath, req.ID), req, &updated); err != nil {
		return employee.Employee{}, fmt.Errorf("failed to update employee %s: %w", req.ID, mapNotFound(err, employee.ErrEmployeeNotFound, req.ID))
	}
	return updated, nil
}

// Delete implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Delete(ctx context.Context, id string) error {
	sess, err := GetSession(ctx)
	if err != nil {
		return err
	}

	if err := r.client.Delete(ctx, sess, itemPath(employeesPath, id), nil); err != nil {
		return fmt.Errorf("failed to delete employee %s: %w", id, mapNotFound(err, employee.ErrEmployeeNotFound, id))
	}
	return nil
}
