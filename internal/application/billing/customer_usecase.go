package billing

import (
	"context"
	"fmt"

	"github.com/jhoicas/cartera-api/internal/application/dto"
	"github.com/jhoicas/cartera-api/internal/application/ports"
	"github.com/jhoicas/cartera-api/internal/domain/entity"
	"github.com/jhoicas/cartera-api/internal/domain/repository"
)

// CustomerUseCase casos de uso para clientes (solo lectura).
type CustomerUseCase struct {
	runner ports.ConnRunner
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(runner ports.ConnRunner) *CustomerUseCase {
	return &CustomerUseCase{runner: runner}
}

// List lista todos los clientes ordenados por nombre.
func (uc *CustomerUseCase) List(ctx context.Context) ([]dto.CustomerResponse, error) {
	var list []*entity.Customer
	err := uc.runner.WithConn(ctx, func(repos repository.Repositories) error {
		var err error
		list, err = repos.Customers.List(ctx)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("billing: clientes: %w", err)
	}
	out := make([]dto.CustomerResponse, 0, len(list))
	for _, c := range list {
		out = append(out, dto.CustomerResponse{CustomerID: c.ID, Name: c.Name})
	}
	return out, nil
}
