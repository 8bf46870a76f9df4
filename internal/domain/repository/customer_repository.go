package repository

import (
	"context"

	"github.com/jhoicas/cartera-api/internal/domain/entity"
)

// CustomerRepository define el puerto de lectura de clientes.
type CustomerRepository interface {
	// List devuelve todos los clientes ordenados por nombre.
	List(ctx context.Context) ([]*entity.Customer, error)
}
