package ports

import (
	"context"

	"github.com/jhoicas/cartera-api/internal/domain/repository"
)

// ConnRunner define el puerto de acceso a la base por petición: adquiere un recurso
// de conexión, entrega los repositorios atados a él y lo libera al volver fn,
// en cualquier camino de salida.
type ConnRunner interface {
	WithConn(ctx context.Context, fn func(repos repository.Repositories) error) error
}
