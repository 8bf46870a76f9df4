package postgres

import (
	"context"
	_ "embed"
	"fmt"
)

//go:embed seed.sql
var seedSQL string

// Seed carga clientes, facturas y pagos de demostración. Es idempotente:
// las filas ya existentes no se tocan.
func Seed(ctx context.Context, q Querier) error {
	// Sin argumentos pgx usa el protocolo simple y acepta varias sentencias.
	if _, err := q.Exec(ctx, seedSQL); err != nil {
		return fmt.Errorf("seed: %w", err)
	}
	return nil
}
