// Package docs registra la especificación OpenAPI de la API en swag.
// swagger.json se regenera con `swag init -g cmd/api/main.go --outputTypes json`;
// el mismo archivo lo sirve la UI de /docs.
package docs

import (
	_ "embed"

	"github.com/swaggo/swag"
)

//go:embed swagger.json
var swaggerJSON string

// SwaggerInfo metadatos de la especificación.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Cartera API",
	Description:      "Reporte de cuentas por cobrar: facturas con antigüedad, KPIs, pagos y top de deudores.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  swaggerJSON,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
