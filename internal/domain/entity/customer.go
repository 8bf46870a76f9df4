package entity

// Customer representa un cliente deudor. Se crea fuera de este servicio;
// aquí solo se lee.
type Customer struct {
	ID   int64
	Name string
}
