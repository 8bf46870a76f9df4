// Package web empaqueta el tablero HTML de cartera servido en "/".
package web

import (
	"embed"
	"io/fs"
)

//go:embed index.html static
var content embed.FS

// FS devuelve el sistema de archivos del tablero (index.html + static/).
func FS() fs.FS {
	return content
}
