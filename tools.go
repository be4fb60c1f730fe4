//go:build tools

package main

// Fija la versión del generador de docs/swagger.json.
import (
	_ "github.com/swaggo/swag/cmd/swag"
)
