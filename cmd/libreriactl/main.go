// libreriactl opera el inventario de la librería desde la terminal contra la misma API
// REST que usa la consola web.
//
// Uso:
//
//	libreriactl alertas
//	libreriactl inventario --pv 2
//	libreriactl ajustar 15 -- -3
//	libreriactl vender 15 --cantidad 2
package main

import (
	"errors"
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errSilent) {
			fmt.Fprintln(os.Stderr, errorStyle.Render("✗ "+err.Error()))
		}
		os.Exit(1)
	}
}
