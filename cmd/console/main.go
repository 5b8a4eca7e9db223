package main

import (
	"github.com/jmvillota/product-console/internal/app"
)

func main() {
	app.Invoke(
		app.LoadCatalog,
	).Run()
}
