// cmd/cellsign/main.go
package main

import (
	"cellsign/internal/app"
	"cellsign/internal/appshell"
)

func main() {
	appshell.Main(app.RunContext)
}
