package main

import "github.com/init-pkg/wrapped-reports/internal/bootstrap"

//go:generate swag init -g cmd/server/main.go -d ../../ -o ../../docs --parseInternal

// @title			Wrapped Reports API
// @version		1.0
// @description	Turns customer spreadsheets into wrapped-style slide reports.
// @BasePath		/
func main() {
	bootstrap.Run()
}
