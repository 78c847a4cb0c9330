package main

import (
	"github.com/ManelMostefaoui/E-Doc-sub002/cmd/bootstrap"

	"github.com/sirupsen/logrus"
)

// @title E-Doc Clinic API
// @version 1.0
// @description Clinic administration: accounts, patient records and consultation workflow.
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	app, err := bootstrap.New()
	if err != nil {
		logrus.Fatalf("Failed to initialize application: %v", err)
	}

	app.Run()
}
