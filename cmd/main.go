package main

import "github.com/adanyl0v/go-task-manager/internal/app"

func main() {
	app.InitDefaultLogger()
	app.MustReadConfig()
	app.MustInitApplicationLogger()

	app.MustConnectPostgres()
	defer app.DisconnectPostgres()

	app.MustListenAndServeHTTP()
}
