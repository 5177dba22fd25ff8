package main

import (
	"api/internal/configuration"
	"api/internal/core"
	"api/internal/database"

	"go.uber.org/zap"
)

func main() {
	zap.ReplaceGlobals(zap.Must(zap.NewProduction()))

	config := configuration.Read()
	core.NewLogger(config.App.LogLevel)

	db := database.InitDB(config.Database)

	core.CreateOwnerUser(db, config)

	core.StartHTTPServer(config, db)
}
