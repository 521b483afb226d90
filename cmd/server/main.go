package main

import (
	"log"

	_ "mytodo/docs"
	"mytodo/internal/config"
	"mytodo/internal/logger"
	"mytodo/internal/server"
)

// @title           MyTodo API
// @version         1.0
// @description     REST API for todos and projects.

// @host      localhost:8080
// @BasePath  /api/v1

// @schemes http
func main() {
	cfg := config.Load()
	appLog := logger.New(cfg.LogFile, cfg.Debug)
	defer appLog.Sync()

	s, err := server.Init(cfg, appLog)
	if err != nil {
		log.Fatalf("server initialization failed: %v", err)
	}

	s.Run()
}
