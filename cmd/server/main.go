package main

import (
	"log"

	_ "kanbanase/docs"
	"kanbanase/internal/config"
	"kanbanase/internal/server"
)

// @title           Kanbanase API
// @version         1.0
// @description     Backend API for kanban board and user account management.

// @host      localhost:8080
// @BasePath  /

// @schemes http
func main() {
	cfg := config.Load()

	s, err := server.Init(cfg)
	if err != nil {
		log.Fatalf("❌ Server initialization failed: %v", err)
	}

	s.Run()
}
