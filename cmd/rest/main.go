package main

import (
	"log"

	"chat-relay-be/internal/bootstrap"
	"chat-relay-be/internal/config"
	"chat-relay-be/internal/model"
	"chat-relay-be/internal/server"
	"chat-relay-be/pkg/database"
)

func main() {
	// 1. Load Configuration
	cfg := config.Load()

	// 2. Initialize Database
	gormDB, err := database.NewSqliteDB(cfg.Database.Path)
	if err != nil {
		log.Panicf("Unable to open SQLite DB: %v", err)
	}

	// 3. Idempotent schema creation, the only startup migration there is
	if err := gormDB.AutoMigrate(&model.Turn{}); err != nil {
		log.Panicf("Unable to migrate schema: %v", err)
	}

	// 4. Bootstrap Dependencies (Container)
	container := bootstrap.NewContainer(gormDB, cfg)

	// 5. Initialize Server
	srv := server.New(cfg, container)

	// 6. Run Server
	log.Fatal(srv.Run())
}
