package main

import (
	"context"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"asafs_backend/internals/configs"
	database "asafs_backend/internals/databases"
)

// openDB loads the environment and returns a live connection.
func openDB(ctx context.Context) (*gorm.DB, zerolog.Logger, error) {
	cfg, err := configs.Load(envFile)
	if err != nil {
		return nil, zerolog.Nop(), err
	}
	log := configs.NewLogger(cfg.Env)

	db, err := database.ConnectDB(cfg, log)
	if err != nil {
		return nil, log, err
	}
	if err := database.Ping(ctx, db); err != nil {
		_ = database.Close(db)
		return nil, log, err
	}
	return db, log, nil
}
