package main

import (
	"fmt"

	"github.com/GunarsK-portfolio/recipe-service/internal/config"
	"github.com/GunarsK-portfolio/recipe-service/internal/database"
	"github.com/GunarsK-portfolio/recipe-service/internal/logger"
	"github.com/spf13/cobra"
)

func migrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:       "migrate [up|down|status]",
		Short:     "Apply, roll back or inspect schema migrations",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{database.CommandUp, database.CommandDown, database.CommandStatus},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			db, err := database.Connect(cmd.Context(), cfg.DatabaseURL, logger.New(cfg))
			if err != nil {
				return err
			}
			sqlDB, err := db.DB()
			if err != nil {
				return fmt.Errorf("failed to get sql.DB: %w", err)
			}
			defer sqlDB.Close()

			return database.Migrate(cmd.Context(), sqlDB, args[0])
		},
	}

	return cmd
}
