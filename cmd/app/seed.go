package main

import (
	"fmt"

	"burger/cmd"
	"burger/internal/adapters/in/catalogfile"
	"burger/internal/adapters/out/postgres"
	"burger/internal/core/application/usecases/commands"

	"github.com/labstack/gommon/log"
	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Write the ingredient catalog file into the database",
	RunE: func(c *cobra.Command, _ []string) error {
		envFile, _ := c.Flags().GetString("env-file")
		configs, err := cmd.LoadConfig(envFile)
		if err != nil {
			return err
		}

		file, _ := c.Flags().GetString("file")
		if file == "" {
			file = configs.CatalogFile
		}

		ings, err := catalogfile.LoadFile(file)
		if err != nil {
			return err
		}
		seed, err := commands.NewSeedCatalogCommand(ings)
		if err != nil {
			return err
		}

		db, err := cmd.OpenDatabase(configs)
		if err != nil {
			return err
		}
		defer func() {
			_ = cmd.CloseDatabase(db)
		}()

		handler := commands.NewSeedCatalogCommandHandler(postgres.NewGormUnitOfWorkFactory(db))
		written, err := handler.Handle(c.Context(), seed)
		if err != nil {
			return fmt.Errorf("seed catalog: %w", err)
		}

		log.Infof("seeded %d ingredients from %s", written, file)
		return nil
	},
}

func init() {
	seedCmd.Flags().String("file", "", "Catalog file (YAML or JSON); defaults to CATALOG_FILE")
}
