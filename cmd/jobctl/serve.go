package main

import (
	"log"
	"os"

	"github.com/jobboard-dev/jobboard/db"
	"github.com/jobboard-dev/jobboard/internal/auth"
	"github.com/jobboard-dev/jobboard/internal/router"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the job board API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := godotenv.Load(); err != nil {
			log.Println("No .env file found, using environment")
		}

		if err := auth.InitJWTSecret(); err != nil {
			return err
		}

		dsn, err := databaseURL()

		if err != nil {
			return err
		}

		if err := db.ConnectDatabase(dsn); err != nil {
			return err
		}

		if err := db.MigrateDatabase(); err != nil {
			return err
		}

		port, _ := cmd.Flags().GetString("port")

		if port == "" {
			if port = os.Getenv("PORT"); port == "" {
				port = "5000"
			}
		}

		return router.NewRouter().Run(":" + port)
	},
}

func init() {
	serveCmd.Flags().String("port", "", "port to listen on (defaults to PORT or 5000)")
	rootCmd.AddCommand(serveCmd)
}
