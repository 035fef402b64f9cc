package main

import (
	"fmt"

	"github.com/jobboard-dev/jobboard/db"
	"github.com/jobboard-dev/jobboard/internal/seed"
	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the database with sample jobs and an admin account",
	RunE: func(cmd *cobra.Command, args []string) error {
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

		created, err := seed.Jobs(db.DB)

		if err != nil {
			return fmt.Errorf("failed to seed jobs: %w", err)
		}

		cmd.Printf("Seeded %d jobs\n", created)

		adminEmail, _ := cmd.Flags().GetString("admin-email")
		adminPassword, _ := cmd.Flags().GetString("admin-password")
		adminName, _ := cmd.Flags().GetString("admin-name")

		if adminEmail == "" {
			return nil
		}

		if adminPassword == "" {
			return fmt.Errorf("--admin-password is required when --admin-email is set")
		}

		if err := seed.EnsureAdmin(db.DB, adminName, adminEmail, adminPassword); err != nil {
			return fmt.Errorf("failed to ensure admin account: %w", err)
		}

		cmd.Printf("Admin account ready: %s\n", adminEmail)
		return nil
	},
}

func init() {
	seedCmd.Flags().String("admin-email", "", "admin account email to create or promote")
	seedCmd.Flags().String("admin-password", "", "password for a newly created admin account")
	seedCmd.Flags().String("admin-name", "Administrator", "display name for a newly created admin account")
	rootCmd.AddCommand(seedCmd)
}
