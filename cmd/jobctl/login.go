package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in and persist the session",
	RunE: func(cmd *cobra.Command, args []string) error {
		email, _ := cmd.Flags().GetString("email")
		password, _ := cmd.Flags().GetString("password")

		api, err := apiClient()

		if err != nil {
			return err
		}

		user, err := api.Login(cmd.Context(), email, password)

		if err != nil {
			return err
		}

		cmd.Printf("Logged in as %s (%s)\n", user.Name, user.Role)
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Clear the persisted session",
	RunE: func(cmd *cobra.Command, args []string) error {
		api, err := apiClient()

		if err != nil {
			return err
		}

		if err := api.Session.Logout(); err != nil {
			return fmt.Errorf("failed to clear session: %w", err)
		}

		cmd.Println("Logged out")
		return nil
	},
}

func init() {
	loginCmd.Flags().String("email", "", "account email")
	loginCmd.Flags().String("password", "", "account password")
	loginCmd.MarkFlagRequired("email")
	loginCmd.MarkFlagRequired("password")
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
}
