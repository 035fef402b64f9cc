package main

import (
	"time"

	"github.com/spf13/cobra"
)

var waitCmd = &cobra.Command{
	Use:   "wait",
	Short: "Wait until the server answers its health probe",
	RunE: func(cmd *cobra.Command, args []string) error {
		timeout, _ := cmd.Flags().GetDuration("timeout")

		api, err := apiClient()

		if err != nil {
			return err
		}

		if err := api.WaitHealthy(cmd.Context(), timeout); err != nil {
			return err
		}

		cmd.Println("Server is healthy")
		return nil
	},
}

func init() {
	waitCmd.Flags().Duration("timeout", 60*time.Second, "wall-clock ceiling for the probe")
	rootCmd.AddCommand(waitCmd)
}
