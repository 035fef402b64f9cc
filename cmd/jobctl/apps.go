package main

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var statusStyles = map[string]lipgloss.Style{
	"pending":  lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	"reviewed": lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
	"accepted": lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	"rejected": lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
}

func renderStatus(status string) string {
	if style, ok := statusStyles[status]; ok {
		return style.Render(status)
	}
	return status
}

var appsCmd = &cobra.Command{
	Use:   "apps",
	Short: "Review submitted applications",
}

var appsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all applications (admin)",
	RunE: func(cmd *cobra.Command, args []string) error {
		api, err := apiClient()

		if err != nil {
			return err
		}

		applications, err := api.Applications(cmd.Context())

		if err != nil {
			return err
		}

		cmd.Println(titleStyle.Render(fmt.Sprintf("Applications (%d)", len(applications))))

		for _, application := range applications {
			jobLabel := fmt.Sprintf("job %d", application.JobID)

			if application.Job != nil {
				jobLabel = fmt.Sprintf("%s @ %s", application.Job.Title, application.Job.Company)
			}

			cmd.Printf("%4d  %-10s %-28s %-28s %s\n",
				application.ID,
				renderStatus(application.Status),
				application.Name,
				application.Email,
				dimStyle.Render(jobLabel))
		}

		return nil
	},
}

var appsStatusCmd = &cobra.Command{
	Use:   "status <id> <pending|reviewed|accepted|rejected>",
	Short: "Set an application's status (admin)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseUint(args[0], 10, 32)

		if err != nil {
			return fmt.Errorf("invalid application ID %q", args[0])
		}

		api, err := apiClient()

		if err != nil {
			return err
		}

		application, err := api.UpdateApplicationStatus(cmd.Context(), uint(id), args[1])

		if err != nil {
			return err
		}

		cmd.Printf("Application %d is now %s\n", application.ID, renderStatus(application.Status))
		return nil
	},
}

func init() {
	appsCmd.AddCommand(appsListCmd)
	appsCmd.AddCommand(appsStatusCmd)
	rootCmd.AddCommand(appsCmd)
}
