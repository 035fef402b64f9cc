package main

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/jobboard-dev/jobboard/internal/client"
	"github.com/spf13/cobra"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("12")).
			MarginTop(1).
			MarginBottom(1)

	activeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10"))

	inactiveStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("8"))
)

var jobsCmd = &cobra.Command{
	Use:   "jobs",
	Short: "Manage job postings",
}

var jobsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List job postings",
	RunE: func(cmd *cobra.Command, args []string) error {
		api, err := apiClient()

		if err != nil {
			return err
		}

		filter := client.JobFilter{}
		filter.Search, _ = cmd.Flags().GetString("search")
		filter.Location, _ = cmd.Flags().GetString("location")
		filter.Type, _ = cmd.Flags().GetString("type")
		filter.Status, _ = cmd.Flags().GetString("status")
		filter.Page, _ = cmd.Flags().GetInt("page")
		filter.Limit, _ = cmd.Flags().GetInt("limit")

		all, _ := cmd.Flags().GetBool("all")

		var page client.JobPage

		if all {
			page, err = api.AdminJobs(cmd.Context(), filter)
		} else {
			page, err = api.Jobs(cmd.Context(), filter)
		}

		if err != nil {
			return err
		}

		cmd.Println(titleStyle.Render(fmt.Sprintf("Jobs (page %d of %d, %d total)", page.CurrentPage, page.TotalPages, page.Total)))

		for _, job := range page.Jobs {
			state := activeStyle.Render("active")

			if job.IsActive != nil && !*job.IsActive {
				state = inactiveStyle.Render("inactive")
			}

			cmd.Printf("%4d  %-40s %-24s %s %s\n",
				job.ID, job.Title, job.Company, state,
				dimStyle.Render(job.Location))
		}

		return nil
	},
}

var jobsToggleCmd = &cobra.Command{
	Use:   "toggle <id>",
	Short: "Flip a job's active flag",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseUint(args[0], 10, 32)

		if err != nil {
			return fmt.Errorf("invalid job ID %q", args[0])
		}

		api, err := apiClient()

		if err != nil {
			return err
		}

		message, _, err := api.ToggleJobStatus(cmd.Context(), uint(id))

		if err != nil {
			return err
		}

		cmd.Println(message)
		return nil
	},
}

var jobsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Permanently delete a job",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseUint(args[0], 10, 32)

		if err != nil {
			return fmt.Errorf("invalid job ID %q", args[0])
		}

		api, err := apiClient()

		if err != nil {
			return err
		}

		if err := api.DeleteJob(cmd.Context(), uint(id)); err != nil {
			return err
		}

		cmd.Println("Job permanently deleted")
		return nil
	},
}

func init() {
	jobsListCmd.Flags().Bool("all", false, "include inactive jobs (admin)")
	jobsListCmd.Flags().String("search", "", "free-text search")
	jobsListCmd.Flags().String("location", "", "location substring filter")
	jobsListCmd.Flags().String("type", "", "job type filter")
	jobsListCmd.Flags().String("status", "", "status filter for --all: all, active, inactive")
	jobsListCmd.Flags().Int("page", 1, "page number")
	jobsListCmd.Flags().Int("limit", 10, "page size")

	jobsCmd.AddCommand(jobsListCmd)
	jobsCmd.AddCommand(jobsToggleCmd)
	jobsCmd.AddCommand(jobsDeleteCmd)
	rootCmd.AddCommand(jobsCmd)
}
