package cmd

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/good-yellow-bee/siteboard/internal/backend"
)

var projectCmd = &cobra.Command{
	Use:   "project",
	Short: "Inspect projects",
}

var projectListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all projects",
	RunE:  runProjectList,
}

var projectShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a project and its team",
	Args:  cobra.ExactArgs(1),
	RunE:  runProjectShow,
}

func init() {
	projectCmd.AddCommand(projectListCmd)
	projectCmd.AddCommand(projectShowCmd)
	rootCmd.AddCommand(projectCmd)
}

func runProjectList(cmd *cobra.Command, args []string) error {
	api, err := apiClient()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	projects, err := api.ListProjects(ctx)
	if err != nil {
		return fmt.Errorf("list projects: %s", backend.Detail(err))
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tSTATUS\tSTART\tEND")
	for _, p := range projects {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n", p.ID, p.Name, p.Status.Label(), p.StartDate, p.EndDate)
	}
	return w.Flush()
}

func runProjectShow(cmd *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid project id %q", args[0])
	}

	api, err := apiClient()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	project, err := api.GetProject(ctx, id)
	if err != nil {
		return fmt.Errorf("get project: %s", backend.Detail(err))
	}
	members, err := api.ListMembers(ctx, id)
	if err != nil {
		return fmt.Errorf("list members: %s", backend.Detail(err))
	}

	fmt.Printf("Project:  %s (#%d)\n", project.Name, project.ID)
	fmt.Printf("Status:   %s\n", project.Status.Label())
	if project.Address != "" {
		fmt.Printf("Address:  %s\n", project.Address)
	}
	if project.StartDate != "" || project.EndDate != "" {
		fmt.Printf("Schedule: %s - %s\n", project.StartDate, project.EndDate)
	}
	if project.Description != "" {
		fmt.Printf("\n%s\n", project.Description)
	}

	fmt.Printf("\nTeam (%d):\n", len(members))
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	for _, m := range members {
		fmt.Fprintf(w, "  %s\t%s\t%s\n", m.DisplayName(), m.Email, m.Role.Label())
	}
	return w.Flush()
}
