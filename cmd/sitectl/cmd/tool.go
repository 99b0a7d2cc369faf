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

var toolCmd = &cobra.Command{
	Use:   "tool",
	Short: "Inspect tools",
}

var toolShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a tool and its usage history",
	Args:  cobra.ExactArgs(1),
	RunE:  runToolShow,
}

func init() {
	toolCmd.AddCommand(toolShowCmd)
	rootCmd.AddCommand(toolCmd)
}

func runToolShow(cmd *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid tool id %q", args[0])
	}

	api, err := apiClient()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	tool, err := api.GetTool(ctx, id)
	if err != nil {
		return fmt.Errorf("get tool: %s", backend.Detail(err))
	}

	fmt.Printf("Tool:   %s (#%d)\n", tool.Name, tool.ID)
	if tool.Brand != "" || tool.Model != "" {
		fmt.Printf("Make:   %s %s\n", tool.Brand, tool.Model)
	}
	if tool.SerialNumber != "" {
		fmt.Printf("Serial: %s\n", tool.SerialNumber)
	}
	fmt.Printf("Status: %s\n", tool.Status.Label())
	if tool.CurrentUser != nil {
		fmt.Printf("Held by: %s\n", tool.CurrentUser.DisplayName())
	}

	logs := tool.HistoryNewestFirst()
	fmt.Printf("\nHistory (%d):\n", len(logs))
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	for _, l := range logs {
		fmt.Fprintf(w, "  %s\t%s\t%s\t%s\n",
			l.Timestamp.Local().Format("2006-01-02 15:04"), l.Action, l.UserName, l.Notes)
	}
	return w.Flush()
}
