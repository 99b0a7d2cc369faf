package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/good-yellow-bee/siteboard/internal/backend"
)

var drawingOutFile string

var drawingCmd = &cobra.Command{
	Use:   "drawing",
	Short: "Inspect and download drawings",
}

var drawingListCmd = &cobra.Command{
	Use:   "list <project-id>",
	Short: "List a project's drawings",
	Args:  cobra.ExactArgs(1),
	RunE:  runDrawingList,
}

var drawingDownloadCmd = &cobra.Command{
	Use:   "download <id>",
	Short: "Download a drawing's file",
	Args:  cobra.ExactArgs(1),
	RunE:  runDrawingDownload,
}

func init() {
	drawingDownloadCmd.Flags().StringVarP(&drawingOutFile, "output", "O", "", "output file (defaults to the server filename)")
	drawingCmd.AddCommand(drawingListCmd)
	drawingCmd.AddCommand(drawingDownloadCmd)
	rootCmd.AddCommand(drawingCmd)
}

func runDrawingList(cmd *cobra.Command, args []string) error {
	projectID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid project id %q", args[0])
	}

	api, err := apiClient()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	drawings, err := api.ListDrawings(ctx, projectID)
	if err != nil {
		return fmt.Errorf("list drawings: %s", backend.Detail(err))
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tFILE\tREV\tDISCIPLINE\tSTATUS\tSIZE")
	for _, d := range drawings {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\n",
			d.ID, d.Filename, d.Revision, d.Discipline, d.Status.Label(), d.SizeString())
	}
	return w.Flush()
}

func runDrawingDownload(cmd *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid drawing id %q", args[0])
	}

	api, err := apiClient()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	dl, err := api.DownloadDrawing(ctx, id)
	if err != nil {
		return fmt.Errorf("download drawing: %s", backend.Detail(err))
	}
	defer dl.Body.Close()

	name := drawingOutFile
	if name == "" {
		name = dl.Filename
	}
	if name == "" {
		name = fmt.Sprintf("drawing-%d", id)
	}

	out, err := os.Create(name)
	if err != nil {
		return fmt.Errorf("create %s: %w", name, err)
	}
	defer out.Close()

	n, err := io.Copy(out, dl.Body)
	if err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}

	fmt.Printf("Saved %s (%d bytes)\n", name, n)
	return nil
}
