package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var reportsJSON bool

var reportsCmd = &cobra.Command{
	Use:     "reports",
	Aliases: []string{"report"},
	Short:   "Browse finished reports",
	Long:    `List, show, or delete reports archived at the end of each interview.`,
}

var reportsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List archived reports",
	Args:  cobra.NoArgs,
	RunE:  runReportsList,
}

var reportsShowCmd = &cobra.Command{
	Use:   "show [report-id]",
	Short: "Show every cell of a report",
	Long:  `Shows a report's cells in template order. A unique ID prefix is enough.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runReportsShow,
}

var reportsDeleteCmd = &cobra.Command{
	Use:   "delete [report-id]",
	Short: "Delete a report from the archive",
	Long:  `Removes a report from the archive. The spreadsheet file is left in place.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runReportsDelete,
}

func init() {
	reportsCmd.PersistentFlags().BoolVar(&reportsJSON, "json", false, "output as JSON")
	reportsCmd.AddCommand(reportsListCmd)
	reportsCmd.AddCommand(reportsShowCmd)
	reportsCmd.AddCommand(reportsDeleteCmd)
	rootCmd.AddCommand(reportsCmd)
}

func runReportsList(cmd *cobra.Command, _ []string) error {
	if reportService == nil {
		return errors.New("report service not configured")
	}

	summaries, err := reportService.List(context.Background())
	if err != nil {
		return fmt.Errorf("failed to list reports: %w", err)
	}

	if reportsJSON {
		return printJSON(cmd, summaries)
	}

	if len(summaries) == 0 {
		cmd.Println("No reports yet. Run 'fieldreport interview' to create one.")
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tDATE\tLOCATION\tCELLS\tFILE")
	for _, s := range summaries {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\n", shortID(s.SessionID), s.Date, s.Location, s.CellCount, s.OutputPath)
	}
	return w.Flush()
}

func runReportsShow(cmd *cobra.Command, args []string) error {
	if reportService == nil {
		return errors.New("report service not configured")
	}

	report, err := reportService.Get(context.Background(), args[0])
	if err != nil {
		return fmt.Errorf("failed to get report: %w", err)
	}

	if reportsJSON {
		return printJSON(cmd, report)
	}

	cmd.Printf("Report:    %s\n", report.SessionID)
	cmd.Printf("Date:      %s\n", report.Date)
	cmd.Printf("Location:  %s\n", report.Location)
	cmd.Printf("Weather:   %s\n", report.Weather)
	if report.OutputPath != "" {
		cmd.Printf("File:      %s\n", report.OutputPath)
	}
	if report.PublishedTo != "" {
		cmd.Printf("Published: %s\n", report.PublishedTo)
	}
	cmd.Println()

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	for _, coord := range report.Coordinates() {
		fmt.Fprintf(w, "  %s\t%s\n", coord, report.Cells[coord])
	}
	return w.Flush()
}

func runReportsDelete(cmd *cobra.Command, args []string) error {
	if reportService == nil {
		return errors.New("report service not configured")
	}

	if err := reportService.Delete(context.Background(), args[0]); err != nil {
		return fmt.Errorf("failed to delete report: %w", err)
	}

	cmd.Printf("Deleted report %s\n", args[0])
	return nil
}

func printJSON(cmd *cobra.Command, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	cmd.Println(string(data))
	return nil
}
