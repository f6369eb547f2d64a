package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/IshanviChauhan/Interview-Bot/internal/store"
)

var historyCommand = &cobra.Command{
	Use:   "history",
	Short: "List past interview sessions",
	Long: `Lists sessions saved in the sessions directory, newest first.
With --db-url (or DATABASE_URL), lists the PostgreSQL archive instead.`,
	RunE: runHistoryCmd,
}

var (
	historySessionsDir string
	historyDatabaseURL string
)

func init() {
	historyCommand.Flags().StringVar(&historySessionsDir, "sessions-dir", "interview_sessions", "Directory for saved session JSON files")
	historyCommand.Flags().StringVar(&historyDatabaseURL, "db-url", "", "PostgreSQL connection URL (optional, defaults to DATABASE_URL env var)")

	rootCmd.AddCommand(historyCommand)
}

func runHistoryCmd(_ *cobra.Command, _ []string) error {
	databaseURL := historyDatabaseURL
	if databaseURL == "" {
		databaseURL = os.Getenv("DATABASE_URL")
	}
	if databaseURL != "" {
		return printArchiveHistory(context.Background(), databaseURL)
	}
	return printFileHistory(historySessionsDir)
}

func printFileHistory(dir string) error {
	fileStore, err := store.NewFileStore(dir, zap.NewNop())
	if err != nil {
		return err
	}

	entries, err := fileStore.History()
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Printf("No sessions found in %s\n", fileStore.Dir())
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "TIMESTAMP\tROLE\tDOMAIN\tTYPE\tSCORE\tFILE")
	for _, e := range entries {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%.0f%%\t%s\n",
			e.Timestamp, e.Role, orDash(e.Domain), e.InterviewType, e.AverageScore*100, e.Filename)
	}
	return w.Flush()
}

func printArchiveHistory(ctx context.Context, databaseURL string) error {
	archive, err := store.ConnectArchive(ctx, databaseURL)
	if err != nil {
		return err
	}
	defer archive.Close()

	entries, err := archive.ListSessions(ctx)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Println("No sessions in the archive")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "CREATED\tROLE\tDOMAIN\tTYPE\tSCORE\tID")
	for _, e := range entries {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%.0f%%\t%s\n",
			e.CreatedAt.Format("2006-01-02 15:04"), e.Role, orDash(e.Domain), e.InterviewType, e.AverageScore*100, e.ID)
	}
	return w.Flush()
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
