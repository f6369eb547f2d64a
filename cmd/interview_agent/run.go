package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/IshanviChauhan/Interview-Bot/internal/config"
	"github.com/IshanviChauhan/Interview-Bot/internal/export"
	"github.com/IshanviChauhan/Interview-Bot/internal/fetch"
	"github.com/IshanviChauhan/Interview-Bot/internal/llm"
	"github.com/IshanviChauhan/Interview-Bot/internal/logger"
	"github.com/IshanviChauhan/Interview-Bot/internal/observability"
	"github.com/IshanviChauhan/Interview-Bot/internal/session"
	"github.com/IshanviChauhan/Interview-Bot/internal/store"
	"github.com/IshanviChauhan/Interview-Bot/internal/types"
)

var runCommand = &cobra.Command{
	Use:   "run",
	Short: "Run an interactive mock interview in the terminal",
	Long: `Starts a mock interview for the given role: questions are asked one at
a time, each answer is scored with feedback, and a final report is
saved as JSON (optionally exported to PDF).

Configuration can be loaded from a JSON file using --config.
Command-line arguments override config file values.`,
	RunE: runInterviewCmd,
}

var (
	runConfigPath   string
	runRole         string
	runDomain       string
	runType         string
	runQuestions    int
	runSessionsDir  string
	runAPIKey       string
	runDatabaseURL  string
	runExportPDF    bool
	runVerifyLinks  bool
	runEnv          string
)

func init() {
	runCommand.Flags().StringVar(&runConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")

	runCommand.Flags().StringVarP(&runRole, "role", "r", "", "Target role, e.g. \"Software Engineer\"")
	runCommand.Flags().StringVarP(&runDomain, "domain", "d", "", "Optional specialization, e.g. \"Machine Learning\"")
	runCommand.Flags().StringVarP(&runType, "type", "t", "", "Interview type: technical or behavioral")
	runCommand.Flags().IntVarP(&runQuestions, "questions", "q", 0, "Number of questions to ask")
	runCommand.Flags().StringVar(&runSessionsDir, "sessions-dir", "", "Directory for saved session JSON files")
	runCommand.Flags().BoolVar(&runExportPDF, "pdf", false, "Export a PDF report after the session (requires Chrome)")
	runCommand.Flags().BoolVar(&runVerifyLinks, "verify-links", false, "Check suggested resource URLs before reporting")
	runCommand.Flags().StringVar(&runEnv, "env", "", "Environment: dev or prod (controls log output)")

	// API key can be passed as a flag, or read from env var GEMINI_API_KEY
	runCommand.Flags().StringVar(&runAPIKey, "api-key", "", "Gemini API Key (optional, defaults to GEMINI_API_KEY env var)")

	// Database URL for the optional session archive
	runCommand.Flags().StringVar(&runDatabaseURL, "db-url", "", "PostgreSQL connection URL for the session archive (optional, defaults to DATABASE_URL env var)")

	rootCmd.AddCommand(runCommand)
}

func runInterviewCmd(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	cfg, err := loadMergedConfig(cmd)
	if err != nil {
		return err
	}

	if cfg.Role == "" {
		return fmt.Errorf("--role is required (via flag or config)")
	}
	interviewType := types.InterviewType(cfg.InterviewType)
	if !interviewType.Valid() {
		return fmt.Errorf("interview type must be technical or behavioral, got %q", cfg.InterviewType)
	}
	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv("GEMINI_API_KEY")
	}
	if cfg.APIKey == "" {
		return fmt.Errorf("GEMINI_API_KEY environment variable or --api-key flag is required")
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}

	log, err := logger.NewLogger(cfg.Env)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	client, err := llm.NewClient(ctx, nil, cfg.APIKey)
	if err != nil {
		return err
	}
	defer func() { _ = client.Close() }()

	fileStore, err := store.NewFileStore(cfg.SessionsDir, log)
	if err != nil {
		return err
	}

	sess := session.New(client, log, cfg.Role, cfg.Domain, interviewType)
	printer := observability.NewPrinter(os.Stdout)
	printer.PrintSessionHeader(cfg.Role, cfg.Domain, interviewType, cfg.QuestionCount)

	fmt.Println("\nGenerating questions...")
	if err := sess.Start(ctx, cfg.QuestionCount); err != nil {
		return err
	}

	scanner := bufio.NewScanner(os.Stdin)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)

	for {
		printer.PrintQuestion(types.StepView{
			Question: sess.CurrentQuestion(),
			Index:    sess.Cursor(),
			Total:    sess.Total(),
		})

		answer := readAnswer(scanner)
		if answer == "" {
			fmt.Println("Input interrupted; session aborted, nothing saved.")
			return nil
		}

		fmt.Println("\nEvaluating answer...")
		step, err := sess.SubmitAnswer(ctx, answer)
		if err != nil {
			return err
		}
		printer.PrintFeedback(step)

		if sess.Cursor() == sess.Total()-1 {
			break
		}
		if err := sess.Advance(); err != nil {
			return err
		}
	}

	if err := sess.Complete(); err != nil {
		return err
	}

	fmt.Println("\nBuilding your report...")
	summary, err := sess.Summarize(ctx)
	if err != nil {
		return err
	}

	if cfg.VerifyLinks {
		summary.Resources = verifyResources(ctx, log, summary.Resources)
	}

	printer.PrintSummary(summary)

	record := sess.Record(summary.Narrative, summary.Resources)
	path, err := fileStore.Save(record)
	if err != nil {
		return err
	}
	fmt.Printf("\nSession saved to %s\n", path)

	archiveSession(ctx, log, cfg.DatabaseURL, record)

	if cfg.ExportPDF {
		// the JSON save above already succeeded; a PDF failure is
		// reported but does not fail the session
		if err := exportPDF(ctx, record, strings.TrimSuffix(path, ".json")+".pdf"); err != nil {
			fmt.Fprintf(os.Stderr, "PDF export failed: %v\n", err)
		}
	}

	return nil
}

// loadMergedConfig merges config file values, CLI flags, and defaults,
// with flags taking priority.
func loadMergedConfig(cmd *cobra.Command) (config.Config, error) {
	var cfg config.Config
	if runConfigPath != "" {
		loaded, err := config.LoadConfig(runConfigPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to load config: %w", err)
		}
		if err := loaded.Validate(); err != nil {
			return cfg, err
		}
		cfg = *loaded
	}

	if cmd.Flags().Changed("role") {
		cfg.Role = runRole
	}
	if cmd.Flags().Changed("domain") {
		cfg.Domain = runDomain
	}
	if cmd.Flags().Changed("type") {
		cfg.InterviewType = runType
	}
	if cmd.Flags().Changed("questions") {
		cfg.QuestionCount = runQuestions
	}
	if cmd.Flags().Changed("sessions-dir") {
		cfg.SessionsDir = runSessionsDir
	}
	if cmd.Flags().Changed("api-key") {
		cfg.APIKey = runAPIKey
	}
	if cmd.Flags().Changed("db-url") {
		cfg.DatabaseURL = runDatabaseURL
	}
	if cmd.Flags().Changed("pdf") {
		cfg.ExportPDF = runExportPDF
	}
	if cmd.Flags().Changed("verify-links") {
		cfg.VerifyLinks = runVerifyLinks
	}
	if cmd.Flags().Changed("env") {
		cfg.Env = runEnv
	}

	cfg = cfg.MergeWithDefaults(config.Config{
		InterviewType: "technical",
		SessionsDir:   "interview_sessions",
		Env:           "prod",
	})

	return cfg, cfg.Validate()
}

// readAnswer reads lines until a non-blank answer arrives. A blank line
// re-prompts; EOF returns "".
func readAnswer(scanner *bufio.Scanner) string {
	for {
		fmt.Print("\nYour answer: ")
		if !scanner.Scan() {
			return ""
		}
		answer := strings.TrimSpace(scanner.Text())
		if answer != "" {
			return answer
		}
		fmt.Println("Please enter an answer.")
	}
}

// verifyResources checks resource links and fills missing titles,
// dropping entries whose URLs are unreachable.
func verifyResources(ctx context.Context, log *zap.Logger, resources []types.Resource) []types.Resource {
	verified := fetch.NewVerifier(log).Verify(ctx, resources)
	out := make([]types.Resource, 0, len(verified))
	for _, v := range verified {
		if v.Reachable {
			out = append(out, v.Resource)
		}
	}
	return out
}

// archiveSession writes the record to the PostgreSQL archive when a
// database URL is configured. Failures are logged, never fatal: the
// JSON file on disk is the source of truth.
func archiveSession(ctx context.Context, log *zap.Logger, databaseURL string, record types.SessionRecord) {
	if databaseURL == "" {
		return
	}

	archive, err := store.ConnectArchive(ctx, databaseURL)
	if err != nil {
		log.Warn("session archive unavailable", zap.Error(err))
		return
	}
	defer archive.Close()

	if err := archive.Migrate(ctx); err != nil {
		log.Warn("session archive migration failed", zap.Error(err))
		return
	}
	if err := archive.SaveSession(ctx, record); err != nil {
		log.Warn("failed to archive session", zap.Error(err))
	}
}

// exportPDF renders the report and prints it with a headless browser.
func exportPDF(ctx context.Context, record types.SessionRecord, outPath string) error {
	if !export.HasRenderTool() {
		return fmt.Errorf("no Chrome/Chromium found on PATH; install one to enable PDF export")
	}

	html, err := export.RenderHTML(&record)
	if err != nil {
		return err
	}
	if err := export.WritePDF(ctx, html, outPath); err != nil {
		return err
	}
	fmt.Printf("PDF report saved to %s\n", outPath)
	return nil
}
