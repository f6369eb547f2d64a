package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/IshanviChauhan/Interview-Bot/internal/export"
	"github.com/IshanviChauhan/Interview-Bot/internal/store"
)

var exportCommand = &cobra.Command{
	Use:   "export <session.json>",
	Short: "Re-export a saved session as HTML or PDF",
	Long: `Renders the report for a previously saved session file.
By default the HTML report is written next to the input file; pass
--pdf to print it to PDF with a headless browser instead.`,
	Args: cobra.ExactArgs(1),
	RunE: runExportCmd,
}

var (
	exportAsPDF bool
	exportOut   string
)

func init() {
	exportCommand.Flags().BoolVar(&exportAsPDF, "pdf", false, "Write a PDF instead of HTML (requires Chrome)")
	exportCommand.Flags().StringVarP(&exportOut, "out", "o", "", "Output path (default: input path with .html/.pdf extension)")

	rootCmd.AddCommand(exportCommand)
}

func runExportCmd(_ *cobra.Command, args []string) error {
	inPath := args[0]

	fileStore, err := store.NewFileStore(".", zap.NewNop())
	if err != nil {
		return err
	}
	record, err := fileStore.Load(inPath)
	if err != nil {
		return err
	}

	html, err := export.RenderHTML(record)
	if err != nil {
		return err
	}

	outPath := exportOut
	base := strings.TrimSuffix(inPath, ".json")

	if exportAsPDF {
		if !export.HasRenderTool() {
			return fmt.Errorf("no Chrome/Chromium found on PATH; install one to enable PDF export")
		}
		if outPath == "" {
			outPath = base + ".pdf"
		}
		if err := export.WritePDF(context.Background(), html, outPath); err != nil {
			return err
		}
	} else {
		if outPath == "" {
			outPath = base + ".html"
		}
		if err := os.WriteFile(outPath, []byte(html), 0o644); err != nil {
			return err
		}
	}

	fmt.Printf("Report written to %s\n", outPath)
	return nil
}
