package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/techmac/taskimport/internal/config"
	"github.com/techmac/taskimport/internal/domain"
	"github.com/techmac/taskimport/internal/normalize"
	"github.com/techmac/taskimport/internal/report"
	"github.com/techmac/taskimport/internal/service"
	"github.com/techmac/taskimport/internal/workbook"
	"github.com/techmac/taskimport/pkg/fileutil"
	"github.com/techmac/taskimport/pkg/logger"
)

var (
	vocabFile   string
	logLevel    string
	outputFile  string
	prettyPrint bool
	maxSize     int64
)

func main() {
	root := &cobra.Command{
		Use:          "taskimport",
		Short:        "Import task records from hand-maintained spreadsheet workbooks",
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&vocabFile, "vocab", "", "Path to a YAML vocabulary extension file")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level: debug, info, warn, error")
	root.PersistentFlags().Int64Var(&maxSize, "max-size", fileutil.DefaultMaxSize, "Maximum workbook file size in bytes")

	importCmd := &cobra.Command{
		Use:   "import <file.xlsx>",
		Short: "Run the full import and emit a JSON report",
		Args:  cobra.ExactArgs(1),
		RunE:  runImport,
	}
	importCmd.Flags().StringVarP(&outputFile, "output", "o", "", "Path to output file (stdout when empty)")
	importCmd.Flags().BoolVar(&prettyPrint, "pretty", true, "Pretty print JSON output")

	validateCmd := &cobra.Command{
		Use:   "validate <file.xlsx>",
		Short: "Pre-flight structural check without importing any row",
		Args:  cobra.ExactArgs(1),
		RunE:  runValidate,
	}

	templateCmd := &cobra.Command{
		Use:   "template <file.xlsx>",
		Short: "Write a blank entry template workbook",
		Args:  cobra.ExactArgs(1),
		RunE:  runTemplate,
	}

	root.AddCommand(importCmd, validateCmd, templateCmd)

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func newImporter() (*service.Importer, error) {
	vocab := normalize.DefaultVocabulary()
	if vocabFile != "" {
		loaded, err := config.LoadVocabulary(vocabFile)
		if err != nil {
			return nil, err
		}
		vocab = loaded
	}

	log := logger.New(os.Stderr, logger.Level(logLevel))
	return service.NewImporter(
		service.WithVocabulary(vocab),
		service.WithLogger(log),
	), nil
}

func runImport(cmd *cobra.Command, args []string) error {
	importer, err := newImporter()
	if err != nil {
		return err
	}

	data, err := fileutil.ReadWorkbookFile(args[0], maxSize)
	if err != nil {
		return err
	}

	result, err := importer.Import(data)
	if err != nil {
		var missing *domain.MissingColumnsError
		if errors.As(err, &missing) {
			return fmt.Errorf("workbook structure invalid: %w", err)
		}
		return err
	}

	formatter := report.NewJSONFormatter(prettyPrint)
	output, err := formatter.Format(result)
	if err != nil {
		return fmt.Errorf("formatting report: %w", err)
	}

	if outputFile != "" {
		// If no extension is provided, add the formatter's default extension
		if !strings.Contains(outputFile, ".") {
			outputFile = fmt.Sprintf("%s.%s", outputFile, formatter.FileExtension())
		}
		if err := os.WriteFile(outputFile, output, 0644); err != nil {
			return fmt.Errorf("writing report: %w", err)
		}
		return nil
	}

	fmt.Fprintln(cmd.OutOrStdout(), string(output))
	return nil
}

func runValidate(cmd *cobra.Command, args []string) error {
	importer, err := newImporter()
	if err != nil {
		return err
	}

	data, err := fileutil.ReadWorkbookFile(args[0], maxSize)
	if err != nil {
		return err
	}

	structure, err := importer.ValidateStructure(data)
	if err != nil {
		return err
	}

	if !structure.Valid {
		fmt.Fprintf(cmd.OutOrStdout(), "missing required columns: %s\n",
			strings.Join(structure.MissingHeaders, ", "))
		return fmt.Errorf("workbook structure invalid")
	}

	fmt.Fprintln(cmd.OutOrStdout(), "workbook structure OK")
	return nil
}

func runTemplate(cmd *cobra.Command, args []string) error {
	data, err := workbook.Template()
	if err != nil {
		return err
	}

	if err := os.WriteFile(args[0], data, 0644); err != nil {
		return fmt.Errorf("writing template: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "template written to %s\n", args[0])
	return nil
}
