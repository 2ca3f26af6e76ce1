// Package main provides the CLI entry point for sheet2spec-go.
package main

import (
	"fmt"
	"os"

	"github.com/sheet2spec/sheet2spec-go/pkg/sheet2spec"
	"github.com/sheet2spec/sheet2spec-go/pkg/sheet2spec/output"
	"github.com/spf13/cobra"
)

var (
	outputPath string
	format     string
	pretty     bool
	validate   bool
	showDiag   bool
	serverURL  string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "sheet2spec [input.xlsx]",
		Short: "Convert spreadsheet API descriptions to an OpenAPI specification",
		Long: `sheet2spec-go reads a workbook describing a REST API (endpoint sheets,
optional overview and common sheets) and emits an OpenAPI-3-compatible
specification as JSON or YAML.`,
		Args: cobra.ExactArgs(1),
		RunE: run,
	}

	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	rootCmd.Flags().StringVar(&format, "format", "json", "Output format: json, yaml")
	rootCmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	rootCmd.Flags().BoolVar(&validate, "validate", false, "Validate the result against the OpenAPI 3 rules")
	rootCmd.Flags().BoolVar(&showDiag, "diag", false, "Print skipped-sheet/row diagnostics to stderr")
	rootCmd.Flags().StringVar(&serverURL, "server-url", "", "Server URL used when the workbook declares none")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	inputPath := args[0]

	if _, err := os.Stat(inputPath); os.IsNotExist(err) {
		return fmt.Errorf("file not found: %s", inputPath)
	}
	if format != "json" && format != "yaml" {
		return fmt.Errorf("invalid format: %s (must be json or yaml)", format)
	}

	opts := sheet2spec.DefaultOptions()
	if serverURL != "" {
		opts.DefaultServerURL = serverURL
	}

	result, err := sheet2spec.Convert(inputPath, opts)
	if err != nil {
		return fmt.Errorf("conversion failed: %w", err)
	}

	if showDiag {
		for _, d := range result.Diagnostics {
			fmt.Fprintln(os.Stderr, d)
		}
	}

	jsonData, err := output.ToJSON(result.Spec, pretty)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}
	if validate {
		if err := sheet2spec.Validate(cmd.Context(), jsonData); err != nil {
			return err
		}
	}

	data := jsonData
	if format == "yaml" {
		if data, err = output.ToYAML(result.Spec); err != nil {
			return fmt.Errorf("serialization failed: %w", err)
		}
	}

	if outputPath != "" {
		if err := os.WriteFile(outputPath, data, 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		return nil
	}
	fmt.Println(string(data))
	return nil
}
