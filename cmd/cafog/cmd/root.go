// Package cmd provides CLI command implementations
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap/zapcore"

	"github.com/cdl-biosimilars/cafog/pkg/core"
	"github.com/cdl-biosimilars/cafog/pkg/logger"
)

var (
	// Flags for correct command
	glycoformsFile string
	glycationFile  string
	libraryFile    string
	graphFormat    string
	outputFile     string
	archiveFile    string
	verbose        bool
)

var rootCmd = &cobra.Command{
	Use:   "cafog",
	Short: "cafog - glycation correction for glycoform abundances",
	Long: `cafog corrects measured glycoform abundances for the glycation
artifact: non-enzymatic hexose attachment shifts part of each true
glycoform's population into the abundance bin of a heavier glycoform.

The tool resolves glycan compositions, builds the attribution graph
linking true glycoforms to their apparent bins, and inverts it to
recover bias-corrected abundances with propagated uncertainties.`,
	Version: "1.0.0",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(func() {
		level := zapcore.InfoLevel
		if verbose {
			level = zapcore.DebugLevel
		}
		if err := logger.Init(level); err != nil {
			panic(fmt.Sprintf("failed to initialize logger: %v", err))
		}
	})

	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Enable debug logging")
	rootCmd.AddCommand(correctCmd)
	rootCmd.AddCommand(resolveCmd)

	correctCmd.Flags().StringVarP(&glycoformsFile, "glycoforms", "f", "", "CSV file containing glycoform abundances (required)")
	correctCmd.Flags().StringVarP(&glycationFile, "glycation", "g", "", "CSV file containing glycation abundances (required)")
	correctCmd.Flags().StringVarP(&libraryFile, "glycan-library", "l", "", "CSV file containing a glycan library")
	correctCmd.Flags().StringVarP(&graphFormat, "graph-format", "F", "", "Graph output format: dot or gexf")
	correctCmd.Flags().StringVarP(&outputFile, "out", "o", "", "Output CSV file (default: stdout)")
	correctCmd.Flags().StringVar(&archiveFile, "db", "", "SQLite archive to append the run to")

	correctCmd.MarkFlagRequired("glycoforms")
	correctCmd.MarkFlagRequired("glycation")
}

var correctCmd = &cobra.Command{
	Use:   "correct",
	Short: "Correct glycation influence on glycoform abundances",
	Long: `Correct glycation influence on glycoform abundances.
Results are written in CSV format to stdout or a file.

Examples:
  # Correct with an explicit glycan library
  cafog correct -f glycoforms.csv -g glycation.csv -l glycans.csv

  # Also export the attribution graph and archive the run
  cafog correct -f glycoforms.csv -g glycation.csv -F dot --db runs.db`,
	RunE: runCorrect,
}

var resolveCmd = &cobra.Command{
	Use:   "resolve [name]",
	Short: "Resolve a glycan name to its composition and mass",
	Long:  `Resolve a glycan abbreviation in Zhang nomenclature (e.g., "A2G1F") to its monosaccharide composition and monoisotopic mass.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		comp, err := core.ResolveZhangName(args[0])
		if err != nil {
			return err
		}
		mass, _ := comp.Mass()
		fmt.Printf("%s (%s) = %.5f Da\n", args[0], comp, mass)
		return nil
	},
}
