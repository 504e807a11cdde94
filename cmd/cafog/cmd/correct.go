package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cdl-biosimilars/cafog/pkg/core"
	"github.com/cdl-biosimilars/cafog/pkg/logger"
	"github.com/cdl-biosimilars/cafog/pkg/reader/csvtab"
	"github.com/cdl-biosimilars/cafog/pkg/writer/dot"
	"github.com/cdl-biosimilars/cafog/pkg/writer/gexf"
	"github.com/cdl-biosimilars/cafog/pkg/writer/report"
	"github.com/cdl-biosimilars/cafog/pkg/writer/sqlite"
)

func runCorrect(cmd *cobra.Command, args []string) error {
	defer logger.Sync()

	if graphFormat != "" {
		graphFormat = strings.ToLower(graphFormat)
		if graphFormat != "dot" && graphFormat != "gexf" {
			return fmt.Errorf("invalid graph format %q, must be dot or gexf", graphFormat)
		}
	}

	glycoforms, err := readGlycoforms(glycoformsFile)
	if err != nil {
		return err
	}
	glycation, err := readGlycation(glycationFile)
	if err != nil {
		return err
	}
	var library []core.LibraryEntry
	if libraryFile != "" {
		library, err = readLibrary(libraryFile)
		if err != nil {
			return err
		}
	}

	logger.Info("correcting dataset", zap.String("glycoforms", glycoformsFile))

	result, err := core.Correct(glycoforms, glycation, library)
	if err != nil {
		return err
	}

	for _, d := range result.Diagnostics {
		switch d.Severity {
		case core.SeverityWarning:
			logger.Warn(d.Message)
		default:
			logger.Info(d.Message)
		}
	}

	out := os.Stdout
	if outputFile != "" {
		f, err := os.Create(outputFile)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		out = f
	}
	if err := report.WriteCSV(out, result); err != nil {
		return fmt.Errorf("failed to write result table: %w", err)
	}

	datasetName := strings.TrimSuffix(glycoformsFile, filepath.Ext(glycoformsFile))

	switch graphFormat {
	case "dot":
		if err := writeGraphFile(datasetName+"_corr.gv", result, dot.Write); err != nil {
			return err
		}
	case "gexf":
		if err := writeGraphFile(datasetName+"_corr.gexf", result, gexf.Write); err != nil {
			return err
		}
	}

	if archiveFile != "" {
		writer, err := sqlite.NewWriter(archiveFile)
		if err != nil {
			return fmt.Errorf("failed to open archive: %w", err)
		}
		defer writer.Close()
		runID, err := writer.WriteRun(glycoformsFile, result)
		if err != nil {
			return fmt.Errorf("failed to archive run: %w", err)
		}
		logger.Info("run archived", zap.String("db", archiveFile), zap.String("run", runID))
	}

	logger.Info("done",
		zap.Int("glycoforms", len(result.Rows)),
		zap.Int("edges", len(result.Graph.Edges)),
		zap.Int("diagnostics", len(result.Diagnostics)))
	return nil
}

func writeGraphFile(path string, result *core.Result, write func(w io.Writer, g *core.Graph) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create graph file: %w", err)
	}
	defer f.Close()
	if err := write(f, result.Graph); err != nil {
		return fmt.Errorf("failed to write graph: %w", err)
	}
	logger.Info("graph written", zap.String("file", path))
	return nil
}

func readGlycoforms(path string) ([]core.GlycoformRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open glycoform file: %w", err)
	}
	defer f.Close()
	rows, err := csvtab.ReadGlycoforms(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return rows, nil
}

func readGlycation(path string) ([]core.GlycationRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open glycation file: %w", err)
	}
	defer f.Close()
	rows, err := csvtab.ReadGlycation(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return rows, nil
}

func readLibrary(path string) ([]core.LibraryEntry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open library file: %w", err)
	}
	defer f.Close()
	entries, err := csvtab.ReadLibrary(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return entries, nil
}
