// Package sqlite archives correction runs in a SQLite database:
// corrected glycoform abundances plus the attribution edges that
// explain them, keyed by a per-run identifier.
package sqlite

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/cdl-biosimilars/cafog/pkg/core"
)

const runDateFormat = "2006-01-02 15:04:05"

// Writer handles writing correction results to a SQLite archive.
type Writer struct {
	db            *sql.DB
	outputPath    string
	glycoformStmt *sql.Stmt
	edgeStmt      *sql.Stmt
}

// NewWriter opens (or creates) the archive at outputPath.
func NewWriter(outputPath string) (*Writer, error) {
	db, err := sql.Open("sqlite3", outputPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	w := &Writer{db: db, outputPath: outputPath}

	if err := w.createTables(); err != nil {
		db.Close()
		return nil, err
	}
	if err := w.prepareStatements(); err != nil {
		db.Close()
		return nil, err
	}
	return w, nil
}

func (w *Writer) createTables() error {
	schema := `
	CREATE TABLE IF NOT EXISTS RunTable (
		RunId TEXT PRIMARY KEY,
		CreationDate TEXT,
		Dataset TEXT,
		GlycoformCount INTEGER,
		EdgeCount INTEGER,
		DiagnosticCount INTEGER
	);

	CREATE TABLE IF NOT EXISTS GlycoformTable (
		RunId TEXT REFERENCES RunTable(RunId),
		Glycoform TEXT,
		Composition TEXT,
		Mass DOUBLE,
		Abundance DOUBLE,
		AbundanceError DOUBLE,
		CorrAbundance DOUBLE,
		CorrAbundanceError DOUBLE,
		Change DOUBLE
	);

	CREATE TABLE IF NOT EXISTS EdgeTable (
		RunId TEXT REFERENCES RunTable(RunId),
		Origin TEXT,
		Target TEXT,
		Glycations INTEGER,
		Weight DOUBLE,
		WeightError DOUBLE
	);

	CREATE TABLE IF NOT EXISTS DiagnosticTable (
		RunId TEXT REFERENCES RunTable(RunId),
		Position INTEGER,
		Severity TEXT,
		Message TEXT
	);
	`

	if _, err := w.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create tables: %w", err)
	}
	return nil
}

func (w *Writer) prepareStatements() error {
	var err error

	w.glycoformStmt, err = w.db.Prepare(`
		INSERT INTO GlycoformTable (
			RunId, Glycoform, Composition, Mass,
			Abundance, AbundanceError,
			CorrAbundance, CorrAbundanceError, Change
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare glycoform statement: %w", err)
	}

	w.edgeStmt, err = w.db.Prepare(`
		INSERT INTO EdgeTable (
			RunId, Origin, Target, Glycations, Weight, WeightError
		) VALUES (?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare edge statement: %w", err)
	}
	return nil
}

// WriteRun stores one correction run and returns its identifier.
func (w *Writer) WriteRun(dataset string, result *core.Result) (string, error) {
	runID := uuid.NewString()

	_, err := w.db.Exec(`
		INSERT INTO RunTable (RunId, CreationDate, Dataset, GlycoformCount, EdgeCount, DiagnosticCount)
		VALUES (?, ?, ?, ?, ?, ?)
	`, runID, time.Now().Format(runDateFormat), dataset,
		len(result.Rows), len(result.Graph.Edges), len(result.Diagnostics))
	if err != nil {
		return "", fmt.Errorf("failed to insert run: %w", err)
	}

	for _, node := range result.Graph.Nodes {
		gf := node.Glycoform
		_, err := w.glycoformStmt.Exec(
			runID,
			gf.Name,
			gf.Composition.String(),
			gf.Mass,
			gf.Abundance.Value,
			gf.Abundance.Err,
			node.Corrected.Value,
			node.Corrected.Err,
			node.Corrected.Value-gf.Abundance.Value,
		)
		if err != nil {
			return "", fmt.Errorf("failed to insert glycoform %q: %w", gf.Name, err)
		}
	}

	for _, edge := range result.Graph.Edges {
		_, err := w.edgeStmt.Exec(
			runID,
			result.Graph.Nodes[edge.Origin].Glycoform.Name,
			result.Graph.Nodes[edge.Target].Glycoform.Name,
			edge.Glycations,
			edge.Weight.Value,
			edge.Weight.Err,
		)
		if err != nil {
			return "", fmt.Errorf("failed to insert edge: %w", err)
		}
	}

	for i, d := range result.Diagnostics {
		_, err := w.db.Exec(`
			INSERT INTO DiagnosticTable (RunId, Position, Severity, Message)
			VALUES (?, ?, ?, ?)
		`, runID, i, d.Severity.String(), d.Message)
		if err != nil {
			return "", fmt.Errorf("failed to insert diagnostic: %w", err)
		}
	}

	return runID, nil
}

// Close closes the prepared statements and the database.
func (w *Writer) Close() error {
	if w.glycoformStmt != nil {
		w.glycoformStmt.Close()
	}
	if w.edgeStmt != nil {
		w.edgeStmt.Close()
	}
	if err := w.db.Close(); err != nil {
		return fmt.Errorf("failed to close database: %w", err)
	}
	return nil
}
