// Package export writes calculation results to CSV or Parquet files through DuckDB.
package export

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	_ "github.com/marcboeker/go-duckdb/v2"

	"github.com/noot-app/nut/internal/nutrition"
	"github.com/noot-app/nut/internal/types"
)

const createRows = `
	CREATE TEMP TABLE export_rows (
		meal          VARCHAR,
		day           VARCHAR,
		meal_type     VARCHAR,
		item          VARCHAR,
		quantity      DOUBLE,
		unit          VARCHAR,
		multiplier    DOUBLE,
		energy        DOUBLE,
		carbohydrates DOUBLE,
		sugar         DOUBLE,
		fat           DOUBLE,
		saturated     DOUBLE,
		unsaturated   DOUBLE,
		protein       DOUBLE,
		salt          DOUBLE
	)`

const insertRow = `INSERT INTO export_rows VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

// Row is one calculated meal line as written to the output file
type Row struct {
	Meal       string
	Day        string
	Type       string
	Line       types.MealLine
	Multiplier float64
	Nutrition  types.NutritionProfile
}

// Exporter writes calculation results using an in-memory DuckDB database
type Exporter struct {
	db  *sql.DB
	log *slog.Logger
}

// NewExporter opens an in-memory DuckDB database
func NewExporter(logger *slog.Logger) (*Exporter, error) {
	db, err := sql.Open("duckdb", "")
	if err != nil {
		return nil, fmt.Errorf("failed to open duckdb: %w", err)
	}

	return &Exporter{
		db:  db,
		log: logger,
	}, nil
}

// Close closes the database connection
func (e *Exporter) Close() error {
	return e.db.Close()
}

// MealRows flattens the calculated lines of a meal
func MealRows(res *nutrition.MealResult, entry types.DietEntry) []Row {
	rows := make([]Row, 0, len(res.Lines))
	for _, lr := range res.Lines {
		if !lr.Calculated() {
			continue
		}
		rows = append(rows, Row{
			Meal:       res.Meal.Name,
			Day:        entry.Day,
			Type:       entry.Type,
			Line:       lr.Line,
			Multiplier: lr.Multiplier,
			Nutrition:  lr.Nutrition,
		})
	}
	return rows
}

// DietRows flattens the calculated lines of every meal in a diet
func DietRows(res *nutrition.DietResult) []Row {
	var rows []Row
	for _, er := range res.Entries {
		if er.Result == nil {
			continue
		}
		rows = append(rows, MealRows(er.Result, er.Entry)...)
	}
	return rows
}

// WriteMeal writes the calculated lines of a meal to path
func (e *Exporter) WriteMeal(ctx context.Context, res *nutrition.MealResult, path string) error {
	return e.Write(ctx, MealRows(res, types.DietEntry{}), path)
}

// WriteDiet writes the calculated lines of every meal in a diet to path
func (e *Exporter) WriteDiet(ctx context.Context, res *nutrition.DietResult, path string) error {
	return e.Write(ctx, DietRows(res), path)
}

// Write stores rows in path. The format follows the extension: .csv or .parquet.
func (e *Exporter) Write(ctx context.Context, rows []Row, path string) error {
	start := time.Now()

	format, err := formatFor(path)
	if err != nil {
		return err
	}
	e.log.Debug("Export starting", "path", path, "format", format, "rows", len(rows))

	conn, err := e.db.Conn(ctx)
	if err != nil {
		return fmt.Errorf("failed to get connection: %w", err)
	}
	defer conn.Close()

	if _, err := conn.ExecContext(ctx, createRows); err != nil {
		return fmt.Errorf("failed to create export table: %w", err)
	}
	defer func() {
		if _, err := conn.ExecContext(context.Background(), `DROP TABLE IF EXISTS export_rows`); err != nil {
			e.log.Warn("Failed to drop export table", "error", err)
		}
	}()

	for _, r := range rows {
		n := r.Nutrition
		_, err := conn.ExecContext(ctx, insertRow,
			r.Meal, r.Day, r.Type,
			r.Line.Name, r.Line.Quantity, r.Line.Unit, r.Multiplier,
			nullable(n.Energy.Value),
			nullable(n.Carbohydrates.Value),
			nullable(n.Carbohydrates.Sugar),
			nullable(n.Fat.Value),
			nullable(n.Fat.Saturated),
			nullable(n.Fat.Unsaturated),
			nullable(n.Protein.Value),
			nullable(n.Salt.Value),
		)
		if err != nil {
			return fmt.Errorf("failed to insert row for %q: %w", r.Line.Name, err)
		}
	}

	copyStmt := fmt.Sprintf(`COPY export_rows TO '%s' (%s)`, strings.ReplaceAll(path, "'", "''"), format)
	if _, err := conn.ExecContext(ctx, copyStmt); err != nil {
		e.log.Error("Export failed", "path", path, "error", err, "duration", time.Since(start))
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	e.log.Info("Export completed", "path", path, "rows", len(rows), "duration", time.Since(start))
	return nil
}

func formatFor(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".parquet":
		return "FORMAT PARQUET", nil
	case ".csv":
		return "FORMAT CSV, HEADER", nil
	default:
		return "", fmt.Errorf("unsupported export format %q: use .csv or .parquet", filepath.Ext(path))
	}
}

func nullable(v *float64) sql.NullFloat64 {
	if v == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *v, Valid: true}
}
