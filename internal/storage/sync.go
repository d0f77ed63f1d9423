package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
)

// dumpTables lists the tables written by ExportDBToTOML, in schema order.
var dumpTables = []string{"programs", "program_history", "profile"}

// ExportDBToTOML exports all data from the database into a single TOML file,
// one array of rows per table.
func (s *Storage) ExportDBToTOML(ctx context.Context, outputPath string) error {
	dbDump := make(map[string][]map[string]interface{})

	for _, tableName := range dumpTables {
		tableData, err := s.dumpTable(ctx, tableName)
		if err != nil {
			return err
		}
		dbDump[tableName] = tableData
	}

	var sb strings.Builder
	if err := toml.NewEncoder(&sb).Encode(dbDump); err != nil {
		return fmt.Errorf("encoding TOML: %w", err)
	}

	// Make the output path absolute relative to the current directory.
	outputPath, err := filepath.Abs(outputPath)
	if err != nil {
		return err
	}

	if err := os.WriteFile(outputPath, []byte(sb.String()), 0644); err != nil {
		return fmt.Errorf("writing export file: %w", err)
	}

	return nil
}

func (s *Storage) dumpTable(ctx context.Context, tableName string) ([]map[string]interface{}, error) {
	rows, err := s.DB.QueryContext(ctx, fmt.Sprintf("SELECT * FROM %s;", tableName))
	if err != nil {
		return nil, fmt.Errorf("querying table %s: %w", tableName, err)
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("getting columns for table %s: %w", tableName, err)
	}

	var tableData []map[string]interface{}
	for rows.Next() {
		values := make([]interface{}, len(cols))
		valuePtrs := make([]interface{}, len(cols))
		for i := range values {
			valuePtrs[i] = &values[i]
		}

		if err := rows.Scan(valuePtrs...); err != nil {
			return nil, fmt.Errorf("scanning row in table %s: %w", tableName, err)
		}

		rowMap := make(map[string]interface{})
		for i, col := range cols {
			switch val := values[i].(type) {
			case nil:
				// TOML has no null; missing keys are inserted as NULL.
			case []byte:
				rowMap[col] = string(val)
			default:
				rowMap[col] = val
			}
		}
		tableData = append(tableData, rowMap)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating table %s: %w", tableName, err)
	}
	return tableData, nil
}

// GetDBExportPath returns the default location of the TOML dump,
// ~/.config/stride/db_dump.toml.
func GetDBExportPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(home, ".config", "stride")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	return filepath.Join(dir, "db_dump.toml"), nil
}

// ImportDBFromTOML reads the TOML dump file at filePath and rebuilds the database
// by deleting current rows from the dumped tables and then inserting the rows from the dump.
func (s *Storage) ImportDBFromTOML(ctx context.Context, filePath string) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("reading file %s: %w", filePath, err)
	}

	var dbDump map[string][]map[string]interface{}
	if _, err := toml.Decode(string(data), &dbDump); err != nil {
		return fmt.Errorf("decoding TOML: %w", err)
	}

	known := make(map[string]bool, len(dumpTables))
	for _, t := range dumpTables {
		known[t] = true
	}
	for table := range dbDump {
		if !known[table] {
			return fmt.Errorf("unknown table %q in dump", table)
		}
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, table := range dumpTables {
		rows, ok := dbDump[table]
		if !ok {
			continue
		}

		if _, err := tx.ExecContext(ctx, fmt.Sprintf("DELETE FROM %s;", table)); err != nil {
			return fmt.Errorf("clearing table %s: %w", table, err)
		}

		for _, row := range rows {
			columns := make([]string, 0, len(row))
			for col := range row {
				columns = append(columns, col)
			}
			sort.Strings(columns)

			placeholders := make([]string, len(columns))
			values := make([]interface{}, len(columns))
			for i, col := range columns {
				placeholders[i] = "?"
				values[i] = row[col]
			}

			query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s);", table, strings.Join(columns, ", "), strings.Join(placeholders, ", "))
			if _, err := tx.ExecContext(ctx, query, values...); err != nil {
				return fmt.Errorf("inserting into table %s: %w", table, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}

	return nil
}
