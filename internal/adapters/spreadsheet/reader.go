// Package spreadsheet reads the salary and statistics workbooks and
// writes the valued-roster export. All spreadsheet I/O lives here; the
// domain packages never see a workbook.
package spreadsheet

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/kevinvalenciaa/QSAO-competition/internal/domain/model"
	"github.com/kevinvalenciaa/QSAO-competition/internal/domain/normalize"
	"github.com/kevinvalenciaa/QSAO-competition/pkg/metrics"
)

// Stat column labels the stats sheet must carry.
var statColumns = []string{"PTS", "AST", "TRB", "STL", "BLK", "TOV", "FG%", "3P%", "FT%"}

// LoadSalaries reads the salary workbook, promotes the embedded header
// row, filters to the given team code, and coerces the season salary
// column to a nullable numeric.
//
// The salary sheet's first raw row is a banner, not labels; the real
// column names sit in the first data row and are promoted before any
// filtering. "Player" and "Tm" are accepted as aliases for "Name" and
// "Team".
func LoadSalaries(ctx context.Context, path, team, seasonColumn string) ([]model.SalaryRow, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	rows, err := sheetRows(path)
	if err != nil {
		return nil, err
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("%w: %s", ErrEmptySource, path)
	}

	// Promote the first data row to header.
	header := rows[1]
	data := rows[2:]

	nameCol, err := findColumn(header, path, "Name", "Player")
	if err != nil {
		return nil, err
	}
	teamCol, err := findColumn(header, path, "Team", "Tm")
	if err != nil {
		return nil, err
	}
	salaryCol, err := findColumn(header, path, seasonColumn)
	if err != nil {
		return nil, err
	}

	var out []model.SalaryRow
	for _, row := range data {
		if cell(row, teamCol) != team {
			continue
		}
		name := cell(row, nameCol)
		out = append(out, model.SalaryRow{
			Name:    name,
			Team:    team,
			Salary:  coerce(cell(row, salaryCol)),
			JoinKey: normalize.Name(name),
		})
		metrics.RecordSalaryRow()
	}
	return out, nil
}

// LoadStats reads the statistics workbook, whose header row is already
// correct, filters to the given team code, and coerces every stat
// column to a nullable numeric.
func LoadStats(ctx context.Context, path, team string) ([]model.StatLine, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	rows, err := sheetRows(path)
	if err != nil {
		return nil, err
	}
	if len(rows) < 1 {
		return nil, fmt.Errorf("%w: %s", ErrEmptySource, path)
	}

	header := rows[0]
	data := rows[1:]

	playerCol, err := findColumn(header, path, "Player", "Name")
	if err != nil {
		return nil, err
	}
	teamCol, err := findColumn(header, path, "Team", "Tm")
	if err != nil {
		return nil, err
	}
	posCol, err := findColumn(header, path, "Pos")
	if err != nil {
		return nil, err
	}
	statCols := make(map[string]int, len(statColumns))
	for _, label := range statColumns {
		col, err := findColumn(header, path, label)
		if err != nil {
			return nil, err
		}
		statCols[label] = col
	}

	var out []model.StatLine
	for _, row := range data {
		if cell(row, teamCol) != team {
			continue
		}
		player := cell(row, playerCol)
		out = append(out, model.StatLine{
			Player:   player,
			Team:     team,
			Pos:      cell(row, posCol),
			PTS:      coerce(cell(row, statCols["PTS"])),
			AST:      coerce(cell(row, statCols["AST"])),
			TRB:      coerce(cell(row, statCols["TRB"])),
			STL:      coerce(cell(row, statCols["STL"])),
			BLK:      coerce(cell(row, statCols["BLK"])),
			TOV:      coerce(cell(row, statCols["TOV"])),
			FGPct:    coerce(cell(row, statCols["FG%"])),
			ThreePct: coerce(cell(row, statCols["3P%"])),
			FTPct:    coerce(cell(row, statCols["FT%"])),
			JoinKey:  normalize.Name(player),
		})
		metrics.RecordStatRow()
	}
	return out, nil
}

// sheetRows opens the workbook and returns the raw rows of its first sheet.
func sheetRows(path string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrOpenSource, path, err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrOpenSource, path, err)
	}
	return rows, nil
}

// findColumn locates the first header cell matching any of the labels.
// A miss is fatal: the pipeline cannot proceed without its columns.
func findColumn(header []string, path string, labels ...string) (int, error) {
	for i, h := range header {
		h = strings.TrimSpace(h)
		for _, label := range labels {
			if h == label {
				return i, nil
			}
		}
	}
	return 0, fmt.Errorf("%w: %q in %s", ErrMissingColumn, labels[0], path)
}

// cell returns the trimmed value at col, or "" when the row is short.
func cell(row []string, col int) string {
	if col >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[col])
}

// coerce parses a cell as float64. Empty cells become nil silently;
// non-empty cells that fail to parse become nil and are counted, never
// an error.
func coerce(s string) *float64 {
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		metrics.RecordCoercionFailure()
		return nil
	}
	return model.Float(v)
}
