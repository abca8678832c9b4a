package spreadsheet

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/kevinvalenciaa/QSAO-competition/internal/domain/model"
)

const exportSheet = "Roster"

// WriteRoster writes the merged, valued, and classified roster to path,
// overwriting any previous export. Column labels present on both source
// sides are disambiguated with _salary/_stats suffixes; the join key is
// never written. Nil values become empty cells.
func WriteRoster(ctx context.Context, path, seasonColumn string, rows []model.RosterRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	f := excelize.NewFile()
	defer f.Close()
	if err := f.SetSheetName("Sheet1", exportSheet); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrWriteOutput, path, err)
	}

	header := []any{
		"Name", "Pos", "Team_salary", "Team_stats", seasonColumn,
		"PTS", "AST", "TRB", "STL", "BLK", "TOV", "FG%", "3P%", "FT%",
		"Value Score", "Value per $M", "Archetype",
	}
	if err := f.SetSheetRow(exportSheet, "A1", &header); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrWriteOutput, path, err)
	}

	for i, row := range rows {
		cellRef, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("%w: %s: %w", ErrWriteOutput, path, err)
		}
		if err := f.SetSheetRow(exportSheet, cellRef, exportCells(row)); err != nil {
			return fmt.Errorf("%w: %s: %w", ErrWriteOutput, path, err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrWriteOutput, path, err)
	}
	return nil
}

func exportCells(row model.RosterRecord) *[]any {
	s := row.Merged.Stats

	var pos, statsTeam string
	if s != nil {
		pos = s.Pos
		statsTeam = s.Team
	}
	cells := []any{
		row.Merged.Salary.Name,
		pos,
		row.Merged.Salary.Team,
		statsTeam,
		optional(row.Merged.Salary.Salary),
	}
	if s == nil {
		s = &model.StatLine{}
	}
	cells = append(cells,
		optional(s.PTS), optional(s.AST), optional(s.TRB),
		optional(s.STL), optional(s.BLK), optional(s.TOV),
		optional(s.FGPct), optional(s.ThreePct), optional(s.FTPct),
		optional(row.Valuation.ValueScore),
		optional(row.Valuation.ValuePerMillion),
		row.Archetype,
	)
	return &cells
}

// optional maps nil to an empty cell.
func optional(v *float64) any {
	if v == nil {
		return nil
	}
	return *v
}
