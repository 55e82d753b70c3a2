package api

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/xuri/excelize/v2"

	"github.com/adhd-selfcheck/backend/internal/domain/assessment"
	"github.com/adhd-selfcheck/backend/internal/domain/questionnaire"
)

const exportSheet = "Assessments"

// exportHeader lists the fixed columns followed by one column per question.
func exportHeader() []any {
	header := []any{"ID", "Completed At", "Total", "Inattention", "Hyperactivity", "Impulsivity", "Level"}
	for _, q := range questionnaire.Questions() {
		header = append(header, "Q"+strconv.Itoa(q.ID))
	}
	return header
}

// buildSpreadsheet renders assessments as an xlsx workbook, one row each.
func buildSpreadsheet(all []*assessment.Assessment) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(exportSheet)
	if err != nil {
		return nil, fmt.Errorf("create sheet: %w", err)
	}
	f.DeleteSheet("Sheet1")
	f.SetActiveSheet(index)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#E6F3FF"},
			Pattern: 1,
		},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return nil, fmt.Errorf("create header style: %w", err)
	}

	header := exportHeader()
	if err := f.SetSheetRow(exportSheet, "A1", &header); err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}
	last, err := excelize.CoordinatesToCellName(len(header), 1)
	if err != nil {
		return nil, err
	}
	if err := f.SetCellStyle(exportSheet, "A1", last, headerStyle); err != nil {
		return nil, fmt.Errorf("set header style: %w", err)
	}
	if err := f.SetColWidth(exportSheet, "B", "B", 22); err != nil {
		return nil, fmt.Errorf("set column width: %w", err)
	}

	for i, a := range all {
		row := []any{
			a.ID,
			a.CompletedAt.Format("2006-01-02 15:04:05"),
			a.Scores.Total,
			a.Scores.Inattention,
			a.Scores.Hyperactivity,
			a.Scores.Impulsivity,
			a.Interpretation().Level.Label(),
		}
		for _, v := range a.Answers {
			row = append(row, v)
		}

		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
				return nil, err
		}
		if err := f.SetSheetRow(exportSheet, cell, &row); err != nil {
				return nil, fmt.Errorf("write row %d: %w", i+2, err)
		}
	}

	if err := f.SetPanes(exportSheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return nil, fmt.Errorf("freeze header: %w", err)
	}

	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}
