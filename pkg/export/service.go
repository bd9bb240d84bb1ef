package export

import (
	"bytes"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/menuqr/menuqr/pkg/recommendations"
)

const sheetName = "Recommendations"

// Service builds spreadsheet exports for the staff dashboard
type Service struct{}

// NewService creates a new export service
func NewService() *Service {
	return &Service{}
}

// PairReport renders the performance summary and top pairs as an XLSX file
func (s *Service) PairReport(businessName string, summary *recommendations.PerformanceSummary, pairs []recommendations.PairPerformance) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("failed to drop default sheet: %w", err)
	}

	header := [][]interface{}{
		{fmt.Sprintf("Recommendation report: %s", businessName)},
		{fmt.Sprintf("Generated %s, trailing %d days", time.Now().Format("2006-01-02"), summary.PeriodDays)},
		{},
		{"Impressions", summary.Impressions},
		{"Conversions", summary.Conversions},
		{"Conversion rate (%)", summary.ConversionRate},
		{"Attributed revenue", summary.Revenue},
		{},
		{"Item A", "Item B", "Bought together", "Recommended", "Converted", "Revenue", "Confidence (%)"},
	}

	row := 1
	for _, cells := range header {
		if len(cells) > 0 {
			cell, err := excelize.CoordinatesToCellName(1, row)
			if err != nil {
				return nil, fmt.Errorf("failed to build cell name: %w", err)
			}
			if err := f.SetSheetRow(sheetName, cell, &cells); err != nil {
				return nil, fmt.Errorf("failed to write row: %w", err)
			}
		}
		row++
	}

	for _, p := range pairs {
		cell, err := excelize.CoordinatesToCellName(1, row)
		if err != nil {
			return nil, fmt.Errorf("failed to build cell name: %w", err)
		}
		values := []interface{}{
			p.ItemAName, p.ItemBName, p.TimesTogether,
			p.TimesRecommended, p.TimesConverted, p.RevenueGenerated, p.Confidence,
		}
		if err := f.SetSheetRow(sheetName, cell, &values); err != nil {
			return nil, fmt.Errorf("failed to write pair row: %w", err)
		}
		row++
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to serialize workbook: %w", err)
	}

	return buf, nil
}
