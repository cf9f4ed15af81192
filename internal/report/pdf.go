// Package report renders range reports for sharing outside the CLI.
package report

import (
	"fmt"
	"io"

	"github.com/jung-kurt/gofpdf"

	"github.com/Oleh-Rudko/TrackerFood/internal/model"
	"github.com/Oleh-Rudko/TrackerFood/internal/service"
)

// statusMark is the compact table rendering of a meal status.
func statusMark(s model.MealStatus) string {
	switch s {
	case model.StatusAte:
		return "+"
	case model.StatusDidNotEat:
		return "x"
	}
	return "-"
}

// WritePDF renders the report as a one-page-per-overflow A4 table:
// one row per date, one column per meal kind, day totals, and a grand
// total line. Prices are suffixed with the configured currency.
func WritePDF(w io.Writer, rep *service.Report, currency string) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("cp1250")
	pdf.SetTitle(tr("Meal report"), false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 10, tr(fmt.Sprintf("Meal report %s - %s", rep.FromDate, rep.ToDate)), "", 1, "L", false, 0, "")
	pdf.Ln(2)

	colWidths := []float64{32, 28, 28, 28, 34}
	headers := []string{"Date", "Breakfast", "Lunch", "Dinner", "Total"}

	writeHeader := func() {
		pdf.SetFont("Helvetica", "B", 10)
		pdf.SetFillColor(230, 230, 230)
		for i, h := range headers {
			pdf.CellFormat(colWidths[i], 8, tr(h), "1", 0, "C", true, 0, "")
		}
		pdf.Ln(-1)
		pdf.SetFont("Helvetica", "", 10)
	}
	writeHeader()

	for _, day := range rep.Days {
		if pdf.GetY() > 270 {
			pdf.AddPage()
			writeHeader()
		}
		cells := []string{
			day.Date,
			statusMark(day.Breakfast),
			statusMark(day.Lunch),
			statusMark(day.Dinner),
			fmt.Sprintf("%.2f %s", day.Total, currency),
		}
		for i, c := range cells {
			align := "C"
			if i == 0 || i == len(cells)-1 {
				align = "L"
			}
			pdf.CellFormat(colWidths[i], 7, tr(c), "1", 0, align, false, 0, "")
		}
		pdf.Ln(-1)
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 8, tr(fmt.Sprintf("Total: %.2f %s", rep.Total, currency)), "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "I", 8)
	pdf.SetTextColor(120, 120, 120)
	pdf.CellFormat(0, 6, tr("+ eaten   x skipped   - not marked"), "", 1, "L", false, 0, "")

	return pdf.Output(w)
}
