package report_test

import (
	"bytes"
	"testing"

	"github.com/Oleh-Rudko/TrackerFood/internal/model"
	"github.com/Oleh-Rudko/TrackerFood/internal/report"
	"github.com/Oleh-Rudko/TrackerFood/internal/service"
)

func TestWritePDF(t *testing.T) {
	t.Parallel()

	rep := &service.Report{
		FromDate: "2026-03-01",
		ToDate:   "2026-03-03",
		Days: []service.DayReport{
			{Date: "2026-03-01", Breakfast: model.StatusAte, Lunch: model.StatusUnmarked, Dinner: model.StatusAte, Total: 12},
			{Date: "2026-03-02", Breakfast: model.StatusDidNotEat, Lunch: model.StatusAte, Dinner: model.StatusUnmarked, Total: 10},
			{Date: "2026-03-03", Total: 0},
		},
		Total: 22,
	}

	var buf bytes.Buffer
	if err := report.WritePDF(&buf, rep, "zł"); err != nil {
		t.Fatalf("write pdf: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF")) {
		t.Fatalf("output does not look like a PDF")
	}
}

func TestWritePDFEmptyRange(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	err := report.WritePDF(&buf, &service.Report{FromDate: "2026-01-01", ToDate: "2026-01-01"}, "zł")
	if err != nil {
		t.Fatalf("write pdf: %v", err)
	}
	if buf.Len() == 0 {
		t.Fatalf("expected non-empty output")
	}
}
