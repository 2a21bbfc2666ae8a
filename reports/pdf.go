package reports

import (
	"bytes"
	"fmt"

	"github.com/phpdave11/gofpdf"

	"mouldflow/core/types"
	apperrors "mouldflow/internal/errors"
)

func renderPDF(in Input, view View) ([]byte, error) {
	r := in.Result

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, "Mold Flow Feasibility Report")
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(0, 6, fmt.Sprintf("Project: %s    Part: %s", in.ProjectName, in.PartName))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Material: %s    Generated: %s", in.Material.Name, in.GeneratedAt.Format("2006-01-02 15:04 UTC")))
	pdf.Ln(8)

	if r.GeometrySource == types.SourceManual {
		pdf.SetFillColor(254, 243, 199)
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(0, 8, r.GeometrySource.Label()+": geometry estimated from manual dimensions", "1", 1, "L", true, 0, "")
		pdf.Ln(4)
	}

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Feasibility: %s (score %d/100)", r.Feasibility.Status, r.Feasibility.Score))
	pdf.Ln(10)

	row := func(label, value string) {
		pdf.SetFont("Helvetica", "", 10)
		pdf.CellFormat(70, 6, label, "1", 0, "L", false, 0, "")
		pdf.CellFormat(60, 6, value, "1", 1, "L", false, 0, "")
	}

	row("Recommended clamp tonnage", fmt.Sprintf("%.1f T", r.Tonnage.RecommendedT))
	row("Estimated cycle time", fmt.Sprintf("%.1f s", r.Cycle.TotalS))
	row("Part weight", fmt.Sprintf("%.2f g", r.PartWeightG))

	if view == ViewDesigner {
		row("Minimum / conservative tonnage", fmt.Sprintf("%.1f / %.1f T", r.Tonnage.MinimumT, r.Tonnage.ConservativeT))
		row("Fill time", fmt.Sprintf("%.1f s", r.FillTimeS))
		row("Injection pressure", fmt.Sprintf("%.1f MPa", r.InjectionPressureMPa))
		row("Gate / runner diameter", fmt.Sprintf("%.2f / %.2f mm", r.GateDiameterMm, r.RunnerDiameterMm))
		row("Flow length / ratio", fmt.Sprintf("%.1f mm / %.1f", r.FlowLengthMm, r.FlowRatio))
		row("Shot weight / volume", fmt.Sprintf("%.2f g / %.2f cm3", r.ShotWeightG, r.ShotVolumeCm3))
		row("Cycle fill / pack / cool / overhead", fmt.Sprintf("%.1f / %.1f / %.1f / %.1f s", r.Cycle.FillS, r.Cycle.PackS, r.Cycle.CoolingS, r.Cycle.OverheadS))
	}
	pdf.Ln(6)

	if len(r.Warnings) > 0 {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.Cell(0, 8, "Warnings")
		pdf.Ln(8)
		for _, w := range r.Warnings {
			pdf.SetFont("Helvetica", "B", 9)
			pdf.Cell(0, 5, fmt.Sprintf("[%s]", w.Severity))
			pdf.Ln(5)
			pdf.SetFont("Helvetica", "", 10)
			pdf.MultiCell(0, 5, warningMessage(w, view), "", "L", false)
			if view == ViewDesigner && w.Remediation != "" {
				pdf.SetFont("Helvetica", "I", 9)
				pdf.MultiCell(0, 5, w.Remediation, "", "L", false)
			}
			pdf.Ln(2)
		}
	}

	if len(r.Machines) > 0 {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.Cell(0, 8, "Recommended Machines")
		pdf.Ln(8)
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(60, 6, "Machine", "1", 0, "L", false, 0, "")
		pdf.CellFormat(30, 6, "Tonnage", "1", 0, "L", false, 0, "")
		pdf.CellFormat(40, 6, "Suitability", "1", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		for _, m := range r.Machines {
			pdf.CellFormat(60, 6, m.Machine.Name, "1", 0, "L", false, 0, "")
			pdf.CellFormat(30, 6, fmt.Sprintf("%.0f T", m.Machine.TonnageT), "1", 0, "L", false, 0, "")
			pdf.CellFormat(40, 6, string(m.Suitability), "1", 1, "L", false, 0, "")
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, apperrors.Report("render PDF report", err)
	}
	return buf.Bytes(), nil
}
