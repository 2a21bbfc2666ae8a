package reports

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	apperrors "mouldflow/internal/errors"
)

func renderXLSX(in Input, view View) ([]byte, error) {
	r := in.Result

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Feasibility"
	f.SetSheetName("Sheet1", sheet)

	rowNum := 1
	set := func(label string, value interface{}) {
		f.SetCellValue(sheet, fmt.Sprintf("A%d", rowNum), label)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", rowNum), value)
		rowNum++
	}

	set("Project", in.ProjectName)
	set("Part", in.PartName)
	set("Material", in.Material.Name)
	set("Generated", in.GeneratedAt.Format("2006-01-02 15:04 UTC"))
	set("Geometry source", r.GeometrySource.Label())
	rowNum++

	set("Feasibility status", string(r.Feasibility.Status))
	set("Feasibility score", r.Feasibility.Score)
	set("Recommended tonnage (T)", r.Tonnage.RecommendedT)
	set("Cycle time (s)", r.Cycle.TotalS)
	set("Part weight (g)", r.PartWeightG)

	if view == ViewDesigner {
		set("Minimum tonnage (T)", r.Tonnage.MinimumT)
		set("Conservative tonnage (T)", r.Tonnage.ConservativeT)
		set("Fill time (s)", r.FillTimeS)
		set("Injection pressure (MPa)", r.InjectionPressureMPa)
		set("Gate diameter (mm)", r.GateDiameterMm)
		set("Runner diameter (mm)", r.RunnerDiameterMm)
		set("Flow length (mm)", r.FlowLengthMm)
		set("Flow ratio", r.FlowRatio)
		set("Shot weight (g)", r.ShotWeightG)
		set("Shot volume (cm3)", r.ShotVolumeCm3)
		set("Cycle fill (s)", r.Cycle.FillS)
		set("Cycle pack (s)", r.Cycle.PackS)
		set("Cycle cooling (s)", r.Cycle.CoolingS)
		set("Cycle overhead (s)", r.Cycle.OverheadS)
	}

	if len(r.Warnings) > 0 {
		rowNum++
		f.SetCellValue(sheet, fmt.Sprintf("A%d", rowNum), "Warnings")
		rowNum++
		f.SetCellValue(sheet, fmt.Sprintf("A%d", rowNum), "Severity")
		f.SetCellValue(sheet, fmt.Sprintf("B%d", rowNum), "Message")
		rowNum++
		for _, w := range r.Warnings {
			f.SetCellValue(sheet, fmt.Sprintf("A%d", rowNum), string(w.Severity))
			f.SetCellValue(sheet, fmt.Sprintf("B%d", rowNum), warningMessage(w, view))
			rowNum++
		}
	}

	if len(r.Machines) > 0 {
		rowNum++
		f.SetCellValue(sheet, fmt.Sprintf("A%d", rowNum), "Recommended machines")
		rowNum++
		f.SetCellValue(sheet, fmt.Sprintf("A%d", rowNum), "Machine")
		f.SetCellValue(sheet, fmt.Sprintf("B%d", rowNum), "Tonnage (T)")
		f.SetCellValue(sheet, fmt.Sprintf("C%d", rowNum), "Suitability")
		rowNum++
		for _, m := range r.Machines {
			f.SetCellValue(sheet, fmt.Sprintf("A%d", rowNum), m.Machine.Name)
			f.SetCellValue(sheet, fmt.Sprintf("B%d", rowNum), m.Machine.TonnageT)
			f.SetCellValue(sheet, fmt.Sprintf("C%d", rowNum), string(m.Suitability))
			rowNum++
		}
	}

	f.SetColWidth(sheet, "A", "A", 32)
	f.SetColWidth(sheet, "B", "B", 48)

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, apperrors.Report("render XLSX report", err)
	}
	return buf.Bytes(), nil
}
