package reports

import (
	"bytes"
	"html/template"

	"mouldflow/core/types"
	apperrors "mouldflow/internal/errors"
)

var htmlTmpl = template.Must(template.New("report").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Mold Flow Feasibility Report</title>
<style>
body { font-family: Helvetica, Arial, sans-serif; margin: 2em; color: #111827; }
h1 { font-size: 1.4em; }
h2 { font-size: 1.1em; margin-top: 1.5em; }
table { border-collapse: collapse; margin-top: 0.5em; }
td, th { border: 1px solid #d1d5db; padding: 6px 12px; text-align: left; }
.banner { padding: 10px; margin: 12px 0; background: #fef3c7; border: 1px solid #f59e0b; }
.status { display: inline-block; padding: 4px 12px; color: white; background: {{.StatusColor}}; }
.warning { padding: 8px; margin: 4px 0; border-left: 4px solid; background: #f9fafb; }
.meta { color: #6b7280; font-size: 0.9em; }
</style>
</head>
<body>
<h1>Mold Flow Feasibility Report</h1>
<p class="meta">Project: {{.ProjectName}} &middot; Part: {{.PartName}} &middot; Material: {{.MaterialName}} &middot; Generated: {{.Generated}}</p>
{{if .ManualEstimate}}<div class="banner">{{.SourceLabel}}: geometry was estimated from manual dimensions, not CAD data.</div>{{end}}

<h2>Feasibility</h2>
<p><span class="status">{{.Status}}</span> &nbsp; Score: {{.Score}}/100</p>

<h2>Key Figures</h2>
<table>
<tr><th>Recommended clamp tonnage</th><td>{{.RecommendedT}} T</td></tr>
<tr><th>Estimated cycle time</th><td>{{.CycleTotal}} s</td></tr>
<tr><th>Part weight</th><td>{{.PartWeight}} g</td></tr>
{{if .Designer}}
<tr><th>Minimum / conservative tonnage</th><td>{{.MinimumT}} / {{.ConservativeT}} T</td></tr>
<tr><th>Fill time</th><td>{{.FillTime}} s</td></tr>
<tr><th>Injection pressure</th><td>{{.InjectionPressure}} MPa</td></tr>
<tr><th>Gate / runner diameter</th><td>{{.GateDiameter}} / {{.RunnerDiameter}} mm</td></tr>
<tr><th>Flow length / ratio</th><td>{{.FlowLength}} mm / {{.FlowRatio}}</td></tr>
<tr><th>Shot weight / volume</th><td>{{.ShotWeight}} g / {{.ShotVolume}} cm&#179;</td></tr>
{{end}}
</table>

{{if .Designer}}
<h2>Cycle Breakdown</h2>
<table>
<tr><th>Fill</th><th>Pack</th><th>Cooling</th><th>Overhead</th><th>Total</th></tr>
<tr><td>{{.CycleFill}} s</td><td>{{.CyclePack}} s</td><td>{{.CycleCooling}} s</td><td>{{.CycleOverhead}} s</td><td>{{.CycleTotal}} s</td></tr>
</table>
{{end}}

{{if .Warnings}}
<h2>Warnings</h2>
{{range .Warnings}}<div class="warning" style="border-left-color: {{.Color}}">{{.Message}}{{if .Remediation}}<br><em>{{.Remediation}}</em>{{end}}</div>
{{end}}
{{end}}

{{if .Machines}}
<h2>Recommended Machines</h2>
<table>
<tr><th>Machine</th><th>Tonnage</th><th>Suitability</th>{{if .Designer}}<th>Notes</th>{{end}}</tr>
{{range .Machines}}<tr><td>{{.Name}}</td><td>{{.Tonnage}} T</td><td>{{.Suitability}}</td>{{if $.Designer}}<td>{{.Notes}}</td>{{end}}</tr>
{{end}}
</table>
{{end}}
</body>
</html>
`))

type htmlWarning struct {
	Message     string
	Remediation string
	Color       string
}

type htmlMachine struct {
	Name        string
	Tonnage     float64
	Suitability types.Suitability
	Notes       string
}

type htmlData struct {
	ProjectName    string
	PartName       string
	MaterialName   string
	Generated      string
	ManualEstimate bool
	SourceLabel    string
	Designer       bool

	Status      types.FeasibilityStatus
	StatusColor string
	Score       int

	MinimumT      float64
	RecommendedT  float64
	ConservativeT float64

	FillTime          float64
	InjectionPressure float64
	GateDiameter      float64
	RunnerDiameter    float64
	FlowLength        float64
	FlowRatio         float64

	CycleFill     float64
	CyclePack     float64
	CycleCooling  float64
	CycleOverhead float64
	CycleTotal    float64

	PartWeight float64
	ShotWeight float64
	ShotVolume float64

	Warnings []htmlWarning
	Machines []htmlMachine
}

func renderHTML(in Input, view View) ([]byte, error) {
	r := in.Result

	data := htmlData{
		ProjectName:    in.ProjectName,
		PartName:       in.PartName,
		MaterialName:   in.Material.Name,
		Generated:      in.GeneratedAt.Format("2006-01-02 15:04 UTC"),
		ManualEstimate: r.GeometrySource == types.SourceManual,
		SourceLabel:    r.GeometrySource.Label(),
		Designer:       view == ViewDesigner,

		Status:      r.Feasibility.Status,
		StatusColor: statusColor(r.Feasibility.Status),
		Score:       r.Feasibility.Score,

		MinimumT:      r.Tonnage.MinimumT,
		RecommendedT:  r.Tonnage.RecommendedT,
		ConservativeT: r.Tonnage.ConservativeT,

		FillTime:          r.FillTimeS,
		InjectionPressure: r.InjectionPressureMPa,
		GateDiameter:      r.GateDiameterMm,
		RunnerDiameter:    r.RunnerDiameterMm,
		FlowLength:        r.FlowLengthMm,
		FlowRatio:         r.FlowRatio,

		CycleFill:     r.Cycle.FillS,
		CyclePack:     r.Cycle.PackS,
		CycleCooling:  r.Cycle.CoolingS,
		CycleOverhead: r.Cycle.OverheadS,
		CycleTotal:    r.Cycle.TotalS,

		PartWeight: r.PartWeightG,
		ShotWeight: r.ShotWeightG,
		ShotVolume: r.ShotVolumeCm3,
	}

	for _, w := range r.Warnings {
		hw := htmlWarning{
			Message: warningMessage(w, view),
			Color:   severityColor(w.Severity),
		}
		if view == ViewDesigner {
			hw.Remediation = w.Remediation
		}
		data.Warnings = append(data.Warnings, hw)
	}

	for _, m := range r.Machines {
		hm := htmlMachine{
			Name:        m.Machine.Name,
			Tonnage:     m.Machine.TonnageT,
			Suitability: m.Suitability,
		}
		if len(m.Notes) > 0 {
			hm.Notes = m.Notes[0]
			for _, n := range m.Notes[1:] {
				hm.Notes += "; " + n
			}
		}
		data.Machines = append(data.Machines, hm)
	}

	var buf bytes.Buffer
	if err := htmlTmpl.Execute(&buf, data); err != nil {
		return nil, apperrors.Report("render HTML report", err)
	}
	return buf.Bytes(), nil
}
