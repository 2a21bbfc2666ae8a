// Package cmd - analyze command
package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"mouldflow/adapters/geometry"
	"mouldflow/core/engine"
	"mouldflow/core/types"
)

var (
	stlFile     string
	lengthMm    float64
	widthMm     float64
	heightMm    float64
	thicknessMm float64

	materialID   string
	cavities     int
	gateType     string
	safetyFactor float64
	gateDiaMm    float64
	runnerDiaMm  float64

	outputFormat string
)

// analyzeCmd represents the analyze command
var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Run a feasibility analysis for one part",
	Long: `Analyze a part's mouldability and print the result.

Geometry comes either from an STL file (--stl) or from manual bounding
dimensions (--length, --width, --height, --thickness). Exactly one of
the two must be given.

Examples:
  mouldflow analyze --stl housing.stl --material abs-general-purpose
  mouldflow analyze --length 150 --width 80 --height 30 --thickness 2.5 \
      --material pp-homopolymer --cavities 4 --gate pin
  mouldflow analyze --stl housing.stl --material pc-lexan-141r --format json`,
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVar(&stlFile, "stl", "", "STL file with the part geometry")
	analyzeCmd.Flags().Float64Var(&lengthMm, "length", 0, "part length in mm (manual geometry)")
	analyzeCmd.Flags().Float64Var(&widthMm, "width", 0, "part width in mm (manual geometry)")
	analyzeCmd.Flags().Float64Var(&heightMm, "height", 0, "part height in mm (manual geometry)")
	analyzeCmd.Flags().Float64Var(&thicknessMm, "thickness", 0, "average wall thickness in mm (manual geometry)")

	analyzeCmd.Flags().StringVarP(&materialID, "material", "m", "", "material id from the catalog (required)")
	analyzeCmd.Flags().IntVarP(&cavities, "cavities", "c", 1, "number of mold cavities")
	analyzeCmd.Flags().StringVarP(&gateType, "gate", "g", "edge", "gate type (edge, pin, fan, submarine)")
	analyzeCmd.Flags().Float64Var(&safetyFactor, "safety-factor", 1.15, "clamp tonnage safety factor")
	analyzeCmd.Flags().Float64Var(&gateDiaMm, "gate-diameter", 0, "gate diameter override in mm")
	analyzeCmd.Flags().Float64Var(&runnerDiaMm, "runner-diameter", 0, "runner diameter override in mm")

	analyzeCmd.Flags().StringVarP(&outputFormat, "format", "f", "text", "output format (text, json)")

	analyzeCmd.MarkFlagRequired("material")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	geo, err := resolveGeometry()
	if err != nil {
		return err
	}

	cat, err := loadCatalog()
	if err != nil {
		return err
	}
	material, err := cat.Material(materialID)
	if err != nil {
		return err
	}

	cfg := types.ProcessConfig{
		CavityCount:  cavities,
		Gate:         types.GateType(gateType),
		SafetyFactor: safetyFactor,
	}
	if gateDiaMm > 0 {
		cfg.GateDiameterMm = &gateDiaMm
	}
	if runnerDiaMm > 0 {
		cfg.RunnerDiameterMm = &runnerDiaMm
	}

	result, err := engine.Run(geo, material, cat.Machines(), cfg)
	if err != nil {
		return err
	}

	if outputFormat == "json" {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	printResult(geo, material, result)
	return nil
}

func resolveGeometry() (types.GeometrySummary, error) {
	manual := lengthMm > 0 || widthMm > 0 || heightMm > 0 || thicknessMm > 0

	switch {
	case stlFile != "" && manual:
		return types.GeometrySummary{}, fmt.Errorf("give either --stl or manual dimensions, not both")
	case stlFile != "":
		data, err := os.ReadFile(stlFile)
		if err != nil {
			return types.GeometrySummary{}, fmt.Errorf("reading %s: %w", stlFile, err)
		}
		return geometry.FromSTL(data)
	case manual:
		return geometry.FromManual(lengthMm, widthMm, heightMm, thicknessMm)
	default:
		return types.GeometrySummary{}, fmt.Errorf("geometry required: give --stl or --length/--width/--height/--thickness")
	}
}

func printResult(geo types.GeometrySummary, material types.MaterialProperties, result *types.AnalysisResult) {
	fmt.Println()
	fmt.Println("Feasibility Analysis")
	fmt.Println(strings.Repeat("=", 50))
	fmt.Printf("Material:          %s\n", material.Name)
	fmt.Printf("Geometry source:   %s\n", result.GeometrySource)
	fmt.Printf("Part volume:       %.3f cm3\n", geo.VolumeCm3)
	fmt.Printf("Projected area:    %.2f cm2\n", geo.ProjectedAreaCm2)
	fmt.Printf("Wall thickness:    %.2f / %.2f / %.2f mm (min/avg/max)\n",
		geo.MinThicknessMm, geo.AvgThicknessMm, geo.MaxThicknessMm)
	fmt.Println()

	fmt.Printf("Part weight:       %.2f g\n", result.PartWeightG)
	fmt.Printf("Shot weight:       %.2f g (%d cavities)\n", result.ShotWeightG, result.Config.CavityCount)
	fmt.Printf("Clamp tonnage:     %.1f T recommended (%.1f T minimum, %.1f T conservative)\n",
		result.Tonnage.RecommendedT, result.Tonnage.MinimumT, result.Tonnage.ConservativeT)
	fmt.Printf("Injection pressure: %.1f MPa\n", result.InjectionPressureMPa)
	fmt.Printf("Flow ratio:        %.1f (limit %.0f)\n", result.FlowRatio, material.MaxFlowLengthRatio)
	fmt.Printf("Gate diameter:     %.2f mm (%s gate)\n", result.GateDiameterMm, result.Config.Gate)
	fmt.Printf("Runner diameter:   %.2f mm\n", result.RunnerDiameterMm)
	fmt.Println()

	fmt.Println("Cycle time")
	fmt.Printf("  Fill     %6.1f s\n", result.Cycle.FillS)
	fmt.Printf("  Pack     %6.1f s\n", result.Cycle.PackS)
	fmt.Printf("  Cooling  %6.1f s\n", result.Cycle.CoolingS)
	fmt.Printf("  Overhead %6.1f s\n", result.Cycle.OverheadS)
	fmt.Printf("  Total    %6.1f s\n", result.Cycle.TotalS)
	fmt.Println()

	if len(result.Warnings) > 0 {
		fmt.Printf("Warnings (%d)\n", len(result.Warnings))
		for _, w := range result.Warnings {
			fmt.Printf("  [%s] %s\n", w.Severity, w.DesignerMessage)
			if w.Remediation != "" {
				fmt.Printf("           %s\n", w.Remediation)
			}
		}
		fmt.Println()
	}

	if len(result.Machines) > 0 {
		fmt.Println("Recommended machines")
		for _, rec := range result.Machines {
			fmt.Printf("  %-12s %6.0f T  %7.0f cm3  %s\n",
				rec.Machine.ID, rec.Machine.TonnageT, rec.Machine.MaxShotVolumeCm3, rec.Suitability)
			for _, note := range rec.Notes {
				fmt.Printf("               %s\n", note)
			}
		}
		fmt.Println()
	}

	fmt.Printf("Result: %s (score %d/100)\n", strings.ToUpper(string(result.Feasibility.Status)), result.Feasibility.Score)
}
