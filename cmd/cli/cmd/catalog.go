// Package cmd - catalog listing commands
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// materialsCmd lists the material catalog
var materialsCmd = &cobra.Command{
	Use:   "materials",
	Short: "List the material catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := loadCatalog()
		if err != nil {
			return err
		}
		fmt.Printf("%-24s %-28s %-10s %8s %6s %9s\n",
			"ID", "NAME", "CATEGORY", "DENSITY", "RATIO", "VISCOSITY")
		for _, m := range cat.Materials() {
			fmt.Printf("%-24s %-28s %-10s %8.3f %6.0f %9s\n",
				m.ID, m.Name, m.Category, m.DensityGCm3, m.MaxFlowLengthRatio, m.Viscosity)
		}
		return nil
	},
}

// machinesCmd lists the machine catalog
var machinesCmd = &cobra.Command{
	Use:   "machines",
	Short: "List the machine catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := loadCatalog()
		if err != nil {
			return err
		}
		fmt.Printf("%-12s %-28s %9s %12s %8s\n",
			"ID", "NAME", "TONNAGE", "MAX SHOT", "SCREW")
		for _, m := range cat.Machines() {
			fmt.Printf("%-12s %-28s %7.0f T %8.0f cm3 %5.0f mm\n",
				m.ID, m.Name, m.TonnageT, m.MaxShotVolumeCm3, m.ScrewDiameterMm)
		}
		return nil
	},
}
