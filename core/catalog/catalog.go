// Package catalog holds a validated, read-only snapshot of the material
// and machine catalogs. Callers load a snapshot once and pass it to the
// engine; nothing mutates it afterwards, so concurrent analyses can
// share one snapshot without coordination.
package catalog

import (
	"mouldflow/core/types"
	apperrors "mouldflow/internal/errors"
)

// Catalog is an immutable material/machine snapshot with ordered,
// id-keyed access. The slices preserve the declaration order of the
// source files; listings are stable across calls.
type Catalog struct {
	materials   []types.MaterialProperties
	machines    []types.MachineSpec
	materialIdx map[string]int
	machineIdx  map[string]int
}

// New validates every record and builds the snapshot. Duplicate ids and
// malformed records are load-time errors; the engine never sees them.
func New(materials []types.MaterialProperties, machines []types.MachineSpec) (*Catalog, error) {
	c := &Catalog{
		materials:   make([]types.MaterialProperties, 0, len(materials)),
		machines:    make([]types.MachineSpec, 0, len(machines)),
		materialIdx: make(map[string]int, len(materials)),
		machineIdx:  make(map[string]int, len(machines)),
	}

	for _, m := range materials {
		if err := ValidateMaterial(m); err != nil {
			return nil, err
		}
		if _, dup := c.materialIdx[m.ID]; dup {
			return nil, apperrors.Material("duplicate material id %q", m.ID)
		}
		c.materialIdx[m.ID] = len(c.materials)
		c.materials = append(c.materials, m)
	}

	for _, m := range machines {
		if err := ValidateMachine(m); err != nil {
			return nil, err
		}
		if _, dup := c.machineIdx[m.ID]; dup {
			return nil, apperrors.Newf(apperrors.TypeConfig, "duplicate machine id %q", m.ID)
		}
		c.machineIdx[m.ID] = len(c.machines)
		c.machines = append(c.machines, m)
	}

	return c, nil
}

// Materials returns the materials in declaration order. The returned
// slice is a copy; callers may not reach the snapshot through it.
func (c *Catalog) Materials() []types.MaterialProperties {
	out := make([]types.MaterialProperties, len(c.materials))
	copy(out, c.materials)
	return out
}

// Machines returns the machines in declaration order, copied.
func (c *Catalog) Machines() []types.MachineSpec {
	out := make([]types.MachineSpec, len(c.machines))
	copy(out, c.machines)
	return out
}

// Material looks up a material by id.
func (c *Catalog) Material(id string) (types.MaterialProperties, error) {
	i, ok := c.materialIdx[id]
	if !ok {
		return types.MaterialProperties{}, apperrors.NotFound("material", id)
	}
	return c.materials[i], nil
}

// Machine looks up a machine by id.
func (c *Catalog) Machine(id string) (types.MachineSpec, error) {
	i, ok := c.machineIdx[id]
	if !ok {
		return types.MachineSpec{}, apperrors.NotFound("machine", id)
	}
	return c.machines[i], nil
}

// MaterialCount returns the number of materials in the snapshot.
func (c *Catalog) MaterialCount() int { return len(c.materials) }

// MachineCount returns the number of machines in the snapshot.
func (c *Catalog) MachineCount() int { return len(c.machines) }

// ValidateMaterial checks the fields the engine depends on.
func ValidateMaterial(m types.MaterialProperties) error {
	switch {
	case m.ID == "":
		return apperrors.Material("material is missing an id")
	case m.Name == "":
		return apperrors.Material("material %q is missing a name", m.ID)
	case m.DensityGCm3 <= 0:
		return apperrors.Material("material %q has non-positive density %g g/cm³", m.ID, m.DensityGCm3)
	case !m.Viscosity.IsValid():
		return apperrors.Material("material %q has unknown viscosity class %q", m.ID, m.Viscosity)
	case m.MaxFlowLengthRatio <= 0:
		return apperrors.Material("material %q has non-positive max flow length ratio %g", m.ID, m.MaxFlowLengthRatio)
	case m.PressureMinMPa <= 0 || m.PressureMaxMPa < m.PressureMinMPa:
		return apperrors.Material("material %q has invalid pressure range %g..%g MPa", m.ID, m.PressureMinMPa, m.PressureMaxMPa)
	case m.MeltTempMaxC < m.MeltTempMinC:
		return apperrors.Material("material %q has inverted melt temperature range", m.ID)
	}
	return nil
}

// ValidateMachine checks the fields the recommender depends on.
func ValidateMachine(m types.MachineSpec) error {
	switch {
	case m.ID == "":
		return apperrors.Newf(apperrors.TypeConfig, "machine is missing an id")
	case m.Name == "":
		return apperrors.Newf(apperrors.TypeConfig, "machine %q is missing a name", m.ID)
	case m.TonnageT <= 0:
		return apperrors.Newf(apperrors.TypeConfig, "machine %q has non-positive tonnage %g T", m.ID, m.TonnageT)
	case m.MaxShotVolumeCm3 <= 0:
		return apperrors.Newf(apperrors.TypeConfig, "machine %q has non-positive shot volume %g cm³", m.ID, m.MaxShotVolumeCm3)
	}
	return nil
}
