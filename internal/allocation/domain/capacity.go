package domain

import (
	consumerdomain "github.com/voltgrid/voltgrid/internal/consumer/domain"
	gendomain "github.com/voltgrid/voltgrid/internal/generator/domain"
)

// CapacityView is the derived capacity breakdown of a generator. It is a
// display/statistics computation and never gates writes.
type CapacityView struct {
	AllocatedPercentage float64 `json:"allocated_percentage"`
	AvailablePercentage float64 `json:"available_percentage"`
	AllocatedCapacity   float64 `json:"allocated_capacity"`
	AvailableCapacity   float64 `json:"available_capacity"`
}

// ComputeCapacityView sums the allocated percentages of the consumers pointing
// at the generator. Percentages are clamped to [0, 100] and capacities to
// >= 0: the write path permits over-allocation, and the read side must never
// report negative or >100% figures.
func ComputeCapacityView(generator gendomain.Generator, consumers []consumerdomain.Consumer) CapacityView {
	var sum float64
	for _, c := range consumers {
		if c.GeneratorID == nil || *c.GeneratorID != generator.ID {
			continue
		}
		if c.AllocatedPercentage == nil {
			continue
		}
		sum += *c.AllocatedPercentage
	}

	allocatedPct := sum
	if allocatedPct > 100 {
		allocatedPct = 100
	}
	if allocatedPct < 0 {
		allocatedPct = 0
	}

	availablePct := 100 - sum
	if availablePct < 0 {
		availablePct = 0
	}

	allocatedCapacity := generator.InstalledPower * sum / 100
	availableCapacity := generator.InstalledPower - allocatedCapacity
	if availableCapacity < 0 {
		availableCapacity = 0
	}

	return CapacityView{
		AllocatedPercentage: allocatedPct,
		AvailablePercentage: availablePct,
		AllocatedCapacity:   allocatedCapacity,
		AvailableCapacity:   availableCapacity,
	}
}
