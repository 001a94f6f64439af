// Package reconcile computes the derived font sets from the declared
// requirements and the observed project, engine and library state. It is
// pure: no I/O, and the same inputs always produce the same sets.
package reconcile

import "github.com/typmgr/fontctl/internal/fontset"

// Sets holds the reconciliation result. All five are true mathematical
// sets; display ordering comes from the font total order.
//
// Invariants: Missing is disjoint from both Embedded and Current, and
// Redundant is disjoint from Required, by construction.
type Sets struct {
	Required  fontset.Set
	Current   fontset.Set
	Embedded  fontset.Set
	Missing   fontset.Set
	Redundant fontset.Set
}

// Compute derives the missing and redundant sets:
//
//	missing   = (required − embedded) − current
//	redundant = current − required
func Compute(required, current, embedded fontset.Set) Sets {
	return Sets{
		Required:  required,
		Current:   current,
		Embedded:  embedded,
		Missing:   required.Difference(embedded).Difference(current),
		Redundant: current.Difference(required),
	}
}

// Status classifies a single font against the reconciliation result.
type Status int

const (
	// StatusPresent: required and satisfied by a file in the project.
	StatusPresent Status = iota
	// StatusEmbedded: required and bundled with the engine. Dominates
	// StatusPresent when both apply.
	StatusEmbedded
	// StatusRedundant: in the project but not required.
	StatusRedundant
	// StatusRepairable: missing but available in the font library.
	StatusRepairable
	// StatusUnrepairable: missing and absent from the font library.
	StatusUnrepairable
)

// String names the status for reports.
func (s Status) String() string {
	switch s {
	case StatusEmbedded:
		return "embedded"
	case StatusRedundant:
		return "redundant"
	case StatusRepairable:
		return "repairable"
	case StatusUnrepairable:
		return "unrepairable"
	default:
		return "present"
	}
}

// Classify returns the status of a font that appears in at least one of the
// computed sets, consulting the library map for repairability.
func (s Sets) Classify(f fontset.Font, lib fontset.PathMap) Status {
	switch {
	case s.Required.Contains(f) && s.Embedded.Contains(f):
		return StatusEmbedded
	case s.Missing.Contains(f):
		if lib.Contains(f) {
			return StatusRepairable
		}
		return StatusUnrepairable
	case s.Required.Contains(f):
		return StatusPresent
	default:
		return StatusRedundant
	}
}
