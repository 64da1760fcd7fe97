package simulate

import "github.com/knitalgebra/checker/internal/domain"

// ExtractEdgeCounts implements spec.md §4.4's edge-count extraction: a
// total, deterministic function from a completed simulation plus a
// ComponentSpec and the joins that reference it, to an effective
// stitch-or-row count per edge. It never fails.
//
// isPickupDownstream reports whether (componentName, edgeName) is edge_b
// of a PICKUP join; it is supplied by the caller (internal/checkall) since
// extraction is a pure function of its inputs, not something this package
// looks up for itself.
func ExtractEdgeCounts(
	spec *domain.ComponentSpec,
	ir *domain.ComponentIR,
	result *Result,
	isPickupDownstream func(componentName, edgeName string) bool,
) map[string]int {
	counts := make(map[string]int, len(spec.Edges()))

	totalRows := totalRowCount(ir)
	beginsWithCastOn := len(ir.Operations()) > 0 && ir.Operations()[0].Kind() == domain.OpCastOn

	for _, edge := range spec.Edges() {
		if held, ok := result.FinalState.HeldStitches[edge.Name()]; ok {
			counts[edge.Name()] = held
			continue
		}

		switch edge.EdgeType() {
		case domain.EdgeTypeBoundOff, domain.EdgeTypeOpen:
			counts[edge.Name()] = ir.EndingStitchCount()
		case domain.EdgeTypeSelvedge:
			counts[edge.Name()] = totalRows
		case domain.EdgeTypeLiveStitch:
			switch {
			case isPickupDownstream(spec.Name(), edge.Name()):
				counts[edge.Name()] = ir.StartingStitchCount()
			case beginsWithCastOn:
				counts[edge.Name()] = ir.EndingStitchCount()
			default:
				counts[edge.Name()] = ir.StartingStitchCount()
			}
		case domain.EdgeTypeCastOn:
			counts[edge.Name()] = ir.StartingStitchCount()
		}
	}

	return counts
}

// totalRowCount sums every operation's declared row count (WORK_EVEN,
// INCREASE_SECTION, DECREASE_SECTION, TAPER). Per spec.md §4.4 a selvedge
// is a row-edge: its count is the total rows worked, not a stitch count.
func totalRowCount(ir *domain.ComponentIR) int {
	total := 0
	for _, op := range ir.Operations() {
		switch o := op.(type) {
		case domain.WorkEven:
			total += o.Rows
		case domain.IncreaseSection:
			total += o.Rows
		case domain.DecreaseSection:
			total += o.Rows
		case domain.Taper:
			total += o.Rows
		}
	}
	return total
}
