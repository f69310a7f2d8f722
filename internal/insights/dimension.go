package insights

// Dimension is one scored aspect of the strategy profile. Confidence is 0-100
// and drops monotonically as contributing inputs go missing; whenever
// confidence is above zero the rationale cites at least one input.
type Dimension[T ~string] struct {
	Value      T        `json:"value"`
	Confidence int      `json:"confidence"`
	Rationale  string   `json:"rationale"`
	Inputs     []string `json:"inputs"`
}

// Confidence bands keyed by how many of a dimension's expected inputs were
// actually present. Zero present inputs stays at or under the neutral-default
// ceiling of 30.
var confidenceBySignalCount = [...]int{25, 55, 70, 85, 90}

func confidenceFor(signals int) int {
	if signals < 0 {
		signals = 0
	}
	if signals >= len(confidenceBySignalCount) {
		signals = len(confidenceBySignalCount) - 1
	}
	return confidenceBySignalCount[signals]
}
