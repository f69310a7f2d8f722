package insights

import "strings"

// The summary is assembled from declarative template tables keyed by
// combinations of dimension values, not per-dimension, so the prose never
// contradicts itself (a stability-focused but highly flexible profile gets
// its own phrasing instead of two clashing sentences).

type summaryRule struct {
	matches func(sp *StrategyProfile) bool
	text    string
}

// leadRules choose the opening sentence from the income-strategy and
// planning-flexibility combination. First match wins.
var leadRules = []summaryRule{
	{
		matches: func(sp *StrategyProfile) bool {
			return sp.IncomeStrategy.Value == IncomeStabilityFocused && sp.PlanningFlexibility.Value == FlexHigh
		},
		text: "You favor dependable, stable income, while staying flexible about the path that produces it.",
	},
	{
		matches: func(sp *StrategyProfile) bool {
			return sp.IncomeStrategy.Value == IncomeStabilityFocused && sp.PlanningFlexibility.Value == FlexLow
		},
		text: "You favor dependable, stable income and a plan with firm, well-defined commitments.",
	},
	{
		matches: func(sp *StrategyProfile) bool {
			return sp.IncomeStrategy.Value == IncomeStabilityFocused
		},
		text: "You favor dependable, stable income, with room to adjust the plan as life changes.",
	},
	{
		matches: func(sp *StrategyProfile) bool {
			return sp.IncomeStrategy.Value == IncomeGrowthFocused && sp.PlanningFlexibility.Value == FlexLow
		},
		text: "You lean toward growth, anchored by commitments you don't intend to move.",
	},
	{
		matches: func(sp *StrategyProfile) bool {
			return sp.IncomeStrategy.Value == IncomeGrowthFocused
		},
		text: "You lean toward growth and are comfortable letting the plan evolve along the way.",
	},
	{
		matches: func(sp *StrategyProfile) bool {
			return sp.PlanningFlexibility.Value == FlexLow
		},
		text: "You balance stability and growth, within a plan that has firm, well-defined edges.",
	},
	{
		matches: func(sp *StrategyProfile) bool { return true },
		text:    "You balance stability and growth without a strong pull in either direction.",
	},
}

// timingSentences are keyed by the timing-sensitivity value alone; timing
// does not interact with the other dimensions in prose.
var timingSentences = map[TimingSensitivity]string{
	TimingHigh:   "Some of what matters to you is time-sensitive, so sequencing decisions well matters more than usual.",
	TimingMedium: "Your goals carry timeframes, but nothing is pressing in the near term.",
	TimingLow:    "Nothing on your horizon forces a near-term decision.",
}

type styleKey struct {
	complexity ComplexityTolerance
	support    SupportLevel
}

// styleSentences close the paragraph from the complexity-tolerance and
// decision-support combination. The interesting cells are the off-diagonal
// ones: a user can be complexity-tolerant yet still want heavy support.
var styleSentences = map[styleKey]string{
	{ComplexityAdvanced, SupportHigh}:     "You're comfortable with sophisticated strategies and still want a strong second opinion, so expect to use advisors for confirmation more than education.",
	{ComplexityAdvanced, SupportModerate}: "You're comfortable with sophisticated strategies and will likely want an advisor involved at key decision points.",
	{ComplexityAdvanced, SupportLow}:      "You're comfortable with sophisticated strategies and happy to drive the decisions yourself.",
	{ComplexityModerate, SupportHigh}:     "You're open to moderately involved strategies and want steady guidance while deciding.",
	{ComplexityModerate, SupportModerate}: "You're open to moderately involved strategies, with occasional guidance at bigger decisions.",
	{ComplexityModerate, SupportLow}:      "You're open to moderately involved strategies and prefer to work through them independently.",
	{ComplexitySimple, SupportHigh}:       "You prefer straightforward approaches with a trusted guide alongside you.",
	{ComplexitySimple, SupportModerate}:   "You prefer straightforward approaches, checking in for guidance when something big comes up.",
	{ComplexitySimple, SupportLow}:        "You prefer straightforward approaches you can run on your own.",
}

func renderSummary(sp *StrategyProfile) string {
	parts := make([]string, 0, 3)
	for _, rule := range leadRules {
		if rule.matches(sp) {
			parts = append(parts, rule.text)
			break
		}
	}
	if sentence, ok := timingSentences[sp.TimingSensitivity.Value]; ok {
		parts = append(parts, sentence)
	}
	if sentence, ok := styleSentences[styleKey{sp.ComplexityTolerance.Value, sp.DecisionSupport.Value}]; ok {
		parts = append(parts, sentence)
	}
	return strings.Join(parts, " ")
}
