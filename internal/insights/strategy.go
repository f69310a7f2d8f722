package insights

import (
	"fmt"
	"strings"
	"time"
)

// IncomeStrategy is the income-strategy orientation dimension value.
type IncomeStrategy string

const (
	IncomeStabilityFocused IncomeStrategy = "STABILITY_FOCUSED"
	IncomeBalanced         IncomeStrategy = "BALANCED"
	IncomeGrowthFocused    IncomeStrategy = "GROWTH_FOCUSED"
)

// TimingSensitivity is the timing-sensitivity dimension value.
type TimingSensitivity string

const (
	TimingHigh   TimingSensitivity = "HIGH"
	TimingMedium TimingSensitivity = "MEDIUM"
	TimingLow    TimingSensitivity = "LOW"
)

// FlexibilityLevel is the planning-flexibility dimension value.
type FlexibilityLevel string

const (
	FlexHigh     FlexibilityLevel = "HIGH"
	FlexModerate FlexibilityLevel = "MODERATE"
	FlexLow      FlexibilityLevel = "LOW"
)

// ComplexityTolerance is the complexity-tolerance dimension value.
type ComplexityTolerance string

const (
	ComplexitySimple   ComplexityTolerance = "SIMPLE"
	ComplexityModerate ComplexityTolerance = "MODERATE"
	ComplexityAdvanced ComplexityTolerance = "ADVANCED"
)

// SupportLevel is the decision-support-need dimension value.
type SupportLevel string

const (
	SupportHigh     SupportLevel = "HIGH"
	SupportModerate SupportLevel = "MODERATE"
	SupportLow      SupportLevel = "LOW"
)

// StrategyProfile describes how the person approaches financial decisions.
// It is produced whole and regenerated wholesale on any profile change, never
// patched in place.
type StrategyProfile struct {
	IncomeStrategy      Dimension[IncomeStrategy]      `json:"incomeStrategy"`
	TimingSensitivity   Dimension[TimingSensitivity]   `json:"timingSensitivity"`
	PlanningFlexibility Dimension[FlexibilityLevel]    `json:"planningFlexibility"`
	ComplexityTolerance Dimension[ComplexityTolerance] `json:"complexityTolerance"`
	DecisionSupport     Dimension[SupportLevel]        `json:"decisionSupport"`
	Summary             string                         `json:"summary"`
	GeneratedAt         time.Time                      `json:"generatedAt"`
}

// ScoreStrategyProfile computes all five dimensions from the profile. It is a
// total function: missing sections degrade to neutral values with reduced
// confidence and never produce an error.
func (e *Engine) ScoreStrategyProfile(p *Profile) StrategyProfile {
	sp := StrategyProfile{
		IncomeStrategy:      scoreIncomeStrategy(p),
		TimingSensitivity:   scoreTimingSensitivity(p, e.cfg),
		PlanningFlexibility: scorePlanningFlexibility(p),
		ComplexityTolerance: scoreComplexityTolerance(p),
		DecisionSupport:     scoreDecisionSupport(p),
		GeneratedAt:         now().UTC(),
	}
	sp.Summary = renderSummary(&sp)
	return sp
}

const (
	incomeDecisiveMargin = 1.5
	longHorizonYears     = 15
	shortRunwayYears     = 5
)

func scoreIncomeStrategy(p *Profile) Dimension[IncomeStrategy] {
	var stability, growth float64
	var inputs, reasons []string

	if top, ok := p.topValue(); ok {
		inputs = append(inputs, "values.ranked")
		switch top {
		case ValueSecurity, ValueFamily, ValueSimplicity:
			stability += 2
			reasons = append(reasons, fmt.Sprintf("your top value of %s", valueCategoryLabels[top]))
		case ValueGrowth, ValueFreedom:
			growth += 2
			reasons = append(reasons, fmt.Sprintf("your top value of %s", valueCategoryLabels[top]))
		default:
			reasons = append(reasons, fmt.Sprintf("your top value of %s, which pulls in neither direction", valueCategoryLabels[top]))
		}
	}

	if p.Basic != nil && p.Basic.YearsToRetirement != nil {
		inputs = append(inputs, "basic.yearsToRetirement")
		years := *p.Basic.YearsToRetirement
		switch {
		case years <= shortRunwayYears:
			stability += 1.5
			reasons = append(reasons, fmt.Sprintf("a short %d-year runway to retirement", years))
		case years >= longHorizonYears:
			growth += 1.5
			reasons = append(reasons, fmt.Sprintf("a long %d-year horizon", years))
		default:
			reasons = append(reasons, fmt.Sprintf("a mid-range %d-year horizon", years))
		}
	}

	if p.Purpose != nil && len(p.Purpose.TradeoffAnchors) > 0 {
		counted := false
		for _, anchor := range p.Purpose.TradeoffAnchors {
			switch anchor.Leaning {
			case LeanSecurity, LeanCertainty:
				stability++
				counted = true
			case LeanGrowth:
				growth++
				counted = true
			}
		}
		if counted {
			inputs = append(inputs, "purpose.tradeoffAnchors")
			reasons = append(reasons, "your tradeoff leanings")
		}
	}

	signals := len(inputs)
	value := IncomeBalanced
	switch {
	case stability-growth >= incomeDecisiveMargin:
		value = IncomeStabilityFocused
	case growth-stability >= incomeDecisiveMargin:
		value = IncomeGrowthFocused
	}

	confidence := confidenceFor(signals)
	if value == IncomeBalanced && signals > 0 {
		// Mixed signals: present but inconclusive inputs lower certainty.
		confidence -= 15
	}

	rationale := ""
	switch {
	case signals == 0:
		rationale = "No values ranking, retirement timing, or tradeoff answers yet; defaulting to a balanced income strategy."
	case value == IncomeBalanced:
		rationale = "Mixed signals from " + joinReasons(reasons) + " point in both directions, so a balanced orientation fits best."
	default:
		rationale = "Based on " + joinReasons(reasons) + "."
	}

	return Dimension[IncomeStrategy]{Value: value, Confidence: confidence, Rationale: rationale, Inputs: inputs}
}

func scoreTimingSensitivity(p *Profile, cfg Config) Dimension[TimingSensitivity] {
	var inputs, reasons []string
	nearTermGoal := false
	anyHorizon := false
	fixedDate := false

	goals := p.goalsList()
	if len(goals) > 0 {
		inputs = append(inputs, "goals")
		for _, g := range goals {
			// Long horizons alone are not a timing signal.
			if g.TimeHorizon == HorizonShort || g.TimeHorizon == HorizonMedium {
				anyHorizon = true
			}
			if g.TimeHorizon == HorizonShort && g.Priority == PriorityHigh {
				nearTermGoal = true
				reasons = append(reasons, fmt.Sprintf("the near-term high-priority goal %q", goalLabel(g)))
			}
			if g.FixedDate {
				fixedDate = true
			}
		}
		if fixedDate {
			reasons = append(reasons, "a fixed-date commitment")
		}
	}

	retirementSoon := false
	if p.Basic != nil && p.Basic.YearsToRetirement != nil {
		inputs = append(inputs, "basic.yearsToRetirement")
		if nearRetirement(p, cfg) {
			retirementSoon = true
			reasons = append(reasons, fmt.Sprintf("retirement within %d years", *p.Basic.YearsToRetirement))
		}
	}

	value := TimingLow
	switch {
	case nearTermGoal || retirementSoon || fixedDate:
		value = TimingHigh
	case anyHorizon:
		value = TimingMedium
		reasons = append(reasons, "goal timeframes without near-term pressure")
	}

	confidence := confidenceFor(len(inputs))
	rationale := ""
	switch {
	case len(inputs) == 0:
		rationale = "No goals or retirement timing recorded yet, so timing sensitivity stays low by default."
	case value == TimingLow:
		rationale = "Nothing recorded carries near- or medium-term pressure; goals sit on long or unstated horizons."
	default:
		rationale = "Driven by " + joinReasons(reasons) + "."
	}

	return Dimension[TimingSensitivity]{Value: value, Confidence: confidence, Rationale: rationale, Inputs: inputs}
}

const (
	flexHighShare      = 0.7
	flexLowFixedShare  = 0.5
	fewNonNegotiables  = 1
	manyNonNegotiables = 3
)

func scorePlanningFlexibility(p *Profile) Dimension[FlexibilityLevel] {
	var inputs []string
	flexible, fixed := 0, 0
	for _, g := range p.goalsList() {
		switch g.Flexibility {
		case FlexibilityFlexible:
			flexible++
		case FlexibilityFixed:
			fixed++
		}
	}
	flagged := flexible + fixed
	if flagged > 0 {
		inputs = append(inputs, "goals")
	}

	nonNeg := 0
	if p.Values != nil {
		nonNeg = len(p.Values.NonNegotiables)
		if len(p.Values.NonNegotiables) > 0 || len(p.Values.Ranked) > 0 {
			inputs = append(inputs, "values")
		}
	}

	value := FlexModerate
	rationale := ""
	switch {
	case len(inputs) == 0:
		rationale = "No goal-flexibility flags or non-negotiables yet; assuming moderate flexibility."
	case nonNeg >= manyNonNegotiables || (flagged > 0 && float64(fixed)/float64(flagged) >= flexLowFixedShare):
		value = FlexLow
		rationale = fmt.Sprintf("With %d non-negotiable values and %d of %d goals marked fixed, the plan has firm edges.", nonNeg, fixed, flagged)
	case flagged > 0 && float64(flexible)/float64(flagged) >= flexHighShare && nonNeg <= fewNonNegotiables:
		value = FlexHigh
		rationale = fmt.Sprintf("Most goals (%d of %d) are flagged flexible and few values are non-negotiable.", flexible, flagged)
	default:
		rationale = "A mix of flexible and fixed goals suggests moderate flexibility."
	}

	return Dimension[FlexibilityLevel]{Value: value, Confidence: confidenceFor(len(inputs)), Rationale: rationale, Inputs: inputs}
}

func scoreComplexityTolerance(p *Profile) Dimension[ComplexityTolerance] {
	var inputs, reasons []string
	score := 0
	prefersSimple := false

	if pu := p.Purpose; pu != nil {
		if pu.FinancialConfidence != "" {
			inputs = append(inputs, "purpose.financialConfidence")
			switch pu.FinancialConfidence {
			case ConfidenceHigh:
				score += 2
				reasons = append(reasons, "high financial confidence")
			case ConfidenceModerate:
				score++
				reasons = append(reasons, "moderate financial confidence")
			case ConfidenceLow:
				score--
				reasons = append(reasons, "low financial confidence")
			}
		}
		if pu.DesiredInvolvement != "" {
			inputs = append(inputs, "purpose.desiredInvolvement")
			switch pu.DesiredInvolvement {
			case InvolvementHandsOn:
				score += 2
				reasons = append(reasons, "a hands-on involvement preference")
			case InvolvementCollaborative:
				score++
				reasons = append(reasons, "a collaborative involvement preference")
			}
		}
		if pu.PrefersSimplicity {
			inputs = append(inputs, "purpose.prefersSimplicity")
			prefersSimple = true
			reasons = append(reasons, "an explicit preference for simplicity")
		}
	}

	value := ComplexityModerate
	switch {
	case prefersSimple:
		value = ComplexitySimple
	case len(inputs) == 0:
		value = ComplexityModerate
	case score >= 3:
		value = ComplexityAdvanced
	case score <= 0:
		value = ComplexitySimple
	}

	rationale := ""
	if len(inputs) == 0 {
		rationale = "No confidence or involvement answers yet; assuming moderate complexity tolerance."
	} else {
		rationale = "Based on " + joinReasons(reasons) + "."
	}

	return Dimension[ComplexityTolerance]{Value: value, Confidence: confidenceFor(len(inputs)), Rationale: rationale, Inputs: inputs}
}

func scoreDecisionSupport(p *Profile) Dimension[SupportLevel] {
	var inputs, reasons []string
	score := 0

	if pu := p.Purpose; pu != nil {
		if pu.UncertaintyResponse != "" {
			inputs = append(inputs, "purpose.uncertaintyResponse")
			switch pu.UncertaintyResponse {
			case UncertaintySeekGuidance:
				score += 2
				reasons = append(reasons, "you seek guidance under uncertainty")
			case UncertaintyWaitAndSee:
				score++
				reasons = append(reasons, "you tend to wait when uncertain")
			case UncertaintyResearchFirst:
				reasons = append(reasons, "you research decisions yourself")
			}
		}
		if pu.DesiredInvolvement != "" {
			inputs = append(inputs, "purpose.desiredInvolvement")
			switch pu.DesiredInvolvement {
			case InvolvementDelegated:
				score += 2
				reasons = append(reasons, "a preference for delegating")
			case InvolvementCollaborative:
				score++
				reasons = append(reasons, "a preference for collaborating")
			}
		}
		if pu.GoalConfidence != "" {
			inputs = append(inputs, "purpose.goalConfidence")
			switch pu.GoalConfidence {
			case ConfidenceLow:
				score++
				reasons = append(reasons, "low confidence in your goals")
			case ConfidenceHigh:
				score--
				reasons = append(reasons, "high confidence in your goals")
			}
		}
	}

	value := SupportModerate
	switch {
	case len(inputs) == 0:
		value = SupportModerate
	case score >= 3:
		value = SupportHigh
	case score <= 0:
		value = SupportLow
	}

	rationale := ""
	if len(inputs) == 0 {
		rationale = "No uncertainty-response or involvement answers yet; assuming a moderate support need."
	} else {
		rationale = "Based on " + joinReasons(reasons) + "."
	}

	return Dimension[SupportLevel]{Value: value, Confidence: confidenceFor(len(inputs)), Rationale: rationale, Inputs: inputs}
}

func joinReasons(reasons []string) string {
	switch len(reasons) {
	case 0:
		return "the available answers"
	case 1:
		return reasons[0]
	case 2:
		return reasons[0] + " and " + reasons[1]
	default:
		return strings.Join(reasons[:len(reasons)-1], ", ") + ", and " + reasons[len(reasons)-1]
	}
}
