package insights

import "fmt"

// ValueCategory is a values-discovery category the user can rank.
type ValueCategory string

const (
	ValueSecurity   ValueCategory = "security"
	ValueFreedom    ValueCategory = "freedom"
	ValueGrowth     ValueCategory = "growth"
	ValueFamily     ValueCategory = "family"
	ValueLegacy     ValueCategory = "legacy"
	ValueHealth     ValueCategory = "health"
	ValueCommunity  ValueCategory = "community"
	ValueSimplicity ValueCategory = "simplicity"
)

// GoalCategory classifies a financial goal.
type GoalCategory string

const (
	GoalRetirementTiming      GoalCategory = "retirement_timing"
	GoalFinancialIndependence GoalCategory = "financial_independence"
	GoalTravelLifestyle       GoalCategory = "travel_lifestyle"
	GoalHomePurchase          GoalCategory = "home_purchase"
	GoalEducationFunding      GoalCategory = "education_funding"
	GoalDebtFree              GoalCategory = "debt_free"
	GoalBusinessVenture       GoalCategory = "business_venture"
	GoalCareerChange          GoalCategory = "career_change"
	GoalLegacyGiving          GoalCategory = "legacy_giving"
	GoalHealthSecurity        GoalCategory = "health_security"
)

// GoalPriority is the user-assigned importance of a goal.
type GoalPriority string

const (
	PriorityHigh   GoalPriority = "HIGH"
	PriorityMedium GoalPriority = "MEDIUM"
	PriorityLow    GoalPriority = "LOW"
)

// TimeHorizon is the user-assigned timeframe of a goal.
type TimeHorizon string

const (
	HorizonShort  TimeHorizon = "SHORT"
	HorizonMedium TimeHorizon = "MEDIUM"
	HorizonLong   TimeHorizon = "LONG"
)

// GoalFlexibility records whether a goal's shape or timing can move.
type GoalFlexibility string

const (
	FlexibilityFlexible GoalFlexibility = "FLEXIBLE"
	FlexibilityFixed    GoalFlexibility = "FIXED"
)

// TradeoffLeaning is a recorded leaning on a forced-choice tradeoff question.
type TradeoffLeaning string

const (
	LeanSecurity    TradeoffLeaning = "SECURITY"
	LeanGrowth      TradeoffLeaning = "GROWTH"
	LeanFlexibility TradeoffLeaning = "FLEXIBILITY"
	LeanCertainty   TradeoffLeaning = "CERTAINTY"
	LeanNeutral     TradeoffLeaning = "NEUTRAL"
)

// ConfidenceLevel is a self-reported confidence answer.
type ConfidenceLevel string

const (
	ConfidenceLow      ConfidenceLevel = "LOW"
	ConfidenceModerate ConfidenceLevel = "MODERATE"
	ConfidenceHigh     ConfidenceLevel = "HIGH"
)

// InvolvementLevel is how hands-on the user wants to be.
type InvolvementLevel string

const (
	InvolvementHandsOn       InvolvementLevel = "HANDS_ON"
	InvolvementCollaborative InvolvementLevel = "COLLABORATIVE"
	InvolvementDelegated     InvolvementLevel = "DELEGATED"
)

// UncertaintyResponse is how the user says they react to uncertainty.
type UncertaintyResponse string

const (
	UncertaintyResearchFirst UncertaintyResponse = "RESEARCH_FIRST"
	UncertaintySeekGuidance  UncertaintyResponse = "SEEK_GUIDANCE"
	UncertaintyWaitAndSee    UncertaintyResponse = "WAIT_AND_SEE"
)

// Profile is the aggregate of a user's discovery answers. Every section is
// optional and any section may be partially filled; the engine never assumes
// completeness.
type Profile struct {
	Basic   *BasicContext     `json:"basic,omitempty"`
	Values  *ValuesDiscovery  `json:"values,omitempty"`
	Goals   *GoalsDiscovery   `json:"goals,omitempty"`
	Purpose *PurposeDiscovery `json:"purpose,omitempty"`
	Risk    *RiskSignals      `json:"risk,omitempty"`
}

// BasicContext holds employment and life-stage context.
type BasicContext struct {
	EmploymentType      string `json:"employmentType,omitempty"`
	Age                 int    `json:"age,omitempty"`
	MaritalStatus       string `json:"maritalStatus,omitempty"`
	YearsToRetirement   *int   `json:"yearsToRetirement,omitempty"`
	HasEmployerBenefits bool   `json:"hasEmployerBenefits,omitempty"`
}

// ValuesDiscovery holds the ranked value categories, most important first,
// and the values the user flagged as non-negotiable.
type ValuesDiscovery struct {
	Ranked         []ValueCategory `json:"ranked,omitempty"`
	NonNegotiables []ValueCategory `json:"nonNegotiables,omitempty"`
}

// Goal is one financial goal.
type Goal struct {
	Label       string          `json:"label,omitempty"`
	Category    GoalCategory    `json:"category"`
	Priority    GoalPriority    `json:"priority,omitempty"`
	TimeHorizon TimeHorizon     `json:"timeHorizon,omitempty"`
	Flexibility GoalFlexibility `json:"flexibility,omitempty"`
	FixedDate   bool            `json:"fixedDate,omitempty"`
}

// GoalsDiscovery holds the user's goals.
type GoalsDiscovery struct {
	Goals []Goal `json:"goals,omitempty"`
}

// TradeoffAnchor is one answered forced-choice tradeoff question.
type TradeoffAnchor struct {
	Question string          `json:"question"`
	Leaning  TradeoffLeaning `json:"leaning"`
}

// PurposeDiscovery holds tradeoff leanings and decision-style answers.
type PurposeDiscovery struct {
	TradeoffAnchors     []TradeoffAnchor    `json:"tradeoffAnchors,omitempty"`
	PurposeDrivers      []string            `json:"purposeDrivers,omitempty"`
	FinancialConfidence ConfidenceLevel     `json:"financialConfidence,omitempty"`
	GoalConfidence      ConfidenceLevel     `json:"goalConfidence,omitempty"`
	DesiredInvolvement  InvolvementLevel    `json:"desiredInvolvement,omitempty"`
	UncertaintyResponse UncertaintyResponse `json:"uncertaintyResponse,omitempty"`
	PrefersSimplicity   bool                `json:"prefersSimplicity,omitempty"`
}

// RiskSignals holds self-reported exposure flags. Pointer fields distinguish
// "answered no" from "not answered".
type RiskSignals struct {
	HasEstateDocuments  *bool `json:"hasEstateDocuments,omitempty"`
	HasLifeInsurance    *bool `json:"hasLifeInsurance,omitempty"`
	ReportsUnderinsured bool  `json:"reportsUnderinsured,omitempty"`
	EmergencyFundMonths *int  `json:"emergencyFundMonths,omitempty"`
	HighInterestDebt    bool  `json:"highInterestDebt,omitempty"`
}

var validValueCategories = map[ValueCategory]bool{
	ValueSecurity: true, ValueFreedom: true, ValueGrowth: true, ValueFamily: true,
	ValueLegacy: true, ValueHealth: true, ValueCommunity: true, ValueSimplicity: true,
}

var validGoalPriorities = map[GoalPriority]bool{
	PriorityHigh: true, PriorityMedium: true, PriorityLow: true,
}

var validHorizons = map[TimeHorizon]bool{
	HorizonShort: true, HorizonMedium: true, HorizonLong: true,
}

var validFlexibilities = map[GoalFlexibility]bool{
	FlexibilityFlexible: true, FlexibilityFixed: true,
}

var validConfidenceLevels = map[ConfidenceLevel]bool{
	ConfidenceLow: true, ConfidenceModerate: true, ConfidenceHigh: true,
}

var validInvolvements = map[InvolvementLevel]bool{
	InvolvementHandsOn: true, InvolvementCollaborative: true, InvolvementDelegated: true,
}

var validUncertaintyResponses = map[UncertaintyResponse]bool{
	UncertaintyResearchFirst: true, UncertaintySeekGuidance: true, UncertaintyWaitAndSee: true,
}

// Validate checks structural validity only. Empty fields and absent sections
// pass; present-but-malformed values fail with *InvalidProfileError.
func (p *Profile) Validate() error {
	if p == nil {
		return invalidField("profile", "must not be nil")
	}
	if b := p.Basic; b != nil {
		if b.Age < 0 || b.Age > 130 {
			return invalidField("basic.age", fmt.Sprintf("out of range: %d", b.Age))
		}
		if b.YearsToRetirement != nil && *b.YearsToRetirement < 0 {
			return invalidField("basic.yearsToRetirement", "must not be negative")
		}
	}
	if v := p.Values; v != nil {
		for i, vc := range v.Ranked {
			if !validValueCategories[vc] {
				return invalidField(fmt.Sprintf("values.ranked[%d]", i), "unknown value "+string(vc))
			}
		}
		for i, vc := range v.NonNegotiables {
			if !validValueCategories[vc] {
				return invalidField(fmt.Sprintf("values.nonNegotiables[%d]", i), "unknown value "+string(vc))
			}
		}
	}
	if g := p.Goals; g != nil {
		for i, goal := range g.Goals {
			if goal.Category == "" {
				return invalidField(fmt.Sprintf("goals.goals[%d].category", i), "is required")
			}
			if goal.Priority != "" && !validGoalPriorities[goal.Priority] {
				return invalidField(fmt.Sprintf("goals.goals[%d].priority", i), "unknown value "+string(goal.Priority))
			}
			if goal.TimeHorizon != "" && !validHorizons[goal.TimeHorizon] {
				return invalidField(fmt.Sprintf("goals.goals[%d].timeHorizon", i), "unknown value "+string(goal.TimeHorizon))
			}
			if goal.Flexibility != "" && !validFlexibilities[goal.Flexibility] {
				return invalidField(fmt.Sprintf("goals.goals[%d].flexibility", i), "unknown value "+string(goal.Flexibility))
			}
		}
	}
	if pu := p.Purpose; pu != nil {
		if pu.FinancialConfidence != "" && !validConfidenceLevels[pu.FinancialConfidence] {
			return invalidField("purpose.financialConfidence", "unknown value "+string(pu.FinancialConfidence))
		}
		if pu.GoalConfidence != "" && !validConfidenceLevels[pu.GoalConfidence] {
			return invalidField("purpose.goalConfidence", "unknown value "+string(pu.GoalConfidence))
		}
		if pu.DesiredInvolvement != "" && !validInvolvements[pu.DesiredInvolvement] {
			return invalidField("purpose.desiredInvolvement", "unknown value "+string(pu.DesiredInvolvement))
		}
		if pu.UncertaintyResponse != "" && !validUncertaintyResponses[pu.UncertaintyResponse] {
			return invalidField("purpose.uncertaintyResponse", "unknown value "+string(pu.UncertaintyResponse))
		}
	}
	if r := p.Risk; r != nil {
		if r.EmergencyFundMonths != nil && *r.EmergencyFundMonths < 0 {
			return invalidField("risk.emergencyFundMonths", "must not be negative")
		}
	}
	return nil
}

// goalsList returns the goals slice or nil when the section is absent.
func (p *Profile) goalsList() []Goal {
	if p == nil || p.Goals == nil {
		return nil
	}
	return p.Goals.Goals
}

// topValue returns the highest-ranked value category, if any.
func (p *Profile) topValue() (ValueCategory, bool) {
	if p == nil || p.Values == nil || len(p.Values.Ranked) == 0 {
		return "", false
	}
	return p.Values.Ranked[0], true
}

// isNonNegotiable reports whether the user flagged the value as non-tradeable.
func (p *Profile) isNonNegotiable(v ValueCategory) bool {
	if p == nil || p.Values == nil {
		return false
	}
	for _, nn := range p.Values.NonNegotiables {
		if nn == v {
			return true
		}
	}
	return false
}

// goalLabel returns the user's own label for a goal, falling back to a
// readable form of its category.
func goalLabel(g Goal) string {
	if g.Label != "" {
		return g.Label
	}
	return goalCategoryLabels[g.Category]
}
