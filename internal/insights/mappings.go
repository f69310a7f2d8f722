package insights

import "fmt"

// Static lookup data connecting value and goal categories to planning
// domains. These tables are read-only at runtime; scoring code only sums
// their contributions.

var valueCategoryLabels = map[ValueCategory]string{
	ValueSecurity:   "security",
	ValueFreedom:    "freedom",
	ValueGrowth:     "growth",
	ValueFamily:     "family",
	ValueLegacy:     "legacy",
	ValueHealth:     "health",
	ValueCommunity:  "community",
	ValueSimplicity: "simplicity",
}

var goalCategoryLabels = map[GoalCategory]string{
	GoalRetirementTiming:      "retirement timing",
	GoalFinancialIndependence: "financial independence",
	GoalTravelLifestyle:       "travel and lifestyle",
	GoalHomePurchase:          "home purchase",
	GoalEducationFunding:      "education funding",
	GoalDebtFree:              "becoming debt-free",
	GoalBusinessVenture:       "business venture",
	GoalCareerChange:          "career change",
	GoalLegacyGiving:          "legacy giving",
	GoalHealthSecurity:        "health security",
}

// valueDomainWeights maps each value category to the domains it pulls
// attention toward, with contribution weights.
var valueDomainWeights = map[ValueCategory]map[PlanningDomain]float64{
	ValueSecurity: {
		DomainRetirementIncome: 3.0,
		DomainInsuranceRisk:    2.5,
		DomainCashFlowDebt:     2.0,
	},
	ValueFreedom: {
		DomainInvestmentStrategy: 2.0,
		DomainCashFlowDebt:       2.0,
		DomainRetirementIncome:   1.5,
	},
	ValueGrowth: {
		DomainInvestmentStrategy: 3.0,
		DomainTaxOptimization:    1.5,
		DomainBusinessCareer:     1.5,
	},
	ValueFamily: {
		DomainInsuranceRisk: 2.5,
		DomainEstateLegacy:  2.5,
		DomainCashFlowDebt:  1.0,
	},
	ValueLegacy: {
		DomainEstateLegacy:    3.0,
		DomainTaxOptimization: 1.5,
	},
	ValueHealth: {
		DomainHealthcareLTC: 3.0,
		DomainInsuranceRisk: 1.5,
	},
	ValueCommunity: {
		DomainEstateLegacy:    1.5,
		DomainTaxOptimization: 1.0,
	},
	ValueSimplicity: {
		DomainCashFlowDebt:       1.5,
		DomainInvestmentStrategy: 1.0,
	},
}

// goalDomainWeights maps each goal category to the domains it implicates.
var goalDomainWeights = map[GoalCategory]map[PlanningDomain]float64{
	GoalRetirementTiming: {
		DomainRetirementIncome:     3.0,
		DomainBenefitsOptimization: 1.5,
		DomainTaxOptimization:      1.0,
	},
	GoalFinancialIndependence: {
		DomainInvestmentStrategy: 2.5,
		DomainRetirementIncome:   2.0,
		DomainCashFlowDebt:       1.0,
	},
	GoalTravelLifestyle: {
		DomainCashFlowDebt:       2.0,
		DomainRetirementIncome:   1.0,
		DomainInvestmentStrategy: 1.0,
	},
	GoalHomePurchase: {
		DomainCashFlowDebt:       2.5,
		DomainInvestmentStrategy: 1.0,
	},
	GoalEducationFunding: {
		DomainInvestmentStrategy: 1.5,
		DomainTaxOptimization:    1.5,
		DomainCashFlowDebt:       1.0,
	},
	GoalDebtFree: {
		DomainCashFlowDebt: 3.0,
	},
	GoalBusinessVenture: {
		DomainBusinessCareer:  3.0,
		DomainTaxOptimization: 1.5,
		DomainInsuranceRisk:   1.0,
	},
	GoalCareerChange: {
		DomainBusinessCareer:       3.0,
		DomainCashFlowDebt:         1.5,
		DomainBenefitsOptimization: 1.0,
	},
	GoalLegacyGiving: {
		DomainEstateLegacy:    3.0,
		DomainTaxOptimization: 1.5,
	},
	GoalHealthSecurity: {
		DomainHealthcareLTC: 3.0,
		DomainInsuranceRisk: 2.0,
	},
}

// Rank and priority scaling applied on top of the mapping weights. Top-ranked
// values and high-priority goals contribute more.
var valueRankScale = [...]float64{1.5, 1.25, 1.0}

const valueRankScaleTail = 0.75

// nonNegotiableScale further amplifies values the user flagged as
// non-tradeable.
const nonNegotiableScale = 1.25

var goalPriorityScale = map[GoalPriority]float64{
	PriorityHigh:   1.5,
	PriorityMedium: 1.0,
	PriorityLow:    0.5,
}

const defaultGoalPriorityScale = 1.0

func scaleForValueRank(position int) float64 {
	if position < len(valueRankScale) {
		return valueRankScale[position]
	}
	return valueRankScaleTail
}

func scaleForGoalPriority(p GoalPriority) float64 {
	if s, ok := goalPriorityScale[p]; ok {
		return s
	}
	return defaultGoalPriorityScale
}

// Timing-pressure bonuses.
const (
	shortHorizonDomainBonus    = 1.5
	nearRetirementIncomeBonus  = 2.0
	nearRetirementSupportBonus = 1.0
)

// riskRule is one declarative red-flag condition granting a domain a
// risk-exposure bonus. The label doubles as the risk factor published on the
// domain's ranking.
type riskRule struct {
	domain  PlanningDomain
	bonus   float64
	label   func(p *Profile, cfg Config) string
	applies func(p *Profile, cfg Config) bool
}

var riskRules = []riskRule{
	{
		domain: DomainEstateLegacy,
		bonus:  2.5,
		label:  func(*Profile, Config) string { return "no estate documents in place" },
		applies: func(p *Profile, _ Config) bool {
			return p.Risk != nil && p.Risk.HasEstateDocuments != nil && !*p.Risk.HasEstateDocuments
		},
	},
	{
		domain: DomainInsuranceRisk,
		bonus:  2.5,
		label:  func(*Profile, Config) string { return "no life insurance coverage" },
		applies: func(p *Profile, _ Config) bool {
			return p.Risk != nil && p.Risk.HasLifeInsurance != nil && !*p.Risk.HasLifeInsurance
		},
	},
	{
		domain: DomainInsuranceRisk,
		bonus:  1.5,
		label:  func(*Profile, Config) string { return "self-reported coverage gap" },
		applies: func(p *Profile, _ Config) bool {
			return p.Risk != nil && p.Risk.ReportsUnderinsured
		},
	},
	{
		domain: DomainCashFlowDebt,
		bonus:  2.5,
		label: func(p *Profile, cfg Config) string {
			return fmt.Sprintf("emergency fund below %d months of expenses", cfg.LowEmergencyFundMonths)
		},
		applies: func(p *Profile, cfg Config) bool {
			return p.Risk != nil && p.Risk.EmergencyFundMonths != nil &&
				*p.Risk.EmergencyFundMonths < cfg.LowEmergencyFundMonths
		},
	},
	{
		domain: DomainCashFlowDebt,
		bonus:  1.5,
		label:  func(*Profile, Config) string { return "high-interest debt outstanding" },
		applies: func(p *Profile, _ Config) bool {
			return p.Risk != nil && p.Risk.HighInterestDebt
		},
	},
}

// nearRetirement reports whether retirement proximity counts as a timing
// pressure under the configured threshold.
func nearRetirement(p *Profile, cfg Config) bool {
	return p.Basic != nil && p.Basic.YearsToRetirement != nil &&
		*p.Basic.YearsToRetirement <= cfg.NearRetirementYears
}
