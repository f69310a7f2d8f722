package insights

// PlanningDomain is one of the nine fixed financial-planning subject areas.
type PlanningDomain string

const (
	DomainRetirementIncome     PlanningDomain = "RETIREMENT_INCOME"
	DomainInvestmentStrategy   PlanningDomain = "INVESTMENT_STRATEGY"
	DomainTaxOptimization      PlanningDomain = "TAX_OPTIMIZATION"
	DomainInsuranceRisk        PlanningDomain = "INSURANCE_RISK"
	DomainEstateLegacy         PlanningDomain = "ESTATE_LEGACY"
	DomainCashFlowDebt         PlanningDomain = "CASH_FLOW_DEBT"
	DomainBenefitsOptimization PlanningDomain = "BENEFITS_OPTIMIZATION"
	DomainBusinessCareer       PlanningDomain = "BUSINESS_CAREER"
	DomainHealthcareLTC        PlanningDomain = "HEALTHCARE_LTC"
)

// canonicalDomainOrder is the published tie-break ordering: when two domains
// compute identical composite scores, the one listed earlier ranks first.
var canonicalDomainOrder = [...]PlanningDomain{
	DomainRetirementIncome,
	DomainCashFlowDebt,
	DomainInsuranceRisk,
	DomainInvestmentStrategy,
	DomainTaxOptimization,
	DomainEstateLegacy,
	DomainHealthcareLTC,
	DomainBenefitsOptimization,
	DomainBusinessCareer,
}

var domainLabels = map[PlanningDomain]string{
	DomainRetirementIncome:     "Retirement income",
	DomainInvestmentStrategy:   "Investment strategy",
	DomainTaxOptimization:      "Tax optimization",
	DomainInsuranceRisk:        "Insurance and risk protection",
	DomainEstateLegacy:         "Estate and legacy",
	DomainCashFlowDebt:         "Cash flow and debt",
	DomainBenefitsOptimization: "Benefits optimization",
	DomainBusinessCareer:       "Business and career",
	DomainHealthcareLTC:        "Healthcare and long-term care",
}

func domainOrder(d PlanningDomain) int {
	for i, candidate := range canonicalDomainOrder {
		if candidate == d {
			return i
		}
	}
	return len(canonicalDomainOrder)
}

func domainLabel(d PlanningDomain) string {
	if label, ok := domainLabels[d]; ok {
		return label
	}
	return string(d)
}

// domainRule is one declarative applicability condition. Domains without a
// rule are always applicable.
type domainRule struct {
	domain  PlanningDomain
	applies func(p *Profile) bool
}

var applicabilityRules = []domainRule{
	{
		// Benefits work only applies when an employer or federal-employment
		// signal exists.
		domain: DomainBenefitsOptimization,
		applies: func(p *Profile) bool {
			if p.Basic == nil {
				return false
			}
			return p.Basic.EmploymentType == "federal" || p.Basic.HasEmployerBenefits
		},
	},
	{
		// Business/career work only applies when a related goal exists.
		domain: DomainBusinessCareer,
		applies: func(p *Profile) bool {
			for _, g := range p.goalsList() {
				if g.Category == GoalBusinessVenture || g.Category == GoalCareerChange {
					return true
				}
			}
			return false
		},
	},
}

// applicableDomains returns the domains whose conditions pass, in canonical
// order. Inapplicable domains are excluded entirely, not ranked last.
func applicableDomains(p *Profile) []PlanningDomain {
	conditional := make(map[PlanningDomain]func(*Profile) bool, len(applicabilityRules))
	for _, rule := range applicabilityRules {
		conditional[rule.domain] = rule.applies
	}

	out := make([]PlanningDomain, 0, len(canonicalDomainOrder))
	for _, d := range canonicalDomainOrder {
		if applies, ok := conditional[d]; ok && !applies(p) {
			continue
		}
		out = append(out, d)
	}
	return out
}
