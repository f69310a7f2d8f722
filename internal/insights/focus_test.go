package insights

import (
	"strings"
	"testing"
)

// richProfile exercises every domain: federal employment, near retirement,
// a full value ranking, goals across priorities, and several red flags.
func richProfile() *Profile {
	return &Profile{
		Basic: &BasicContext{
			Age:                 58,
			EmploymentType:      "federal",
			HasEmployerBenefits: true,
			YearsToRetirement:   intPtr(2),
		},
		Values: &ValuesDiscovery{
			Ranked:         []ValueCategory{ValueSecurity, ValueFamily, ValueGrowth, ValueHealth},
			NonNegotiables: []ValueCategory{ValueFamily},
		},
		Goals: &GoalsDiscovery{Goals: []Goal{
			{Label: "retire early", Category: GoalRetirementTiming, Priority: PriorityHigh, TimeHorizon: HorizonShort},
			{Category: GoalDebtFree, Priority: PriorityMedium, TimeHorizon: HorizonMedium},
			{Category: GoalLegacyGiving, Priority: PriorityLow, TimeHorizon: HorizonLong},
			{Category: GoalBusinessVenture, Priority: PriorityMedium, TimeHorizon: HorizonMedium},
		}},
		Risk: &RiskSignals{
			HasEstateDocuments:  boolPtr(false),
			HasLifeInsurance:    boolPtr(false),
			EmergencyFundMonths: intPtr(1),
			HighInterestDebt:    true,
		},
	}
}

func TestRankFocusAreasDenseRanks(t *testing.T) {
	engine := NewEngine(DefaultConfig())
	result := engine.RankFocusAreas(richProfile())

	if len(result.Rankings) != len(canonicalDomainOrder) {
		t.Fatalf("expected all %d domains applicable, got %d", len(canonicalDomainOrder), len(result.Rankings))
	}
	seen := make(map[PlanningDomain]bool)
	for i, r := range result.Rankings {
		if r.Rank != i+1 {
			t.Fatalf("expected dense rank %d at position %d, got %d", i+1, i, r.Rank)
		}
		if seen[r.Domain] {
			t.Fatalf("domain %s ranked twice", r.Domain)
		}
		seen[r.Domain] = true
	}
	if len(result.TopFocusAreas) != 3 {
		t.Fatalf("expected 3 top focus areas, got %d", len(result.TopFocusAreas))
	}
}

func TestRankFocusAreasConditionalDomains(t *testing.T) {
	engine := NewEngine(DefaultConfig())

	plain := engine.RankFocusAreas(&Profile{
		Basic: &BasicContext{EmploymentType: "self_employed"},
	})
	for _, r := range plain.Rankings {
		if r.Domain == DomainBenefitsOptimization {
			t.Fatalf("benefits domain should require an employer benefits signal")
		}
		if r.Domain == DomainBusinessCareer {
			t.Fatalf("business domain should require a business or career goal")
		}
	}

	federal := engine.RankFocusAreas(&Profile{
		Basic: &BasicContext{EmploymentType: "federal"},
	})
	if !hasDomain(federal.Rankings, DomainBenefitsOptimization) {
		t.Fatalf("federal employment should make benefits applicable")
	}

	career := engine.RankFocusAreas(&Profile{
		Goals: &GoalsDiscovery{Goals: []Goal{{Category: GoalCareerChange, Priority: PriorityMedium}}},
	})
	if !hasDomain(career.Rankings, DomainBusinessCareer) {
		t.Fatalf("a career-change goal should make business/career applicable")
	}
}

func TestRetirementGoalDrivesRetirementIncome(t *testing.T) {
	engine := NewEngine(DefaultConfig())
	p := &Profile{
		Basic:  &BasicContext{YearsToRetirement: intPtr(2)},
		Values: &ValuesDiscovery{Ranked: []ValueCategory{ValueSecurity}},
		Goals: &GoalsDiscovery{Goals: []Goal{
			{Label: "retire early", Category: GoalRetirementTiming, Priority: PriorityHigh, TimeHorizon: HorizonShort},
		}},
	}

	result := engine.RankFocusAreas(p)
	top := result.Rankings[0]
	if top.Domain != DomainRetirementIncome {
		t.Fatalf("expected RETIREMENT_INCOME first, got %s", top.Domain)
	}
	if top.Priority != FocusCritical {
		t.Fatalf("expected CRITICAL priority, got %s", top.Priority)
	}
	if top.Score != 12.5 {
		t.Fatalf("expected composite score 12.5, got %.2f", top.Score)
	}
	if !strings.Contains(top.Explanation, "retire early") {
		t.Fatalf("explanation should cite the named goal, got %q", top.Explanation)
	}
	if len(top.ValueConnections) == 0 || top.ValueConnections[0] != "security" {
		t.Fatalf("expected the security value connection, got %v", top.ValueConnections)
	}
	if len(top.GoalConnections) == 0 || top.GoalConnections[0] != "retire early" {
		t.Fatalf("expected the retire early goal connection, got %v", top.GoalConnections)
	}
}

func TestRiskFlagsElevateDomains(t *testing.T) {
	engine := NewEngine(DefaultConfig())
	p := &Profile{
		Risk: &RiskSignals{
			HasLifeInsurance:   boolPtr(false),
			HasEstateDocuments: boolPtr(false),
		},
	}

	result := engine.RankFocusAreas(p)

	first, second := result.Rankings[0], result.Rankings[1]
	if first.Domain != DomainInsuranceRisk || second.Domain != DomainEstateLegacy {
		t.Fatalf("expected insurance then estate at the top, got %s then %s", first.Domain, second.Domain)
	}
	for _, r := range []FocusAreaRanking{first, second} {
		if r.Priority != FocusCritical {
			t.Fatalf("%s: expected CRITICAL for a flagged gap, got %s", r.Domain, r.Priority)
		}
		if len(r.RiskFactors) != 1 {
			t.Fatalf("%s: expected one risk factor, got %v", r.Domain, r.RiskFactors)
		}
	}
	for _, r := range result.Rankings[2:] {
		if r.Score != 0 {
			t.Fatalf("%s: expected zero score without signals, got %.2f", r.Domain, r.Score)
		}
		if r.Priority != FocusLow {
			t.Fatalf("%s: zero-signal domains should be LOW, got %s", r.Domain, r.Priority)
		}
	}
}

func TestTiedScoresBreakByPublishedOrder(t *testing.T) {
	engine := NewEngine(DefaultConfig())
	p := &Profile{
		Risk: &RiskSignals{
			HasLifeInsurance:   boolPtr(false),
			HasEstateDocuments: boolPtr(false),
		},
	}

	baseline := engine.RankFocusAreas(p)
	for i := 0; i < 10; i++ {
		again := engine.RankFocusAreas(p)
		for j := range baseline.Rankings {
			if again.Rankings[j].Domain != baseline.Rankings[j].Domain {
				t.Fatalf("run %d: ranking order changed at position %d", i, j)
			}
		}
	}
}

func TestEmptyProfileAllDomainsLow(t *testing.T) {
	engine := NewEngine(DefaultConfig())
	result := engine.RankFocusAreas(&Profile{})

	if len(result.Rankings) != 7 {
		t.Fatalf("expected 7 unconditional domains, got %d", len(result.Rankings))
	}
	for _, r := range result.Rankings {
		if r.Priority != FocusLow {
			t.Fatalf("%s: expected LOW with no signals, got %s", r.Domain, r.Priority)
		}
		if r.Explanation == "" {
			t.Fatalf("%s: expected an explanation even without signals", r.Domain)
		}
	}
}

func TestNonNegotiableValueAmplifiesDomain(t *testing.T) {
	engine := NewEngine(DefaultConfig())
	flagged := &Profile{Values: &ValuesDiscovery{
		Ranked:         []ValueCategory{ValueLegacy},
		NonNegotiables: []ValueCategory{ValueLegacy},
	}}
	unflagged := &Profile{Values: &ValuesDiscovery{
		Ranked: []ValueCategory{ValueLegacy},
	}}

	withFlag := scoreOf(engine.RankFocusAreas(flagged).Rankings, DomainEstateLegacy)
	withoutFlag := scoreOf(engine.RankFocusAreas(unflagged).Rankings, DomainEstateLegacy)
	if withFlag <= withoutFlag {
		t.Fatalf("non-negotiable value should raise the score: %.2f vs %.2f", withFlag, withoutFlag)
	}
}

func hasDomain(rankings []FocusAreaRanking, d PlanningDomain) bool {
	for _, r := range rankings {
		if r.Domain == d {
			return true
		}
	}
	return false
}

func scoreOf(rankings []FocusAreaRanking, d PlanningDomain) float64 {
	for _, r := range rankings {
		if r.Domain == d {
			return r.Score
		}
	}
	return -1
}
