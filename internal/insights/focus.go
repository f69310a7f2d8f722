package insights

import (
	"fmt"
	"math"
	"sort"
)

// FocusPriority is a focus area's priority tier.
type FocusPriority string

const (
	FocusCritical FocusPriority = "CRITICAL"
	FocusHigh     FocusPriority = "HIGH"
	FocusModerate FocusPriority = "MODERATE"
	FocusLow      FocusPriority = "LOW"
)

// FocusAreaRanking is one ranked, explained planning domain. Ranks across a
// result are a dense permutation of 1..N over the applicable domains.
type FocusAreaRanking struct {
	Domain           PlanningDomain `json:"domain"`
	Priority         FocusPriority  `json:"priority"`
	Rank             int            `json:"rank"`
	Explanation      string         `json:"explanation"`
	ValueConnections []string       `json:"valueConnections"`
	GoalConnections  []string       `json:"goalConnections"`
	RiskFactors      []string       `json:"riskFactors"`
	Score            float64        `json:"score"`
}

// PlanningFocusResult is the ordered prioritization of applicable domains.
type PlanningFocusResult struct {
	Rankings      []FocusAreaRanking `json:"rankings"`
	TopFocusAreas []FocusAreaRanking `json:"topFocusAreas"`
}

const (
	contribValue  = "value"
	contribGoal   = "goal"
	contribTiming = "timing"
	contribRisk   = "risk"
)

// contribution is one traced term of a domain's composite score. The phrase
// is what the explanation template names as a reason.
type contribution struct {
	kind   string
	label  string
	phrase string
	weight float64
}

// RankFocusAreas scores and ranks every applicable planning domain.
func (e *Engine) RankFocusAreas(p *Profile) PlanningFocusResult {
	type scoredDomain struct {
		domain   PlanningDomain
		score    float64
		contribs []contribution
	}

	domains := applicableDomains(p)
	scored := make([]scoredDomain, 0, len(domains))
	for _, d := range domains {
		contribs := domainContributions(p, d, e.cfg)
		total := 0.0
		for _, c := range contribs {
			total += c.weight
		}
		scored = append(scored, scoredDomain{domain: d, score: round2(total), contribs: contribs})
	}

	// Equal scores resolve by the canonical domain ordering so identical
	// input always yields an identical ranking.
	sort.SliceStable(scored, func(i, j int) bool {
		if scored[i].score != scored[j].score {
			return scored[i].score > scored[j].score
		}
		return domainOrder(scored[i].domain) < domainOrder(scored[j].domain)
	})

	top := 0.0
	if len(scored) > 0 {
		top = scored[0].score
	}

	rankings := make([]FocusAreaRanking, 0, len(scored))
	for i, sd := range scored {
		rankings = append(rankings, FocusAreaRanking{
			Domain:           sd.domain,
			Priority:         tierFor(sd.score, top, e.cfg),
			Rank:             i + 1,
			Explanation:      explainDomain(sd.domain, sd.contribs),
			ValueConnections: contributionLabels(sd.contribs, contribValue),
			GoalConnections:  contributionLabels(sd.contribs, contribGoal),
			RiskFactors:      contributionLabels(sd.contribs, contribRisk),
			Score:            sd.score,
		})
	}

	topN := 3
	if len(rankings) < topN {
		topN = len(rankings)
	}
	return PlanningFocusResult{
		Rankings:      rankings,
		TopFocusAreas: append([]FocusAreaRanking(nil), rankings[:topN]...),
	}
}

func domainContributions(p *Profile, d PlanningDomain, cfg Config) []contribution {
	var contribs []contribution

	if p.Values != nil {
		for i, v := range p.Values.Ranked {
			w, ok := valueDomainWeights[v][d]
			if !ok {
				continue
			}
			weight := w * scaleForValueRank(i)
			if p.isNonNegotiable(v) {
				weight *= nonNegotiableScale
			}
			label := valueCategoryLabels[v]
			if label == "" {
				label = string(v)
			}
			contribs = append(contribs, contribution{
				kind:   contribValue,
				label:  label,
				phrase: fmt.Sprintf("your %q value", label),
				weight: weight,
			})
		}
	}

	shortHorizonHere := false
	for _, g := range p.goalsList() {
		w, ok := goalDomainWeights[g.Category][d]
		if !ok {
			continue
		}
		label := goalLabel(g)
		contribs = append(contribs, contribution{
			kind:   contribGoal,
			label:  label,
			phrase: fmt.Sprintf("your %q goal", label),
			weight: w * scaleForGoalPriority(g.Priority),
		})
		if g.TimeHorizon == HorizonShort {
			shortHorizonHere = true
		}
	}

	if shortHorizonHere {
		contribs = append(contribs, contribution{
			kind:   contribTiming,
			label:  "near-term goal timing",
			phrase: "near-term goal timing",
			weight: shortHorizonDomainBonus,
		})
	}

	if nearRetirement(p, cfg) {
		phrase := fmt.Sprintf("retirement within %d years", *p.Basic.YearsToRetirement)
		switch d {
		case DomainRetirementIncome:
			contribs = append(contribs, contribution{kind: contribTiming, label: phrase, phrase: phrase, weight: nearRetirementIncomeBonus})
		case DomainBenefitsOptimization, DomainHealthcareLTC:
			contribs = append(contribs, contribution{kind: contribTiming, label: phrase, phrase: phrase, weight: nearRetirementSupportBonus})
		}
	}

	for _, rule := range riskRules {
		if rule.domain != d || !rule.applies(p, cfg) {
			continue
		}
		label := rule.label(p, cfg)
		contribs = append(contribs, contribution{
			kind:   contribRisk,
			label:  label,
			phrase: label,
			weight: rule.bonus,
		})
	}

	return contribs
}

func tierFor(score, top float64, cfg Config) FocusPriority {
	if top <= 0 || score <= 0 {
		return FocusLow
	}
	switch {
	case score >= top-cfg.CriticalMargin:
		return FocusCritical
	case score >= top*cfg.HighShare:
		return FocusHigh
	case score >= top*cfg.ModerateShare:
		return FocusModerate
	default:
		return FocusLow
	}
}

// explainDomain renders "[Domain] — because [top 1-2 contributors]".
func explainDomain(d PlanningDomain, contribs []contribution) string {
	if len(contribs) == 0 {
		return fmt.Sprintf("%s: no strong signals from your discovery answers yet.", domainLabel(d))
	}
	ordered := append([]contribution(nil), contribs...)
	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].weight != ordered[j].weight {
			return ordered[i].weight > ordered[j].weight
		}
		return ordered[i].phrase < ordered[j].phrase
	})
	reason := ordered[0].phrase
	if len(ordered) > 1 && ordered[1].phrase != ordered[0].phrase {
		reason += " and " + ordered[1].phrase
	}
	return fmt.Sprintf("%s: prioritized because of %s.", domainLabel(d), reason)
}

func contributionLabels(contribs []contribution, kind string) []string {
	out := []string{}
	seen := make(map[string]bool)
	for _, c := range contribs {
		if c.kind != kind || seen[c.label] {
			continue
		}
		seen[c.label] = true
		out = append(out, c.label)
	}
	return out
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
