package insights

import (
	"fmt"
	"sort"
)

// ActionType classifies what kind of work an action is.
type ActionType string

const (
	ActionEducationAwareness  ActionType = "EDUCATION_AWARENESS"
	ActionDecisionPreparation ActionType = "DECISION_PREPARATION"
	ActionStructuralSetup     ActionType = "STRUCTURAL_SETUP"
	ActionProfessionalReview  ActionType = "PROFESSIONAL_REVIEW"
	ActionOptimization        ActionType = "OPTIMIZATION"
)

// GuidanceLevel is who the action is expected to be done with.
type GuidanceLevel string

const (
	GuidanceSelf       GuidanceLevel = "SELF_GUIDED"
	GuidanceAdvisor    GuidanceLevel = "ADVISOR_GUIDED"
	GuidanceSpecialist GuidanceLevel = "SPECIALIST_GUIDED"
)

// Urgency is when the action should happen.
type Urgency string

const (
	UrgencyImmediate  Urgency = "IMMEDIATE"
	UrgencyNearTerm   Urgency = "NEAR_TERM"
	UrgencyMediumTerm Urgency = "MEDIUM_TERM"
	UrgencyOngoing    Urgency = "ONGOING"
)

// ActionRecommendation is one justified next step tied to a domain and at
// least one value, goal, or risk factor from the profile.
type ActionRecommendation struct {
	ID             string         `json:"id"`
	Title          string         `json:"title"`
	Description    string         `json:"description"`
	WhyItMatters   string         `json:"whyItMatters"`
	WhatItAchieves string         `json:"whatItAchieves"`
	ActionType     ActionType     `json:"actionType"`
	Guidance       GuidanceLevel  `json:"guidance"`
	Urgency        Urgency        `json:"urgency"`
	RelatedDomain  PlanningDomain `json:"relatedDomain"`
	RelatedValues  []string       `json:"relatedValues"`
	RelatedGoals   []string       `json:"relatedGoals"`
	Dependencies   []string       `json:"dependencies"`
	Priority       int            `json:"priority"`
}

// actionTemplate is one declarative catalog entry. The why and achieves
// strings each carry a single %s slot filled with profile-specific phrases
// so the emitted text is never generic.
type actionTemplate struct {
	id            string
	title         string
	description   string
	why           string
	achieves      string
	actionType    ActionType
	guidance      GuidanceLevel
	dependsOn     []string
	addressesRisk bool
	applies       func(p *Profile, cfg Config) bool
}

type actionCandidate struct {
	rec        ActionRecommendation
	tpl        actionTemplate
	area       FocusAreaRanking
	hasRisk    bool
	emotional  bool
	catalogPos int
}

var urgencyRank = map[Urgency]int{
	UrgencyImmediate:  0,
	UrgencyNearTerm:   1,
	UrgencyMediumTerm: 2,
	UrgencyOngoing:    3,
}

// GenerateActions selects, parameterizes, orders, and bounds action
// recommendations using the focus ranking. Domains whose ranking carries no
// value, goal, or risk connection contribute zero actions.
func (e *Engine) GenerateActions(p *Profile, focus PlanningFocusResult) []ActionRecommendation {
	cfg := e.cfg

	perDomain := make([][]actionCandidate, 0, len(focus.Rankings))
	for _, area := range focus.Rankings {
		cands := domainCandidates(p, cfg, area)
		if len(cands) > 0 {
			perDomain = append(perDomain, cands)
		}
	}

	// Round-robin across domains in rank order, so the highest-ranked
	// domains are covered before any single domain exhausts its templates.
	selected := make([]actionCandidate, 0, cfg.MaxActions)
	for depth := 0; len(selected) < cfg.MaxActions; depth++ {
		added := false
		for _, cands := range perDomain {
			if depth >= len(cands) {
				continue
			}
			selected = append(selected, cands[depth])
			added = true
			if len(selected) == cfg.MaxActions {
				break
			}
		}
		if !added {
			break
		}
	}

	sortCandidates(selected)
	selected = resolveDependencies(selected)

	out := make([]ActionRecommendation, 0, len(selected))
	for i, cand := range selected {
		cand.rec.Priority = i + 1
		out = append(out, cand.rec)
	}
	return out
}

// domainCandidates evaluates a domain's templates against the profile and
// returns passing, parameterized candidates ordered risk-first.
func domainCandidates(p *Profile, cfg Config, area FocusAreaRanking) []actionCandidate {
	if len(area.ValueConnections) == 0 && len(area.GoalConnections) == 0 && len(area.RiskFactors) == 0 {
		return nil
	}

	templates := actionCatalog[area.Domain]
	cands := make([]actionCandidate, 0, len(templates))
	for pos, tpl := range templates {
		if tpl.applies != nil && !tpl.applies(p, cfg) {
			continue
		}
		why, ok := justification(area, tpl)
		if !ok {
			continue
		}
		hasRisk := tpl.addressesRisk && len(area.RiskFactors) > 0
		urgency := urgencyFor(p, cfg, area, hasRisk)

		emotional := false
		for _, v := range area.ValueConnections {
			if p.isNonNegotiable(valueCategoryByLabel(v)) {
				emotional = true
				break
			}
		}

		cands = append(cands, actionCandidate{
			rec: ActionRecommendation{
				ID:             tpl.id,
				Title:          tpl.title,
				Description:    tpl.description,
				WhyItMatters:   fmt.Sprintf(tpl.why, why),
				WhatItAchieves: fmt.Sprintf(tpl.achieves, achievesTarget(area)),
				ActionType:     tpl.actionType,
				Guidance:       tpl.guidance,
				Urgency:        urgency,
				RelatedDomain:  area.Domain,
				RelatedValues:  append([]string{}, area.ValueConnections...),
				RelatedGoals:   append([]string{}, area.GoalConnections...),
				Dependencies:   append([]string{}, tpl.dependsOn...),
			},
			tpl:        tpl,
			area:       area,
			hasRisk:    hasRisk,
			emotional:  emotional,
			catalogPos: pos,
		})
	}

	sort.SliceStable(cands, func(i, j int) bool {
		if cands[i].hasRisk != cands[j].hasRisk {
			return cands[i].hasRisk
		}
		if ui, uj := urgencyRank[cands[i].rec.Urgency], urgencyRank[cands[j].rec.Urgency]; ui != uj {
			return ui < uj
		}
		return cands[i].catalogPos < cands[j].catalogPos
	})
	return cands
}

// justification builds the profile-specific phrase cited by whyItMatters.
// Actions without any citable connection are dropped, never emitted generic.
func justification(area FocusAreaRanking, tpl actionTemplate) (string, bool) {
	if tpl.addressesRisk && len(area.RiskFactors) > 0 {
		return area.RiskFactors[0], true
	}
	switch {
	case len(area.ValueConnections) > 0 && len(area.GoalConnections) > 0:
		return fmt.Sprintf("your %q value and your %q goal", area.ValueConnections[0], area.GoalConnections[0]), true
	case len(area.ValueConnections) > 0:
		return fmt.Sprintf("your %q value", area.ValueConnections[0]), true
	case len(area.GoalConnections) > 0:
		return fmt.Sprintf("your %q goal", area.GoalConnections[0]), true
	case len(area.RiskFactors) > 0:
		return area.RiskFactors[0], true
	default:
		return "", false
	}
}

func achievesTarget(area FocusAreaRanking) string {
	if len(area.GoalConnections) > 0 {
		return fmt.Sprintf("your %q goal", area.GoalConnections[0])
	}
	if len(area.ValueConnections) > 0 {
		return fmt.Sprintf("what you value most (%s)", area.ValueConnections[0])
	}
	if len(area.RiskFactors) > 0 {
		return "the gap you flagged (" + area.RiskFactors[0] + ")"
	}
	return "your plan"
}

func urgencyFor(p *Profile, cfg Config, area FocusAreaRanking, hasRisk bool) Urgency {
	if hasRisk && area.Priority == FocusCritical {
		return UrgencyImmediate
	}
	if hasRisk {
		return UrgencyNearTerm
	}
	nearRetirementDomain := area.Domain == DomainRetirementIncome ||
		area.Domain == DomainBenefitsOptimization || area.Domain == DomainHealthcareLTC
	if domainHasHorizonGoal(p, area.Domain, HorizonShort) || (nearRetirement(p, cfg) && nearRetirementDomain) {
		return UrgencyNearTerm
	}
	if domainHasHorizonGoal(p, area.Domain, HorizonMedium) || area.Priority == FocusCritical || area.Priority == FocusHigh {
		return UrgencyMediumTerm
	}
	return UrgencyOngoing
}

func domainHasHorizonGoal(p *Profile, d PlanningDomain, horizon TimeHorizon) bool {
	for _, g := range p.goalsList() {
		if g.TimeHorizon != horizon {
			continue
		}
		if _, ok := goalDomainWeights[g.Category][d]; ok {
			return true
		}
	}
	return false
}

func valueCategoryByLabel(label string) ValueCategory {
	for category, l := range valueCategoryLabels {
		if l == label {
			return category
		}
	}
	return ValueCategory(label)
}

// sortCandidates applies the global ordering precedence after dependency
// resolution is accounted for separately: risk exposure, then time
// sensitivity, then emotional importance, then domain rank, then id.
func sortCandidates(items []actionCandidate) {
	sort.SliceStable(items, func(i, j int) bool {
		a, b := items[i], items[j]
		if a.hasRisk != b.hasRisk {
			return a.hasRisk
		}
		if ua, ub := urgencyRank[a.rec.Urgency], urgencyRank[b.rec.Urgency]; ua != ub {
			return ua < ub
		}
		if a.emotional != b.emotional {
			return a.emotional
		}
		if a.area.Rank != b.area.Rank {
			return a.area.Rank < b.area.Rank
		}
		return a.rec.ID < b.rec.ID
	})
}

// resolveDependencies moves any emitted dependency ahead of its dependent,
// keeping the order stable otherwise. Dependencies that were not emitted are
// treated as already met.
func resolveDependencies(items []actionCandidate) []actionCandidate {
	out := append([]actionCandidate(nil), items...)
	for pass := 0; pass < len(out); pass++ {
		moved := false
		for i := 0; i < len(out) && !moved; i++ {
			for _, dep := range out[i].tpl.dependsOn {
				j := candidateIndex(out, dep)
				if j <= i {
					continue
				}
				depItem := out[j]
				copy(out[i+1:j+1], out[i:j])
				out[i] = depItem
				moved = true
				break
			}
		}
		if !moved {
			break
		}
	}
	return out
}

func candidateIndex(items []actionCandidate, id string) int {
	for i, item := range items {
		if item.rec.ID == id {
			return i
		}
	}
	return -1
}
