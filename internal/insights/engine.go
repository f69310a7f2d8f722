package insights

import "time"

// overridable for deterministic tests
var now = time.Now

// Insights is the composite result returned to the calling layer. It is a
// pure computed value: never mutated and never persisted by the engine.
type Insights struct {
	Strategy   StrategyProfile        `json:"strategyProfile"`
	FocusAreas PlanningFocusResult    `json:"focusAreas"`
	Actions    []ActionRecommendation `json:"actions"`
}

// Engine computes insights from a profile. It holds only configuration, no
// per-call state, so a single Engine is safe for concurrent use.
type Engine struct {
	cfg Config
}

// NewEngine constructs an engine, filling zero config fields with defaults.
func NewEngine(cfg Config) *Engine {
	return &Engine{cfg: cfg.normalized()}
}

// Config returns the effective configuration.
func (e *Engine) Config() Config {
	return e.cfg
}

// BuildInsights is the single entry point: it scores the strategy profile and
// the focus ranking independently, then generates actions from the ranking.
// Missing or partial data degrades gracefully and never errors; only a
// structurally invalid profile returns a typed *InvalidProfileError.
func (e *Engine) BuildInsights(p *Profile) (Insights, error) {
	if err := p.Validate(); err != nil {
		return Insights{}, err
	}

	strategy := e.ScoreStrategyProfile(p)
	focus := e.RankFocusAreas(p)
	actions := e.GenerateActions(p, focus)

	return Insights{
		Strategy:   strategy,
		FocusAreas: focus,
		Actions:    actions,
	}, nil
}
