package insights

// Config holds the tunable parameters of the insights engine. Scoring logic
// never reads magic numbers directly; everything adjustable lives here.
type Config struct {
	// MaxActions caps the emitted action list.
	MaxActions int
	// MinActions is the target floor when enough qualifying templates exist.
	// The engine never pads with unjustified actions to reach it.
	MinActions int

	// CriticalMargin puts every domain whose score is within this distance of
	// the top score into the CRITICAL tier.
	CriticalMargin float64
	// HighShare and ModerateShare bucket the remaining domains by their share
	// of the top score, so tier boundaries track actual score separation.
	HighShare     float64
	ModerateShare float64

	// NearRetirementYears is the proximity threshold below which retirement
	// counts as a near-term timing pressure.
	NearRetirementYears int
	// LowEmergencyFundMonths is the threshold under which the emergency fund
	// counts as a cash-flow risk exposure.
	LowEmergencyFundMonths int
}

// DefaultConfig returns the engine defaults.
func DefaultConfig() Config {
	return Config{
		MaxActions:             7,
		MinActions:             3,
		CriticalMargin:         2.0,
		HighShare:              0.65,
		ModerateShare:          0.35,
		NearRetirementYears:    3,
		LowEmergencyFundMonths: 3,
	}
}

func (c Config) normalized() Config {
	d := DefaultConfig()
	if c.MaxActions <= 0 {
		c.MaxActions = d.MaxActions
	}
	if c.MinActions <= 0 || c.MinActions > c.MaxActions {
		c.MinActions = min(d.MinActions, c.MaxActions)
	}
	if c.CriticalMargin <= 0 {
		c.CriticalMargin = d.CriticalMargin
	}
	if c.HighShare <= 0 || c.HighShare >= 1 {
		c.HighShare = d.HighShare
	}
	if c.ModerateShare <= 0 || c.ModerateShare >= c.HighShare {
		c.ModerateShare = d.ModerateShare
	}
	if c.NearRetirementYears <= 0 {
		c.NearRetirementYears = d.NearRetirementYears
	}
	if c.LowEmergencyFundMonths <= 0 {
		c.LowEmergencyFundMonths = d.LowEmergencyFundMonths
	}
	return c
}
