package insights

// actionCatalog is the per-domain library of templated actions. Conditions
// and dependency tags are data; the generator in actions.go is the only
// evaluator. Why/achieves strings each take one %s slot.
var actionCatalog = map[PlanningDomain][]actionTemplate{
	DomainRetirementIncome: {
		{
			id:          "retirement-income-timeline",
			title:       "Map your retirement income timeline",
			description: "Sketch the years between now and retirement and note which income sources start and stop when.",
			why:         "A clear timeline turns %s into concrete dates you can plan around.",
			achieves:    "A one-page picture of how income supports %s.",
			actionType:  ActionEducationAwareness,
			guidance:    GuidanceSelf,
		},
		{
			id:          "retirement-income-gap",
			title:       "Estimate your retirement income gap",
			description: "Compare expected income sources against expected spending to size any shortfall.",
			why:         "Knowing the gap early gives %s room to be met without rushed decisions later.",
			achieves:    "A rough but honest number for what %s still needs.",
			actionType:  ActionDecisionPreparation,
			guidance:    GuidanceAdvisor,
			applies: func(p *Profile, _ Config) bool {
				return p.Basic != nil && p.Basic.YearsToRetirement != nil
			},
		},
		{
			id:          "retirement-claiming-review",
			title:       "Review claiming and withdrawal sequencing",
			description: "Walk through when to start each income source and which accounts to draw first.",
			why:         "Sequencing mistakes are hard to undo, and %s makes the order of operations matter now.",
			achieves:    "A claiming order you can commit to in support of %s.",
			actionType:  ActionProfessionalReview,
			guidance:    GuidanceAdvisor,
			applies: func(p *Profile, cfg Config) bool {
				return nearRetirement(p, cfg)
			},
		},
	},
	DomainInvestmentStrategy: {
		{
			id:          "investment-alignment-review",
			title:       "Check your portfolio against your goals",
			description: "Compare how your money is currently invested with the timeframes of what it is for.",
			why:         "Investments drift; %s deserves a portfolio that still matches it.",
			achieves:    "Confidence that the portfolio is working toward %s.",
			actionType:  ActionEducationAwareness,
			guidance:    GuidanceSelf,
		},
		{
			id:          "investment-policy-outline",
			title:       "Write a one-page investment policy",
			description: "Capture your target mix, rebalancing rules, and what you will ignore in a downturn.",
			why:         "Written rules protect %s from in-the-moment reactions.",
			achieves:    "A standing policy that keeps decisions aligned with %s.",
			actionType:  ActionDecisionPreparation,
			guidance:    GuidanceAdvisor,
		},
		{
			id:          "investment-consolidation",
			title:       "Consolidate scattered accounts",
			description: "Inventory old employer plans and stray accounts and decide what to merge where.",
			why:         "Fewer accounts make it far easier to keep the whole picture serving %s.",
			achieves:    "One coherent portfolio view behind %s.",
			actionType:  ActionOptimization,
			guidance:    GuidanceSelf,
		},
	},
	DomainTaxOptimization: {
		{
			id:          "tax-bracket-awareness",
			title:       "Learn where your tax brackets bend",
			description: "Identify your current marginal bracket and the thresholds most relevant to your situation.",
			why:         "Bracket awareness is the foundation for every tax move that supports %s.",
			achieves:    "The context needed to evaluate tax choices against %s.",
			actionType:  ActionEducationAwareness,
			guidance:    GuidanceSelf,
		},
		{
			id:          "tax-roth-conversion",
			title:       "Evaluate a Roth conversion window",
			description: "Check whether low-income years ahead make partial Roth conversions worthwhile.",
			why:         "Conversion windows close; %s is a reason to check before they do.",
			achieves:    "A yes/no/later decision on conversions in light of %s.",
			actionType:  ActionDecisionPreparation,
			guidance:    GuidanceAdvisor,
			dependsOn:   []string{"cash-flow-emergency-fund"},
		},
		{
			id:          "tax-professional-review",
			title:       "Get a professional tax projection",
			description: "Have a tax professional project the next few years rather than just file the last one.",
			why:         "Forward-looking tax work is where %s actually gets protected.",
			achieves:    "A multi-year projection aligned with %s.",
			actionType:  ActionProfessionalReview,
			guidance:    GuidanceSpecialist,
		},
	},
	DomainInsuranceRisk: {
		{
			id:            "insurance-coverage-inventory",
			title:         "Inventory your insurance coverage",
			description:   "List every policy you hold, what it covers, and where the gaps are.",
			why:           "You flagged %s; an inventory makes the exposure concrete.",
			achieves:      "A clear map of protected versus exposed, measured against %s.",
			actionType:    ActionEducationAwareness,
			guidance:      GuidanceSelf,
			addressesRisk: true,
		},
		{
			id:          "insurance-life-needs",
			title:       "Size your life insurance need",
			description: "Estimate what the people who depend on your income would need if it stopped.",
			why:         "Protection gaps fall hardest on %s.",
			achieves:    "A coverage number grounded in %s.",
			actionType:  ActionDecisionPreparation,
			guidance:    GuidanceAdvisor,
			applies: func(p *Profile, _ Config) bool {
				return p.Risk != nil && p.Risk.HasLifeInsurance != nil && !*p.Risk.HasLifeInsurance
			},
			addressesRisk: true,
		},
		{
			id:          "insurance-policy-review",
			title:       "Review existing policies with a specialist",
			description: "Have current policies checked for overlaps, exclusions, and outdated terms.",
			why:         "Old policies quietly stop matching your life, and %s depends on them matching.",
			achieves:    "Policies that actually back %s.",
			actionType:  ActionProfessionalReview,
			guidance:    GuidanceSpecialist,
		},
	},
	DomainEstateLegacy: {
		{
			id:            "estate-core-documents",
			title:         "Put core estate documents in place",
			description:   "Set up a will, powers of attorney, and healthcare directives.",
			why:           "You flagged %s; without documents, state defaults decide instead of you.",
			achieves:      "The legal scaffolding behind %s.",
			actionType:    ActionStructuralSetup,
			guidance:      GuidanceSpecialist,
			addressesRisk: true,
			applies: func(p *Profile, _ Config) bool {
				return p.Risk == nil || p.Risk.HasEstateDocuments == nil || !*p.Risk.HasEstateDocuments
			},
		},
		{
			id:          "estate-beneficiary-audit",
			title:       "Audit beneficiary designations",
			description: "Check the named beneficiaries on every account and policy; they override wills.",
			why:         "Outdated designations can quietly redirect what %s intends.",
			achieves:    "Designations that line up with %s.",
			actionType:  ActionOptimization,
			guidance:    GuidanceSelf,
		},
		{
			id:          "estate-legacy-conversation",
			title:       "Have the legacy conversation",
			description: "Talk with the people involved about what you want your money to do after you.",
			why:         "Unspoken intentions are the most common way %s goes unrealized.",
			achieves:    "Shared understanding around %s.",
			actionType:  ActionDecisionPreparation,
			guidance:    GuidanceSelf,
		},
	},
	DomainCashFlowDebt: {
		{
			id:            "cash-flow-emergency-fund",
			title:         "Build your emergency fund to target",
			description:   "Automate transfers until liquid savings cover the target months of expenses.",
			why:           "You flagged %s; a funded buffer is what keeps one surprise from cascading.",
			achieves:      "A cushion that protects %s from forced decisions.",
			actionType:    ActionStructuralSetup,
			guidance:      GuidanceSelf,
			addressesRisk: true,
			applies: func(p *Profile, cfg Config) bool {
				return p.Risk == nil || p.Risk.EmergencyFundMonths == nil ||
					*p.Risk.EmergencyFundMonths < cfg.LowEmergencyFundMonths
			},
		},
		{
			id:          "cash-flow-baseline",
			title:       "Establish your spending baseline",
			description: "Track three months of actual spending to learn what your life costs.",
			why:         "Every plan serving %s starts from what actually goes out the door.",
			achieves:    "A real number to plan %s around.",
			actionType:  ActionEducationAwareness,
			guidance:    GuidanceSelf,
		},
		{
			id:            "cash-flow-debt-order",
			title:         "Set a debt paydown order",
			description:   "Rank debts by rate and risk and direct extra payments at one target at a time.",
			why:           "You flagged %s; an explicit order beats spreading payments thin.",
			achieves:      "A payoff sequence that accelerates %s.",
			actionType:    ActionOptimization,
			guidance:      GuidanceSelf,
			dependsOn:     []string{"cash-flow-baseline"},
			addressesRisk: true,
			applies: func(p *Profile, _ Config) bool {
				return p.Risk != nil && p.Risk.HighInterestDebt
			},
		},
	},
	DomainBenefitsOptimization: {
		{
			id:          "benefits-inventory",
			title:       "Inventory your employer benefits",
			description: "List every benefit you are eligible for, including the ones you have never used.",
			why:         "Unused benefits are compensation left behind, and %s argues for collecting all of it.",
			achieves:    "A complete picture of benefits supporting %s.",
			actionType:  ActionEducationAwareness,
			guidance:    GuidanceSelf,
		},
		{
			id:          "benefits-election-review",
			title:       "Review elections before the next window",
			description: "Re-evaluate health, retirement, and insurance elections instead of rolling them over.",
			why:         "Elections set on autopilot rarely keep serving %s.",
			achieves:    "Elections chosen deliberately for %s.",
			actionType:  ActionOptimization,
			guidance:    GuidanceSelf,
		},
		{
			id:          "benefits-pension-estimate",
			title:       "Get an official pension estimate",
			description: "Request a current annuity estimate and survivor-option comparison from your agency.",
			why:         "Federal pension choices are one-shot decisions, and %s depends on getting them right.",
			achieves:    "Real numbers for the pension piece of %s.",
			actionType:  ActionDecisionPreparation,
			guidance:    GuidanceAdvisor,
			applies: func(p *Profile, _ Config) bool {
				return p.Basic != nil && p.Basic.EmploymentType == "federal"
			},
		},
	},
	DomainBusinessCareer: {
		{
			id:          "career-transition-runway",
			title:       "Size your transition runway",
			description: "Calculate how many months of expenses you can cover while income changes.",
			why:         "A known runway turns %s from a leap into a plan.",
			achieves:    "A concrete runway number behind %s.",
			actionType:  ActionDecisionPreparation,
			guidance:    GuidanceSelf,
		},
		{
			id:          "business-structure-basics",
			title:       "Learn business structure basics",
			description: "Understand the liability and tax differences between sole proprietorship, LLC, and S-corp.",
			why:         "Structure chosen early shapes everything downstream of %s.",
			achieves:    "An informed structure choice for %s.",
			actionType:  ActionEducationAwareness,
			guidance:    GuidanceSelf,
			applies: func(p *Profile, _ Config) bool {
				for _, g := range p.goalsList() {
					if g.Category == GoalBusinessVenture {
						return true
					}
				}
				return false
			},
		},
		{
			id:          "career-income-bridge",
			title:       "Design an income bridge",
			description: "Plan which savings or part-time income cover the gap between old and new income.",
			why:         "Bridges built in advance keep %s from being abandoned mid-crossing.",
			achieves:    "A funded path through the transition toward %s.",
			actionType:  ActionStructuralSetup,
			guidance:    GuidanceAdvisor,
			dependsOn:   []string{"career-transition-runway"},
		},
	},
	DomainHealthcareLTC: {
		{
			id:          "healthcare-cost-awareness",
			title:       "Learn your real healthcare cost exposure",
			description: "Estimate premiums, out-of-pocket maximums, and what changes at retirement or 65.",
			why:         "Healthcare is the most underestimated cost, and %s makes the real number worth knowing.",
			achieves:    "An honest healthcare line item inside %s.",
			actionType:  ActionEducationAwareness,
			guidance:    GuidanceSelf,
		},
		{
			id:          "ltc-options-review",
			title:       "Review long-term care options",
			description: "Compare insuring, self-funding, and hybrid approaches to long-term care.",
			why:         "Waiting narrows the options, and %s deserves a deliberate choice rather than a default.",
			achieves:    "A chosen long-term-care approach consistent with %s.",
			actionType:  ActionProfessionalReview,
			guidance:    GuidanceSpecialist,
		},
		{
			id:          "healthcare-hsa-strategy",
			title:       "Use your HSA strategically",
			description: "If eligible, fund the HSA and decide whether to spend it now or invest it for later.",
			why:         "The HSA's triple tax advantage compounds directly toward %s.",
			achieves:    "A tax-advantaged reserve earmarked for %s.",
			actionType:  ActionOptimization,
			guidance:    GuidanceSelf,
			applies: func(p *Profile, _ Config) bool {
				return p.Basic != nil && p.Basic.HasEmployerBenefits
			},
		},
	},
}
