package generator

import "strings"

// Topic captures the detected subject domain of a claim and the fabricated
// jargon used to dress the paper up.
type Topic struct {
	Domain   string
	Jargon   []string
	Formulas []string
	Units    []string
	Methods  []string
	YLabels  []string
}

var topicKeywords = []struct {
	words []string
	topic Topic
}{
	{
		words: []string{"glucose", "chemical", "molecule", "atom", "reaction", "acid", "base", "compound", "element", "oxygen", "carbon", "protein", "enzyme", "cell", "dna", "rna"},
		topic: Topic{
			Domain:   "biochemistry",
			Jargon:   []string{"molecular concentration", "enzymatic activity", "substrate binding", "metabolic pathway", "cellular uptake", "bioavailability"},
			Formulas: []string{"C6H12O6 (glucose)", "ATP -> ADP + Pi", "dG = -RT ln K", "pH = -log[H+]"},
			Units:    []string{"mol/L", "uM", "kDa", "nm"},
			Methods:  []string{"spectrophotometry", "chromatography", "mass spectrometry", "Western blot analysis"},
			YLabels:  []string{"Concentration (uM)", "Enzyme Activity (%)", "Binding Affinity"},
		},
	},
	{
		words: []string{"energy", "force", "gravity", "speed", "light", "quantum", "wave", "particle", "electric", "magnetic", "momentum"},
		topic: Topic{
			Domain:   "physics",
			Jargon:   []string{"wave function", "quantum superposition", "electromagnetic field", "kinetic energy", "potential energy"},
			Formulas: []string{"E = mc^2", "F = ma", "dE = hv", "p = mv", "lambda = h/p"},
			Units:    []string{"J", "N", "eV", "m/s^2", "Hz"},
			Methods:  []string{"interferometry", "particle acceleration", "spectral analysis", "calorimetry"},
			YLabels:  []string{"Energy (J)", "Force (N)", "Frequency (Hz)"},
		},
	},
	{
		words: []string{"food", "eat", "rice", "diet", "nutrition", "calorie", "meal", "cooking", "taste", "spoon", "fork", "stew", "vitamin"},
		topic: Topic{
			Domain:   "nutrition",
			Jargon:   []string{"caloric intake", "macronutrient balance", "glycemic index", "satiety response", "dietary compliance"},
			Formulas: []string{"BMI = kg/m^2", "TEE = BMR x PAL", "DRI = EAR + 2SD"},
			Units:    []string{"kcal", "g/serving", "mg/dL", "IU"},
			Methods:  []string{"food frequency questionnaire", "dietary recall", "metabolic assessment", "anthropometric measurement"},
			YLabels:  []string{"Caloric Intake (kcal)", "Nutrient Level (%)", "Satisfaction Score"},
		},
	},
	{
		words: []string{"people", "person", "think", "feel", "behavior", "social", "mental", "happy", "sad", "stress", "intelligence", "personality"},
		topic: Topic{
			Domain:   "psychology",
			Jargon:   []string{"cognitive load", "behavioral pattern", "psychometric assessment", "self-efficacy", "emotional regulation"},
			Formulas: []string{"d = (M1 - M2) / s", "r^2 = explained variance", "a > 0.7 (reliability)"},
			Units:    []string{"SD", "percentile", "z-score", "Likert scale"},
			Methods:  []string{"self-report inventory", "behavioral observation", "neuroimaging", "longitudinal analysis"},
			YLabels:  []string{"Response Score", "Cognitive Load (%)", "Behavioral Index"},
		},
	},
	{
		words: []string{"computer", "phone", "internet", "app", "software", "code", "data", "ai", "machine", "digital", "algorithm"},
		topic: Topic{
			Domain:   "technology",
			Jargon:   []string{"computational efficiency", "algorithmic complexity", "data throughput", "system latency", "API integration"},
			Formulas: []string{"O(n log n)", "T(n) = 2T(n/2) + n", "bandwidth = bits/second"},
			Units:    []string{"ms", "MB/s", "FLOPS", "requests/sec"},
			Methods:  []string{"A/B testing", "benchmark analysis", "user analytics", "load testing"},
			YLabels:  []string{"Processing Time (ms)", "Efficiency (%)", "User Engagement"},
		},
	},
	{
		words: []string{"money", "rich", "poor", "economy", "price", "cost", "income", "wealth", "salary", "profit", "market"},
		topic: Topic{
			Domain:   "economics",
			Jargon:   []string{"marginal utility", "price elasticity", "market equilibrium", "opportunity cost", "comparative advantage"},
			Formulas: []string{"ROI = (gain - cost) / cost", "PV = FV / (1+r)^n", "GDP = C + I + G + NX"},
			Units:    []string{"$", "% APR", "basis points", "PPP"},
			Methods:  []string{"econometric modeling", "regression analysis", "market survey", "panel data analysis"},
			YLabels:  []string{"Value ($)", "ROI (%)", "Market Share (%)"},
		},
	},
}

var genericTopic = Topic{
	Domain:   "general",
	Jargon:   []string{"statistical significance", "effect size", "confidence interval", "correlation coefficient"},
	Formulas: []string{"p < 0.05", "r = 0.7", "CI = 95%"},
	Units:    []string{"%", "SD", "n"},
	Methods:  []string{"survey methodology", "observational study", "cross-sectional analysis"},
	YLabels:  []string{"Agreement Level (%)", "Effect Size", "Response Rate (%)"},
}

// AnalyzeTopic classifies a claim into a subject domain by keyword match;
// first matching class wins, unmatched claims get the generic topic.
func AnalyzeTopic(claim string) Topic {
	lower := strings.ToLower(claim)
	for _, tk := range topicKeywords {
		for _, w := range tk.words {
			if strings.Contains(lower, w) {
				return tk.topic
			}
		}
	}
	return genericTopic
}
