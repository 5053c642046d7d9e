package generator

// Fictional corpora for the two voices. Everything here is invented; no real
// institutions or people appear.

var institutionsNaija = []string{
	"University of Unverified Studies, Lagos",
	"Institute for Dubious Research, Abuja",
	"College of Questionable Sciences, Port Harcourt",
	"Academy of Anecdotal Evidence, Ibadan",
	"School of Confident Misunderstandings, Kano",
	"Department of Bro Science, Fictional State University",
	"Center for Hearsay Studies, Enugu",
	"Faculty of Trust Me Research, Benin City",
	"National Institute of Made-Up Statistics, Calabar",
	"Federal University of Unsourced Claims, Kaduna",
}

var institutionsGlobal = []string{
	"University of Unverified Studies, Stockholm",
	"Institute for Dubious Research, Geneva",
	"College of Questionable Sciences, Vienna",
	"Academy of Anecdotal Evidence, Toronto",
	"School of Confident Misunderstandings, Melbourne",
	"Department of Bro Science, Fictional State University",
	"Center for Hearsay Studies, Edinburgh",
	"Faculty of Trust Me Research, Copenhagen",
	"International Institute of Made-Up Data, Zurich",
	"Global Center for Unsourced Research, Amsterdam",
}

var firstNamesNaija = []string{
	"Chukwuemeka", "Oluwaseun", "Adebayo", "Ngozi", "Chidinma",
	"Emeka", "Folake", "Tunde", "Amaka", "Obiora", "Yetunde",
	"Ikechukwu", "Funke", "Babatunde", "Chinwe",
}

var firstNamesGlobal = []string{
	"Alexander", "Victoria", "Sebastian", "Eleanor", "Theodore",
	"Penelope", "Harrison", "Cordelia", "Benjamin", "Margaret",
	"Nathaniel", "Catherine", "Frederick", "Elizabeth", "William",
}

var surnamesNaija = []string{
	"Okonkwo", "Adeyemi", "Nwachukwu", "Ibrahim", "Okafor",
	"Balogun", "Eze", "Abubakar", "Okoro", "Adeleke",
	"Obi", "Mohammed", "Chukwu", "Afolabi", "Nnamdi",
}

var surnamesGlobal = []string{
	"Worthington", "Pemberton", "Ashford", "Blackwood", "Sterling",
	"Whitmore", "Harrington", "Caldwell", "Montgomery", "Fitzgerald",
	"Chamberlain", "Wellington", "Kensington", "Thornbury", "Fairfax",
}

var journals = []string{
	"Journal of Improbable Findings",
	"Quarterly Review of Unsubstantiated Claims",
	"International Journal of Anecdotal Science",
	"Proceedings of the Fictional Research Society",
	"Archives of Dubious Studies",
	"Bulletin of Made-Up Statistics",
	"Annals of Unverified Research",
	"Journal of Confident Assertions",
}

var referenceTitles = []string{
	"On the Nature of Unverified Claims",
	"A Framework for Dubious Research Methodology",
	"The Role of 'Trust Me, Bro' in Modern Discourse",
	"Statistical Methods for Imaginary Data",
	"Fabricating Evidence: A Practical Guide",
	"Why Nobody Reads Past the Abstract",
	"Confirmation Bias: A How-To Manual",
	"P-Hacking for Beginners",
}

var titlePrefixes = map[string][]string{
	"journal": {
		"A Rigorous Investigation into",
		"Empirical Evidence Supporting",
		"A Meta-Analysis of",
		"Correlational Study of",
		"Cross-Sectional Analysis of",
		"The Definitive Study on",
		"Quantitative Assessment of",
	},
	"conference": {
		"Towards Understanding",
		"Novel Insights into",
		"Preliminary Findings on",
		"An Exploratory Study of",
		"Investigating the Relationship Between",
		"New Evidence for",
	},
	"thesis": {
		"An Investigation into",
		"A Comprehensive Study of",
		"Exploring the Phenomenon of",
		"Understanding the Dynamics of",
		"A Critical Analysis of",
	},
}

// prefixesFor returns the title prefixes for a template, falling back to the
// journal set for unknown templates.
func prefixesFor(template string) []string {
	if p, ok := titlePrefixes[template]; ok {
		return p
	}
	return titlePrefixes["journal"]
}

var studyDurations = []string{"6 months", "1 year", "2 years", "an undisclosed period"}
