package survey

// Supplement keys index the citation table.
const (
	keyVitaminD    = "vitamin_d"
	keyCreatine    = "creatine"
	keyProbiotic   = "probiotic"
	keyMagnesium   = "magnesium"
	keyOmega3      = "omega_3"
	keyQuercetin   = "quercetin"
	keyZinc        = "zinc"
	keyAshwagandha = "ashwagandha"
)

// citations holds research references per supplement key. Read-only after
// process start.
var citations = map[string][]string{
	keyVitaminD: {
		"Harvard T.H. Chan School of Public Health – Vitamin D and Health",
		"University of Cambridge – Vitamin D and immune modulation",
	},
	keyCreatine: {
		"University of Nottingham – Creatine and muscle performance",
		"Australian Institute of Sport – Creatine evidence",
	},
	keyProbiotic: {
		"Johns Hopkins – Gut microbiome and probiotics",
		"Stanford Medicine – Probiotics in GI health",
	},
	keyMagnesium: {
		"NIH ODS – Magnesium and sleep quality",
		"UC Berkeley – Stress and magnesium relationship",
	},
	keyOmega3: {
		"Harvard – Omega-3 and cardiovascular/skin benefits",
	},
	keyQuercetin: {
		"NC State University – Quercetin and allergies",
	},
	keyZinc: {
		"University of Florida – Zinc and skin health",
	},
	keyAshwagandha: {
		"University of Michigan – Adaptogens for stress",
	},
}

// countryDeficiency maps a lower-cased country name to the supplement key of
// its region-wide deficiency. Only high-latitude vitamin D entries for now.
var countryDeficiency = map[string]string{
	"uk":      keyVitaminD,
	"ireland": keyVitaminD,
	"canada":  keyVitaminD,
	"sweden":  keyVitaminD,
	"norway":  keyVitaminD,
}
