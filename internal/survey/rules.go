package survey

import "strings"

func fromEnergy(in SurveyResponse) []Recommendation {
	if in.Energy < 4 {
		return nil
	}
	return []Recommendation{{
		Name:    "Magnesium Glycinate",
		Reason:  "Supports cellular energy and relaxation; often low in modern diets.",
		Dosage:  "200–400 mg in the evening",
		Sources: citations[keyMagnesium],
	}}
}

func fromMuscleGain(in SurveyResponse) []Recommendation {
	if in.MuscleGain < 3 {
		return nil
	}
	return []Recommendation{{
		Name:    "Creatine Monohydrate",
		Reason:  "Improves high-intensity performance and lean mass in numerous RCTs.",
		Dosage:  "3–5 g daily",
		Sources: citations[keyCreatine],
	}}
}

func fromGutHealth(in SurveyResponse) []Recommendation {
	if in.GutHealth < 3 && in.Digestion < 3 {
		return nil
	}
	return []Recommendation{{
		Name:    "Multi-strain Probiotic",
		Reason:  "Helps balance gut microbiota and supports digestion.",
		Dosage:  "10–20B CFU daily",
		Sources: citations[keyProbiotic],
	}}
}

func fromStressSleep(in SurveyResponse) []Recommendation {
	if in.Stress < 3 && in.Sleep < 3 {
		return nil
	}
	return []Recommendation{{
		Name:    "Ashwagandha (KSM-66/Sensoril)",
		Reason:  "Adaptogen studied for perceived stress and sleep quality.",
		Dosage:  "300–600 mg daily",
		Sources: citations[keyAshwagandha],
	}}
}

func fromSkinAllergies(in SurveyResponse) []Recommendation {
	if in.Skin < 3 && in.Allergies < 3 {
		return nil
	}
	return []Recommendation{{
		Name:    "Omega-3 (EPA/DHA)",
		Reason:  "Anti-inflammatory support with benefits for skin barrier and allergies.",
		Dosage:  "1–2 g combined EPA/DHA daily",
		Sources: citations[keyOmega3],
	}}
}

func fromSevereAllergies(in SurveyResponse) []Recommendation {
	if in.Allergies < 4 {
		return nil
	}
	return []Recommendation{{
		Name:    "Quercetin",
		Reason:  "Bioflavonoid studied for mast-cell stabilization and seasonal allergies.",
		Dosage:  "500–1000 mg daily with food",
		Sources: citations[keyQuercetin],
	}}
}

func fromSkinIntegrity(in SurveyResponse) []Recommendation {
	if in.Skin < 4 {
		return nil
	}
	return []Recommendation{{
		Name:    "Zinc Picolinate",
		Reason:  "Supports skin integrity and immune function; deficiency correlates with acne.",
		Dosage:  "15–30 mg daily with food",
		Sources: citations[keyZinc],
	}}
}

func fromCountryDeficiency(in SurveyResponse) []Recommendation {
	if countryDeficiency[strings.ToLower(in.Country)] != keyVitaminD {
		return nil
	}
	return []Recommendation{{
		Name:    "Vitamin D3 (cholecalciferol)",
		Reason:  "High latitude regions have limited UVB; D3 supports immunity and mood.",
		Dosage:  "1000–2000 IU daily",
		Sources: citations[keyVitaminD],
	}}
}
