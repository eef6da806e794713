package survey

// BuildRecommendations evaluates the fixed rule set against a validated survey
// and returns the resulting supplements, unique by name. Evaluation order is
// fixed; no rule depends on another rule's output.
func BuildRecommendations(in SurveyResponse) []Recommendation {
	candidates := make([]Recommendation, 0, 8)
	mappers := []func(SurveyResponse) []Recommendation{
		fromEnergy,
		fromMuscleGain,
		fromGutHealth,
		fromStressSleep,
		fromSkinAllergies,
		fromSevereAllergies,
		fromSkinIntegrity,
		fromCountryDeficiency,
	}
	for _, mapper := range mappers {
		candidates = append(candidates, mapper(in)...)
	}
	return dedupeByName(candidates)
}

// dedupeByName collapses candidates to uniqueness by name. The output keeps
// the first-insertion position of each distinct name; a later candidate with
// the same name replaces the stored value. The current rule set never produces
// the same name twice, but rule authors should not rely on that.
func dedupeByName(items []Recommendation) []Recommendation {
	seen := make(map[string]Recommendation, len(items))
	order := make([]string, 0, len(items))
	for _, item := range items {
		if _, ok := seen[item.Name]; !ok {
			order = append(order, item.Name)
		}
		seen[item.Name] = item
	}
	out := make([]Recommendation, 0, len(order))
	for _, name := range order {
		out = append(out, seen[name])
	}
	return out
}
