package survey

// SurveyResponse is a validated self-reported health survey. Each rating is an
// integer in [1,5]; binding tags reject anything else before the engine runs.
type SurveyResponse struct {
	Energy     int    `json:"energy" binding:"required,min=1,max=5"`
	GutHealth  int    `json:"gut_health" binding:"required,min=1,max=5"`
	MuscleGain int    `json:"muscle_gain" binding:"required,min=1,max=5"`
	Stress     int    `json:"stress" binding:"required,min=1,max=5"`
	Sleep      int    `json:"sleep" binding:"required,min=1,max=5"`
	Allergies  int    `json:"allergies" binding:"required,min=1,max=5"`
	Autoimmune int    `json:"autoimmune" binding:"required,min=1,max=5"` // eczema, asthma
	Skin       int    `json:"skin" binding:"required,min=1,max=5"`
	Digestion  int    `json:"digestion" binding:"required,min=1,max=5"`
	Country    string `json:"country" binding:"required"`
	Email      string `json:"email" binding:"omitempty,email"`
}

// Recommendation is one suggested supplement with rationale, dosage and
// research citations. Name is the uniqueness key.
type Recommendation struct {
	Name    string   `json:"name"`
	Reason  string   `json:"reason"`
	Dosage  string   `json:"dosage,omitempty"`
	Sources []string `json:"sources"`
}

// RecommendationResult is the outward-facing response for a survey.
type RecommendationResult struct {
	PackageImageURL string           `json:"package_image_url"`
	Recommendations []Recommendation `json:"recommendations"`
}
