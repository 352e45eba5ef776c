package dto

// HealthData is the same shape the health-profile intake accepts; the
// recommendation endpoint interpolates it into the prompt without storing it.
type HealthData struct {
	Age           int     `json:"age"`
	Weight        float64 `json:"weight"`
	Height        float64 `json:"height"`
	BloodPressure string  `json:"bloodPressure"`
	Conditions    string  `json:"conditions"`
	Medications   string  `json:"medications"`
}

type SaveRecommendationRequest struct {
	Recommendation string `json:"recommendation"`
}
