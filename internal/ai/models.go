package ai

// LocationResult captures the structured output from the model.
type LocationResult struct {
	// Location is the place name the user is asking about, or empty when the
	// message mentions none.
	Location string `json:"location"`

	// Confidence is the model's own 0-1 estimate. Kept for logging; the
	// extraction chain does not threshold on it.
	Confidence float64 `json:"confidence"`
}
