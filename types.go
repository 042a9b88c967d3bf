package travelplan

import "fmt"

// Trip request bounds, matching the input form limits.
const (
	MinDays = 1
	MaxDays = 30
)

// TripRequest holds the parameters for one plan generation.
type TripRequest struct {
	Destination string // e.g. "Tokyo, Japan" (required)
	Days        int    // trip length in days, 1-30
	Interests   string // free-form, e.g. "Museums, Food & Cuisine"
	Constraints string // guardrails, e.g. "no walking tours; kids-friendly"
}

// Validate checks that required fields are present and within bounds.
func (r TripRequest) Validate() error {
	if r.Destination == "" {
		return ErrEmptyDestination
	}
	if r.Days < MinDays || r.Days > MaxDays {
		return fmt.Errorf("%w: got %d", ErrInvalidDays, r.Days)
	}
	return nil
}

// Plan is the result of one generation call. The Markdown is kept even when
// a later rendering step fails, so the user never loses the generated text.
type Plan struct {
	Markdown string // plan text in the constrained Markdown subset
	Model    string // model that produced the text (first to succeed)
}
