package travelplan

import (
	"fmt"
	"strings"
)

// systemPrompt pins the model to the constrained Markdown subset the
// classifier understands: H2/H3 headings, flat bullet lists, short
// paragraphs. Guardrails from the trip request take priority over interests.
const systemPrompt = `You are a practical TRAVEL PLANNER.
You must obey any guardrails (constraints) strictly.

Output rules:
- Output in Markdown.
- Use these top-level H2 sections (##):
  ## Trip Overview
  ## Day-by-Day Plan
  ## Practical Notes
- Inside '## Day-by-Day Plan', provide:
  - Day 1, Day 2, ... Day N as H3 headings (### Day X)
  - For each day, include Morning / Afternoon / Evening
  - 4-8 bullet items total per day (across sections), not walls of text
- Keep suggestions realistic and geographically coherent (cluster activities by area).
- If the user says "no walking tours", avoid heavy walking routes.
- If the user says kids-friendly or wheelchair accessible, ensure the plan respects that.
- Include food suggestions if interest includes food & cuisine.
- Include at least one low-energy option per day (e.g., café, scenic view, market).
- Avoid unsafe or illegal activities. Avoid medical advice.

If destination is ambiguous, assume the most common city/country match and note the assumption in Trip Overview.`

// BuildUserPrompt renders the trip request as the user message sent to the
// model. Empty optional fields become explicit "None" so the model does not
// invent interests or constraints.
func BuildUserPrompt(req TripRequest) string {
	interests := req.Interests
	if interests == "" {
		interests = "None"
	}
	constraints := req.Constraints
	if constraints == "" {
		constraints = "None"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "TRIP INPUTS\n")
	fmt.Fprintf(&b, "- Destination: %s\n", req.Destination)
	fmt.Fprintf(&b, "- Number of days: %d\n", req.Days)
	fmt.Fprintf(&b, "- Special interests: %s\n", interests)
	fmt.Fprintf(&b, "- Guardrails / constraints: %s\n", constraints)
	fmt.Fprintf(&b, "\n")
	fmt.Fprintf(&b, "INSTRUCTIONS\n")
	fmt.Fprintf(&b, "- Generate a complete plan for %d days (Day 1..Day %d).\n", req.Days, req.Days)
	fmt.Fprintf(&b, "- Balance interests across days; do not repeat the exact same type of activity back-to-back unless necessary.\n")
	fmt.Fprintf(&b, "- Use bullet points for activities with short labels and 1-line details.\n")
	fmt.Fprintf(&b, "- Include suggested \"time windows\" (e.g., 9-12) optionally, but keep it readable.\n")
	fmt.Fprintf(&b, "- If guardrails conflict with interests, prioritize guardrails and explain briefly in Practical Notes.")
	return b.String()
}
