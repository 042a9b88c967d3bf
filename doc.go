// Package travelplan generates day-by-day travel itineraries and renders
// them as paginated PDF documents.
//
// # Quick Start
//
// Create a service with an OpenAI API key, generate a plan, and render it:
//
//	svc := travelplan.New(travelplan.WithAPIKey(os.Getenv("OPENAI_API_KEY")))
//
//	plan, err := svc.GeneratePlan(ctx, travelplan.TripRequest{
//	    Destination: "Tokyo, Japan",
//	    Days:        3,
//	    Interests:   "Museums, Food & Cuisine",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	pdfBytes, err := svc.RenderPDF(plan.Markdown)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("travel_plan.pdf", pdfBytes, 0644)
//
// The plan Markdown remains usable even when PDF rendering fails, so callers
// should persist plan.Markdown before rendering.
//
// # Pipeline
//
// Generation and rendering follow these stages:
//
//  1. Prompt construction from the trip request (system + user prompt)
//  2. Chat-completion call with an ordered model-fallback list
//  3. Line classification of the returned Markdown into layout blocks
//     (headings, bullet lists, paragraphs, blank spacers)
//  4. Paginated PDF layout on a fixed letter-size page geometry
//
// The Markdown subset is deliberately small: "## " and "### " headings, flat
// bullet lists ("-", "*", or the bullet glyph), and plain paragraphs. No other
// inline formatting is interpreted.
//
// # Configuration
//
// Use functional options to customize the service:
//
//	svc := travelplan.New(
//	    travelplan.WithAPIKey(key),
//	    travelplan.WithModels("gpt-5", "gpt-4.1"),
//	    travelplan.WithTimeout(2*time.Minute),
//	)
//
// For tests, inject a generator and a fixed clock:
//
//	svc := travelplan.New(
//	    travelplan.WithGenerator(fakeGen),
//	    travelplan.WithNow(func() time.Time { return fixed }),
//	)
//
// # Determinism
//
// BuildBlocks is a pure function: identical input yields an identical block
// sequence. RenderPDF output is byte-identical across calls for the same
// Markdown and clock; only the embedded generation timestamp varies with the
// wall clock.
package travelplan
