package courses

import "learnhub/internal/content"

type executive struct{}

func (executive) Name() string { return "ai_exec" }

func (executive) Meta() (content.CourseMeta, error) {
	return content.CourseMeta{
		Slug:      "course-4",
		Title:     "AI for Executives: Leading in the AI Era",
		Summary:   "Case studies, frameworks and leadership insights for AI adoption.",
		Duration:  "~30–45 minutes",
		Level:     "Intermediate-advanced",
		HeroImage: "/static/images/courses/exec/hero.png",
		Thumbnail: "/static/images/courses/exec/thumb.png",
		OGImage:   "/static/images/courses/exec/hero.png",
		Tags:      []string{"Leadership", "Innovation"},
	}, nil
}

func (executive) Modules() ([]content.Module, error) {
	return []content.Module{
		{
			Slug:    "introduction",
			Title:   "Executive Introduction: Decisions, Risk, and a 90-Day Plan",
			Summary: "What to decide this quarter and how to measure it.",
			Sections: []content.Section{
				{
					Title: "Decisions for the Next Quarter",
					Content: list(
						"Pick two or three use cases with clear owners.",
						"Set data-handling rules per tool.",
						"Fund a small enablement team.",
					),
				},
				{
					Title: "30-60-90 Day Plan",
					Content: list(
						"<strong>30:</strong> approved tools and policy published.",
						"<strong>60:</strong> pilots running with baseline metrics.",
						"<strong>90:</strong> review results, scale or stop.",
					),
				},
			},
		},
		{
			Slug:    "delivery-models",
			Title:   "AI Frameworks & Delivery Models",
			Summary: "Trade-offs between buying, integrating and hosting.",
			Sections: []content.Section{
				{
					Title:   "Choosing What Fits",
					Content: para("Match data sensitivity and required control to the delivery model; start with the least effort that meets the risk bar."),
				},
			},
		},
		{
			Slug:    "governance",
			Title:   "Governance You Must Stand Up",
			Summary: "Policies, review cadence and accountability.",
			Sections: []content.Section{
				{
					Title: "Operating Model",
					Content: list(
						"A named executive sponsor.",
						"A review group for new use cases.",
						"Quarterly reporting on outcomes and incidents.",
					),
				},
			},
			Guardrails: []string{"Every pilot has an owner and an exit criterion."},
		},
	}, nil
}
