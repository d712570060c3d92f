package courses

import "learnhub/internal/content"

type applied struct{}

func (applied) Name() string { return "ai_applied" }

func (applied) Meta() (content.CourseMeta, error) {
	return content.CourseMeta{
		Slug:      "course-2",
		Title:     "Applied AI: Delivery Models & Leadership",
		Summary:   "Delivery models, patterns and leadership insights for responsible adoption.",
		Duration:  "~30–45 minutes",
		Level:     "Intermediate",
		HeroImage: "/static/images/courses/applied/hero.png",
		Thumbnail: "/static/images/courses/applied/thumb.png",
		OGImage:   "/static/images/courses/applied/hero.png",
		Tags:      []string{"Delivery", "Governance", "Leadership"},
	}, nil
}

func (applied) Modules() ([]content.Module, error) {
	return []content.Module{
		{
			Slug:    "introduction",
			Title:   "Introduction & Goals",
			Summary: "Where this course picks up from AI Foundations.",
			Sections: []content.Section{
				{
					Title: "Program Goals",
					Content: list(
						"Compare the ways an agency can obtain AI capability.",
						"Match delivery models to risk and data sensitivity.",
						"Know what leadership must decide and own.",
					),
				},
			},
		},
		{
			Slug:    "delivery-models",
			Title:   "AI Frameworks & Delivery Models",
			Summary: "Public assistants, cloud APIs, embedded tools, self-hosted and edge.",
			Sections: []content.Section{
				{
					Title:   "Public AI Assistants",
					Content: para("Fast to try and low cost, but data leaves the agency. Suitable for public information only."),
				},
				{
					Title:   "Cloud APIs",
					Content: para("Managed models behind contracts and data-processing terms. Good for integrations built by IT."),
				},
				{
					Title:   "Locally Hosted",
					Content: para("Open models run on agency hardware. Maximum control, higher operational effort."),
				},
				{
					Title:   "Retrieval and Fine-Tuning",
					Content: para("Retrieval grounds answers in agency documents; fine-tuning adjusts style or narrow behaviour."),
				},
			},
		},
		{
			Slug:    "prompting-strategies",
			Title:   "Prompting Strategies",
			Summary: "Ideate, plan, create: structured collaboration with a model.",
			Sections: []content.Section{
				{
					Title:   "Ideate, Plan, Create",
					Content: para("Ask for options first, pick one and have the model outline it, then draft section by section with review in between."),
				},
			},
		},
		{
			Slug:    "leadership-insights",
			Title:   "Leadership Insights",
			Summary: "What leaders need to decide, fund and measure.",
			Sections: []content.Section{
				{
					Title: "Decisions for Leaders",
					Content: list(
						"Which data classes may be used with which tools.",
						"Who approves new use cases.",
						"How results are measured and reviewed.",
					),
				},
			},
			Guardrails: []string{"Publish an approved-tools list and keep it current."},
		},
	}, nil
}
