package courses

import "learnhub/internal/content"

type foundations struct{}

func (foundations) Name() string { return "ai_intro" }

func (foundations) Meta() (content.CourseMeta, error) {
	return content.CourseMeta{
		Slug:      "course-1",
		Title:     "AI Foundations",
		Summary:   "A short, approachable program on what AI is and where it can help a transit agency.",
		Duration:  "~30 minutes",
		Level:     "Introductory",
		HeroImage: "/static/images/courses/intro/hero.png",
		Thumbnail: "/static/images/courses/intro/thumb.png",
		OGImage:   "/static/images/courses/intro/hero.png",
		Tags:      []string{"AI", "LLM", "Foundations"},
	}, nil
}

func (foundations) Modules() ([]content.Module, error) {
	return []content.Module{
		{
			Slug:    "introduction",
			Title:   "Welcome to AI Foundations",
			Summary: "An overview of AI, how it works, and where it fits in public transit.",
			Sections: []content.Section{
				{
					Title: "Objectives",
					Content: list(
						"Spot <strong>everyday opportunities</strong> where AI saves time: emails, summaries, drafts.",
						"Apply <strong>simple patterns</strong>: summarize, draft, rewrite.",
						"Use <strong>approved tools safely</strong>: no personal data, review important facts.",
						"Leave with one or two ideas to try with your team.",
					),
				},
				{
					Title: "Definitions",
					Content: para("<strong>Artificial Intelligence</strong> is the broad field of making computers perform tasks that usually need human judgement.") +
						para("<strong>Machine Learning</strong> learns patterns from data instead of following hand-written rules.") +
						para("<strong>Large Language Models</strong> are generative models trained on large text corpora to predict the next token."),
				},
			},
			Resources: []content.Resource{
				{Label: "Agency AI usage policy", URL: "/static/docs/ai-policy.pdf"},
			},
		},
		{
			Slug:    "ai-eras",
			Title:   "AI Eras",
			Summary: "From rules and classic machine learning to agentic systems.",
			Sections: []content.Section{
				{
					Title: "From Rules to Learning",
					Content: list(
						"<strong>Rules and classic ML:</strong> expert systems, regression and decision trees for narrow, structured problems.",
						"<strong>Transfer learning:</strong> pretrained language representations reduce the data each task needs.",
						"<strong>Generative models:</strong> fluent long-form text and few-shot generalisation.",
						"<strong>Agentic systems:</strong> models that plan, call tools and iterate toward a goal.",
					),
				},
				{
					Title:   "What Is an Agent?",
					Content: para("An agent pursues a goal by deciding what to do next, usually by calling tools and checking results before moving on."),
				},
			},
			Guardrails: []string{
				"Keep a human in the loop for anything customer facing.",
				"Never paste rider personal data into public tools.",
			},
		},
		{
			Slug:    "llms",
			Title:   "Understanding LLMs",
			Summary: "What language models are good at, and where they struggle.",
			Sections: []content.Section{
				{
					Title: "What They Are Great At",
					Content: list(
						"Summarising long documents and meeting notes.",
						"Drafting first versions of routine communications.",
						"Rewriting text for a different audience or reading level.",
					),
				},
				{
					Title: "Where They Struggle",
					Content: list(
						"Exact arithmetic and up-to-date facts without retrieval.",
						"Confidently stating things that are not true.",
					),
				},
			},
		},
		{
			Slug:    "use-foundation-models",
			Title:   "Ways to Use Foundation Models",
			Summary: "Practical patterns: summarize, draft, transform, extract, classify.",
			Sections: []content.Section{
				{
					Title:   "A Reusable Prompt Pattern",
					Content: para("State the role, the task, the context, the constraints and the output format. Then review and iterate."),
				},
			},
		},
		{
			Slug:    "final",
			Title:   "Final Quiz",
			Summary: "Check your understanding before you go.",
			Sections: []content.Section{
				{
					Title:   "How this works",
					Content: para("Questions you answer correctly will not be asked again. Wrong answers come back until you get them right."),
				},
			},
		},
	}, nil
}

func (foundations) Quizzes() (map[string][]content.QuizQuestion, error) {
	return map[string][]content.QuizQuestion{
		"introduction": {
			{
				ID:      "intro-1",
				Prompt:  "Which is a good first use of AI at work?",
				Options: options("a", "Approving payments automatically", "b", "Summarising a long report for review", "c", "Replacing safety inspections", "d", "Answering riders without oversight"),
				Correct: "b",
				Help:    "Start with low-risk drafting and summarising tasks where a person reviews the output.",
			},
			{
				ID:      "intro-2",
				Prompt:  "What should you never paste into a public AI tool?",
				Options: options("a", "A published press release", "b", "A public timetable", "c", "Rider personal information", "d", "A generic email template"),
				Correct: "c",
			},
		},
		"ai-eras": {
			{
				ID:      "eras-1",
				Prompt:  "What distinguishes an agentic system?",
				Options: options("a", "It only follows fixed if-then rules", "b", "It plans steps and calls tools toward a goal", "c", "It cannot use external data", "d", "It only classifies images"),
				Correct: "b",
				Help:    "Agents decide what to do next and use tools along the way.",
			},
		},
		"llms": {
			{
				ID:      "llm-1",
				Prompt:  "Where do LLMs tend to struggle?",
				Options: options("a", "Rewriting text for a new audience", "b", "Drafting routine emails", "c", "Stating current facts without retrieval", "d", "Summarising notes"),
				Correct: "c",
			},
		},
		"final": {
			{
				ID:      "final-1",
				Prompt:  "Who is accountable for AI-assisted work you send out?",
				Options: options("a", "The model vendor", "b", "You, the person sending it", "c", "Nobody", "d", "IT"),
				Correct: "b",
				Help:    "AI helps you draft; you remain responsible for the result.",
			},
			{
				ID:      "final-2",
				Prompt:  "Which prompt element most improves output format?",
				Options: options("a", "Asking politely", "b", "Specifying the output format", "c", "Using capital letters", "d", "Making the prompt shorter"),
				Correct: "b",
			},
		},
	}, nil
}
