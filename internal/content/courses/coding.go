package courses

import "learnhub/internal/content"

type coding struct{}

func (coding) Name() string { return "ai_coding" }

func (coding) Meta() (content.CourseMeta, error) {
	return content.CourseMeta{
		Slug:      "course-3",
		Title:     "Coding with AI: VS Code, Copilot, GPT & Claude",
		Summary:   "Practical techniques for AI-assisted software development and DevOps.",
		Duration:  "~60–90 minutes",
		Level:     "Intermediate–Advanced",
		HeroImage: "/static/images/courses/coding/hero.png",
		Thumbnail: "/static/images/courses/coding/thumb.png",
		OGImage:   "/static/images/courses/coding/hero.png",
		Tags:      []string{"Coding", "Agentic Workflows", "Governance"},
	}, nil
}

func (coding) Modules() ([]content.Module, error) {
	return []content.Module{
		{
			Slug:    "introduction",
			Title:   "Introduction & Objectives",
			Summary: "What you will be able to do after this course.",
			Sections: []content.Section{
				{
					Title: "What You Will Learn",
					Content: list(
						"Configure the editor and assistant safely.",
						"Use chat and inline completion for everyday tasks.",
						"Verify generated code with tests and review.",
					),
				},
			},
		},
		{
			Slug:    "vscode-setup",
			Title:   "Editor Setup for AI-Accelerated Development",
			Summary: "Extensions, settings and secret hygiene.",
			Sections: []content.Section{
				{
					Title:   "Secret Hygiene",
					Content: para("Keep credentials in <code>.env</code> or a secret store, exclude them from version control and from prompts."),
				},
				{
					Title:   "Prompt Library in Workspace",
					Content: para("Keep reusable prompts in a <code>/prompts</code> folder under version control so the team can improve them together."),
				},
			},
			Guardrails: []string{"Enable workspace trust; never disable it for convenience."},
		},
		{
			Slug:    "agentic-workflows",
			Title:   "Agentic Workflows in the Editor",
			Summary: "Plan first, use tools, verify and iterate.",
			Sections: []content.Section{
				{
					Title:   "Plan First",
					Content: para("Have the agent write a plan and review it before any file is changed."),
				},
				{
					Title:   "Verify & Iterate",
					Content: para("Run the tests after each step. Small verified steps beat one large unreviewed change."),
				},
			},
		},
		{
			Slug:    "testing-debugging",
			Title:   "Testing, Debugging, and Code Review with AI",
			Summary: "Using assistants to write tests first and review changes.",
			Sections: []content.Section{
				{
					Title:   "Test-First with AI",
					Content: para("Describe the behaviour, ask for failing tests, then ask for the implementation that makes them pass."),
				},
			},
		},
		{
			Slug:    "final",
			Title:   "Final Quiz",
			Summary: "Confirm the key practices.",
			Sections: []content.Section{
				{Title: "How this works", Content: para("Answer each question until it is correct.")},
			},
		},
	}, nil
}

func (coding) Quizzes() (map[string][]content.QuizQuestion, error) {
	return map[string][]content.QuizQuestion{
		"introduction": {
			{
				ID:      "intro-1",
				Prompt:  "Which outcome does this course emphasise?",
				Options: options("a", "Automating production without tests", "b", "Configuring the editor and assistant safely", "c", "Using one model for every task", "d", "Skipping code review"),
				Correct: "b",
				Help:    "Configuration plus governance and quality are foundational.",
			},
			{
				ID:      "intro-2",
				Prompt:  "Which practice is recommended when coding with AI?",
				Options: options("a", "Share internal tokens in prompts", "b", "Record model-assisted changes and verify with tests", "c", "Disable workspace trust", "d", "Accept all suggestions"),
				Correct: "b",
			},
		},
		"vscode-setup": {
			{
				ID:      "vsc-1",
				Prompt:  "Which file should be excluded from prompts and version control?",
				Options: options("a", "README.md", "b", "go.mod", "c", ".env", "d", "LICENSE"),
				Correct: "c",
				Help:    "Secrets belong in .env or secret stores and must not be shared with models.",
			},
			{
				ID:      "vsc-2",
				Prompt:  "Where should reusable prompts live?",
				Options: options("a", "Personal notes only", "b", "A /prompts folder under version control", "c", "Chat history", "d", "Nowhere"),
				Correct: "b",
			},
		},
		"agentic-workflows": {
			{
				ID:      "agent-1",
				Prompt:  "What should an agent do before changing files?",
				Options: options("a", "Push to main", "b", "Write a plan for review", "c", "Delete the tests", "d", "Nothing"),
				Correct: "b",
			},
		},
		"testing-debugging": {
			{
				ID:      "test-1",
				Prompt:  "In a test-first workflow, what comes first?",
				Options: options("a", "The implementation", "b", "A failing test that describes the behaviour", "c", "Deployment", "d", "Code review"),
				Correct: "b",
				Help:    "Tests first pin down the behaviour the generated code must satisfy.",
			},
		},
		"final": {
			{
				ID:      "final-1",
				Prompt:  "Who owns code produced with an assistant?",
				Options: options("a", "The assistant", "b", "The engineer who commits it", "c", "The vendor", "d", "Nobody"),
				Correct: "b",
			},
		},
	}, nil
}
