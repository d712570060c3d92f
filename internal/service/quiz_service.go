package service

import (
	"context"
	"fmt"
	"learnhub/internal/content"
	"learnhub/internal/model"
	"learnhub/internal/util"
	"learnhub/pkg/monitoring"
	"learnhub/pkg/tracing"
	"strconv"

	"go.opentelemetry.io/otel/attribute"
)

type AttemptStore interface {
	Create(ctx context.Context, attempt *model.QuizAttempt) error
	PassedQuestionIDs(ctx context.Context, sessionID, moduleKey string) (map[string]bool, error)
}

type QuizService struct {
	Registry *content.Registry
	Attempts AttemptStore
}

func NewQuizService(registry *content.Registry, attempts AttemptStore) *QuizService {
	return &QuizService{Registry: registry, Attempts: attempts}
}

// QuestionView is what a client sees of a question. It has no field for the answer.
type QuestionView struct {
	ID      string          `json:"id"`
	Prompt  string          `json:"prompt"`
	Options content.Options `json:"options"`
}

type NextQuestionResult struct {
	Question  *QuestionView
	Completed bool
	Remaining int
	Total     int
}

type SubmitAnswerInput struct {
	CourseSlug string
	ModuleSlug string
	SessionID  string
	QuestionID string
	Selected   string
}

type SubmitAnswerResult struct {
	Correct bool    `json:"correct"`
	Help    *string `json:"help"`
}

// NextQuestion returns the first question, in definition order, that the session has not
// yet answered correctly. A module without questions counts as completed.
func (s *QuizService) NextQuestion(ctx context.Context, courseSlug, moduleSlug, sessionID string) (*NextQuestionResult, error) {
	if sessionID == "" {
		return nil, util.NewValidationError("session_id required")
	}
	if len(sessionID) > util.MaxSessionIDLen {
		return nil, util.NewValidationError("session_id too long")
	}

	ctx, span := tracing.Tracer.Start(ctx, "QuizService.NextQuestion")
	defer span.End()
	span.SetAttributes(attribute.String("course", courseSlug), attribute.String("module", moduleSlug))

	questions := s.Registry.ModuleQuiz(courseSlug, moduleSlug)
	if len(questions) == 0 {
		return &NextQuestionResult{Completed: true}, nil
	}

	passed, err := s.Attempts.PassedQuestionIDs(ctx, sessionID, content.ModuleKey(courseSlug, moduleSlug))
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("load quiz attempts: %w", err)
	}

	var remaining []content.QuizQuestion
	for _, q := range questions {
		if !passed[q.ID] {
			remaining = append(remaining, q)
		}
	}

	if len(remaining) == 0 {
		return &NextQuestionResult{Completed: true, Total: len(questions)}, nil
	}

	q := remaining[0]
	return &NextQuestionResult{
		Question: &QuestionView{
			ID:      q.ID,
			Prompt:  q.Prompt,
			Options: q.Options,
		},
		Remaining: len(remaining),
		Total:     len(questions),
	}, nil
}

// SubmitAnswer grades and records one answer. Every submission is stored, right or wrong.
func (s *QuizService) SubmitAnswer(ctx context.Context, in SubmitAnswerInput) (*SubmitAnswerResult, error) {
	if in.SessionID == "" || in.QuestionID == "" || in.Selected == "" {
		return nil, util.NewValidationError("session_id, question_id and selected are required")
	}
	if len(in.SessionID) > util.MaxSessionIDLen ||
		len(in.QuestionID) > util.MaxQuestionIDLen ||
		len(in.Selected) > util.MaxSelectedLen {
		return nil, util.NewValidationError("session_id, question_id or selected too long")
	}

	ctx, span := tracing.Tracer.Start(ctx, "QuizService.SubmitAnswer")
	defer span.End()
	span.SetAttributes(
		attribute.String("course", in.CourseSlug),
		attribute.String("module", in.ModuleSlug),
		attribute.String("question", in.QuestionID),
	)

	q, ok := s.Registry.ModuleQuestion(in.CourseSlug, in.ModuleSlug, in.QuestionID)
	if !ok {
		return nil, util.ErrQuestionNotFound
	}

	correct := in.Selected == q.Correct

	attempt := &model.QuizAttempt{
		SessionID:  in.SessionID,
		ModuleKey:  content.ModuleKey(in.CourseSlug, in.ModuleSlug),
		QuestionID: in.QuestionID,
		Selected:   in.Selected,
		Correct:    correct,
	}
	if err := s.Attempts.Create(ctx, attempt); err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("save quiz attempt: %w", err)
	}

	monitoring.QuizAttempts.WithLabelValues(in.CourseSlug, strconv.FormatBool(correct)).Inc()
	span.SetAttributes(attribute.Bool("correct", correct))

	var help *string
	if q.Help != "" {
		h := q.Help
		help = &h
	}
	return &SubmitAnswerResult{Correct: correct, Help: help}, nil
}
