package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/adhd-selfcheck/backend/internal/domain/assessment"
	"github.com/adhd-selfcheck/backend/internal/domain/interpretation"
	"github.com/adhd-selfcheck/backend/internal/domain/report"
	"github.com/adhd-selfcheck/backend/internal/domain/scoring"
	"github.com/adhd-selfcheck/backend/internal/store"
	"github.com/adhd-selfcheck/backend/internal/worker"
)

// ErrScoreMismatch is returned when a client sends scores that disagree with
// the scores computed from its answers.
var ErrScoreMismatch = errors.New("submitted scores do not match answers")

// SubmitRequest carries one completed questionnaire.
type SubmitRequest struct {
	Answers scoring.AnswerVector
	// Scores is what the client computed, if it sent anything. The server
	// always recomputes; a mismatch is rejected.
	Scores  *scoring.Result
	Elapsed time.Duration
}

// Evaluation is the full result for a set of answers.
type Evaluation struct {
	Scores         scoring.Result
	Interpretation interpretation.Interpretation
	Report         report.Report
}

// ImportRejection explains why one entry of an import batch was skipped.
type ImportRejection struct {
	Index  int
	Reason string
}

type ImportResult struct {
	Imported int
	Rejected []ImportRejection
}

// AssessmentService owns scoring, persistence and reporting of assessments.
type AssessmentService struct {
	store         store.Store
	logger        *slog.Logger
	importWorkers int
}

func NewAssessmentService(s store.Store, logger *slog.Logger) *AssessmentService {
	return &AssessmentService{
		store:         s,
		logger:        logger,
		importWorkers: 4,
	}
}

// Evaluate scores answers without persisting anything.
func (s *AssessmentService) Evaluate(answers scoring.AnswerVector, opts report.Options) (Evaluation, error) {
	scores, err := scoring.Score(answers)
	if err != nil {
		return Evaluation{}, err
	}
	return evaluate(scores, opts), nil
}

func evaluate(scores scoring.Result, opts report.Options) Evaluation {
	in := interpretation.Interpret(scores.Total)
	return Evaluation{
		Scores:         scores,
		Interpretation: in,
		Report:         report.Build(scores, in, opts),
	}
}

// Submit scores and stores a completed questionnaire.
func (s *AssessmentService) Submit(ctx context.Context, req SubmitRequest) (*assessment.Assessment, Evaluation, error) {
	a, err := assessment.New(req.Answers)
	if err != nil {
		return nil, Evaluation{}, err
	}

	if req.Scores != nil && *req.Scores != a.Scores {
		return nil, Evaluation{}, fmt.Errorf("%w: got total %d, computed %d",
			ErrScoreMismatch, req.Scores.Total, a.Scores.Total)
	}

	if err := s.store.CreateAssessment(ctx, a); err != nil {
		return nil, Evaluation{}, fmt.Errorf("create assessment: %w", err)
	}

	s.logger.Info("assessment stored",
		"assessment_id", a.ID,
		"total_score", a.Scores.Total,
		"level", interpretation.Classify(a.Scores.Total),
	)

	return a, evaluate(a.Scores, report.Options{Elapsed: req.Elapsed}), nil
}

func (s *AssessmentService) Get(ctx context.Context, id int64) (*assessment.Assessment, error) {
	return s.store.GetAssessment(ctx, id)
}

func (s *AssessmentService) List(ctx context.Context) ([]*assessment.Assessment, error) {
	all, err := s.store.ListAssessments(ctx)
	if err != nil {
		return nil, err
	}
	if all == nil {
		all = []*assessment.Assessment{}
	}
	return all, nil
}

// Report rebuilds the results page for a stored assessment. The elapsed time
// is not stored, so the speed achievement is always locked here.
func (s *AssessmentService) Report(ctx context.Context, id int64) (report.Report, error) {
	a, err := s.store.GetAssessment(ctx, id)
	if err != nil {
		return report.Report{}, err
	}
	return report.Build(a.Scores, a.Interpretation(), report.Options{}), nil
}

type scoredEntry struct {
	a   *assessment.Assessment
	err error
}

// Import re-scores each answer vector on a worker pool and stores the valid
// ones in input order. Invalid entries are reported, not fatal.
func (s *AssessmentService) Import(ctx context.Context, batch []scoring.AnswerVector) (ImportResult, error) {
	jobs := make(map[string]worker.Job[scoredEntry], len(batch))
	for i, answers := range batch {
		answers := answers
		jobs[strconv.Itoa(i)] = func() scoredEntry {
			a, err := assessment.New(answers)
			return scoredEntry{a: a, err: err}
		}
	}
	scored := worker.Run(s.importWorkers, jobs)

	result := ImportResult{Rejected: []ImportRejection{}}
	for i := range batch {
		entry := scored[strconv.Itoa(i)]
		if entry.err != nil {
			result.Rejected = append(result.Rejected, ImportRejection{Index: i, Reason: entry.err.Error()})
			continue
		}
		if err := s.store.CreateAssessment(ctx, entry.a); err != nil {
			return result, fmt.Errorf("import entry %d: %w", i, err)
		}
		result.Imported++
	}

	s.logger.Info("import finished",
		"imported", result.Imported,
		"rejected", len(result.Rejected),
	)
	return result, nil
}

// PurgeCompletedBefore deletes assessments older than cutoff.
func (s *AssessmentService) PurgeCompletedBefore(ctx context.Context, cutoff time.Time) (int, error) {
	n, err := s.store.DeleteCompletedBefore(ctx, cutoff)
	if err != nil {
		return 0, fmt.Errorf("purge assessments: %w", err)
	}
	return n, nil
}
