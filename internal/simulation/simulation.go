// Package simulation submits synthetic questionnaires, for demo data and
// smoke-testing a running server.
package simulation

import (
	"context"
	"math/rand"
	"strconv"

	"github.com/adhd-selfcheck/backend/internal/api"
	"github.com/adhd-selfcheck/backend/internal/domain/questionnaire"
	"github.com/adhd-selfcheck/backend/internal/worker"
)

// Submitter stores one set of answers. *client.Client satisfies it.
type Submitter interface {
	Submit(ctx context.Context, answers []int) (*api.SubmitAssessmentResponse, error)
}

type Summary struct {
	Submitted int
	Failed    int
	ByLevel   map[string]int
	// FirstError is the first submission error seen, if any.
	FirstError error
}

type outcome struct {
	level string
	err   error
}

// RandomAnswers draws one answer per question. Each respondent gets a
// tendency so that the generated totals spread over every level.
func RandomAnswers(rng *rand.Rand) []int {
	tendency := rng.Intn(questionnaire.MaxAnswer + 1)
	answers := make([]int, questionnaire.Len())
	for i := range answers {
		v := tendency + rng.Intn(3) - 1
		if v < questionnaire.MinAnswer {
			v = questionnaire.MinAnswer
		}
		if v > questionnaire.MaxAnswer {
			v = questionnaire.MaxAnswer
		}
		answers[i] = v
	}
	return answers
}

// Run submits count random questionnaires with at most workers requests in
// flight. The same seed always produces the same answers.
func Run(ctx context.Context, s Submitter, count, workers int, seed int64) Summary {
	rng := rand.New(rand.NewSource(seed))

	jobs := make(map[string]worker.Job[outcome], count)
	for i := 0; i < count; i++ {
		answers := RandomAnswers(rng)
		jobs[strconv.Itoa(i)] = func() outcome {
			resp, err := s.Submit(ctx, answers)
			if err != nil {
				return outcome{err: err}
			}
			return outcome{level: resp.Level}
		}
	}
	results := worker.Run(workers, jobs)

	summary := Summary{ByLevel: make(map[string]int)}
	for i := 0; i < count; i++ {
		o := results[strconv.Itoa(i)]
		if o.err != nil {
			summary.Failed++
			if summary.FirstError == nil {
				summary.FirstError = o.err
			}
			continue
		}
		summary.Submitted++
		summary.ByLevel[o.level]++
	}
	return summary
}
