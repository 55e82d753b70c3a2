package questionnaire

import (
	"math"

	"github.com/adhd-selfcheck/backend/internal/domain/category"
)

// Answer bounds shared by every question.
const (
	MinAnswer = 0
	MaxAnswer = 4
)

// minutesPerQuestion is the pacing used for the remaining-time estimate.
const minutesPerQuestion = 0.5

type Question struct {
	ID       int
	Category category.Category
	Prompt   string
}

type AnswerOption struct {
	Value int
	Label string
}

var questions = [...]Question{
	{ID: 1, Category: category.Inattention, Prompt: "업무나 일상 활동에서 세부사항을 놓치거나 부주의한 실수를 자주 한다"},
	{ID: 2, Category: category.Inattention, Prompt: "회의나 대화 중에 집중을 유지하는데 어려움이 있다"},
	{ID: 3, Category: category.Inattention, Prompt: "업무나 가정에서 해야 할 일을 완료하지 못한다"},
	{ID: 4, Category: category.Inattention, Prompt: "복잡한 업무나 과제를 체계적으로 정리하고 수행하는데 어려움이 있다"},
	{ID: 5, Category: category.Inattention, Prompt: "지속적인 정신적 노력이 필요한 업무를 피하거나 미루는 경향이 있다"},
	{ID: 6, Category: category.Inattention, Prompt: "중요한 물건(열쇠, 지갑, 휴대폰 등)을 자주 잃어버린다"},
	{ID: 7, Category: category.Inattention, Prompt: "외부 자극이나 생각에 쉽게 산만해진다"},
	{ID: 8, Category: category.Inattention, Prompt: "일상적인 활동(약속, 청구서 납부 등)을 자주 잊어버린다"},
	{ID: 9, Category: category.Inattention, Prompt: "업무나 여가 활동에서 지속적으로 주의를 집중하는데 어려움이 있다"},
	{ID: 10, Category: category.Hyperactivity, Prompt: "회의나 식사 등 앉아있어야 하는 상황에서 자리를 떠나고 싶어한다"},
	{ID: 11, Category: category.Hyperactivity, Prompt: "끊임없이 움직이거나 마치 모터가 달린 것처럼 행동한다"},
	{ID: 12, Category: category.Hyperactivity, Prompt: "여가 활동에 조용히 참여하는 것이 어렵다"},
	{ID: 13, Category: category.Hyperactivity, Prompt: "지나치게 말을 많이 한다"},
	{ID: 14, Category: category.Hyperactivity, Prompt: "업무나 일상 활동에서 안절부절 못하거나 불안해한다"},
	{ID: 15, Category: category.Impulsivity, Prompt: "다른 사람의 말이 끝나기 전에 성급하게 대답한다"},
	{ID: 16, Category: category.Impulsivity, Prompt: "자신의 순서를 기다리는데 어려움이 있다"},
	{ID: 17, Category: category.Impulsivity, Prompt: "다른 사람의 대화나 활동에 끼어들거나 방해한다"},
	{ID: 18, Category: category.Impulsivity, Prompt: "중요한 결정을 성급하게 내리거나 충동적으로 행동한다"},
}

var answerOptions = [...]AnswerOption{
	{Value: 0, Label: "전혀 없음"},
	{Value: 1, Label: "드물게"},
	{Value: 2, Label: "때때로"},
	{Value: 3, Label: "자주"},
	{Value: 4, Label: "매우 자주"},
}

// Questions returns the catalog in presentation order. Index i of an
// answer vector answers Questions()[i].
func Questions() []Question {
	out := make([]Question, len(questions))
	copy(out, questions[:])
	return out
}

// AnswerOptions returns the five Likert options offered for every question.
func AnswerOptions() []AnswerOption {
	out := make([]AnswerOption, len(answerOptions))
	copy(out, answerOptions[:])
	return out
}

// Len is the number of questions, and therefore the required answer count.
func Len() int {
	return len(questions)
}

// At returns the question answered by position i.
func At(i int) Question {
	return questions[i]
}

func CountByCategory(c category.Category) int {
	n := 0
	for _, q := range questions {
		if q.Category == c {
			n++
		}
	}
	return n
}

// MaxScore is the highest subtotal the category can reach.
func MaxScore(c category.Category) int {
	return CountByCategory(c) * MaxAnswer
}

func MaxTotal() int {
	return len(questions) * MaxAnswer
}

// EstimatedMinutesRemaining estimates how long the rest of the questionnaire
// takes once `answered` questions are done. Never less than one minute.
func EstimatedMinutesRemaining(answered int) int {
	remaining := len(questions) - answered
	if remaining < 0 {
		remaining = 0
	}
	return max(1, int(math.Ceil(float64(remaining)*minutesPerQuestion)))
}
