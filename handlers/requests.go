package handlers

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

var errNotAnInteger = errors.New("value is not an integer")

// FlexInt accepts either a JSON number or a string holding an integer,
// since clients send category and difficulty both ways.
type FlexInt int

func (f *FlexInt) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if unquoted, err := strconv.Unquote(s); err == nil {
		s = strings.TrimSpace(unquoted)
	}
	if s == "" {
		return errNotAnInteger
	}

	if n, err := strconv.Atoi(s); err == nil {
		*f = FlexInt(n)
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v != math.Trunc(v) || math.Abs(v) > math.MaxInt32 {
		return errNotAnInteger
	}
	*f = FlexInt(v)
	return nil
}

type CreateQuestionRequest struct {
	Question   string   `json:"question" binding:"required"`
	Answer     string   `json:"answer" binding:"required"`
	Difficulty *FlexInt `json:"difficulty" binding:"required"`
	Category   *FlexInt `json:"category" binding:"required"`
}

type SearchQuestionsRequest struct {
	SearchTerm string `json:"searchTerm"`
}

type QuizCategory struct {
	ID   *FlexInt `json:"id" binding:"required"`
	Type string   `json:"type"`
}

type QuizRequest struct {
	PreviousQuestions *[]int        `json:"previous_questions" binding:"required"`
	QuizCategory      *QuizCategory `json:"quiz_category" binding:"required"`
}
