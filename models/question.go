package models

type Question struct {
	ID         uint   `json:"id" gorm:"primaryKey"`
	Question   string `json:"question" gorm:"not null"`
	Answer     string `json:"answer" gorm:"not null"`
	Difficulty int    `json:"difficulty" gorm:"not null"`
	// Category references Category.ID but is not enforced as a foreign key.
	Category int `json:"category" gorm:"column:category;index"`
}

// FormattedQuestion is the wire shape of a question.
type FormattedQuestion struct {
	ID         uint   `json:"id"`
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Category   int    `json:"category"`
	Difficulty int    `json:"difficulty"`
}

func (q Question) Format() FormattedQuestion {
	return FormattedQuestion{
		ID:         q.ID,
		Question:   q.Question,
		Answer:     q.Answer,
		Category:   q.Category,
		Difficulty: q.Difficulty,
	}
}

func FormatQuestions(questions []Question) []FormattedQuestion {
	formatted := make([]FormattedQuestion, 0, len(questions))
	for _, q := range questions {
		formatted = append(formatted, q.Format())
	}
	return formatted
}
