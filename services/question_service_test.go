package services

import (
	"context"
	"testing"

	"trivia/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuestionService_GetAndCount(t *testing.T) {
	db := newTestDB(t)
	seedQuestions(t, db,
		models.Question{Question: "What is H2O?", Answer: "Water", Difficulty: 1, Category: 1},
		models.Question{Question: "Who painted the Mona Lisa?", Answer: "Da Vinci", Difficulty: 2, Category: 2},
		models.Question{Question: "What is the boiling point of water?", Answer: "100C", Difficulty: 1, Category: 1},
	)
	svc := NewQuestionService(db, nil, testLogger)
	ctx := context.Background()

	all, err := svc.GetAllQuestions(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Less(t, all[0].ID, all[1].ID)
	assert.Less(t, all[1].ID, all[2].ID)

	count, err := svc.CountQuestions(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)

	science, err := svc.GetQuestionsByCategory(ctx, 1)
	require.NoError(t, err)
	require.Len(t, science, 2)
	for _, q := range science {
		assert.Equal(t, 1, q.Category)
	}

	none, err := svc.GetQuestionsByCategory(ctx, 99)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestQuestionService_SearchQuestions(t *testing.T) {
	db := newTestDB(t)
	seedQuestions(t, db,
		models.Question{Question: "What is H2O?", Answer: "Water", Difficulty: 1, Category: 1},
		models.Question{Question: "What is the boiling point of WATER?", Answer: "100C", Difficulty: 1, Category: 1},
		models.Question{Question: "Which title had 100% approval_rating?", Answer: "None", Difficulty: 3, Category: 5},
	)
	svc := NewQuestionService(db, nil, testLogger)
	ctx := context.Background()

	t.Run("CaseInsensitive", func(t *testing.T) {
		found, err := svc.SearchQuestions(ctx, "water")
		require.NoError(t, err)
		require.Len(t, found, 1)
		assert.Equal(t, "What is the boiling point of WATER?", found[0].Question)
	})

	t.Run("Substring", func(t *testing.T) {
		found, err := svc.SearchQuestions(ctx, "WHAT IS")
		require.NoError(t, err)
		assert.Len(t, found, 2)
	})

	t.Run("WildcardsMatchLiterally", func(t *testing.T) {
		found, err := svc.SearchQuestions(ctx, "100%")
		require.NoError(t, err)
		require.Len(t, found, 1)

		found, err = svc.SearchQuestions(ctx, "h_o")
		require.ErrorIs(t, err, ErrNoMatches)
		assert.Nil(t, found)

		found, err = svc.SearchQuestions(ctx, "approval_rating")
		require.NoError(t, err)
		assert.Len(t, found, 1)
	})

	t.Run("NoMatches", func(t *testing.T) {
		_, err := svc.SearchQuestions(ctx, "xyzzy")
		assert.ErrorIs(t, err, ErrNoMatches)
	})

	t.Run("EmptyTerm", func(t *testing.T) {
		_, err := svc.SearchQuestions(ctx, "")
		assert.ErrorIs(t, err, ErrEmptySearchTerm)
	})
}

func TestQuestionService_CreateQuestion(t *testing.T) {
	db := newTestDB(t)
	events := &eventRecorder{}
	svc := NewQuestionService(db, events, testLogger)

	created, err := svc.CreateQuestion(context.Background(), CreateQuestionInput{
		Question:   "What is the capital of France?",
		Answer:     "Paris",
		Difficulty: 1,
		Category:   3,
	})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	var stored models.Question
	require.NoError(t, db.First(&stored, created.ID).Error)
	assert.Equal(t, "Paris", stored.Answer)
	assert.Equal(t, 3, stored.Category)

	require.Len(t, events.events, 1)
	assert.Equal(t, EventQuestionCreated, events.events[0].eventType)
	assert.Equal(t, created.Format(), events.events[0].payload)
}

func TestQuestionService_DeleteQuestion(t *testing.T) {
	db := newTestDB(t)
	questions := seedQuestions(t, db,
		models.Question{Question: "Delete me", Answer: "ok", Difficulty: 1, Category: 1},
	)
	events := &eventRecorder{}
	svc := NewQuestionService(db, events, testLogger)
	ctx := context.Background()
	id := questions[0].ID

	require.NoError(t, svc.DeleteQuestion(ctx, id))

	var count int64
	require.NoError(t, db.Model(&models.Question{}).Count(&count).Error)
	assert.Zero(t, count)

	err := svc.DeleteQuestion(ctx, id)
	assert.ErrorIs(t, err, ErrQuestionNotFound)

	require.Len(t, events.events, 1)
	assert.Equal(t, EventQuestionDeleted, events.events[0].eventType)
}
