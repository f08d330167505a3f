package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	apperrors "cesizen/internal/errors"
	"cesizen/internal/model"
)

func TestQuestionService_WritesRequireAdmin(t *testing.T) {
	svc := NewQuestionService(new(MockQuestionRepository), nil)

	_, err := svc.Create(context.Background(), QuestionInput{Question: "q", Score: 10}, basePrincipal)
	assert.ErrorIs(t, err, apperrors.ErrForbidden)

	_, err = svc.Update(context.Background(), 1, QuestionInput{Question: "q", Score: 10}, basePrincipal)
	assert.ErrorIs(t, err, apperrors.ErrForbidden)

	err = svc.Delete(context.Background(), 1, basePrincipal)
	assert.ErrorIs(t, err, apperrors.ErrForbidden)
}

func TestQuestionService_ReadForBaseRank(t *testing.T) {
	mockQuestions := new(MockQuestionRepository)
	mockQuestions.On("List", mock.Anything).Return([]model.Question{
		{ID: 1, Question: "Have you recently experienced the death of your spouse?", Score: 100},
	}, nil)

	svc := NewQuestionService(mockQuestions, nil)

	_, err := svc.List(context.Background(), nil)
	assert.ErrorIs(t, err, apperrors.ErrForbidden)

	questions, err := svc.List(context.Background(), basePrincipal)
	assert.NoError(t, err)
	assert.Len(t, questions, 1)
	assert.Equal(t, 100, questions[0].Score)
}

func TestQuestionService_CreateAsAdmin(t *testing.T) {
	mockQuestions := new(MockQuestionRepository)
	mockQuestions.On("Create", mock.Anything, mock.MatchedBy(func(q *model.Question) bool {
		return q.Question == "Have you recently divorced?" && q.Score == 73
	})).Return(nil)

	svc := NewQuestionService(mockQuestions, nil)
	question, err := svc.Create(context.Background(), QuestionInput{
		Question: "Have you recently divorced?",
		Score:    73,
	}, adminPrincipal)

	assert.NoError(t, err)
	assert.Equal(t, 73, question.Score)
	mockQuestions.AssertExpectations(t)
}
