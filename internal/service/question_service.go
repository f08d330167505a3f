package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"gorm.io/gorm"

	"cesizen/internal/auth"
	"cesizen/internal/cache"
	apperrors "cesizen/internal/errors"
	"cesizen/internal/model"
	"cesizen/internal/repository"
)

const (
	questionCacheTTL     = 10 * time.Minute
	questionListCacheKey = "questions:all"
)

// QuestionInput carries a stress-question prompt and its weight.
type QuestionInput struct {
	Question string
	Score    int
}

// QuestionService handles the stress-assessment reference set. Reads need
// the base rank, writes are reserved for administrators.
type QuestionService interface {
	Create(ctx context.Context, input QuestionInput, caller *auth.Principal) (*model.Question, error)
	List(ctx context.Context, caller *auth.Principal) ([]model.Question, error)
	GetByID(ctx context.Context, id uint, caller *auth.Principal) (*model.Question, error)
	Update(ctx context.Context, id uint, input QuestionInput, caller *auth.Principal) (*model.Question, error)
	Delete(ctx context.Context, id uint, caller *auth.Principal) error
}

type questionService struct {
	repo  repository.QuestionRepository
	cache *cache.Client
}

// NewQuestionService builds a QuestionService with repository and cache.
func NewQuestionService(repo repository.QuestionRepository, cache *cache.Client) QuestionService {
	return &questionService{repo: repo, cache: cache}
}

func (s *questionService) Create(ctx context.Context, input QuestionInput, caller *auth.Principal) (*model.Question, error) {
	if !auth.HasRole(caller, model.RoleAdmin) {
		return nil, apperrors.ErrForbidden
	}
	question := &model.Question{Question: input.Question, Score: input.Score}
	if err := s.repo.Create(ctx, question); err != nil {
		return nil, err
	}
	_ = s.cache.Delete(ctx, questionListCacheKey)
	return question, nil
}

// List returns the full question set. The set is small and nearly static,
// so it is cached as a whole.
func (s *questionService) List(ctx context.Context, caller *auth.Principal) ([]model.Question, error) {
	if !auth.HasRole(caller, model.RoleUser) {
		return nil, apperrors.ErrForbidden
	}

	if data, _ := s.cache.Get(ctx, questionListCacheKey); data != nil {
		var cached []model.Question
		if err := json.Unmarshal(data, &cached); err == nil {
			return cached, nil
		}
	}

	questions, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(questions); err == nil {
		_ = s.cache.Set(ctx, questionListCacheKey, payload, questionCacheTTL)
	}
	return questions, nil
}

func (s *questionService) GetByID(ctx context.Context, id uint, caller *auth.Principal) (*model.Question, error) {
	if !auth.HasRole(caller, model.RoleUser) {
		return nil, apperrors.ErrForbidden
	}
	question, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return question, nil
}

func (s *questionService) Update(ctx context.Context, id uint, input QuestionInput, caller *auth.Principal) (*model.Question, error) {
	if !auth.HasRole(caller, model.RoleAdmin) {
		return nil, apperrors.ErrForbidden
	}
	question, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	question.Question = input.Question
	question.Score = input.Score
	if err := s.repo.Update(ctx, question); err != nil {
		return nil, err
	}
	_ = s.cache.Delete(ctx, questionListCacheKey)
	return question, nil
}

func (s *questionService) Delete(ctx context.Context, id uint, caller *auth.Principal) error {
	if !auth.HasRole(caller, model.RoleAdmin) {
		return apperrors.ErrForbidden
	}
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrNotFound
		}
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	_ = s.cache.Delete(ctx, questionListCacheKey)
	return nil
}
