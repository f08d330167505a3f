package repository

import (
	"context"

	"gorm.io/gorm"

	"cesizen/internal/model"
)

// QuestionRepository defines stress-question persistence operations.
type QuestionRepository interface {
	Create(ctx context.Context, question *model.Question) error
	Update(ctx context.Context, question *model.Question) error
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*model.Question, error)
	List(ctx context.Context) ([]model.Question, error)
}

type questionRepository struct {
	db *gorm.DB
}

// NewQuestionRepository builds a GORM-backed repository.
func NewQuestionRepository(db *gorm.DB) QuestionRepository {
	return &questionRepository{db: db}
}

func (r *questionRepository) Create(ctx context.Context, question *model.Question) error {
	return r.db.WithContext(ctx).Create(question).Error
}

func (r *questionRepository) Update(ctx context.Context, question *model.Question) error {
	return r.db.WithContext(ctx).Save(question).Error
}

func (r *questionRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Question{}, id).Error
}

func (r *questionRepository) FindByID(ctx context.Context, id uint) (*model.Question, error) {
	var question model.Question
	if err := r.db.WithContext(ctx).First(&question, id).Error; err != nil {
		return nil, err
	}
	return &question, nil
}

func (r *questionRepository) List(ctx context.Context) ([]model.Question, error) {
	var questions []model.Question
	if err := r.db.WithContext(ctx).Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}
