package services

import (
	"context"

	"github.com/especializacion-sena/sitios-backend/src/models"
	"gorm.io/gorm"
)

type CommentService struct {
	db *gorm.DB
}

// NewCommentService creates a new instance of CommentService
func NewCommentService(db *gorm.DB) *CommentService {
	return &CommentService{db: db}
}

// GetCommentsBySite retrieves the comments of one site in insertion order
func (s *CommentService) GetCommentsBySite(ctx context.Context, idSitio int) ([]models.CommentModel, error) {
	comments := []models.CommentModel{}
	result := s.db.WithContext(ctx).Where("id_sitio = ?", idSitio).Order("id").Find(&comments)
	if result.Error != nil {
		return nil, result.Error
	}
	return comments, nil
}

// CreateComment inserts a comment, signing it as "anonimo" when no user is given
func (s *CommentService) CreateComment(ctx context.Context, comment *models.CommentModel) error {
	comment.Id = 0
	if comment.User == "" {
		comment.User = models.DefaultCommentUser
	}
	return s.db.WithContext(ctx).Create(comment).Error
}
