package http

import (
	"gorm.io/gorm"

	"datarequests/internal/domain/datarequest"
	"datarequests/internal/infrastructure/repository"
)

// repositories holds all repository instances used by the application.
type repositories struct {
	dataRequestRepo datarequest.Repository
	commentRepo     datarequest.CommentRepository
	userRepo        *repository.UserRepository
}

func newRepositories(db *gorm.DB) *repositories {
	return &repositories{
		dataRequestRepo: repository.NewDataRequestRepository(db),
		commentRepo:     repository.NewDataRequestCommentRepository(db),
		userRepo:        repository.NewUserRepository(db),
	}
}
