package repository

import (
	"context"
	stderrors "errors"
	"fmt"

	"gorm.io/gorm"

	"datarequests/internal/domain/identity"
	"datarequests/internal/infrastructure/persistence/mappers"
	"datarequests/internal/infrastructure/persistence/models"
	db "datarequests/internal/shared/db"
)

// UserRepository stores local accounts and doubles as the identity oracle.
type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, user *identity.User) error {
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Create(mappers.UserToModel(user)).Error; err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, userID string) (*identity.User, error) {
	return r.findOne(ctx, "id = ?", userID)
}

func (r *UserRepository) GetByName(ctx context.Context, name string) (*identity.User, error) {
	return r.findOne(ctx, "name = ?", name)
}

// Resolve implements identity.IdentityResolver.
func (r *UserRepository) Resolve(ctx context.Context, userID string) (*identity.Identity, error) {
	user, err := r.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return user.Identity(), nil
}

func (r *UserRepository) findOne(ctx context.Context, query string, arg string) (*identity.User, error) {
	var model models.UserModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where(query, arg).First(&model).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, identity.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return mappers.UserToDomain(&model), nil
}

var (
	_ identity.UserRepository   = (*UserRepository)(nil)
	_ identity.IdentityResolver = (*UserRepository)(nil)
)
