package repository

import (
	"context"
	stderrors "errors"
	"fmt"

	"gorm.io/gorm"

	"datarequests/internal/domain/datarequest"
	"datarequests/internal/infrastructure/persistence/mappers"
	"datarequests/internal/infrastructure/persistence/models"
	db "datarequests/internal/shared/db"
	"datarequests/internal/shared/errors"
)

const msgDataRequestNotFound = "Data request not found"

type DataRequestRepository struct {
	db     *gorm.DB
	mapper mappers.DataRequestMapper
}

func NewDataRequestRepository(db *gorm.DB) *DataRequestRepository {
	return &DataRequestRepository{
		db:     db,
		mapper: mappers.NewDataRequestMapper(),
	}
}

func (r *DataRequestRepository) Save(ctx context.Context, req *datarequest.DataRequest) error {
	model := r.mapper.ToModel(req)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save data request: %w", err)
	}
	return nil
}

// UpdateStatus writes only the status and updated_at columns.
func (r *DataRequestRepository) UpdateStatus(ctx context.Context, req *datarequest.DataRequest) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.DataRequestModel{}).
		Where("id = ?", req.ID()).
		UpdateColumns(map[string]interface{}{
			"status":     req.Status().String(),
			"updated_at": req.UpdatedAt(),
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update data request status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError(msgDataRequestNotFound)
	}
	return nil
}

func (r *DataRequestRepository) GetByID(ctx context.Context, id string) (*datarequest.DataRequest, error) {
	var model models.DataRequestModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("id = ?", id).First(&model).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.NewNotFoundError(msgDataRequestNotFound)
		}
		return nil, fmt.Errorf("failed to find data request: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *DataRequestRepository) Exists(ctx context.Context, id string) (bool, error) {
	var count int64
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Model(&models.DataRequestModel{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check data request: %w", err)
	}
	return count > 0, nil
}

func (r *DataRequestRepository) List(ctx context.Context, filter datarequest.Filter) ([]*datarequest.DataRequest, error) {
	var rows []models.DataRequestModel
	query := db.GetTxFromContext(ctx, r.db).Model(&models.DataRequestModel{})

	if filter.Status != nil {
		query = query.Where("status = ?", filter.Status.String())
	}

	if err := query.Scopes(db.NewestFirst()).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list data requests: %w", err)
	}

	return r.mapper.ToDomainList(rows)
}

func (r *DataRequestRepository) Delete(ctx context.Context, id string) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Where("id = ?", id).Delete(&models.DataRequestModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete data request: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError(msgDataRequestNotFound)
	}
	return nil
}
