package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"datarequests/internal/domain/datarequest"
	"datarequests/internal/infrastructure/persistence/mappers"
	"datarequests/internal/infrastructure/persistence/models"
	db "datarequests/internal/shared/db"
)

type DataRequestCommentRepository struct {
	db     *gorm.DB
	mapper mappers.DataRequestMapper
}

func NewDataRequestCommentRepository(db *gorm.DB) *DataRequestCommentRepository {
	return &DataRequestCommentRepository{
		db:     db,
		mapper: mappers.NewDataRequestMapper(),
	}
}

func (r *DataRequestCommentRepository) Save(ctx context.Context, comment *datarequest.Comment) error {
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(r.mapper.CommentToModel(comment)).Error; err != nil {
		return fmt.Errorf("failed to save comment: %w", err)
	}
	return nil
}

func (r *DataRequestCommentRepository) ListByRequestID(ctx context.Context, requestID string) ([]*datarequest.Comment, error) {
	byRequest, err := r.ListByRequestIDs(ctx, []string{requestID})
	if err != nil {
		return nil, err
	}
	comments := byRequest[requestID]
	if comments == nil {
		comments = []*datarequest.Comment{}
	}
	return comments, nil
}

// ListByRequestIDs loads the comments of several requests in one query.
// Requests without comments are absent from the result.
func (r *DataRequestCommentRepository) ListByRequestIDs(ctx context.Context, requestIDs []string) (map[string][]*datarequest.Comment, error) {
	var rows []models.DataRequestCommentModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Scopes(db.WhereIn("data_request_id", requestIDs), db.OldestFirst()).
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}

	out := make(map[string][]*datarequest.Comment)
	for i := range rows {
		c, err := r.mapper.CommentToDomain(&rows[i])
		if err != nil {
			return nil, err
		}
		out[c.DataRequestID()] = append(out[c.DataRequestID()], c)
	}
	return out, nil
}

func (r *DataRequestCommentRepository) CountByRequestID(ctx context.Context, requestID string) (int64, error) {
	var count int64
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Model(&models.DataRequestCommentModel{}).
		Where("data_request_id = ?", requestID).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count comments: %w", err)
	}
	return count, nil
}

type commentCount struct {
	DataRequestID string
	Total         int64
}

// CountByRequestIDs counts comments for several requests with one grouped
// query. Requests without comments are absent from the result.
func (r *DataRequestCommentRepository) CountByRequestIDs(ctx context.Context, requestIDs []string) (map[string]int64, error) {
	var rows []commentCount
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Model(&models.DataRequestCommentModel{}).
		Select("data_request_id, COUNT(*) AS total").
		Scopes(db.WhereIn("data_request_id", requestIDs)).
		Group("data_request_id").
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to count comments: %w", err)
	}

	out := make(map[string]int64, len(rows))
	for _, row := range rows {
		out[row.DataRequestID] = row.Total
	}
	return out, nil
}

var (
	_ datarequest.CommentRepository = (*DataRequestCommentRepository)(nil)
	_ datarequest.Repository        = (*DataRequestRepository)(nil)
)
