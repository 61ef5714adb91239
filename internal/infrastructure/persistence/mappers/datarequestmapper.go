package mappers

import (
	"fmt"

	"datarequests/internal/domain/datarequest"
	vo "datarequests/internal/domain/datarequest/valueobjects"
	"datarequests/internal/infrastructure/persistence/models"
	"datarequests/internal/shared/biztime"
)

// DataRequestMapper converts between data request entities and rows.
type DataRequestMapper interface {
	ToModel(r *datarequest.DataRequest) *models.DataRequestModel
	ToDomain(model *models.DataRequestModel) (*datarequest.DataRequest, error)
	ToDomainList(rows []models.DataRequestModel) ([]*datarequest.DataRequest, error)
	CommentToModel(c *datarequest.Comment) *models.DataRequestCommentModel
	CommentToDomain(model *models.DataRequestCommentModel) (*datarequest.Comment, error)
}

type DataRequestMapperImpl struct{}

func NewDataRequestMapper() DataRequestMapper {
	return &DataRequestMapperImpl{}
}

func (m *DataRequestMapperImpl) ToModel(r *datarequest.DataRequest) *models.DataRequestModel {
	return &models.DataRequestModel{
		ID:          r.ID(),
		Title:       r.Title(),
		Description: r.Description(),
		Status:      r.Status().String(),
		UserID:      r.OwnerID(),
		CreatedAt:   r.CreatedAt(),
		UpdatedAt:   r.UpdatedAt(),
		CreatedSeq:  r.CreatedSeq(),
	}
}

func (m *DataRequestMapperImpl) ToDomain(model *models.DataRequestModel) (*datarequest.DataRequest, error) {
	if model == nil {
		return nil, nil
	}

	r, err := datarequest.ReconstructDataRequest(
		model.ID,
		model.Title,
		model.Description,
		vo.Status(model.Status),
		model.UserID,
		biztime.ToUTC(model.CreatedAt),
		biztime.ToUTC(model.UpdatedAt),
		model.CreatedSeq,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct data request: %w", err)
	}
	return r, nil
}

func (m *DataRequestMapperImpl) ToDomainList(rows []models.DataRequestModel) ([]*datarequest.DataRequest, error) {
	out := make([]*datarequest.DataRequest, 0, len(rows))
	for i := range rows {
		r, err := m.ToDomain(&rows[i])
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, nil
}

func (m *DataRequestMapperImpl) CommentToModel(c *datarequest.Comment) *models.DataRequestCommentModel {
	return &models.DataRequestCommentModel{
		ID:            c.ID(),
		DataRequestID: c.DataRequestID(),
		UserID:        c.AuthorID(),
		Content:       c.Content(),
		CreatedAt:     c.CreatedAt(),
		CreatedSeq:    c.CreatedSeq(),
	}
}

func (m *DataRequestMapperImpl) CommentToDomain(model *models.DataRequestCommentModel) (*datarequest.Comment, error) {
	if model == nil {
		return nil, nil
	}

	c, err := datarequest.ReconstructComment(
		model.ID,
		model.DataRequestID,
		model.UserID,
		model.Content,
		biztime.ToUTC(model.CreatedAt),
		model.CreatedSeq,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct comment: %w", err)
	}
	return c, nil
}
