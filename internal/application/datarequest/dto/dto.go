package dto

import (
	"datarequests/internal/domain/datarequest"
	"datarequests/internal/domain/identity"
	"datarequests/internal/shared/biztime"
)

// DataRequestDTO is the external shape of a data request. Timestamps are
// ISO-8601 in UTC; author fields are null when the user cannot be resolved.
type DataRequestDTO struct {
	ID              string  `json:"id"`
	Title           string  `json:"title"`
	Description     string  `json:"description"`
	Status          string  `json:"status"`
	UserID          string  `json:"user_id"`
	UserName        *string `json:"user_name"`
	UserDisplayName *string `json:"user_display_name"`
	CreatedAt       *string `json:"created_at"`
	UpdatedAt       *string `json:"updated_at"`
	DescriptionHTML string  `json:"description_html,omitempty"`
}

// DataRequestDetailDTO is returned by datarequest_show.
type DataRequestDetailDTO struct {
	DataRequestDTO
	CommentCount int64 `json:"comment_count"`
}

// DataRequestListItemDTO is one entry of datarequest_list. Comments is only
// emitted when the caller asked for it, and then always, even when empty.
type DataRequestListItemDTO struct {
	DataRequestDTO
	CommentCount int64        `json:"comment_count"`
	Comments     []CommentDTO `json:"comments,omitzero"`
}

type CommentDTO struct {
	ID              string  `json:"id"`
	DataRequestID   string  `json:"data_request_id"`
	UserID          string  `json:"user_id"`
	UserName        *string `json:"user_name"`
	UserDisplayName *string `json:"user_display_name"`
	Content         string  `json:"content"`
	CreatedAt       *string `json:"created_at"`
	ContentHTML     string  `json:"content_html,omitempty"`
}

type StatusDTO struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

func authorFields(author *identity.Identity) (name, displayName *string) {
	if author == nil {
		return nil, nil
	}
	n, d := author.Name, author.DisplayName
	return &n, &d
}

func ToDataRequestDTO(r *datarequest.DataRequest, author *identity.Identity) DataRequestDTO {
	name, displayName := authorFields(author)
	return DataRequestDTO{
		ID:              r.ID(),
		Title:           r.Title(),
		Description:     r.Description(),
		Status:          r.Status().String(),
		UserID:          r.OwnerID(),
		UserName:        name,
		UserDisplayName: displayName,
		CreatedAt:       biztime.FormatISO8601(r.CreatedAt()),
		UpdatedAt:       biztime.FormatISO8601(r.UpdatedAt()),
	}
}

func ToCommentDTO(c *datarequest.Comment, author *identity.Identity) CommentDTO {
	name, displayName := authorFields(author)
	return CommentDTO{
		ID:              c.ID(),
		DataRequestID:   c.DataRequestID(),
		UserID:          c.AuthorID(),
		UserName:        name,
		UserDisplayName: displayName,
		Content:         c.Content(),
		CreatedAt:       biztime.FormatISO8601(c.CreatedAt()),
	}
}

func ToStatusDTO(r *datarequest.DataRequest) *StatusDTO {
	return &StatusDTO{ID: r.ID(), Status: r.Status().String()}
}
