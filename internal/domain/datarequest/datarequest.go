// Package datarequest holds the DataRequest aggregate and its comments.
package datarequest

import (
	"fmt"
	"strings"
	"time"

	vo "datarequests/internal/domain/datarequest/valueobjects"
	"datarequests/internal/shared/biztime"
	"datarequests/internal/shared/errors"
	"datarequests/internal/shared/id"
)

const missingValue = "Missing value"

// DataRequest is a user-submitted request for a dataset. Title, description
// and owner are fixed at creation; only the status changes afterwards.
type DataRequest struct {
	id          string
	title       string
	description string
	status      vo.Status
	ownerID     string
	createdAt   time.Time
	updatedAt   time.Time
	createdSeq  int64
}

// NewDataRequest validates the input and returns an open request with a fresh
// id and created_at equal to updated_at. Title and description must contain
// something besides whitespace; they are stored as submitted.
func NewDataRequest(title, description, ownerID string) (*DataRequest, error) {
	fields := map[string][]string{}
	if strings.TrimSpace(title) == "" {
		fields["title"] = []string{missingValue}
	}
	if strings.TrimSpace(description) == "" {
		fields["description"] = []string{missingValue}
	}
	if strings.TrimSpace(ownerID) == "" {
		fields["user_id"] = []string{missingValue}
	}
	if len(fields) > 0 {
		return nil, errors.NewFieldValidationError(fields)
	}

	now := biztime.NowUTC()
	return &DataRequest{
		id:          id.New(),
		title:       title,
		description: description,
		status:      vo.StatusOpen,
		ownerID:     ownerID,
		createdAt:   now,
		updatedAt:   now,
		createdSeq:  id.NextSequence(),
	}, nil
}

// ReconstructDataRequest rebuilds a request from storage.
func ReconstructDataRequest(
	reqID string,
	title string,
	description string,
	status vo.Status,
	ownerID string,
	createdAt, updatedAt time.Time,
	createdSeq int64,
) (*DataRequest, error) {
	if reqID == "" {
		return nil, fmt.Errorf("data request ID is required")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status %q for data request %s", status, reqID)
	}

	return &DataRequest{
		id:          reqID,
		title:       title,
		description: description,
		status:      status,
		ownerID:     ownerID,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
		createdSeq:  createdSeq,
	}, nil
}

func (r *DataRequest) ID() string {
	return r.id
}

func (r *DataRequest) Title() string {
	return r.title
}

func (r *DataRequest) Description() string {
	return r.description
}

func (r *DataRequest) Status() vo.Status {
	return r.status
}

func (r *DataRequest) OwnerID() string {
	return r.ownerID
}

func (r *DataRequest) CreatedAt() time.Time {
	return r.createdAt
}

func (r *DataRequest) UpdatedAt() time.Time {
	return r.updatedAt
}

func (r *DataRequest) CreatedSeq() int64 {
	return r.createdSeq
}

// ChangeStatus sets the status. updated_at advances even when the status is
// unchanged, since the write itself is a mutation.
func (r *DataRequest) ChangeStatus(newStatus vo.Status) error {
	if !newStatus.IsValid() {
		return errors.NewFieldValidationError(map[string][]string{"status": {vo.StatusMessage}})
	}

	r.status = newStatus
	r.updatedAt = biztime.NowAfter(r.updatedAt)
	return nil
}
