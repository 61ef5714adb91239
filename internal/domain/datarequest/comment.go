package datarequest

import (
	"fmt"
	"strings"
	"time"

	"datarequests/internal/shared/biztime"
	"datarequests/internal/shared/errors"
	"datarequests/internal/shared/id"
)

// Comment is an immutable entry in a data request's discussion thread.
type Comment struct {
	id            string
	dataRequestID string
	authorID      string
	content       string
	createdAt     time.Time
	createdSeq    int64
}

// NewComment trims content and rejects it when nothing is left.
func NewComment(dataRequestID, authorID, content string) (*Comment, error) {
	content = strings.TrimSpace(content)

	fields := map[string][]string{}
	if dataRequestID == "" {
		fields["data_request_id"] = []string{missingValue}
	}
	if strings.TrimSpace(authorID) == "" {
		fields["user_id"] = []string{missingValue}
	}
	if content == "" {
		fields["content"] = []string{"This field is required."}
	}
	if len(fields) > 0 {
		return nil, errors.NewFieldValidationError(fields)
	}

	return &Comment{
		id:            id.New(),
		dataRequestID: dataRequestID,
		authorID:      authorID,
		content:       content,
		createdAt:     biztime.NowUTC(),
		createdSeq:    id.NextSequence(),
	}, nil
}

func ReconstructComment(
	commentID string,
	dataRequestID string,
	authorID string,
	content string,
	createdAt time.Time,
	createdSeq int64,
) (*Comment, error) {
	if commentID == "" {
		return nil, fmt.Errorf("comment ID is required")
	}
	if dataRequestID == "" {
		return nil, fmt.Errorf("data request ID is required for comment %s", commentID)
	}

	return &Comment{
		id:            commentID,
		dataRequestID: dataRequestID,
		authorID:      authorID,
		content:       content,
		createdAt:     createdAt,
		createdSeq:    createdSeq,
	}, nil
}

func (c *Comment) ID() string {
	return c.id
}

func (c *Comment) DataRequestID() string {
	return c.dataRequestID
}

func (c *Comment) AuthorID() string {
	return c.authorID
}

func (c *Comment) Content() string {
	return c.content
}

func (c *Comment) CreatedAt() time.Time {
	return c.createdAt
}

func (c *Comment) CreatedSeq() int64 {
	return c.createdSeq
}
