package datarequest

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"datarequests/internal/shared/errors"
)

func TestNewComment_TrimsContent(t *testing.T) {
	c, err := NewComment("req-1", "u2", "  hi  \n")
	require.NoError(t, err)

	assert.Equal(t, "hi", c.Content())
	assert.Equal(t, "req-1", c.DataRequestID())
	assert.Equal(t, "u2", c.AuthorID())
	assert.NotEmpty(t, c.ID())
	assert.False(t, c.CreatedAt().IsZero())
}

func TestNewComment_SequenceFollowsCreationOrder(t *testing.T) {
	first, err := NewComment("req-1", "u2", "first")
	require.NoError(t, err)
	second, err := NewComment("req-1", "u2", "second")
	require.NoError(t, err)

	assert.Less(t, first.CreatedSeq(), second.CreatedSeq())
	assert.False(t, second.CreatedAt().Before(first.CreatedAt()))
}

func TestNewComment_Invalid(t *testing.T) {
	tests := []struct {
		name      string
		requestID string
		author    string
		content   string
		field     string
	}{
		{"empty content", "req-1", "u2", "", "content"},
		{"whitespace content", "req-1", "u2", " \t\n ", "content"},
		{"missing request", "", "u2", "hi", "data_request_id"},
		{"missing author", "req-1", "", "hi", "user_id"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewComment(tt.requestID, tt.author, tt.content)
			assert.Nil(t, c)
			require.True(t, errors.IsValidationError(err))
			assert.Contains(t, errors.GetAppError(err).Fields, tt.field)
		})
	}
}

func TestReconstructComment(t *testing.T) {
	now := time.Now().UTC()

	c, err := ReconstructComment("c1", "req-1", "u2", "hi", now, 3)
	require.NoError(t, err)
	assert.Equal(t, "c1", c.ID())

	_, err = ReconstructComment("", "req-1", "u2", "hi", now, 3)
	assert.Error(t, err)
	_, err = ReconstructComment("c1", "", "u2", "hi", now, 3)
	assert.Error(t, err)
}
