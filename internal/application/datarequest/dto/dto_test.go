package dto

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"datarequests/internal/domain/datarequest"
	vo "datarequests/internal/domain/datarequest/valueobjects"
	"datarequests/internal/domain/identity"
)

func fixedRequest(t *testing.T) *datarequest.DataRequest {
	t.Helper()
	ts := time.Date(2024, 1, 2, 3, 4, 5, 6000, time.UTC)
	r, err := datarequest.ReconstructDataRequest("r1", "A", "B", vo.StatusOpen, "u1", ts, ts, 1)
	require.NoError(t, err)
	return r
}

func TestToDataRequestDTO(t *testing.T) {
	got := ToDataRequestDTO(fixedRequest(t), &identity.Identity{ID: "u1", Name: "alice", DisplayName: "Alice"})

	require.NotNil(t, got.CreatedAt)
	assert.Equal(t, "2024-01-02T03:04:05.000006Z", *got.CreatedAt)
	assert.Equal(t, *got.CreatedAt, *got.UpdatedAt)
	assert.Equal(t, "alice", *got.UserName)
	assert.Equal(t, "Alice", *got.UserDisplayName)
	assert.Equal(t, "open", got.Status)
}

func TestToDataRequestDTO_UnresolvedAuthorIsNull(t *testing.T) {
	raw, err := json.Marshal(ToDataRequestDTO(fixedRequest(t), nil))
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(raw, &m))
	assert.Contains(t, m, "user_name")
	assert.Nil(t, m["user_name"])
	assert.Nil(t, m["user_display_name"])
	assert.Equal(t, "u1", m["user_id"])
	assert.NotContains(t, m, "description_html")
}

func TestDataRequestDTO_ZeroTimestampIsNull(t *testing.T) {
	r, err := datarequest.ReconstructDataRequest("r1", "A", "B", vo.StatusOpen, "u1", time.Time{}, time.Time{}, 1)
	require.NoError(t, err)

	got := ToDataRequestDTO(r, nil)

	assert.Nil(t, got.CreatedAt)
	assert.Nil(t, got.UpdatedAt)
}

func TestListItem_CommentsPresence(t *testing.T) {
	base := ToDataRequestDTO(fixedRequest(t), nil)

	without, err := json.Marshal(DataRequestListItemDTO{DataRequestDTO: base})
	require.NoError(t, err)
	assert.NotContains(t, string(without), `"comments"`)
	assert.Contains(t, string(without), `"comment_count":0`)

	withEmpty, err := json.Marshal(DataRequestListItemDTO{DataRequestDTO: base, Comments: []CommentDTO{}})
	require.NoError(t, err)
	assert.Contains(t, string(withEmpty), `"comments":[]`)
}

func TestToCommentDTO(t *testing.T) {
	ts := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	c, err := datarequest.ReconstructComment("c1", "r1", "u2", "hi", ts, 1)
	require.NoError(t, err)

	got := ToCommentDTO(c, &identity.Identity{ID: "u2", Name: "bob", DisplayName: "Bob"})

	assert.Equal(t, "r1", got.DataRequestID)
	assert.Equal(t, "u2", got.UserID)
	assert.Equal(t, "bob", *got.UserName)
	assert.Equal(t, "2024-01-02T03:04:05.000000Z", *got.CreatedAt)
}
