package valueobjects

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStatus(t *testing.T) {
	tests := []struct {
		in      string
		want    Status
		wantErr bool
	}{
		{"open", StatusOpen, false},
		{"closed", StatusClosed, false},
		{"archived", "", true},
		{"OPEN", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := NewStatus(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseFilter(t *testing.T) {
	assert.Nil(t, ParseFilter(""))
	assert.Nil(t, ParseFilter("all"))
	assert.Nil(t, ParseFilter(" open"))

	got := ParseFilter("closed")
	require.NotNil(t, got)
	assert.True(t, got.IsClosed())
}
