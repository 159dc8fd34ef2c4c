package chat

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhadat/marketplace/internal/shared/errors"
)

func TestNewChat_SelfChat(t *testing.T) {
	_, err := NewChat(1, 5, 5)
	require.Error(t, err)
	assert.True(t, errors.IsBadRequestError(err))
}

func TestChat_Participants(t *testing.T) {
	c, err := NewChat(1, 5, 6)
	require.NoError(t, err)

	assert.True(t, c.IsParticipant(5))
	assert.True(t, c.IsParticipant(6))
	assert.False(t, c.IsParticipant(7))
	assert.False(t, c.IsParticipant(0))
	assert.Equal(t, uint(6), c.OtherParticipant(5))
	assert.Equal(t, uint(5), c.OtherParticipant(6))
}

func TestChat_RecordMessage(t *testing.T) {
	c, err := NewChat(1, 5, 6)
	require.NoError(t, err)
	assert.Equal(t, c.UpdatedAt(), c.LastActivityAt())

	m, err := NewMessage(1, 6, "  Căn này còn không ạ?  ")
	require.NoError(t, err)
	c.RecordMessage(m)

	assert.Equal(t, "Căn này còn không ạ?", c.LastMessage())
	require.NotNil(t, c.LastMessageAt())
	assert.Equal(t, m.CreatedAt(), c.LastActivityAt())
}

func TestNewMessage_Content(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr bool
	}{
		{"trimmed text", "  xin chào ", false},
		{"empty", "", true},
		{"whitespace only", " \n\t ", true},
		{"at limit", strings.Repeat("á", 2000), false},
		{"over limit", strings.Repeat("a", 2001), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := NewMessage(1, 2, tt.content)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.IsBadRequestError(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, strings.TrimSpace(tt.content), m.Content())
			assert.False(t, m.IsRead())
		})
	}
}

func TestReconstructChat(t *testing.T) {
	at := time.Now().UTC()
	c, err := ReconstructChat(ChatParams{ID: 3, PropertyID: 1, SellerID: 2, BuyerID: 4, LastMessageAt: &at})
	require.NoError(t, err)
	assert.Equal(t, at, c.LastActivityAt())

	_, err = ReconstructChat(ChatParams{})
	assert.Error(t, err)
}
