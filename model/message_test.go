package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMessage_SearchText(t *testing.T) {
	m := NewMessage("m-1", "u-1", "Sophia Al-Farsi", time.Now(),
		"Please book a private jet to Paris for this Friday.")

	assert.Equal(t, "sophia al-farsi please book a private jet to paris for this friday.", m.SearchText())
}

func TestMessage_SearchText_EmptyBody(t *testing.T) {
	m := NewMessage("m-1", "u-1", "Armand", time.Now(), "")
	assert.Equal(t, "armand ", m.SearchText())
}

func TestMessage_Validate(t *testing.T) {
	valid := NewMessage("m-1", "u-1", "Sophia", time.Now(), "hello")
	assert.NoError(t, valid.Validate())

	// Empty body is a legal record
	noBody := NewMessage("m-1", "u-1", "Sophia", time.Now(), "")
	assert.NoError(t, noBody.Validate())

	missingID := NewMessage("", "u-1", "Sophia", time.Now(), "hello")
	assert.Error(t, missingID.Validate())

	missingName := NewMessage("m-1", "u-1", "", time.Now(), "hello")
	assert.Error(t, missingName.Validate())
}

func TestSourceResponse_Decode(t *testing.T) {
	payload := `{
		"total": 1,
		"items": [
			{
				"id": "9aa8f4ac",
				"user_id": "u-77",
				"user_name": "Sophia Al-Farsi",
				"timestamp": "2025-05-05T07:47:20.159073+00:00",
				"message": "Please book a private jet to Paris for this Friday."
			}
		]
	}`

	var resp SourceResponse
	require.NoError(t, json.Unmarshal([]byte(payload), &resp))

	assert.Equal(t, 1, resp.Total)
	require.Len(t, resp.Items, 1)
	m := resp.Items[0]
	assert.Equal(t, "9aa8f4ac", m.ID)
	assert.Equal(t, "u-77", m.UserID)
	assert.Equal(t, "Sophia Al-Farsi", m.UserName)
	assert.Equal(t, 2025, m.Timestamp.Year())
	assert.Equal(t, "Please book a private jet to Paris for this Friday.", m.Message)
}
