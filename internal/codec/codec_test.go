package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSON_Decode(t *testing.T) {
	var target struct {
		UUID  string   `json:"uuid"`
		Parts []string `json:"parts"`
	}
	err := JSON{}.Decode([]byte(`{"uuid": "abc", "parts": ["u1", "u2"]}`), &target)
	require.NoError(t, err)
	assert.Equal(t, "abc", target.UUID)
	assert.Equal(t, []string{"u1", "u2"}, target.Parts)
}

func TestJSON_DecodeMap(t *testing.T) {
	payload, err := JSON{}.DecodeMap([]byte(`{"file": "abc-123", "size": 12}`))
	require.NoError(t, err)
	assert.Equal(t, "abc-123", payload["file"])
	assert.Equal(t, float64(12), payload["size"])
}

func TestJSON_DecodeMap_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "not json", body: `<html></html>`},
		{name: "json but not a mapping", body: `["a", "b"]`},
		{name: "empty body", body: ``},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := JSON{}.DecodeMap([]byte(tt.body))
			assert.Error(t, err)
		})
	}
}
