package rms

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnwrapSingle(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{
			name: "bare entity",
			body: `{"id": 7, "name": "gateway-01"}`,
		},
		{
			name: "data-wrapped entity",
			body: `{"data": {"id": 7, "name": "gateway-01"}}`,
		},
		{
			name: "data-wrapped single-element list",
			body: `{"data": [{"id": 7, "name": "gateway-01"}]}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			device, err := UnwrapSingle[Device]([]byte(tt.body))
			require.NoError(t, err)
			assert.Equal(t, 7, device.ID)
			assert.Equal(t, "gateway-01", device.Name)
		})
	}
}

func TestUnwrapSingle_Malformed(t *testing.T) {
	_, err := UnwrapSingle[Device]([]byte(`not json`))
	require.Error(t, err)
}

func TestListResponse_Decode(t *testing.T) {
	body := []byte(`{
		"data": [{"id": 1, "name": "a"}, {"id": 2, "name": "b"}],
		"meta": {"total": 42, "limit": 2, "offset": 0}
	}`)

	var list ListResponse[Tag]
	require.NoError(t, json.Unmarshal(body, &list))
	assert.Len(t, list.Data, 2)
	require.NotNil(t, list.Meta.Total)
	assert.Equal(t, 42, *list.Meta.Total)
	assert.Equal(t, 2, list.Meta.Limit)
}

func TestListResponse_Decode_NoMeta(t *testing.T) {
	body := []byte(`{"data": []}`)

	var list ListResponse[Tag]
	require.NoError(t, json.Unmarshal(body, &list))
	assert.Empty(t, list.Data)
	assert.Nil(t, list.Meta.Total)
}
