package rms

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQueryParams_ToValues(t *testing.T) {
	params := NewQueryParams().
		WithLimit(50).
		WithOffset(100).
		WithSearch("gateway").
		WithFilter("status", "online").
		WithFilter("company_id", "3")

	values := params.ToValues()
	assert.Equal(t, "50", values.Get("limit"))
	assert.Equal(t, "100", values.Get("offset"))
	assert.Equal(t, "gateway", values.Get("q"))
	assert.Equal(t, "online", values.Get("status"))
	assert.Equal(t, "3", values.Get("company_id"))
}

func TestQueryParams_ToValues_ZeroValuesOmitted(t *testing.T) {
	values := NewQueryParams().ToValues()
	assert.Empty(t, values)

	var nilParams *QueryParams

	assert.Empty(t, nilParams.ToValues())
}

func TestQueryParams_Clone(t *testing.T) {
	params := NewQueryParams().WithLimit(50).WithFilter("status", "online")

	clone := params.Clone()
	clone.WithOffset(200).WithFilter("model", "RUT955")

	assert.Equal(t, 0, params.Offset)
	assert.NotContains(t, params.Filters, "model")
	assert.Equal(t, 200, clone.Offset)
	assert.Equal(t, "online", clone.Filters["status"])
}

func TestQueryParams_Clone_Nil(t *testing.T) {
	var params *QueryParams

	clone := params.Clone()
	assert.NotNil(t, clone)
	assert.NotNil(t, clone.Filters)
}

func TestQueryParams_FilterKeys(t *testing.T) {
	params := NewQueryParams().WithFilter("status", "online").WithFilter("mac", "00:1E:42:00:00:01")

	assert.ElementsMatch(t, []string{"status", "mac"}, params.FilterKeys())
}

func TestFiltersFromAny(t *testing.T) {
	filters := FiltersFromAny(map[string]any{
		"company_id": 3,
		"status":     "online",
		"monitoring": true,
	})

	assert.Equal(t, map[string]string{
		"company_id": "3",
		"status":     "online",
		"monitoring": "true",
	}, filters)
}
