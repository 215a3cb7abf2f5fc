package utils

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseFilterFromQuery_Defaults(t *testing.T) {
	filter := ParseFilterFromQuery(url.Values{})

	assert.Equal(t, DefaultLimit, filter.Limit)
	assert.Equal(t, 1, filter.Page)
	assert.Zero(t, filter.Offset)
	assert.True(t, filter.WithPagination)
	assert.Empty(t, filter.Search)
	assert.Empty(t, filter.Sort)
	assert.Empty(t, filter.Filter)
}

func TestParseFilterFromQuery_Full(t *testing.T) {
	values := url.Values{}
	values.Set("limit", "25")
	values.Set("page", "3")
	values.Set("search", "silva")
	values.Set("sort[created_at]", "DESC")
	values.Set("filter[status]", "open")
	values.Set("filter[priority]", "high,urgent")

	filter := ParseFilterFromQuery(values)

	assert.Equal(t, 25, filter.Limit)
	assert.Equal(t, 3, filter.Page)
	assert.Equal(t, 50, filter.Offset, "offset derives from page and limit")
	assert.Equal(t, "silva", filter.Search)
	assert.Equal(t, map[string]string{"created_at": "desc"}, filter.Sort)
	assert.Equal(t, "open", filter.Filter["status"])
	assert.Equal(t, "high,urgent", filter.Filter["priority"])
}

func TestParseFilterFromQuery_Bounds(t *testing.T) {
	values := url.Values{}
	values.Set("limit", "9999")
	filter := ParseFilterFromQuery(values)
	assert.Equal(t, MaxLimit, filter.Limit)

	values = url.Values{}
	values.Set("limit", "-5")
	values.Set("page", "0")
	filter = ParseFilterFromQuery(values)
	assert.Equal(t, DefaultLimit, filter.Limit)
	assert.Equal(t, 1, filter.Page)

	values = url.Values{}
	values.Set("withPagination", "false")
	filter = ParseFilterFromQuery(values)
	assert.False(t, filter.WithPagination)
}

func TestParseFilterFromQuery_IgnoresBadSortDirection(t *testing.T) {
	values := url.Values{}
	values.Set("sort[code]", "sideways")
	filter := ParseFilterFromQuery(values)
	assert.Empty(t, filter.Sort)
}
