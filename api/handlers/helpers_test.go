package handlers

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetPage(t *testing.T) {
	tests := []struct {
		name          string
		query         string
		expectedLimit int64
		expectedPage  int64
	}{
		{name: "defaults", expectedLimit: defaultLimit, expectedPage: 0},
		{name: "explicit", query: "?limit=5&page=2", expectedLimit: 5, expectedPage: 2},
		{name: "limit capped", query: "?limit=5000", expectedLimit: maxLimit, expectedPage: 0},
		{name: "garbage ignored", query: "?limit=abc&page=-3", expectedLimit: defaultLimit, expectedPage: 0},
		{name: "huge page clamped", query: "?limit=100&page=100000000000000000", expectedLimit: 100, expectedPage: math.MaxInt64 / 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			limit, page := getPage(newRequest(t, "GET", "/api/v1/records"+tt.query, nil, nil))
			assert.Equal(t, tt.expectedLimit, limit)
			assert.Equal(t, tt.expectedPage, page)
			assert.GreaterOrEqual(t, limit*page, int64(0))
		})
	}
}
