package databases

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetPaginatedOpts(t *testing.T) {
	tests := []struct {
		name         string
		limit, page  int64
		expectedSkip int64
	}{
		{name: "first page", limit: 20, page: 0, expectedSkip: 0},
		{name: "third page", limit: 20, page: 2, expectedSkip: 40},
		{name: "overflowing page saturates", limit: 100, page: 100000000000000000, expectedSkip: math.MaxInt64},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := newMongoPaginate(tt.limit, tt.page).getPaginatedOpts("createdAt")
			require.NotNil(t, opts.Skip)
			assert.Equal(t, tt.expectedSkip, *opts.Skip)
			assert.Equal(t, tt.limit, *opts.Limit)
		})
	}
}
