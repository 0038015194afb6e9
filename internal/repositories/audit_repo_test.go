package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAuditPage(t *testing.T) {
	tests := []struct {
		name                  string
		limit, offset         int
		wantLimit, wantOffset int
	}{
		{"defaults", 0, 0, 50, 0},
		{"kept", 10, 20, 10, 20},
		{"capped", 10_000, 5, maxAuditPage, 5},
		{"negative offset", 5, -3, 5, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			limit, offset := auditPage(tt.limit, tt.offset)
			assert.Equal(t, tt.wantLimit, limit)
			assert.Equal(t, tt.wantOffset, offset)
		})
	}
}
