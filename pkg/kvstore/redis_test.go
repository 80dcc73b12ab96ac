package kvstore

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchPrefix(t *testing.T) {
	tests := []struct {
		prefix string
		want   string
	}{
		{"nachiketa-session-", `nachiketa-session-*`},
		{"nachiketa-message-a[1]-", `nachiketa-message-a\[1\]-*`},
		{"x*y?", `x\*y\?*`},
		{`back\slash`, `back\\slash*`},
		{"", "*"},
	}

	for _, tt := range tests {
		t.Run(tt.prefix, func(t *testing.T) {
			assert.Equal(t, tt.want, MatchPrefix(tt.prefix))
		})
	}
}
