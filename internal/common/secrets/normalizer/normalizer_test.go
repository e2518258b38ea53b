package normalizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCapitalizeFirst(t *testing.T) {
	tests := []struct {
		name   string
		secret string
		want   string
	}{
		{
			name:   "lower case first letter",
			secret: "hello world",
			want:   "Hello world",
		},
		{
			name:   "already capitalized",
			secret: "Hello world",
			want:   "Hello world",
		},
		{
			name:   "single letter",
			secret: "a",
			want:   "A",
		},
		{
			name:   "empty string",
			secret: "",
			want:   "",
		},
		{
			name:   "digit first",
			secret: "1 secret",
			want:   "1 secret",
		},
		{
			name:   "cyrillic first letter",
			secret: "секрет без регистра",
			want:   "Секрет без регистра",
		},
		{
			name:   "only first letter changes",
			secret: "hello World HELLO",
			want:   "Hello World HELLO",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CapitalizeFirst(tt.secret))
		})
	}
}
