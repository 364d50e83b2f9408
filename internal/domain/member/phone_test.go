package member

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatPhone(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		expected string
	}{
		{
			name:     "10 hane başına sıfır alır",
			in:       "5321112233",
			expected: "0532 111 22 33",
		},
		{
			name:     "90 ülke kodu sıfıra çevrilir",
			in:       "905321112233",
			expected: "0532 111 22 33",
		},
		{
			name:     "hazır 11 hane yeniden gruplanır",
			in:       "05321112233",
			expected: "0532 111 22 33",
		},
		{
			name:     "artı ve boşluklu girdi temizlenir",
			in:       "+90 532 111 22 33",
			expected: "0532 111 22 33",
		},
		{
			name:     "kısa numara olduğu gibi kalır",
			in:       "123",
			expected: "123",
		},
		{
			name:     "kalıba uymayan uzun numara üçerli gruplanır",
			in:       "12345678",
			expected: "123 456 78",
		},
		{
			name:     "rakamsız girdi dokunulmadan döner",
			in:       "bilinmiyor",
			expected: "bilinmiyor",
		},
		{
			name:     "boş girdi",
			in:       "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatPhone(tt.in))
		})
	}
}
