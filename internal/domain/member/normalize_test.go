package member

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		expected string
	}{
		{name: "noktalı büyük İ", in: "İSMAİL", expected: "ismail"},
		{name: "noktasız büyük I", in: "IŞIK", expected: "ışık"},
		{name: "karışık", in: "Ali YILMAZ", expected: "ali yılmaz"},
		{name: "ascii", in: "Mehmet", expected: "mehmet"},
		{name: "boş", in: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Normalize(tt.in))
		})
	}
}
