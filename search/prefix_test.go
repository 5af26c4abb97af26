package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildPrefixes(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{name: "trims and lowercases", input: "Cat ", want: []string{"c", "ca", "cat"}},
		{name: "single rune", input: "X", want: []string{"x"}},
		{name: "empty", input: "   ", want: []string{}},
		{name: "multibyte runes stay whole", input: "ตลาด", want: []string{"ต", "ตล", "ตลา", "ตลาด"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, BuildPrefixes(tt.input))
		})
	}
}

func TestBuildPrefixesLastElementIsFullName(t *testing.T) {
	for _, input := range []string{"market one", "Bangkok Fresh", "a"} {
		got := BuildPrefixes(input)
		assert.Equal(t, len([]rune(Normalize(input))), len(got))
		assert.Equal(t, Normalize(input), got[len(got)-1])
	}
}
