package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseIngredients(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "comma separated",
			input: "Water, Niacinamide, Fragrance",
			want:  []string{"water", "niacinamide", "fragrance"},
		},
		{
			name:  "mixed delimiters",
			input: "Water; Glycerin, Ceramide NP;Squalane",
			want:  []string{"water", "glycerin", "ceramide np", "squalane"},
		},
		{
			name:  "duplicates removed preserving order",
			input: "Water, Glycerin, water, GLYCERIN, Urea",
			want:  []string{"water", "glycerin", "urea"},
		},
		{
			name:  "empty segments dropped",
			input: "Water,, ,; Glycerin,",
			want:  []string{"water", "glycerin"},
		},
		{
			name:  "empty input",
			input: "",
			want:  []string{},
		},
		{
			name:  "whitespace only",
			input: "   \t ",
			want:  []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseIngredients(tt.input))
		})
	}
}
