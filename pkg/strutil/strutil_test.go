//nolint:testpackage
package strutil

import (
	"reflect"
	"testing"
)

func TestDedupeStrSlice(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    []string
		expected []string
	}{
		{
			name:     "No duplicates",
			input:    []string{"a", "b", "c"},
			expected: []string{"a", "b", "c"},
		},
		{
			name:     "Duplicates in input",
			input:    []string{"a", "b", "a", "c", "b"},
			expected: []string{"a", "b", "c"},
		},
		{
			name:     "All elements are duplicates",
			input:    []string{"a", "a", "a"},
			expected: []string{"a"},
		},
		{
			name:     "Case-sensitive duplicates",
			input:    []string{"a", "A", "b", "B", "a"},
			expected: []string{"a", "A", "b", "B"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			result := DedupeStrSlice(tt.input)
			if !reflect.DeepEqual(result, tt.expected) {
				t.Errorf("DedupeStrSlice(%v) = %v, expected %v", tt.input, result, tt.expected)
			}
		})
	}
}
