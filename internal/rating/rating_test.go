package rating

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStats_Average(t *testing.T) {
	cases := []struct {
		name   string
		scores []int
		want   int
	}{
		{"no ratings", nil, 0},
		{"single", []int{3}, 3},
		{"exact mean", []int{4, 5, 3}, 4},
		{"half rounds up", []int{4, 5}, 5},
		{"just below half", []int{1, 2, 2}, 2},
		{"one point five", []int{1, 2}, 2},
		{"two point five", []int{2, 3}, 3},
		{"all ones", []int{1, 1, 1, 1}, 1},
		{"all fives", []int{5, 5}, 5},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var st Stats
			for _, s := range tc.scores {
				st.Sum += int64(s)
				st.Count++
			}
			assert.Equal(t, tc.want, st.Average())
		})
	}
}
