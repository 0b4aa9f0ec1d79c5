package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSort(t *testing.T) {
	input := []Rule{
		{ID: 1, StartHour: AnyHour, MinTemp: AnyTemp},
		{ID: 2, StartHour: 19, MinTemp: 26},
		{ID: 3, StartHour: 8, MinTemp: AnyTemp},
		{ID: 4, StartHour: 8, MinTemp: 26},
		{ID: 5, StartHour: AnyHour, MinTemp: 10},
		{ID: 6, StartHour: 8, MinTemp: 20},
		{ID: 7, StartHour: 8, MinTemp: 20},
	}
	Sort(input)

	ids := make([]int, len(input))
	for i, r := range input {
		ids[i] = r.ID
	}
	assert.Equal(t, []int{6, 7, 4, 3, 2, 5, 1}, ids)
}

func TestSort_Defaults(t *testing.T) {
	r := DefaultRules()
	Sort(r)
	assert.Equal(t, DefaultRules(), r)
}
