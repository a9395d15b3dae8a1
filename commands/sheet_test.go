package commands

import (
	"testing"
)

func TestColumnID(t *testing.T) {
	vector := []struct {
		column   int
		expected string
	}{
		{1, "A"},
		{5, "E"},
		{7, "G"},
		{26, "Z"},
		{27, "AA"},
		{52, "AZ"},
		{53, "BA"},
		{702, "ZZ"},
	}

	for _, v := range vector {
		if id := columnID(v.column); id != v.expected {
			t.Errorf("Incorrect column ID for %v - expected:%v, got:%v", v.column, v.expected, id)
		}
	}
}
