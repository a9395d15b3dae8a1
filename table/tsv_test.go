package table

import (
	"bytes"
	"testing"
)

func TestMakeTSV(t *testing.T) {
	table := Table{
		Header: []string{"num", "name", "mainUnit"},
		Records: [][]string{
			{"A1", "Sugar", "KG"},
			{"A2", "Salt", "KG"},
		},
	}

	expected := "num\tname\tmainUnit\n" +
		"A1\tSugar\tKG\n" +
		"A2\tSalt\tKG\n"

	var b bytes.Buffer

	if err := table.MakeTSV(&b); err != nil {
		t.Fatalf("Unexpected error returned from MakeTSV (%v)", err)
	}

	if b.String() != expected {
		t.Errorf("Incorrect TSV\n   expected: %q\n   got:      %q\n", expected, b.String())
	}
}

func TestMakeTSVWithoutHeader(t *testing.T) {
	table := Table{}

	var b bytes.Buffer

	if err := table.MakeTSV(&b); err == nil {
		t.Fatalf("Expected error return for missing header, got %v", err)
	}
}
