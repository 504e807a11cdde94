package csvtab

import (
	"reflect"
	"strings"
	"testing"

	"github.com/cdl-biosimilars/cafog/pkg/core"
)

func TestReadGlycoforms(t *testing.T) {
	input := `# glycoform abundances
A2G0F/A2G0F,62.0,3.0
A2G0F/A2G1F,30.0,2.0

A2G1F/A2G1F,8.0
`
	rows, err := ReadGlycoforms(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ReadGlycoforms() error: %v", err)
	}

	want := []core.GlycoformRow{
		{Name: "A2G0F/A2G0F", Fields: []float64{62, 3}},
		{Name: "A2G0F/A2G1F", Fields: []float64{30, 2}},
		{Name: "A2G1F/A2G1F", Fields: []float64{8}},
	}
	if !reflect.DeepEqual(rows, want) {
		t.Errorf("ReadGlycoforms() = %v, want %v", rows, want)
	}
}

func TestReadGlycoformsInvalidNumber(t *testing.T) {
	_, err := ReadGlycoforms(strings.NewReader("A2G0F/A2G0F,abc\n"))
	if err == nil || !strings.Contains(err.Error(), "abc") {
		t.Fatalf("expected error naming the bad value, got %v", err)
	}
}

func TestReadGlycation(t *testing.T) {
	input := `0,80,1
1,15,0.5
2,5,0.2
`
	rows, err := ReadGlycation(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ReadGlycation() error: %v", err)
	}

	want := []core.GlycationRow{
		{Count: 0, Fields: []float64{80, 1}},
		{Count: 1, Fields: []float64{15, 0.5}},
		{Count: 2, Fields: []float64{5, 0.2}},
	}
	if !reflect.DeepEqual(rows, want) {
		t.Errorf("ReadGlycation() = %v, want %v", rows, want)
	}
}

func TestReadGlycationRejectsBadCounts(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"non-integer count", "x,80\n"},
		{"negative count", "-1,80\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ReadGlycation(strings.NewReader(tt.input)); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestReadLibrary(t *testing.T) {
	input := `glycan,composition
G0,
custom,"4 Hex, 3 HexNAc"
`
	entries, err := ReadLibrary(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ReadLibrary() error: %v", err)
	}

	want := []core.LibraryEntry{
		{Name: "G0"},
		{Name: "custom", Composition: "4 Hex, 3 HexNAc"},
	}
	if !reflect.DeepEqual(entries, want) {
		t.Errorf("ReadLibrary() = %v, want %v", entries, want)
	}
}

func TestReadLibraryMissingHeader(t *testing.T) {
	_, err := ReadLibrary(strings.NewReader("G0,\nG1,\n"))
	if err == nil {
		t.Fatal("expected error for missing glycan header")
	}
}
