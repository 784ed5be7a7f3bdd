package bmi

import "testing"

func TestClassifyBoundaries(t *testing.T) {
	tests := []struct {
		bmi  float64
		want Category
	}{
		{0.1, Underweight},
		{18.49, Underweight},
		{18.5, NormalWeight},
		{24.99, NormalWeight},
		{25.0, Overweight},
		{29.99, Overweight},
		{30.0, Obese},
		{95, Obese},
	}
	for _, tt := range tests {
		if got := Classify(tt.bmi); got != tt.want {
			t.Errorf("Classify(%v) = %v, want %v", tt.bmi, got, tt.want)
		}
	}
}

func TestCategoryNames(t *testing.T) {
	want := []string{"Underweight", "Normal Weight", "Overweight", "Obese"}
	for i, c := range Categories() {
		if c.String() != want[i] {
			t.Errorf("Categories()[%d] = %q, want %q", i, c.String(), want[i])
		}
	}
}

func TestColorForFollowsClassify(t *testing.T) {
	colors := map[Category]string{
		Underweight:  "#3498DB",
		NormalWeight: "#2ECC71",
		Overweight:   "#F39C12",
		Obese:        "#E74C3C",
	}
	for v := 10.0; v < 45; v += 0.5 {
		if got, want := ColorFor(v), colors[Classify(v)]; got != want {
			t.Errorf("ColorFor(%v) = %s, want %s", v, got, want)
		}
	}
}

func TestLegend(t *testing.T) {
	l := Legend()
	if len(l) != 4 {
		t.Fatalf("Legend has %d lines, want 4", len(l))
	}
	if l[2] != "25.0 - 29.9: Overweight" {
		t.Errorf("Legend[2] = %q", l[2])
	}
}
