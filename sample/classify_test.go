package sample

import "testing"

func TestClassify(t *testing.T) {
	cases := map[string]Provenance{
		"icNF97.2a": Immortalized,
		"cNF97.2a":  Primary,
		"28cNF00":   Primary,
		"xyz123":    Other,
		"":          Other,
		"CNF97.2a":  Other, // case matters
		" cNF97.2a": Other, // no trimming
		"ipn02.3":   Immortalized,
	}

	for id, want := range cases {
		if got := Classify(id); got != want {
			t.Errorf("Classify(%q) = %v, want %v", id, got, want)
		}
	}
}

func TestClassifyDeterministic(t *testing.T) {
	for _, id := range []string{"icNF97.2a", "cNF97.2a", "28cNF00", "xyz123"} {
		first := Classify(id)
		for i := 0; i < 100; i++ {
			if got := Classify(id); got != first {
				t.Fatalf("Classify(%q) changed from %v to %v on call %d", id, first, got, i)
			}
		}
	}
}
