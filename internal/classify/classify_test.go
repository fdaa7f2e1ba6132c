package classify

import "testing"

func TestClassifyDataStructures(t *testing.T) {
	res := Classify("Today we implement a stack: push and pop keep LIFO order.")
	if res.Category != DataStructures {
		t.Fatalf("category = %s, want data_structures (scores %v)", res.Category, res.Scores)
	}
	if res.Scores[DataStructures] == 0 {
		t.Error("matching text must score above zero")
	}
}

func TestClassifyOtherSubjects(t *testing.T) {
	cases := []struct {
		text string
		want Category
	}{
		{"the derivative of the function, then the integral", Mathematics},
		{"velocity and acceleration under constant force, momentum conserved", Physics},
		{"the reaction produces H2O and CO2, a chemical equilibrium", Chemistry},
		{"every cell carries dna, genes drive evolution", Biology},
		{"bubble sort versus merge sort, a classic algorithm", Algorithms},
		{"the approval workflow needs a decision diagram", Business},
	}
	for _, c := range cases {
		res := Classify(c.text)
		if res.Category != c.want {
			t.Errorf("Classify(%q) = %s, want %s (scores %v)", c.text, res.Category, c.want, res.Scores)
		}
	}
}

func TestClassifyGeneralFallback(t *testing.T) {
	res := Classify("Nothing about any known subject whatsoever.")
	if res.Category != General {
		t.Errorf("category = %s, want general", res.Category)
	}
	for cat, score := range res.Scores {
		if score != 0 {
			t.Errorf("unexpected score for %s: %d", cat, score)
		}
	}
}

func TestClassifySymbolsMatchRaw(t *testing.T) {
	// Symbol patterns must not be lowercased away and must count per
	// occurrence.
	res := Classify("x = 1 + 2 + 3 ∫ Σ")
	if res.Category != Mathematics {
		t.Errorf("category = %s, want mathematics (scores %v)", res.Category, res.Scores)
	}
}

func TestClassifyTieBreakOrder(t *testing.T) {
	// "graph" scores 2 in both DataStructures and Mathematics; the earlier
	// declared category wins the tie.
	res := Classify("graph")
	if res.Category != DataStructures {
		t.Errorf("category = %s, want data_structures", res.Category)
	}
}

func TestCategoryFromName(t *testing.T) {
	if c, ok := CategoryFromName("physics"); !ok || c != Physics {
		t.Errorf("CategoryFromName(physics) = %v, %v", c, ok)
	}
	if _, ok := CategoryFromName("astrology"); ok {
		t.Error("unknown name must not resolve")
	}
}

func TestClassifyWithCustomTable(t *testing.T) {
	table := DefaultTable()
	table[DataStructures] = []Pattern{{Match: "deque", Weight: 5}}
	res := ClassifyWith(table, "a deque of events")
	if res.Category != DataStructures {
		t.Errorf("category = %s, want data_structures", res.Category)
	}
	if res.Scores[DataStructures] != 5 {
		t.Errorf("score = %d, want 5", res.Scores[DataStructures])
	}
}
