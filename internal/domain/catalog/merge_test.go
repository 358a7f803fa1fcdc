package catalog

import (
	"reflect"
	"testing"
)

func TestMerge_DedupAndSort(t *testing.T) {
	got := Merge([]string{"Apnea", "Sepsis"}, []string{"Sepsis", "Anemia"})
	want := []string{"Anemia", "Apnea", "Sepsis"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Merge = %v, want %v", got, want)
	}
}

func TestMerge_CaseVariantsAreDistinct(t *testing.T) {
	// Merge dedupes by exact match only; "sepsis" and "Sepsis" coexist.
	got := Merge([]string{"Sepsis"}, []string{"sepsis"})
	if len(got) != 2 {
		t.Fatalf("expected 2 entries, got %v", got)
	}
}

func TestMerge_EmptyInputs(t *testing.T) {
	if got := Merge(nil, nil); len(got) != 0 {
		t.Errorf("expected empty merge, got %v", got)
	}
	got := Merge(nil, []string{"Ictericia"})
	if len(got) != 1 || got[0] != "Ictericia" {
		t.Errorf("unexpected merge result: %v", got)
	}
}

func TestMerge_DoesNotMutateInputs(t *testing.T) {
	base := []string{"Sepsis", "Apnea"}
	custom := []string{"Anemia"}
	Merge(base, custom)
	if base[0] != "Sepsis" || base[1] != "Apnea" {
		t.Errorf("base slice mutated: %v", base)
	}
}

func TestBaseDiagnoses_SortedCopy(t *testing.T) {
	a := BaseDiagnoses()
	if len(a) == 0 {
		t.Fatal("base diagnosis list is empty")
	}
	for i := 1; i < len(a); i++ {
		if a[i-1] > a[i] {
			t.Fatalf("base list not sorted at %d: %q > %q", i, a[i-1], a[i])
		}
	}
	a[0] = "mutated"
	b := BaseDiagnoses()
	if b[0] == "mutated" {
		t.Error("BaseDiagnoses returned shared backing array")
	}
}
