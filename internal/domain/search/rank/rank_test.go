package rank

import (
	"testing"

	"github.com/kollektivet/sitesearch/internal/domain/search/result"
)

func TestBest_OneSurvivorPerKey(t *testing.T) {
	cands := []Candidate{
		{Key: "j1", Score: 150, UpdatedAt: 100},
		{Key: "j1", Score: 130, UpdatedAt: 200},
		{Key: "j2", Score: 140, UpdatedAt: 50},
	}

	out := Best(cands)

	if len(out) != 2 {
		t.Fatalf("expected 2 survivors, got %d", len(out))
	}
	if out[0].Key != "j1" || out[0].Score != 150 {
		t.Errorf("expected j1 with score 150 first, got %+v", out[0])
	}
	if out[1].Key != "j2" {
		t.Errorf("expected j2 second, got %+v", out[1])
	}
}

func TestBest_TieGoesToNewer(t *testing.T) {
	cands := []Candidate{
		{Key: "e1", Score: 100, UpdatedAt: 10},
		{Key: "e1", Score: 100, UpdatedAt: 99},
	}

	out := Best(cands)

	if len(out) != 1 {
		t.Fatalf("expected 1 survivor, got %d", len(out))
	}
	if out[0].UpdatedAt != 99 {
		t.Errorf("expected the newer candidate to survive the tie, got UpdatedAt=%d", out[0].UpdatedAt)
	}
}

func TestBest_OrderIndependent(t *testing.T) {
	a := []Candidate{
		{Key: "x", Score: 90, UpdatedAt: 1},
		{Key: "x", Score: 120, UpdatedAt: 2},
		{Key: "y", Score: 110, UpdatedAt: 3},
	}
	b := []Candidate{a[2], a[0], a[1]}

	outA := Best(a)
	outB := Best(b)

	if len(outA) != len(outB) {
		t.Fatalf("survivor counts differ: %d vs %d", len(outA), len(outB))
	}
	for i := range outA {
		if outA[i] != outB[i] {
			t.Errorf("survivor %d differs: %+v vs %+v", i, outA[i], outB[i])
		}
	}
}

func TestBest_Empty(t *testing.T) {
	if out := Best(nil); len(out) != 0 {
		t.Errorf("expected no survivors, got %d", len(out))
	}
}

func TestMerge_OrdersByScoreThenRecency(t *testing.T) {
	results := []result.Result{
		{ID: "a", Score: 100, UpdatedAt: 1},
		{ID: "b", Score: 150, UpdatedAt: 1},
		{ID: "c", Score: 100, UpdatedAt: 9},
	}

	out := Merge(results, 10)

	wantOrder := []string{"b", "c", "a"}
	for i, id := range wantOrder {
		if out[i].ID != id {
			t.Errorf("position %d: expected %s, got %s", i, id, out[i].ID)
		}
	}
}

func TestMerge_Truncates(t *testing.T) {
	results := []result.Result{
		{ID: "a", Score: 3},
		{ID: "b", Score: 2},
		{ID: "c", Score: 1},
	}

	out := Merge(results, 1)

	if len(out) != 1 {
		t.Fatalf("expected 1 result, got %d", len(out))
	}
	if out[0].ID != "a" {
		t.Errorf("expected highest-scored result to survive truncation, got %s", out[0].ID)
	}
}

func TestMerge_DoesNotMutateInput(t *testing.T) {
	results := []result.Result{
		{ID: "a", Score: 1},
		{ID: "b", Score: 2},
	}

	_ = Merge(results, 10)

	if results[0].ID != "a" || results[1].ID != "b" {
		t.Error("expected input slice to be left untouched")
	}
}
