package model

import (
	"sort"
	"strings"
	"testing"
)

func TestAddGrowsCollection(t *testing.T) {
	c := Collection{}
	next, ok := Add(c, "k1", "Buy milk", CategoryWork)
	if !ok {
		t.Fatal("expected add to apply")
	}
	if len(next) != 1 {
		t.Fatalf("expected 1 record, got %d", len(next))
	}
	want := ToDo{Text: "Buy milk", Category: CategoryWork, Complete: false}
	if next["k1"] != want {
		t.Fatalf("unexpected record: %+v", next["k1"])
	}
	if len(c) != 0 {
		t.Fatalf("input collection mutated: %+v", c)
	}
}

func TestAddRejectsEmptyText(t *testing.T) {
	c := Collection{"k1": {Text: "a", Category: CategoryWork}}
	for _, text := range []string{"", "   ", "\t\n"} {
		next, ok := Add(c, "k2", text, CategoryWork)
		if ok || len(next) != 1 {
			t.Fatalf("empty text %q should be a no-op, got ok=%v len=%d", text, ok, len(next))
		}
	}
}

func TestAddRejectsDuplicateKeyAndBadCategory(t *testing.T) {
	c := Collection{"k1": {Text: "a", Category: CategoryWork}}
	if _, ok := Add(c, "k1", "b", CategoryWork); ok {
		t.Fatal("duplicate key should not overwrite")
	}
	if _, ok := Add(c, "k2", "b", Category("Home")); ok {
		t.Fatal("invalid category should be rejected")
	}
}

func TestToggleCompleteTwiceIsIdentity(t *testing.T) {
	c := Collection{"k1": {Text: "a", Category: CategoryTravel}}
	once, ok := ToggleComplete(c, "k1")
	if !ok || !once["k1"].Complete {
		t.Fatalf("expected complete after one toggle: %+v", once["k1"])
	}
	twice, ok := ToggleComplete(once, "k1")
	if !ok || twice["k1"] != c["k1"] {
		t.Fatalf("expected unchanged record after two toggles: %+v", twice["k1"])
	}
}

func TestMissingKeyOperationsAreNoOps(t *testing.T) {
	c := Collection{"k1": {Text: "a", Category: CategoryWork}}
	if next, ok := ToggleComplete(c, "nope"); ok || len(next) != 1 {
		t.Fatal("toggle of missing key should be a no-op")
	}
	if next, ok := Edit(c, "nope", "b"); ok || len(next) != 1 {
		t.Fatal("edit of missing key should be a no-op")
	}
	if next, ok := Delete(c, "nope"); ok || len(next) != 1 {
		t.Fatal("delete of missing key should be a no-op")
	}
}

func TestEditReplacesText(t *testing.T) {
	c := Collection{"k1": {Text: "a", Category: CategoryWork, Complete: true}}
	next, ok := Edit(c, "k1", "  b  ")
	if !ok {
		t.Fatal("expected edit to apply")
	}
	if next["k1"].Text != "b" || !next["k1"].Complete || next["k1"].Category != CategoryWork {
		t.Fatalf("unexpected edited record: %+v", next["k1"])
	}
	if c["k1"].Text != "a" {
		t.Fatal("input collection mutated")
	}
	if _, ok := Edit(next, "k1", ""); ok {
		t.Fatal("empty edit should be rejected")
	}
}

func TestDeleteRemovesExactlyOneKey(t *testing.T) {
	c := Collection{
		"k1": {Text: "a", Category: CategoryWork},
		"k2": {Text: "b", Category: CategoryTravel},
	}
	next, ok := Delete(c, "k1")
	if !ok || len(next) != 1 {
		t.Fatalf("expected one record left, got ok=%v len=%d", ok, len(next))
	}
	if _, exists := next["k1"]; exists {
		t.Fatal("deleted key still present")
	}
	if _, exists := next["k2"]; !exists {
		t.Fatal("unrelated key removed")
	}
}

func TestFilterReturnsOnlyActiveCategoryInKeyOrder(t *testing.T) {
	c := Collection{
		"003": {Text: "c", Category: CategoryWork},
		"001": {Text: "a", Category: CategoryWork},
		"002": {Text: "b", Category: CategoryTravel},
	}
	work := Filter(c, CategoryWork)
	if len(work) != 2 || work[0].Key != "001" || work[1].Key != "003" {
		t.Fatalf("unexpected work entries: %+v", work)
	}
	for _, e := range work {
		if e.ToDo.Category != CategoryWork {
			t.Fatalf("filter leaked category %s", e.ToDo.Category)
		}
	}
	travel := Filter(c, CategoryTravel)
	if len(travel) != 1 || travel[0].ToDo.Text != "b" {
		t.Fatalf("unexpected travel entries: %+v", travel)
	}
}

func TestCounts(t *testing.T) {
	c := Collection{
		"1": {Text: "a", Category: CategoryWork, Complete: true},
		"2": {Text: "b", Category: CategoryWork},
		"3": {Text: "c", Category: CategoryTravel, Complete: true},
	}
	done, total := Counts(c, CategoryWork)
	if done != 1 || total != 2 {
		t.Fatalf("unexpected work counts: %d/%d", done, total)
	}
}

func TestSequenceGeneratorSortsInIssueOrder(t *testing.T) {
	gen := &SequenceGenerator{Prefix: "todo-"}
	ids := make([]string, 0, 12)
	for i := 0; i < 12; i++ {
		id, err := gen.NewID()
		if err != nil {
			t.Fatalf("new id: %v", err)
		}
		ids = append(ids, id)
	}
	if !sort.StringsAreSorted(ids) {
		t.Fatalf("ids not sorted: %v", ids)
	}
	if !strings.HasPrefix(ids[0], "todo-") {
		t.Fatalf("missing prefix: %q", ids[0])
	}
}

func TestUUIDGeneratorIsUniqueAndOrdered(t *testing.T) {
	gen := UUIDGenerator{}
	seen := make(map[string]bool)
	prev := ""
	for i := 0; i < 50; i++ {
		id, err := gen.NewID()
		if err != nil {
			t.Fatalf("new id: %v", err)
		}
		if seen[id] {
			t.Fatalf("duplicate id %q", id)
		}
		seen[id] = true
		if prev != "" && id < prev {
			t.Fatalf("ids out of order: %q then %q", prev, id)
		}
		prev = id
	}
}
