package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
)

func newTestStore(t *testing.T, items ...Item) *Store {
	t.Helper()

	st, err := Open(filepath.Join(t.TempDir(), "inventory.db"), false)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { st.Close() })

	ctx := context.Background()
	if err := st.Reset(ctx); err != nil {
		t.Fatalf("reset: %v", err)
	}
	if err := st.BulkInsert(ctx, items); err != nil {
		t.Fatalf("bulk insert: %v", err)
	}
	return st
}

func names(items []Item) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.Name
	}
	return out
}

func equal(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func strPtr(s string) *string     { return &s }
func floatPtr(f float64) *float64 { return &f }

var pantry = []Item{
	{Name: "Sugar", Quantity: 1500, Unit: "g", Category: "Sugar & salt"},
	{Name: "Chickpeas", Quantity: 5, Unit: "can", Category: "Canned goods"},
	{Name: "Sea salt", Quantity: 500, Unit: "g", Category: "Sugar & salt"},
	{Name: "Harissa", Quantity: 1, Unit: "jar", Category: "Spices & sauces"},
	{Name: "Canned tomatoes", Quantity: 5, Unit: "can", Category: "Canned goods"},
}

func TestListOrdersByCategoryThenName(t *testing.T) {
	st := newTestStore(t, pantry...)

	items, err := st.List(context.Background(), "")
	if err != nil {
		t.Fatalf("list: %v", err)
	}

	want := []string{"Canned tomatoes", "Chickpeas", "Harissa", "Sea salt", "Sugar"}
	if got := names(items); !equal(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

func TestListCategoryFilter(t *testing.T) {
	st := newTestStore(t, pantry...)
	ctx := context.Background()

	tests := []struct {
		filter string
		want   []string
	}{
		{"Sugar & salt", []string{"Sea salt", "Sugar"}},
		{"canned", []string{"Canned tomatoes", "Chickpeas"}},
		{"&", []string{"Harissa", "Sea salt", "Sugar"}},
		{"%", nil},
		{"Frozen", nil},
	}

	for _, tt := range tests {
		items, err := st.List(ctx, tt.filter)
		if err != nil {
			t.Fatalf("list %q: %v", tt.filter, err)
		}
		if got := names(items); !equal(got, tt.want) {
			t.Errorf("filter %q: expected %v, got %v", tt.filter, tt.want, got)
		}
	}
}

func TestAddAssignsFreshID(t *testing.T) {
	st := newTestStore(t, pantry...)
	ctx := context.Background()

	honey := Item{Name: "Honey", Quantity: 1, Unit: "jar", Category: "Condiments"}
	if err := st.Add(ctx, &honey); err != nil {
		t.Fatalf("add: %v", err)
	}

	all, _ := st.List(ctx, "")
	seen := 0
	for _, it := range all {
		if it.ID == honey.ID {
			seen++
		}
	}
	if seen != 1 {
		t.Fatalf("Expected id %d to be unique, seen %d times", honey.ID, seen)
	}

	got, err := st.Get(ctx, int64(honey.ID))
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got != honey {
		t.Errorf("Expected %+v, got %+v", honey, got)
	}
}

func TestSearchIgnoresCase(t *testing.T) {
	st := newTestStore(t, pantry...)
	ctx := context.Background()

	honey := Item{Name: "Honey", Quantity: 1, Unit: "jar", Category: "Condiments"}
	if err := st.Add(ctx, &honey); err != nil {
		t.Fatalf("add: %v", err)
	}

	for _, q := range []string{"hon", "HON", "Hon"} {
		items, err := st.Search(ctx, q)
		if err != nil {
			t.Fatalf("search %q: %v", q, err)
		}
		if len(items) != 1 || items[0] != honey {
			t.Errorf("search %q: expected only Honey, got %+v", q, items)
		}
	}

	items, err := st.Search(ctx, "salt")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if want := []string{"Sea salt"}; !equal(names(items), want) {
		t.Errorf("Expected %v, got %v", want, names(items))
	}
}

func TestUpdateIsPartial(t *testing.T) {
	st := newTestStore(t, pantry...)
	ctx := context.Background()

	orig, err := st.Get(ctx, 1)
	if err != nil {
		t.Fatalf("get: %v", err)
	}

	got, err := st.Update(ctx, 1, Patch{Quantity: floatPtr(5)})
	if err != nil {
		t.Fatalf("update: %v", err)
	}

	want := orig
	want.Quantity = 5
	if got != want {
		t.Errorf("Expected %+v, got %+v", want, got)
	}

	got, err = st.Update(ctx, 1, Patch{Quantity: floatPtr(0), Category: strPtr("Baking")})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if got.Quantity != 0 || got.Category != "Baking" || got.Name != orig.Name || got.Unit != orig.Unit {
		t.Errorf("Unexpected item after update: %+v", got)
	}
}

func TestUpdateErrors(t *testing.T) {
	st := newTestStore(t, pantry...)
	ctx := context.Background()

	if _, err := st.Update(ctx, 9999, Patch{Name: strPtr("x")}); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
	if _, err := st.Update(ctx, 9999, Patch{}); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound for missing id with empty patch, got %v", err)
	}
	if _, err := st.Update(ctx, 1, Patch{}); !errors.Is(err, ErrNothingToUpdate) {
		t.Errorf("Expected ErrNothingToUpdate, got %v", err)
	}
}

func TestRemoveIsFinal(t *testing.T) {
	st := newTestStore(t, pantry...)
	ctx := context.Background()

	removed, err := st.Remove(ctx, 3)
	if err != nil {
		t.Fatalf("remove: %v", err)
	}
	if removed.Name != "Sea salt" {
		t.Errorf("Expected to remove Sea salt, got %s", removed.Name)
	}

	if _, err := st.Get(ctx, 3); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound after remove, got %v", err)
	}
	if _, err := st.Remove(ctx, 3); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected second remove to miss, got %v", err)
	}
	if _, err := st.Update(ctx, 3, Patch{Name: strPtr("x")}); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected update of removed id to miss, got %v", err)
	}
	items, _ := st.Search(ctx, "Sea salt")
	if len(items) != 0 {
		t.Errorf("Expected no search hits, got %+v", items)
	}
}

func TestCountByCategory(t *testing.T) {
	st := newTestStore(t, pantry...)

	counts, err := st.CountByCategory(context.Background())
	if err != nil {
		t.Fatalf("count: %v", err)
	}

	want := []CategoryCount{
		{Category: "Canned goods", Count: 2},
		{Category: "Spices & sauces", Count: 1},
		{Category: "Sugar & salt", Count: 2},
	}
	if len(counts) != len(want) {
		t.Fatalf("Expected %d categories, got %+v", len(want), counts)
	}
	for i := range want {
		if counts[i] != want[i] {
			t.Errorf("Expected %+v at %d, got %+v", want[i], i, counts[i])
		}
	}
}

func TestResetDropsData(t *testing.T) {
	st := newTestStore(t, pantry...)
	ctx := context.Background()

	if err := st.Reset(ctx); err != nil {
		t.Fatalf("reset: %v", err)
	}
	items, err := st.List(ctx, "")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(items) != 0 {
		t.Errorf("Expected empty table after reset, got %d rows", len(items))
	}
}

func TestMissingTableSurfacesError(t *testing.T) {
	st, err := Open(filepath.Join(t.TempDir(), "fresh.db"), false)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer st.Close()

	if _, err := st.List(context.Background(), ""); err == nil {
		t.Error("Expected an error listing an unseeded file")
	}
}
