package fingerprint

import (
	"fmt"
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func sampleItems() []Item {
	return []Item{
		{ID: "a1", Title: "Go blog", Type: "link", URL: "https://go.dev/blog"},
		{ID: "b2", Title: "Meeting notes", Type: "note", Content: "agenda items"},
		{ID: "c3", Title: "Diagram", Type: "image", URL: "https://cdn.example.com/d.png"},
	}
}

// 验证摘要与条目顺序无关

func TestProperty_ComputeOrderIndependence(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	properties.Property("any permutation yields the same digest", prop.ForAll(
		func(seed []int) bool {
			items := sampleItems()
			// 根据种子构造一个排列
			permuted := make([]Item, 0, len(items))
			remaining := append([]Item(nil), items...)
			for _, s := range seed {
				if len(remaining) == 0 {
					break
				}
				idx := s % len(remaining)
				if idx < 0 {
					idx = -idx
				}
				permuted = append(permuted, remaining[idx])
				remaining = append(remaining[:idx], remaining[idx+1:]...)
			}
			permuted = append(permuted, remaining...)

			return Compute(items) == Compute(permuted)
		},
		gen.SliceOfN(3, gen.Int()),
	))

	properties.TestingRun(t)
}

// 验证投影字段变更影响摘要，非投影字段不影响

func TestProperty_ComputeFieldSensitivity(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	properties.Property("changing a projected field changes the digest", prop.ForAll(
		func(suffix string) bool {
			items := sampleItems()
			base := Compute(items)

			changed := append([]Item(nil), items...)
			changed[0].Title = changed[0].Title + "-" + suffix
			return Compute(changed) != base
		},
		gen.AlphaString().SuchThat(func(s string) bool { return len(s) > 0 }),
	))

	properties.TestingRun(t)
}

func TestComputeEmptyCollection(t *testing.T) {
	digest := Compute(nil)
	if digest == "" {
		t.Fatal("empty collection must produce a digest, not an empty string")
	}
	if digest != Compute([]Item{}) {
		t.Error("nil and empty slice should hash identically")
	}
	if len(digest) != 64 {
		t.Errorf("digest length = %d, want 64 hex chars", len(digest))
	}
}

func TestComputeSensitivity(t *testing.T) {
	base := sampleItems()
	baseDigest := Compute(base)

	tests := []struct {
		name       string
		mutate     func(items []Item)
		wantChange bool
	}{
		{
			name:       "title change",
			mutate:     func(items []Item) { items[0].Title = "Changed" },
			wantChange: true,
		},
		{
			name:       "type change",
			mutate:     func(items []Item) { items[0].Type = "note" },
			wantChange: true,
		},
		{
			name:       "url change",
			mutate:     func(items []Item) { items[0].URL = "https://example.org" },
			wantChange: true,
		},
		{
			name:       "content change",
			mutate:     func(items []Item) { items[1].Content = "new agenda" },
			wantChange: true,
		},
		{
			name:       "no change",
			mutate:     func(items []Item) {},
			wantChange: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items := append([]Item(nil), base...)
			tt.mutate(items)
			changed := Compute(items) != baseDigest
			if changed != tt.wantChange {
				t.Errorf("digest changed = %v, want %v", changed, tt.wantChange)
			}
		})
	}
}

func TestDiffNoOp(t *testing.T) {
	items := sampleItems()
	diff := Diff(items, items)
	if diff.HasChanges {
		t.Errorf("Diff(items, items).HasChanges = true, want false: %+v", diff)
	}
}

func TestDiffDisjointSets(t *testing.T) {
	old := []Item{
		{ID: "o1", Title: "one", Type: "note"},
		{ID: "o2", Title: "two", Type: "note"},
	}
	new := []Item{
		{ID: "n1", Title: "three", Type: "link"},
	}

	diff := Diff(old, new)

	if len(diff.Added) != 1 || diff.Added[0] != "n1" {
		t.Errorf("Added = %v, want [n1]", diff.Added)
	}
	if len(diff.Removed) != 2 {
		t.Errorf("Removed = %v, want [o1 o2]", diff.Removed)
	}
	if len(diff.Modified) != 0 {
		t.Errorf("Modified = %v, want empty", diff.Modified)
	}
	if !diff.HasChanges {
		t.Error("HasChanges = false, want true")
	}
}

func TestDiffModifiedFields(t *testing.T) {
	tests := []struct {
		name         string
		mutate       func(item *Item)
		wantModified bool
	}{
		{"title", func(i *Item) { i.Title = "new title" }, true},
		{"content", func(i *Item) { i.Content = "new content" }, true},
		{"url", func(i *Item) { i.URL = "https://new.example.com" }, true},
		{"identical", func(i *Item) {}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			old := sampleItems()
			new := append([]Item(nil), old...)
			tt.mutate(&new[0])

			diff := Diff(old, new)
			gotModified := len(diff.Modified) == 1 && diff.Modified[0] == old[0].ID
			if gotModified != tt.wantModified {
				t.Errorf("modified detection = %v, want %v (diff %+v)", gotModified, tt.wantModified, diff)
			}
		})
	}
}

func TestSummarize(t *testing.T) {
	tests := []struct {
		name string
		diff DiffResult
		want string
	}{
		{
			name: "no changes",
			diff: DiffResult{},
			want: "no changes",
		},
		{
			name: "added and modified",
			diff: DiffResult{Added: []string{"a", "b", "c"}, Modified: []string{"d"}, HasChanges: true},
			want: "3 added, 1 modified",
		},
		{
			name: "removed only",
			diff: DiffResult{Removed: []string{"x"}, HasChanges: true},
			want: "1 removed",
		},
		{
			name: "all three in fixed order",
			diff: DiffResult{Added: []string{"a"}, Modified: []string{"b"}, Removed: []string{"c"}, HasChanges: true},
			want: "1 added, 1 modified, 1 removed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Summarize(tt.diff); got != tt.want {
				t.Errorf("Summarize() = %q, want %q", got, tt.want)
			}
		})
	}
}

// 验证 diff 在随机 ID 集合下的完备性

func TestProperty_DiffCompleteness(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	properties.Property("added/removed cover exactly the disjoint ids", prop.ForAll(
		func(oldCount, newCount int) bool {
			var old, new []Item
			for i := 0; i < oldCount; i++ {
				old = append(old, Item{ID: fmt.Sprintf("old-%d", i), Type: "note"})
			}
			for i := 0; i < newCount; i++ {
				new = append(new, Item{ID: fmt.Sprintf("new-%d", i), Type: "note"})
			}

			diff := Diff(old, new)
			if len(diff.Added) != newCount || len(diff.Removed) != oldCount {
				return false
			}
			for _, id := range diff.Added {
				if !strings.HasPrefix(id, "new-") {
					return false
				}
			}
			for _, id := range diff.Removed {
				if !strings.HasPrefix(id, "old-") {
					return false
				}
			}
			return diff.HasChanges == (oldCount > 0 || newCount > 0)
		},
		gen.IntRange(0, 20),
		gen.IntRange(0, 20),
	))

	properties.TestingRun(t)
}
