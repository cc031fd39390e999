package models

import "testing"

func TestPaginate(t *testing.T) {
	items := []int{1, 2, 3, 4, 5, 6, 7}

	tests := []struct {
		name     string
		page     int
		perPage  int
		want     []int
		current  int
		total    int
		hasPrev  bool
		hasNext  bool
	}{
		{"first page", 1, 3, []int{1, 2, 3}, 1, 3, false, true},
		{"last page", 3, 3, []int{7}, 3, 3, true, false},
		{"page past end clamps", 9, 3, []int{7}, 3, 3, true, false},
		{"zero page clamps", 0, 3, []int{1, 2, 3}, 1, 3, false, true},
		{"default per page", 1, 0, items, 1, 1, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, p := Paginate(items, tt.page, tt.perPage)
			if len(got) != len(tt.want) {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Fatalf("got %v, want %v", got, tt.want)
				}
			}
			if p.CurrentPage != tt.current || p.TotalPages != tt.total || p.HasPrev != tt.hasPrev || p.HasNext != tt.hasNext {
				t.Fatalf("pagination = %+v", p)
			}
		})
	}
}

func TestPaginateEmpty(t *testing.T) {
	got, p := Paginate([]string{}, 2, 5)
	if len(got) != 0 || p.TotalPages != 1 || p.CurrentPage != 1 {
		t.Fatalf("got %v, %+v", got, p)
	}
}

func TestWrap(t *testing.T) {
	tests := []struct{ i, n, want int }{
		{0, 4, 0},
		{4, 4, 0},
		{-1, 4, 3},
		{9, 4, 1},
		{3, 0, 0},
	}
	for _, tt := range tests {
		if got := Wrap(tt.i, tt.n); got != tt.want {
			t.Fatalf("Wrap(%d, %d) = %d, want %d", tt.i, tt.n, got, tt.want)
		}
	}
}

func TestTags(t *testing.T) {
	posts := []Post{
		{Slug: "a", Tags: []string{"web", "news"}},
		{Slug: "b", Tags: []string{"news"}},
	}
	tags := CollectTags(posts)
	if len(tags) != 2 || tags[0] != "news" || tags[1] != "web" {
		t.Fatalf("CollectTags() = %v", tags)
	}
	if got := FilterByTag(posts, "web"); len(got) != 1 || got[0].Slug != "a" {
		t.Fatalf("FilterByTag(web) = %v", got)
	}
	if got := FilterByTag(posts, ""); len(got) != 2 {
		t.Fatalf("empty tag should keep all posts")
	}
}
