package search

import "testing"

func testCorpus() []Document {
	return []Document{
		{ID: 1, Title: "Gardening Tips", Excerpt: "Grow better tomatoes this spring", Slug: "gardening-tips"},
		{ID: 2, Title: "Kitchen Remodeling on a Budget", Excerpt: "Cabinets, counters and costs", Slug: "kitchen-remodeling"},
		{ID: 3, Title: "Travel Guide: Lisbon", Excerpt: "Three days in Portugal", Slug: "travel-guide-lisbon"},
	}
}

func TestSearchTypoTolerant(t *testing.T) {
	idx := NewIndex(testCorpus(), 0)

	results := idx.Search("gradn")
	if len(results) == 0 {
		t.Fatal("expected typo query to match Gardening Tips")
	}
	if results[0].Slug != "gardening-tips" {
		t.Errorf("best match = %q, want gardening-tips", results[0].Slug)
	}
}

func TestSearchExactSubstringRanksFirst(t *testing.T) {
	idx := NewIndex(testCorpus(), 0)

	results := idx.Search("kitchen")
	if len(results) == 0 {
		t.Fatal("expected a match for kitchen")
	}
	if results[0].Slug != "kitchen-remodeling" {
		t.Errorf("best match = %q, want kitchen-remodeling", results[0].Slug)
	}
}

func TestSearchMatchesExcerpt(t *testing.T) {
	idx := NewIndex(testCorpus(), 0)

	results := idx.Search("tomatoes")
	if len(results) != 1 || results[0].ID != 1 {
		t.Fatalf("expected excerpt match on post 1, got %+v", results)
	}
}

func TestSearchNoMatchIsEmptyNotError(t *testing.T) {
	idx := NewIndex(testCorpus(), 0)

	results := idx.Search("zzz-no-match-zzz")
	if results == nil {
		t.Fatal("expected empty slice, got nil")
	}
	if len(results) != 0 {
		t.Errorf("expected no matches, got %d", len(results))
	}
}

func TestSearchEmptyQuery(t *testing.T) {
	idx := NewIndex(testCorpus(), 0)

	if results := idx.Search("   "); len(results) != 0 {
		t.Errorf("blank query should match nothing, got %d results", len(results))
	}
}

func TestSearchCaseInsensitive(t *testing.T) {
	idx := NewIndex(testCorpus(), 0)

	results := idx.Search("LISBON")
	if len(results) == 0 || results[0].ID != 3 {
		t.Fatalf("expected case-insensitive match on post 3, got %+v", results)
	}
}
