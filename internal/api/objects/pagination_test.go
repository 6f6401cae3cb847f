package objects

import "testing"

func TestParsePageLimit(t *testing.T) {
	tests := []struct {
		name      string
		page      string
		limit     string
		wantPage  int
		wantLimit int
		wantErr   bool
	}{
		{
			name:      "defaults when absent",
			page:      "",
			limit:     "",
			wantPage:  1,
			wantLimit: 10,
		},
		{
			name:      "explicit values",
			page:      "3",
			limit:     "25",
			wantPage:  3,
			wantLimit: 25,
		},
		{
			name:    "zero page rejected",
			page:    "0",
			limit:   "10",
			wantErr: true,
		},
		{
			name:    "negative limit rejected",
			page:    "1",
			limit:   "-5",
			wantErr: true,
		},
		{
			name:    "non-numeric page rejected",
			page:    "abc",
			limit:   "10",
			wantErr: true,
		},
		{
			name:    "non-numeric limit rejected",
			page:    "1",
			limit:   "ten",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, limit, err := ParsePageLimit(tt.page, tt.limit)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if page != tt.wantPage || limit != tt.wantLimit {
				t.Errorf("got (%d, %d), want (%d, %d)", page, limit, tt.wantPage, tt.wantLimit)
			}
		})
	}
}

func TestOffset(t *testing.T) {
	tests := []struct {
		page, limit, want int
	}{
		{1, 10, 0},
		{2, 10, 10},
		{3, 25, 50},
		{1, 1, 0},
	}
	for _, tt := range tests {
		if got := Offset(tt.page, tt.limit); got != tt.want {
			t.Errorf("Offset(%d, %d) = %d, want %d", tt.page, tt.limit, got, tt.want)
		}
	}
}

func TestNewPagination(t *testing.T) {
	tests := []struct {
		name      string
		page      int
		limit     int
		total     int64
		wantPages int64
	}{
		{"exact multiple", 1, 10, 100, 10},
		{"remainder rounds up", 1, 10, 101, 11},
		{"fewer rows than limit", 1, 10, 3, 1},
		{"zero rows zero pages", 1, 10, 0, 0},
		{"limit one", 2, 1, 7, 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPagination(tt.page, tt.limit, tt.total)
			if p.TotalPages != tt.wantPages {
				t.Errorf("TotalPages = %d, want %d", p.TotalPages, tt.wantPages)
			}
			if p.Page != tt.page || p.Limit != tt.limit || p.TotalPosts != tt.total {
				t.Errorf("pagination echo mismatch: %+v", p)
			}
		})
	}
}
