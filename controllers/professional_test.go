package controllers

import "testing"

func TestClampPagination(t *testing.T) {
	cases := []struct {
		name      string
		page      int
		limit     int
		wantPage  int
		wantLimit int
	}{
		{"defaults pass through", 1, 10, 1, 10},
		{"zero limit falls back", 1, 0, 1, 10},
		{"zero page falls back", 0, 10, 1, 10},
		{"negative values fall back", -3, -5, 1, 10},
		{"valid values kept", 4, 25, 4, 25},
	}

	for _, tc := range cases {
		page, limit := clampPagination(tc.page, tc.limit)
		if page != tc.wantPage || limit != tc.wantLimit {
			t.Fatalf("%s: clampPagination(%d, %d) = (%d, %d), want (%d, %d)",
				tc.name, tc.page, tc.limit, page, limit, tc.wantPage, tc.wantLimit)
		}
	}
}
