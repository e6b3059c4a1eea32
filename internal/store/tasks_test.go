package store

import "testing"

func TestTaskFilterNormalize(t *testing.T) {
	tests := []struct {
		name        string
		in          TaskFilter
		wantPage    int
		wantPerPage int
	}{
		{"defaults", TaskFilter{}, 1, DefaultPerPage},
		{"negative page", TaskFilter{Page: -3, PerPage: 20}, 1, 20},
		{"zero per_page", TaskFilter{Page: 2, PerPage: 0}, 2, DefaultPerPage},
		{"per_page over cap", TaskFilter{Page: 1, PerPage: 500}, 1, MaxPerPage},
		{"within bounds", TaskFilter{Page: 7, PerPage: 100}, 7, 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := tt.in
			f.Normalize()
			if f.Page != tt.wantPage || f.PerPage != tt.wantPerPage {
				t.Errorf("Normalize() = page %d per_page %d, want %d/%d", f.Page, f.PerPage, tt.wantPage, tt.wantPerPage)
			}
		})
	}
}
