package pagination

import (
	"math"
	"net/http"
	"net/http/httptest"
	"testing"
)

func seq(n int) []int {
	items := make([]int, n)
	for i := range items {
		items[i] = i + 1
	}
	return items
}

func TestPaginate(t *testing.T) {
	items := seq(23)

	cases := []struct {
		name      string
		page      int
		wantLen   int
		wantFirst int
	}{
		{"FirstPage", 1, 10, 1},
		{"SecondPage", 2, 10, 11},
		{"PartialLastPage", 3, 3, 21},
		{"BeyondData", 4, 0, 0},
		{"ZeroPage", 0, 0, 0},
		{"NegativePage", -1, 0, 0},
		{"MaxIntPage", math.MaxInt, 0, 0},
		{"MinIntPage", math.MinInt, 0, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Paginate(items, tc.page, DefaultPerPage)
			if len(got) != tc.wantLen {
				t.Fatalf("len = %d, want %d", len(got), tc.wantLen)
			}
			if tc.wantLen > 0 && got[0] != tc.wantFirst {
				t.Errorf("first = %d, want %d", got[0], tc.wantFirst)
			}
			if got == nil {
				t.Errorf("Paginate must return an empty slice, not nil")
			}
		})
	}
}

func TestPaginateSizeProperty(t *testing.T) {
	for total := 0; total <= 31; total++ {
		items := seq(total)
		for page := 1; page <= 5; page++ {
			want := max(0, min(10, total-(page-1)*10))
			if got := len(Paginate(items, page, 10)); got != want {
				t.Fatalf("total=%d page=%d: len = %d, want %d", total, page, got, want)
			}
		}
	}
}

func TestPaginateDefaultsPerPage(t *testing.T) {
	if got := len(Paginate(seq(15), 1, 0)); got != DefaultPerPage {
		t.Errorf("len = %d, want %d", got, DefaultPerPage)
	}
}

func TestPageFromRequest(t *testing.T) {
	cases := map[string]int{
		"/api/questions":          1,
		"/api/questions?page=3":   3,
		"/api/questions?page=abc": 1,
		"/api/questions?page=-2":  -2,
		"/api/questions?page=":    1,
	}

	for target, want := range cases {
		req := httptest.NewRequest(http.MethodGet, target, nil)
		if got := PageFromRequest(req); got != want {
			t.Errorf("PageFromRequest(%q) = %d, want %d", target, got, want)
		}
	}
}
