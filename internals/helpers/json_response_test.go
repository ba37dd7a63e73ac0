package helper

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func resolvePagingFor(t *testing.T, target string, defaultPerPage, maxPerPage int) Paging {
	t.Helper()

	var got Paging
	app := fiber.New()
	app.Get("/items", func(c *fiber.Ctx) error {
		got = ResolvePaging(c, defaultPerPage, maxPerPage)
		return c.SendStatus(fiber.StatusOK)
	})

	resp, err := app.Test(httptest.NewRequest("GET", target, nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer resp.Body.Close()
	return got
}

func TestResolvePaging(t *testing.T) {
	cases := []struct {
		name   string
		target string
		want   Paging
	}{
		{"defaults", "/items", Paging{Page: 1, PerPage: 20, Offset: 0, Limit: 20}},
		{"explicit page & per_page", "/items?page=3&per_page=10", Paging{Page: 3, PerPage: 10, Offset: 20, Limit: 10}},
		{"limit alias", "/items?page=2&limit=15", Paging{Page: 2, PerPage: 15, Offset: 15, Limit: 15}},
		{"per_page wins over limit", "/items?per_page=10&limit=50", Paging{Page: 1, PerPage: 10, Offset: 0, Limit: 10}},
		{"clamp to max", "/items?per_page=500", Paging{Page: 1, PerPage: 100, Offset: 0, Limit: 100}},
		{"invalid values fall back", "/items?page=abc&per_page=-5", Paging{Page: 1, PerPage: 20, Offset: 0, Limit: 20}},
		{"page zero becomes one", "/items?page=0", Paging{Page: 1, PerPage: 20, Offset: 0, Limit: 20}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := resolvePagingFor(t, tc.target, 20, 100)
			if got != tc.want {
				t.Errorf("got %+v, want %+v", got, tc.want)
			}
		})
	}
}

func TestBuildPaginationFromPage(t *testing.T) {
	p := BuildPaginationFromPage(45, 2, 20, 20)
	if p.TotalPages != 3 {
		t.Errorf("expected 3 total pages, got %d", p.TotalPages)
	}
	if !p.HasNext || !p.HasPrev {
		t.Errorf("page 2 of 3 should have next and prev, got %+v", p)
	}

	last := BuildPaginationFromPage(45, 3, 20, 5)
	if last.HasNext {
		t.Errorf("last page should not have next, got %+v", last)
	}
	if last.Count != 5 {
		t.Errorf("expected count 5 on last page, got %d", last.Count)
	}

	empty := BuildPaginationFromPage(0, 1, 20, 0)
	if empty.TotalPages != 0 || empty.HasNext || empty.HasPrev {
		t.Errorf("empty result should have no pages, got %+v", empty)
	}
}
