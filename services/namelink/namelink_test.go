package namelink

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
)

func TestCreateLinks(t *testing.T) {
	testCases := []struct {
		scraped   []string
		canonical []string
		// Correlation is not asserted, similarity scores are
		// implementation detail
		expected []Link
	}{
		{
			scraped:   []string{"Carolina Panthers", "Atlanta Falcons", "Chicago Bears"},
			canonical: []string{"Carolina Panthers", "Atlanta Falcons"},
			expected: []Link{
				{Scraped: "Carolina Panthers", Canonical: "Carolina Panthers", Correlation: 1},
				{Scraped: "Atlanta Falcons", Canonical: "Atlanta Falcons", Correlation: 1},
			},
		},
		{
			scraped:   []string{"San Francisco 49Ers", "Carolina Panthers"},
			canonical: []string{"Carolina Panthers", "San Francisco 49ers", "Chicago Bears"},
			expected: []Link{
				{Scraped: "Carolina Panthers", Canonical: "Carolina Panthers", Correlation: 1},
				{Scraped: "San Francisco 49Ers", Canonical: "San Francisco 49ers"},
			},
		},
		{
			scraped:   []string{"Carolina Panthers"},
			canonical: []string{},
			expected:  nil,
		},
		{
			scraped:   []string{},
			canonical: []string{},
			expected:  nil,
		},
	}

	for _, test := range testCases {
		links := CreateLinks(test.scraped, test.canonical)
		diff := cmp.Diff(
			test.expected,
			links,
			cmpopts.SortSlices(func(a, b Link) bool {
				return a.Scraped < b.Scraped
			}),
			cmpopts.IgnoreFields(Link{}, "Correlation"),
		)
		if diff != "" {
			t.Fatal(diff)
		}
	}
}

func TestCanonicalize(t *testing.T) {
	mapping := Canonicalize(
		[]string{"San Francisco 49Ers", "Carolina Panthers", "XFL Dragons"},
		[]string{"San Francisco 49ers", "Carolina Panthers"},
		0.9,
	)

	assert.Equal(t, "San Francisco 49ers", mapping["San Francisco 49Ers"])
	assert.Equal(t, "Carolina Panthers", mapping["Carolina Panthers"])
	// nothing close enough, keeps its own name
	assert.Equal(t, "XFL Dragons", mapping["XFL Dragons"])
}
