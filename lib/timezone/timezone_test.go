package timezone

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSeasonYear(t *testing.T) {
	cases := []struct {
		now    time.Time
		expect int
	}{
		{time.Date(2025, time.September, 4, 0, 0, 0, 0, Location), 2025},
		{time.Date(2026, time.January, 11, 0, 0, 0, 0, Location), 2025},
		{time.Date(2026, time.February, 8, 0, 0, 0, 0, Location), 2025},
		{time.Date(2026, time.March, 1, 0, 0, 0, 0, Location), 2026},
	}
	for _, test := range cases {
		require.Equal(t, test.expect, SeasonYear(test.now))
	}
}
