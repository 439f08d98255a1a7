package espn

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// TeamLogoMap maps canonical team names to ESPN CDN abbreviations.
var TeamLogoMap = map[string]string{
	"Arizona Cardinals":     "ari",
	"Atlanta Falcons":       "atl",
	"Baltimore Ravens":      "bal",
	"Buffalo Bills":         "buf",
	"Carolina Panthers":     "car",
	"Chicago Bears":         "chi",
	"Cincinnati Bengals":    "cin",
	"Cleveland Browns":      "cle",
	"Dallas Cowboys":        "dal",
	"Denver Broncos":        "den",
	"Detroit Lions":         "det",
	"Green Bay Packers":     "gb",
	"Houston Texans":        "hou",
	"Indianapolis Colts":    "ind",
	"Jacksonville Jaguars":  "jac",
	"Kansas City Chiefs":    "kc",
	"Las Vegas Raiders":     "lv",
	"Los Angeles Chargers":  "lac",
	"Los Angeles Rams":      "lar",
	"Miami Dolphins":        "mia",
	"Minnesota Vikings":     "min",
	"New England Patriots":  "ne",
	"New Orleans Saints":    "no",
	"New York Giants":       "nyg",
	"New York Jets":         "nyj",
	"Philadelphia Eagles":   "phi",
	"Pittsburgh Steelers":   "pit",
	"San Francisco 49ers":   "sf",
	"Seattle Seahawks":      "sea",
	"Tampa Bay Buccaneers":  "tb",
	"Tennessee Titans":      "ten",
	"Washington Commanders": "wsh",
}

// TeamNames returns the canonical team names in map order.
func TeamNames() []string {
	names := make([]string, 0, len(TeamLogoMap))
	for name := range TeamLogoMap {
		names = append(names, name)
	}
	return names
}

// SetLogoBaseUrl points logo downloads somewhere else, for tests.
func (c *Client) SetLogoBaseUrl(base string) {
	c.logoBaseUrl = base
}

// FetchTeamLogo downloads a team logo into the cache directory once
// and returns the cached path on subsequent calls.
func (c *Client) FetchTeamLogo(ctx context.Context, cacheDir, teamName string) (string, error) {
	ctx, span := tracer.Start(ctx, "FetchTeamLogo")
	defer span.End()

	abbr, ok := TeamLogoMap[teamName]
	if !ok {
		return "", fmt.Errorf("no logo abbreviation for team %q", teamName)
	}

	if err := os.MkdirAll(cacheDir, 0755); err != nil {
		return "", err
	}
	path := filepath.Join(cacheDir, fmt.Sprintf("%s.png", abbr))
	if _, err := os.Stat(path); err == nil {
		return path, nil
	}

	res, err := c.Http.R().SetContext(ctx).
		Get(fmt.Sprintf("%s%s.png", c.logoBaseUrl, abbr))
	if err != nil {
		return "", err
	}
	if res.StatusCode() != 200 {
		return "", fmt.Errorf("download logo for %s: %s", teamName, res.Status())
	}
	if err := os.WriteFile(path, res.Body(), 0644); err != nil {
		return "", err
	}
	return path, nil
}
