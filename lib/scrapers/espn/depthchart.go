package espn

import (
	"bytes"
	"context"
	"fmt"

	"gridiron-backend/lib/htmlutil"

	"github.com/PuerkitoBio/goquery"
)

type DepthSlot struct {
	TeamName   string
	Position   string
	Slot       int
	PlayerName string
	PlayerUID  string
	PlayerURL  string
}

// FetchDepthChart scrapes a team depth chart page. Each responsive
// table pairs a fixed left column of positions with a scrolling table
// of depth slots; empty slots come back as "-" placeholders with no
// player link.
func (c *Client) FetchDepthChart(ctx context.Context, chartUrl, teamName string) ([]DepthSlot, error) {
	ctx, span := tracer.Start(ctx, "FetchDepthChart")
	defer span.End()

	res, err := c.Http.R().SetContext(ctx).Get(chartUrl)
	if err != nil {
		return nil, err
	}
	if res.StatusCode() != 200 {
		return nil, fmt.Errorf("fetch depth chart: %s", res.Status())
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewBuffer(res.Body()))
	if err != nil {
		return nil, err
	}

	var slots []DepthSlot
	doc.Find("div.ResponsiveTable").Each(func(_ int, section *goquery.Selection) {
		var positions []string
		section.Find("table.Table--fixed-left tbody tr").Each(func(_ int, tr *goquery.Selection) {
			positions = append(positions, htmlutil.CleanText(tr.Find("td").First()))
		})

		section.Find("div.Table__ScrollerWrapper tbody tr").Each(func(i int, tr *goquery.Selection) {
			if i >= len(positions) {
				return
			}
			position := positions[i]

			tr.Find("td").Each(func(slot int, td *goquery.Selection) {
				name := htmlutil.CleanText(td)
				if name == "" {
					return
				}

				entry := DepthSlot{
					TeamName:   teamName,
					Position:   position,
					Slot:       slot + 1,
					PlayerName: name,
				}
				link := td.Find("a.AnchorLink").First()
				if link.Length() > 0 {
					href := link.AttrOr("href", "")
					entry.PlayerURL = href
					entry.PlayerUID = PlayerUIDFromURL(href)
					entry.PlayerName = htmlutil.CleanText(link)
				}
				slots = append(slots, entry)
			})
		})
	})

	return slots, nil
}
