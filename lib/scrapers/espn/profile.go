package espn

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"

	"gridiron-backend/lib/htmlutil"

	"github.com/PuerkitoBio/goquery"
)

type Bio struct {
	HeightWeight string
	Birthdate    string
	College      string
	DraftInfo    string
	Status       string
}

type Profile struct {
	HeadshotUrl string
	Bio         Bio
	// false when the bio list was missing from the page entirely
	HasBio bool
}

// FetchProfile scrapes a player profile page for the headshot url and
// the bio list. A page without a headshot is not an error; callers
// distinguish "no headshot" (empty HeadshotUrl) from a failed fetch.
func (c *Client) FetchProfile(ctx context.Context, playerUrl string) (Profile, error) {
	ctx, span := tracer.Start(ctx, "FetchProfile")
	defer span.End()

	res, err := c.Http.R().SetContext(ctx).Get(playerUrl)
	if err != nil {
		return Profile{}, err
	}
	if res.StatusCode() != 200 {
		return Profile{}, fmt.Errorf("fetch profile: %s", res.Status())
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewBuffer(res.Body()))
	if err != nil {
		return Profile{}, err
	}
	return parseProfile(ctx, doc), nil
}

func parseProfile(ctx context.Context, doc *goquery.Document) Profile {
	var profile Profile

	doc.Find("div.PlayerHeader__Image figure.PlayerHeader__HeadShot img").
		EachWithBreak(func(_ int, img *goquery.Selection) bool {
			src := img.AttrOr("src", "")
			if validImageUrl(src) {
				profile.HeadshotUrl = src
				return false
			}
			return true
		})
	if profile.HeadshotUrl == "" {
		slog.DebugContext(ctx, "no headshot url on profile page")
	}

	bioList := doc.Find("ul.PlayerHeader__Bio_List")
	if bioList.Length() == 0 {
		slog.WarnContext(ctx, "profile page has no bio list")
		return profile
	}
	profile.HasBio = true

	bioList.Find("li").Each(func(_ int, li *goquery.Selection) {
		labelDiv := li.Find("div.ttu").First()
		valueDiv := li.Find("div.fw-medium").First()
		if labelDiv.Length() == 0 || valueDiv.Length() == 0 {
			return
		}

		label := htmlutil.CleanText(labelDiv)
		value := htmlutil.CleanText(valueDiv)

		switch label {
		case "HT/WT":
			profile.Bio.HeightWeight = value
		case "Birthdate":
			profile.Bio.Birthdate = value
		case "College":
			// prefer the college name from the anchor when present,
			// the raw text can include trailing metadata
			link := valueDiv.Find("a.AnchorLink").First()
			if link.Length() > 0 {
				value = htmlutil.CleanText(link)
			}
			profile.Bio.College = value
		case "Draft Info":
			profile.Bio.DraftInfo = value
		case "Status":
			status := valueDiv.Find("span.TextStatus").First()
			if status.Length() > 0 {
				value = htmlutil.CleanText(status)
			}
			profile.Bio.Status = value
		}
	})

	return profile
}
