// Package espn scrapes player profile and team depth chart pages.
// Pages are fetched over plain HTTP; the interesting parts of the
// markup are server-rendered so no browser automation is involved.
package espn

import (
	"context"
	"fmt"
	"net/http/cookiejar"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"gridiron-backend/lib/telemetry"

	cloudflarebp "github.com/DaRealFreak/cloudflare-bp-go"
	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("scrapers/espn")

var ErrNoHeadshot = fmt.Errorf("no valid headshot url on the page")
var ErrEmptyDownload = fmt.Errorf("downloaded image is empty")

const LogoBaseUrl = "https://a.espncdn.com/i/teamlogos/nfl/500/"

const depthChartBaseUrl = "https://www.espn.com/nfl/team/depth/_/name/"

// DepthChartURL builds a team depth chart url from its abbreviation.
func DepthChartURL(abbr string) string {
	return depthChartBaseUrl + abbr
}

type Client struct {
	Http *resty.Client
	// overridable for tests
	logoBaseUrl string
}

func NewClient() (*Client, error) {
	client := resty.New()
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}
	client.SetCookieJar(jar)
	client.GetClient().Transport = cloudflarebp.AddCloudFlareByPass(client.GetClient().Transport)

	client.SetHeader("user-agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/123.0.0.0 Safari/537.36")
	client.SetTimeout(time.Second * 30)

	telemetry.InstrumentResty(client, "scrapers/espn/http")

	return &Client{Http: client, logoBaseUrl: LogoBaseUrl}, nil
}

var playerIdRegex = regexp.MustCompile(`/id/(\d+)`)

// PlayerUIDFromURL pulls the numeric player id out of a profile link
// like https://www.espn.com/nfl/player/_/id/4685720/bryce-young.
func PlayerUIDFromURL(link string) string {
	groups := playerIdRegex.FindStringSubmatch(link)
	if len(groups) < 2 {
		return ""
	}
	return groups[1]
}

func validImageUrl(src string) bool {
	return strings.HasPrefix(src, "http") && !strings.HasPrefix(src, "data:image/gif")
}

// DownloadHeadshot fetches the headshot into <dir>/<uid>.png and
// returns the file path. The caller is expected to remove the file
// once inference is done with it.
func (c *Client) DownloadHeadshot(ctx context.Context, imageUrl, dir, uid string) (string, error) {
	ctx, span := tracer.Start(ctx, "DownloadHeadshot")
	defer span.End()

	res, err := c.Http.R().SetContext(ctx).Get(imageUrl)
	if err != nil {
		return "", err
	}
	if res.StatusCode() != 200 {
		return "", fmt.Errorf("download headshot: %s", res.Status())
	}
	if len(res.Body()) == 0 {
		return "", ErrEmptyDownload
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	path := filepath.Join(dir, fmt.Sprintf("%s.png", uid))
	if err := os.WriteFile(path, res.Body(), 0644); err != nil {
		return "", err
	}
	return path, nil
}
