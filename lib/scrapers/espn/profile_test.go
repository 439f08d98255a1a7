package espn

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const profileFixture = `<!DOCTYPE html>
<html><body>
<div class="PlayerHeader__Main">
  <div class="PlayerHeader__Image">
    <figure class="PlayerHeader__HeadShot">
      <img alt="" src="data:image/gif;base64,R0lGODlhAQABAAAAACH5BAEK">
      <img alt="Bryce Young" src="https://a.espncdn.com/i/headshots/nfl/players/full/4685720.png">
    </figure>
  </div>
  <ul class="PlayerHeader__Bio_List">
    <li><div class="ttu">HT/WT</div><div class="fw-medium clr-black">5' 10", 204 lbs</div></li>
    <li><div class="ttu">Birthdate</div><div class="fw-medium clr-black">7/25/2001 (24)</div></li>
    <li><div class="ttu">College</div>
      <div class="fw-medium clr-black"><a class="AnchorLink" href="/college/alabama">Alabama</a></div></li>
    <li><div class="ttu">Draft Info</div><div class="fw-medium clr-black">2023: Rd 1, Pk 1 (CAR)</div></li>
    <li><div class="ttu">Status</div>
      <div class="fw-medium clr-black"><span class="TextStatus TextStatus--green">Active</span></div></li>
  </ul>
</div>
</body></html>`

const profileFixtureNoBio = `<!DOCTYPE html>
<html><body>
<div class="PlayerHeader__Image">
  <figure class="PlayerHeader__HeadShot">
    <img alt="" src="data:image/gif;base64,R0lGODlhAQABAAAAACH5BAEK">
  </figure>
</div>
</body></html>`

func TestFetchProfile(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/nfl/player/_/id/4685720/bryce-young":
			_, _ = w.Write([]byte(profileFixture))
		case "/nfl/player/_/id/999/no-bio":
			_, _ = w.Write([]byte(profileFixtureNoBio))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	client, err := NewClient()
	require.NoError(t, err)

	profile, err := client.FetchProfile(context.Background(), server.URL+"/nfl/player/_/id/4685720/bryce-young")
	require.NoError(t, err)

	assert.Equal(t, "https://a.espncdn.com/i/headshots/nfl/players/full/4685720.png", profile.HeadshotUrl)
	assert.True(t, profile.HasBio)
	assert.Equal(t, Bio{
		HeightWeight: `5' 10", 204 lbs`,
		Birthdate:    "7/25/2001 (24)",
		College:      "Alabama",
		DraftInfo:    "2023: Rd 1, Pk 1 (CAR)",
		Status:       "Active",
	}, profile.Bio)

	profile, err = client.FetchProfile(context.Background(), server.URL+"/nfl/player/_/id/999/no-bio")
	require.NoError(t, err)
	assert.Equal(t, "", profile.HeadshotUrl)
	assert.False(t, profile.HasBio)

	_, err = client.FetchProfile(context.Background(), server.URL+"/nfl/player/_/id/404/gone")
	assert.Error(t, err)
}
