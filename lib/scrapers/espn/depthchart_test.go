package espn

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

const depthChartFixture = `<!DOCTYPE html>
<html><body>
<div class="ResponsiveTable">
  <div class="Table__Title">Offense</div>
  <table class="Table Table--align-right Table--fixed Table--fixed-left">
    <tbody class="Table__TBODY">
      <tr class="Table__TR"><td class="Table__TD">QB</td></tr>
      <tr class="Table__TR"><td class="Table__TD">RB</td></tr>
    </tbody>
  </table>
  <div class="Table__ScrollerWrapper">
    <table class="Table">
      <tbody class="Table__TBODY">
        <tr class="Table__TR">
          <td class="Table__TD"><a class="AnchorLink" href="https://www.espn.com/nfl/player/_/id/4685720/bryce-young">Bryce Young</a></td>
          <td class="Table__TD"><a class="AnchorLink" href="https://www.espn.com/nfl/player/_/id/2573343/andy-dalton">Andy Dalton</a></td>
        </tr>
        <tr class="Table__TR">
          <td class="Table__TD"><a class="AnchorLink" href="https://www.espn.com/nfl/player/_/id/4430807/chuba-hubbard">Chuba Hubbard</a></td>
          <td class="Table__TD">-</td>
        </tr>
      </tbody>
    </table>
  </div>
</div>
</body></html>`

func TestFetchDepthChart(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(depthChartFixture))
	}))
	defer server.Close()

	client, err := NewClient()
	require.NoError(t, err)

	slots, err := client.FetchDepthChart(context.Background(), server.URL, "Carolina Panthers")
	require.NoError(t, err)

	want := []DepthSlot{
		{
			TeamName: "Carolina Panthers", Position: "QB", Slot: 1,
			PlayerName: "Bryce Young", PlayerUID: "4685720",
			PlayerURL: "https://www.espn.com/nfl/player/_/id/4685720/bryce-young",
		},
		{
			TeamName: "Carolina Panthers", Position: "QB", Slot: 2,
			PlayerName: "Andy Dalton", PlayerUID: "2573343",
			PlayerURL: "https://www.espn.com/nfl/player/_/id/2573343/andy-dalton",
		},
		{
			TeamName: "Carolina Panthers", Position: "RB", Slot: 1,
			PlayerName: "Chuba Hubbard", PlayerUID: "4430807",
			PlayerURL: "https://www.espn.com/nfl/player/_/id/4430807/chuba-hubbard",
		},
		{
			TeamName: "Carolina Panthers", Position: "RB", Slot: 2,
			PlayerName: "-",
		},
	}
	if diff := cmp.Diff(want, slots); diff != "" {
		t.Fatalf("depth chart mismatch (-want +got):\n%s", diff)
	}
}
