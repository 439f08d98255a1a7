package report

import (
	"fmt"
	"os"
	"sort"

	"gridiron-backend/services/analysis"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// RenderCharts writes a single HTML page with every chart: the emotion
// distribution bar, the team happiness scatter, race composition pies
// (overall, per unit, per position group), and the emotion-by-race
// grouped bar.
func RenderCharts(path string, rows []analysis.JoinedRow) error {
	page := components.NewPage()
	page.PageTitle = "Player Demographics"

	page.AddCharts(
		emotionBar(rows),
		teamHappinessScatter(rows),
		racePie("Overall Race Composition", RaceComposition(rows)),
	)

	byUnit := RaceCompositionByUnit(rows)
	for _, unit := range sortedKeys(byUnit) {
		page.AddCharts(racePie(fmt.Sprintf("%s Race Composition", unit), byUnit[unit]))
	}
	byGroup := RaceCompositionByGroup(rows)
	for _, group := range sortedKeys(byGroup) {
		page.AddCharts(racePie(fmt.Sprintf("%s Race Composition", group), byGroup[group]))
	}

	page.AddCharts(emotionByRaceBar(rows))

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := page.Render(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func sortedKeys(m map[string][]Composition) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

func emotionBar(rows []analysis.JoinedRow) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Distribution of Inferred Player Emotions"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Players"}),
	)

	counts := EmotionCounts(rows)
	data := make([]opts.BarData, len(counts))
	for i, count := range counts {
		data[i] = opts.BarData{Value: count}
	}
	bar.SetXAxis(EmotionOrder).AddSeries("Players", data)
	return bar
}

func teamHappinessScatter(rows []analysis.JoinedRow) *charts.Scatter {
	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Teams: Happy vs Other Emotions"}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Happy players"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Other emotions"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)

	var data []opts.ScatterData
	for _, team := range TeamHappinessCounts(rows) {
		data = append(data, opts.ScatterData{
			Name:  team.TeamName,
			Value: []interface{}{team.Happy, team.Other},
		})
	}
	scatter.AddSeries("Teams", data)
	return scatter
}

func racePie(title string, composition []Composition) *charts.Pie {
	pie := charts.NewPie()
	pie.SetGlobalOptions(charts.WithTitleOpts(opts.Title{Title: title}))

	data := make([]opts.PieData, len(composition))
	for i, entry := range composition {
		data[i] = opts.PieData{Name: entry.Label, Value: entry.Count}
	}
	pie.AddSeries("Race", data).SetSeriesOptions(
		charts.WithLabelOpts(opts.Label{
			Show:      opts.Bool(true),
			Formatter: "{b}: {d}%",
		}),
	)
	return pie
}

func emotionByRaceBar(rows []analysis.JoinedRow) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Emotion Distribution by Race Group (normalized)"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "% within group"}),
	)
	bar.SetXAxis(EmotionOrder)

	distribution := EmotionDistributionByRace(rows)
	for _, race := range SimplifiedRaceOrder {
		percents, ok := distribution.Percents[race]
		if !ok {
			continue
		}
		data := make([]opts.BarData, len(EmotionOrder))
		for i, emotion := range EmotionOrder {
			data[i] = opts.BarData{Value: percents[emotion]}
		}
		bar.AddSeries(race, data)
	}
	return bar
}
