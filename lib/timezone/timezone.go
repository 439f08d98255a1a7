package timezone

import "time"

var Location *time.Location

func init() {
	var err error
	Location, err = time.LoadLocation("America/New_York")
	if err != nil {
		panic(err)
	}
}

// force timezone to be eastern because league schedules, birthdates
// and season boundaries are published in ET; host machines end up in
// arbitrary zones which disturbs <time.Time>.Year()/Month()/Day() math
func Now() time.Time {
	return time.Now().In(Location)
}

// SeasonYear returns the year a roster snapshot belongs to:
// January and February still count toward the previous season.
func SeasonYear(now time.Time) int {
	if now.Month() < time.March {
		return now.Year() - 1
	}
	return now.Year()
}
