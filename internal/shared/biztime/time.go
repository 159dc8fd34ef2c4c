// Package biztime keeps stored timestamps in UTC and renders them in the
// marketplace's local time (Asia/Ho_Chi_Minh) for people to read.
package biztime

import (
	"sync"
	"time"
)

const (
	Timezone = "Asia/Ho_Chi_Minh"

	// DisplayLayout is the dd/mm/yyyy hh:mm form used in notifications.
	DisplayLayout = "02/01/2006 15:04"
)

var (
	locOnce sync.Once
	loc     *time.Location
)

// NowUTC returns the current time in UTC.
func NowUTC() time.Time {
	return time.Now().UTC()
}

// Location returns the business timezone. Hosts without tzdata fall back
// to a fixed UTC+7 zone, which matches Vietnam all year.
func Location() *time.Location {
	locOnce.Do(func() {
		l, err := time.LoadLocation(Timezone)
		if err != nil {
			l = time.FixedZone("ICT", 7*60*60)
		}
		loc = l
	})
	return loc
}

// Display formats t in local time with DisplayLayout.
func Display(t time.Time) string {
	return t.In(Location()).Format(DisplayLayout)
}
