package dates_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/teamvirrey/meetup-announcer/internal/dates"
)

type DatesTestSuite struct {
	suite.Suite
}

func TestDatesSuite(t *testing.T) {
	suite.Run(t, new(DatesTestSuite))
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 12, 0, 0, 0, time.UTC)
}

func (s *DatesTestSuite) TestNextOccurrenceProperties() {
	// A spread of anchor dates including month and year rollovers
	anchors := []time.Time{
		date(2025, time.January, 1),
		date(2025, time.February, 26),
		date(2025, time.June, 30),
		date(2025, time.December, 29),
		date(2024, time.February, 28), // leap year
		date(2025, time.August, 27),
	}

	weekdays := []time.Weekday{
		time.Sunday, time.Monday, time.Tuesday, time.Wednesday,
		time.Thursday, time.Friday, time.Saturday,
	}

	for _, today := range anchors {
		for _, target := range weekdays {
			occ := dates.NextOccurrence(target, today)

			s.Assert().Equal(target, occ.Date.Weekday())
			s.Assert().False(occ.Date.Before(today))
			s.Assert().LessOrEqual(occ.DaysUntil, 6)
			s.Assert().GreaterOrEqual(occ.DaysUntil, 0)
			s.Assert().Equal(occ.DaysUntil == 0, occ.IsToday)
			s.Assert().Equal(today.AddDate(0, 0, occ.DaysUntil), occ.Date)
		}
	}
}

func (s *DatesTestSuite) TestSameDay() {
	// 2025-08-25 is a Monday
	monday := date(2025, time.August, 25)
	occ := dates.NextOccurrence(time.Monday, monday)

	s.Assert().True(occ.IsToday)
	s.Assert().Equal(0, occ.DaysUntil)
	s.Assert().Equal("lunes 25 de agosto", occ.Display)
}

func (s *DatesTestSuite) TestMonthRollover() {
	// 2025-01-31 is a Friday; next Monday is February 3rd
	friday := date(2025, time.January, 31)
	occ := dates.NextOccurrence(time.Monday, friday)

	s.Assert().Equal(3, occ.DaysUntil)
	s.Assert().Equal("lunes 3 de febrero", occ.Display)
}

func (s *DatesTestSuite) TestYearRollover() {
	// 2025-12-31 is a Wednesday; next Saturday is January 3rd 2026
	wednesday := date(2025, time.December, 31)
	occ := dates.NextOccurrence(time.Saturday, wednesday)

	s.Assert().Equal(2026, occ.Date.Year())
	s.Assert().Equal("sábado 3 de enero", occ.Display)
}

func (s *DatesTestSuite) TestFormatSpanish() {
	t := date(2025, time.March, 2) // a Sunday

	s.Assert().Equal("domingo 2 de marzo", dates.FormatSpanish(t, dates.Full))
	s.Assert().Equal("2 de marzo", dates.FormatSpanish(t, dates.Short))
}

func (s *DatesTestSuite) TestWeekdaySpanish() {
	s.Assert().Equal("miércoles", dates.WeekdaySpanish(time.Wednesday))
	s.Assert().Equal("domingo", dates.WeekdaySpanish(time.Sunday))
}
