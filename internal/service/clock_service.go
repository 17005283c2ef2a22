package service

import (
	"log"
	"time"

	"github.com/timely-app/timely/internal/domain"
)

// CityTime is one world-clock panel entry: a city plus its current wall
// time, date and UTC offset.
type CityTime struct {
	domain.WorldCity
	Time        string  `json:"time"`
	Date        string  `json:"date"`
	OffsetHours float64 `json:"offsetHours"`
}

// ClockService resolves the built-in city list against the platform
// timezone database once and formats current times on demand.
type ClockService struct {
	cities    []domain.WorldCity
	locations []*time.Location
}

// NewClockService loads the IANA zone of every built-in city. Cities whose
// zone is missing from the platform database are dropped with a log line
// rather than failing startup.
func NewClockService() *ClockService {
	s := &ClockService{}
	for _, city := range domain.WorldCities {
		loc, err := time.LoadLocation(city.Timezone)
		if err != nil {
			log.Printf("Skipping city %s: %v", city.Name, err)
			continue
		}
		s.cities = append(s.cities, city)
		s.locations = append(s.locations, loc)
	}
	return s
}

// Times returns the current time in every known city.
func (s *ClockService) Times(now time.Time) []CityTime {
	out := make([]CityTime, 0, len(s.cities))
	for i, city := range s.cities {
		local := now.In(s.locations[i])
		_, offsetSec := local.Zone()
		out = append(out, CityTime{
			WorldCity:   city,
			Time:        local.Format("15:04:05"),
			Date:        local.Format("Mon, Jan 2, 2006"),
			OffsetHours: float64(offsetSec) / 3600,
		})
	}
	return out
}
