package serviceImp

import (
	"fmt"
	"sort"
	"strconv"

	repo "qrproduct/pkg/timeline/repository"
	"qrproduct/pkg/timeline/service"
)

type timelineSvc struct{ r repo.TimelineRepository }

func NewTimelineService(r repo.TimelineRepository) service.TimelineService {
	return &timelineSvc{r}
}

// Build merges the farmer's growth measurements and journal entries into one
// chronological sequence. Dates are compared as strings (YYYY-MM-DD sorts
// lexicographically); a growth row with no created_at gets an empty date and
// sorts first. The sort is stable so growth rows keep their hst order within
// a day.
func (s *timelineSvc) Build(farmerName string) ([]service.TimelineEvent, error) {
	growth, err := s.r.GrowthByFarmer(farmerName)
	if err != nil {
		return nil, err
	}
	journal, err := s.r.JournalByFarmer(farmerName)
	if err != nil {
		return nil, err
	}

	events := make([]service.TimelineEvent, 0, len(growth)+len(journal))
	for _, g := range growth {
		date := g.CreatedAt
		if len(date) > 10 {
			date = date[:10]
		}
		events = append(events, service.TimelineEvent{
			Date:  date,
			Event: fmt.Sprintf("Monitoring HST %d", g.HST),
			Desc:  fmt.Sprintf("Tinggi: %scm, Daun: %d helai", strconv.FormatFloat(g.HeightCM, 'f', -1, 64), g.LeafCount),
			Icon:  "📏",
		})
	}
	for _, j := range journal {
		events = append(events, service.TimelineEvent{
			Date:  j.Date,
			Event: j.ActivityType,
			Desc:  j.Description,
			Icon:  "📝",
		})
	}

	sort.SliceStable(events, func(i, j int) bool { return events[i].Date < events[j].Date })
	return events, nil
}
