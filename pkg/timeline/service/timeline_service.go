package service

// TimelineEvent is the uniform shape growth and journal rows are projected
// into before merging. Derived at read time, never stored.
type TimelineEvent struct {
	Date  string `json:"date"`
	Event string `json:"event"`
	Desc  string `json:"desc"`
	Icon  string `json:"icon"`
}

type TimelineService interface {
	Build(farmerName string) ([]TimelineEvent, error)
}
