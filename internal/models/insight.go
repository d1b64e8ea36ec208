package models

// TopicScore is one entry of the popular-topics ranking returned by the
// analysis service. The JSON field names are fixed by the response schema
// the service is instructed to produce.
type TopicScore struct {
	Topic string  `json:"topic" example:"HR Policies"`
	Score float64 `json:"score" example:"87"`
}

// InsightSummary is the two-field structure the analysis service returns:
// up to 5 popular topics scored 0-100 and 3-5 emerging trend descriptions.
// It is produced fresh on every request and never cached.
type InsightSummary struct {
	PopularTopics  []TopicScore `json:"popularTopics"`
	EmergingTrends []string     `json:"emergingTrends"`
}
