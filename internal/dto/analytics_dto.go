package dto

type DashboardStatsResponse struct {
	VerifiedNews   int64   `json:"verifiedNews"`
	FakeNews       int64   `json:"fakeNews"`
	Deepfakes      int64   `json:"deepfakes"`
	AwarenessScore float64 `json:"awarenessScore"`
}

type TopicCount struct {
	Topic string `json:"topic"`
	Count int64  `json:"count"`
}

type RegionStats struct {
	Region     string `json:"region"`
	Cases      int    `json:"cases"`
	Percentage int    `json:"percentage"`
}

type TrendBucket struct {
	Date   string `json:"date"`
	Status string `json:"status"`
	Count  int64  `json:"count"`
}
