package model

type Statistics struct {
	TotalUsers     int64 `json:"total_users"`
	TotalAlerts    int64 `json:"total_alerts"`
	TotalLocations int64 `json:"total_locations"`
	TotalArticles  int64 `json:"total_articles"`
}

type BarPoint struct {
	Name  string `json:"name"`
	Value int64  `json:"value"`
	Color string `json:"color"`
}

type PiePoint struct {
	Name    string `json:"name"`
	Value   int64  `json:"value"`
	Percent int    `json:"percent"`
	Color   string `json:"color"`
}
