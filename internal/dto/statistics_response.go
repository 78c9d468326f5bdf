package dto

import "github.com/hienthq-zcv/admin-service/internal/model"

type GetStatisticsResponse struct {
	Statistics model.Statistics `json:"statistics"`
	BarChart   []model.BarPoint `json:"bar_chart"`
	PieChart   []model.PiePoint `json:"pie_chart"`
	Theme      string           `json:"theme"`
	IsLoading  bool             `json:"is_loading"`
}
