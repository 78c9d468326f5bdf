package service

import (
	"context"
	"math"
	"sync"

	"github.com/hienthq-zcv/admin-service/internal/model"
	"github.com/hienthq-zcv/admin-service/internal/platform"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const (
	ThemeLight = "light"
	ThemeDark = "dark"
)

// ThemeSource resolves the display mode; it always resolves, defaulting
// to light.
type ThemeSource func() string

var chartNames = [4]string{"Users", "Alerts", "Locations", "Articles"}

var chartPalettes = map[string][4]string{
	ThemeLight: {"#2563eb", "#dc2626", "#16a34a", "#f59e0b"},
	ThemeDark: {"#60a5fa", "#f87171", "#4ade80", "#fbbf24"},
}

type statisticsService struct {
	logger *zap.Logger
	api platform.API
	notifier Notifier
	theme ThemeSource

	mu sync.Mutex
	stats model.Statistics
	isLoading bool
}

func newStatisticsService(logger *zap.Logger, api platform.API, notifier Notifier, theme ThemeSource) Statistics {
	if theme == nil {
		theme = func() string {
			return viper.GetString("app.theme")
		}
	}

	return &statisticsService{
		logger: logger,
		api: api,
		notifier: notifier,
		theme: theme,
	}
}

// Load fetches the snapshot once; no polling, no partial update. On
// failure the snapshot stays zeroed and a notification fires.
func (s *statisticsService) Load(ctx context.Context) {
	s.mu.Lock()
	s.isLoading = true
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.isLoading = false
		s.mu.Unlock()
	}()

	stats, err := s.api.FetchStatistics(ctx)
	if err != nil {
		s.logger.Sugar().Errorf("failed to load statistics: %s", err.Error())
		s.notifier.Error("Không thể tải thống kê")
		return
	}

	s.mu.Lock()
	s.stats = *stats
	s.mu.Unlock()
}

func (s *statisticsService) Snapshot() model.Statistics {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stats
}

func (s *statisticsService) IsLoading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.isLoading
}

func (s *statisticsService) Theme() string {
	if s.theme() == ThemeDark {
		return ThemeDark
	}
	return ThemeLight
}

func (s *statisticsService) palette() [4]string {
	return chartPalettes[s.Theme()]
}

func counterValues(stats model.Statistics) [4]int64 {
	return [4]int64{stats.TotalUsers, stats.TotalAlerts, stats.TotalLocations, stats.TotalArticles}
}

// BarData keeps zero-valued categories so the bar chart shows all four.
func (s *statisticsService) BarData() []model.BarPoint {
	stats := s.Snapshot()
	palette := s.palette()
	values := counterValues(stats)

	points := make([]model.BarPoint, 0, len(values))
	for i, value := range values {
		points = append(points, model.BarPoint{
			Name: chartNames[i],
			Value: value,
			Color: palette[i],
		})
	}

	return points
}

// PieData drops zero-valued categories; a zero slice renders as nothing.
// Percent shares round to whole numbers, falling back to 0 when the total
// itself is zero.
func (s *statisticsService) PieData() []model.PiePoint {
	stats := s.Snapshot()
	palette := s.palette()
	values := counterValues(stats)

	var total int64
	for _, value := range values {
		total += value
	}

	points := make([]model.PiePoint, 0, len(values))
	for i, value := range values {
		if value == 0 {
			continue
		}

		percent := 0
		if total > 0 {
			percent = int(math.Round(float64(value) / float64(total) * 100))
		}

		points = append(points, model.PiePoint{
			Name: chartNames[i],
			Value: value,
			Percent: percent,
			Color: palette[len(points)%len(palette)],
		})
	}

	return points
}
