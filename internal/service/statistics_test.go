package service

import (
	"context"
	"errors"
	"testing"

	"github.com/hienthq-zcv/admin-service/internal/model"
	"go.uber.org/zap"
)

type fakeStatsAPI struct {
	fakeAPI
	stats *model.Statistics
	statsErr error
}

func (f *fakeStatsAPI) FetchStatistics(ctx context.Context) (*model.Statistics, error) {
	if f.statsErr != nil {
		return nil, f.statsErr
	}
	return f.stats, nil
}

func lightTheme() string { return ThemeLight }
func darkTheme() string  { return ThemeDark }

func newTestStatistics(api *fakeStatsAPI, notifier Notifier, theme ThemeSource) Statistics {
	return newStatisticsService(zap.NewNop(), api, notifier, theme)
}

func TestBarDataKeepsZeroCategories(t *testing.T) {
	api := &fakeStatsAPI{stats: &model.Statistics{TotalUsers: 10, TotalLocations: 5}}
	svc := newTestStatistics(api, &fakeNotifier{}, lightTheme)
	svc.Load(context.Background())

	bars := svc.BarData()
	if len(bars) != 4 {
		t.Fatalf("BarData() has %d points, want 4", len(bars))
	}
	if bars[1].Name != "Alerts" || bars[1].Value != 0 {
		t.Fatalf("BarData()[1] = %+v, want zero-valued Alerts entry", bars[1])
	}
	if bars[3].Name != "Articles" || bars[3].Value != 0 {
		t.Fatalf("BarData()[3] = %+v, want zero-valued Articles entry", bars[3])
	}
}

func TestPieDataExcludesZeroCategories(t *testing.T) {
	api := &fakeStatsAPI{stats: &model.Statistics{TotalUsers: 10, TotalLocations: 5}}
	svc := newTestStatistics(api, &fakeNotifier{}, lightTheme)
	svc.Load(context.Background())

	pie := svc.PieData()
	if len(pie) != 2 {
		t.Fatalf("PieData() has %d points, want 2", len(pie))
	}
	if pie[0].Name != "Users" || pie[0].Value != 10 || pie[0].Percent != 67 {
		t.Fatalf("PieData()[0] = %+v, want Users 10 at 67%%", pie[0])
	}
	if pie[1].Name != "Locations" || pie[1].Value != 5 || pie[1].Percent != 33 {
		t.Fatalf("PieData()[1] = %+v, want Locations 5 at 33%%", pie[1])
	}
}

func TestPieDataEmptyWhenAllZero(t *testing.T) {
	api := &fakeStatsAPI{stats: &model.Statistics{}}
	svc := newTestStatistics(api, &fakeNotifier{}, lightTheme)
	svc.Load(context.Background())

	if pie := svc.PieData(); len(pie) != 0 {
		t.Fatalf("PieData() has %d points for an all-zero snapshot, want 0", len(pie))
	}
}

func TestChartPaletteFollowsTheme(t *testing.T) {
	api := &fakeStatsAPI{stats: &model.Statistics{TotalUsers: 1}}

	light := newTestStatistics(api, &fakeNotifier{}, lightTheme)
	light.Load(context.Background())
	if got := light.BarData()[0].Color; got != "#2563eb" {
		t.Fatalf("light palette first color = %s, want #2563eb", got)
	}

	dark := newTestStatistics(api, &fakeNotifier{}, darkTheme)
	dark.Load(context.Background())
	if got := dark.BarData()[0].Color; got != "#60a5fa" {
		t.Fatalf("dark palette first color = %s, want #60a5fa", got)
	}

	unknown := newTestStatistics(api, &fakeNotifier{}, func() string { return "system" })
	if unknown.Theme() != ThemeLight {
		t.Fatalf("Theme() = %s for unknown preference, want light", unknown.Theme())
	}
}

func TestLoadFailureKeepsZeroSnapshotAndNotifies(t *testing.T) {
	api := &fakeStatsAPI{statsErr: errors.New("boom")}
	notifier := &fakeNotifier{}
	svc := newTestStatistics(api, notifier, lightTheme)

	svc.Load(context.Background())

	if svc.Snapshot() != (model.Statistics{}) {
		t.Fatalf("Snapshot() = %+v after failed load, want zero value", svc.Snapshot())
	}
	if len(notifier.errors) != 1 {
		t.Fatalf("got %d error notifications, want 1", len(notifier.errors))
	}
}
