package service

import (
	"strings"

	"github.com/hienthq-zcv/admin-service/internal/dto"
	"github.com/hienthq-zcv/admin-service/internal/model"
)

const menuRoot = "/admin"

// adminMenuItems is the declarative route table of the admin panel. The
// SOS entry is flagged destructive and rendered apart from the rest.
var adminMenuItems = []model.MenuItem{
	{Title: "Dashboard", Href: "/admin", Icon: "layout-dashboard"},
	{Title: "Người dùng", Href: "/admin/users", Icon: "users"},
	{Title: "Cảnh báo", Href: "/admin/alerts", Icon: "alert-triangle"},
	{Title: "Địa điểm", Href: "/admin/locations", Icon: "map-pin"},
	{Title: "Bài viết", Href: "/admin/articles", Icon: "book-open"},
	{Title: "Cộng đồng", Href: "/admin/community", Icon: "message-circle"},
	{Title: "Thống kê", Href: "/admin/statistics", Icon: "bar-chart-3"},
	{Title: "Cứu trợ (SOS)", Href: "/admin/rescue", Icon: "life-buoy", Destructive: true},
}

type menuService struct {
	items []model.MenuItem
}

func newMenuService() Menu {
	return &menuService{
		items: adminMenuItems,
	}
}

// Resolve marks the active entry for the given path and splits the
// destructive entries out. The root route matches exactly; every other
// route matches by prefix.
func (s *menuService) Resolve(path string) ([]dto.MenuEntry, []dto.MenuEntry) {
	var items, destructive []dto.MenuEntry
	for _, item := range s.items {
		entry := dto.MenuEntry{
			Item: item,
			Active: isActive(path, item.Href),
		}

		if item.Destructive {
			destructive = append(destructive, entry)
			continue
		}
		items = append(items, entry)
	}

	return items, destructive
}

func isActive(path string, href string) bool {
	if path == href {
		return true
	}
	return href != menuRoot && strings.HasPrefix(path, href)
}
