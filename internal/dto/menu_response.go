package dto

import "github.com/hienthq-zcv/admin-service/internal/model"

type MenuEntry struct {
	Item   model.MenuItem `json:"item"`
	Active bool           `json:"active"`
}

type GetMenuResponse struct {
	Items       []MenuEntry `json:"items"`
	Destructive []MenuEntry `json:"destructive"`
}
