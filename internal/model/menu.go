package model

type MenuItem struct {
	Title       string `json:"title"`
	Href        string `json:"href"`
	Icon        string `json:"icon"`
	Destructive bool   `json:"destructive,omitempty"`
}
