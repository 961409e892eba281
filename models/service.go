package models

type Service struct {
	ServiceID   string `json:"ServiceId"`
	Name        string `json:"Name"`
	Description string `json:"Description"`
	PriceCents  int    `json:"PriceCents"`
	Active      bool   `json:"Active"`
}
