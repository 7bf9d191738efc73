package model

// DashboardStats is aggregate pipeline picture over a single owner's records
type DashboardStats struct {
	TotalLeads     int     `json:"totalLeads"`
	Opportunities  int     `json:"opportunities"`
	Lost           int     `json:"lost"`
	TotalCustomers int     `json:"totalCustomers"`
	Revenue        float64 `json:"revenue"`
}
