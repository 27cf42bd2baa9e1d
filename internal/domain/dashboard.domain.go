package domain

// UserLeadStats is one row of the admin-only cross-agent comparison.
type UserLeadStats struct {
	UserID         string  `json:"userId"`
	Name           string  `json:"name"`
	Email          string  `json:"email"`
	TotalLeads     int     `json:"totalLeads"`
	ConvertedLeads int     `json:"convertedLeads"`
	ConversionRate float64 `json:"conversionRate"`
}

// StatsSnapshot is the dashboard payload. UserStats is nil for non-admins.
type StatsSnapshot struct {
	TotalLeads     int             `json:"totalLeads"`
	TotalCustomers int             `json:"totalCustomers"`
	ConvertedLeads int             `json:"convertedLeads"`
	LeadsByStatus  map[string]int  `json:"leadsByStatus"`
	TodayLeads     int             `json:"todayLeads"`
	TodayCustomers int             `json:"todayCustomers"`
	UserStats      []UserLeadStats `json:"userStats,omitempty"`
}
