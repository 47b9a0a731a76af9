package models

// DashboardStats is the aggregate overview shown on the admin dashboard.
type DashboardStats struct {
	TotalUsers        int64   `json:"totalUsers"`
	TotalBookings     int64   `json:"totalBookings"`
	PendingBookings   int64   `json:"pendingBookings"`
	AcceptedBookings  int64   `json:"acceptedBookings"`
	CompletedBookings int64   `json:"completedBookings"`
	TotalRevenue      float64 `json:"totalRevenue"`
}

// Dashboard bundles everything the admin landing page needs.
type Dashboard struct {
	Stats               DashboardStats     `json:"stats"`
	RecentBookings      []PopulatedBooking `json:"recentBookings"`
	RecommendedServices []Service          `json:"recommendedServices"`
}
