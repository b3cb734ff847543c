package dto

type DashboardResponse struct {
	News             int `json:"news"`
	Announcements    int `json:"announcements"`
	Coaches          int `json:"coaches"`
	PendingBookings  int `json:"pending_bookings"`
	PendingSchedules int `json:"pending_schedules"`
	PendingSports    int `json:"pending_sports"`
	InactiveTeams    int `json:"inactive_teams"`
}
