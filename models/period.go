package models

// AcademicPeriod is an admin-defined date range. The backend requires exactly
// one active period before it will accept loan requests or stock movements.
type AcademicPeriod struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	IsActive  bool   `json:"isActive"`
}
