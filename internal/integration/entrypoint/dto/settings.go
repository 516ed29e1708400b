package dto

// UpdateSettingsRequest represents the request body for PATCH /users/me/settings.
// Absent fields are left unchanged.
type UpdateSettingsRequest struct {
	Name          *string `json:"name,omitempty" binding:"omitempty,max=100"`
	MonthStartDay *int    `json:"month_start_day,omitempty"`
	Locale        *string `json:"locale,omitempty"`
}

// UpdateSettingsResponse represents the response of PATCH /users/me/settings.
type UpdateSettingsResponse struct {
	User     UserResponse      `json:"user"`
	DailyLog *DailyLogResponse `json:"daily_log"`
}
