package dto

type ScanRequest struct {
	RawText string `json:"raw_text" binding:"required"`
}

type ToggleLiveRequest struct {
	Active        bool `json:"active"`
	WindowMinutes int  `json:"window_minutes" binding:"omitempty,gt=0"`
}

type PlanRecurringRequest struct {
	Topic       string  `json:"topic" binding:"required"`
	StartDate   string  `json:"start_date" binding:"required"`
	EndDate     string  `json:"end_date" binding:"required"`
	Pattern     string  `json:"pattern" binding:"required"`
	Category    string  `json:"category" binding:"required"`
	ContextRef  string  `json:"context_ref"`
	MeetingType string  `json:"meeting_type"`
	Location    string  `json:"location"`
	Notes       string  `json:"notes"`
	Offering    float64 `json:"offering"`
	IsRealtime  bool    `json:"is_realtime"`
}
