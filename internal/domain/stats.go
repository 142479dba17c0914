package domain

type GuardActivity struct {
	GuardEmail string `json:"guard_email"`
	ScanCount  int64  `json:"scan_count"`
}

type AreaDashboard struct {
	AreaID         string                `json:"area_id"`
	HasQRLocation  bool                  `json:"has_qr_location"`
	QRLocation     *QRLocation           `json:"qr_location,omitempty"`
	AssignedGuards int64                 `json:"assigned_guards"`
	TodayScans     int64                 `json:"today_scans"`
	WeekScans      int64                 `json:"week_scans"`
	TotalScans     int64                 `json:"total_scans"`
	Outcomes       map[ScanOutcome]int64 `json:"outcomes"`
	TopGuards      []GuardActivity       `json:"top_guards"`
	RecentScans    []*ScanEvent          `json:"recent_scans"`
}

type AreaSummary struct {
	AreaID     string `json:"area_id"`
	TotalScans int64  `json:"total_scans"`
	Accepted   int64  `json:"accepted"`
	Rejected   int64  `json:"rejected"`
}

type SystemStats struct {
	Areas      []AreaSummary `json:"areas"`
	TotalScans int64         `json:"total_scans"`
}
