package domain

import "time"

// ExportRecord is one row sent to the spreadsheet export sink.
type ExportRecord struct {
	EventID        string    `json:"event_id"`
	QRID           string    `json:"qr_id"`
	AreaID         string    `json:"area_id"`
	GuardEmail     string    `json:"guard_email"`
	Lat            float64   `json:"lat"`
	Lng            float64   `json:"lng"`
	DistanceMeters *float64  `json:"distance_meters,omitempty"`
	WithinRadius   bool      `json:"within_radius"`
	Outcome        string    `json:"outcome"`
	Reason         string    `json:"reason,omitempty"`
	Address        string    `json:"address,omitempty"`
	ScannedAt      time.Time `json:"scanned_at"`
}

func NewExportRecord(ev *ScanEvent) ExportRecord {
	return ExportRecord{
		EventID:        ev.ID.String(),
		QRID:           ev.QRID,
		AreaID:         ev.AreaID,
		GuardEmail:     ev.GuardEmail,
		Lat:            ev.DeviceLat,
		Lng:            ev.DeviceLng,
		DistanceMeters: ev.DistanceMeters,
		WithinRadius:   ev.Outcome.CountsAsCheckIn(),
		Outcome:        string(ev.Outcome),
		Reason:         ev.Reason,
		Address:        ev.Address,
		ScannedAt:      ev.ScannedAt,
	}
}
