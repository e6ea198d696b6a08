package http

import (
	"time"

	"github.com/altorracars/dealership-backend/internal/availability"
)

type ConfigResponse struct {
	WeeklyDays          []int     `json:"weekly_days"` // 0=Sunday .. 6=Saturday
	StartHour           int       `json:"start_hour"`
	EndHour             int       `json:"end_hour"`
	SlotIntervalMinutes int       `json:"slot_interval_minutes"`
	Slots               []string  `json:"slots"`
	UpdatedAt           time.Time `json:"updated_at"`
	UpdatedBy           string    `json:"updated_by,omitempty"`
}

func NewConfigResponse(cfg *availability.Config) ConfigResponse {
	days := make([]int, len(cfg.WeeklyDays))
	for i, d := range cfg.WeeklyDays {
		days[i] = int(d)
	}
	return ConfigResponse{
		WeeklyDays:          days,
		StartHour:           cfg.StartHour,
		EndHour:             cfg.EndHour,
		SlotIntervalMinutes: cfg.SlotIntervalMinutes,
		Slots:               cfg.Slots(),
		UpdatedAt:           cfg.UpdatedAt,
		UpdatedBy:           cfg.UpdatedBy,
	}
}

type OverrideResponse struct {
	Date         string   `json:"date"`
	FullDay      bool     `json:"full_day"`
	BlockedTimes []string `json:"blocked_times"`
}

func NewOverrideResponse(ov availability.DayOverride) OverrideResponse {
	times := ov.BlockedTimes
	if times == nil {
		times = []string{}
	}
	return OverrideResponse{
		Date:         ov.Date,
		FullDay:      ov.FullDay,
		BlockedTimes: times,
	}
}

type SnapshotResponse struct {
	Config    ConfigResponse     `json:"config"`
	Overrides []OverrideResponse `json:"overrides"`
}

type UpdateConfigBody struct {
	WeeklyDays          []int `json:"weekly_days" binding:"required,dive,min=0,max=6"`
	StartHour           int   `json:"start_hour" binding:"min=0,max=23"`
	EndHour             int   `json:"end_hour" binding:"required,min=1,max=24"`
	SlotIntervalMinutes int   `json:"slot_interval_minutes" binding:"required,oneof=30 60"`
}

// SetDayOverrideBody carries the full requested block set for a date. An
// empty list reopens the day, the full slot set blocks it entirely.
type SetDayOverrideBody struct {
	// Deliberately not "required": an empty list is the clear-overrides case.
	BlockedTimes []string `json:"blocked_times" binding:"omitempty,dive,datetime=15:04"`
}
