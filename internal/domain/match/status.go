package match

import "strings"

const (
	StatusScheduled = "SCHEDULED"
	StatusLive      = "LIVE"
	StatusFinished  = "FINISHED"
	StatusCancelled = "CANCELLED"
	StatusPostponed = "POSTPONED"
)

func NormalizeStatus(value string) string {
	status := strings.ToUpper(strings.TrimSpace(value))
	status = strings.ReplaceAll(status, " ", "_")
	if status == "" {
		return StatusScheduled
	}
	return status
}

func IsLiveStatus(status string) bool {
	switch NormalizeStatus(status) {
	case StatusLive, "IN_PLAY", "IN_PROGRESS", "EN_JUEGO", "HT", "1H", "2H", "ET", "Q1", "Q2", "Q3", "Q4", "OT":
		return true
	default:
		return false
	}
}

func IsFinishedStatus(status string) bool {
	switch NormalizeStatus(status) {
	case StatusFinished, "FT", "AET", "PEN", "ENDED", "FINAL", "FINALIZADO", "COMPLETED":
		return true
	default:
		return false
	}
}
