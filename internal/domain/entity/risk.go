package entity

// Risk bands derived from a user's approved-report count.
const (
	RiskNone   = "none"
	RiskLow    = "low"
	RiskMedium = "medium"
	RiskHigh   = "high"
)

// RiskLevel maps an approved-report count to a coarse risk band. The console
// renders this in several places, so the banding lives here exactly once.
func RiskLevel(approvedReports int) string {
	switch {
	case approvedReports >= 5:
		return RiskHigh
	case approvedReports >= 3:
		return RiskMedium
	case approvedReports >= 1:
		return RiskLow
	default:
		return RiskNone
	}
}
