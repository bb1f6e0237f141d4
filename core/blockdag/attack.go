package blockdag

import (
	"fmt"
)

// The severity levels of an attack report.
const (
	SeverityLow    = "low"
	SeverityMedium = "medium"
	SeverityHigh   = "high"
)

// Once the red proportion passes this ratio, the report is escalated to the
// high severity regardless of the caller threshold.
const HighRiskRatio = 0.4

// AttackReport is a summary about the health of the DAG. A large red
// population means that some group of miners is building blocks which
// deliberately ignore the honest tips.
type AttackReport struct {
	// Whether the red proportion passed the caller threshold
	Detected bool

	// The proportion of red blocks in the whole DAG
	RedRatio float64

	// One of low,medium,high
	Severity string

	// Current color counters of the DAG
	Blues uint
	Reds  uint
	Total uint
}

func (ar *AttackReport) String() string {
	return fmt.Sprintf("AttackReport{detected=%v ratio=%.4f severity=%s blues=%d reds=%d total=%d}",
		ar.Detected, ar.RedRatio, ar.Severity, ar.Blues, ar.Reds, ar.Total)
}

// Inspect the current color distribution of the DAG and report whether the
// red proportion passed the threshold. The severity is graded on the ratio
// alone, so a caller threshold above HighRiskRatio can produce a report
// which is not detected yet still carries the high severity.
func (bd *BlockDAG) DetectAttack(threshold float64) *AttackReport {
	bd.stateLock.RLock()
	defer bd.stateLock.RUnlock()

	report := &AttackReport{Total: bd.blockTotal}
	for _, ib := range bd.blocks {
		if ib.IsBlue() {
			report.Blues++
		} else {
			report.Reds++
		}
	}

	if report.Total > 0 {
		report.RedRatio = float64(report.Reds) / float64(report.Total)
	}
	report.Detected = report.RedRatio > threshold

	if report.RedRatio > HighRiskRatio {
		report.Severity = SeverityHigh
	} else if report.RedRatio > threshold {
		report.Severity = SeverityMedium
	} else {
		report.Severity = SeverityLow
	}

	if report.Detected {
		log.Warn("Potential attack on the DAG", "ratio", report.RedRatio,
			"severity", report.Severity, "reds", report.Reds, "total", report.Total)
	}
	return report
}
