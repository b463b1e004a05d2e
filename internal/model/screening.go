package model

import "time"

const EPDSQuestionCount = 10

const (
	// Totals strictly below this are considered fine.
	EPDSWatchThreshold = 12
	// Totals strictly above this need a consultation.
	EPDSConsultThreshold = 14
)

type ScreeningEntry struct {
	ID       int64     `db:"id"`
	Username string    `db:"username"`
	Score    int       `db:"score"`
	Date     time.Time `db:"date"`
}

type ScreeningOutcome string

const (
	OutcomeGood              ScreeningOutcome = "good"
	OutcomeEnteringPPD       ScreeningOutcome = "entering_ppd"
	OutcomeNeedsConsultation ScreeningOutcome = "needs_consultation"
)

// Classify buckets an EPDS total: <12 good, 12..14 entering PPD, >14 consult.
func Classify(total int) ScreeningOutcome {
	switch {
	case total < EPDSWatchThreshold:
		return OutcomeGood
	case total <= EPDSConsultThreshold:
		return OutcomeEnteringPPD
	default:
		return OutcomeNeedsConsultation
	}
}

func (o ScreeningOutcome) Message() string {
	switch o {
	case OutcomeGood:
		return "You are good"
	case OutcomeEnteringPPD:
		return "Entering phase of PPD"
	case OutcomeNeedsConsultation:
		return "Need consultation"
	default:
		return ""
	}
}
