package entities

// Outcome is the current result of an interview record.
type Outcome string

const (
	OutcomeScheduled        Outcome = "SCHEDULED"
	OutcomeAwaitingResponse Outcome = "AWAITING_RESPONSE"
	OutcomePassed           Outcome = "PASSED"
	OutcomeRejected         Outcome = "REJECTED"
	OutcomeOfferReceived    Outcome = "OFFER_RECEIVED"
	OutcomeOfferAccepted    Outcome = "OFFER_ACCEPTED"
	OutcomeOfferDeclined    Outcome = "OFFER_DECLINED"
	OutcomeWithdrew         Outcome = "WITHDREW"
)

var outcomeDisplayNames = map[Outcome]string{
	OutcomeScheduled:        "Scheduled",
	OutcomeAwaitingResponse: "Awaiting Response",
	OutcomePassed:           "Passed",
	OutcomeRejected:         "Rejected",
	OutcomeOfferReceived:    "Offer Received",
	OutcomeOfferAccepted:    "Offer Accepted",
	OutcomeOfferDeclined:    "Offer Declined",
	OutcomeWithdrew:         "Withdrew",
}

// outcomePriorities orders outcomes for summarization, lower is more
// important: final results first, offer states next, then withdrawal,
// then waiting states.
var outcomePriorities = map[Outcome]int{
	OutcomePassed:           1,
	OutcomeRejected:         1,
	OutcomeOfferReceived:    2,
	OutcomeOfferAccepted:    2,
	OutcomeOfferDeclined:    3,
	OutcomeWithdrew:         3,
	OutcomeAwaitingResponse: 4,
	OutcomeScheduled:        5,
}

func (o Outcome) DisplayName() string {
	if name, ok := outcomeDisplayNames[o]; ok {
		return name
	}
	return string(o)
}

// Priority sorts outcomes for same-date summaries; unknown outcomes sort
// last.
func (o Outcome) Priority() int {
	if priority, ok := outcomePriorities[o]; ok {
		return priority
	}
	return int(^uint(0) >> 1)
}
