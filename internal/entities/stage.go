package entities

// Stage is the pipeline stage of an interview, ordered by seniority
// from the initial application up to an offer.
type Stage string

const (
	StageApplied            Stage = "APPLIED"
	StagePhoneScreen        Stage = "PHONE_SCREEN"
	StageFirst              Stage = "FIRST_STAGE"
	StageSecond             Stage = "SECOND_STAGE"
	StageThird              Stage = "THIRD_STAGE"
	StageFourth             Stage = "FOURTH_STAGE"
	StageTechnicalTest      Stage = "TECHNICAL_TEST"
	StageTechnicalInterview Stage = "TECHNICAL_INTERVIEW"
	StageFinal              Stage = "FINAL_STAGE"
	StageOnsite             Stage = "ONSITE"
	StageOffer              Stage = "OFFER"
)

var stageDisplayNames = map[Stage]string{
	StageApplied:            "Applied",
	StagePhoneScreen:        "Phone Screen",
	StageFirst:              "First Stage",
	StageSecond:             "Second Stage",
	StageThird:              "Third Stage",
	StageFourth:             "Fourth Stage",
	StageTechnicalTest:      "Technical Test",
	StageTechnicalInterview: "Technical Interview",
	StageFinal:              "Final Stage",
	StageOnsite:             "Onsite",
	StageOffer:              "Offer",
}

// DisplayName is the human-readable label, also used as the wire
// vocabulary when talking to the server.
func (s Stage) DisplayName() string {
	if name, ok := stageDisplayNames[s]; ok {
		return name
	}
	return string(s)
}
