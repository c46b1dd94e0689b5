package services

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/interviewtools/tracker/internal/clients/interviews"
	"github.com/interviewtools/tracker/internal/entities"
	"github.com/samber/lo"
	log "github.com/sirupsen/logrus"
)

// Wire formats are ISO-8601 without a zone offset; the server speaks
// local wall-clock time.
const (
	wireDateTimeFormat = "2006-01-02T15:04:05"
	wireDateFormat     = "2006-01-02"
)

var stagesByLabel = map[string]entities.Stage{
	"applied":             entities.StageApplied,
	"phone screen":        entities.StagePhoneScreen,
	"first stage":         entities.StageFirst,
	"second stage":        entities.StageSecond,
	"third stage":         entities.StageThird,
	"fourth stage":        entities.StageFourth,
	"technical test":      entities.StageTechnicalTest,
	"technical interview": entities.StageTechnicalInterview,
	"final stage":         entities.StageFinal,
	"onsite":              entities.StageOnsite,
	"offer":               entities.StageOffer,
}

var methodsByLabel = map[string]entities.Method{
	"video call": entities.MethodVideoCall,
	"video":      entities.MethodVideoCall,
	"phone call": entities.MethodPhoneCall,
	"phone":      entities.MethodPhoneCall,
	"in person":  entities.MethodInPerson,
	"in_person":  entities.MethodInPerson,
	"onsite":     entities.MethodInPerson,
}

var outcomesByLabel = map[string]entities.Outcome{
	"scheduled":         entities.OutcomeScheduled,
	"awaiting response": entities.OutcomeAwaitingResponse,
	"awaiting_response": entities.OutcomeAwaitingResponse,
	"pending":           entities.OutcomeAwaitingResponse,
	"passed":            entities.OutcomePassed,
	"rejected":          entities.OutcomeRejected,
	"offer received":    entities.OutcomeOfferReceived,
	"offer_received":    entities.OutcomeOfferReceived,
	"offer accepted":    entities.OutcomeOfferAccepted,
	"offer_accepted":    entities.OutcomeOfferAccepted,
	"offer declined":    entities.OutcomeOfferDeclined,
	"offer_declined":    entities.OutcomeOfferDeclined,
	"withdrew":          entities.OutcomeWithdrew,
	"withdrawn":         entities.OutcomeWithdrew,
}

// MapStage translates a server stage label to the local enumeration.
// Unrecognized labels fall back to APPLIED.
func MapStage(label string) entities.Stage {
	if stage, ok := stagesByLabel[strings.ToLower(label)]; ok {
		return stage
	}
	return entities.StageApplied
}

// MapMethod translates a server method label; unrecognized labels map to
// no method at all.
func MapMethod(label string) *entities.Method {
	if method, ok := methodsByLabel[strings.ToLower(label)]; ok {
		return &method
	}
	return nil
}

// MapOutcome translates a server outcome label. Unrecognized labels fall
// back to SCHEDULED.
func MapOutcome(label string) entities.Outcome {
	if outcome, ok := outcomesByLabel[strings.ToLower(label)]; ok {
		return outcome
	}
	return entities.OutcomeScheduled
}

// parseWireDate accepts a date-time or a plain date and returns the date
// part.
func parseWireDate(value string) (time.Time, bool) {
	if t, err := time.Parse(wireDateTimeFormat, value); err == nil {
		return t.Truncate(24 * time.Hour), true
	}
	if t, err := time.Parse(wireDateFormat, value); err == nil {
		return t, true
	}
	log.Warnf("failed to parse date: %v", value)
	return time.Time{}, false
}

// parseWireDateTime accepts a date-time or a plain date (taken as start
// of day); nil when neither parses.
func parseWireDateTime(value string) *time.Time {
	if t, err := time.Parse(wireDateTimeFormat, value); err == nil {
		return &t
	}
	if t, err := time.Parse(wireDateFormat, value); err == nil {
		return &t
	}
	log.Warnf("failed to parse datetime: %v", value)
	return nil
}

func formatWireDateTime(t *time.Time) *string {
	if t == nil {
		return nil
	}
	return lo.ToPtr(t.Format(wireDateTimeFormat))
}

// locationTypeFrom maps the interview method onto the server's location
// vocabulary used by the create endpoint.
func locationTypeFrom(method *entities.Method) *string {
	if method == nil {
		return nil
	}
	switch *method {
	case entities.MethodVideoCall:
		return lo.ToPtr("link")
	case entities.MethodPhoneCall:
		return lo.ToPtr("phone")
	case entities.MethodInPerson:
		return lo.ToPtr("in_person")
	default:
		return nil
	}
}

// extractJobListing pulls the job listing URL out of the opaque metadata
// blob; the blob is otherwise passed through uninterpreted.
func extractJobListing(metadataJSON *string) *string {
	if metadataJSON == nil {
		return nil
	}

	var metadata map[string]any
	if err := json.Unmarshal([]byte(*metadataJSON), &metadata); err != nil {
		return nil
	}

	if listing, ok := metadata["jobListing"].(string); ok {
		return &listing
	}
	return nil
}

func buildCreateRequest(interview entities.Interview) interviews.CreateInterviewRequest {

	jobPostingLink := interview.JobListing
	if jobPostingLink == nil {
		jobPostingLink = extractJobListing(interview.MetadataJSON)
	}

	return interviews.CreateInterviewRequest{
		Stage:          interview.Stage.DisplayName(),
		CompanyName:    interview.CompanyName,
		ClientCompany:  interview.ClientCompany,
		JobTitle:       interview.JobTitle,
		JobPostingLink: jobPostingLink,
		Date:           formatWireDateTime(interview.InterviewDate),
		Deadline:       formatWireDateTime(interview.Deadline),
		Interviewer:    interview.Interviewer,
		LocationType:   locationTypeFrom(interview.Method),
		InterviewLink:  interview.Link,
		Notes:          interview.Notes,
	}
}

// buildUpdateRequest carries the full mutable field set of a record; the
// server treats absent fields as untouched. Outcome travels as the
// uppercase enum name, stage as its display label.
func buildUpdateRequest(interview entities.Interview) interviews.UpdateInterviewRequest {
	return interviews.UpdateInterviewRequest{
		Outcome:     lo.ToPtr(string(interview.Outcome)),
		Stage:       lo.ToPtr(interview.Stage.DisplayName()),
		Date:        formatWireDateTime(interview.InterviewDate),
		Deadline:    formatWireDateTime(interview.Deadline),
		Interviewer: interview.Interviewer,
		Notes:       interview.Notes,
		Link:        interview.Link,
	}
}

// apiInterviewToEntity maps a pulled record onto the local schema.
// localID zero lets the store assign a fresh key.
func apiInterviewToEntity(api interviews.APIInterview, localID int64, companyID *int64) entities.Interview {

	applicationDate, ok := parseWireDate(api.ApplicationDate)
	if !ok {
		applicationDate = time.Now().Truncate(24 * time.Hour)
	}

	var interviewDate, deadline *time.Time
	if api.Date != nil {
		interviewDate = parseWireDateTime(*api.Date)
	}
	if api.Deadline != nil {
		deadline = parseWireDateTime(*api.Deadline)
	}

	stageLabel, outcomeLabel, methodLabel := "", "", ""
	if api.Stage != nil {
		stageLabel = api.Stage.Stage
	}
	if api.Outcome != nil {
		outcomeLabel = *api.Outcome
	}
	if api.StageMethod != nil {
		methodLabel = api.StageMethod.Method
	}

	var jobListing *string
	if api.Metadata != nil {
		jobListing = api.Metadata.JobListing
	}

	return entities.Interview{
		ID:              localID,
		ServerID:        lo.ToPtr(api.ID),
		CompanyID:       companyID,
		JobTitle:        api.JobTitle,
		CompanyName:     api.Company.Name,
		ClientCompany:   api.ClientCompany,
		Stage:           MapStage(stageLabel),
		Method:          MapMethod(methodLabel),
		Outcome:         MapOutcome(outcomeLabel),
		ApplicationDate: applicationDate,
		InterviewDate:   interviewDate,
		Deadline:        deadline,
		Interviewer:     api.Interviewer,
		Link:            api.Link,
		JobListing:      jobListing,
		Notes:           api.Notes,
		MetadataJSON:    buildMetadataJSON(api),
	}
}

// buildMetadataJSON rebuilds the opaque metadata blob from the server
// payload, recording whether the record is still in the applied stage.
func buildMetadataJSON(api interviews.APIInterview) *string {

	metadata := map[string]any{}
	if api.Metadata != nil {
		if api.Metadata.JobListing != nil {
			metadata["jobListing"] = *api.Metadata.JobListing
		}
		if api.Metadata.Location != nil {
			metadata["location"] = *api.Metadata.Location
		}
	}
	metadata["applied"] = api.Stage != nil && api.Stage.Stage == "Applied"

	encoded, err := json.Marshal(metadata)
	if err != nil {
		return nil
	}
	return lo.ToPtr(string(encoded))
}
