package services

import (
	"testing"
	"time"

	"github.com/interviewtools/tracker/internal/clients/interviews"
	"github.com/interviewtools/tracker/internal/entities"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
)

func Test_MapStage_ShouldBeCaseInsensitive(t *testing.T) {

	assert := assert.New(t)

	assert.Equal(entities.StagePhoneScreen, MapStage("Phone Screen"))
	assert.Equal(entities.StagePhoneScreen, MapStage("phone screen"))
	assert.Equal(entities.StageTechnicalInterview, MapStage("TECHNICAL INTERVIEW"))
}

func Test_MapStage_UnknownLabelFallsBackToApplied(t *testing.T) {
	assert.Equal(t, entities.StageApplied, MapStage("quantum vibe check"))
	assert.Equal(t, entities.StageApplied, MapStage(""))
}

func Test_MapMethod_AcceptsLabelVariants(t *testing.T) {

	assert := assert.New(t)

	assert.Equal(entities.MethodVideoCall, *MapMethod("Video Call"))
	assert.Equal(entities.MethodVideoCall, *MapMethod("video"))
	assert.Equal(entities.MethodPhoneCall, *MapMethod("phone"))
	assert.Equal(entities.MethodInPerson, *MapMethod("in_person"))
	assert.Equal(entities.MethodInPerson, *MapMethod("onsite"))
}

func Test_MapMethod_UnknownLabelMapsToNothing(t *testing.T) {
	assert.Nil(t, MapMethod("carrier pigeon"))
	assert.Nil(t, MapMethod(""))
}

func Test_MapOutcome_AcceptsServerAliases(t *testing.T) {

	assert := assert.New(t)

	assert.Equal(entities.OutcomeAwaitingResponse, MapOutcome("Pending"))
	assert.Equal(entities.OutcomeAwaitingResponse, MapOutcome("awaiting_response"))
	assert.Equal(entities.OutcomeWithdrew, MapOutcome("Withdrawn"))
	assert.Equal(entities.OutcomeOfferReceived, MapOutcome("offer received"))
}

func Test_MapOutcome_UnknownLabelFallsBackToScheduled(t *testing.T) {
	assert.Equal(t, entities.OutcomeScheduled, MapOutcome("ghosted"))
}

func Test_ParseWireDate_AcceptsBothFormats(t *testing.T) {

	assert := assert.New(t)

	fromDate, ok := parseWireDate("2026-08-20")
	assert.True(ok)

	fromDateTime, ok := parseWireDate("2026-08-20T14:30:00")
	assert.True(ok)

	assert.Equal(fromDate, fromDateTime, "time of day must not survive date parsing")

	_, ok = parseWireDate("20/08/2026")
	assert.False(ok)
}

func Test_WireDateTime_RoundTrips(t *testing.T) {

	original := time.Date(2026, 8, 20, 14, 30, 0, 0, time.UTC)
	encoded := formatWireDateTime(&original)

	assert.Equal(t, "2026-08-20T14:30:00", *encoded)
	assert.Equal(t, original, *parseWireDateTime(*encoded))
}

func Test_BuildCreateRequest_MapsMethodToLocationType(t *testing.T) {

	assert := assert.New(t)

	interview := entities.Interview{
		JobTitle:    "Backend Engineer",
		CompanyName: "Acme",
		Stage:       entities.StagePhoneScreen,
		Method:      lo.ToPtr(entities.MethodVideoCall),
	}

	request := buildCreateRequest(interview)
	assert.Equal("Phone Screen", request.Stage)
	assert.Equal("link", *request.LocationType)

	interview.Method = lo.ToPtr(entities.MethodPhoneCall)
	assert.Equal("phone", *buildCreateRequest(interview).LocationType)

	interview.Method = nil
	assert.Nil(buildCreateRequest(interview).LocationType)
}

func Test_BuildCreateRequest_FallsBackToMetadataJobListing(t *testing.T) {

	assert := assert.New(t)

	interview := entities.Interview{
		JobTitle:     "Backend Engineer",
		CompanyName:  "Acme",
		Stage:        entities.StageApplied,
		MetadataJSON: lo.ToPtr(`{"jobListing": "https://jobs.example.com/1", "location": "remote"}`),
	}

	assert.Equal("https://jobs.example.com/1", *buildCreateRequest(interview).JobPostingLink)

	interview.JobListing = lo.ToPtr("https://jobs.example.com/2")
	assert.Equal("https://jobs.example.com/2", *buildCreateRequest(interview).JobPostingLink,
		"dedicated column wins over the metadata blob")
}

func Test_BuildUpdateRequest_SendsEnumOutcomeAndDisplayStage(t *testing.T) {

	assert := assert.New(t)

	request := buildUpdateRequest(entities.Interview{
		Stage:   entities.StageTechnicalInterview,
		Outcome: entities.OutcomeOfferReceived,
	})

	assert.Equal("OFFER_RECEIVED", *request.Outcome)
	assert.Equal("Technical Interview", *request.Stage)
}

func Test_ApiInterviewToEntity_MapsFullRecord(t *testing.T) {

	assert := assert.New(t)

	api := interviews.APIInterview{
		ID:              42,
		JobTitle:        "Backend Engineer",
		Company:         interviews.APICompany{ID: 7, Name: "Acme"},
		Stage:           &interviews.APIStage{Stage: "Phone Screen"},
		StageMethod:     &interviews.APIStageMethod{Method: "Video Call"},
		ApplicationDate: "2026-08-01",
		Date:            lo.ToPtr("2026-08-20T14:30:00"),
		Outcome:         lo.ToPtr("Pending"),
		Metadata:        &interviews.APIMetadata{JobListing: lo.ToPtr("https://jobs.example.com/1")},
	}

	entity := apiInterviewToEntity(api, 5, lo.ToPtr(int64(3)))

	assert.Equal(int64(5), entity.ID)
	assert.Equal(42, *entity.ServerID)
	assert.Equal(int64(3), *entity.CompanyID)
	assert.Equal("Acme", entity.CompanyName)
	assert.Equal(entities.StagePhoneScreen, entity.Stage)
	assert.Equal(entities.MethodVideoCall, *entity.Method)
	assert.Equal(entities.OutcomeAwaitingResponse, entity.Outcome)
	assert.Equal(time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC), entity.ApplicationDate)
	assert.Equal(time.Date(2026, 8, 20, 14, 30, 0, 0, time.UTC), *entity.InterviewDate)
	assert.Equal("https://jobs.example.com/1", *entity.JobListing)

	assert.Contains(*entity.MetadataJSON, `"jobListing":"https://jobs.example.com/1"`)
	assert.Contains(*entity.MetadataJSON, `"applied":false`)
}

func Test_ApiInterviewToEntity_HandlesSparseRecord(t *testing.T) {

	assert := assert.New(t)

	api := interviews.APIInterview{
		ID:              57,
		JobTitle:        "Platform Engineer",
		Company:         interviews.APICompany{ID: 12, Name: "Globex"},
		ApplicationDate: "2026-08-10",
	}

	entity := apiInterviewToEntity(api, 0, nil)

	assert.Equal(entities.StageApplied, entity.Stage)
	assert.Nil(entity.Method)
	assert.Equal(entities.OutcomeScheduled, entity.Outcome)
	assert.Nil(entity.InterviewDate)
	assert.Nil(entity.Deadline)
	assert.Nil(entity.CompanyID)
}
