package tests

import (
	"context"
	"sync"

	"github.com/interviewtools/tracker/internal/clients/interviews"
)

// stubApiClient plays the server side of a sync: it answers fetches from
// canned lists and echoes back everything created through it, assigning
// sequential server IDs.
type stubApiClient struct {
	mu sync.Mutex

	companies    []interviews.APICompany
	interviews   []interviews.APIInterview
	nextServerID int
}

func newStubApiClient() *stubApiClient {
	return &stubApiClient{nextServerID: 100}
}

func (c *stubApiClient) FetchCompanies(_ context.Context) ([]interviews.APICompany, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]interviews.APICompany{}, c.companies...), nil
}

func (c *stubApiClient) FetchInterviews(_ context.Context, _ interviews.FetchParameters) ([]interviews.APIInterview, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]interviews.APIInterview{}, c.interviews...), nil
}

func (c *stubApiClient) CreateInterview(_ context.Context, request interviews.CreateInterviewRequest) (*interviews.APIInterview, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	company := c.companyByName(request.CompanyName)
	if company == nil {
		c.nextServerID++
		c.companies = append(c.companies, interviews.APICompany{ID: c.nextServerID, Name: request.CompanyName})
		company = &c.companies[len(c.companies)-1]
	}

	c.nextServerID++
	created := interviews.APIInterview{
		ID:              c.nextServerID,
		JobTitle:        request.JobTitle,
		Company:         *company,
		ApplicationDate: "2026-08-30",
		Date:            request.Date,
		Deadline:        request.Deadline,
		Interviewer:     request.Interviewer,
		Notes:           request.Notes,
		Link:            request.InterviewLink,
	}
	c.interviews = append(c.interviews, created)
	return &created, nil
}

func (c *stubApiClient) UpdateInterview(_ context.Context, id int, request interviews.UpdateInterviewRequest) (*interviews.APIInterview, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.interviews {
		if c.interviews[i].ID == id {
			if request.Notes != nil {
				c.interviews[i].Notes = request.Notes
			}
			if request.Outcome != nil {
				c.interviews[i].Outcome = request.Outcome
			}
			return &c.interviews[i], nil
		}
	}
	return nil, &interviews.ServerError{StatusCode: 404, Message: "interview not found"}
}

func (c *stubApiClient) companyByName(name string) *interviews.APICompany {
	for i := range c.companies {
		if c.companies[i].Name == name {
			return &c.companies[i]
		}
	}
	return nil
}
