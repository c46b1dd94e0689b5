package services

import (
	"context"
	"sync"

	"github.com/interviewtools/tracker/internal/clients/interviews"
	"github.com/interviewtools/tracker/internal/entities"
	"github.com/pkg/errors"
)

type fakeInterviewRepo struct {
	mu      sync.Mutex
	nextID  int64
	records map[int64]entities.Interview
}

func newFakeInterviewRepo() *fakeInterviewRepo {
	return &fakeInterviewRepo{records: map[int64]entities.Interview{}}
}

func (r *fakeInterviewRepo) add(interview entities.Interview) int64 {
	id, _ := r.Insert(context.Background(), &interview)
	return id
}

func (r *fakeInterviewRepo) Insert(_ context.Context, interview *entities.Interview) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	interview.ID = r.nextID
	r.records[interview.ID] = *interview
	return interview.ID, nil
}

func (r *fakeInterviewRepo) Update(_ context.Context, interview entities.Interview) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.records[interview.ID]; !ok {
		return errors.New("no record with such key")
	}
	r.records[interview.ID] = interview
	return nil
}

func (r *fakeInterviewRepo) GetByServerID(_ context.Context, serverID int) (*entities.Interview, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, record := range r.records {
		if record.ServerID != nil && *record.ServerID == serverID {
			return &record, nil
		}
	}
	return nil, nil
}

func (r *fakeInterviewRepo) GetUnsynced(_ context.Context) ([]entities.Interview, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var unsynced []entities.Interview
	for _, record := range r.records {
		if record.ServerID == nil {
			unsynced = append(unsynced, record)
		}
	}
	return unsynced, nil
}

func (r *fakeInterviewRepo) GetServerIDs(_ context.Context) ([]int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var ids []int
	for _, record := range r.records {
		if record.ServerID != nil {
			ids = append(ids, *record.ServerID)
		}
	}
	return ids, nil
}

func (r *fakeInterviewRepo) DeleteByServerID(_ context.Context, serverID int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, record := range r.records {
		if record.ServerID != nil && *record.ServerID == serverID {
			delete(r.records, id)
		}
	}
	return nil
}

type fakeCompanyRepo struct {
	mu        sync.Mutex
	nextID    int64
	companies map[int64]entities.Company

	byServerIDCalls int
}

func newFakeCompanyRepo() *fakeCompanyRepo {
	return &fakeCompanyRepo{companies: map[int64]entities.Company{}}
}

func (r *fakeCompanyRepo) add(company entities.Company) int64 {
	id, _ := r.Insert(context.Background(), &company)
	return id
}

func (r *fakeCompanyRepo) Insert(_ context.Context, company *entities.Company) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	company.ID = r.nextID
	r.companies[company.ID] = *company
	return company.ID, nil
}

func (r *fakeCompanyRepo) Update(_ context.Context, company entities.Company) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.companies[company.ID]; !ok {
		return errors.New("no record with such key")
	}
	r.companies[company.ID] = company
	return nil
}

func (r *fakeCompanyRepo) GetByServerID(_ context.Context, serverID int) (*entities.Company, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.byServerIDCalls++
	for _, company := range r.companies {
		if company.ServerID != nil && *company.ServerID == serverID {
			return &company, nil
		}
	}
	return nil, nil
}

func (r *fakeCompanyRepo) GetByName(_ context.Context, name string) (*entities.Company, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, company := range r.companies {
		if company.Name == name {
			return &company, nil
		}
	}
	return nil, nil
}

func (r *fakeCompanyRepo) GetServerIDs(_ context.Context) ([]int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var ids []int
	for _, company := range r.companies {
		if company.ServerID != nil {
			ids = append(ids, *company.ServerID)
		}
	}
	return ids, nil
}

func (r *fakeCompanyRepo) DeleteByServerID(_ context.Context, serverID int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, company := range r.companies {
		if company.ServerID != nil && *company.ServerID == serverID {
			delete(r.companies, id)
		}
	}
	return nil
}

func (r *fakeCompanyRepo) byName(name string) *entities.Company {
	company, _ := r.GetByName(context.Background(), name)
	return company
}

// fakeApiClient queues canned answers; CreateInterview assigns
// sequential server IDs unless an error is queued for the call.
type fakeApiClient struct {
	mu sync.Mutex

	companies         []interviews.APICompany
	companiesErr      error
	fetchedInterviews []interviews.APIInterview
	interviewsErr     error

	nextServerID     int
	createErrs       []error
	createdRequests  []interviews.CreateInterviewRequest
	updatedRequests  map[int]interviews.UpdateInterviewRequest
	fetchCompaniesCh chan struct{}

	fetchCompaniesCalls int
}

func newFakeApiClient() *fakeApiClient {
	return &fakeApiClient{
		nextServerID:    100,
		updatedRequests: map[int]interviews.UpdateInterviewRequest{},
	}
}

func (c *fakeApiClient) FetchCompanies(_ context.Context) ([]interviews.APICompany, error) {
	c.mu.Lock()
	c.fetchCompaniesCalls++
	ch := c.fetchCompaniesCh
	c.mu.Unlock()

	if ch != nil {
		<-ch
	}
	return c.companies, c.companiesErr
}

// FetchInterviews answers with the canned list plus everything created
// through this client, the way a real server would.
func (c *fakeApiClient) FetchInterviews(_ context.Context, _ interviews.FetchParameters) ([]interviews.APIInterview, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.interviewsErr != nil {
		return nil, c.interviewsErr
	}

	result := append([]interviews.APIInterview{}, c.fetchedInterviews...)
	serverID := 100
	for _, request := range c.createdRequests {
		serverID++
		result = append(result, interviews.APIInterview{
			ID:              serverID,
			JobTitle:        request.JobTitle,
			Company:         interviews.APICompany{ID: 1000 + serverID, Name: request.CompanyName},
			ApplicationDate: "2026-08-30",
		})
	}
	return result, nil
}

func (c *fakeApiClient) CreateInterview(_ context.Context, request interviews.CreateInterviewRequest) (*interviews.APIInterview, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.createErrs) > 0 {
		err := c.createErrs[0]
		c.createErrs = c.createErrs[1:]
		if err != nil {
			return nil, err
		}
	}

	c.createdRequests = append(c.createdRequests, request)
	c.nextServerID++
	return &interviews.APIInterview{
		ID:              c.nextServerID,
		JobTitle:        request.JobTitle,
		Company:         interviews.APICompany{Name: request.CompanyName},
		ApplicationDate: "2026-08-30",
	}, nil
}

func (c *fakeApiClient) UpdateInterview(_ context.Context, id int, request interviews.UpdateInterviewRequest) (*interviews.APIInterview, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.updatedRequests[id] = request
	return &interviews.APIInterview{ID: id, ApplicationDate: "2026-08-30"}, nil
}
