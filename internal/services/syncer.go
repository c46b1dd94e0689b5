package services

import (
	"context"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/asaskevich/EventBus"
	"github.com/interviewtools/tracker/internal/clients/interviews"
	"github.com/interviewtools/tracker/internal/entities"
	"github.com/interviewtools/tracker/internal/events"
	"github.com/interviewtools/tracker/internal/logger"
	"github.com/interviewtools/tracker/internal/metrics"
	gocache "github.com/patrickmn/go-cache"
	"github.com/samber/lo"
	log "github.com/sirupsen/logrus"
)

type interviewRepository interface {
	Insert(ctx context.Context, interview *entities.Interview) (int64, error)
	Update(ctx context.Context, interview entities.Interview) error
	GetByServerID(ctx context.Context, serverID int) (*entities.Interview, error)
	GetUnsynced(ctx context.Context) ([]entities.Interview, error)
	GetServerIDs(ctx context.Context) ([]int, error)
	DeleteByServerID(ctx context.Context, serverID int) error
}

type companyRepository interface {
	Insert(ctx context.Context, company *entities.Company) (int64, error)
	Update(ctx context.Context, company entities.Company) error
	GetByServerID(ctx context.Context, serverID int) (*entities.Company, error)
	GetByName(ctx context.Context, name string) (*entities.Company, error)
	GetServerIDs(ctx context.Context) ([]int, error)
	DeleteByServerID(ctx context.Context, serverID int) error
}

type apiClient interface {
	FetchCompanies(ctx context.Context) ([]interviews.APICompany, error)
	FetchInterviews(ctx context.Context, parameters interviews.FetchParameters) ([]interviews.APIInterview, error)
	CreateInterview(ctx context.Context, request interviews.CreateInterviewRequest) (*interviews.APIInterview, error)
	UpdateInterview(ctx context.Context, id int, request interviews.UpdateInterviewRequest) (*interviews.APIInterview, error)
}

// Syncer reconciles the local store against the server in three phases:
// push local-only interviews, pull-merge companies, pull-merge
// interviews. A pass never loses local-only data and never asks the user
// to resolve a conflict; the server list is the source of truth for
// records it knows about.
//
// At most one pass runs at a time; a sync request while one is in flight
// is a no-op.
type Syncer struct {
	bus          EventBus.Bus
	client       apiClient
	interviews   interviewRepository
	companies    companyRepository
	companyCache *gocache.Cache

	syncing   atomic.Bool
	mu        sync.RWMutex
	lastSync  *time.Time
	lastError error
}

func NewSyncer(bus EventBus.Bus, client apiClient, interviewRepo interviewRepository,
	companyRepo companyRepository) *Syncer {

	return &Syncer{
		bus:          bus,
		client:       client,
		interviews:   interviewRepo,
		companies:    companyRepo,
		companyCache: gocache.New(10*time.Minute, 20*time.Minute),
	}
}

// IsSyncing reports whether a full sync pass is in flight.
func (s *Syncer) IsSyncing() bool {
	return s.syncing.Load()
}

// LastSyncTime is the completion time of the last pass that finished
// without a phase-level error; nil before the first one.
func (s *Syncer) LastSyncTime() *time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastSync
}

// LastError is the phase-level error of the most recent pass, nil when
// it succeeded. Cleared at the start of every pass.
func (s *Syncer) LastError() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastError
}

// SyncAll runs the three sync phases in order. Errors never propagate to
// the caller: per-record push failures are logged and retried on the
// next pass, a phase-level failure is captured into LastError and
// published on the bus.
func (s *Syncer) SyncAll(ctx context.Context) {

	if !s.syncing.CompareAndSwap(false, true) {
		log.Debug("sync already in progress, skipping")
		return
	}
	defer s.syncing.Store(false)

	s.setLastError(nil)
	s.companyCache.Flush()

	log.Info("starting sync")
	start := time.Now()

	pushed, err := s.pushLocalInterviews(ctx)

	var pulled, deleted int
	if err == nil {
		var companiesDeleted int
		pulled, companiesDeleted, err = s.syncCompanies(ctx)
		deleted += companiesDeleted
	}
	if err == nil {
		var interviewsPulled, interviewsDeleted int
		interviewsPulled, interviewsDeleted, err = s.pullRemoteInterviews(ctx)
		pulled += interviewsPulled
		deleted += interviewsDeleted
	}

	metrics.SyncDuration.Observe(time.Since(start).Seconds())

	if err != nil {
		s.setLastError(err)
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeApi).Errorf("sync failed: %v", err)
		s.bus.Publish(events.SyncFailedTopic, events.SyncFailed{Err: err})
		return
	}

	finishedAt := time.Now()
	s.setLastSync(finishedAt)
	log.Infof("sync completed after %v: pushed %v, pulled %v, deleted %v",
		time.Since(start), pushed, pulled, deleted)
	s.bus.Publish(events.SyncCompletedTopic, events.SyncCompleted{
		FinishedAt: finishedAt,
		Pushed:     pushed,
		Pulled:     pulled,
		Deleted:    deleted,
	})
}

// PushInterview pushes one local record immediately and writes the
// server-assigned ID back, without waiting for the next full pass.
func (s *Syncer) PushInterview(ctx context.Context, interview entities.Interview) (*interviews.APIInterview, error) {

	created, err := s.client.CreateInterview(ctx, buildCreateRequest(interview))
	if err != nil {
		return nil, err
	}

	interview.ServerID = lo.ToPtr(created.ID)
	if err := s.interviews.Update(ctx, interview); err != nil {
		return nil, err
	}

	metrics.PushedInterviewsCounter.Inc()
	return created, nil
}

// PushUpdate sends a partial update for an already-synced record,
// identified by its server ID.
func (s *Syncer) PushUpdate(ctx context.Context, serverID int, interview entities.Interview) (*interviews.APIInterview, error) {
	return s.client.UpdateInterview(ctx, serverID, buildUpdateRequest(interview))
}

// pushLocalInterviews is phase 1: best-effort creation of every record
// that has no server ID yet. A failed record stays unsynced and is
// retried on the next pass.
func (s *Syncer) pushLocalInterviews(ctx context.Context) (int, error) {

	unsynced, err := s.interviews.GetUnsynced(ctx)
	if err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeDb).Errorf("failed to get unsynced interviews: %v", err)
		return 0, err
	}

	if len(unsynced) == 0 {
		log.Debug("no local interviews to push")
		return 0, nil
	}

	log.Infof("pushing %v local interview(s) to server", len(unsynced))

	pushed := 0
	for _, interview := range unsynced {
		if _, err := s.PushInterview(ctx, interview); err != nil {
			log.WithField(logger.ErrorTypeField, logger.ErrorTypeApi).
				Errorf("failed to push interview '%v': %v", interview.JobTitle, err)
			continue
		}
		pushed++
	}

	return pushed, nil
}

// syncCompanies is phase 2: merge the authoritative company list into
// the local store and drop local companies the server no longer has.
// Local-only companies are never touched.
func (s *Syncer) syncCompanies(ctx context.Context) (pulled int, deleted int, err error) {

	apiCompanies, err := s.client.FetchCompanies(ctx)
	if err != nil {
		return 0, 0, err
	}

	log.Infof("received %v company(ies) from server", len(apiCompanies))

	serverIDs, err := s.companies.GetServerIDs(ctx)
	if err != nil {
		return 0, 0, err
	}
	removedIDs := lo.SliceToMap(serverIDs, func(id int) (int, struct{}) { return id, struct{}{} })

	for _, apiCompany := range apiCompanies {
		if err := s.mergeCompany(ctx, apiCompany); err != nil {
			return pulled, deleted, err
		}
		pulled++
		metrics.PulledRecordsCounter.WithLabelValues("company").Inc()
		delete(removedIDs, apiCompany.ID)
	}

	// whatever is left existed locally with a server ID but is gone from
	// the server
	for serverID := range removedIDs {
		if err := s.companies.DeleteByServerID(ctx, serverID); err != nil {
			return pulled, deleted, err
		}
		deleted++
		metrics.DeletedRecordsCounter.WithLabelValues("company").Inc()
		log.Infof("deleted company with server id %v (removed from server)", serverID)
	}

	return pulled, deleted, nil
}

// mergeCompany upserts one remote company: by server ID first, then by
// name onto a local-only record (adopting the server ID), otherwise as a
// new row.
func (s *Syncer) mergeCompany(ctx context.Context, apiCompany interviews.APICompany) error {

	existing, err := s.companies.GetByServerID(ctx, apiCompany.ID)
	if err != nil {
		return err
	}

	if existing != nil {
		existing.Name = apiCompany.Name
		return s.companies.Update(ctx, *existing)
	}

	localByName, err := s.companies.GetByName(ctx, apiCompany.Name)
	if err != nil {
		return err
	}

	if localByName != nil && !localByName.Synced() {
		localByName.ServerID = lo.ToPtr(apiCompany.ID)
		log.Infof("merged local company '%v' with server id %v", apiCompany.Name, apiCompany.ID)
		return s.companies.Update(ctx, *localByName)
	}

	company := entities.NewCompany(lo.ToPtr(apiCompany.ID), apiCompany.Name)
	_, err = s.companies.Insert(ctx, &company)
	return err
}

// pullRemoteInterviews is phase 3: the interview-level counterpart of
// phase 2, resolving each record's company reference along the way.
func (s *Syncer) pullRemoteInterviews(ctx context.Context) (pulled int, deleted int, err error) {

	apiInterviews, err := s.client.FetchInterviews(ctx, interviews.FetchParameters{IncludePast: true})
	if err != nil {
		return 0, 0, err
	}

	log.Infof("received %v interview(s) from server", len(apiInterviews))

	serverIDs, err := s.interviews.GetServerIDs(ctx)
	if err != nil {
		return 0, 0, err
	}
	removedIDs := lo.SliceToMap(serverIDs, func(id int) (int, struct{}) { return id, struct{}{} })

	for _, apiInterview := range apiInterviews {
		if err := s.mergeInterview(ctx, apiInterview); err != nil {
			return pulled, deleted, err
		}
		pulled++
		metrics.PulledRecordsCounter.WithLabelValues("interview").Inc()
		delete(removedIDs, apiInterview.ID)
	}

	for serverID := range removedIDs {
		if err := s.interviews.DeleteByServerID(ctx, serverID); err != nil {
			return pulled, deleted, err
		}
		deleted++
		metrics.DeletedRecordsCounter.WithLabelValues("interview").Inc()
		log.Infof("deleted interview with server id %v (removed from server)", serverID)
	}

	return pulled, deleted, nil
}

func (s *Syncer) mergeInterview(ctx context.Context, apiInterview interviews.APIInterview) error {

	company, err := s.findOrCreateCompany(ctx, apiInterview.Company)
	if err != nil {
		return err
	}

	existing, err := s.interviews.GetByServerID(ctx, apiInterview.ID)
	if err != nil {
		return err
	}

	if existing != nil {
		return s.interviews.Update(ctx, apiInterviewToEntity(apiInterview, existing.ID, &company.ID))
	}

	interview := apiInterviewToEntity(apiInterview, 0, &company.ID)
	_, err = s.interviews.Insert(ctx, &interview)
	return err
}

// findOrCreateCompany resolves an interview's company by server ID, then
// by name (adopting the server ID onto a local-only record), then by
// insertion. Results are memoized for the duration of a pass; the cache
// is flushed on entry to SyncAll.
func (s *Syncer) findOrCreateCompany(ctx context.Context, apiCompany interviews.APICompany) (*entities.Company, error) {

	cacheKey := strconv.Itoa(apiCompany.ID)
	if cached, found := s.companyCache.Get(cacheKey); found {
		return cached.(*entities.Company), nil
	}

	company, err := s.resolveCompany(ctx, apiCompany)
	if err != nil {
		return nil, err
	}

	if cacheErr := s.companyCache.Add(cacheKey, company, gocache.DefaultExpiration); cacheErr != nil {
		log.Errorf("failed to cache company: %v", cacheErr)
	}
	return company, nil
}

func (s *Syncer) resolveCompany(ctx context.Context, apiCompany interviews.APICompany) (*entities.Company, error) {

	existing, err := s.companies.GetByServerID(ctx, apiCompany.ID)
	if err != nil || existing != nil {
		return existing, err
	}

	localByName, err := s.companies.GetByName(ctx, apiCompany.Name)
	if err != nil {
		return nil, err
	}

	if localByName != nil {
		if !localByName.Synced() {
			localByName.ServerID = lo.ToPtr(apiCompany.ID)
			if err := s.companies.Update(ctx, *localByName); err != nil {
				return nil, err
			}
		}
		return localByName, nil
	}

	company := entities.NewCompany(lo.ToPtr(apiCompany.ID), apiCompany.Name)
	if _, err := s.companies.Insert(ctx, &company); err != nil {
		return nil, err
	}
	return &company, nil
}

func (s *Syncer) setLastError(err error) {
	s.mu.Lock()
	s.lastError = err
	s.mu.Unlock()
}

func (s *Syncer) setLastSync(t time.Time) {
	s.mu.Lock()
	s.lastSync = &t
	s.mu.Unlock()
}
