package services

import (
	"context"

	"github.com/pkg/errors"
	"github.com/robfig/cron/v3"
	log "github.com/sirupsen/logrus"
)

// AutoSync triggers full sync passes on a cron schedule. Overlapping
// triggers are harmless: a pass already in flight makes the next
// trigger a no-op.
type AutoSync struct {
	syncer *Syncer
	cron   *cron.Cron
}

func NewAutoSync(syncer *Syncer, schedule string) (*AutoSync, error) {

	if schedule == "" {
		return nil, errors.New("schedule must not be empty")
	}

	as := &AutoSync{
		syncer: syncer,
		cron:   cron.New(),
	}

	_, err := as.cron.AddFunc(schedule, as.runSync)
	if err != nil {
		return nil, err
	}

	as.cron.Start()
	log.Infof("auto sync started, schedule: %v", schedule)
	return as, nil
}

func (as *AutoSync) Stop() {
	as.cron.Stop()
}

func (as *AutoSync) runSync() {
	as.syncer.SyncAll(context.Background())
}
