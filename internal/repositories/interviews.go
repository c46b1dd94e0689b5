package repositories

import (
	"context"
	"errors"

	"github.com/interviewtools/tracker/internal/entities"
	"gorm.io/gorm"
)

// ErrMissingRecord is returned when an update targets a key that does not
// exist. Reported explicitly rather than silently affecting zero rows.
var ErrMissingRecord = errors.New("no record with such key")

type Interviews struct {
	db *gorm.DB
}

func NewInterviewsRepository(db *gorm.DB) *Interviews {
	return &Interviews{db: db}
}

// Insert stores the interview and assigns a fresh local key when the ID
// is zero. Returns the assigned key.
func (repo *Interviews) Insert(ctx context.Context, interview *entities.Interview) (int64, error) {
	if err := repo.db.WithContext(ctx).Create(interview).Error; err != nil {
		return 0, err
	}
	return interview.ID, nil
}

// Update replaces the stored record with the given one, nil fields
// included. Returns ErrMissingRecord when no record carries the key.
func (repo *Interviews) Update(ctx context.Context, interview entities.Interview) error {
	res := repo.db.WithContext(ctx).Model(&entities.Interview{ID: interview.ID}).
		Select("*").Omit("id", "created_at").Updates(interview)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrMissingRecord
	}
	return nil
}

func (repo *Interviews) GetByID(ctx context.Context, id int64) (*entities.Interview, error) {

	var interview entities.Interview
	if err := repo.db.WithContext(ctx).First(&interview, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &interview, nil
}

func (repo *Interviews) GetByServerID(ctx context.Context, serverID int) (*entities.Interview, error) {

	var interview entities.Interview
	if err := repo.db.WithContext(ctx).First(&interview, "server_id = ?", serverID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &interview, nil
}

// GetUnsynced returns the push candidate set: every interview that has no
// server ID yet.
func (repo *Interviews) GetUnsynced(ctx context.Context) ([]entities.Interview, error) {

	var interviews []entities.Interview
	if err := repo.db.WithContext(ctx).Find(&interviews, "server_id IS NULL").Error; err != nil {
		return nil, err
	}
	return interviews, nil
}

func (repo *Interviews) GetServerIDs(ctx context.Context) ([]int, error) {

	var ids []int
	if err := repo.db.WithContext(ctx).Model(&entities.Interview{}).
		Where("server_id IS NOT NULL").Pluck("server_id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}

// Get returns interviews ordered for display: by interview date, falling
// back to deadline, then application date, newest first.
func (repo *Interviews) Get(ctx context.Context, limit int, offset int) ([]entities.Interview, error) {

	var interviews []entities.Interview
	if err := repo.db.WithContext(ctx).
		Order("COALESCE(interview_date, deadline, application_date) DESC").
		Limit(limit).
		Offset(offset).
		Find(&interviews).Error; err != nil {
		return nil, err
	}
	return interviews, nil
}

func (repo *Interviews) DeleteByID(ctx context.Context, id int64) error {
	return repo.db.WithContext(ctx).Delete(&entities.Interview{}, "id = ?", id).Error
}

// DeleteByServerID is idempotent; deleting an absent key is a no-op.
func (repo *Interviews) DeleteByServerID(ctx context.Context, serverID int) error {
	return repo.db.WithContext(ctx).Delete(&entities.Interview{}, "server_id = ?", serverID).Error
}
