package repositories

import (
	"context"
	"errors"

	"github.com/interviewtools/tracker/internal/entities"
	"gorm.io/gorm"
)

type Companies struct {
	db *gorm.DB
}

func NewCompaniesRepository(db *gorm.DB) *Companies {
	return &Companies{db: db}
}

func (repo *Companies) Insert(ctx context.Context, company *entities.Company) (int64, error) {
	if err := repo.db.WithContext(ctx).Create(company).Error; err != nil {
		return 0, err
	}
	return company.ID, nil
}

func (repo *Companies) Update(ctx context.Context, company entities.Company) error {
	res := repo.db.WithContext(ctx).Model(&entities.Company{ID: company.ID}).
		Select("*").Omit("id").Updates(company)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrMissingRecord
	}
	return nil
}

func (repo *Companies) GetByID(ctx context.Context, id int64) (*entities.Company, error) {

	var company entities.Company
	if err := repo.db.WithContext(ctx).First(&company, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &company, nil
}

func (repo *Companies) GetByServerID(ctx context.Context, serverID int) (*entities.Company, error) {

	var company entities.Company
	if err := repo.db.WithContext(ctx).First(&company, "server_id = ?", serverID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &company, nil
}

func (repo *Companies) GetByName(ctx context.Context, name string) (*entities.Company, error) {

	var company entities.Company
	if err := repo.db.WithContext(ctx).First(&company, "name = ?", name).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &company, nil
}

// FindOrCreateByName is the path used when a form references a company by
// name; it keeps at most one local record per distinct name.
func (repo *Companies) FindOrCreateByName(ctx context.Context, name string) (*entities.Company, error) {

	existing, err := repo.GetByName(ctx, name)
	if err != nil || existing != nil {
		return existing, err
	}

	company := entities.NewCompany(nil, name)
	if _, err := repo.Insert(ctx, &company); err != nil {
		return nil, err
	}
	return &company, nil
}

func (repo *Companies) GetAll(ctx context.Context) ([]entities.Company, error) {

	var companies []entities.Company
	if err := repo.db.WithContext(ctx).Order("name ASC").Find(&companies).Error; err != nil {
		return nil, err
	}
	return companies, nil
}

func (repo *Companies) GetServerIDs(ctx context.Context) ([]int, error) {

	var ids []int
	if err := repo.db.WithContext(ctx).Model(&entities.Company{}).
		Where("server_id IS NOT NULL").Pluck("server_id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}

// DeleteByServerID clears the company reference on interviews pointing at
// the deleted row, then removes it. Idempotent.
func (repo *Companies) DeleteByServerID(ctx context.Context, serverID int) error {

	company, err := repo.GetByServerID(ctx, serverID)
	if err != nil || company == nil {
		return err
	}

	err = repo.db.WithContext(ctx).Model(&entities.Interview{}).
		Where("company_id = ?", company.ID).Update("company_id", nil).Error
	if err != nil {
		return err
	}

	return repo.db.WithContext(ctx).Delete(&entities.Company{}, "id = ?", company.ID).Error
}
