package repositories

import (
	"fmt"

	"github.com/glebarez/sqlite"
	"github.com/interviewtools/tracker/internal/entities"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type DbContext struct {
	DB *gorm.DB
}

func NewDbContext(connectionString string) (*DbContext, error) {
	db, err := gorm.Open(sqlite.Open(connectionString), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Error),
	})
	if err != nil {
		return nil, err
	}

	return &DbContext{DB: db}, nil
}

// Migrate brings the schema forward. Besides creating the tables it
// backfills the companies table from the denormalized company name column
// that older schema versions stored on interviews, links those interviews
// by name, and enforces uniqueness of the server-assigned company ID.
// Safe to run on every start.
func (c *DbContext) Migrate() error {
	err := c.DB.AutoMigrate(entities.Company{})
	if err != nil {
		return fmt.Errorf("failed to migrate Company entity: %w", err)
	}

	err = c.DB.AutoMigrate(entities.Interview{})
	if err != nil {
		return fmt.Errorf("failed to migrate Interview entity: %w", err)
	}

	if err = c.DB.Exec("CREATE UNIQUE INDEX IF NOT EXISTS idx_companies_server_id ON companies (server_id);").
		Error; err != nil {
		return fmt.Errorf("failed to create company server id index: %w", err)
	}

	if err = c.backfillCompanies(); err != nil {
		return fmt.Errorf("failed to backfill companies: %w", err)
	}

	return nil
}

func (c *DbContext) backfillCompanies() error {

	err := c.DB.Exec(`INSERT INTO companies (name)
		SELECT DISTINCT company_name FROM interviews
		WHERE company_name != ''
		AND company_name NOT IN (SELECT name FROM companies)`).Error
	if err != nil {
		return err
	}

	return c.DB.Exec(`UPDATE interviews
		SET company_id = (SELECT id FROM companies c WHERE c.name = interviews.company_name)
		WHERE company_id IS NULL AND company_name != ''`).Error
}

func (c *DbContext) Close() error {
	db, err := c.DB.DB()
	if err != nil {
		return err
	}

	return db.Close()
}
