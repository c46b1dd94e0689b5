package repositories

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Migrate_IsSafeToRerun(t *testing.T) {

	dbCtx := newTestContext(t)
	assert.NoError(t, dbCtx.Migrate())
	assert.NoError(t, dbCtx.Migrate())
}

func Test_Migrate_BackfillsCompaniesFromInterviews(t *testing.T) {

	assert := assert.New(t)
	dbCtx := newTestContext(t)
	interviews := NewInterviewsRepository(dbCtx.DB)
	companies := NewCompaniesRepository(dbCtx.DB)

	// rows written before the companies table existed carry only the
	// denormalized name
	first := testInterview("Backend Engineer")
	firstID, _ := interviews.Insert(context.Background(), &first)

	second := testInterview("Platform Engineer")
	secondID, _ := interviews.Insert(context.Background(), &second)

	third := testInterview("Data Engineer")
	third.CompanyName = "Globex"
	thirdID, _ := interviews.Insert(context.Background(), &third)

	assert.NoError(dbCtx.Migrate())

	acme, err := companies.GetByName(context.Background(), "Acme")
	assert.NoError(err)
	globex, err := companies.GetByName(context.Background(), "Globex")
	assert.NoError(err)
	if !assert.NotNil(acme) || !assert.NotNil(globex) {
		return
	}

	for _, tc := range []struct {
		interviewID int64
		companyID   int64
	}{
		{firstID, acme.ID},
		{secondID, acme.ID},
		{thirdID, globex.ID},
	} {
		stored, err := interviews.GetByID(context.Background(), tc.interviewID)
		assert.NoError(err)
		if assert.NotNil(stored) && assert.NotNil(stored.CompanyID) {
			assert.Equal(tc.companyID, *stored.CompanyID)
		}
	}

	all, _ := companies.GetAll(context.Background())
	assert.Len(all, 2, "one company per distinct name")
}
