package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	weathererr "weatherhub.app/errors"
	"weatherhub.app/models"
)

func createTestRequest(t *testing.T, db *gorm.DB, reference, status string, createdAt time.Time) *models.SupportRequest {
	request := &models.SupportRequest{
		Reference: reference,
		Name:      "Tester",
		Email:     "tester@example.com",
		Subject:   "Subject " + reference,
		Message:   "Message body",
		Status:    status,
		CreatedAt: createdAt,
	}
	require.NoError(t, db.Create(request).Error)
	return request
}

func TestSupportRepository_List(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSupportRepository(db)

	base := time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC)
	createTestRequest(t, db, "oldest", models.StatusNew, base)
	createTestRequest(t, db, "middle", models.StatusInProgress, base.Add(time.Hour))
	createTestRequest(t, db, "newest", models.StatusNew, base.Add(2*time.Hour))

	t.Run("NewestFirst", func(t *testing.T) {
		requests, err := repo.List("")
		require.NoError(t, err)
		require.Len(t, requests, 3)
		assert.Equal(t, "newest", requests[0].Reference)
		assert.Equal(t, "oldest", requests[2].Reference)
	})

	t.Run("FilteredByStatus", func(t *testing.T) {
		requests, err := repo.List(models.StatusInProgress)
		require.NoError(t, err)
		require.Len(t, requests, 1)
		assert.Equal(t, "middle", requests[0].Reference)
	})

	t.Run("NoMatches", func(t *testing.T) {
		requests, err := repo.List(models.StatusClosed)
		require.NoError(t, err)
		assert.Empty(t, requests)
	})
}

func TestSupportRepository_FindByID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSupportRepository(db)

	t.Run("Found", func(t *testing.T) {
		created := createTestRequest(t, db, "ref-1", models.StatusNew, time.Now())
		found, err := repo.FindByID(created.ID)
		require.NoError(t, err)
		assert.Equal(t, "ref-1", found.Reference)
	})

	t.Run("NotFound", func(t *testing.T) {
		_, err := repo.FindByID(999)
		assert.True(t, weathererr.IsNotFoundError(err))
	})
}

func TestSupportRepository_Update(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSupportRepository(db)

	staff := createTestUser(t, db, "staff", true)
	request := createTestRequest(t, db, "ref-2", models.StatusNew, time.Now())

	now := time.Now()
	request.AdminResponse = "We fixed it"
	request.Status = models.StatusResolved
	request.RespondedAt = &now
	request.RespondedByID = &staff.ID
	require.NoError(t, repo.Update(request))

	updated, err := repo.FindByID(request.ID)
	require.NoError(t, err)
	assert.Equal(t, "We fixed it", updated.AdminResponse)
	assert.Equal(t, models.StatusResolved, updated.Status)
	require.NotNil(t, updated.RespondedByID)
	assert.Equal(t, staff.ID, *updated.RespondedByID)
}
