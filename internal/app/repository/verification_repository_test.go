package repository

import (
	"testing"

	"github.com/datanetra/msme-registry/internal/app/model"
	"github.com/datanetra/msme-registry/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupVerificationTest(t *testing.T) (*gorm.DB, VerificationRepository) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)

	user := &model.User{
		FullName:     "Asha Nair",
		Email:        "asha@example.com",
		MobileNumber: "9876543210",
		Role:         model.RoleCashier,
	}
	require.NoError(t, testDB.Create(user).Error)

	repo := NewVerificationRepository(testDB)
	return testDB, repo
}

func TestVerificationRepository_Create(t *testing.T) {
	testDB, repo := setupVerificationTest(t)
	defer db.CleanupTestDB(testDB)

	record := &model.VerificationRecord{
		UserID:          1,
		UdyamNumber:     "UDYAM-TN-00-0000001",
		CertificatePath: "certificate_uploads/abc.png",
		Status:          model.StatusPending,
	}
	require.NoError(t, repo.Create(record))
	assert.NotZero(t, record.ID)

	dup := &model.VerificationRecord{
		UserID:          1,
		UdyamNumber:     "UDYAM-TN-00-0000001",
		CertificatePath: "certificate_uploads/other.png",
		Status:          model.StatusPending,
	}
	assert.Error(t, repo.Create(dup), "duplicate udyam number must be rejected")
}

func TestVerificationRepository_Create_UnknownUserRejected(t *testing.T) {
	testDB, repo := setupVerificationTest(t)
	defer db.CleanupTestDB(testDB)

	record := &model.VerificationRecord{
		UserID:          9999,
		UdyamNumber:     "UDYAM-TN-00-0000009",
		CertificatePath: "certificate_uploads/abc.png",
		Status:          model.StatusPending,
	}
	assert.Error(t, repo.Create(record), "foreign key must reject a nonexistent user")

	var count int64
	require.NoError(t, testDB.Model(&model.VerificationRecord{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestVerificationRepository_FindByID(t *testing.T) {
	testDB, repo := setupVerificationTest(t)
	defer db.CleanupTestDB(testDB)

	record := &model.VerificationRecord{
		UserID:          1,
		UdyamNumber:     "UDYAM-TN-00-0000002",
		CertificatePath: "certificate_uploads/abc.png",
		Status:          "Approved",
	}
	require.NoError(t, repo.Create(record))

	found, err := repo.FindByID(record.ID)
	require.NoError(t, err)
	assert.Equal(t, record.UdyamNumber, found.UdyamNumber)
	assert.Equal(t, record.CertificatePath, found.CertificatePath)
	assert.Equal(t, "Approved", found.Status)

	missing, err := repo.FindByID(9999)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	assert.Nil(t, missing)
}

func TestVerificationRepository_FindAll_NewestFirst(t *testing.T) {
	testDB, repo := setupVerificationTest(t)
	defer db.CleanupTestDB(testDB)

	for _, udyam := range []string{"UDYAM-1", "UDYAM-2"} {
		require.NoError(t, repo.Create(&model.VerificationRecord{
			UserID:          1,
			UdyamNumber:     udyam,
			CertificatePath: "certificate_uploads/x.png",
		}))
	}

	records, err := repo.FindAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "UDYAM-2", records[0].UdyamNumber)
	assert.Equal(t, "UDYAM-1", records[1].UdyamNumber)
}

func TestVerificationRepository_DefaultStatus(t *testing.T) {
	testDB, repo := setupVerificationTest(t)
	defer db.CleanupTestDB(testDB)

	record := &model.VerificationRecord{
		UserID:          1,
		UdyamNumber:     "UDYAM-3",
		CertificatePath: "certificate_uploads/x.png",
	}
	require.NoError(t, repo.Create(record))

	found, err := repo.FindByID(record.ID)
	require.NoError(t, err)
	assert.Equal(t, model.StatusPending, found.Status)
}

func TestVerificationRepository_AllCertificatePaths(t *testing.T) {
	testDB, repo := setupVerificationTest(t)
	defer db.CleanupTestDB(testDB)

	require.NoError(t, repo.Create(&model.VerificationRecord{
		UserID:          1,
		UdyamNumber:     "UDYAM-4",
		CertificatePath: "certificate_uploads/one.png",
	}))
	require.NoError(t, repo.Create(&model.VerificationRecord{
		UserID:          1,
		UdyamNumber:     "UDYAM-5",
		CertificatePath: "certificate_uploads/two.png",
	}))

	paths, err := repo.AllCertificatePaths()
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{
		"certificate_uploads/one.png",
		"certificate_uploads/two.png",
	}, paths)
}
