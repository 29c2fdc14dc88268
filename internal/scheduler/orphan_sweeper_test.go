package scheduler

import (
	"os"
	"strings"
	"testing"
	"time"

	"github.com/datanetra/msme-registry/internal/app/model"
	"github.com/datanetra/msme-registry/internal/app/repository"
	"github.com/datanetra/msme-registry/internal/db"
	"github.com/datanetra/msme-registry/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupSweeperTest(t *testing.T) (*OrphanSweeper, *storage.LocalStorage, *gorm.DB) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)

	require.NoError(t, testDB.Create(&model.User{
		FullName:     "Ravi Kumar",
		Email:        "ravi@example.com",
		MobileNumber: "9876543210",
		Role:         model.RoleCashier,
	}).Error)

	store, err := storage.NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	verificationRepo := repository.NewVerificationRepository(testDB)
	sweeper := NewOrphanSweeper(verificationRepo, store, "@hourly", time.Hour)

	return sweeper, store, testDB
}

// age rewinds the file's modification time so it falls outside the grace
// period.
func age(t *testing.T, path string, d time.Duration) {
	past := time.Now().Add(-d)
	require.NoError(t, os.Chtimes(path, past, past))
}

func TestOrphanSweeper_RemovesOldUnreferencedFile(t *testing.T) {
	sweeper, store, testDB := setupSweeperTest(t)
	defer db.CleanupTestDB(testDB)

	orphan, err := store.Save("orphan.png", strings.NewReader("data"))
	require.NoError(t, err)
	age(t, orphan, 2*time.Hour)

	require.NoError(t, sweeper.Sweep())

	assert.False(t, store.Exists(orphan))
}

func TestOrphanSweeper_KeepsReferencedFile(t *testing.T) {
	sweeper, store, testDB := setupSweeperTest(t)
	defer db.CleanupTestDB(testDB)

	referenced, err := store.Save("cert.png", strings.NewReader("data"))
	require.NoError(t, err)
	age(t, referenced, 2*time.Hour)

	require.NoError(t, testDB.Create(&model.VerificationRecord{
		UserID:          1,
		UdyamNumber:     "UDYAM-KL-01-0000001",
		CertificatePath: referenced,
	}).Error)

	require.NoError(t, sweeper.Sweep())

	assert.True(t, store.Exists(referenced))
}

func TestOrphanSweeper_KeepsRecentFile(t *testing.T) {
	sweeper, store, testDB := setupSweeperTest(t)
	defer db.CleanupTestDB(testDB)

	// An unreferenced file inside the grace period may belong to an upload
	// whose insert has not landed yet.
	recent, err := store.Save("inflight.png", strings.NewReader("data"))
	require.NoError(t, err)

	require.NoError(t, sweeper.Sweep())

	assert.True(t, store.Exists(recent))
}

func TestOrphanSweeper_MixedDirectory(t *testing.T) {
	sweeper, store, testDB := setupSweeperTest(t)
	defer db.CleanupTestDB(testDB)

	referenced, err := store.Save("cert.png", strings.NewReader("a"))
	require.NoError(t, err)
	age(t, referenced, 3*time.Hour)

	orphan, err := store.Save("orphan.jpg", strings.NewReader("b"))
	require.NoError(t, err)
	age(t, orphan, 3*time.Hour)

	recent, err := store.Save("inflight.png", strings.NewReader("c"))
	require.NoError(t, err)

	require.NoError(t, testDB.Create(&model.VerificationRecord{
		UserID:          1,
		UdyamNumber:     "UDYAM-KL-01-0000002",
		CertificatePath: referenced,
	}).Error)

	require.NoError(t, sweeper.Sweep())

	assert.True(t, store.Exists(referenced))
	assert.False(t, store.Exists(orphan))
	assert.True(t, store.Exists(recent))
}

func TestOrphanSweeper_StartStop(t *testing.T) {
	sweeper, _, testDB := setupSweeperTest(t)
	defer db.CleanupTestDB(testDB)

	require.NoError(t, sweeper.Start())
	sweeper.Stop()
}

func TestOrphanSweeper_BadSchedule(t *testing.T) {
	_, store, testDB := setupSweeperTest(t)
	defer db.CleanupTestDB(testDB)

	bad := NewOrphanSweeper(repository.NewVerificationRepository(testDB), store, "not-a-schedule", time.Hour)
	assert.Error(t, bad.Start())
}
