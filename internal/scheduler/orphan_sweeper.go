package scheduler

import (
	"time"

	"github.com/datanetra/msme-registry/internal/app/repository"
	"github.com/datanetra/msme-registry/internal/storage"
	"github.com/datanetra/msme-registry/pkg/logger"
	"github.com/robfig/cron/v3"
)

// OrphanSweeper reclaims upload files that no verification row references.
// The save-file-then-insert pair is not transactional, so a failed insert can
// leave a file behind; the sweeper removes such files once they are older
// than the grace period, which keeps in-flight uploads safe.
type OrphanSweeper struct {
	cron             *cron.Cron
	verificationRepo repository.VerificationRepository
	store            *storage.LocalStorage
	schedule         string
	gracePeriod      time.Duration
}

func NewOrphanSweeper(
	verificationRepo repository.VerificationRepository,
	store *storage.LocalStorage,
	schedule string,
	gracePeriod time.Duration,
) *OrphanSweeper {
	return &OrphanSweeper{
		cron:             cron.New(),
		verificationRepo: verificationRepo,
		store:            store,
		schedule:         schedule,
		gracePeriod:      gracePeriod,
	}
}

// Start registers the sweep on the configured cron schedule.
func (s *OrphanSweeper) Start() error {
	_, err := s.cron.AddFunc(s.schedule, func() {
		if err := s.Sweep(); err != nil {
			logger.Error("Orphan sweep failed", err)
		}
	})
	if err != nil {
		logger.Error("Failed to register orphan sweep cron job", err, map[string]interface{}{
			"schedule": s.schedule,
		})
		return err
	}

	s.cron.Start()
	logger.Info("Orphan sweeper started", map[string]interface{}{
		"schedule":     s.schedule,
		"grace_period": s.gracePeriod.String(),
	})
	return nil
}

// Stop stops the scheduler.
func (s *OrphanSweeper) Stop() {
	logger.Info("Stopping orphan sweeper...")
	s.cron.Stop()
	logger.Info("Orphan sweeper stopped")
}

// Sweep removes every file in the upload directory that is referenced by no
// row and is older than the grace period.
func (s *OrphanSweeper) Sweep() error {
	paths, err := s.verificationRepo.AllCertificatePaths()
	if err != nil {
		return err
	}

	referenced := make(map[string]bool, len(paths))
	for _, p := range paths {
		referenced[p] = true
	}

	files, err := s.store.List()
	if err != nil {
		return err
	}

	cutoff := time.Now().Add(-s.gracePeriod)
	removed := 0
	for _, f := range files {
		if referenced[f.Path] || f.ModTime.After(cutoff) {
			continue
		}
		if err := s.store.Remove(f.Path); err != nil {
			logger.Error("Failed to remove orphaned upload", err, map[string]interface{}{
				"path": f.Path,
			})
			continue
		}
		logger.Warn("Removed orphaned upload", map[string]interface{}{
			"path":     f.Path,
			"mod_time": f.ModTime,
		})
		removed++
	}

	if removed > 0 {
		logger.Info("Orphan sweep completed", map[string]interface{}{
			"removed":    removed,
			"total_seen": len(files),
		})
	}
	return nil
}
