package service

import (
	"errors"
	"time"

	"restaurant-pos/pos-svc/internal/domain"
)

var ErrEmptyBackup = errors.New("backup bundle is empty")

type BackupService struct {
	repo BackupRepository
}

func NewBackupService(repo BackupRepository) *BackupService {
	return &BackupService{repo: repo}
}

func (s *BackupService) Export() (*domain.BackupBundle, error) {
	bundle, err := s.repo.Export()
	if err != nil {
		return nil, err
	}
	bundle.ExportedAt = time.Now()
	return bundle, nil
}

func (s *BackupService) Import(bundle *domain.BackupBundle) error {
	if bundle == nil {
		return ErrEmptyBackup
	}
	return s.repo.Import(bundle)
}
