package media

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"

	"clubraise/internal/config"
	"clubraise/internal/domain"
	"clubraise/internal/repository"
)

var (
	ErrMediaNotFound = errors.New("media not found")
	ErrNotAllowed    = errors.New("not allowed to manage media for this club")
)

type Service interface {
	Upload(ctx context.Context, user *domain.User, clubID uuid.UUID, kind domain.MediaKind, caption *string, fileName string, fileSize int64, mimeType string, reader io.Reader) (*domain.Media, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Media, error)
	Delete(ctx context.Context, user *domain.User, id uuid.UUID) error
	ListByClub(ctx context.Context, clubID uuid.UUID, kind *domain.MediaKind, params domain.PaginationParams) (domain.PaginatedResponse[domain.Media], error)
}

type service struct {
	mediaRepo   repository.MediaRepository
	minioClient *minio.Client
	cfg         *config.Config
}

func NewService(mediaRepo repository.MediaRepository, minioClient *minio.Client, cfg *config.Config) Service {
	return &service{
		mediaRepo:   mediaRepo,
		minioClient: minioClient,
		cfg:         cfg,
	}
}

func (s *service) Upload(ctx context.Context, user *domain.User, clubID uuid.UUID, kind domain.MediaKind, caption *string, fileName string, fileSize int64, mimeType string, reader io.Reader) (*domain.Media, error) {
	if !user.CanManageImpact(clubID) {
		return nil, ErrNotAllowed
	}
	if !kind.IsValid() {
		return nil, errors.New("unknown media kind")
	}

	mediaID := uuid.New()
	storagePath := fmt.Sprintf("%s/%s/%s", kind, time.Now().Format("2006/01"), mediaID.String())

	_, err := s.minioClient.PutObject(ctx, s.cfg.MinIOBucket, storagePath, reader, fileSize, minio.PutObjectOptions{
		ContentType: mimeType,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upload to MinIO: %w", err)
	}

	media := &domain.Media{
		ID:          mediaID,
		ClubID:      clubID,
		UploadedBy:  user.ID,
		Kind:        kind,
		FileName:    fileName,
		FileSize:    fileSize,
		MimeType:    mimeType,
		StoragePath: storagePath,
		Caption:     caption,
	}

	if err := s.mediaRepo.Create(ctx, media); err != nil {
		_ = s.minioClient.RemoveObject(ctx, s.cfg.MinIOBucket, storagePath, minio.RemoveObjectOptions{})
		return nil, err
	}

	media.URL = s.getPublicURL(storagePath)
	return media, nil
}

func (s *service) GetByID(ctx context.Context, id uuid.UUID) (*domain.Media, error) {
	media, err := s.mediaRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if media == nil {
		return nil, ErrMediaNotFound
	}
	media.URL = s.getPublicURL(media.StoragePath)
	return media, nil
}

func (s *service) Delete(ctx context.Context, user *domain.User, id uuid.UUID) error {
	media, err := s.mediaRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if media == nil {
		return ErrMediaNotFound
	}
	if !user.CanManageImpact(media.ClubID) {
		return ErrNotAllowed
	}

	if err := s.mediaRepo.Delete(ctx, id); err != nil {
		return err
	}

	_ = s.minioClient.RemoveObject(ctx, s.cfg.MinIOBucket, media.StoragePath, minio.RemoveObjectOptions{})
	return nil
}

func (s *service) ListByClub(ctx context.Context, clubID uuid.UUID, kind *domain.MediaKind, params domain.PaginationParams) (domain.PaginatedResponse[domain.Media], error) {
	if kind != nil && !kind.IsValid() {
		return domain.PaginatedResponse[domain.Media]{}, errors.New("unknown media kind")
	}

	mediaList, total, err := s.mediaRepo.ListByClub(ctx, clubID, kind, params)
	if err != nil {
		return domain.PaginatedResponse[domain.Media]{}, err
	}

	for i := range mediaList {
		mediaList[i].URL = s.getPublicURL(mediaList[i].StoragePath)
	}

	return domain.NewPaginatedResponse(mediaList, params.Page, params.PageSize, total), nil
}

func (s *service) getPublicURL(storagePath string) string {
	scheme := "http"
	if s.cfg.MinIOPublicUseSSL {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s/%s/%s", scheme, s.cfg.MinIOPublicEndpoint, s.cfg.MinIOBucket, url.PathEscape(storagePath))
}
