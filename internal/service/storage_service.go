package service

import (
	"context"
	"fmt"
	"learnhub/internal/config"
	"learnhub/internal/util"
	"net/url"
	"os"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// StorageProvider resolves course asset references (hero images, thumbnails) to URLs
// a browser can load.
type StorageProvider interface {
	GetURL(key string) string
	Ping(ctx context.Context) error
}

// LocalStorageProvider serves assets from a directory mounted under PublicPrefix.
type LocalStorageProvider struct {
	Config *config.StorageConfig
}

func (p *LocalStorageProvider) GetURL(key string) string {
	return strings.TrimSuffix(p.Config.PublicPrefix, "/") + "/" + key
}

func (p *LocalStorageProvider) Ping(ctx context.Context) error {
	_, err := os.Stat(p.Config.LocalPath)
	return err
}

// MinioStorageProvider MinIO存储实现
type MinioStorageProvider struct {
	Config *config.StorageConfig
	Client *minio.Client
}

func NewMinioStorageProvider(cfg *config.StorageConfig) (*MinioStorageProvider, error) {
	client, err := minio.New(cfg.MinioEndpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.MinioAccessID, cfg.MinioSecret, ""),
		Secure: cfg.MinioUseSSL,
	})
	if err != nil {
		return nil, err
	}
	return &MinioStorageProvider{Config: cfg, Client: client}, nil
}

func (p *MinioStorageProvider) GetURL(key string) string {
	base := p.Config.MinioPublic
	if base == "" {
		scheme := "http"
		if p.Config.MinioUseSSL {
			scheme = "https"
		}
		base = fmt.Sprintf("%s://%s", scheme, p.Config.MinioEndpoint)
	}
	u, err := url.JoinPath(base, p.Config.MinioBucket, key)
	if err != nil {
		return "/" + p.Config.MinioBucket + "/" + key
	}
	return u
}

func (p *MinioStorageProvider) Ping(ctx context.Context) error {
	ok, err := p.Client.BucketExists(ctx, p.Config.MinioBucket)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("bucket %q does not exist", p.Config.MinioBucket)
	}
	return nil
}

// StorageService 存储服务
type StorageService struct {
	Provider StorageProvider
	prefix   string
}

func NewStorageService(cfg *config.Config) (*StorageService, error) {
	var provider StorageProvider
	switch cfg.Storage.Type {
	case util.StorageMinio:
		p, err := NewMinioStorageProvider(&cfg.Storage)
		if err != nil {
			return nil, err
		}
		provider = p
	default:
		provider = &LocalStorageProvider{Config: &cfg.Storage}
	}

	return &StorageService{Provider: provider, prefix: cfg.Storage.PublicPrefix}, nil
}

// AssetURL maps a content reference such as "/static/images/x.png" to the provider URL.
// Absolute URLs and empty references pass through unchanged.
func (s *StorageService) AssetURL(ref string) string {
	if ref == "" || strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") {
		return ref
	}
	key := strings.TrimPrefix(ref, strings.TrimSuffix(s.prefix, "/")+"/")
	key = strings.TrimPrefix(key, "/")
	return s.Provider.GetURL(key)
}

func (s *StorageService) Ping(ctx context.Context) error {
	return s.Provider.Ping(ctx)
}
