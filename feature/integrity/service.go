package integrity

import (
	"context"
	"fmt"

	"wardrobe-manager/core/storage"
	"wardrobe-manager/feature/integrity/checks"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Service handles integrity checks.
type Service struct {
	client  storage.Client
	bucket  string
	prefix  string
	objects []string
	logger  *zap.Logger
	db      *gorm.DB
}

// NewService creates a new integrity service. objects are the published
// catalog object names expected below prefix; db may be nil.
func NewService(client storage.Client, bucket, prefix string, objects []string, logger *zap.Logger, db *gorm.DB) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		client:  client,
		bucket:  bucket,
		prefix:  prefix,
		objects: objects,
		logger:  logger,
		db:      db,
	}
}

// CheckStructure returns a list of missing folders.
func (s *Service) CheckStructure(ctx context.Context) ([]string, error) {
	if s.client == nil {
		return nil, fmt.Errorf("storage client not configured")
	}
	return checks.CheckStructure(ctx, s.client, s.bucket, checks.RequiredFolders(s.prefix))
}

// FixStructure creates the missing folders.
func (s *Service) FixStructure(ctx context.Context, missing []string) error {
	if s.client == nil {
		return fmt.Errorf("storage client not configured")
	}
	return checks.FixStructure(ctx, s.client, s.bucket, s.logger, missing)
}

// CheckCatalog returns the published catalog objects that are missing.
func (s *Service) CheckCatalog(ctx context.Context) ([]string, error) {
	if s.client == nil {
		return nil, fmt.Errorf("storage client not configured")
	}
	return checks.CheckCatalog(ctx, s.client, s.bucket, s.objects)
}

// CheckResult is the outcome of one storage check.
type CheckResult struct {
	Status  string   `json:"status"`
	Missing []string `json:"missing,omitempty"`
	Error   string   `json:"error,omitempty"`
}

// Report combines every check.
type Report struct {
	Structure   CheckResult          `json:"structure"`
	Catalog     CheckResult          `json:"catalog"`
	Server      *checks.ServerReport `json:"server"`
	ServerError string               `json:"serverError,omitempty"`
}

// Healthy reports whether every check passed.
func (r Report) Healthy() bool {
	return r.Structure.Status == "ok" && len(r.Structure.Missing) == 0 &&
		r.Catalog.Status == "ok" && len(r.Catalog.Missing) == 0 &&
		r.Server != nil && r.Server.Matched
}

// RunAll runs every check. Failures are recorded in the report.
func (s *Service) RunAll(ctx context.Context) Report {
	var report Report
	report.Structure = result(s.CheckStructure(ctx))
	report.Catalog = result(s.CheckCatalog(ctx))

	srv, err := s.CheckServer()
	if err != nil {
		report.ServerError = err.Error()
	}
	report.Server = srv
	return report
}

func result(missing []string, err error) CheckResult {
	if err != nil {
		return CheckResult{Status: "error", Error: err.Error()}
	}
	return CheckResult{Status: "ok", Missing: missing}
}

// CheckServer validates the cache table schema.
func (s *Service) CheckServer() (*checks.ServerReport, error) {
	return checks.CheckServerIntegrity(s.db)
}
