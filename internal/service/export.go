// internal/service/export.go
package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/Ar-Dante/Quiz-platform/internal/access"
	"github.com/Ar-Dante/Quiz-platform/internal/cache"
	"github.com/Ar-Dante/Quiz-platform/internal/ids"
	"github.com/Ar-Dante/Quiz-platform/internal/model"
	"github.com/Ar-Dante/Quiz-platform/internal/serializer"
	"github.com/google/uuid"
)

const stagePrefix = "quiz_answers"

// ExportService stages submissions in the cache and exports them on request.
type ExportService struct {
	store cache.Store
	ttl   time.Duration
}

func NewExportService(store cache.Store, ttl time.Duration) *ExportService {
	if ttl <= 0 {
		ttl = 48 * time.Hour
	}
	return &ExportService{store: store, ttl: ttl}
}

// Export is an encoded result file ready to download or save.
type Export struct {
	FileName    string
	ContentType string
	Records     int
	Data        []byte
}

// Save writes the export into dir and returns its path.
func (e *Export) Save(dir string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating export dir: %w", err)
	}
	path := filepath.Join(dir, e.FileName)
	if err := os.WriteFile(path, e.Data, 0o644); err != nil {
		return "", fmt.Errorf("writing export: %w", err)
	}
	return path, nil
}

// StageKey is quiz_answers:<quiz>:<user>:<company>.
func StageKey(quizID, userID, companyID string) string {
	return fmt.Sprintf("%s:%s:%s:%s", stagePrefix, quizID, userID, companyID)
}

func (s *ExportService) Stage(ctx context.Context, quizID, companyID, userID uuid.UUID, correctCount, totalCount int) error {
	body, err := json.Marshal(model.ResultRecord{
		QuizID:       quizID,
		CompanyID:    companyID,
		UserID:       userID,
		CorrectCount: correctCount,
		TotalCount:   totalCount,
	})
	if err != nil {
		return fmt.Errorf("encoding staged result: %w", err)
	}
	return s.store.Set(ctx, StageKey(quizID.String(), userID.String(), companyID.String()), body, s.ttl)
}

func (s *ExportService) UserResults(ctx context.Context, userID, caller uuid.UUID, format string) (*Export, error) {
	if err := access.Self(caller, userID); err != nil {
		return nil, err
	}
	return s.export(ctx, StageKey("*", userID.String(), "*"), "user_results", format)
}

func (s *ExportService) UserCompanyResults(ctx context.Context, userID uuid.UUID, company *model.Company, member *model.Membership, caller uuid.UUID, format string) (*Export, error) {
	if err := access.CompanyWrite(caller, member, company); err != nil {
		return nil, err
	}
	return s.export(ctx, StageKey("*", userID.String(), company.ID.String()), "user_company_results", format)
}

func (s *ExportService) CompanyResults(ctx context.Context, company *model.Company, member *model.Membership, caller uuid.UUID, format string) (*Export, error) {
	if err := access.CompanyWrite(caller, member, company); err != nil {
		return nil, err
	}
	return s.export(ctx, StageKey("*", "*", company.ID.String()), "company_results", format)
}

func (s *ExportService) QuizResults(ctx context.Context, quizID uuid.UUID, company *model.Company, member *model.Membership, caller uuid.UUID, format string) (*Export, error) {
	if err := access.CompanyWrite(caller, member, company); err != nil {
		return nil, err
	}
	return s.export(ctx, StageKey(quizID.String(), "*", company.ID.String()), "quiz_results", format)
}

func (s *ExportService) export(ctx context.Context, pattern, name, format string) (*Export, error) {
	enc, err := serializer.ForFormat(format)
	if err != nil {
		return nil, err
	}

	entries, err := s.store.Scan(ctx, pattern)
	if err != nil {
		return nil, fmt.Errorf("reading staged results: %w", err)
	}

	records := make([]model.ResultRecord, 0, len(entries))
	for _, e := range entries {
		var rec model.ResultRecord
		if err := json.Unmarshal(e.Value, &rec); err != nil {
			slog.WarnContext(ctx, "skipping malformed staged result", "key", e.Key, "error", err)
			continue
		}
		records = append(records, rec)
	}

	var buf bytes.Buffer
	if err := enc.Encode(records, &buf); err != nil {
		return nil, fmt.Errorf("encoding %s: %w", name, err)
	}

	return &Export{
		FileName:    ids.FileName(name, enc.Extension()),
		ContentType: enc.ContentType(),
		Records:     len(records),
		Data:        buf.Bytes(),
	}, nil
}
