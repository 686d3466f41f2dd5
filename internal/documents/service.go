package documents

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"complypilot/internal/analysis"
	"complypilot/internal/apperr"
	"complypilot/internal/models"

	"github.com/google/uuid"
)

// Store is the persistence contract for documents. Get returns the row with
// its raw content; ListRecent omits content. Lookups that match nothing
// return apperr.ErrNotFound.
type Store interface {
	Insert(doc *models.Document) error
	Get(id, subjectID string) (*models.Document, error)
	Update(doc *models.Document) error
	Delete(id, subjectID string) error
	ListRecent(subjectID string, limit int) ([]models.Document, error)
}

// MaxExcerptChars bounds the text sent to the analyzer, keeping external
// call cost and latency in check.
const MaxExcerptChars = 15000

const extractionFallback = "Unable to extract text content from document"

var allowedFileTypes = map[string]struct{}{
	"application/pdf":    {},
	"text/plain":         {},
	"application/msword": {},
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": {},
}

// Service orchestrates document upload, analysis and deletion.
type Service struct {
	store    Store
	analyzer analysis.Analyzer
	timeout  time.Duration
}

func NewService(store Store, analyzer analysis.Analyzer, timeout time.Duration) *Service {
	return &Service{store: store, analyzer: analyzer, timeout: timeout}
}

// Upload stores a document with analysis pending. File types outside the
// allow-list are rejected.
func (s *Service) Upload(subjectID, filename, fileType string, content []byte) (*models.Document, error) {
	if _, ok := allowedFileTypes[fileType]; !ok {
		return nil, fmt.Errorf("%w: invalid file type %q, please upload PDF, TXT, DOC, or DOCX files", apperr.ErrInvalidInput, fileType)
	}

	doc := &models.Document{
		ID:             uuid.NewString(),
		UserID:         subjectID,
		Filename:       filename,
		FileType:       fileType,
		FileSize:       len(content),
		Content:        content,
		AnalysisStatus: models.AnalysisPending,
		CreatedAt:      time.Now().UTC(),
	}
	if err := s.store.Insert(doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// Analyze extracts text from the stored content, dispatches it to the
// analyzer under a bounded timeout and persists the outcome. Failures are
// persisted as analysis_status=failed and surfaced; re-invoking Analyze
// overwrites the failed state, which is the only retry path.
func (s *Service) Analyze(ctx context.Context, documentID, subjectID string) (*models.Document, error) {
	doc, err := s.store.Get(documentID, subjectID)
	if err != nil {
		return nil, err
	}

	excerpt := ExtractText(doc.Content)

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	result, err := s.analyzer.Analyze(ctx, excerpt)
	if err != nil {
		slog.Error("document analysis failed", "document_id", documentID, "error", err)
		msg := err.Error()
		doc.AnalysisStatus = models.AnalysisFailed
		doc.AnalysisError = &msg
		doc.AnalysisResult = nil
		doc.AnalyzedAt = nil
		if uerr := s.store.Update(doc); uerr != nil {
			slog.Error("failed to persist analysis failure", "document_id", documentID, "error", uerr)
		}
		return nil, fmt.Errorf("%w: %s", apperr.ErrAnalysisFailed, msg)
	}

	now := time.Now().UTC()
	doc.AnalysisStatus = models.AnalysisCompleted
	doc.AnalysisResult = result
	doc.AnalysisError = nil
	doc.AnalyzedAt = &now
	if err := s.store.Update(doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// Get returns a document without exposing its raw content to callers.
func (s *Service) Get(documentID, subjectID string) (*models.Document, error) {
	doc, err := s.store.Get(documentID, subjectID)
	if err != nil {
		return nil, err
	}
	doc.Content = nil
	return doc, nil
}

func (s *Service) List(subjectID string, limit int) ([]models.Document, error) {
	return s.store.ListRecent(subjectID, limit)
}

// Delete removes a document unconditionally; nothing references documents.
func (s *Service) Delete(documentID, subjectID string) error {
	return s.store.Delete(documentID, subjectID)
}

// ExtractText decodes stored content best-effort: invalid UTF-8 sequences
// are dropped, an unreadable document yields a fixed placeholder, and the
// result is truncated to MaxExcerptChars characters.
func ExtractText(content []byte) string {
	text := strings.ToValidUTF8(string(content), "")
	if strings.TrimSpace(text) == "" {
		return extractionFallback
	}
	runes := []rune(text)
	if len(runes) > MaxExcerptChars {
		return string(runes[:MaxExcerptChars])
	}
	return text
}
