// Package uploader drives the photo documentation flow: stage local files
// in object storage, then submit the uploaded URLs for analysis. A session
// is a small state machine (idle, uploading, ready, analyzing) so a failed
// analysis keeps the staged photos and a cancel discards them.
package uploader

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/smartonix/inventory-backend/internal/domain"
	"github.com/smartonix/inventory-backend/internal/transport/rest"
)

// ObjectStore stages photo bytes and returns their public URLs.
type ObjectStore interface {
	Upload(ctx context.Context, key, contentType string, data []byte) (string, error)
}

// Analyzer submits uploaded photo URLs for analysis.
type Analyzer interface {
	AnalyzeItems(ctx context.Context, imageURLs []string) ([]rest.ItemResponse, error)
}

// File is one local photo to stage.
type File struct {
	Name        string
	ContentType string
	Data        []byte
}

// ErrNoFiles is returned when Upload is called with an empty batch or every
// file in the batch failed to upload.
var ErrNoFiles = errors.New("no files uploaded")

// Session drives one user's upload flow. Safe for concurrent use.
type Session struct {
	store    ObjectStore
	analyzer Analyzer
	userID   uuid.UUID
	log      *slog.Logger

	mu     sync.Mutex
	state  State
	staged []string
}

// NewSession creates an idle session for the given user.
func NewSession(store ObjectStore, analyzer Analyzer, userID uuid.UUID, log *slog.Logger) *Session {
	return &Session{
		store:    store,
		analyzer: analyzer,
		userID:   userID,
		log:      log,
		state:    StateIdle,
	}
}

// State returns the current phase.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// StagedURLs returns the uploaded photo URLs awaiting analysis.
func (s *Session) StagedURLs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.staged))
	copy(out, s.staged)
	return out
}

// Upload stages the files in object storage. Files that fail to upload are
// skipped; if at least one succeeds the session becomes ready, otherwise it
// returns to idle with an error. Only callable from idle.
func (s *Session) Upload(ctx context.Context, files []File) ([]string, error) {
	s.mu.Lock()
	if s.state != StateIdle {
		s.mu.Unlock()
		return nil, fmt.Errorf("upload not allowed in state %s", s.state)
	}
	s.apply(event{kind: eventUploadStarted})
	s.mu.Unlock()

	var (
		urls     []string
		failures int
	)
	for _, f := range files {
		key := s.objectKey(f.Name)
		url, err := s.store.Upload(ctx, key, f.ContentType, f.Data)
		if err != nil {
			failures++
			s.log.WarnContext(ctx, "photo upload failed",
				slog.String("file", f.Name),
				slog.String("error", err.Error()),
			)
			continue
		}
		urls = append(urls, url)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if len(urls) == 0 {
		s.apply(event{kind: eventUploadFinished, failed: true})
		return nil, fmt.Errorf("%w (%d failures)", ErrNoFiles, failures)
	}

	s.apply(event{kind: eventUploadFinished, urls: urls})

	s.log.InfoContext(ctx, "photos staged",
		slog.String("user_id", s.userID.String()),
		slog.Int("uploaded", len(urls)),
		slog.Int("failed", failures),
	)

	return urls, nil
}

// Analyze submits the staged URLs. On success the session returns to idle
// and the created items are returned; on failure the staged URLs are kept
// so the user can retry. Only callable from ready.
func (s *Session) Analyze(ctx context.Context) ([]rest.ItemResponse, error) {
	s.mu.Lock()
	if s.state != StateReady {
		s.mu.Unlock()
		return nil, fmt.Errorf("analyze not allowed in state %s", s.state)
	}
	urls := make([]string, len(s.staged))
	copy(urls, s.staged)
	s.apply(event{kind: eventAnalysisStarted})
	s.mu.Unlock()

	items, err := s.analyzer.AnalyzeItems(ctx, urls)

	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		s.apply(event{kind: eventAnalysisFinished, failed: true})
		if errors.Is(err, domain.ErrUnauthorized) {
			return nil, err
		}
		return nil, fmt.Errorf("analyze staged photos: %w", err)
	}

	s.apply(event{kind: eventAnalysisFinished})

	s.log.InfoContext(ctx, "analysis finished",
		slog.String("user_id", s.userID.String()),
		slog.Int("items", len(items)),
	)

	return items, nil
}

// Cancel discards any staged URLs and returns the session to idle.
func (s *Session) Cancel() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.apply(event{kind: eventCancelled})
}

// apply runs the reducer. Caller must hold mu.
func (s *Session) apply(ev event) {
	s.state, s.staged = reduce(s.state, s.staged, ev)
}

// objectKey builds a per-user storage key with a fresh UUID, keeping the
// original file extension.
func (s *Session) objectKey(filename string) string {
	ext := strings.ToLower(path.Ext(filename))
	return fmt.Sprintf("%s/%s%s", s.userID, uuid.New(), ext)
}
