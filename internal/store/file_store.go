package store

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"time"

	"tapecalc/internal/domain"
	"tapecalc/internal/logger"
)

const (
	historyFile = "history.json"
	savedFile   = "saved.json"

	// Sealed variants; a passphrase switches the store to these names.
	historySealedFile = "history.enc"
	savedSealedFile   = "saved.enc"
)

var log = logger.ForComponent("store")

// historyDoc is the on-disk history collection, oldest entry first.
type historyDoc struct {
	NextID  domain.HistoryID      `json:"next_id"`
	Entries []domain.HistoryEntry `json:"entries"`
}

// savedDoc is the on-disk saved-measurement collection, oldest first.
type savedDoc struct {
	NextID domain.MeasurementID     `json:"next_id"`
	Items  []domain.SavedMeasurement `json:"items"`
}

// FileStore keeps history and saved measurements as JSON files in a
// directory. With a passphrase the files are sealed with scrypt and
// ChaCha20-Poly1305.
type FileStore struct {
	dir   string
	codec codec
	now   func() time.Time
	mu    sync.Mutex
}

// FileOption configures a FileStore.
type FileOption func(*FileStore)

// WithPassphrase seals both files under passphrase.
func WithPassphrase(passphrase string) FileOption {
	return func(s *FileStore) { s.codec.passphrase = passphrase }
}

// WithScryptCost overrides the scrypt N parameter used for new writes.
func WithScryptCost(n int) FileOption {
	return func(s *FileStore) { s.codec.kdf.N = n }
}

// WithClock sets the time source for CreatedAt.
func WithClock(now func() time.Time) FileOption {
	return func(s *FileStore) { s.now = now }
}

// NewFileStore returns a store rooted at dir, creating it if needed.
func NewFileStore(dir string, opts ...FileOption) (*FileStore, error) {
	s := &FileStore{dir: dir, codec: codec{kdf: defaultKDF()}, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *FileStore) historyPath() string {
	if s.codec.sealed() {
		return filepath.Join(s.dir, historySealedFile)
	}
	return filepath.Join(s.dir, historyFile)
}

func (s *FileStore) savedPath() string {
	if s.codec.sealed() {
		return filepath.Join(s.dir, savedSealedFile)
	}
	return filepath.Join(s.dir, savedFile)
}

// ---------- History ----------

func (s *FileStore) AddHistory(ctx context.Context, in domain.NewHistoryEntry) (domain.HistoryEntry, error) {
	if err := ctx.Err(); err != nil {
		return domain.HistoryEntry{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	var doc historyDoc
	if err := s.codec.readJSON(s.historyPath(), &doc); err != nil {
		return domain.HistoryEntry{}, err
	}
	doc.NextID++
	entry := domain.HistoryEntry{
		ID:         doc.NextID,
		Expression: in.Expression,
		Result:     in.Result,
		CreatedAt:  s.now().UTC(),
	}
	doc.Entries = append(doc.Entries, entry)
	if err := s.codec.writeJSON(s.historyPath(), doc); err != nil {
		return domain.HistoryEntry{}, err
	}
	log.Debug("history entry added", "id", entry.ID)
	return entry, nil
}

func (s *FileStore) ListHistory(ctx context.Context, limit int) ([]domain.HistoryEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	var doc historyDoc
	if err := s.codec.readJSON(s.historyPath(), &doc); err != nil {
		return nil, err
	}
	return newestFirst(doc.Entries, normalizeLimit(limit)), nil
}

func (s *FileStore) ClearHistory(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	var doc historyDoc
	if err := s.codec.readJSON(s.historyPath(), &doc); err != nil {
		return err
	}
	// Keep NextID so cleared identifiers are never reused.
	doc.Entries = nil
	return s.codec.writeJSON(s.historyPath(), doc)
}

// ---------- Saved measurements ----------

func (s *FileStore) AddSaved(ctx context.Context, in domain.NewSavedMeasurement) (domain.SavedMeasurement, error) {
	if err := ctx.Err(); err != nil {
		return domain.SavedMeasurement{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	var doc savedDoc
	if err := s.codec.readJSON(s.savedPath(), &doc); err != nil {
		return domain.SavedMeasurement{}, err
	}
	doc.NextID++
	m := domain.SavedMeasurement{
		ID:        doc.NextID,
		Label:     in.Label,
		Value:     in.Value,
		CreatedAt: s.now().UTC(),
	}
	doc.Items = append(doc.Items, m)
	if err := s.codec.writeJSON(s.savedPath(), doc); err != nil {
		return domain.SavedMeasurement{}, err
	}
	log.Debug("measurement saved", "id", m.ID)
	return m, nil
}

func (s *FileStore) ListSaved(ctx context.Context) ([]domain.SavedMeasurement, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	var doc savedDoc
	if err := s.codec.readJSON(s.savedPath(), &doc); err != nil {
		return nil, err
	}
	return newestFirst(doc.Items, 0), nil
}

func (s *FileStore) DeleteSaved(ctx context.Context, id domain.MeasurementID) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	var doc savedDoc
	if err := s.codec.readJSON(s.savedPath(), &doc); err != nil {
		return err
	}
	for i, m := range doc.Items {
		if m.ID == id {
			doc.Items = append(doc.Items[:i], doc.Items[i+1:]...)
			return s.codec.writeJSON(s.savedPath(), doc)
		}
	}
	return domain.ErrNotFound
}

// Close is a no-op; every call reads and writes the files directly.
func (s *FileStore) Close() error { return nil }

// newestFirst returns up to limit items of an oldest-first slice in reverse
// order. limit 0 means all.
func newestFirst[T any](items []T, limit int) []T {
	n := len(items)
	if limit > 0 && limit < n {
		n = limit
	}
	out := make([]T, 0, n)
	for i := len(items) - 1; i >= 0 && len(out) < n; i-- {
		out = append(out, items[i])
	}
	return out
}

// Compile-time assertion.
var _ domain.Store = (*FileStore)(nil)
