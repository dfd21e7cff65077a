package commands

import (
	"context"
	"errors"
	"io"
	"strings"
	"sync"

	"boardsnap/internal/domain"
)

// fakeAPI implements ports.BoardAPI with canned data and per-key failures.
type fakeAPI struct {
	mu sync.Mutex

	boardID    string
	resolveErr error

	cards   []domain.Card
	listErr error

	attachments map[string][]domain.Attachment // keyed by card ID
	attErr      map[string]error               // keyed by card ID

	export    domain.ExportDocument
	exportErr error

	content    map[string]string // keyed by attachment URL
	contentErr map[string]error  // keyed by attachment URL

	exportURL string   // last export URL requested
	fetched   []string // attachment URLs requested, in arrival order
}

func (f *fakeAPI) ResolveBoardID(_ context.Context, _ string) (string, error) {
	if f.resolveErr != nil {
		return "", f.resolveErr
	}
	return f.boardID, nil
}

func (f *fakeAPI) ListCards(_ context.Context, _ string) ([]domain.Card, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.cards, nil
}

func (f *fakeAPI) CardAttachments(_ context.Context, _, cardID string) ([]domain.Attachment, error) {
	if err := f.attErr[cardID]; err != nil {
		return nil, err
	}
	return f.attachments[cardID], nil
}

func (f *fakeAPI) FetchExport(_ context.Context, exportURL string) (domain.ExportDocument, error) {
	f.mu.Lock()
	f.exportURL = exportURL
	f.mu.Unlock()
	if f.exportErr != nil {
		return nil, f.exportErr
	}
	return f.export, nil
}

func (f *fakeAPI) FetchAttachment(_ context.Context, url string) (io.ReadCloser, error) {
	f.mu.Lock()
	f.fetched = append(f.fetched, url)
	f.mu.Unlock()

	if err := f.contentErr[url]; err != nil {
		return nil, err
	}
	body, ok := f.content[url]
	if !ok {
		return nil, errors.New("no content registered for " + url)
	}
	return io.NopCloser(strings.NewReader(body)), nil
}

func (f *fakeAPI) fetchedURLs() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.fetched...)
}

// fakeSink records saves in memory.
type fakeSink struct {
	mu    sync.Mutex
	files map[string][]byte
	docs  map[string]any
}

func newFakeSink() *fakeSink {
	return &fakeSink{
		files: map[string][]byte{},
		docs:  map[string]any{},
	}
}

func (s *fakeSink) SaveFile(name string, data []byte) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.files[name] = append([]byte(nil), data...)
	return "/out/" + name, nil
}

func (s *fakeSink) SaveJSON(name string, v any) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.docs[name] = v
	return "/out/" + name, nil
}

func (s *fakeSink) savedDocs() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.docs)
}

func contains(s, substr string) bool {
	return strings.Contains(s, substr)
}
