package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/emrgen/dispatch/internal/model"
	"github.com/emrgen/dispatch/internal/store"
)

func modelWithID(id uint) gorm.Model {
	return gorm.Model{ID: id}
}

// fakeStore records store calls so tests can assert how many were made. Only
// the methods the services under test touch are implemented; anything else
// panics through the embedded nil Store.
type fakeStore struct {
	store.Store

	documents map[uint]*model.Document
	projects  map[uint]*model.Project
	links     map[uint]*model.DocumentLink
	nextLink  uint

	createLinkCalls int
	deleteLinkCalls int

	// createLinkErr, when set, decides per-call failures by call number (1-based).
	createLinkErr func(call int) error

	history    *store.HistoryMatch
	historyErr error
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		documents: make(map[uint]*model.Document),
		projects:  make(map[uint]*model.Project),
		links:     make(map[uint]*model.DocumentLink),
		nextLink:  100,
	}
}

func (f *fakeStore) addDocument(id uint, code string) {
	f.documents[id] = &model.Document{Model: modelWithID(id), Code: &code}
}

func (f *fakeStore) GetDocument(ctx context.Context, id uint) (*model.Document, error) {
	doc, ok := f.documents[id]
	if !ok {
		return nil, errors.New("record not found")
	}
	return doc, nil
}

func (f *fakeStore) GetProject(ctx context.Context, id uint) (*model.Project, error) {
	project, ok := f.projects[id]
	if !ok {
		return nil, errors.New("record not found")
	}
	return project, nil
}

func (f *fakeStore) CreateDocumentLink(ctx context.Context, link *model.DocumentLink) error {
	f.createLinkCalls++
	if f.createLinkErr != nil {
		if err := f.createLinkErr(f.createLinkCalls); err != nil {
			return err
		}
	}
	f.nextLink++
	link.ID = f.nextLink
	f.links[link.ID] = link
	return nil
}

func (f *fakeStore) GetDocumentLink(ctx context.Context, linkID uint) (*model.DocumentLink, error) {
	link, ok := f.links[linkID]
	if !ok {
		return nil, errors.New("record not found")
	}
	return link, nil
}

func (f *fakeStore) DeleteDocumentLink(ctx context.Context, dispatchOrderID, linkID uint) error {
	f.deleteLinkCalls++
	delete(f.links, linkID)
	return nil
}

func (f *fakeStore) ListDocumentLinks(ctx context.Context, dispatchOrderID uint) ([]model.DocumentLink, error) {
	links := make([]model.DocumentLink, 0, len(f.links))
	for _, link := range f.links {
		if link.DispatchOrderID == dispatchOrderID {
			links = append(links, *link)
		}
	}
	return links, nil
}

func (f *fakeStore) MatchHistory(ctx context.Context, projectName, companyPrefix string) (*store.HistoryMatch, error) {
	if f.historyErr != nil {
		return nil, f.historyErr
	}
	if f.history == nil {
		return &store.HistoryMatch{}, nil
	}
	return f.history, nil
}
