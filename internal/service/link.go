package service

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/emrgen/dispatch/internal/cache"
	"github.com/emrgen/dispatch/internal/model"
	"github.com/emrgen/dispatch/internal/reconcile"
	"github.com/emrgen/dispatch/internal/store"
)

// NewLinkService creates a new LinkService.
func NewLinkService(store store.Store, invalidator cache.Invalidator, classifier reconcile.Classifier) *LinkService {
	return &LinkService{
		store:       store,
		invalidator: invalidator,
		classifier:  classifier,
	}
}

// LinkService owns creation and removal of the three relationship kinds.
// Every delete is keyed by the link's own id; every successful mutation marks
// the affected query keys stale.
type LinkService struct {
	store       store.Store
	invalidator cache.Invalidator
	classifier  reconcile.Classifier
}

// LinkDocument links a document to a dispatch order. When linkType is empty
// it is classified from the document code; callers that already classified
// the document (the auto-matcher) pass their value through unchanged.
//
// The caller is responsible for not linking a document that is already linked
// to the order; the service does not re-validate that here.
func (s *LinkService) LinkDocument(ctx context.Context, dispatchOrderID, documentID uint, linkType reconcile.LinkType) (*model.DocumentLink, error) {
	if dispatchOrderID == 0 {
		return nil, ErrMissingDispatchOrderID
	}
	if documentID == 0 {
		return nil, ErrMissingDocumentID
	}

	doc, err := s.store.GetDocument(ctx, documentID)
	if err != nil {
		return nil, fmt.Errorf("fetch document %d: %w", documentID, err)
	}

	code := doc.CodeString()
	if linkType == "" {
		linkType = s.classifier.Classify(code)
	}

	link := &model.DocumentLink{
		DocumentID:      documentID,
		DispatchOrderID: dispatchOrderID,
		LinkType:        string(linkType),
		DocCode:         code,
		Subject:         doc.SubjectString(),
		DocDate:         doc.DocDate,
	}
	if err := s.store.CreateDocumentLink(ctx, link); err != nil {
		return nil, err
	}

	s.markStale(ctx,
		cache.DispatchOrderKey(dispatchOrderID),
		cache.DispatchOrderListKey(),
		cache.DocumentKey(documentID),
	)

	return link, nil
}

// UnlinkDocument removes a document link by its own id. A zero linkID is a
// data-integrity error: the store is not called at all.
func (s *LinkService) UnlinkDocument(ctx context.Context, dispatchOrderID, linkID uint) error {
	if dispatchOrderID == 0 {
		return ErrMissingDispatchOrderID
	}
	if linkID == 0 {
		return ErrMissingLinkID
	}

	link, err := s.store.GetDocumentLink(ctx, linkID)
	if err != nil {
		return fmt.Errorf("fetch document link %d: %w", linkID, err)
	}

	if err := s.store.DeleteDocumentLink(ctx, dispatchOrderID, linkID); err != nil {
		return err
	}

	s.markStale(ctx,
		cache.DispatchOrderKey(dispatchOrderID),
		cache.DispatchOrderListKey(),
		cache.DocumentKey(link.DocumentID),
	)

	return nil
}

// LinkProject links a project to a dispatch order, copying the project's
// display fields onto the link record.
func (s *LinkService) LinkProject(ctx context.Context, dispatchOrderID, projectID uint) (*model.ProjectLink, error) {
	if dispatchOrderID == 0 {
		return nil, ErrMissingDispatchOrderID
	}
	if projectID == 0 {
		return nil, ErrMissingProjectID
	}

	project, err := s.store.GetProject(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("fetch project %d: %w", projectID, err)
	}

	link := &model.ProjectLink{
		ProjectID:       projectID,
		DispatchOrderID: dispatchOrderID,
		ProjectName:     project.ProjectName,
		District:        project.District,
	}
	if err := s.store.CreateProjectLink(ctx, link); err != nil {
		return nil, err
	}

	s.markStale(ctx,
		cache.DispatchOrderKey(dispatchOrderID),
		cache.DispatchOrderListKey(),
		cache.ProjectKey(projectID),
	)

	return link, nil
}

// UnlinkProject removes a project link by its own id, with the same zero-id
// discipline as UnlinkDocument.
func (s *LinkService) UnlinkProject(ctx context.Context, dispatchOrderID, linkID uint) error {
	if dispatchOrderID == 0 {
		return ErrMissingDispatchOrderID
	}
	if linkID == 0 {
		return ErrMissingLinkID
	}

	link, err := s.store.GetProjectLink(ctx, linkID)
	if err != nil {
		return fmt.Errorf("fetch project link %d: %w", linkID, err)
	}

	if err := s.store.DeleteProjectLink(ctx, dispatchOrderID, linkID); err != nil {
		return err
	}

	s.markStale(ctx,
		cache.DispatchOrderKey(dispatchOrderID),
		cache.DispatchOrderListKey(),
		cache.ProjectKey(link.ProjectID),
	)

	return nil
}

// LinkDocumentProject links a document directly to a project.
func (s *LinkService) LinkDocumentProject(ctx context.Context, projectID, documentID uint) (*model.DocumentProjectLink, error) {
	if projectID == 0 {
		return nil, ErrMissingProjectID
	}
	if documentID == 0 {
		return nil, ErrMissingDocumentID
	}

	doc, err := s.store.GetDocument(ctx, documentID)
	if err != nil {
		return nil, fmt.Errorf("fetch document %d: %w", documentID, err)
	}

	link := &model.DocumentProjectLink{
		DocumentID: documentID,
		ProjectID:  projectID,
		DocCode:    doc.CodeString(),
		Subject:    doc.SubjectString(),
		DocDate:    doc.DocDate,
	}
	if err := s.store.CreateDocumentProjectLink(ctx, link); err != nil {
		return nil, err
	}

	s.markStale(ctx,
		cache.ProjectKey(projectID),
		cache.DocumentKey(documentID),
	)

	return link, nil
}

// UnlinkDocumentProject removes a document<->project link by its own id.
func (s *LinkService) UnlinkDocumentProject(ctx context.Context, projectID, linkID uint) error {
	if projectID == 0 {
		return ErrMissingProjectID
	}
	if linkID == 0 {
		return ErrMissingLinkID
	}

	link, err := s.store.GetDocumentProjectLink(ctx, linkID)
	if err != nil {
		return fmt.Errorf("fetch document project link %d: %w", linkID, err)
	}

	if err := s.store.DeleteDocumentProjectLink(ctx, projectID, linkID); err != nil {
		return err
	}

	s.markStale(ctx,
		cache.ProjectKey(projectID),
		cache.DocumentKey(link.DocumentID),
	)

	return nil
}

// markStale signals the invalidator after a successful mutation. The mutation
// already happened, so a failing signal is logged and swallowed; the caches
// will expire on their own.
func (s *LinkService) markStale(ctx context.Context, keys ...string) {
	if err := s.invalidator.MarkStale(ctx, keys...); err != nil {
		logrus.Warnf("failed to mark cache keys stale %v: %v", keys, err)
	}
}
