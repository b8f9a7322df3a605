package service

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/emrgen/dispatch/internal/cache"
	"github.com/emrgen/dispatch/internal/model"
	"github.com/emrgen/dispatch/internal/reconcile"
	"github.com/emrgen/dispatch/internal/store"
)

// NewDispatchService creates a new DispatchService.
func NewDispatchService(store store.Store, invalidator cache.Invalidator, classifier reconcile.Classifier) *DispatchService {
	return &DispatchService{
		store:       store,
		invalidator: invalidator,
		classifier:  classifier,
	}
}

// DispatchService reads and mutates dispatch orders and their work events,
// and assembles the derived views (correspondence matrix, aggregate status,
// payment advisories) from the pure reconcile package.
type DispatchService struct {
	store       store.Store
	invalidator cache.Invalidator
	classifier  reconcile.Classifier
}

// CreateDispatchOrder creates a new dispatch order.
func (s *DispatchService) CreateDispatchOrder(ctx context.Context, order *model.DispatchOrder) error {
	if err := s.store.CreateDispatchOrder(ctx, order); err != nil {
		return err
	}
	s.markStale(ctx, cache.DispatchOrderListKey())
	return nil
}

// GetDispatchOrder retrieves a dispatch order with its links preloaded.
func (s *DispatchService) GetDispatchOrder(ctx context.Context, id uint) (*model.DispatchOrder, error) {
	if id == 0 {
		return nil, ErrMissingDispatchOrderID
	}
	return s.store.GetDispatchOrder(ctx, id)
}

// DeleteDispatchOrder removes a dispatch order. The store cascades over
// links, events and payment items; here we only signal staleness.
func (s *DispatchService) DeleteDispatchOrder(ctx context.Context, id uint) error {
	if id == 0 {
		return ErrMissingDispatchOrderID
	}

	if err := s.store.DeleteDispatchOrder(ctx, id); err != nil {
		return err
	}

	s.markStale(ctx, cache.DispatchOrderKey(id), cache.DispatchOrderListKey())
	return nil
}

// Matrix assembles the correspondence matrix for a dispatch order: its linked
// documents paired against the work events that account for them, plus the
// unassigned side lists.
func (s *DispatchService) Matrix(ctx context.Context, dispatchOrderID uint) (*reconcile.Matrix, error) {
	if dispatchOrderID == 0 {
		return nil, ErrMissingDispatchOrderID
	}

	links, err := s.store.ListDocumentLinks(ctx, dispatchOrderID)
	if err != nil {
		return nil, fmt.Errorf("list document links: %w", err)
	}

	events, err := s.store.ListWorkEvents(ctx, dispatchOrderID)
	if err != nil {
		return nil, fmt.Errorf("list work events: %w", err)
	}

	return reconcile.BuildMatrix(s.classifier, links, events), nil
}

// Status derives the aggregate lifecycle status of a dispatch order from its
// work events, optionally restricted to one work category.
func (s *DispatchService) Status(ctx context.Context, dispatchOrderID uint, category string) (reconcile.WorkStatus, error) {
	if dispatchOrderID == 0 {
		return "", ErrMissingDispatchOrderID
	}

	events, err := s.store.ListWorkEvents(ctx, dispatchOrderID)
	if err != nil {
		return "", fmt.Errorf("list work events: %w", err)
	}

	if category != "" {
		filtered := events[:0]
		for _, ev := range events {
			if ev.Category != nil && *ev.Category == category {
				filtered = append(filtered, ev)
			}
		}
		events = filtered
	}

	return reconcile.AggregateStatus(events), nil
}

// PaymentAdvisories cross-checks the order's recorded payments against the
// category codes parsed from its labels. Advisories annotate; they never
// block anything.
func (s *DispatchService) PaymentAdvisories(ctx context.Context, dispatchOrderID uint) ([]reconcile.PaymentAdvisory, error) {
	if dispatchOrderID == 0 {
		return nil, ErrMissingDispatchOrderID
	}

	order, err := s.store.GetDispatchOrder(ctx, dispatchOrderID)
	if err != nil {
		return nil, err
	}

	items, err := s.store.ListPaymentItems(ctx, dispatchOrderID)
	if err != nil {
		return nil, fmt.Errorf("list payment items: %w", err)
	}

	codes := reconcile.ParsePaymentCodes(order.CategoryLabels)
	return reconcile.CheckPaymentConsistency(codes, items), nil
}

// CreateWorkEvent records a work event against a dispatch order.
func (s *DispatchService) CreateWorkEvent(ctx context.Context, ev *model.WorkEvent) error {
	if ev.DispatchOrderID == 0 {
		return ErrMissingDispatchOrderID
	}

	if ev.Status == "" {
		ev.Status = model.WorkStatusPending
	}

	if err := s.store.CreateWorkEvent(ctx, ev); err != nil {
		return err
	}

	s.markStale(ctx, cache.DispatchOrderKey(ev.DispatchOrderID), cache.DispatchOrderListKey())
	return nil
}

// UpdateWorkEvent updates a work event. The owning dispatch order is
// immutable after creation.
func (s *DispatchService) UpdateWorkEvent(ctx context.Context, ev *model.WorkEvent) error {
	existing, err := s.store.GetWorkEvent(ctx, ev.ID)
	if err != nil {
		return fmt.Errorf("fetch work event %d: %w", ev.ID, err)
	}

	if ev.DispatchOrderID != 0 && ev.DispatchOrderID != existing.DispatchOrderID {
		return ErrWorkEventMoved
	}
	ev.DispatchOrderID = existing.DispatchOrderID
	ev.CreatedAt = existing.CreatedAt

	if err := s.store.UpdateWorkEvent(ctx, ev); err != nil {
		return err
	}

	s.markStale(ctx, cache.DispatchOrderKey(ev.DispatchOrderID), cache.DispatchOrderListKey())
	return nil
}

// DeleteWorkEvent deletes a work event scoped to one dispatch order.
func (s *DispatchService) DeleteWorkEvent(ctx context.Context, dispatchOrderID, eventID uint) error {
	if dispatchOrderID == 0 {
		return ErrMissingDispatchOrderID
	}

	if err := s.store.DeleteWorkEvent(ctx, eventID); err != nil {
		return err
	}

	s.markStale(ctx, cache.DispatchOrderKey(dispatchOrderID), cache.DispatchOrderListKey())
	return nil
}

// QuickCreateWorkEvent creates a work event pre-filled from an unassigned
// document, so the document stops showing up in the unassigned lists. The
// event uses the unified reference shape.
func (s *DispatchService) QuickCreateWorkEvent(ctx context.Context, dispatchOrderID uint, doc reconcile.UnassignedDocument) (*model.WorkEvent, error) {
	if dispatchOrderID == 0 {
		return nil, ErrMissingDispatchOrderID
	}
	if doc.DocumentID == 0 {
		return nil, ErrMissingDocumentID
	}

	now := time.Now()
	direction := string(doc.LinkType.Direction())
	ev := &model.WorkEvent{
		DispatchOrderID:   dispatchOrderID,
		Description:       doc.Subject,
		RecordDate:        &now,
		Status:            model.WorkStatusPending,
		DocumentID:        &doc.DocumentID,
		DocumentDirection: &direction,
	}

	if err := s.CreateWorkEvent(ctx, ev); err != nil {
		return nil, err
	}

	return ev, nil
}

func (s *DispatchService) markStale(ctx context.Context, keys ...string) {
	if err := s.invalidator.MarkStale(ctx, keys...); err != nil {
		logrus.Warnf("failed to mark cache keys stale %v: %v", keys, err)
	}
}
