package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emrgen/dispatch/internal/cache"
	"github.com/emrgen/dispatch/internal/model"
	"github.com/emrgen/dispatch/internal/reconcile"
	"github.com/emrgen/dispatch/internal/store"
	"github.com/emrgen/dispatch/internal/tester"
)

func setupDispatch(t *testing.T) (*DispatchService, *LinkService, store.Store) {
	t.Helper()
	tester.Setup()

	classifier := reconcile.NewClassifier("中興")
	s := store.NewGormStore(tester.TestDB())
	dispatch := NewDispatchService(s, cache.NewNop(), classifier)
	links := NewLinkService(s, cache.NewNop(), classifier)
	return dispatch, links, s
}

func seedDocument(t *testing.T, s store.Store, code string) *model.Document {
	t.Helper()
	date := time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC)
	doc := &model.Document{Code: &code, Subject: &code, DocDate: &date}
	require.NoError(t, s.CreateDocument(context.TODO(), doc))
	return doc
}

func seedOrder(t *testing.T, s store.Store, labels string) *model.DispatchOrder {
	t.Helper()
	order := &model.DispatchOrder{
		DispatchCode:   "派113-001",
		ProjectName:    "樹林區地籍整理工程",
		CategoryLabels: labels,
	}
	require.NoError(t, s.CreateDispatchOrder(context.TODO(), order))
	return order
}

func TestDispatchService_Matrix(t *testing.T) {
	dispatch, links, s := setupDispatch(t)
	ctx := context.TODO()

	order := seedOrder(t, s, "01.地上物查估作業")
	in1 := seedDocument(t, s, "府地測字第1130042號")
	out1 := seedDocument(t, s, "中興字第1130001號")
	in2 := seedDocument(t, s, "府地測字第1130099號")

	for _, doc := range []*model.Document{in1, out1, in2} {
		_, err := links.LinkDocument(ctx, order.ID, doc.ID, "")
		require.NoError(t, err)
	}

	// two of the three linked documents get referencing events
	require.NoError(t, dispatch.CreateWorkEvent(ctx, &model.WorkEvent{
		DispatchOrderID:    order.ID,
		Status:             model.WorkStatusCompleted,
		IncomingDocumentID: &in1.ID,
	}))
	outDir := string(reconcile.DirectionOutgoing)
	require.NoError(t, dispatch.CreateWorkEvent(ctx, &model.WorkEvent{
		DispatchOrderID:   order.ID,
		Status:            model.WorkStatusInProgress,
		DocumentID:        &out1.ID,
		DocumentDirection: &outDir,
	}))

	m, err := dispatch.Matrix(ctx, order.ID)
	require.NoError(t, err)

	require.Len(t, m.Incoming, 2)
	require.Len(t, m.Outgoing, 1)
	assert.Len(t, m.Outgoing[0].Events, 1)

	require.Len(t, m.UnassignedIncoming, 1)
	assert.Equal(t, in2.ID, m.UnassignedIncoming[0].DocumentID)
	assert.Empty(t, m.UnassignedOutgoing)

	status, err := dispatch.Status(ctx, order.ID, "")
	require.NoError(t, err)
	assert.Equal(t, reconcile.StatusInProgress, status)
}

func TestDispatchService_QuickCreateWorkEvent(t *testing.T) {
	dispatch, links, s := setupDispatch(t)
	ctx := context.TODO()

	order := seedOrder(t, s, "01.地上物查估作業")
	doc := seedDocument(t, s, "府地測字第1130042號")
	_, err := links.LinkDocument(ctx, order.ID, doc.ID, "")
	require.NoError(t, err)

	m, err := dispatch.Matrix(ctx, order.ID)
	require.NoError(t, err)
	require.Len(t, m.UnassignedIncoming, 1)

	ev, err := dispatch.QuickCreateWorkEvent(ctx, order.ID, m.UnassignedIncoming[0])
	require.NoError(t, err)
	require.NotNil(t, ev.DocumentID)
	assert.Equal(t, doc.ID, *ev.DocumentID)
	assert.Equal(t, model.WorkStatusPending, ev.Status)

	// the document is now accounted for
	m, err = dispatch.Matrix(ctx, order.ID)
	require.NoError(t, err)
	assert.Empty(t, m.UnassignedIncoming)
	require.Len(t, m.Incoming, 1)
	assert.Len(t, m.Incoming[0].Events, 1)
}

func TestDispatchService_StatusByCategory(t *testing.T) {
	dispatch, _, s := setupDispatch(t)
	ctx := context.TODO()

	order := seedOrder(t, s, "01.地上物查估作業, 03.土地徵收市價查估作業")

	cat01, cat03 := "01", "03"
	require.NoError(t, dispatch.CreateWorkEvent(ctx, &model.WorkEvent{
		DispatchOrderID: order.ID, Category: &cat01, Status: model.WorkStatusCompleted,
	}))
	require.NoError(t, dispatch.CreateWorkEvent(ctx, &model.WorkEvent{
		DispatchOrderID: order.ID, Category: &cat03, Status: model.WorkStatusOverdue,
	}))

	status, err := dispatch.Status(ctx, order.ID, "01")
	require.NoError(t, err)
	assert.Equal(t, reconcile.StatusCompleted, status)

	status, err = dispatch.Status(ctx, order.ID, "")
	require.NoError(t, err)
	assert.Equal(t, reconcile.StatusOverdue, status)

	// a category with no events reads as pending
	status, err = dispatch.Status(ctx, order.ID, "05")
	require.NoError(t, err)
	assert.Equal(t, reconcile.StatusPending, status)
}

func TestDispatchService_PaymentAdvisories(t *testing.T) {
	dispatch, _, s := setupDispatch(t)
	ctx := context.TODO()

	order := seedOrder(t, s, "01.地上物查估作業, 03.土地徵收市價查估作業")

	amount := int64(120000)
	require.NoError(t, s.SavePaymentItem(ctx, &model.PaymentItem{
		DispatchOrderID: order.ID, Code: "01", Amount: &amount,
	}))
	stray := int64(9000)
	require.NoError(t, s.SavePaymentItem(ctx, &model.PaymentItem{
		DispatchOrderID: order.ID, Code: "05", Amount: &stray,
	}))

	advisories, err := dispatch.PaymentAdvisories(ctx, order.ID)
	require.NoError(t, err)

	require.Len(t, advisories, 1)
	assert.Equal(t, "05", advisories[0].Code)
	assert.Equal(t, int64(9000), advisories[0].Amount)
}

func TestDispatchService_UpdateWorkEvent_CannotMove(t *testing.T) {
	dispatch, _, s := setupDispatch(t)
	ctx := context.TODO()

	order := seedOrder(t, s, "01.地上物查估作業")
	other := seedOrder(t, s, "02.土地改良物查估作業")

	ev := &model.WorkEvent{DispatchOrderID: order.ID, Status: model.WorkStatusPending}
	require.NoError(t, dispatch.CreateWorkEvent(ctx, ev))

	ev.DispatchOrderID = other.ID
	err := dispatch.UpdateWorkEvent(ctx, ev)
	assert.ErrorIs(t, err, ErrWorkEventMoved)
}

func TestDispatchService_DeleteDispatchOrder(t *testing.T) {
	dispatch, links, s := setupDispatch(t)
	ctx := context.TODO()

	order := seedOrder(t, s, "01.地上物查估作業")
	doc := seedDocument(t, s, "府地測字第1130042號")
	_, err := links.LinkDocument(ctx, order.ID, doc.ID, "")
	require.NoError(t, err)
	require.NoError(t, dispatch.CreateWorkEvent(ctx, &model.WorkEvent{
		DispatchOrderID: order.ID, Status: model.WorkStatusPending,
	}))

	require.NoError(t, dispatch.DeleteDispatchOrder(ctx, order.ID))

	remaining, err := s.ListDocumentLinks(ctx, order.ID)
	require.NoError(t, err)
	assert.Empty(t, remaining)

	events, err := s.ListWorkEvents(ctx, order.ID)
	require.NoError(t, err)
	assert.Empty(t, events)
}
