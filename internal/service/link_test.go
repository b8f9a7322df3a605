package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emrgen/dispatch/internal/cache"
	"github.com/emrgen/dispatch/internal/reconcile"
)

func newLinkService(fake *fakeStore) *LinkService {
	return NewLinkService(fake, cache.NewNop(), reconcile.NewClassifier("中興"))
}

func TestLinkService_LinkDocument(t *testing.T) {
	fake := newFakeStore()
	fake.addDocument(1, "中興字第1130001號")
	fake.addDocument(2, "府地測字第1130042號")

	links := newLinkService(fake)

	t.Run("classifies from the document code", func(t *testing.T) {
		link, err := links.LinkDocument(context.TODO(), 10, 1, "")
		require.NoError(t, err)

		assert.Equal(t, string(reconcile.CompanyOutgoing), link.LinkType)
		assert.Equal(t, "中興字第1130001號", link.DocCode)
		assert.NotZero(t, link.ID)
		assert.NotEqual(t, link.ID, link.DocumentID)
	})

	t.Run("caller-provided type is preserved", func(t *testing.T) {
		link, err := links.LinkDocument(context.TODO(), 10, 2, reconcile.AgencyIncoming)
		require.NoError(t, err)
		assert.Equal(t, string(reconcile.AgencyIncoming), link.LinkType)
	})

	t.Run("zero document id refuses before the store", func(t *testing.T) {
		calls := fake.createLinkCalls
		_, err := links.LinkDocument(context.TODO(), 10, 0, "")
		assert.ErrorIs(t, err, ErrMissingDocumentID)
		assert.Equal(t, calls, fake.createLinkCalls)
	})

	t.Run("zero dispatch order id refuses", func(t *testing.T) {
		_, err := links.LinkDocument(context.TODO(), 0, 1, "")
		assert.ErrorIs(t, err, ErrMissingDispatchOrderID)
	})

	t.Run("unknown document surfaces the store error", func(t *testing.T) {
		_, err := links.LinkDocument(context.TODO(), 10, 999, "")
		assert.Error(t, err)
	})
}

func TestLinkService_UnlinkDocument(t *testing.T) {
	fake := newFakeStore()
	fake.addDocument(1, "中興字第1130001號")

	links := newLinkService(fake)

	t.Run("zero link id never reaches the store", func(t *testing.T) {
		err := links.UnlinkDocument(context.TODO(), 10, 0)

		assert.ErrorIs(t, err, ErrMissingLinkID)
		assert.Zero(t, fake.deleteLinkCalls)
	})

	t.Run("deletes by link id", func(t *testing.T) {
		link, err := links.LinkDocument(context.TODO(), 10, 1, "")
		require.NoError(t, err)

		err = links.UnlinkDocument(context.TODO(), 10, link.ID)
		require.NoError(t, err)
		assert.Equal(t, 1, fake.deleteLinkCalls)

		remaining, err := fake.ListDocumentLinks(context.TODO(), 10)
		require.NoError(t, err)
		assert.Empty(t, remaining)
	})
}
