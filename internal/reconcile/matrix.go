package reconcile

import (
	"sort"
	"time"

	"github.com/emrgen/dispatch/internal/model"
)

// MatrixRow pairs one linked document with the work events that account for
// it. LinkType is freshly classified from the document code, not read off the
// link record.
type MatrixRow struct {
	Link     model.DocumentLink
	LinkType LinkType
	Events   []*model.WorkEvent
}

// UnassignedDocument is a linked document no work event references yet. It
// carries enough for the caller to quick-create a work event pre-filled with
// the document, or to remove the link outright (by LinkID, never by
// DocumentID).
type UnassignedDocument struct {
	LinkID     uint
	DocumentID uint
	DocCode    string
	Subject    string
	DocDate    *time.Time
	LinkType   LinkType
}

// Matrix is the paired view of a dispatch order's linked documents against
// its recorded work events, split by direction, with the documents not yet
// accounted for in any event pulled out into side lists.
type Matrix struct {
	Incoming []MatrixRow
	Outgoing []MatrixRow

	UnassignedIncoming []UnassignedDocument
	UnassignedOutgoing []UnassignedDocument
}

// BuildMatrix assembles the correspondence matrix for one dispatch order.
//
// One pass over the events builds a document-id lookup through
// EffectiveDocumentRef; one pass over the links classifies each document and
// files it into the incoming or outgoing list, and additionally into the
// unassigned side list when no event references it.
//
// A legacy reference matches a linked document by id alone; a unified
// reference must also agree with the classified direction. Duplicate links
// are kept as-is rather than deduplicated, and events referencing a document
// id that is not linked here are simply ignored: unassigned-ness is computed
// from the document side.
func BuildMatrix(classifier Classifier, links []model.DocumentLink, events []*model.WorkEvent) *Matrix {
	type eventRef struct {
		ev        *model.WorkEvent
		direction Direction
		legacy    bool
	}

	refs := make(map[uint][]eventRef)
	for _, ev := range events {
		ref, ok := EffectiveDocumentRef(ev)
		if !ok {
			continue
		}
		refs[ref.DocumentID] = append(refs[ref.DocumentID], eventRef{
			ev:        ev,
			direction: ref.Direction,
			legacy:    ref.Legacy,
		})
	}

	m := &Matrix{
		Incoming:           make([]MatrixRow, 0, len(links)),
		Outgoing:           make([]MatrixRow, 0, len(links)),
		UnassignedIncoming: make([]UnassignedDocument, 0),
		UnassignedOutgoing: make([]UnassignedDocument, 0),
	}

	for _, link := range links {
		linkType := classifier.Classify(link.DocCode)
		direction := linkType.Direction()

		var matched []*model.WorkEvent
		for _, ref := range refs[link.DocumentID] {
			if ref.legacy || ref.direction == direction {
				matched = append(matched, ref.ev)
			}
		}

		row := MatrixRow{Link: link, LinkType: linkType, Events: matched}
		if direction == DirectionIncoming {
			m.Incoming = append(m.Incoming, row)
		} else {
			m.Outgoing = append(m.Outgoing, row)
		}

		if len(matched) > 0 {
			continue
		}

		unassigned := UnassignedDocument{
			LinkID:     link.ID,
			DocumentID: link.DocumentID,
			DocCode:    link.DocCode,
			Subject:    link.Subject,
			DocDate:    link.DocDate,
			LinkType:   linkType,
		}
		if direction == DirectionIncoming {
			m.UnassignedIncoming = append(m.UnassignedIncoming, unassigned)
		} else {
			m.UnassignedOutgoing = append(m.UnassignedOutgoing, unassigned)
		}
	}

	return m
}

// SortLinksByDate orders document links newest first; links without a date go
// last. The stored collection is unordered, so consumers that want a
// chronological listing sort explicitly.
func SortLinksByDate(links []model.DocumentLink) {
	sort.SliceStable(links, func(i, j int) bool {
		di, dj := links[i].DocDate, links[j].DocDate
		switch {
		case di == nil:
			return false
		case dj == nil:
			return true
		default:
			return di.After(*dj)
		}
	})
}
