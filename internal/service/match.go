package service

import (
	"context"
	"fmt"
	"time"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/emrgen/dispatch/internal/reconcile"
	"github.com/emrgen/dispatch/internal/store"
)

// NewMatchService creates a new MatchService.
func NewMatchService(store store.Store, links *LinkService) *MatchService {
	return &MatchService{
		store: store,
		links: links,
	}
}

// MatchService suggests document links for a dispatch order from history and
// turns a confirmed selection into link-creation calls.
type MatchService struct {
	store store.Store
	links *LinkService
}

// PickItem is one selectable auto-match candidate. LinkType was assigned by
// the history matcher when the candidate was retrieved and is preserved
// through confirmation, not re-classified.
type PickItem struct {
	DocumentID uint
	DocNumber  string
	Subject    string
	DocDate    *time.Time
	LinkType   reconcile.LinkType
	Selected   bool
}

// Proposal is the pick-list offered to the caller, every item pre-selected.
type Proposal struct {
	Agency  []PickItem
	Company []PickItem
}

// Empty reports whether there is nothing new to link.
func (p *Proposal) Empty() bool {
	return len(p.Agency) == 0 && len(p.Company) == 0
}

// Items returns the pick list as one slice, agency candidates first.
func (p *Proposal) Items() []PickItem {
	items := make([]PickItem, 0, len(p.Agency)+len(p.Company))
	items = append(items, p.Agency...)
	items = append(items, p.Company...)
	return items
}

// Tally reports a batch confirmation. A FailCount above zero means partial
// success: some links were created and stay created.
type Tally struct {
	SuccessCount int
	FailCount    int
}

// Propose retrieves candidate documents for the project name and filters out
// the ones already linked to the dispatch order. A failure retrieving
// candidates ends the flow with no partial state. An empty proposal means
// nothing new to link.
func (s *MatchService) Propose(ctx context.Context, dispatchOrderID uint, projectName string) (*Proposal, error) {
	if dispatchOrderID == 0 {
		return nil, ErrMissingDispatchOrderID
	}

	match, err := s.store.MatchHistory(ctx, projectName, s.links.classifier.Prefix())
	if err != nil {
		return nil, fmt.Errorf("history match for %q: %w", projectName, err)
	}

	links, err := s.store.ListDocumentLinks(ctx, dispatchOrderID)
	if err != nil {
		return nil, fmt.Errorf("list document links: %w", err)
	}

	linked := mapset.NewThreadUnsafeSet[uint]()
	for _, link := range links {
		linked.Add(link.DocumentID)
	}

	proposal := &Proposal{
		Agency:  pickItems(match.AgencyDocuments, reconcile.AgencyIncoming, linked),
		Company: pickItems(match.CompanyDocuments, reconcile.CompanyOutgoing, linked),
	}

	return proposal, nil
}

func pickItems(items []store.HistoryItem, linkType reconcile.LinkType, linked mapset.Set[uint]) []PickItem {
	picks := make([]PickItem, 0, len(items))
	for _, item := range items {
		if linked.Contains(item.DocumentID) {
			continue
		}
		picks = append(picks, PickItem{
			DocumentID: item.DocumentID,
			DocNumber:  item.DocNumber,
			Subject:    item.Subject,
			DocDate:    item.DocDate,
			LinkType:   linkType,
			Selected:   true,
		})
	}
	return picks
}

// Confirm creates one document link per selected item. The loop is
// deliberately sequential: the tally stays meaningful and the store is not
// hit with a concurrent burst for what is typically a small batch. Individual
// failures are counted and skipped; links already created are never rolled
// back.
func (s *MatchService) Confirm(ctx context.Context, dispatchOrderID uint, picks []PickItem) (Tally, error) {
	if dispatchOrderID == 0 {
		return Tally{}, ErrMissingDispatchOrderID
	}

	batchID := uuid.New().String()

	var tally Tally
	for _, pick := range picks {
		if !pick.Selected {
			continue
		}

		if _, err := s.links.LinkDocument(ctx, dispatchOrderID, pick.DocumentID, pick.LinkType); err != nil {
			logrus.Errorf("link batch %s: document %d: %v", batchID, pick.DocumentID, err)
			tally.FailCount++
			continue
		}
		tally.SuccessCount++
	}

	if tally.FailCount > 0 {
		logrus.Warnf("link batch %s: %d linked, %d failed", batchID, tally.SuccessCount, tally.FailCount)
	} else {
		logrus.Infof("link batch %s: %d linked", batchID, tally.SuccessCount)
	}

	return tally, nil
}
