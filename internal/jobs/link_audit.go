package jobs

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/emrgen/dispatch/internal/reconcile"
	"github.com/emrgen/dispatch/internal/store"
)

// LinkAudit sweeps the stored document links and reports every record whose
// stored link_type disagrees with a fresh classification of its code. Reads
// always prefer the computed value, so a disagreement is drift to report, not
// an error to fix up in place.
type LinkAudit struct {
	store      store.Store
	classifier reconcile.Classifier
	cron       string
}

func NewLinkAudit(schedule string, store store.Store, classifier reconcile.Classifier) *LinkAudit {
	return &LinkAudit{
		store:      store,
		classifier: classifier,
		cron:       schedule,
	}
}

func (a *LinkAudit) Schedule() string {
	return a.cron
}

func (a *LinkAudit) Run() {
	drifted, total, err := a.Audit(context.Background())
	if err != nil {
		logrus.Errorf("link audit: %v", err)
		return
	}

	if drifted > 0 {
		logrus.Warnf("link audit: %d of %d links carry a stale link_type", drifted, total)
	} else {
		logrus.Debugf("link audit: %d links checked, no drift", total)
	}
}

// Audit returns how many of the stored links disagree with a fresh
// classification, and how many were checked.
func (a *LinkAudit) Audit(ctx context.Context) (drifted, total int, err error) {
	links, err := a.store.ListAllDocumentLinks(ctx)
	if err != nil {
		return 0, 0, err
	}

	for _, link := range links {
		computed := a.classifier.Classify(link.DocCode)
		if link.LinkType == string(computed) {
			continue
		}
		drifted++
		logrus.Warnf("link %d: stored type %q, classified %q from code %q",
			link.ID, link.LinkType, computed, link.DocCode)
	}

	return drifted, len(links), nil
}
