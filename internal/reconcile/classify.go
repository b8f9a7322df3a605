// Package reconcile holds the correspondence reconciliation engine: pure,
// stateless data transforms over entities the caller has already fetched.
// Nothing in this package touches the store or the cache.
package reconcile

import "strings"

// LinkType is the direction of a document<->dispatch link.
type LinkType string

const (
	// AgencyIncoming marks a document issued by an outside agency.
	AgencyIncoming LinkType = "agency_incoming"
	// CompanyOutgoing marks a document issued by the company itself.
	CompanyOutgoing LinkType = "company_outgoing"
)

// Direction is the document direction used by the unified work-event
// reference shape.
type Direction string

const (
	DirectionIncoming Direction = "incoming"
	DirectionOutgoing Direction = "outgoing"
)

// Direction maps a link type onto the direction vocabulary.
func (t LinkType) Direction() Direction {
	if t == CompanyOutgoing {
		return DirectionOutgoing
	}
	return DirectionIncoming
}

// Classifier derives a link's direction from a document code. The company
// prefix is injected configuration rather than a literal, so the rule can be
// exercised against any prefix.
type Classifier struct {
	prefix string
}

func NewClassifier(companyPrefix string) Classifier {
	return Classifier{prefix: companyPrefix}
}

// Prefix returns the configured company prefix.
func (c Classifier) Prefix() string {
	return c.prefix
}

// Classify returns CompanyOutgoing when the code starts with the company
// prefix and AgencyIncoming otherwise. Empty codes are agency incoming.
//
// This is the single source of truth for link direction. A stored link_type
// that disagrees with a fresh classification of the same code is stale data;
// the classified value wins.
func (c Classifier) Classify(code string) LinkType {
	if code != "" && c.prefix != "" && strings.HasPrefix(code, c.prefix) {
		return CompanyOutgoing
	}
	return AgencyIncoming
}
