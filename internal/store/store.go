package store

import (
	"context"
	"time"

	"github.com/emrgen/dispatch/internal/model"
)

// Store is the entity store backing the reconciliation services. Callers
// treat it as a remote data service: simple fetch/create/update/delete calls
// keyed by numeric ids, with no client-side locking and last-write-wins
// semantics.
type Store interface {
	DocumentStore
	DispatchOrderStore
	ProjectStore
	WorkEventStore
	LinkStore
	PaymentStore
	HistoryStore
	Transaction(ctx context.Context, f func(tx Store) error) error
	Migrate() error
}

type DocumentStore interface {
	// CreateDocument creates a new document record.
	CreateDocument(ctx context.Context, doc *model.Document) error
	// GetDocument retrieves a document by id.
	GetDocument(ctx context.Context, id uint) (*model.Document, error)
	// ListDocumentsFromIDs retrieves documents by ids; missing ids are simply
	// absent from the result, never an error.
	ListDocumentsFromIDs(ctx context.Context, ids []uint) ([]*model.Document, error)
}

type DispatchOrderStore interface {
	// CreateDispatchOrder creates a new dispatch order.
	CreateDispatchOrder(ctx context.Context, order *model.DispatchOrder) error
	// GetDispatchOrder retrieves a dispatch order with its linked documents
	// and projects preloaded.
	GetDispatchOrder(ctx context.Context, id uint) (*model.DispatchOrder, error)
	// ListDispatchOrders retrieves all dispatch orders.
	ListDispatchOrders(ctx context.Context) ([]*model.DispatchOrder, error)
	// UpdateDispatchOrder updates a dispatch order.
	UpdateDispatchOrder(ctx context.Context, order *model.DispatchOrder) error
	// DeleteDispatchOrder deletes a dispatch order together with its links,
	// work events and payment items.
	DeleteDispatchOrder(ctx context.Context, id uint) error
}

type ProjectStore interface {
	// CreateProject creates a new project.
	CreateProject(ctx context.Context, project *model.Project) error
	// GetProject retrieves a project by id.
	GetProject(ctx context.Context, id uint) (*model.Project, error)
}

type WorkEventStore interface {
	// CreateWorkEvent creates a new work event.
	CreateWorkEvent(ctx context.Context, ev *model.WorkEvent) error
	// GetWorkEvent retrieves a work event by id.
	GetWorkEvent(ctx context.Context, id uint) (*model.WorkEvent, error)
	// ListWorkEvents retrieves the work events of one dispatch order in sort
	// order.
	ListWorkEvents(ctx context.Context, dispatchOrderID uint) ([]*model.WorkEvent, error)
	// UpdateWorkEvent updates a work event.
	UpdateWorkEvent(ctx context.Context, ev *model.WorkEvent) error
	// DeleteWorkEvent deletes a work event by id.
	DeleteWorkEvent(ctx context.Context, id uint) error
}

// LinkStore owns the three relationship kinds. Deletes are keyed by the
// link's own id.
type LinkStore interface {
	CreateDocumentLink(ctx context.Context, link *model.DocumentLink) error
	GetDocumentLink(ctx context.Context, linkID uint) (*model.DocumentLink, error)
	DeleteDocumentLink(ctx context.Context, dispatchOrderID, linkID uint) error
	ListDocumentLinks(ctx context.Context, dispatchOrderID uint) ([]model.DocumentLink, error)
	// ListAllDocumentLinks retrieves every document link; used by the link
	// audit job.
	ListAllDocumentLinks(ctx context.Context) ([]model.DocumentLink, error)

	CreateProjectLink(ctx context.Context, link *model.ProjectLink) error
	GetProjectLink(ctx context.Context, linkID uint) (*model.ProjectLink, error)
	DeleteProjectLink(ctx context.Context, dispatchOrderID, linkID uint) error
	ListProjectLinks(ctx context.Context, dispatchOrderID uint) ([]model.ProjectLink, error)

	CreateDocumentProjectLink(ctx context.Context, link *model.DocumentProjectLink) error
	GetDocumentProjectLink(ctx context.Context, linkID uint) (*model.DocumentProjectLink, error)
	DeleteDocumentProjectLink(ctx context.Context, projectID, linkID uint) error
	ListDocumentProjectLinks(ctx context.Context, projectID uint) ([]model.DocumentProjectLink, error)
}

type PaymentStore interface {
	// SavePaymentItem creates or overwrites the payment item for one
	// dispatch order and category code.
	SavePaymentItem(ctx context.Context, item *model.PaymentItem) error
	// ListPaymentItems retrieves the payment items of one dispatch order.
	ListPaymentItems(ctx context.Context, dispatchOrderID uint) ([]model.PaymentItem, error)
}

// HistoryItem is one candidate document from the history matcher.
type HistoryItem struct {
	DocumentID uint
	DocNumber  string
	Subject    string
	DocDate    *time.Time
}

// HistoryMatch is the history matcher's answer, pre-split by document code
// prefix using the same convention the classifier applies.
type HistoryMatch struct {
	AgencyDocuments  []HistoryItem
	CompanyDocuments []HistoryItem
}

type HistoryStore interface {
	// MatchHistory retrieves candidate documents for a free-text project
	// name from past document<->project associations.
	MatchHistory(ctx context.Context, projectName, companyPrefix string) (*HistoryMatch, error)
}
