package store

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/emrgen/dispatch/internal/model"
)

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{
		db: db,
	}
}

var _ Store = (*GormStore)(nil)

type GormStore struct {
	db *gorm.DB
}

func (g *GormStore) CreateDocument(ctx context.Context, doc *model.Document) error {
	return g.db.WithContext(ctx).Create(doc).Error
}

func (g *GormStore) GetDocument(ctx context.Context, id uint) (*model.Document, error) {
	var doc model.Document
	err := g.db.WithContext(ctx).First(&doc, id).Error
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

func (g *GormStore) ListDocumentsFromIDs(ctx context.Context, ids []uint) ([]*model.Document, error) {
	var docs []*model.Document
	err := g.db.WithContext(ctx).Where("id in (?)", ids).Find(&docs).Error
	return docs, err
}

func (g *GormStore) CreateDispatchOrder(ctx context.Context, order *model.DispatchOrder) error {
	return g.db.WithContext(ctx).Create(order).Error
}

func (g *GormStore) GetDispatchOrder(ctx context.Context, id uint) (*model.DispatchOrder, error) {
	var order model.DispatchOrder
	err := g.db.WithContext(ctx).
		Preload("LinkedDocuments").
		Preload("LinkedProjects").
		First(&order, id).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (g *GormStore) ListDispatchOrders(ctx context.Context) ([]*model.DispatchOrder, error) {
	var orders []*model.DispatchOrder
	err := g.db.WithContext(ctx).Order("created_at desc").Find(&orders).Error
	return orders, err
}

func (g *GormStore) UpdateDispatchOrder(ctx context.Context, order *model.DispatchOrder) error {
	return g.db.WithContext(ctx).Save(order).Error
}

// DeleteDispatchOrder removes the order and everything scoped to it. The
// cascade lives here, on the store side; services only trigger refetches.
func (g *GormStore) DeleteDispatchOrder(ctx context.Context, id uint) error {
	return g.db.WithContext(ctx).Transaction(func(db *gorm.DB) error {
		if err := db.Where("dispatch_order_id = ?", id).Delete(&model.DocumentLink{}).Error; err != nil {
			return err
		}
		if err := db.Where("dispatch_order_id = ?", id).Delete(&model.ProjectLink{}).Error; err != nil {
			return err
		}
		if err := db.Where("dispatch_order_id = ?", id).Delete(&model.WorkEvent{}).Error; err != nil {
			return err
		}
		if err := db.Where("dispatch_order_id = ?", id).Delete(&model.PaymentItem{}).Error; err != nil {
			return err
		}

		return db.Delete(&model.DispatchOrder{}, id).Error
	})
}

func (g *GormStore) CreateProject(ctx context.Context, project *model.Project) error {
	return g.db.WithContext(ctx).Create(project).Error
}

func (g *GormStore) GetProject(ctx context.Context, id uint) (*model.Project, error) {
	var project model.Project
	err := g.db.WithContext(ctx).First(&project, id).Error
	if err != nil {
		return nil, err
	}
	return &project, nil
}

func (g *GormStore) CreateWorkEvent(ctx context.Context, ev *model.WorkEvent) error {
	return g.db.WithContext(ctx).Create(ev).Error
}

func (g *GormStore) GetWorkEvent(ctx context.Context, id uint) (*model.WorkEvent, error) {
	var ev model.WorkEvent
	err := g.db.WithContext(ctx).First(&ev, id).Error
	if err != nil {
		return nil, err
	}
	return &ev, nil
}

func (g *GormStore) ListWorkEvents(ctx context.Context, dispatchOrderID uint) ([]*model.WorkEvent, error) {
	var events []*model.WorkEvent
	err := g.db.WithContext(ctx).
		Where("dispatch_order_id = ?", dispatchOrderID).
		Order("sort_order asc, id asc").
		Find(&events).Error
	return events, err
}

func (g *GormStore) UpdateWorkEvent(ctx context.Context, ev *model.WorkEvent) error {
	return g.db.WithContext(ctx).Save(ev).Error
}

func (g *GormStore) DeleteWorkEvent(ctx context.Context, id uint) error {
	return g.db.WithContext(ctx).Delete(&model.WorkEvent{}, id).Error
}

func (g *GormStore) CreateDocumentLink(ctx context.Context, link *model.DocumentLink) error {
	return g.db.WithContext(ctx).Create(link).Error
}

func (g *GormStore) GetDocumentLink(ctx context.Context, linkID uint) (*model.DocumentLink, error) {
	var link model.DocumentLink
	err := g.db.WithContext(ctx).First(&link, linkID).Error
	if err != nil {
		return nil, err
	}
	return &link, nil
}

func (g *GormStore) DeleteDocumentLink(ctx context.Context, dispatchOrderID, linkID uint) error {
	return g.db.WithContext(ctx).
		Where("id = ? AND dispatch_order_id = ?", linkID, dispatchOrderID).
		Delete(&model.DocumentLink{}).Error
}

func (g *GormStore) ListDocumentLinks(ctx context.Context, dispatchOrderID uint) ([]model.DocumentLink, error) {
	var links []model.DocumentLink
	err := g.db.WithContext(ctx).Where("dispatch_order_id = ?", dispatchOrderID).Find(&links).Error
	return links, err
}

func (g *GormStore) ListAllDocumentLinks(ctx context.Context) ([]model.DocumentLink, error) {
	var links []model.DocumentLink
	err := g.db.WithContext(ctx).Find(&links).Error
	return links, err
}

func (g *GormStore) CreateProjectLink(ctx context.Context, link *model.ProjectLink) error {
	return g.db.WithContext(ctx).Create(link).Error
}

func (g *GormStore) GetProjectLink(ctx context.Context, linkID uint) (*model.ProjectLink, error) {
	var link model.ProjectLink
	err := g.db.WithContext(ctx).First(&link, linkID).Error
	if err != nil {
		return nil, err
	}
	return &link, nil
}

func (g *GormStore) DeleteProjectLink(ctx context.Context, dispatchOrderID, linkID uint) error {
	return g.db.WithContext(ctx).
		Where("id = ? AND dispatch_order_id = ?", linkID, dispatchOrderID).
		Delete(&model.ProjectLink{}).Error
}

func (g *GormStore) ListProjectLinks(ctx context.Context, dispatchOrderID uint) ([]model.ProjectLink, error) {
	var links []model.ProjectLink
	err := g.db.WithContext(ctx).Where("dispatch_order_id = ?", dispatchOrderID).Find(&links).Error
	return links, err
}

func (g *GormStore) CreateDocumentProjectLink(ctx context.Context, link *model.DocumentProjectLink) error {
	return g.db.WithContext(ctx).Create(link).Error
}

func (g *GormStore) GetDocumentProjectLink(ctx context.Context, linkID uint) (*model.DocumentProjectLink, error) {
	var link model.DocumentProjectLink
	err := g.db.WithContext(ctx).First(&link, linkID).Error
	if err != nil {
		return nil, err
	}
	return &link, nil
}

func (g *GormStore) DeleteDocumentProjectLink(ctx context.Context, projectID, linkID uint) error {
	return g.db.WithContext(ctx).
		Where("id = ? AND project_id = ?", linkID, projectID).
		Delete(&model.DocumentProjectLink{}).Error
}

func (g *GormStore) ListDocumentProjectLinks(ctx context.Context, projectID uint) ([]model.DocumentProjectLink, error) {
	var links []model.DocumentProjectLink
	err := g.db.WithContext(ctx).Where("project_id = ?", projectID).Find(&links).Error
	return links, err
}

func (g *GormStore) SavePaymentItem(ctx context.Context, item *model.PaymentItem) error {
	var existing model.PaymentItem
	err := g.db.WithContext(ctx).
		Where("dispatch_order_id = ? AND code = ?", item.DispatchOrderID, item.Code).
		First(&existing).Error
	if err == nil {
		item.ID = existing.ID
		item.CreatedAt = existing.CreatedAt
	}
	return g.db.WithContext(ctx).Save(item).Error
}

func (g *GormStore) ListPaymentItems(ctx context.Context, dispatchOrderID uint) ([]model.PaymentItem, error) {
	var items []model.PaymentItem
	err := g.db.WithContext(ctx).
		Where("dispatch_order_id = ?", dispatchOrderID).
		Order("code asc").
		Find(&items).Error
	return items, err
}

// MatchHistory finds candidate documents for a project name in past
// document<->project associations and splits them by code prefix, the same
// convention the classifier uses.
func (g *GormStore) MatchHistory(ctx context.Context, projectName, companyPrefix string) (*HistoryMatch, error) {
	if strings.TrimSpace(projectName) == "" {
		return &HistoryMatch{}, nil
	}

	var links []model.DocumentProjectLink
	err := g.db.WithContext(ctx).
		Joins("JOIN projects ON projects.id = document_project_links.project_id").
		Where("projects.project_name LIKE ?", "%"+strings.TrimSpace(projectName)+"%").
		Order("document_project_links.doc_date desc").
		Find(&links).Error
	if err != nil {
		return nil, err
	}

	match := &HistoryMatch{
		AgencyDocuments:  make([]HistoryItem, 0, len(links)),
		CompanyDocuments: make([]HistoryItem, 0, len(links)),
	}
	for _, link := range links {
		item := HistoryItem{
			DocumentID: link.DocumentID,
			DocNumber:  link.DocCode,
			Subject:    link.Subject,
			DocDate:    link.DocDate,
		}
		if companyPrefix != "" && strings.HasPrefix(link.DocCode, companyPrefix) {
			match.CompanyDocuments = append(match.CompanyDocuments, item)
		} else {
			match.AgencyDocuments = append(match.AgencyDocuments, item)
		}
	}

	return match, nil
}

func (g *GormStore) Migrate() error {
	return model.Migrate(g.db)
}

func (g *GormStore) Transaction(ctx context.Context, f func(tx Store) error) error {
	return g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return f(&GormStore{db: tx})
	})
}
