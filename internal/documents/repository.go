package documents

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/docflow-app/docflow/internal/models"
)

var ErrNotFound = errors.New("document not found")

// Row is one entry of a per-user document listing: the document, its current
// editor and the autodoc attached through the revision table.
type Row struct {
	SponsorID    uint   `json:"sponsorId"`
	EditorID     uint   `json:"editorId"`
	DocumentID   uint   `json:"documentId"`
	EditorName   string `json:"editorName"`
	DocumentName string `json:"documentName"`
	DocumentBody string `json:"documentBody"`
	AutodocBody  string `json:"autodocBody"`
}

// Repository defines persistence operations for documents and their
// retention rows.
type Repository interface {
	CreateWithRetention(ctx context.Context, doc *models.Document, sponsorID, editorID uint) error
	Get(ctx context.Context, id uint) (*models.Document, error)
	GetRetention(ctx context.Context, documentID uint) (*models.Retention, error)
	GetAutodocBody(ctx context.Context, documentID uint) (string, error)
	Update(ctx context.Context, id uint, name, body string) error
	ReassignEditor(ctx context.Context, documentID, editorID uint) error
	ListBySponsor(ctx context.Context, sponsorID uint) ([]Row, error)
	ListByEditor(ctx context.Context, editorID uint) ([]Row, error)
}

// GormRepository implements Repository on the relational store
type GormRepository struct {
	db *gorm.DB
}

func NewGormRepository(db *gorm.DB) *GormRepository {
	return &GormRepository{db: db}
}

// CreateWithRetention inserts the document and its retention row in one
// transaction, so no orphaned document can exist. The document id comes
// straight from the insert.
func (r *GormRepository) CreateWithRetention(ctx context.Context, doc *models.Document, sponsorID, editorID uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(doc).Error; err != nil {
			return err
		}
		ret := &models.Retention{
			SponsorID:  sponsorID,
			EditorID:   editorID,
			DocumentID: doc.ID,
		}
		return tx.Create(ret).Error
	})
}

func (r *GormRepository) Get(ctx context.Context, id uint) (*models.Document, error) {
	var doc models.Document
	if err := r.db.WithContext(ctx).First(&doc, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &doc, nil
}

func (r *GormRepository) GetRetention(ctx context.Context, documentID uint) (*models.Retention, error) {
	var ret models.Retention
	if err := r.db.WithContext(ctx).Where("document_id = ?", documentID).First(&ret).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &ret, nil
}

// GetAutodocBody returns the companion text linked to the document, or an
// empty string when no revision exists yet.
func (r *GormRepository) GetAutodocBody(ctx context.Context, documentID uint) (string, error) {
	var body string
	err := r.db.WithContext(ctx).
		Table("revisions").
		Select("autodocs.autodoc_body").
		Joins("JOIN autodocs ON autodocs.id = revisions.autodoc_id").
		Where("revisions.document_id = ?", documentID).
		Order("revisions.id DESC").
		Limit(1).
		Scan(&body).Error
	return body, err
}

func (r *GormRepository) Update(ctx context.Context, id uint, name, body string) error {
	res := r.db.WithContext(ctx).Model(&models.Document{}).Where("id = ?", id).
		Updates(map[string]interface{}{"document_name": name, "document_body": body})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *GormRepository) ReassignEditor(ctx context.Context, documentID, editorID uint) error {
	res := r.db.WithContext(ctx).Model(&models.Retention{}).Where("document_id = ?", documentID).
		Update("editor_id", editorID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *GormRepository) ListBySponsor(ctx context.Context, sponsorID uint) ([]Row, error) {
	return r.list(ctx, "retentions.sponsor_id", sponsorID)
}

func (r *GormRepository) ListByEditor(ctx context.Context, editorID uint) ([]Row, error) {
	return r.list(ctx, "retentions.editor_id", editorID)
}

// list joins retentions, the editor's user row, documents and (optionally)
// the latest autodoc. LEFT JOINs keep documents without a revision visible
// with an empty autodoc body.
func (r *GormRepository) list(ctx context.Context, column string, id uint) ([]Row, error) {
	rows := make([]Row, 0)
	err := r.db.WithContext(ctx).
		Table("retentions").
		Select(`retentions.sponsor_id, retentions.editor_id, retentions.document_id,
			users.name AS editor_name, documents.document_name, documents.document_body,
			COALESCE(autodocs.autodoc_body, '') AS autodoc_body`).
		Joins("JOIN users ON users.id = retentions.editor_id").
		Joins("JOIN documents ON documents.id = retentions.document_id").
		Joins("LEFT JOIN revisions ON revisions.document_id = documents.id").
		Joins("LEFT JOIN autodocs ON autodocs.id = revisions.autodoc_id").
		Where(column+" = ?", id).
		Order("retentions.sponsor_id, retentions.document_id").
		Scan(&rows).Error
	return rows, err
}
