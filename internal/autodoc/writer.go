// Package autodoc writes the generated companion text for a document and
// links it via a revision row.
package autodoc

import (
	"context"

	"gorm.io/gorm"

	"github.com/docflow-app/docflow/internal/models"
	"github.com/docflow-app/docflow/pkg/logger"
	"github.com/docflow-app/docflow/pkg/metrics"
)

// Generator produces the autodoc body for a document. The real generator runs
// a tokenizer and a model over the document body; that pipeline lives outside
// this service, so the default implementation returns a fixed placeholder.
type Generator interface {
	Generate(ctx context.Context, doc *models.Document) (string, error)
}

// PlaceholderGenerator is the shipped Generator.
type PlaceholderGenerator struct{}

const placeholderBody = "Hello World."

func (PlaceholderGenerator) Generate(ctx context.Context, doc *models.Document) (string, error) {
	return placeholderBody, nil
}

// Writer inserts Autodoc+Revision pairs.
type Writer struct {
	db  *gorm.DB
	gen Generator
}

func NewWriter(db *gorm.DB, gen Generator) *Writer {
	if gen == nil {
		gen = PlaceholderGenerator{}
	}
	return &Writer{db: db, gen: gen}
}

// Write generates an autodoc for the document and records the revision link.
// Both rows are created in one transaction; the autodoc id comes straight from
// the insert.
func (w *Writer) Write(ctx context.Context, doc *models.Document) error {
	body, err := w.gen.Generate(ctx, doc)
	if err != nil {
		return err
	}

	err = w.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		ad := &models.Autodoc{AutodocBody: body}
		if err := tx.Create(ad).Error; err != nil {
			return err
		}
		rev := &models.Revision{DocumentID: doc.ID, AutodocID: ad.ID}
		return tx.Create(rev).Error
	})
	if err != nil {
		logger.Errorf("autodoc write for document %d failed: %v", doc.ID, err)
		return err
	}

	metrics.AutodocsWritten.Inc()
	return nil
}
