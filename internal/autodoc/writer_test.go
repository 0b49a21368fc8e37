package autodoc

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docflow-app/docflow/internal/models"
	"github.com/docflow-app/docflow/internal/tester"
)

func TestWriteLinksAutodocToDocument(t *testing.T) {
	db := tester.NewDB(t)
	ctx := context.Background()

	doc := &models.Document{DocumentName: "n", DocumentBody: "b"}
	require.NoError(t, db.Create(doc).Error)

	w := NewWriter(db, nil)
	require.NoError(t, w.Write(ctx, doc))

	var rev models.Revision
	require.NoError(t, db.Where("document_id = ?", doc.ID).First(&rev).Error)

	var ad models.Autodoc
	require.NoError(t, db.First(&ad, rev.AutodocID).Error)
	assert.Equal(t, "Hello World.", ad.AutodocBody)
}

type failingGenerator struct{}

func (failingGenerator) Generate(ctx context.Context, doc *models.Document) (string, error) {
	return "", errors.New("model unavailable")
}

func TestWriteGeneratorFailureLeavesNothingBehind(t *testing.T) {
	db := tester.NewDB(t)
	ctx := context.Background()

	doc := &models.Document{DocumentName: "n", DocumentBody: "b"}
	require.NoError(t, db.Create(doc).Error)

	w := NewWriter(db, failingGenerator{})
	require.Error(t, w.Write(ctx, doc))

	var autodocs, revisions int64
	require.NoError(t, db.Model(&models.Autodoc{}).Count(&autodocs).Error)
	require.NoError(t, db.Model(&models.Revision{}).Count(&revisions).Error)
	assert.Zero(t, autodocs)
	assert.Zero(t, revisions)
}
