package documents

import (
	"context"
	"errors"

	"github.com/docflow-app/docflow/internal/authz"
	"github.com/docflow-app/docflow/internal/autodoc"
	"github.com/docflow-app/docflow/internal/models"
	"github.com/docflow-app/docflow/internal/users"
	"github.com/docflow-app/docflow/pkg/logger"
	"github.com/docflow-app/docflow/pkg/metrics"
)

// ErrNoSuchEditor means the chosen editor id does not reference an editor
// account.
var ErrNoSuchEditor = errors.New("no such editor")

// Service implements the document workflow: create with assignment, edit
// with optional reassignment, and the per-user listings.
type Service struct {
	repo   Repository
	users  *users.Service
	writer *autodoc.Writer
}

func NewService(repo Repository, usersSvc *users.Service, writer *autodoc.Writer) *Service {
	return &Service{repo: repo, users: usersSvc, writer: writer}
}

// Create inserts a document with its retention row and writes the autodoc.
// The caller is already role- and approval-gated; Create only validates the
// chosen editor.
func (s *Service) Create(ctx context.Context, principal *models.User, name, body string, editorID uint) (*models.Document, error) {
	if err := s.checkEditor(ctx, editorID); err != nil {
		return nil, err
	}

	doc := &models.Document{DocumentName: name, DocumentBody: body}
	if err := s.repo.CreateWithRetention(ctx, doc, principal.ID, editorID); err != nil {
		return nil, err
	}

	if err := s.writer.Write(ctx, doc); err != nil {
		return nil, err
	}

	logger.Infof("document %d created by sponsor %d, assigned to editor %d", doc.ID, principal.ID, editorID)
	metrics.DocumentsCreated.Inc()
	return doc, nil
}

// Edit updates name and body after the ownership gate allows. Sponsors may
// also pass a new editor id; editors cannot reassign, their editorID is
// ignored at the handler layer and must be nil here.
func (s *Service) Edit(ctx context.Context, principal *models.User, documentID uint, name, body string, editorID *uint) error {
	ret, err := s.repo.GetRetention(ctx, documentID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return authz.ErrDenied
		}
		return err
	}
	if !authz.CanEditDocument(principal, ret) {
		return authz.ErrDenied
	}

	if err := s.repo.Update(ctx, documentID, name, body); err != nil {
		return err
	}

	if editorID != nil && principal.UserType == models.RoleSponsor && *editorID != ret.EditorID {
		if err := s.checkEditor(ctx, *editorID); err != nil {
			return err
		}
		if err := s.repo.ReassignEditor(ctx, documentID, *editorID); err != nil {
			return err
		}
	}
	return nil
}

// Get returns the document plus its retention row after the ownership gate
// allows, together with the linked autodoc body for display.
func (s *Service) Get(ctx context.Context, principal *models.User, documentID uint) (*models.Document, *models.Retention, string, error) {
	ret, err := s.repo.GetRetention(ctx, documentID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, nil, "", authz.ErrDenied
		}
		return nil, nil, "", err
	}
	if !authz.CanEditDocument(principal, ret) {
		return nil, nil, "", authz.ErrDenied
	}

	doc, err := s.repo.Get(ctx, documentID)
	if err != nil {
		return nil, nil, "", err
	}
	body, err := s.repo.GetAutodocBody(ctx, documentID)
	if err != nil {
		return nil, nil, "", err
	}
	return doc, ret, body, nil
}

func (s *Service) ListForSponsor(ctx context.Context, sponsorID uint) ([]Row, error) {
	return s.repo.ListBySponsor(ctx, sponsorID)
}

func (s *Service) ListForEditor(ctx context.Context, editorID uint) ([]Row, error) {
	return s.repo.ListByEditor(ctx, editorID)
}

func (s *Service) checkEditor(ctx context.Context, editorID uint) error {
	editor, err := s.users.GetByID(ctx, editorID)
	if err != nil {
		if errors.Is(err, users.ErrNotFound) {
			return ErrNoSuchEditor
		}
		return err
	}
	if editor.UserType != models.RoleEditor {
		return ErrNoSuchEditor
	}
	return nil
}
