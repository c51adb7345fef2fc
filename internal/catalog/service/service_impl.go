package service

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/abiramijewels/aurum/internal/actorctx"
	auditdomain "github.com/abiramijewels/aurum/internal/audit/domain"
	"github.com/abiramijewels/aurum/internal/catalog/domain"
	"github.com/abiramijewels/aurum/internal/clock"
	"github.com/bwmarrin/snowflake"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB       *gorm.DB
	Log      *zap.Logger
	GenID    *snowflake.Node
	Clock    clock.Clock
	Repo     domain.Repository
	Verifier domain.CredentialVerifier
	Audit    auditdomain.Recorder
}

// Service owns the in-process product collection and computes lifecycle
// transitions against it. The store remains the source of truth for
// existence: every mutation goes to the store first and is applied locally
// only once the store confirms it.
type Service struct {
	db       *gorm.DB
	log      *zap.Logger
	genID    *snowflake.Node
	clock    clock.Clock
	repo     domain.Repository
	verifier domain.CredentialVerifier
	audit    auditdomain.Recorder

	mu       sync.RWMutex
	products []domain.Product
}

func New(p Params) domain.Service {
	return &Service{
		db:       p.DB,
		log:      p.Log.Named("catalog.service"),
		genID:    p.GenID,
		clock:    p.Clock,
		repo:     p.Repo,
		verifier: p.Verifier,
		audit:    p.Audit,
	}
}

func (s *Service) Load(ctx context.Context) error {
	items, err := s.repo.FindAll(ctx, s.db)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.products = items
	s.mu.Unlock()

	s.log.Info("catalog loaded", zap.Int("products", len(items)))
	return nil
}

func (s *Service) List(_ context.Context, req domain.ListRequest) ([]domain.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	query := strings.ToLower(strings.TrimSpace(req.Query))

	out := make([]domain.Product, 0, len(s.products))
	for _, p := range s.products {
		if !req.IncludeArchived && p.State() == domain.StateArchived {
			continue
		}
		if req.Category != "" && p.Category != req.Category {
			continue
		}
		if query != "" &&
			!strings.Contains(strings.ToLower(p.Name), query) &&
			!strings.Contains(strings.ToLower(p.Description), query) {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (s *Service) Get(_ context.Context, id string) (*domain.Product, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, domain.ErrInvalidID
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.products {
		if p.ID == id {
			found := p
			return &found, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (s *Service) Create(ctx context.Context, req domain.CreateRequest) (*domain.Product, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, domain.ErrInvalidName
	}
	if strings.TrimSpace(string(req.Category)) == "" {
		return nil, domain.ErrInvalidCategory
	}
	if req.Price < 0 {
		return nil, domain.ErrInvalidPrice
	}

	id := strings.TrimSpace(req.ID)
	if id == "" {
		id = fmt.Sprintf("prod_%s", s.genID.Generate())
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.indexOfLocked(id) >= 0 {
		return nil, domain.ErrDuplicateID
	}

	now := s.clock.Now()
	product := domain.Product{
		ID:            id,
		Name:          name,
		SKU:           req.SKU,
		Category:      req.Category,
		Description:   strings.TrimSpace(req.Description),
		Images:        datatypes.NewJSONSlice(req.Images),
		Video:         req.Video,
		Price:         req.Price,
		Weight:        req.Weight,
		Purity:        req.Purity,
		Stock:         req.Stock,
		MakingCharges: req.MakingCharges,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.repo.Insert(ctx, s.db, &product); err != nil {
		return nil, err
	}

	s.products = append(s.products, product)
	s.audit.Record(ctx, auditdomain.ActionCreate, auditdomain.EntityProduct, product.ID, fmt.Sprintf("Created: %s", product.Name))
	return &product, nil
}

func (s *Service) Update(ctx context.Context, req domain.UpdateRequest) (*domain.Product, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, domain.ErrInvalidName
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOfLocked(strings.TrimSpace(req.ID))
	if idx < 0 {
		return nil, domain.ErrNotFound
	}

	current := s.products[idx]
	updated := domain.Product{
		ID:            current.ID,
		Name:          name,
		SKU:           req.SKU,
		Category:      req.Category,
		Description:   strings.TrimSpace(req.Description),
		Images:        datatypes.NewJSONSlice(req.Images),
		Video:         req.Video,
		Price:         req.Price,
		Weight:        req.Weight,
		Purity:        req.Purity,
		Stock:         req.Stock,
		MakingCharges: req.MakingCharges,
		DeletedAt:     current.DeletedAt,
		CreatedAt:     current.CreatedAt,
		UpdatedAt:     s.clock.Now(),
	}

	if err := s.repo.Replace(ctx, s.db, &updated); err != nil {
		return nil, err
	}

	s.products[idx] = updated
	s.audit.Record(ctx, auditdomain.ActionUpdate, auditdomain.EntityProduct, updated.ID, fmt.Sprintf("Updated: %s", updated.Name))
	return &updated, nil
}

// Archive hides a product from the storefront. It is the only transition
// with a confirmation gate: the caller must re-type the confirmation phrase
// and the acting user's password, both re-verified here at the moment of
// archiving.
func (s *Service) Archive(ctx context.Context, id string, confirm domain.ArchiveConfirmation) (*domain.Product, error) {
	actor, ok := actorctx.ActorFromContext(ctx)
	if !ok {
		return nil, domain.ErrNoActor
	}
	if strings.TrimSpace(confirm.Phrase) != domain.ArchiveConfirmationPhrase {
		return nil, domain.ErrConfirmationMismatch
	}
	if err := s.verifier.VerifyPassword(ctx, actor, confirm.Password); err != nil {
		return nil, domain.ErrPasswordMismatch
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOfLocked(strings.TrimSpace(id))
	if idx < 0 {
		return nil, domain.ErrNotFound
	}
	if s.products[idx].State() != domain.StateActive {
		return nil, domain.ErrNotActive
	}

	now := s.clock.Now()
	updated := s.products[idx]
	updated.DeletedAt = &now
	updated.UpdatedAt = now

	if err := s.repo.Replace(ctx, s.db, &updated); err != nil {
		return nil, err
	}

	s.products[idx] = updated
	s.audit.Record(ctx, auditdomain.ActionArchive, auditdomain.EntityProduct, updated.ID, "Archived product")
	return &updated, nil
}

func (s *Service) Restore(ctx context.Context, id string) (*domain.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOfLocked(strings.TrimSpace(id))
	if idx < 0 {
		return nil, domain.ErrNotFound
	}
	if s.products[idx].State() != domain.StateArchived {
		return nil, domain.ErrNotArchived
	}

	updated := s.products[idx]
	updated.DeletedAt = nil
	updated.UpdatedAt = s.clock.Now()

	if err := s.repo.Replace(ctx, s.db, &updated); err != nil {
		return nil, err
	}

	s.products[idx] = updated
	s.audit.Record(ctx, auditdomain.ActionRestore, auditdomain.EntityProduct, updated.ID, "Restored product")
	return &updated, nil
}

// Purge removes the record from the store permanently. Callers are expected
// to purge archived products only, but the convention is not enforced.
func (s *Service) Purge(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOfLocked(strings.TrimSpace(id))
	if idx < 0 {
		return domain.ErrNotFound
	}

	if err := s.repo.Delete(ctx, s.db, s.products[idx].ID); err != nil {
		return err
	}

	purgedID := s.products[idx].ID
	s.products = append(s.products[:idx], s.products[idx+1:]...)
	s.audit.Record(ctx, auditdomain.ActionPermanentDelete, auditdomain.EntityProduct, purgedID, "Permanently deleted product")
	return nil
}

func (s *Service) indexOfLocked(id string) int {
	for i, p := range s.products {
		if p.ID == id {
			return i
		}
	}
	return -1
}
