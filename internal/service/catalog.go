// Package service contains the business logic orchestrating stores,
// search, and engagement tracking.
package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/showcaseapp/showcase-server/internal/domain"
	domainerrors "github.com/showcaseapp/showcase-server/internal/errors"
	"github.com/showcaseapp/showcase-server/internal/id"
	"github.com/showcaseapp/showcase-server/internal/store"
	"github.com/showcaseapp/showcase-server/internal/validation"
)

// CatalogItemInput is the authoring payload for a single item.
type CatalogItemInput struct {
	ID          string  `json:"id,omitempty"` // Kept on update, assigned on create
	Name        string  `json:"name" validate:"required,max=200"`
	Description string  `json:"description,omitempty" validate:"max=2000"`
	Price       float64 `json:"price" validate:"gte=0"`
	Category    string  `json:"category,omitempty" validate:"max=80"`
	ImageURL    string  `json:"image_url,omitempty" validate:"omitempty,url"`
}

// ThemeInput is the authoring payload for storefront theming. Every
// field is optional; the viewer applies defaults at render time.
type ThemeInput struct {
	Template        string `json:"template,omitempty" validate:"omitempty,oneof=DEFAULT GALLERY MINIMALIST"`
	PrimaryColor    string `json:"primary_color,omitempty" validate:"omitempty,hexcolor"`
	BackgroundColor string `json:"background_color,omitempty" validate:"omitempty,hexcolor"`
	TextColor       string `json:"text_color,omitempty" validate:"omitempty,hexcolor"`
	Font            string `json:"font,omitempty" validate:"max=80"`
	FontSizeHeading string `json:"font_size_heading,omitempty" validate:"max=40"`
	FontSizeBody    string `json:"font_size_body,omitempty" validate:"max=40"`
	LogoStyle       string `json:"logo_style,omitempty" validate:"omitempty,oneof=circle square"`
}

// CatalogInput is the authoring payload for creating or replacing a catalog.
type CatalogInput struct {
	Slug           string             `json:"slug" validate:"required,slug,max=80"`
	BusinessName   string             `json:"business_name" validate:"required,max=120"`
	Description    string             `json:"description,omitempty" validate:"max=2000"`
	LogoURL        string             `json:"logo_url,omitempty" validate:"omitempty,url"`
	PhoneNumber    string             `json:"phone_number,omitempty" validate:"max=30"`
	WhatsAppNumber string             `json:"whatsapp_number,omitempty" validate:"max=30"`
	Address        string             `json:"address,omitempty" validate:"max=300"`
	Theme          ThemeInput         `json:"theme" required:"false"`
	Items          []CatalogItemInput `json:"items" required:"false" validate:"dive"`
}

// CatalogService orchestrates catalog authoring with ownership
// enforcement and search index upkeep.
type CatalogService struct {
	store      *store.Store
	engagement *EngagementService
	validator  *validation.Validator
	logger     *slog.Logger
}

// NewCatalogService creates a new catalog service.
func NewCatalogService(store *store.Store, engagement *EngagementService, validator *validation.Validator, logger *slog.Logger) *CatalogService {
	return &CatalogService{
		store:      store,
		engagement: engagement,
		validator:  validator,
		logger:     logger,
	}
}

// CreateCatalog creates a new catalog for the owner.
func (s *CatalogService) CreateCatalog(ctx context.Context, ownerID string, input CatalogInput) (*domain.Catalog, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if ownerID == "" {
		return nil, domainerrors.Forbidden("owner is required")
	}
	if err := s.validator.Validate(input); err != nil {
		return nil, err
	}

	catalogID, err := id.Generate(id.Catalog)
	if err != nil {
		return nil, fmt.Errorf("generate catalog ID: %w", err)
	}

	now := time.Now()
	catalog := &domain.Catalog{
		ID:             catalogID,
		OwnerID:        ownerID,
		Slug:           input.Slug,
		BusinessName:   input.BusinessName,
		Description:    input.Description,
		LogoURL:        input.LogoURL,
		PhoneNumber:    input.PhoneNumber,
		WhatsAppNumber: input.WhatsAppNumber,
		Address:        input.Address,
		Theme:          themeFromInput(input.Theme),
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	catalog.Items, err = itemsFromInput(input.Items)
	if err != nil {
		return nil, err
	}

	if err := catalog.Validate(); err != nil {
		return nil, domainerrors.Validation(err.Error())
	}

	if err := s.store.CreateCatalog(ctx, catalog); err != nil {
		return nil, err
	}

	s.logger.Info("catalog created",
		"catalog_id", catalogID,
		"owner_id", ownerID,
		"slug", input.Slug,
	)

	return catalog, nil
}

// UpdateCatalog replaces a catalog's content. Requires ownership.
func (s *CatalogService) UpdateCatalog(ctx context.Context, ownerID, catalogID string, input CatalogInput) (*domain.Catalog, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	existing, err := s.store.GetCatalog(ctx, catalogID)
	if err != nil {
		return nil, err
	}
	if existing.OwnerID != ownerID {
		return nil, domainerrors.Forbidden("you do not own this catalog")
	}

	if err := s.validator.Validate(input); err != nil {
		return nil, err
	}

	catalog := &domain.Catalog{
		ID:             existing.ID,
		OwnerID:        existing.OwnerID,
		Slug:           input.Slug,
		BusinessName:   input.BusinessName,
		Description:    input.Description,
		LogoURL:        input.LogoURL,
		PhoneNumber:    input.PhoneNumber,
		WhatsAppNumber: input.WhatsAppNumber,
		Address:        input.Address,
		Theme:          themeFromInput(input.Theme),
		CreatedAt:      existing.CreatedAt,
		UpdatedAt:      time.Now(),
	}

	catalog.Items, err = itemsFromInput(input.Items)
	if err != nil {
		return nil, err
	}

	if err := catalog.Validate(); err != nil {
		return nil, domainerrors.Validation(err.Error())
	}

	if err := s.store.UpdateCatalog(ctx, catalog); err != nil {
		return nil, err
	}

	s.logger.Info("catalog updated",
		"catalog_id", catalogID,
		"owner_id", ownerID,
	)

	return catalog, nil
}

// DeleteCatalog deletes a catalog and purges its engagement data.
// Requires ownership.
func (s *CatalogService) DeleteCatalog(ctx context.Context, ownerID, catalogID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	catalog, err := s.store.GetCatalog(ctx, catalogID)
	if err != nil {
		return err
	}
	if catalog.OwnerID != ownerID {
		return domainerrors.Forbidden("you do not own this catalog")
	}

	if err := s.store.DeleteCatalog(ctx, catalogID); err != nil {
		return err
	}

	if err := s.engagement.PurgeCatalog(ctx, catalogID); err != nil {
		// The catalog is gone; orphaned counters are harmless but noisy.
		s.logger.Warn("failed to purge engagement data",
			"catalog_id", catalogID,
			"error", err,
		)
	}

	s.logger.Info("catalog deleted",
		"catalog_id", catalogID,
		"owner_id", ownerID,
	)

	return nil
}

// GetOwnedCatalog retrieves a catalog, enforcing ownership.
func (s *CatalogService) GetOwnedCatalog(ctx context.Context, ownerID, catalogID string) (*domain.Catalog, error) {
	catalog, err := s.store.GetCatalog(ctx, catalogID)
	if err != nil {
		return nil, err
	}
	if catalog.OwnerID != ownerID {
		return nil, domainerrors.Forbidden("you do not own this catalog")
	}
	return catalog, nil
}

// ListMyCatalogs returns all catalogs owned by a merchant.
func (s *CatalogService) ListMyCatalogs(ctx context.Context, ownerID string) ([]*domain.Catalog, error) {
	return s.store.ListCatalogsByOwner(ctx, ownerID)
}

// GetStats returns engagement counters and recent events for one of the
// owner's catalogs.
func (s *CatalogService) GetStats(ctx context.Context, ownerID, catalogID string, recentLimit int) (*domain.EngagementCounters, []*domain.EngagementEvent, error) {
	if _, err := s.GetOwnedCatalog(ctx, ownerID, catalogID); err != nil {
		return nil, nil, err
	}
	return s.engagement.Stats(ctx, catalogID, recentLimit)
}

// themeFromInput maps theme input onto the domain type unchanged; an
// empty field stays empty and resolves to its default at render time.
func themeFromInput(in ThemeInput) domain.Theme {
	return domain.Theme{
		Template:        domain.Template(in.Template),
		PrimaryColor:    in.PrimaryColor,
		BackgroundColor: in.BackgroundColor,
		TextColor:       in.TextColor,
		Font:            in.Font,
		FontSizeHeading: in.FontSizeHeading,
		FontSizeBody:    in.FontSizeBody,
		LogoStyle:       domain.LogoStyle(in.LogoStyle),
	}
}

// itemsFromInput maps item inputs onto domain items, assigning IDs to
// new entries.
func itemsFromInput(inputs []CatalogItemInput) ([]domain.CatalogItem, error) {
	items := make([]domain.CatalogItem, 0, len(inputs))
	for _, in := range inputs {
		itemID := in.ID
		if itemID == "" {
			var err error
			itemID, err = id.Generate(id.Item)
			if err != nil {
				return nil, fmt.Errorf("generate item ID: %w", err)
			}
		}
		items = append(items, domain.CatalogItem{
			ID:          itemID,
			Name:        in.Name,
			Description: in.Description,
			Price:       in.Price,
			Category:    in.Category,
			ImageURL:    in.ImageURL,
		})
	}
	return items, nil
}
