package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/furqanmax/Simple-POS/internal/cache"
	"github.com/furqanmax/Simple-POS/internal/format"
	"github.com/furqanmax/Simple-POS/internal/models"
	"github.com/furqanmax/Simple-POS/internal/repositories"
)

type TemplateService struct {
	TemplateRepo *repositories.TemplateRepository
}

func NewTemplateService(templateRepo *repositories.TemplateRepository) *TemplateService {
	return &TemplateService{TemplateRepo: templateRepo}
}

// validateStyles rejects margins no stock can print. The thermal minimums
// are the lowest floor of any category; per-size checks happen again at
// render time through the layout defaults.
func validateStyles(styles models.TemplateStyles) error {
	m := format.Margins{
		Top:    styles.MarginTop,
		Right:  styles.MarginRight,
		Bottom: styles.MarginBottom,
		Left:   styles.MarginLeft,
	}
	// Zero margins mean "use the size defaults", skip validation.
	if m.Top == 0 && m.Right == 0 && m.Bottom == 0 && m.Left == 0 {
		return nil
	}
	if ok, problems := format.ValidateMargins(m, format.CategoryThermal); !ok {
		return fmt.Errorf("margins too small: %s", strings.Join(problems, "; "))
	}
	return nil
}

func (s *TemplateService) Create(ctx context.Context, req *models.CreateTemplateRequest) (*models.InvoiceTemplate, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, errors.New("template name is required")
	}
	if err := validateStyles(req.Styles); err != nil {
		return nil, err
	}

	t := &models.InvoiceTemplate{
		Name:         req.Name,
		IsDefault:    req.IsDefault,
		Header:       req.Header,
		Footer:       req.Footer,
		Styles:       req.Styles,
		BusinessInfo: req.BusinessInfo,
	}
	if err := s.TemplateRepo.Create(ctx, t); err != nil {
		return nil, fmt.Errorf("failed to create template: %w", err)
	}
	cache.CacheTemplate(ctx, t)
	return t, nil
}

func (s *TemplateService) Get(ctx context.Context, id int) (*models.InvoiceTemplate, error) {
	if cached, ok := cache.GetCachedTemplate(ctx, id); ok {
		return cached, nil
	}
	t, err := s.TemplateRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	cache.CacheTemplate(ctx, t)
	return t, nil
}

func (s *TemplateService) List(ctx context.Context) ([]*models.InvoiceTemplate, error) {
	return s.TemplateRepo.List(ctx)
}

func (s *TemplateService) Update(ctx context.Context, id int, req *models.CreateTemplateRequest) (*models.InvoiceTemplate, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, errors.New("template name is required")
	}
	if err := validateStyles(req.Styles); err != nil {
		return nil, err
	}

	t := &models.InvoiceTemplate{
		ID:           id,
		Name:         req.Name,
		IsDefault:    req.IsDefault,
		Header:       req.Header,
		Footer:       req.Footer,
		Styles:       req.Styles,
		BusinessInfo: req.BusinessInfo,
	}
	if err := s.TemplateRepo.Update(ctx, t); err != nil {
		return nil, err
	}
	cache.InvalidateTemplate(ctx, id)
	return s.TemplateRepo.Get(ctx, id)
}

func (s *TemplateService) Delete(ctx context.Context, id int) error {
	if err := s.TemplateRepo.Delete(ctx, id); err != nil {
		return err
	}
	cache.InvalidateTemplate(ctx, id)
	return nil
}

func (s *TemplateService) SetDefault(ctx context.Context, id int) error {
	if err := s.TemplateRepo.SetDefault(ctx, id); err != nil {
		return err
	}
	cache.InvalidateTemplate(ctx, id)
	return nil
}
