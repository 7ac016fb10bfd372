package services

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/furqanmax/Simple-POS/internal/models"
	"github.com/furqanmax/Simple-POS/internal/repositories"
)

type InstallmentService struct {
	InstallmentRepo *repositories.InstallmentRepository
}

func NewInstallmentService(repo *repositories.InstallmentRepository) *InstallmentService {
	return &InstallmentService{InstallmentRepo: repo}
}

func (s *InstallmentService) Create(ctx context.Context, req *models.CreateInstallmentRequest) (*models.Installment, error) {
	if req.CustomerName == "" {
		return nil, errors.New("customer name is required")
	}
	if req.Amount <= 0 {
		return nil, errors.New("amount must be greater than 0")
	}
	if req.DueDate.IsZero() {
		return nil, errors.New("due date is required")
	}

	inst := &models.Installment{
		OrderID:       req.OrderID,
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
		Amount:        req.Amount,
		DueDate:       req.DueDate,
		Notes:         req.Notes,
	}
	if err := s.InstallmentRepo.Create(ctx, inst); err != nil {
		return nil, err
	}
	return inst, nil
}

func (s *InstallmentService) List(ctx context.Context, status string) ([]*models.Installment, error) {
	return s.InstallmentRepo.List(ctx, status)
}

func (s *InstallmentService) MarkPaid(ctx context.Context, id int) error {
	return s.InstallmentRepo.MarkPaid(ctx, id, time.Now())
}

// StartOverdueSweep flips pending installments past due to overdue once an
// hour until the context is canceled.
func (s *InstallmentService) StartOverdueSweep(ctx context.Context) {
	go func() {
		ticker := time.NewTicker(time.Hour)
		defer ticker.Stop()

		s.sweep(ctx)
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				s.sweep(ctx)
			}
		}
	}()
}

func (s *InstallmentService) sweep(ctx context.Context) {
	flipped, err := s.InstallmentRepo.SweepOverdue(ctx, time.Now())
	if err != nil {
		log.Printf("[Installments] Overdue sweep failed: %v", err)
		return
	}
	if flipped > 0 {
		log.Printf("[Installments] Marked %d installment(s) overdue", flipped)
	}
}
