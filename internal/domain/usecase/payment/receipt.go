package payment

import (
	"context"
	"strings"

	"github.com/amirhossein-jamali/payment-gateway/internal/domain/entity"
	errs "github.com/amirhossein-jamali/payment-gateway/internal/domain/error"
)

// GetReceipt returns a copy of the stored receipt
func (s *Service) GetReceipt(ctx context.Context, transactionID string) (*entity.TransactionRecord, error) {
	transactionID = strings.TrimSpace(transactionID)
	if transactionID == "" {
		return nil, errs.ErrTransactionNotFound
	}

	record, err := s.ledger.Get(ctx, transactionID)
	if err != nil {
		if !errs.IsNotFoundError(err) {
			s.logger.Error("Failed to load receipt", map[string]any{
				"transaction_id": transactionID,
				"error":          err.Error(),
			})
		}
		return nil, err
	}

	return record, nil
}

// GetReceiptFor returns the receipt only to the user who paid it.
// A receipt owned by someone else is reported as not found.
func (s *Service) GetReceiptFor(ctx context.Context, transactionID, username string) (*entity.TransactionRecord, error) {
	record, err := s.GetReceipt(ctx, transactionID)
	if err != nil {
		return nil, err
	}

	if !record.OwnedBy(username) {
		s.logger.Warn("Receipt requested by another user", map[string]any{
			"transaction_id": transactionID,
			"username":       username,
		})
		return nil, errs.ErrTransactionNotFound
	}

	return record, nil
}

// RecentReceipts returns up to limit receipts paid by username, newest first
func (s *Service) RecentReceipts(ctx context.Context, username string, limit int) ([]*entity.TransactionRecord, error) {
	if limit <= 0 {
		return nil, nil
	}

	records, err := s.ledger.List(ctx)
	if err != nil {
		s.logger.Error("Failed to list receipts", map[string]any{
			"username": username,
			"error":    err.Error(),
		})
		return nil, err
	}

	recent := make([]*entity.TransactionRecord, 0, limit)
	for i := len(records) - 1; i >= 0 && len(recent) < limit; i-- {
		if records[i].OwnedBy(username) {
			recent = append(recent, records[i])
		}
	}
	return recent, nil
}
