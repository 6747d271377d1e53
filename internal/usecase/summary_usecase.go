package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/redbank/bankmcp/internal/domain"
)

// SummaryUseCase serves the aggregate views with a read-through cache.
// Cache failures degrade to direct repository reads and are logged, never
// surfaced to the caller.
type SummaryUseCase struct {
	customerRepo  CustomerRepository
	statementRepo StatementRepository
	cache         Cache
	retrier       Retrier
	cacheTTL      time.Duration
	logger        zerolog.Logger
}

// NewSummaryUseCase creates a new SummaryUseCase. A nil cache disables
// caching entirely.
func NewSummaryUseCase(
	customerRepo CustomerRepository,
	statementRepo StatementRepository,
	cache Cache,
	retrier Retrier,
	cacheTTL time.Duration,
	logger zerolog.Logger,
) *SummaryUseCase {
	if retrier == nil {
		retrier = noRetry{}
	}

	return &SummaryUseCase{
		customerRepo:  customerRepo,
		statementRepo: statementRepo,
		cache:         cache,
		retrier:       retrier,
		cacheTTL:      cacheTTL,
		logger:        logger,
	}
}

// GetStatementSummary returns the per-statement aggregate, or (nil, nil)
// when the statement does not exist. A statement with zero transactions
// still yields a summary with zero counts and totals.
func (uc *SummaryUseCase) GetStatementSummary(ctx context.Context, statementID any) (*domain.StatementSummary, error) {
	id, err := domain.ValidateID(statementID, "statement_id")
	if err != nil {
		return nil, err
	}

	key := fmt.Sprintf("summary:statement:%d", id)

	var cached domain.StatementSummary
	if uc.cacheGet(ctx, key, &cached) {
		return &cached, nil
	}

	var summary *domain.StatementSummary
	err = uc.retrier.Retry(ctx, func() error {
		var err error
		summary, err = uc.statementRepo.Summary(ctx, id)
		return err
	})
	if err != nil {
		if errors.Is(err, domain.ErrStatementNotFound) {
			return nil, nil
		}
		return nil, domain.WrapDatabase("get_statement_summary", err)
	}

	uc.cacheSet(ctx, key, summary)

	return summary, nil
}

// GetCustomerSummary returns the per-customer aggregate, or (nil, nil) when
// the customer does not exist.
func (uc *SummaryUseCase) GetCustomerSummary(ctx context.Context, customerID any) (*domain.CustomerSummary, error) {
	id, err := domain.ValidateID(customerID, "customer_id")
	if err != nil {
		return nil, err
	}

	key := fmt.Sprintf("summary:customer:%d", id)

	var cached domain.CustomerSummary
	if uc.cacheGet(ctx, key, &cached) {
		return &cached, nil
	}

	var summary *domain.CustomerSummary
	err = uc.retrier.Retry(ctx, func() error {
		var err error
		summary, err = uc.customerRepo.Summary(ctx, id)
		return err
	})
	if err != nil {
		if errors.Is(err, domain.ErrCustomerNotFound) {
			return nil, nil
		}
		return nil, domain.WrapDatabase("get_customer_summary", err)
	}

	uc.cacheSet(ctx, key, summary)

	return summary, nil
}

// cacheGet loads a cached summary into out; false on miss, disabled cache,
// or any cache failure.
func (uc *SummaryUseCase) cacheGet(ctx context.Context, key string, out any) bool {
	if uc.cache == nil {
		return false
	}

	raw, err := uc.cache.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, ErrCacheMiss) {
			uc.logger.Warn().Err(err).Str("key", key).Msg("summary cache read failed")
		}
		return false
	}

	if err := json.Unmarshal([]byte(raw), out); err != nil {
		uc.logger.Warn().Err(err).Str("key", key).Msg("discarding undecodable cache entry")
		_ = uc.cache.Delete(ctx, key)
		return false
	}

	return true
}

func (uc *SummaryUseCase) cacheSet(ctx context.Context, key string, value any) {
	if uc.cache == nil {
		return
	}

	raw, err := json.Marshal(value)
	if err != nil {
		return
	}

	if err := uc.cache.Set(ctx, key, string(raw), uc.cacheTTL); err != nil {
		uc.logger.Warn().Err(err).Str("key", key).Msg("summary cache write failed")
	}
}
