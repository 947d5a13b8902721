package usecases

import (
	"context"
	"fmt"

	"github.com/subtrack-inc/subtrack/internal/application/subscription/dto"
	"github.com/subtrack-inc/subtrack/internal/domain/subscription"
	"github.com/subtrack-inc/subtrack/internal/shared/biztime"
	"github.com/subtrack-inc/subtrack/internal/shared/logger"
	"github.com/subtrack-inc/subtrack/internal/shared/mapper"
)

type GetInsightsQuery struct {
	// HorizonDays bounds the upcoming-renewals window. Defaults to 30.
	HorizonDays int
	// TargetCurrency converts the totals when set. Requires an exchange
	// rate provider.
	TargetCurrency string `validate:"omitempty,len=3"`
}

type GetInsightsUseCase struct {
	subscriptionRepo subscription.Repository
	analysisService  *subscription.AnalysisService
	rates            ExchangeRateProvider
	logger           logger.Interface
}

func NewGetInsightsUseCase(
	subscriptionRepo subscription.Repository,
	analysisService *subscription.AnalysisService,
	rates ExchangeRateProvider,
	logger logger.Interface,
) *GetInsightsUseCase {
	return &GetInsightsUseCase{
		subscriptionRepo: subscriptionRepo,
		analysisService:  analysisService,
		rates:            rates,
		logger:           logger,
	}
}

func (uc *GetInsightsUseCase) Execute(ctx context.Context, query GetInsightsQuery) (*dto.InsightsDTO, error) {
	if err := validate.Struct(query); err != nil {
		return nil, fmt.Errorf("invalid insights query: %w", err)
	}

	horizon := query.HorizonDays
	if horizon <= 0 {
		horizon = 30
	}

	subs, err := uc.subscriptionRepo.FindAll(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list subscriptions", "error", err)
		return nil, fmt.Errorf("failed to list subscriptions: %w", err)
	}

	monthly, err := uc.analysisService.TotalMonthlyCost(subs)
	if err != nil {
		return nil, fmt.Errorf("failed to compute monthly total: %w", err)
	}
	annual, err := uc.analysisService.TotalAnnualCost(subs)
	if err != nil {
		return nil, fmt.Errorf("failed to compute annual total: %w", err)
	}
	breakdown, err := uc.analysisService.CostBreakdownByCategory(subs)
	if err != nil {
		return nil, fmt.Errorf("failed to compute category breakdown: %w", err)
	}

	monthlyDTO := dto.FromMoney(monthly)
	annualDTO := dto.FromMoney(annual)
	if query.TargetCurrency != "" && query.TargetCurrency != monthly.Currency() {
		rate, err := uc.rates.Rate(ctx, monthly.Currency(), query.TargetCurrency)
		if err != nil {
			uc.logger.Warnw("failed to resolve exchange rate",
				"error", err,
				"from", monthly.Currency(),
				"to", query.TargetCurrency,
			)
			return nil, fmt.Errorf("failed to resolve exchange rate: %w", err)
		}
		monthlyDTO = dto.MoneyDTO{Amount: monthly.Scale(rate).Amount().Round(2).InexactFloat64(), Currency: query.TargetCurrency}
		annualDTO = dto.MoneyDTO{Amount: annual.Scale(rate).Amount().Round(2).InexactFloat64(), Currency: query.TargetCurrency}
	}

	active := 0
	for _, sub := range subs {
		if sub.IsActive() {
			active++
		}
	}

	upcoming := uc.analysisService.UpcomingRenewals(subs, biztime.NowUTC(), horizon)

	return &dto.InsightsDTO{
		TotalSubscriptions:  len(subs),
		ActiveSubscriptions: active,
		MonthlyTotal:        monthlyDTO,
		AnnualTotal:         annualDTO,
		CategoryBreakdown:   mapper.MapSlice(breakdown, dto.FromCategoryCost),
		UpcomingRenewals:    mapper.MapSlice(upcoming, dto.FromRenewalEvent),
	}, nil
}
