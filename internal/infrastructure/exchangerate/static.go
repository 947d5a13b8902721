// Package exchangerate provides currency conversion for insight display.
// Rates come from a static configuration table; live quotes are out of scope.
package exchangerate

import (
	"context"
	"fmt"
	"strings"

	"github.com/subtrack-inc/subtrack/internal/shared/config"
)

// StaticProvider resolves rates from the configured table. All rates are
// quoted against the base currency, so a cross rate is to/base divided by
// from/base.
type StaticProvider struct {
	base  string
	rates map[string]float64
}

func NewStaticProvider(cfg config.ExchangeRateConfig) *StaticProvider {
	rates := make(map[string]float64, len(cfg.Rates)+1)
	for currency, rate := range cfg.Rates {
		rates[strings.ToUpper(currency)] = rate
	}

	base := strings.ToUpper(cfg.Base)
	if base == "" {
		base = "USD"
	}
	rates[base] = 1.0

	return &StaticProvider{base: base, rates: rates}
}

// Rate returns the multiplier converting an amount in from-currency to
// to-currency.
func (p *StaticProvider) Rate(ctx context.Context, from, to string) (float64, error) {
	from = strings.ToUpper(from)
	to = strings.ToUpper(to)
	if from == to {
		return 1.0, nil
	}

	fromRate, ok := p.rates[from]
	if !ok || fromRate == 0 {
		return 0, fmt.Errorf("no exchange rate configured for %s", from)
	}
	toRate, ok := p.rates[to]
	if !ok {
		return 0, fmt.Errorf("no exchange rate configured for %s", to)
	}

	return toRate / fromRate, nil
}
