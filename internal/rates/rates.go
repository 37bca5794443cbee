// Package rates supplies the USD/BRL exchange rate: fetched from the
// public quote API, overridable with a manually configured rate which
// takes precedence whenever present.
package rates

import (
	"context"
	"fmt"
	"sync"

	"github.com/shopspring/decimal"
	"resty.dev/v3"

	"github.com/CristiandeOliveiraAbreu/DinheiroGlobal/internal/config"
	"github.com/CristiandeOliveiraAbreu/DinheiroGlobal/internal/logger"
)

const _quoteURL = "/json/last/USD-BRL"

type quoteResponse struct {
	USDBRL struct {
		Bid string `json:"bid"`
		Ask string `json:"ask"`
	} `json:"USDBRL"`
}

type Service struct {
	c   *resty.Client
	cfg config.RatesConfig

	logger logger.Logger

	mu      sync.RWMutex
	fetched float64
	manual  float64
	hasMan  bool
}

func NewService(cfg config.RatesConfig, logger logger.Logger) *Service {
	client := resty.New().
		SetLogger(logger).
		SetBaseURL(cfg.Address)

	return &Service{
		c:       client,
		cfg:     cfg,
		logger:  logger,
		fetched: cfg.DefaultRate,
	}
}

// Update fetches a fresh quote. On failure the previous rate stays.
func (s *Service) Update(ctx context.Context) error {
	resp, err := s.c.R().
		SetResult(&quoteResponse{}).
		SetContext(ctx).
		Get(_quoteURL)
	if err != nil {
		return fmt.Errorf("%w: can't request usd/brl quote", err)
	}
	defer resp.Body.Close()

	if resp.IsError() {
		return fmt.Errorf("usd/brl quote request error: %s", resp.Status())
	}

	d, err := decimal.NewFromString(resp.Result().(*quoteResponse).USDBRL.Bid)
	if err != nil {
		return fmt.Errorf("%w: can't parse usd/brl bid", err)
	}
	rate, _ := d.Float64()
	if rate <= 0 {
		return fmt.Errorf("non-positive usd/brl rate %f", rate)
	}

	s.mu.Lock()
	s.fetched = rate
	s.mu.Unlock()

	s.logger.Debugf("usd/brl rate updated to %f", rate)
	return nil
}

// Current returns the effective rate: the manual override when set,
// otherwise the last fetched quote.
func (s *Service) Current() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.hasMan {
		return s.manual
	}
	return s.fetched
}

func (s *Service) Fetched() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.fetched
}

func (s *Service) Manual() (float64, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.manual, s.hasMan
}

// SetManual installs an override; non-positive values clear it.
func (s *Service) SetManual(rate float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if rate <= 0 {
		s.manual, s.hasMan = 0, false
		return
	}
	s.manual, s.hasMan = rate, true
}

func (s *Service) ClearManual() {
	s.SetManual(0)
}
