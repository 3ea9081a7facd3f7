// README: Plan service orchestrates validate -> prompt -> invoke -> parse -> persist.
package plan

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
)

// DefaultHistoryLimit is how many record summaries a history listing returns.
const DefaultHistoryLimit = 20

// Generator produces raw model text for a prompt. Satisfied by ai.GeminiProvider.
type Generator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

// RecordStore persists travel records. Satisfied by *Store.
type RecordStore interface {
	Insert(ctx context.Context, rec *TravelRecord) (int64, error)
	ListRecent(ctx context.Context, limit int) ([]RecordSummary, error)
	GetByID(ctx context.Context, id int64) (*TravelRecord, error)
	DeleteByID(ctx context.Context, id int64) error
}

type Service struct {
	store RecordStore
	gen   Generator
	cache *HistoryCache
}

// NewService creates a Service. cache may be nil; the history listing then
// always hits the store.
func NewService(store RecordStore, gen Generator, cache *HistoryCache) *Service {
	return &Service{store: store, gen: gen, cache: cache}
}

// Generate runs one full plan-generation pipeline. Each call is a fresh,
// independent attempt: any stage failure short-circuits and nothing is
// persisted. Caller cancellation propagates into the model call through ctx.
//
// The record insert after a successful parse is a side effect outside the
// success contract: a failed insert is logged, never surfaced, and never a
// reason to re-run generation.
func (s *Service) Generate(ctx context.Context, req PlanRequest) (*PlanResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	prompt := BuildPrompt(req)

	raw, err := s.gen.GenerateText(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGeneration, err)
	}

	resp, err := ParseResponse(raw)
	if err != nil {
		return nil, err
	}

	s.persist(ctx, req, resp)
	return resp, nil
}

func (s *Service) persist(ctx context.Context, req PlanRequest, resp *PlanResponse) {
	if s.store == nil {
		return
	}

	prefs := "{}"
	if req.Preferences != nil {
		if b, err := json.Marshal(req.Preferences); err == nil {
			prefs = string(b)
		}
	}
	body, err := json.Marshal(resp)
	if err != nil {
		log.Printf("plan: marshal response for record: %v", err)
		return
	}

	rec := &TravelRecord{
		Origin:         req.Origin,
		Destination:    req.Destination,
		DepartTime:     req.DepartTime,
		TripLengthDays: req.TripLengthDays,
		Preferences:    prefs,
		Response:       string(body),
	}
	if _, err := s.store.Insert(ctx, rec); err != nil {
		log.Printf("plan: record insert failed: %v", err)
		return
	}
	if s.cache != nil {
		if err := s.cache.Invalidate(ctx); err != nil {
			log.Printf("plan: history cache invalidate: %v", err)
		}
	}
}

// History returns up to limit record summaries, newest first. The default
// listing is served from the cache when one is configured; cache errors
// degrade to the store.
func (s *Service) History(ctx context.Context, limit int) ([]RecordSummary, error) {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}

	cacheable := s.cache != nil && limit == DefaultHistoryLimit
	if cacheable {
		if items, ok, err := s.cache.Get(ctx); err != nil {
			log.Printf("plan: history cache read: %v", err)
		} else if ok {
			return items, nil
		}
	}

	items, err := s.store.ListRecent(ctx, limit)
	if err != nil {
		return nil, err
	}
	if cacheable {
		if err := s.cache.Set(ctx, items); err != nil {
			log.Printf("plan: history cache write: %v", err)
		}
	}
	return items, nil
}

// HistoryDetail returns the stored PlanResponse for a record id.
func (s *Service) HistoryDetail(ctx context.Context, id int64) (*PlanResponse, error) {
	rec, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	var resp PlanResponse
	if err := json.Unmarshal([]byte(rec.Response), &resp); err != nil {
		return nil, fmt.Errorf("decode stored response for record %d: %w", id, err)
	}
	return &resp, nil
}

// DeleteRecord removes a record by id; ErrNotFound when the id is absent.
func (s *Service) DeleteRecord(ctx context.Context, id int64) error {
	if err := s.store.DeleteByID(ctx, id); err != nil {
		return err
	}
	if s.cache != nil {
		if err := s.cache.Invalidate(ctx); err != nil {
			log.Printf("plan: history cache invalidate: %v", err)
		}
	}
	return nil
}
