package planning

import (
	"context"
	"fmt"
	"log"
	"planboard/model"
	"sync"

	"github.com/jmoiron/sqlx"
)

// Source fetches planning rows for one store.
type Source interface {
	PlanningRows(ctx context.Context, storeID string) ([]model.PlanningRow, error)
}

// DBSource serves the Fetcher straight from the database.
type DBSource struct {
	DB *sqlx.DB
}

func (s DBSource) PlanningRows(ctx context.Context, storeID string) ([]model.PlanningRow, error) {
	var rows []model.PlanningRow
	const q = `
		SELECT store_id, sku_id, week, sales_units
		FROM planning
		WHERE store_id = ?
		ORDER BY sku_id, week
	`
	if err := s.DB.SelectContext(ctx, &rows, q, storeID); err != nil {
		return nil, fmt.Errorf("DBSource.PlanningRows (Store: %s) failed: %w", storeID, err)
	}
	return rows, nil
}

// Fetcher drives the planning view's store selection. Every Select supersedes
// the previous one: the in-flight request is cancelled and its response, if it
// still arrives, is discarded by sequence number. Only the latest selection's
// rows are ever applied, regardless of response order.
type Fetcher struct {
	source Source

	mu      sync.Mutex
	seq     uint64
	cancel  context.CancelFunc
	storeID string
	rows    []model.PlanningRow
	err     error
	loading bool
}

func NewFetcher(source Source) *Fetcher {
	return &Fetcher{source: source}
}

// Select switches the view to storeID and starts the fetch. An empty id
// clears the view and fetches nothing. The returned channel closes when this
// selection's request has settled (applied, discarded, or failed).
func (f *Fetcher) Select(ctx context.Context, storeID string) <-chan struct{} {
	done := make(chan struct{})

	f.mu.Lock()
	if f.cancel != nil {
		f.cancel()
		f.cancel = nil
	}
	f.seq++
	seq := f.seq
	f.storeID = storeID
	f.rows = nil
	f.err = nil

	if storeID == "" {
		f.loading = false
		f.mu.Unlock()
		close(done)
		return done
	}

	reqCtx, cancel := context.WithCancel(ctx)
	f.cancel = cancel
	f.loading = true
	f.mu.Unlock()

	go func() {
		defer close(done)
		rows, err := f.source.PlanningRows(reqCtx, storeID)
		cancel()

		f.mu.Lock()
		defer f.mu.Unlock()
		if seq != f.seq {
			// A newer selection superseded this request; drop the response.
			return
		}
		f.loading = false
		f.cancel = nil
		if err != nil {
			log.Printf("planning fetch for store %s failed: %v", storeID, err)
			f.err = err
			return
		}
		f.rows = rows
	}()
	return done
}

// State returns the current view state: selected store, rows, whether a fetch
// is in flight, and the last error for the current selection.
func (f *Fetcher) State() (storeID string, rows []model.PlanningRow, loading bool, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.storeID, f.rows, f.loading, f.err
}
