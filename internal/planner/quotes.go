package planner

import (
	"context"
	"sync"

	"go.uber.org/multierr"

	"github.com/dmfuentes/smartcart-backend/pkg/db/models"
)

// quoteMatrix holds one quote per (retailer, item) pair, indexed by position
// in the retailer and item slices handed to collectQuotes.
type quoteMatrix [][]Quote

// collectQuotes fans quote requests out across a bounded worker pool and
// fails the run if any quote fails. Matrix positions are fixed up front so
// concurrency never changes result ordering.
func collectQuotes(ctx context.Context, oracle PricingOracle, retailers []models.Retailer, items []PlanItem, maxParallel int) (quoteMatrix, error) {
	if maxParallel <= 0 {
		maxParallel = 1
	}

	matrix := make(quoteMatrix, len(retailers))
	for i := range matrix {
		matrix[i] = make([]Quote, len(items))
	}

	type request struct {
		retailerIdx int
		itemIdx     int
	}

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		combined error
	)
	sem := make(chan struct{}, maxParallel)

	for r := range retailers {
		for i := range items {
			req := request{retailerIdx: r, itemIdx: i}
			wg.Add(1)
			sem <- struct{}{}
			go func() {
				defer wg.Done()
				defer func() { <-sem }()

				quote, err := oracle.Quote(ctx, retailers[req.retailerIdx], items[req.itemIdx].Name)
				mu.Lock()
				defer mu.Unlock()
				if err != nil {
					combined = multierr.Append(combined, err)
					return
				}
				matrix[req.retailerIdx][req.itemIdx] = quote
			}()
		}
	}
	wg.Wait()

	if combined != nil {
		return nil, combined
	}
	return matrix, nil
}
