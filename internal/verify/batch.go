package verify

import (
	"runtime"
	"sync"
)

// BatchResult is the outcome of verifying a set of members.
type BatchResult struct {
	Members []MemberResult

	// Governing is the index of the member with the highest governing
	// DCR; -1 for an empty batch
	Governing    int
	GoverningDCR float64
	Passes       bool
}

// RunBatch verifies every member concurrently. Each verification is
// pure and reads only its own inputs, so the batch needs no
// coordination beyond collecting results in input order. workers ≤ 0
// uses one worker per CPU.
func RunBatch(members []Member, opts Options) BatchResult {
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > len(members) {
		workers = len(members)
	}

	results := make([]MemberResult, len(members))
	if len(members) > 0 {
		jobs := make(chan int)
		var wg sync.WaitGroup
		wg.Add(workers)
		for w := 0; w < workers; w++ {
			go func() {
				defer wg.Done()
				for i := range jobs {
					results[i] = VerifyMember(members[i], opts)
				}
			}()
		}
		for i := range members {
			jobs <- i
		}
		close(jobs)
		wg.Wait()
	}

	batch := BatchResult{
		Members:   results,
		Governing: -1,
		Passes:    true,
	}
	for i, r := range results {
		if !r.Passes {
			batch.Passes = false
		}
		if r.Governing < 0 {
			continue
		}
		if batch.Governing < 0 || r.GoverningDCR > batch.GoverningDCR {
			batch.Governing = i
			batch.GoverningDCR = r.GoverningDCR
		}
	}
	return batch
}
