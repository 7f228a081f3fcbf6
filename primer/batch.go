// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package primer

import (
	"errors"
	"log"
	"sync"

	"github.com/biogo/genetools/seqrec"
)

// Batch designs primers for a set of sequences.
type Batch struct {
	Designer  Designer
	NumReturn int

	// KeepGoing isolates per-sequence design failures. When false
	// the first failure, in input order, aborts the batch.
	KeepGoing bool

	// Threads is the number of concurrent design requests. Values
	// less than two run the batch sequentially.
	Threads int

	// Log receives a line for each isolated failure. If nil
	// failures are not logged.
	Log *log.Logger
}

// Run designs primers for each record and returns NumReturn results per
// record, in input order.
func (b Batch) Run(recs []seqrec.Record) ([]Result, error) {
	if b.Designer == nil {
		return nil, errors.New("primer: no designer")
	}
	if b.NumReturn < 1 {
		return nil, errors.New("primer: number of pairs must be positive")
	}

	slots := make([][]Result, len(recs))
	errs := make([]error, len(recs))
	if b.Threads < 2 {
		for i, r := range recs {
			slots[i], errs[i] = Invoke(b.Designer, r.ID, r.Seq, b.NumReturn)
			if errs[i] != nil && !b.KeepGoing {
				return nil, errs[i]
			}
		}
	} else {
		b.concurrent(recs, slots, errs)
	}

	var res []Result
	for i, r := range recs {
		if err := errs[i]; err != nil {
			if !b.KeepGoing {
				return nil, err
			}
			if b.Log != nil {
				b.Log.Printf("skipping %q: %v", r.ID, err)
			}
			slots[i] = failed(r.ID, b.NumReturn, err)
		}
		res = append(res, slots[i]...)
	}
	return res, nil
}

func (b Batch) concurrent(recs []seqrec.Record, slots [][]Result, errs []error) {
	var (
		limit = make(chan struct{}, b.Threads)
		wg    sync.WaitGroup

		mu      sync.Mutex
		stopped bool
	)
	acquire := func() {
		wg.Add(1)
		limit <- struct{}{}
	}
	release := func() {
		<-limit
		wg.Done()
	}

	for i, r := range recs {
		acquire()
		mu.Lock()
		stop := stopped
		mu.Unlock()
		if stop {
			release()
			break
		}
		go func(i int, r seqrec.Record) {
			defer release()
			slots[i], errs[i] = Invoke(b.Designer, r.ID, r.Seq, b.NumReturn)
			if errs[i] != nil && !b.KeepGoing {
				mu.Lock()
				stopped = true
				mu.Unlock()
			}
		}(i, r)
	}
	wg.Wait()
}
