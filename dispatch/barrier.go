package dispatch

import "sync"

// barrier is the print barrier (C6 §4.5): it serializes print requests
// against every other operation, while letting non-print operations run
// in parallel with each other.
//
// It is a direct port of main.c's package-level lock/cond_print/cond_wait
// globals (guarding is_printing/in_execution) into an explicit struct, per
// spec.md §9's note that a reimplementation should encapsulate this behind
// a handle rather than rely on globals.
type barrier struct {
	mu         sync.Mutex
	condPrint  sync.Cond
	condWait   sync.Cond
	isPrinting int
	inExec     int
}

func newBarrier() *barrier {
	b := &barrier{}
	b.condPrint.L = &b.mu
	b.condWait.L = &b.mu
	return b
}

// enter blocks until it is this request's turn to run: every request
// first waits out any pending print, then a print request additionally
// waits for all in-flight operations to drain before proceeding. It
// returns having incremented inExec; the caller must call leave when done.
func (b *barrier) enter(isPrint bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for b.isPrinting > 0 {
		b.condPrint.Wait()
	}

	if isPrint {
		b.isPrinting++
		for b.inExec > 0 {
			b.condWait.Wait()
		}
	}

	b.inExec++
}

// donePrinting signals that a print request has finished running,
// releasing any operations that queued up behind it.
func (b *barrier) donePrinting() {
	b.mu.Lock()
	b.isPrinting--
	b.condPrint.Broadcast()
	b.mu.Unlock()
}

// leave signals that this request has finished running, waking a print
// that is waiting for in-flight operations to drain.
func (b *barrier) leave() {
	b.mu.Lock()
	b.inExec--
	b.condWait.Signal()
	b.mu.Unlock()
}
