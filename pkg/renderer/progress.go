package renderer

import "sync/atomic"

// progressBatchRows is how many scanned rows a worker accumulates before publishing them
const progressBatchRows = 100

// Progress counts scanned rows across all workers. It is only used for reporting
// and has no influence on the rendered result.
type Progress struct {
	rowsDone  atomic.Int64
	totalRows atomic.Int64
}

// NewProgress creates a progress counter
func NewProgress() *Progress {
	return &Progress{}
}

func (p *Progress) reset(totalRows int) {
	p.rowsDone.Store(0)
	p.totalRows.Store(int64(totalRows))
}

// Add records rows as scanned
func (p *Progress) Add(rows int) {
	p.rowsDone.Add(int64(rows))
}

// RowsDone returns the number of rows published so far
func (p *Progress) RowsDone() int64 {
	return p.rowsDone.Load()
}

// TotalRows returns the number of rows the current render will scan
func (p *Progress) TotalRows() int64 {
	return p.totalRows.Load()
}

// Fraction returns completion in [0, 1]
func (p *Progress) Fraction() float64 {
	total := p.totalRows.Load()
	if total <= 0 {
		return 0
	}
	return min(1.0, float64(p.rowsDone.Load())/float64(total))
}

// rowBatcher buffers one worker's row count and publishes it in batches
type rowBatcher struct {
	progress *Progress
	pending  int
}

func (b *rowBatcher) rowDone() {
	b.pending++
	if b.pending >= progressBatchRows {
		b.flush()
	}
}

func (b *rowBatcher) flush() {
	if b.pending > 0 {
		b.progress.Add(b.pending)
		b.pending = 0
	}
}
