package renderer

import (
	"sync"
	"testing"
)

func TestProgress_Fraction(t *testing.T) {
	p := NewProgress()
	if p.Fraction() != 0 {
		t.Errorf("Expected 0 before reset, got %f", p.Fraction())
	}

	p.reset(400)
	p.Add(100)
	if p.Fraction() != 0.25 {
		t.Errorf("Expected 0.25, got %f", p.Fraction())
	}

	p.Add(400)
	if p.Fraction() != 1 {
		t.Errorf("Fraction should cap at 1, got %f", p.Fraction())
	}
}

func TestRowBatcher_PublishesInBatches(t *testing.T) {
	p := NewProgress()
	p.reset(1000)
	batcher := &rowBatcher{progress: p}

	for i := 0; i < progressBatchRows-1; i++ {
		batcher.rowDone()
	}
	if p.RowsDone() != 0 {
		t.Errorf("Expected nothing published before a full batch, got %d", p.RowsDone())
	}

	batcher.rowDone()
	if p.RowsDone() != progressBatchRows {
		t.Errorf("Expected %d rows after a full batch, got %d", progressBatchRows, p.RowsDone())
	}

	for i := 0; i < 7; i++ {
		batcher.rowDone()
	}
	batcher.flush()
	if p.RowsDone() != progressBatchRows+7 {
		t.Errorf("Expected flush to publish the remainder, got %d", p.RowsDone())
	}
}

func TestProgress_ConcurrentBatchers(t *testing.T) {
	p := NewProgress()
	p.reset(8 * 250)

	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			batcher := &rowBatcher{progress: p}
			for i := 0; i < 250; i++ {
				batcher.rowDone()
			}
			batcher.flush()
		}()
	}
	wg.Wait()

	if p.RowsDone() != 2000 || p.Fraction() != 1 {
		t.Errorf("Expected all 2000 rows, got %d", p.RowsDone())
	}
}
