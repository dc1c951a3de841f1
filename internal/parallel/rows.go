package parallel

// bandsPerWorker controls how finely rows are split. More bands than workers
// lets work stealing even out rows of different cost.
const bandsPerWorker = 4

// Rows calls fn over disjoint half-open row ranges [y0, y1) that together
// cover [0, height), and returns when every call finished.
//
// With a nil pool or a single worker, fn runs once on the calling goroutine
// over the whole range.
func Rows(p *WorkerPool, height int, fn func(y0, y1 int)) {
	if height <= 0 {
		return
	}
	if p == nil || p.Workers() <= 1 {
		fn(0, height)
		return
	}

	bands := min(p.Workers()*bandsPerWorker, height)
	step := (height + bands - 1) / bands

	tasks := make([]func(), 0, bands)
	for y0 := 0; y0 < height; y0 += step {
		y1 := min(y0+step, height)
		tasks = append(tasks, func() { fn(y0, y1) })
	}
	p.ExecuteAll(tasks)
}
