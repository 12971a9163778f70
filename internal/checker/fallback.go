package checker

import (
	"context"
	"log"
)

// LimitedAnalysisNotice is shown when the grammar service could not be used.
const LimitedAnalysisNotice = "Limited correctness analysis: the grammar service is unavailable, only spelling was checked."

// Result is what a Fallback check produced.
type Result struct {
	Matches  []Match
	Degraded bool
	Notice   string
}

// Fallback runs Primary and, if it fails, Secondary. It never returns an
// error: a failing grammar service degrades the analysis instead of failing
// the evaluation. There are no retries.
type Fallback struct {
	Primary   Checker
	Secondary Checker
}

func (f Fallback) Run(ctx context.Context, text string) Result {
	if f.Primary != nil {
		m, err := f.Primary.Check(ctx, text)
		if err == nil {
			return Result{Matches: m}
		}
		log.Printf("checker: primary failed, degrading: %v", err)
	}
	res := Result{Degraded: true, Notice: LimitedAnalysisNotice}
	if f.Secondary == nil {
		return res
	}
	m, err := f.Secondary.Check(ctx, text)
	if err != nil {
		log.Printf("checker: secondary failed: %v", err)
		return res
	}
	res.Matches = m
	return res
}
