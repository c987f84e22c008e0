package extract

import (
	"context"
	"fmt"

	"github.com/specialistvlad/wardleygo/internal/ctxlog"
	"github.com/specialistvlad/wardleygo/internal/model"
)

// Result is the raw output of one Run: records bucketed by collection and
// the line-level errors in line order.
type Result struct {
	Buckets map[string][]any
	Errors  []model.ParseError
}

// Run applies every extractor to every line exactly once. Ids are assigned
// per collection starting at 1, in emission order; the counters live only
// for the duration of the call.
func Run(ctx context.Context, lines []Line, extractors []Extractor) *Result {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Extraction started.", "lines", len(lines), "extractors", len(extractors))

	result := &Result{
		Buckets: make(map[string][]any, len(extractors)),
		Errors:  []model.ParseError{},
	}
	counters := make(map[string]int, len(extractors))

	for _, line := range lines {
		for _, ex := range extractors {
			record, err := safeExtract(ex, line)
			if err != nil {
				logger.Debug("Line rejected by extractor.", "line", line.Number, "collection", ex.Collection(), "error", err)
				result.Errors = append(result.Errors, model.ParseError{Line: line.Number, Message: err.Error()})
			}
			if record == nil {
				continue
			}

			collection := ex.Collection()
			counters[collection]++
			if rec, ok := record.(Identifiable); ok {
				rec.SetID(counters[collection])
			}
			result.Buckets[collection] = append(result.Buckets[collection], record)
		}
	}

	logger.Debug("Extraction finished.", "collections", len(result.Buckets), "errors", len(result.Errors))
	return result
}

// safeExtract shields the runner from a panicking extractor; the panic is
// reported as an error for that line.
func safeExtract(ex Extractor, line Line) (record any, err error) {
	defer func() {
		if r := recover(); r != nil {
			record = nil
			err = fmt.Errorf("%s extractor failed: %v", ex.Collection(), r)
		}
	}()
	return ex.Extract(line)
}

// Collect returns the records of one collection whose dynamic type is *T,
// dereferenced, in bucket order.
func Collect[T any](r *Result, collection string) []T {
	items := r.Buckets[collection]
	out := make([]T, 0, len(items))
	for _, item := range items {
		if v, ok := item.(*T); ok {
			out = append(out, *v)
		}
	}
	return out
}

// Last returns the final record of type *T in a collection, if any. Singleton
// statements such as `title` follow last-one-wins.
func Last[T any](r *Result, collection string) (T, bool) {
	var zero T
	items := r.Buckets[collection]
	for i := len(items) - 1; i >= 0; i-- {
		if v, ok := items[i].(*T); ok {
			return *v, true
		}
	}
	return zero, false
}
