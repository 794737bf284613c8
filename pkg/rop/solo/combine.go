package solo

import (
	"iter"

	"github.com/ib-77/result/pkg/rop"
	"github.com/zeebo/errs"
)

// Combine merges results into one. When every input is a success the outcome is a
// success over all success values; otherwise it is a failure over every failure
// value, not just the first. Both sequences keep input order and are lazy views
// over results, so results must not be modified while they are in use.
func Combine[S, F any](results []rop.Result[S, F]) rop.Result[iter.Seq[S], iter.Seq[F]] {
	hasFailure := false
	for _, r := range results {
		rop.Require(r, "result")
		hasFailure = hasFailure || r.HasFailure()
	}

	if hasFailure {
		return rop.Failure[iter.Seq[S]](failures(results))
	}
	return rop.Success[iter.Seq[S], iter.Seq[F]](successes(results))
}

// CombineErrors is Combine for error failures: every failure is joined into one error.
func CombineErrors[S any](results []rop.Result[S, error]) rop.Result[iter.Seq[S], error] {
	return MapFailure(Combine(results), func(seq iter.Seq[error]) error {
		var group []error
		for err := range seq {
			group = append(group, err)
		}
		return errs.Combine(group...)
	})
}

// Sequence collects success values in order and stops at the first failure,
// which becomes the outcome. Unlike Combine later results are not inspected.
func Sequence[S, F any](results []rop.Result[S, F]) rop.Result[[]S, F] {
	values := make([]S, 0, len(results))
	for _, r := range results {
		rop.Require(r, "result")

		if f, ok := r.GetFailure(); ok {
			return rop.Failure[[]S](f)
		}
		s, _ := r.GetSuccess()
		values = append(values, s)
	}
	return rop.Success[[]S, F](values)
}

func successes[S, F any](results []rop.Result[S, F]) iter.Seq[S] {
	return func(yield func(S) bool) {
		for _, r := range results {
			if s, ok := r.GetSuccess(); ok && !yield(s) {
				return
			}
		}
	}
}

func failures[S, F any](results []rop.Result[S, F]) iter.Seq[F] {
	return func(yield func(F) bool) {
		for _, r := range results {
			if f, ok := r.GetFailure(); ok && !yield(f) {
				return
			}
		}
	}
}
