package rop

import "iter"

// Variant reports which side of a Result is held
type Variant interface {
	// HasSuccess returns true if the result holds a success value
	HasSuccess() bool
	// HasFailure returns true if the result holds a failure value
	HasFailure() bool
}

// Result holds either a success value of type S or a failure value of type F, never both.
// The only implementations are the ones returned by Success, Failure and Of.
type Result[S, F any] interface {
	Variant

	// GetSuccess returns the success value and true, or the zero S and false on a failure
	GetSuccess() (S, bool)
	// GetFailure returns the failure value and true, or the zero F and false on a success
	GetFailure() (F, bool)

	// OrElse returns the success value, or other on a failure
	OrElse(other S) S
	// OrElseMap returns the success value, or mapper applied to the failure value
	OrElseMap(mapper func(F) S) S
	// OrElseThrow returns the success value, or a NoSuchElement error on a failure
	OrElseThrow() (S, error)

	// StreamSuccess yields the success value once, or nothing on a failure
	StreamSuccess() iter.Seq[S]
	// StreamFailure yields the failure value once, or nothing on a success
	StreamFailure() iter.Seq[F]

	IfSuccess(action func(S)) Result[S, F]
	IfFailure(action func(F)) Result[S, F]
	IfSuccessOrElse(successAction func(S), failureAction func(F)) Result[S, F]

	// Filter turns a success into a failure when isAcceptable rejects its value
	Filter(isAcceptable func(S) bool, mapper func(S) F) Result[S, F]
	// Recover turns a failure into a success when isRecoverable accepts its value
	Recover(isRecoverable func(F) bool, mapper func(F) S) Result[S, F]

	// Equal reports whether other is the same variant holding a deeply equal value
	Equal(other Result[S, F]) bool
	// Same reports whether other is the same variant holding the identical value
	Same(other Result[S, F]) bool

	String() string

	sealed()
}
