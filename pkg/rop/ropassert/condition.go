package ropassert

import "github.com/ib-77/result/pkg/rop"

// Condition is a named predicate used by HasSuccessMatching and HasFailureMatching
type Condition[T any] struct {
	Description string
	Matches     func(T) bool
}

func NewCondition[T any](matches func(T) bool, description string) Condition[T] {
	return Condition[T]{Description: description, Matches: matches}
}

func (c Condition[T]) check(value T) bool {
	if c.Matches == nil {
		panic(rop.IllegalArgument.New(conditionShouldNotNil))
	}
	return c.Matches(value)
}
