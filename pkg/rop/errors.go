package rop

import "github.com/zeebo/errs"

var (
	// NoSuchElement marks an attempt to extract a success value from a failure
	NoSuchElement = errs.Class("no such element")
	// IllegalArgument marks a nil callback or argument handed to a combinator
	IllegalArgument = errs.Class("illegal argument")
)
