// Package ropassert adapts rop.Result to testify. It reads a result only through
// GetSuccess/GetFailure and reports mismatches in the form
//
//	Expecting result:
//	  <Success[1]>
//	to contain:
//	  <2>
//	but did contain:
//	  <1>.
//
// AssertThat keeps going after a failed check, RequireThat stops the test.
package ropassert
