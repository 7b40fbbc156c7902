package rop

import "github.com/zeebo/errs"

// Error is the class of errors raised when a result accessor is used against
// the branch the result does not hold.
var Error = errs.Class("rop")
