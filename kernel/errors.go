package kernel

import "errors"

// ErrKernelFailure wraps a numerical failure signaled by a Kernel
// implementation (overflow, ill-conditioned translation), per §7's KERNEL
// error kind. The evaluator does not retry or recover from it; it simply
// propagates the wrapped error to the caller.
var ErrKernelFailure = errors.New("kernel: operator failed")
