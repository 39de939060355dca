/*
Package kernel defines the contract the evaluation core requires of an
external kernel collaborator: the seven FMM/treecode operators (P2P, P2M,
M2M, M2L, M2P, L2L, L2P) plus the two expansion initializers they depend
on. The kernel's numerics — the analytic translation and evaluation
formulas — are explicitly out of scope for this module; only the shapes of
the calls are fixed here.

# BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package kernel
