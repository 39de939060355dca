/*
Package diagnostics renders octree structure and lazy-evaluator plans as
human-readable, terminal-aware text, for use in tests and interactive
debugging sessions. It never participates in an evaluation itself.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package diagnostics
