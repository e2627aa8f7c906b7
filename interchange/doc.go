// SPDX-License-Identifier: MIT

// Package interchange moves operands in and out of the evaluator as JSON
// documents, CSV tables and LaTeX bmatrix source. It works on io.Reader and
// io.Writer only; opening files is the caller's job.
package interchange
