// SPDX-License-Identifier: MIT

// Package dispatch evaluates one catalog operation over parsed operands and
// renders the outcome as labelled text blocks.
//
// Every operation in catalog is handled by a single switch in Evaluate; a test
// walks catalog.All so a new Op without a branch fails loudly.
//
// Failures are *evalerr.Error values:
//   - MissingOperand when an operand the op reads is nil,
//   - Shape when operand dimensions violate the op's precondition,
//   - LinearAlgebra when the numeric routine itself fails (singular matrix,
//     non positive-definite input to Cholesky, no convergence).
//
// Inputs are treated as read-only. Decompositions come back as several blocks
// ("Q:", "R:", ...); scalars come back as "label = value".
package dispatch
