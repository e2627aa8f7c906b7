// SPDX-License-Identifier: MIT

package dispatch

import (
	"strings"

	"github.com/ETsETs777/Matrix-Desktop/catalog"
)

// Block is one labelled piece of a result. Header is empty for single-block results.
type Block struct {
	Header string
	Body   string
}

// String renders "Header\nBody", or just Body without a header.
func (b Block) String() string {
	if b.Header == "" {
		return b.Body
	}

	return b.Header + "\n" + b.Body
}

// Result is the formatted outcome of one evaluation: an ordered list of blocks
// (one for plain matrices, vectors and scalars; several for decompositions).
type Result struct {
	Op     catalog.Op
	Blocks []Block
}

// Text joins the blocks with blank lines.
func (r Result) Text() string {
	parts := make([]string, len(r.Blocks))
	for i, b := range r.Blocks {
		parts[i] = b.String()
	}

	return strings.Join(parts, "\n\n")
}

// Block returns the body of the first block with the given header.
func (r Result) Block(header string) (string, bool) {
	for _, b := range r.Blocks {
		if b.Header == header {
			return b.Body, true
		}
	}

	return "", false
}

// Block headers of composite results.
const (
	HeaderEigenvalues  = "Eigenvalues:"
	HeaderEigenvectors = "Eigenvectors:"
	HeaderU            = "U:"
	HeaderSigma        = "Σ:"
	HeaderVT           = "Vᵗ:"
	HeaderP            = "P:"
	HeaderL            = "L:"
	HeaderQ            = "Q:"
	HeaderR            = "R:"
)

func single(op catalog.Op, body string) Result {
	return Result{Op: op, Blocks: []Block{{Body: body}}}
}
