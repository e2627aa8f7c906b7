// SPDX-License-Identifier: MIT

package interchange

import (
	"strings"

	"github.com/ETsETs777/Matrix-Desktop/codec"
	"github.com/ETsETs777/Matrix-Desktop/matrix"
)

// LaTeX renders m as an amsmath bmatrix using f for the entries:
//
//	\begin{bmatrix}
//	1 & 2 \\
//	3 & 4
//	\end{bmatrix}
//
// A nil matrix renders as an empty string.
func LaTeX(m *matrix.Dense, f codec.Formatter) string {
	if m == nil {
		return ""
	}
	var b strings.Builder
	b.WriteString("\\begin{bmatrix}\n")
	rows := m.ToRows()
	for i, row := range rows {
		for j, v := range row {
			if j > 0 {
				b.WriteString(" & ")
			}
			b.WriteString(f.Number(v))
		}
		if i < len(rows)-1 {
			b.WriteString(" \\\\")
		}
		b.WriteByte('\n')
	}
	b.WriteString("\\end{bmatrix}")

	return b.String()
}
