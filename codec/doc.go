// Package codec converts between free-form matrix text and *matrix.Dense.
//
// The textual convention is deliberately forgiving on input (any mix of
// spaces, commas and semicolons, optional brackets) and canonical on output
// ("[1; 2]\n[3; 4]"), so formatted results can be pasted back as operands.
//
//	m, err := codec.Parse("1 2\n3, 4")
//	fmt.Println(codec.Format(m)) // [1; 2]\n[3; 4]
package codec
