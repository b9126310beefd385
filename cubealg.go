// Package cubealg expands twisty-puzzle algorithm notation into flat move sequences.
//
// Three notational forms are understood:
//
//   - Simple sequences: space-separated moves such as "R U R' U'"
//   - Commutators: "[A, B]", meaning A B A' B'
//   - Conjugates: "[A: B]", meaning A B A'
//
// Commutators and conjugates nest freely and may appear between plain moves.
//
// # Quick Start
//
//	out, err := cubealg.Simplify("[[D, R U R'], F]")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(out)
//
//	fmt.Println(cubealg.Invert("R U R'")) // R U' R'
//
// # Move Alphabet
//
// A move is one of R L U D F B (faces), r l u d f b (wide turns),
// M E S (slices) or x y z (rotations), optionally followed by ' or 2.
//
// # Parsing
//
// Parse builds an Expr tree of Sequence, *Commutator, *Conjugate and Concat
// nodes. Expand folds the tree into a Sequence. Parse errors are *ParseError
// values carrying the byte offset of the problem:
//
//	_, err := cubealg.Parse("[R, U")
//	errors.Is(err, cubealg.ErrMalformedExpression) // true
//
// # Textual Helpers
//
// IsSimpleSequence, FindCommutator and FindConjugate classify raw text, and
// SimplifyTrace shows the step-by-step rewriting of the innermost brackets.
package cubealg
