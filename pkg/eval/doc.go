// Package eval implements arithmetic expression evaluation.
//
// Evaluation runs in three sequential stages with no shared state
// between calls:
//
//   - Tokenize: scans the raw string into a flat token sequence
//   - ToPostfix: reorders tokens into Reverse Polish notation using
//     the shunting-yard algorithm
//   - EvaluatePostfix: walks the postfix sequence with an operand
//     stack to produce the numeric result
//
// # Basic Usage
//
//	result, err := eval.Evaluate("(2+3)×4")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result) // 20
//
// The tokenizer is deliberately permissive: characters outside the
// supported alphabet (digits, ".", the four operators, and
// parentheses) are dropped rather than rejected. Malformed input is
// normally caught downstream, as a classified error from one of the
// later stages.
package eval
