// Package shift provides shift operations that are defined for every count.
//
// Go already defines over-wide shifts, but not always as the value the
// transcoder needs: an arithmetic right shift of a negative operand by a
// count >= the operand width saturates to -1, and a plain right shift of a
// signed operand always replicates the sign bit. The helpers here pin both
// corners: any count >= the operand width yields 0, and the logical right
// shift reinterprets signed operands as unsigned so the sign bit is never
// replicated.
//
// All variable-count shifts in the transcoder go through this package.
package shift
