// Package conv provides radix arithmetic and safe integer conversions.
//
// Radix helpers answer three questions about a digit alphabet:
//   - how many bits a base needs per digit (BitWidth)
//   - which value a symbol stands for (DigitValue)
//   - which symbol renders a value (Symbol)
//
// The alphabet is 0-9 followed by A-Z, so the largest value that can be
// rendered is 35 and the largest supported power-of-two base is 32.
//
// Cast helpers perform bounds checking when converting between Go's
// platform-dependent int and fixed-width types.
package conv
