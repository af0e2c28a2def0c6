// Package token defines the lexical token model of Vesuvius.
// Invariants:
//   - Kind is a closed set; every switch over it in the front end is exhaustive.
//   - Token.Span covers exactly the characters that produced the token.
//     Eof is zero-width at the end of input.
//   - Payload fields are meaningful only for literal-carrying kinds:
//     Text for Identifier and String, Char for Character, Int for Integer,
//     Float for Float.
//   - Reserved words (extern, use, let, func, mut) are lexed as Identifier;
//     the parser recognizes them by text.
package token
