// Package token defines lexical token kinds for newt.
// Invariants:
//   - Identifier and operator tokens carry an interned handle, never raw text.
//   - Keywords are recognized after interning, by canonical spelling.
//   - Token.Span covers the full lexeme, including string quotes and prefix.
//   - Built-in type names (Int32, USize, ...) are identifiers; the module
//     builder resolves them.
package token
