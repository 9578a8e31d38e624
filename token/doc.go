// Package token provides the quoting rules shared by kinded paths and the
// text encoder.
//
// A field name is written bare when it reads back unambiguously as a field.
// Everything else, including names that look like numbers or keywords and
// names containing path syntax, is quoted with [Quote] and read back with
// [Unquote].
package token
