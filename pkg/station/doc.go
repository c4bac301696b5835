// Package station parses and validates station codes.
//
// # Code Format
//
//	<start><voltage digit><hex serial>
//
// Where:
//   - start: T (Transmission), I (Injection) or S (Distribution substation)
//   - voltage digit: first character of the station's voltage ratio text,
//     1 or 3 (Injection stations only take 33/11KV, so always 3)
//   - hex serial: 2 hex digits (T, I) or 4 hex digits (S), greater than 0
//
// Examples: T110 (132/33KV transmission), I30A, S1000F (11/0.415KV substation).
package station
