// Package rating encodes and decodes transformer rating codes.
//
// A rating code packs a transformer's capacity and voltage ratio into five
// characters, so the code alone tells the capacity, the ratio and whether the
// unit is a power or a distribution transformer.
//
// # Code Format
//
//	(P|D)(1|3)dd(d|M|m)
//
// Where:
//   - P: power transformer (132/33KV, 132/11KV, 33/11KV)
//   - D: distribution transformer (33/0.415KV, 11/0.415KV)
//   - 1|3: last digit of the low side for P ("132/33KV" -> 3),
//     first digit of the high side for D ("11/0.415KV" -> 1)
//   - d: decimal digit
//   - M: capacity in MVA (x1000 KVA)
//   - m: capacity in tenths of MVA (x100 KVA)
//
// A bare three digit P code is in MVA; a bare D code is in KVA.
//
// # Examples
//
//	Capacity   Ratio        Code
//	60000KVA   132/33KV     P360M
//	5000KVA    132/33KV     P305M
//	7500KVA    132/33KV     P375m
//	500KVA     33/0.415KV   D3500
//	50KVA      11/0.415KV   D1050
//	1500KVA    33/0.415KV   D315m
package rating
