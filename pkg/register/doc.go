// Package register loads asset registers and validates them with rules.
//
// A register is a YAML document listing stations, power lines, transformer
// ratings and installed transformers:
//
//	name: Kano North
//	stations:
//	  - code: I301
//	    name: Dakata
//	    category: injection
//	    voltage_ratio: 33/11KV
//	    source_feeder: F301
//	power_lines:
//	  - code: F301
//	    type: feeder
//	    voltage: 33KV
//	    source_station: T101
//	ratings:
//	  - code: P115m
//	    capacity: 1500
//	    voltage_ratio: 33/11KV
//	transformers:
//	  - serial_no: TX-0042
//	    station: I301
//	    rating: P115m
//	    condition: ok
//
// Rules implement [Rule] and are collected in a [RuleRegistry]. A [Validator]
// runs the enabled rules and sorts their violations into a [Result]. The
// stock rule set lives in the rules subpackage.
package register
