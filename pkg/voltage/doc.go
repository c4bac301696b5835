// Package voltage is the catalog of standard grid voltages and the voltage
// ratios used by stations and transformers.
//
// Each Level and Ratio has exactly one canonical display text:
//
//	Level   Text       Ratio          Text
//	HVoltH  330KV      HVoltHHVoltL   330/132KV
//	HVoltL  132KV      HVoltLMVoltH   132/33KV
//	MVoltH  33KV       HVoltLMVoltL   132/11KV
//	MVoltL  11KV       MVoltHMVoltL   33/11KV
//	LVolt   0.415KV    MVoltHLVolt    33/0.415KV
//	                   MVoltLLVolt    11/0.415KV
//
// Ratio text only carries the KV suffix once, after the low side.
//
// The tables are fixed at compile time; the reverse lookups are built once
// at init and only read afterwards, so every function here is safe for
// concurrent use.
package voltage
