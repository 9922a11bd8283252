// Package mf converts application values into the binary layouts the native media
// framework expects: FourCC codes, video subtype identifiers, packed 32-bit pairs
// and 100-nanosecond duration ticks.
//
// Every function except the Registry methods is pure and safe for concurrent use.
// Registry lookups may run concurrently with each other and with registration.
package mf
