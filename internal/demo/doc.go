// Package demo holds the four demonstration routines. Each writes a titled
// section and returns what it computed.
package demo
