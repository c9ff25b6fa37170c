// Package typestate is compiled by the pins tests with one extra file
// overlaid per case.
package typestate
