// Package graphio reads and writes graphs in the plain-text interchange
// format shared by the generator tooling and the CLI.
//
// Format:
//
//	n m
//	u v weight
//	u v weight
//	...
//
// The header names the vertex count n and the arc count m; each of the m
// following lines declares one directed arc u→v with a float64 weight.
// Blank lines are ignored. Weights are rendered with strconv's shortest
// 'g' form, so a Write/Read round trip reproduces every weight bit for
// bit.
//
// Read is strict where the format is concerned: a malformed header yields
// ErrBadHeader, a malformed arc line or an arc count that disagrees with
// the header yields ErrBadEdge, and out-of-range vertex ids surface the
// core package's own validation error. Duplicate (u,v) lines follow the
// container's last-write-wins rule.
//
// Write and Read operate on io.Writer/io.Reader; Save and Load wrap them
// with file handling for path-based callers.
package graphio
