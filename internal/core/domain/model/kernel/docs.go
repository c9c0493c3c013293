// Package kernel provides core domain primitives shared by every aggregate
// in the export order system. Value objects here are immutable, validate
// themselves, and carry no business policy of their own.
package kernel
