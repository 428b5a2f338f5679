// Package kir defines the ownership-tracked intermediate representation
// consumed by the ownership classifier.
//
// The model is deliberately small: values carry a fixed ownership kind
// (none, owned, guaranteed) and minimal type information, instructions
// share one struct distinguished by a closed kind enum, and functions
// carry the calling-convention signatures that call-site classification
// reads. Everything is immutable once built; packages downstream treat
// the graph as read-only input.
//
// The package also provides the structural validator, a textual dumper,
// and a msgpack wire codec for shipping modules between tools.
package kir
