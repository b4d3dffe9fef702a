// Package xanthos provides a lock-free, fixed-capacity concurrent table
// addressed by opaque generational identifiers.
//
// Xanthos trades resizing and ordered traversal for a small, predictable
// set of wait-free-bounded operations: insert, remove, read and a weakly
// consistent key iterator. It is meant for workloads that need to hand a
// value to many goroutines under a cheap, copyable handle and reclaim that
// value's slot without ever taking a lock.
//
// Example usage:
//
//	table, err := xanthos.New[string](xanthos.DefaultConfig[string]())
//	if err != nil {
//		panic(err)
//	}
//
//	id, ok := table.Insert("value")
//	guard := table.Guard()
//	defer guard.Done()
//	value, found := table.Read(id, guard)
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira fragment
// SPDX-License-Identifier: MPL-2.0
package xanthos

const (
	// Version of the xanthos table library.
	Version = "v0.1.0-dev"

	// DefaultCapacity is the default fixed capacity used by DefaultConfig.
	DefaultCapacity = 1 << 14

	// MinCapacity is the smallest capacity New accepts (after rounding).
	MinCapacity = 1 << 4

	// MaxCapacity is the largest capacity New accepts (after rounding).
	MaxCapacity = 1 << 27
)
