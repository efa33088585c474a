// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package binarysearch provides an iterative binary search over
// sorted slices.
package binarysearch

import "cmp"

// Index returns the index of an element of the sorted slice s that is
// equal to target, or -1 if there is no such element. If s contains
// duplicates of target any one of their indices may be returned.
func Index[S ~[]E, E cmp.Ordered](s S, target E) int {
	left, right := 0, len(s)-1
	for left <= right {
		mid := left + (right-left)/2 // avoids overflow of left+right.
		switch c := cmp.Compare(s[mid], target); {
		case c == 0:
			return mid
		case c < 0:
			left = mid + 1
		default:
			right = mid - 1
		}
	}
	return -1
}

// Contains returns true if target is present in the sorted slice s.
func Contains[S ~[]E, E cmp.Ordered](s S, target E) bool {
	return Index(s, target) >= 0
}
