// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package slice adds the generic Map and Filter helpers that [slices] lacks.
package slice

// Map applies transform to every element. A nil input yields nil.
func Map[T any, U any](input []T, transform func(T) U) []U {
	if input == nil {
		return nil
	}

	result := make([]U, len(input))
	for i, v := range input {
		result[i] = transform(v)
	}

	return result
}

// Filter keeps the elements for which predicate holds, preserving order.
// The result is never nil for a non-nil input, so it encodes as [] in JSON.
func Filter[T any](input []T, predicate func(T) bool) []T {
	if input == nil {
		return nil
	}

	result := make([]T, 0, len(input)/2)
	for _, v := range input {
		if predicate(v) {
			result = append(result, v)
		}
	}

	return result
}
