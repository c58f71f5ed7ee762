package util

import (
	"golang.org/x/exp/constraints"
)

// Mod is the non-negative remainder of a divided by m.
func Mod[A constraints.Integer](a A, m A) A {
	res := a % m
	if res < 0 {
		res += m
	}
	return res
}

func Map[A any, B any](items []A, f func(A) B) []B {
	res := make([]B, 0, len(items))
	for _, v := range items {
		res = append(res, f(v))
	}
	return res
}

func Any[A any](items []A, pred func(A) bool) bool {
	for _, v := range items {
		if pred(v) {
			return true
		}
	}
	return false
}

// Dedupe drops consecutive repeats, keeping order.
func Dedupe[A comparable](items []A) []A {
	var res []A
	for i, v := range items {
		if i > 0 && items[i-1] == v {
			continue
		}
		res = append(res, v)
	}
	return res
}

func Min[A constraints.Integer](num1 A, num2 A) A {
	if num1 > num2 {
		return num2
	}
	return num1
}
