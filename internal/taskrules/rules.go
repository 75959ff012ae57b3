// Package taskrules holds the pure decision rules for the seller checklist:
// which keys are currently unlockable and how far along a user is. Nothing in
// here touches storage; callers load Progress and pass it in.
package taskrules

import (
	"math"
	"strconv"
	"strings"

	"github.com/taskmart/taskmart/internal/domain"
)

const (
	taskPrefix    = "task"
	paywallPrefix = "paywall"
)

// IsPaywall reports whether key names a paywall checkpoint.
func IsPaywall(key string) bool {
	return strings.HasPrefix(key, paywallPrefix)
}

// taskNumber extracts N from "task<N>". ok is false for paywalls and for
// keys whose suffix is not a positive integer.
func taskNumber(key string) (int, bool) {
	if !strings.HasPrefix(key, taskPrefix) || IsPaywall(key) {
		return 0, false
	}
	n, err := strconv.Atoi(key[len(taskPrefix):])
	if err != nil || n < 1 {
		return 0, false
	}
	return n, true
}

// paywallNumber extracts M from "paywall<M>".
func paywallNumber(key string) (int, bool) {
	if !IsPaywall(key) {
		return 0, false
	}
	n, err := strconv.Atoi(key[len(paywallPrefix):])
	if err != nil || n < 1 {
		return 0, false
	}
	return n, true
}

// IsAvailable decides whether key is currently unlockable given the user's
// progress. Paywall keys are always available: they are the gate, not gated.
//
// For task<N> keys the numeric rule replaces the immediately-preceding-key
// rule: task1 needs no predecessor, task<N> needs task<N-1> complete. Keys
// outside the task<N> pattern fall back to the generic sequence rule: the
// immediately preceding key must be complete. Either way every paywall that
// gates the key must also be complete; an incomplete paywall blocks all
// tasks behind it no matter what their predecessors say. A paywall gates a
// task when its numeric suffix is lower, or, for non-numeric suffixes, when
// it precedes the task in sequence order.
func IsAvailable(key string, progress domain.Progress) bool {
	if IsPaywall(key) {
		return true
	}

	if n, ok := taskNumber(key); ok {
		if n > 1 && !progress.Done(taskPrefix+strconv.Itoa(n-1)) {
			return false
		}
		return paywallsCleared(key, progress.Index(key), progress)
	}

	idx := progress.Index(key)
	if idx < 0 {
		return false
	}
	if idx > 0 {
		prev := progress.Keys()[idx-1]
		if !progress.Done(prev) {
			return false
		}
	}
	return paywallsCleared(key, idx, progress)
}

// paywallsCleared reports whether every paywall gating the key at position
// idx is complete.
func paywallsCleared(key string, idx int, progress domain.Progress) bool {
	keyNum, keyHasNum := taskNumber(key)
	for i, other := range progress.Keys() {
		if !IsPaywall(other) {
			continue
		}
		gates := false
		if m, ok := paywallNumber(other); ok && keyHasNum {
			gates = m < keyNum
		} else {
			gates = i < idx
		}
		if gates && !progress.Done(other) {
			return false
		}
	}
	return true
}

// Percentage returns the checklist completion as a rounded whole percent.
// An empty checklist is 0, never a division by zero.
func Percentage(progress domain.Progress) int {
	total := progress.Len()
	if total == 0 {
		return 0
	}
	return int(math.Round(100 * float64(progress.CountDone()) / float64(total)))
}
