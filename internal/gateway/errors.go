package gateway

import (
	"errors"
	"fmt"
)

// Remote failures are typed per operation so the controller can apply its
// per-action policy: enroll and fetch failures block the mutation, approve
// failures trigger a rollback, and delete failures are soft (the local
// deletion has already been applied).
//
// StatusCode is 0 when the failure happened below HTTP (transport error).

// EnrollError reports a failed enroll call. The Store is never mutated
// when enrollment fails.
type EnrollError struct {
	StatusCode int
	Message    string
	Err        error
}

func (e *EnrollError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("enroll failed: status %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("enroll failed: %s", e.Message)
}

func (e *EnrollError) Unwrap() error { return e.Err }

// FetchError reports a failed refresh fetch. The Store keeps its prior
// collection when the fetch fails.
type FetchError struct {
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("fetch failed: status %d", e.StatusCode)
	}
	return fmt.Sprintf("fetch failed: %v", e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// ApproveError reports a failed approve call for a single record. The
// controller reverts that record's optimistic status change.
type ApproveError struct {
	ID         string
	StatusCode int
	Err        error
}

func (e *ApproveError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("approve failed for %s: status %d", e.ID, e.StatusCode)
	}
	return fmt.Sprintf("approve failed for %s: %v", e.ID, e.Err)
}

func (e *ApproveError) Unwrap() error { return e.Err }

// DeleteSyncError reports that a bulk delete did not reach the remote
// catalog. It is a sync warning, not a hard failure: the records are
// already gone locally and stay gone.
type DeleteSyncError struct {
	StatusCode int
	Err        error
}

func (e *DeleteSyncError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("delete sync failed: status %d", e.StatusCode)
	}
	return fmt.Sprintf("delete sync failed: %v", e.Err)
}

func (e *DeleteSyncError) Unwrap() error { return e.Err }

// IsDeleteSync returns true if the error is a soft delete-sync failure.
// Uses errors.As to handle wrapped errors.
func IsDeleteSync(err error) bool {
	var de *DeleteSyncError
	return errors.As(err, &de)
}

// IsApproveFailure returns true if the error is a failed remote approval.
func IsApproveFailure(err error) bool {
	var ae *ApproveError
	return errors.As(err, &ae)
}
