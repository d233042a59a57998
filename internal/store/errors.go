// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrDuplicateUser is returned when an attempt to register a new user
	// fails because the email or badge number is already taken.
	ErrDuplicateUser = errors.New("email or badge number already in use")

	// ErrUserNotFound is returned when a query expected to match a user
	// record produces an empty result set, or when an insert references a
	// user that does not exist.
	ErrUserNotFound = errors.New("user was not found")

	// ErrExperienceNotFound is returned when a query or update targets an
	// attendance session that does not exist in the database.
	ErrExperienceNotFound = errors.New("experience was not found")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. an unsupported filter combination).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
