// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// study-shelf server handlers and the client error mapper.
//
// All Msg* constants are human-readable message strings written into HTTP
// response bodies. The client matches them to turn a transport error back
// into a service error, so the wording must stay in sync on both sides.
package app

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded or fails basic validation.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInvalidEmailPassword is returned when the supplied email/password
	// combination does not match any account.
	MsgInvalidEmailPassword = "invalid email/password"

	// MsgEmailNotConfirmed is returned on login before the address is verified.
	MsgEmailNotConfirmed = "email not confirmed"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgTokenIsExpiredOrInvalid is returned when a JWT bearer token is
	// either expired or cannot be verified.
	MsgTokenIsExpiredOrInvalid = "token is expired or invalid"

	// MsgNoUserIDProvided is returned when a handler requires a user ID
	// from the request context but none is present.
	MsgNoUserIDProvided = "no user ID provided"

	// MsgAccessDenied is returned when the caller touches a subject owned by
	// somebody else.
	MsgAccessDenied = "access denied"

	// MsgRegistrationFailed is returned when account creation fails for an
	// unexpected reason.
	MsgRegistrationFailed = "registration failed"

	// MsgLoginFailed is returned when a session cannot be issued.
	MsgLoginFailed = "login failed"

	// MsgEmailAlreadyExists is returned when the email is already registered.
	MsgEmailAlreadyExists = "email already exists"

	// MsgUsernameTaken is returned when another account uses the username.
	MsgUsernameTaken = "username already taken"

	// MsgSubjectNotFound is returned when a subject id matches nothing.
	MsgSubjectNotFound = "subject not found"

	// MsgUserNotFound is returned when the profile owner no longer exists.
	MsgUserNotFound = "user not found"

	MsgInvalidSemester = "invalid semester"
	MsgFileTooLarge    = "file too large"
	MsgOnlyPDF         = "only PDF files are accepted"

	// MsgStorageUnavailable is returned when the database or file system is
	// temporarily unreachable.
	MsgStorageUnavailable = "storage temporarily unavailable"
)
