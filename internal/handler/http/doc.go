// Package http is the REST transport of the study shelf server.
//
// It routes the auth, profile, subject and document endpoints, accepts PDF
// uploads and serves the stored files. Requests pass trace id, access log,
// gzip and body signature middleware before reaching the service layer;
// service errors are mapped to status codes in one table.
package http
