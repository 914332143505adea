// Package http is the REST transport of the QR forge server.
//
// Routes are registered on a chi router in routes.go. Every request passes
// through panic recovery, trace id assignment, access logging, gzip and
// device id resolution before it reaches a handler. Handlers decode JSON,
// call the service layer and map service errors to status codes through
// errorStatusMap.
package http
