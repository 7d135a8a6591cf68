// Package http implements the REST transport of the culinary server.
//
// It wires chi routes for users, classes, carts and token issuance, and the
// middleware around them: tracing, access logging, metrics, CORS, the
// authentication gate and the role gate. Handlers translate requests into
// service calls and write either the raw store result or the
// {"error": true, "message": ...} body.
package http
