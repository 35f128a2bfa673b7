// Package server provides the HTTP surface for the transcription service:
// a Gin-backed server with the standard middleware stack and handlers for
// transcription jobs and health checks.
package server
