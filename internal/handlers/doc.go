// Package handlers provides HTTP request handlers for the text toolkit API.
//
// It includes handlers for:
//   - Tag stripping from inline HTML and uploaded files
//   - Email and URL extraction, word and character counting
//   - Line-break removal and anchor link extraction
//   - Password, acronym and random quote generation
//   - Language detection
//   - Health checks, version info and Prometheus metrics
//
// Every request body is decoded and validated before any operation runs.
// Failures are written as {"detail": "..."} with a status chosen by the
// error's type.
package handlers
