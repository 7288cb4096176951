// Package main runs the tapecalc HTTP server. It evaluates expressions,
// builds layouts and keeps history and saved measurements in the configured
// store under --home.
//
// HTTP API
//
//	POST /api/calculate {"expression": "...", "precision": 16, "reduce": true}
//	    Evaluate an expression left to right. "feet" changes the display and
//	    "record" appends the result to history.
//
//	POST /api/layout {"mode": "divide|custom|spacing", ...}
//	    Build a layout. Invalid field values return an empty mark list.
//
//	GET /api/history?limit=N
//	    Return up to N entries, newest first (default 50).
//
//	POST /api/history {"expression": "...", "result": "..."}
//	    Record a calculation made by a client.
//
//	DELETE /api/history
//	    Clear history.
//
//	GET /api/saved-measurements
//	POST /api/saved-measurements {"label": "...", "value": "..."}
//	DELETE /api/saved-measurements/{id}
//	    List, add and remove saved measurements.
//
//	GET /health
//	GET /metrics
//
// Behaviour
//
//   - Responses are JSON. Non-2xx statuses carry {"error", "message"}.
//   - Every request is logged with method, route, status, bytes and duration.
//   - The config file is watched; log settings apply on save, everything
//     else at the next start.
//   - SIGINT or SIGTERM drains in-flight requests before exit.
package main
