// Package backend implements the simulated REST backend: an ordered route
// table that pattern-matches synthetic HTTP-like requests onto a fixed set
// of account and user operations, producing a uniform response/error
// envelope.
//
// Dispatch is serialized: one request is handled to completion at a time, so
// read-modify-write sequences on the record store never interleave. Every
// delivery, success or failure, is delayed by a fixed latency to emulate a
// network round trip; cancelling the request context during that delay
// abandons delivery only, never an already-applied mutation.
//
// An http.Handler adapter is included so the backend can be mounted as a
// real development server or exercised with httptest.
package backend
