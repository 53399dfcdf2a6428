// Package sdp implements the ingestion half of a Session Description
// Protocol engine for an ORTC-style media stack: it tokenizes an SDP
// document, classifies and scope-validates its attributes, parses each
// recognized line into a typed value, folds the result into an AST, and
// lowers that AST into a session description (transports, RTP media
// lines, SCTP media lines, RTP senders).
//
// The package is a pure, single-threaded transformation: Parse and
// CreateDescription perform no I/O and share no state across calls.
package sdp
