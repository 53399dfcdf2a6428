// Package transport defines the ICE/DTLS/SRTP-SDES parameter and candidate
// DTOs that pkg/sdp's lowering stage fills in. These types belong to the
// surrounding media stack rather than the SDP core itself (spec §6.2): the
// core only needs their field shapes to populate a Transport.
package transport
