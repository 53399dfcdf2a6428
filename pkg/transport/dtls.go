package transport

import "github.com/pion/dtls/v2"

// Role is the DTLS handshake role derived from an SDP a=setup attribute.
// pion/dtls/v2 has no exported Role type matching this ORTC-style
// client/server/auto tri-state, so it's modeled locally.
type Role string

const (
	RoleClient Role = "client"
	RoleServer Role = "server"
	RoleAuto   Role = "auto"
)

// RoleFromSetup implements the mapping in spec §4.7.2: active→client,
// passive→server, actpass|holdconn|absent→auto.
func RoleFromSetup(setup string) Role {
	switch setup {
	case "active":
		return RoleClient
	case "passive":
		return RoleServer
	default:
		return RoleAuto
	}
}

// DtlsFingerprint is a lowered a=fingerprint line.
type DtlsFingerprint struct {
	Algorithm string
	Value     string
}

// DtlsParameters carries the DTLS role and fingerprints needed to complete
// a handshake, as derived from a media's fingerprint/setup attributes.
// PreferredCipherSuites is never populated by pkg/sdp's lowering (the SDP
// text carries no cipher-suite hints) — it's here for the DTLS transport
// that consumes these parameters to record which suites it will offer.
type DtlsParameters struct {
	Role                  Role
	Fingerprints          []DtlsFingerprint
	PreferredCipherSuites []dtls.CipherSuiteID
}

// DefaultCipherSuites returns the cipher suite preference order this stack
// offers when establishing a DTLS transport, independent of anything parsed
// from SDP.
func DefaultCipherSuites() []dtls.CipherSuiteID {
	return []dtls.CipherSuiteID{
		dtls.TLS_ECDHE_ECDSA_WITH_AES_128_GCM_SHA256,
		dtls.TLS_ECDHE_RSA_WITH_AES_128_GCM_SHA256,
		dtls.TLS_ECDHE_ECDSA_WITH_AES_128_CCM,
	}
}
