package transport

// KeyParameters is one method:info pair from an a=crypto key-param list.
type KeyParameters struct {
	Method string
	Info   string
}

// CryptoParameters is a single lowered a=crypto line.
type CryptoParameters struct {
	Tag           uint64
	CryptoSuite   string
	KeyParams     []KeyParameters
	SessionParams []string
}

// SrtpSdesParameters carries the crypto lines offered for SDES-keyed SRTP,
// in document order (the first is the preferred suite).
type SrtpSdesParameters struct {
	CryptoParameters []CryptoParameters
}
