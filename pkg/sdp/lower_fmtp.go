package sdp

import (
	"encoding/hex"
	"strconv"
	"strings"
)

// Codec-specific fmtp parameter structs (spec §4.7.3.1).

type OpusParameters struct {
	MaxPlaybackRate      *uint32
	SpropMaxCaptureRate  *uint32
	MaxPtime             *uint64
	Ptime                *uint64
	MaxAverageBitrate    *uint32
	Stereo               bool
	SpropStereo          bool
	Cbr                  bool
	UseInbandFec         bool
	UseDtx               bool
}

type Vp8Parameters struct {
	MaxFr *uint32
	MaxFs *uint32
}

type H264Parameters struct {
	PacketizationMode *uint32
	ProfileLevelID    string
	MaxMbps           *uint32
	MaxSmbps          *uint32
	MaxFs             *uint32
	MaxCpb            *uint32
	MaxDpb            *uint32
	MaxBr             *uint32
}

type RtxParametersFmtp struct {
	Apt     uint8
	RtxTime *uint64
}

type FlexfecParameters struct {
	ToP          *uint32
	L            *uint32
	D            *uint32
	RepairWindow uint64
}

// fmtpKV splits each FormatSpecific token on '=', tolerating bare flags
// (key with no '=').
func fmtpKV(tokens []string) map[string]string {
	kv := make(map[string]string, len(tokens))
	for _, t := range tokens {
		key, val, ok := cutByte(t, '=')
		if !ok {
			kv[t] = ""
			continue
		}
		kv[key] = val
	}
	return kv
}

func kvUint32(lineNum int, kv map[string]string, key string) (*uint32, error) {
	raw, ok := kv[key]
	if !ok {
		return nil, nil
	}
	v, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return nil, newErr(MalformedAttribute, lineNum, raw, "malformed %s: %v", key, err)
	}
	r := uint32(v)
	return &r, nil
}

func kvUint64(lineNum int, kv map[string]string, key string) (*uint64, error) {
	raw, ok := kv[key]
	if !ok {
		return nil, nil
	}
	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return nil, newErr(MalformedAttribute, lineNum, raw, "malformed %s: %v", key, err)
	}
	return &v, nil
}

func kvBool(kv map[string]string, key string) bool {
	return kv[key] == "1"
}

// parseCodecParameters dispatches fmtp.FormatSpecific to the codec-specific
// struct for name, or returns (nil, nil) for codecs with no modeled
// parameters. Unknown keys are ignored; out-of-range numerics fail
// MalformedAttribute (spec §4.7.3.1).
func parseCodecParameters(lineNum int, name string, formatSpecific []string) (interface{}, error) {
	kv := fmtpKV(formatSpecific)
	switch strings.ToLower(name) {
	case "opus":
		p := &OpusParameters{
			Stereo:       kvBool(kv, "stereo"),
			SpropStereo:  kvBool(kv, "sprop-stereo"),
			Cbr:          kvBool(kv, "cbr"),
			UseInbandFec: kvBool(kv, "useinbandfec"),
			UseDtx:       kvBool(kv, "usedtx"),
		}
		var err error
		if p.MaxPlaybackRate, err = kvUint32(lineNum, kv, "maxplaybackrate"); err != nil {
			return nil, err
		}
		if p.SpropMaxCaptureRate, err = kvUint32(lineNum, kv, "sprop-maxcapturerate"); err != nil {
			return nil, err
		}
		if p.MaxAverageBitrate, err = kvUint32(lineNum, kv, "maxaveragebitrate"); err != nil {
			return nil, err
		}
		if p.MaxPtime, err = kvUint64(lineNum, kv, "maxptime"); err != nil {
			return nil, err
		}
		if p.Ptime, err = kvUint64(lineNum, kv, "ptime"); err != nil {
			return nil, err
		}
		return p, nil

	case "vp8":
		p := &Vp8Parameters{}
		var err error
		if p.MaxFr, err = kvUint32(lineNum, kv, "max-fr"); err != nil {
			return nil, err
		}
		if p.MaxFs, err = kvUint32(lineNum, kv, "max-fs"); err != nil {
			return nil, err
		}
		return p, nil

	case "h264":
		p := &H264Parameters{ProfileLevelID: kv["profile-level-id"]}
		if p.ProfileLevelID != "" {
			if _, err := hex.DecodeString(p.ProfileLevelID); err != nil {
				return nil, newErr(MalformedAttribute, lineNum, p.ProfileLevelID, "malformed profile-level-id: %v", err)
			}
		}
		var err error
		if p.PacketizationMode, err = kvUint32(lineNum, kv, "packetization-mode"); err != nil {
			return nil, err
		}
		if p.MaxMbps, err = kvUint32(lineNum, kv, "max-mbps"); err != nil {
			return nil, err
		}
		if p.MaxSmbps, err = kvUint32(lineNum, kv, "max-smbps"); err != nil {
			return nil, err
		}
		if p.MaxFs, err = kvUint32(lineNum, kv, "max-fs"); err != nil {
			return nil, err
		}
		if p.MaxCpb, err = kvUint32(lineNum, kv, "max-cpb"); err != nil {
			return nil, err
		}
		if p.MaxDpb, err = kvUint32(lineNum, kv, "max-dpb"); err != nil {
			return nil, err
		}
		if p.MaxBr, err = kvUint32(lineNum, kv, "max-br"); err != nil {
			return nil, err
		}
		return p, nil

	case "rtx":
		raw, ok := kv["apt"]
		if !ok {
			return nil, newErr(MissingRequired, lineNum, "apt", "rtx fmtp requires apt")
		}
		apt, err := strconv.ParseUint(raw, 10, 8)
		if err != nil {
			return nil, newErr(MalformedAttribute, lineNum, raw, "malformed apt: %v", err)
		}
		p := &RtxParametersFmtp{Apt: uint8(apt)}
		if p.RtxTime, err = kvUint64(lineNum, kv, "rtx-time"); err != nil {
			return nil, err
		}
		return p, nil

	case "flexfec":
		raw, ok := kv["repair-window"]
		if !ok {
			return nil, newErr(MissingRequired, lineNum, "repair-window", "flexfec fmtp requires repair-window")
		}
		window, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return nil, newErr(MalformedAttribute, lineNum, raw, "malformed repair-window: %v", err)
		}
		p := &FlexfecParameters{RepairWindow: window}
		if p.ToP, err = kvUint32(lineNum, kv, "ToP"); err != nil {
			return nil, err
		}
		if p.L, err = kvUint32(lineNum, kv, "L"); err != nil {
			return nil, err
		}
		if p.D, err = kvUint32(lineNum, kv, "D"); err != nil {
			return nil, err
		}
		return p, nil

	default:
		return nil, nil
	}
}
