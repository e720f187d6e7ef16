package entities

import (
	"encoding/json"
	"strings"
)

// ExtraDataVersion is the only payload version this bot writes.
const ExtraDataVersion = 1

// ExtraData is bot-owned state stored as JSON in profile field_32.
type ExtraData struct {
	Version   int    `json:"version"`
	DiscordID *int64 `json:"discord_id"`
}

// NewExtraData returns an empty current-version payload.
func NewExtraData() ExtraData {
	return ExtraData{Version: ExtraDataVersion}
}

// ParseExtraData decodes the field_32 payload. Empty, malformed or
// unknown-version payloads yield an empty current-version record.
func ParseExtraData(raw string) ExtraData {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return NewExtraData()
	}

	var header struct {
		Version int `json:"version"`
	}
	if err := json.Unmarshal([]byte(raw), &header); err != nil || header.Version != ExtraDataVersion {
		return NewExtraData()
	}

	var extra ExtraData
	if err := json.Unmarshal([]byte(raw), &extra); err != nil {
		return NewExtraData()
	}
	return extra
}

// JSON renders the payload for field_32.
func (e ExtraData) JSON() string {
	if e.Version == 0 {
		e.Version = ExtraDataVersion
	}

	// A struct of an int and an *int64 cannot fail to marshal.
	data, _ := json.Marshal(e)
	return string(data)
}
