package repositories

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// KeyInfo describes a raw badger entry for inspection tools.
type KeyInfo struct {
	Key       string
	Type      string
	Tenant    string
	Timestamp string
	EntityID  string
	Detail    string
}

// DescribeKey decodes the key layouts written by the repositories.
// Unknown keys are reported as RAW.
func DescribeKey(key string, value []byte) KeyInfo {
	info := KeyInfo{
		Key:       key,
		Type:      "RAW",
		Timestamp: "--:--:--",
		EntityID:  "--------",
		Detail:    fmt.Sprintf("Size: %d bytes", len(value)),
	}
	parts := strings.SplitN(key, ":", 4)
	switch parts[0] {
	case "rec":
		info.Type = "RECORD"
		if len(parts) == 4 {
			info.Tenant = decodeTenant(parts[1])
			if nano, err := strconv.ParseInt(parts[2], 10, 64); err == nil {
				info.Timestamp = time.Unix(0, nano).UTC().Format(time.DateTime)
			}
			info.EntityID = parts[3]
		}
		if rec, err := decodeRecord(value); err == nil {
			info.Detail = fmt.Sprintf("%s -> %s (%d bytes)", rec.Author, rec.Recipient, len(rec.Data))
		}
	case "recid":
		info.Type = "RECORD_ID"
		if len(parts) >= 3 {
			info.Tenant = decodeTenant(parts[1])
			info.EntityID = strings.Join(parts[2:], ":")
		}
		info.Detail = string(value)
	case "proto":
		info.Type = "PROTOCOL"
		if len(parts) >= 3 {
			info.Tenant = decodeTenant(parts[1])
			info.EntityID = strings.Join(parts[2:], ":")
		}
	case "identity":
		info.Type = "IDENTITY"
		info.Detail = string(value)
	}
	return info
}

func decodeTenant(encoded string) string {
	raw, err := base64.RawURLEncoding.DecodeString(encoded)
	if err != nil {
		return encoded
	}
	return string(raw)
}
