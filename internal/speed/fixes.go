package speed

// speedFixes maps known data-entry corruptions of speed cells to what was meant.
// Keys are matched exactly against the trimmed cell.
var speedFixes = map[string]string{
	"100 Mbps B 10 Gbps":  "100 Mbps - 10 Gbps",
	"300 Mbps B 9.6 Gbps": "300 Mbps - 9.6 Gbps",
	"1810 Gbps":           "1-10 Gbps",
	"2810 Mbps":           "2-10 Mbps",
	"108100 Mbps":         "10-100 Mbps",
	"10820 Gbps":          "10-20 Gbps",
	"0.3850 Kbps":         "0.3-50 Kbps",
}

// mediaTypeFixes maps corrupted media type names. Keys are matched exactly.
var mediaTypeFixes = map[string]string{
	"Twisted Pair (Cn15/6)": "Twisted Pair (Cat5/6)",
	"WIFI (802.11ac/aa)":    "WiFi (802.11ac/ax)",
	"LoBOWAN":               "LoRaWAN",
}

// FixSpeed returns the corrected literal for a known corrupted speed cell, or raw unchanged.
func FixSpeed(raw string) string {
	if good, ok := speedFixes[raw]; ok {
		return good
	}
	return raw
}

// FixMediaType returns the corrected media type name. Only exact, case-sensitive
// matches are corrected.
func FixMediaType(name string) string {
	if good, ok := mediaTypeFixes[name]; ok {
		return good
	}
	return name
}
