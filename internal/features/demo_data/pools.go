package demo_data

import (
	"threatmap/internal/features/records"
)

// Fixed sampling pools for fabricated records. Everything the generators
// emit is drawn from here so generated rows stay internally consistent
// (hotspot coordinates match their country/city, titles match their type).

var messagePool = map[records.Severity][]string{
	records.SeverityInfo: {
		"User session established",
		"Firewall rules reloaded",
		"Scheduled vulnerability scan completed",
		"TLS certificate renewed",
		"Configuration change applied",
	},
	records.SeverityWarning: {
		"Multiple failed login attempts detected",
		"Unusual outbound traffic volume",
		"Certificate expires in 7 days",
		"Connection from unrecognized device",
		"Port scan activity observed",
	},
	records.SeverityError: {
		"Authentication service unreachable",
		"Failed to apply firewall rule",
		"Intrusion detection sensor offline",
		"Malformed packet stream rejected",
		"Database connection pool exhausted",
	},
	records.SeverityDebug: {
		"Packet inspection pipeline flushed",
		"Heartbeat received from edge sensor",
		"Session cache entry evicted",
		"Rule evaluation took 12ms",
		"Retrying upstream health probe",
	},
	records.SeverityCritical: {
		"Critical security alert",
		"Active intrusion attempt blocked",
		"Data exfiltration pattern detected",
		"Privilege escalation attempt detected",
		"Ransomware signature matched",
	},
}

var sourcePool = []string{
	"security-system",
	"firewall",
	"ids-sensor",
	"auth-service",
	"vpn-gateway",
	"edge-proxy",
	"siem-collector",
}

var userAgentPool = []string{
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36",
	"Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/605.1.15",
	"Mozilla/5.0 (X11; Linux x86_64) Gecko/20100101 Firefox/124.0",
	"curl/8.5.0",
	"python-requests/2.31.0",
	"Go-http-client/2.0",
}

type hotspot struct {
	Country string
	City    string
	Lat     float64
	Lng     float64
}

var hotspotPool = []hotspot{
	{Country: "United States", City: "New York", Lat: 40.7128, Lng: -74.0060},
	{Country: "United States", City: "San Francisco", Lat: 37.7749, Lng: -122.4194},
	{Country: "Germany", City: "Frankfurt", Lat: 50.1109, Lng: 8.6821},
	{Country: "United Kingdom", City: "London", Lat: 51.5074, Lng: -0.1278},
	{Country: "Japan", City: "Tokyo", Lat: 35.6762, Lng: 139.6503},
	{Country: "Singapore", City: "Singapore", Lat: 1.3521, Lng: 103.8198},
	{Country: "Brazil", City: "São Paulo", Lat: -23.5505, Lng: -46.6333},
	{Country: "Australia", City: "Sydney", Lat: -33.8688, Lng: 151.2093},
	{Country: "Netherlands", City: "Amsterdam", Lat: 52.3676, Lng: 4.9041},
	{Country: "India", City: "Mumbai", Lat: 19.0760, Lng: 72.8777},
}

var titlePool = map[records.ActivityType][]string{
	records.ActivityTypeIntrusion: {
		"SSH brute force attempt",
		"Exploit payload detected",
		"Unauthorized admin access",
	},
	records.ActivityTypeFirewall: {
		"Inbound connection blocked",
		"Geo-restricted traffic dropped",
		"Blacklisted IP rejected",
	},
	records.ActivityTypeConnection: {
		"VPN tunnel established",
		"New device connected",
		"Remote session opened",
	},
	records.ActivityTypeScan: {
		"Port sweep detected",
		"Service enumeration attempt",
		"Network mapping probe",
	},
	records.ActivityTypeBreach: {
		"Credential leak detected",
		"Sensitive data accessed",
		"Account takeover attempt",
	},
	records.ActivityTypeTraffic: {
		"Traffic spike observed",
		"Large file transfer",
		"Sustained upload stream",
	},
}

var protocolPool = []string{"TCP", "UDP", "HTTP", "HTTPS", "SSH", "DNS"}
