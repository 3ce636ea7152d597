package clickatell

import "fmt"

// Message delivery status codes as defined by the Clickatell HTTP API v2.5.3.
var statusCodes = map[string]string{
	"001": "Message Unknown",
	"002": "Message Queued",
	"003": "Delivered to Gateway",
	"004": "Received by Recipient",
	"005": "Error with Message",
	"006": "User Cancelled Delivery",
	"007": "Error Delivering Message",
	"008": "OK",
	"009": "Routing Error",
	"010": "Message Expired",
	"011": "Message Queued for Later Delivery",
	"012": "Out of Credit",
	"014": "Maximum MT Limit Exceeded",
}

// Gateway error codes as defined by the Clickatell HTTP API v2.5.3.
var errorCodes = map[string]string{
	"001": "Authentication Failed",
	"002": "Unknown Username or Password",
	"003": "Session ID Expired",
	"005": "Missing Session ID",
	"007": "IP Lockdown Violation",
	"101": "Invalid or Missing Parameters",
	"102": "Invalid User Data Header",
	"103": "Unknown API Message ID",
	"104": "Unknown Client Message ID",
	"105": "Invalid Destination Address",
	"106": "Invalid Source Address",
	"107": "Empty Message",
	"108": "Invalid or Missing API ID",
	"109": "Missing Message ID",
	"113": "Maximum Message Parts Exceeded",
	"114": "Cannot Route Message",
	"115": "Message Expired",
	"116": "Invalid Unicode Data",
	"120": "Invalid Delivery Time",
	"121": "Destination Mobile Number Blocked",
	"122": "Destination Mobile Opted Out",
	"123": "Invalid Sender ID",
	"128": "Number Delisted",
	"130": "Maximum MT limit Exceeded Until <UNIX TIME STAMP>",
	"201": "Invalid Batch ID",
	"202": "No Batch Template",
	"301": "No Credit Left",
	"901": "Internal Error",
}

// LookupStatus returns the description for a delivery status code and
// whether the code is known.
func LookupStatus(code string) (string, bool) {
	desc, ok := statusCodes[code]
	return desc, ok
}

// LookupError returns the description for a gateway error code and
// whether the code is known.
func LookupError(code string) (string, bool) {
	desc, ok := errorCodes[code]
	return desc, ok
}

// StatusDescription returns a human-readable description for a delivery
// status code. Unknown codes get a placeholder instead of failing.
func StatusDescription(code string) string {
	if desc, ok := statusCodes[code]; ok {
		return desc
	}
	return fmt.Sprintf("Unknown Status (%s)", code)
}

// ErrorDescription returns a human-readable description for a gateway
// error code. Unknown codes get a placeholder instead of failing.
func ErrorDescription(code string) string {
	if desc, ok := errorCodes[code]; ok {
		return desc
	}
	return fmt.Sprintf("Unknown Error (%s)", code)
}
