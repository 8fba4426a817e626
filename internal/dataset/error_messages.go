// # Error Codes Reference
//
// This file defines user-friendly error messages with codes for support
// reference. When users encounter errors, they can quote the error code for
// faster diagnosis.
//
// # Dataset Errors (DS001-DS099)
//
//	DS001 - Source not found: The projection file does not exist
//	        Action: Check DATASET_PATH points at the weekly CSV
//	        Patterns: "no such file"
//
//	DS002 - Source unreadable: The projection file could not be opened
//	        Action: Check file permissions on the projection CSV
//	        Patterns: "permission denied"
//
//	DS003 - Empty source: The projection file has no header row
//	        Action: Export the projections again with a header row
//	        Patterns: "header row required"
//
//	DS004 - Invalid CSV: The file is not valid comma-separated text
//	        Action: Ensure the file is comma-separated with consistent columns
//	        Patterns: "wrong number of fields", "parse error"
//
// # Query Errors (QRY001-QRY099)
//
//	QRY001 - Unknown sort field: The requested sort column is not recognized
//	         Action: Sort by one of the projection columns
//	         Patterns: "unknown sort field"
//
// # Request Errors (REQ001-REQ099)
//
//	REQ001 - Request cancelled: The request was cancelled
//	         Action: Please try again
//	         Patterns: "context canceled"
//
//	REQ002 - Request timeout: The request timed out
//	         Action: Please try again
//	         Patterns: "context deadline exceeded"
//
// # Rate Limiting (RATE001)
//
//	RATE001 - Rate limited: Too many requests
//	          Action: Please wait a moment before trying again
//	          Patterns: "rate limit"
//
// # Default Error (ERR000)
//
//	ERR000 - Unknown error: An unexpected error occurred
//	         Action: Please try again or check the server logs
//
// Patterns are matched case-insensitively with strings.Contains; the first
// match wins, so specific patterns come before general ones.
package dataset

import "strings"

// UserMessage provides user-friendly error information with actionable guidance.
type UserMessage struct {
	Message string // What happened (user-friendly)
	Action  string // What to do about it
	Code    string // Error code for support reference
}

// errorPattern defines a pattern to match and its corresponding user message.
type errorPattern struct {
	pattern string
	msg     UserMessage
}

var errorPatterns = []errorPattern{
	{
		pattern: "no such file",
		msg: UserMessage{
			Message: "The projection file does not exist",
			Action:  "Check DATASET_PATH points at the weekly CSV",
			Code:    "DS001",
		},
	},
	{
		pattern: "permission denied",
		msg: UserMessage{
			Message: "The projection file could not be opened",
			Action:  "Check file permissions on the projection CSV",
			Code:    "DS002",
		},
	},
	{
		pattern: "header row required",
		msg: UserMessage{
			Message: "The projection file has no header row",
			Action:  "Export the projections again with a header row",
			Code:    "DS003",
		},
	},
	{
		pattern: "wrong number of fields",
		msg: UserMessage{
			Message: "The file is not valid comma-separated text",
			Action:  "Ensure the file is comma-separated with consistent columns",
			Code:    "DS004",
		},
	},
	{
		pattern: "parse error",
		msg: UserMessage{
			Message: "The file is not valid comma-separated text",
			Action:  "Ensure the file is comma-separated with consistent columns",
			Code:    "DS004",
		},
	},
	{
		pattern: "unknown sort field",
		msg: UserMessage{
			Message: "The requested sort column is not recognized",
			Action:  "Sort by one of the projection columns",
			Code:    "QRY001",
		},
	},
	{
		pattern: "context canceled",
		msg: UserMessage{
			Message: "The request was cancelled",
			Action:  "Please try again",
			Code:    "REQ001",
		},
	},
	{
		pattern: "context deadline exceeded",
		msg: UserMessage{
			Message: "The request timed out",
			Action:  "Please try again",
			Code:    "REQ002",
		},
	},
	{
		pattern: "rate limit",
		msg: UserMessage{
			Message: "Too many requests",
			Action:  "Please wait a moment before trying again",
			Code:    "RATE001",
		},
	},
}

// MapError converts a technical error to a user-friendly message.
// Unmatched errors fall through to ERR000.
func MapError(err error) UserMessage {
	if err == nil {
		return UserMessage{
			Message: "An unexpected error occurred",
			Action:  "Please try again or check the server logs",
			Code:    "ERR000",
		}
	}

	errStr := strings.ToLower(err.Error())
	for _, p := range errorPatterns {
		if strings.Contains(errStr, p.pattern) {
			return p.msg
		}
	}

	return UserMessage{
		Message: "An unexpected error occurred",
		Action:  "Please try again or check the server logs",
		Code:    "ERR000",
	}
}
