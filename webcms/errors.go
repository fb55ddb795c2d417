package webcms

import "fmt"

// Fetch operations never return Go errors; transport and HTTP-level
// failures are folded into the Result envelope by the constructors
// below. TLS, DNS and dial failures are not distinguished beyond the
// transport error text.

// ConnectionErrorPrefix starts the message of every transport-level
// failure envelope.
const ConnectionErrorPrefix = "API connection error: "

// connectionFailure reports a round trip that could not complete at
// all: no response was received.
func connectionFailure(err error) Result {
	return Result{
		"status":  false,
		"message": ConnectionErrorPrefix + err.Error(),
		"data":    nil,
	}
}

// requestFailure reports a completed round trip with status code 400
// or above. The server's own message wins when the decoded body
// carries one.
func requestFailure(code int, body Result) Result {
	message := fmt.Sprintf("API request failed with HTTP code %d", code)
	if m, ok := body["message"].(string); ok && m != "" {
		message = m
	}
	var data any
	if body != nil {
		data = map[string]any(body)
	}
	return Result{
		"status":  false,
		"message": message,
		"data":    data,
	}
}
