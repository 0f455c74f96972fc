package errors

import (
	"encoding/json"
	"net/http"
)

// HTTPBody is the JSON shape rendered for error responses
type HTTPBody struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Meta    map[string]interface{} `json:"meta,omitempty"`
}

// ToHTTPBody converts an error to its JSON response body. Non-Error values
// are rendered as internal errors without leaking the underlying message.
func ToHTTPBody(err error) HTTPBody {
	var customErr *Error
	if As(err, &customErr) {
		return HTTPBody{
			Code:    customErr.Code.String(),
			Message: customErr.Message,
			Meta:    customErr.Meta,
		}
	}

	return HTTPBody{
		Code:    CodeInternal.String(),
		Message: "internal error",
	}
}

// WriteHTTP renders an error as a JSON response with the status mapped
// from its code
func WriteHTTP(w http.ResponseWriter, err error) {
	body := ToHTTPBody(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(GetCode(err).HTTPStatus())
	_ = json.NewEncoder(w).Encode(body)
}
