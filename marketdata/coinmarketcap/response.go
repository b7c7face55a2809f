package coinmarketcap

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

//
// Status is the status block that accompanies every response from the API. It describes the outcome
// of the call and how many API credits it consumed.
//
type Status struct {
	Timestamp    time.Time `json:"timestamp"`
	ErrorCode    int       `json:"error_code"`
	ErrorMessage *string   `json:"error_message"`
	Elapsed      int       `json:"elapsed"`
	CreditCount  int       `json:"credit_count"`
	Notice       *string   `json:"notice"`
}

//
// Success returns whether or not the status block reports a successful call.
//
func (o *Status) Success() bool {
	return o.ErrorCode == 0
}

func (o *Status) Code() int {
	return o.ErrorCode
}

func (o *Status) Message() string {
	if o.ErrorMessage == nil {
		return ""
	}

	return *o.ErrorMessage
}

func (o *Status) Error() string {
	return fmt.Sprintf("error code %d: %s", o.ErrorCode, o.Message())
}

//
// Response is the envelope that wraps every successful call. Data is guaranteed to have been present
// (and non-null) in the response body.
//
type Response[T any] struct {
	Status *Status `json:"status"`
	Data   T       `json:"data"`

	raw *http.Response
}

//
// Raw provides the raw HTTP response from the endpoint call that was made. Its body has already been
// consumed and closed.
//
func (o *Response[T]) Raw() *http.Response {
	return o.raw
}

//
// envelope is the loosely-typed form of a response body, used to classify the outcome of a call
// before committing to the endpoint's payload type.
//
type envelope struct {
	Status *Status         `json:"status"`
	Data   json.RawMessage `json:"data"`
}
