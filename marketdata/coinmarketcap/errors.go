package coinmarketcap

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/lukehollenback/coinmarketcap/marketdata"
)

var (
	_ marketdata.HTTPError = (*BadServerResponseError)(nil)
	_ marketdata.APIError  = (*BadRequestError)(nil)
	_ marketdata.APIError  = (*Status)(nil)
)

//
// BadServerResponseError represents a response whose body could not be interpreted as the expected
// envelope at all: it was not valid JSON for the endpoint, it was JSON null, it lacked a status
// block, or it reported success without a payload. This is a transport, gateway, or contract
// violation rather than an application-level error.
//
type BadServerResponseError struct {
	Response   *http.Response
	HTTPStatus int
	RawBody    string
	Err        error
}

func (o *BadServerResponseError) StatusCode() int {
	return o.HTTPStatus
}

//
// Body returns the raw response body. It is empty when the body carried no information at all
// (i.e. it parsed to JSON null).
//
func (o *BadServerResponseError) Body() string {
	return o.RawBody
}

//
// Title returns the contents of the <title> element when the body is an HTML document (as is
// typical of gateway and CDN error pages), or an empty string otherwise.
//
func (o *BadServerResponseError) Title() string {
	if !looksLikeHTML(o.RawBody) {
		return ""
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(o.RawBody))
	if err != nil {
		return ""
	}

	return strings.TrimSpace(doc.Find("title").First().Text())
}

func (o *BadServerResponseError) Error() string {
	msg := fmt.Sprintf("bad server response (HTTP %d)", o.HTTPStatus)

	if title := o.Title(); title != "" {
		msg = fmt.Sprintf("%s: %s", msg, title)
	}

	if o.Err != nil {
		msg = fmt.Sprintf("%s: %s", msg, o.Err)
	}

	return msg
}

func (o *BadServerResponseError) Unwrap() error {
	return o.Err
}

//
// BadRequestError represents a structurally valid envelope whose status block reports failure (e.g.
// an invalid parameter, an exhausted rate limit, or an authentication failure).
//
type BadRequestError struct {
	Status *Status
}

func (o *BadRequestError) Code() int {
	return o.Status.Code()
}

func (o *BadRequestError) Message() string {
	return o.Status.Message()
}

func (o *BadRequestError) Error() string {
	return fmt.Sprintf(
		"the CoinMarketCap endpoint returned an API error (code: %d, message: %s)",
		o.Code(), o.Message(),
	)
}

//
// IsRateLimited returns whether the request was rejected because a minute, daily, monthly, or IP
// rate limit was exceeded.
//
func (o *BadRequestError) IsRateLimited() bool {
	switch o.Code() {
	case ErrCodeMinuteRateLimit, ErrCodeDailyRateLimit, ErrCodeMonthlyRateLimit, ErrCodeIPRateLimit:
		return true
	}

	return false
}

//
// IsAuthFailure returns whether the request was rejected because of a missing, invalid, or disabled
// API key.
//
func (o *BadRequestError) IsAuthFailure() bool {
	switch o.Code() {
	case ErrCodeAPIKeyInvalid, ErrCodeAPIKeyMissing, ErrCodeAPIKeyRequired, ErrCodeAPIKeyDisabled:
		return true
	}

	return false
}

//
// IsPlanRestricted returns whether the request was rejected because the API key's subscription plan
// does not cover the endpoint or has lapsed.
//
func (o *BadRequestError) IsPlanRestricted() bool {
	switch o.Code() {
	case ErrCodePaymentRequired, ErrCodePaymentExpired, ErrCodePlanUnauthorized:
		return true
	}

	return false
}

//
// IsBadRequest reports whether err is (or wraps) a BadRequestError.
//
func IsBadRequest(err error) bool {
	var target *BadRequestError

	return errors.As(err, &target)
}

//
// IsBadServerResponse reports whether err is (or wraps) a BadServerResponseError.
//
func IsBadServerResponse(err error) bool {
	var target *BadServerResponseError

	return errors.As(err, &target)
}

func looksLikeHTML(body string) bool {
	head := strings.ToLower(strings.TrimSpace(body))
	if len(head) > 512 {
		head = head[:512]
	}

	return strings.HasPrefix(head, "<!doctype html") || strings.Contains(head, "<html")
}
