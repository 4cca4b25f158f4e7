package pricing

import (
	"errors"
	"fmt"
)

// Code identifies a pricing failure class
type Code string

const (
	CodeNotFound            Code = "not_found"
	CodeOutOfStock          Code = "out_of_stock"
	CodeCouponInvalid       Code = "coupon_invalid"
	CodeCouponBelowMinimum  Code = "coupon_below_minimum"
	CodeCouponNotApplicable Code = "coupon_not_applicable"
	CodeInvalidTotal        Code = "invalid_total"
	CodeInvalidInput        Code = "invalid_input"
)

// Error is a typed pricing failure. Failures are returned synchronously to
// the caller and never retried by the engine.
type Error struct {
	Code    Code
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// Is lets errors.Is match two pricing errors by code
func (e *Error) Is(target error) bool {
	var other *Error
	if errors.As(target, &other) {
		return e.Code == other.Code
	}
	return false
}

// IsCode reports whether err is a pricing error with the given code
func IsCode(err error, code Code) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == code
}

// ErrorCode extracts the code from a pricing error, or "" for other errors
func ErrorCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

func newNotFound(ref string) *Error {
	return &Error{Code: CodeNotFound, Message: fmt.Sprintf("Product %s not found", ref)}
}

func newOutOfStock(name string, requested, available int) *Error {
	return &Error{
		Code:    CodeOutOfStock,
		Message: fmt.Sprintf("Insufficient stock for %s: requested %d, available %d", name, requested, available),
	}
}

func newCouponNotFound(code string) *Error {
	return &Error{Code: CodeNotFound, Message: fmt.Sprintf("Invalid coupon code %s", code)}
}

func newCouponInvalid(code string) *Error {
	return &Error{Code: CodeCouponInvalid, Message: fmt.Sprintf("Coupon %s is expired or inactive", code)}
}

func newCouponBelowMinimum(code string, minimum int64) *Error {
	return &Error{
		Code:    CodeCouponBelowMinimum,
		Message: fmt.Sprintf("Coupon %s requires a minimum purchase of %.2f", code, float64(minimum)/100),
	}
}

func newCouponNotApplicable(code string) *Error {
	return &Error{Code: CodeCouponNotApplicable, Message: fmt.Sprintf("Coupon %s is not applicable to the cart items", code)}
}

func newInvalidTotal(total int64) *Error {
	return &Error{Code: CodeInvalidTotal, Message: fmt.Sprintf("Computed order total %d is negative", total)}
}

func newInvalidInput(message string) *Error {
	return &Error{Code: CodeInvalidInput, Message: message}
}
