package service

import (
	"errors"
	"strings"
)

// Status is the three-way (and friends) outcome returned as data, so a
// caller can tell "resource absent" from "bad request" from "server error"
// without relying on the HTTP status alone.
type Status string

const (
	StatusSuccess       Status = "success"
	StatusNotFound      Status = "not_found"
	StatusWrongPassword Status = "wrong_password"
	StatusDuplicate     Status = "duplicate"
	StatusNoItems       Status = "no_items"
	StatusError         Status = "error"
)

// ValidationError reports every missing field at once, not just the first.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "missing required fields: " + strings.Join(e.Fields, ", ")
}

// NotFoundError marks a referenced tenant/member/order/item that does not
// exist. The transport maps it to a "not_found" payload, not a transport
// failure.
type NotFoundError struct {
	Resource string
}

func (e *NotFoundError) Error() string {
	return e.Resource + " not found"
}

// ConflictError marks a duplicate name at creation time.
type ConflictError struct {
	Resource string
}

func (e *ConflictError) Error() string {
	return e.Resource + " already exists"
}

// ErrNoItems is reported (not fatal) when confirming an empty order.
var ErrNoItems = errors.New("order has no items")
