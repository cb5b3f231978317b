package models

import (
	"golang.org/x/text/encoding/unicode"
)

// StorageQuery is the validated input of an object fetch.
// Both fields are guaranteed to be non-empty once produced by the validators.
type StorageQuery struct {
	Bucket string `json:"bucket"`
	Object string `json:"object"`
}

// FetchedObject is the outbound representation of a downloaded object.
//
// Content is the object body decoded as UTF-8; invalid byte sequences are
// replaced with U+FFFD, so binary payloads do not round-trip.
type FetchedObject struct {
	Content string `json:"content"`
}

// NewFetchedObject decodes raw object bytes into a [FetchedObject].
func NewFetchedObject(raw []byte) FetchedObject {
	// the UTF-8 decoder substitutes invalid input and never fails
	decoded, _ := unicode.UTF8.NewDecoder().Bytes(raw)
	return FetchedObject{Content: string(decoded)}
}
