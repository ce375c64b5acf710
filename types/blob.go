package types

import (
	"encoding/base64"
	"strconv"
)

var _ Value = NewBlobValue(nil)

type BlobValue []byte

// NewBlobValue returns an RDN binary value.
func NewBlobValue(x []byte) BlobValue {
	return BlobValue(x)
}

func (v BlobValue) V() any {
	return []byte(v)
}

func (v BlobValue) Type() Type {
	return TypeBlob
}

// String returns the base64 form. The hex form is accepted by the parser
// but never produced.
func (v BlobValue) String() string {
	return `b"` + base64.StdEncoding.EncodeToString(v) + `"`
}

func (v BlobValue) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

func (v BlobValue) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(base64.StdEncoding.EncodeToString(v))), nil
}
