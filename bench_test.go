package rdn_test

import (
	"testing"

	"github.com/rdnlang/rdn"
)

func BenchmarkParseSimpleJSON(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = rdn.Parse(`{"name": "test", "value": 42}`)
	}
}

func BenchmarkParseExtended(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = rdn.Parse(`{"date": @2024-01-15T10:30:00.000Z, "id": 42n, "pattern": /ab+c/gi, "blob": b"Zm9v", "tags": Set{"a", "b"}, "index": Map{1 => "a", [2] => "b"}}`)
	}
}

func BenchmarkSerialize(b *testing.B) {
	v := rdn.MustParse(`{"date": @2024-01-15T10:30:00.000Z, "id": 42n, "tags": Set{"a", "b"}}`)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = rdn.Serialize(v)
	}
}

func BenchmarkFromJSON(b *testing.B) {
	data := []byte(`{"name":"test","value":42,"tags":["a","b"]}`)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = rdn.FromJSON(data)
	}
}
