package rdn_test

import (
	"fmt"

	"github.com/rdnlang/rdn"
	"github.com/rdnlang/rdn/types"
)

func ExampleParse() {
	v, err := rdn.Parse(`{"date": @2024-01-15T10:30:00.000Z, "id": 42n, "tags": Set{"a", "b"}}`)
	if err != nil {
		panic(err)
	}

	obj := v.(*types.ObjectValue)
	id, _ := obj.Get("id")
	fmt.Println(id)

	// Output: 42n
}

func ExampleSerialize() {
	v := types.NewObjectValue().
		Add("name", types.NewTextValue("test")).
		Add("when", types.NewDateValue(1705314600000))

	s, err := rdn.Serialize(v)
	if err != nil {
		panic(err)
	}
	fmt.Println(s)

	// Output: {"name": "test", "when": @2024-01-15T10:30:00.000Z}
}

func ExampleFromJSON() {
	v, err := rdn.FromJSON([]byte(`{"name":"test","value":42}`))
	if err != nil {
		panic(err)
	}
	fmt.Println(rdn.MustSerialize(v))

	// Output: {"name": "test", "value": 42}
}
