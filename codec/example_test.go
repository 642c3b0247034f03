package codec_test

import (
	"fmt"

	"github.com/sergeymakinen/go-stegocodec/codec"
)

func ExampleEncode() {
	buf, err := codec.Encode([]byte("hi"), "password")
	fmt.Println(len(buf), err)
	// Output:
	// 65536 <nil>
}

func ExampleEncode_tooLarge() {
	_, err := codec.Encode(make([]byte, codec.MaxPayloadLen+1), "password")
	fmt.Println(err)
	// Output:
	// codec: payload exceeds 1023 bytes
}
