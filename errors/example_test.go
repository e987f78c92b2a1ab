package errors_test

import (
	"fmt"
	"io/fs"

	"github.com/jmgilman/go/chunkread/errors"
)

func ExampleNew() {
	err := errors.New(errors.CodeInvalidInput, "chunk size must be positive")
	fmt.Println(err.Error())
	// Output: [INVALID_INPUT] chunk size must be positive
}

func ExampleWrap() {
	err := errors.Wrap(fs.ErrClosed, errors.CodeReadFault, "read failed")

	fmt.Println(errors.GetCode(err))
	fmt.Println(errors.Is(err, fs.ErrClosed))
	// Output:
	// READ_FAULT
	// true
}

func ExampleWithContext() {
	err := errors.New(errors.CodeDecodeFailed, "invalid utf-8")
	err = errors.WithContext(err, "chunk", 3)

	fmt.Println(err.Context()["chunk"])
	// Output: 3
}
