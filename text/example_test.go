package text_test

import (
	"fmt"
	"strings"
	"testing/iotest"

	"github.com/jmgilman/go/chunkread/errors"
	"github.com/jmgilman/go/chunkread/fs/billy"
	"github.com/jmgilman/go/chunkread/fs/core"
	"github.com/jmgilman/go/chunkread/text"
)

func ExampleAssemble() {
	// DataErrReader returns the last bytes together with io.EOF.
	src := iotest.DataErrReader(strings.NewReader("an arbitrary string"))

	s, err := text.Assemble(src, 20)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(s)
	// Output: an arbitrary string
}

func ExampleAssemble_buffered() {
	s, _ := text.Assemble(strings.NewReader("héllo"), 2, text.WithStrategy(text.Buffered))
	fmt.Println(s)

	_, err := text.Assemble(strings.NewReader("héllo"), 2)
	fmt.Println(errors.GetCode(err))
	// Output:
	// héllo
	// DECODE_FAILED
}

func ExampleVerifyRoundTrip() {
	err := text.VerifyRoundTrip(billy.NewMemory(), "an arbitrary string")
	fmt.Println(err == nil)
	// Output: true
}

func Example_scratchFile() {
	data := []byte("an arbitrary string")

	_ = core.WithTempFile(billy.NewMemory(), "example-", data, func(f core.File) error {
		s, err := text.Assemble(f, len(data)+1)
		fmt.Println(s, err)
		return err
	})
	// Output: an arbitrary string <nil>
}
