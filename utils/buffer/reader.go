package buffer

import (
	"fmt"
	"io"
)

// ReadWords reads count fixed-size words of width bytes from r. The i-th word
// is handed to get as a slice of the internal buffer of r, which is only valid
// for the duration of the call.
func ReadWords(r Reader, width, count int, get func(i int, word []byte) error) (n int64, err error) {

	if width <= 0 || r.Size() < width {
		return 0, fmt.Errorf("cannot ReadWords: invalid word width %d for reader of size %d", width, r.Size())
	}

	for i := 0; i < count; {

		// Peeks as many complete words as the internal buffer can hold
		size := (r.Size() / width) * width
		if rem := (count - i) * width; rem < size {
			size = rem
		}

		if size == 0 {
			return n, fmt.Errorf("cannot ReadWords: %w", io.ErrUnexpectedEOF)
		}

		var slice []byte
		if slice, err = r.Peek(size); err != nil {
			return n, fmt.Errorf("cannot ReadWords: %w", err)
		}

		buffered := len(slice) / width

		for j := 0; j < buffered; j++ {
			if err = get(i+j, slice[j*width:(j+1)*width]); err != nil {
				return
			}
		}

		var inc int
		if inc, err = r.Discard(buffered * width); err != nil {
			return n + int64(inc), err
		}

		n += int64(inc)
		i += buffered
	}

	return
}
