package buffer

import (
	"fmt"
)

// WriteWords writes count fixed-size words of width bytes to w. The i-th word
// is serialized by put directly into the internal buffer of w, which is
// flushed whenever it runs out of space.
func WriteWords(w Writer, width, count int, put func(i int, word []byte)) (n int64, err error) {

	if width <= 0 {
		return 0, fmt.Errorf("cannot WriteWords: invalid word width %d", width)
	}

	for i := 0; i < count; {

		// Remaining available space in the internal buffer, in words
		available := w.Available() / width

		if available == 0 {

			if err = w.Flush(); err != nil {
				return
			}

			if available = w.Available() / width; available == 0 {
				return n, fmt.Errorf("cannot WriteWords: available buffer is smaller than a word even after flush")
			}
		}

		if available > count-i {
			available = count - i
		}

		buf := w.AvailableBuffer()[:available*width]

		for j := 0; j < available; j++ {
			put(i+j, buf[j*width:(j+1)*width])
		}

		var inc int
		if inc, err = w.Write(buf); err != nil {
			return n + int64(inc), err
		}

		n += int64(inc)
		i += available
	}

	return
}
