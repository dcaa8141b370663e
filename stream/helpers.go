package stream

import (
	"bytes"
	"io"
)

// LineFilter returns an io.Reader that only outputs the lines m accepts.
// Lines are delimited by '\n'. The line handed to m has its "\n" and a
// preceding "\r" removed; the output keeps each accepted line as it
// appeared in the input. An invalid cfg makes the first Read fail.
//
// Example - keep only lines of the form b·a*·n:
//
//	tree, _ := brzozowski.Parse("ba*n")
//	r := stream.LineFilter(input, tree, stream.DefaultConfig())
//	io.Copy(os.Stdout, r)
func LineFilter(r io.Reader, m Matcher, cfg Config) io.Reader {
	return newLineFilter(r, m, cfg)
}

// CountMatches reads r to the end and returns how many lines m accepts.
func CountMatches(r io.Reader, m Matcher, cfg Config) (int, error) {
	f := newLineFilter(r, m, cfg)
	if _, err := io.Copy(io.Discard, f); err != nil {
		return f.matched, err
	}
	return f.matched, nil
}

func newLineFilter(r io.Reader, m Matcher, cfg Config) *lineFilterReader {
	f := &lineFilterReader{source: r, m: m}
	if err := cfg.Validate(); err != nil {
		f.err = err
		return f
	}
	f.cfg = cfg.ApplyDefaults()
	f.buf = make([]byte, 0, f.cfg.BufferSize)
	return f
}

// lineFilterReader implements io.Reader for LineFilter.
type lineFilterReader struct {
	source  io.Reader
	m       Matcher
	cfg     Config
	matched int

	// Input buffer
	buf       []byte
	bufStart  int
	sourceEOF bool

	// Output buffer (lines that passed the filter)
	output      []byte
	outputStart int

	err error
}

func (r *lineFilterReader) Read(p []byte) (n int, err error) {
	if r.outputStart < len(r.output) {
		return r.drain(p), nil
	}

	if r.err != nil {
		return 0, r.err
	}

	for len(r.output) == 0 {
		if err := r.processMore(); err != nil {
			// Deliver what is buffered, report the error next time.
			r.err = err
			if len(r.output) > 0 {
				return r.drain(p), nil
			}
			return 0, err
		}
	}

	return r.drain(p), nil
}

func (r *lineFilterReader) drain(p []byte) int {
	n := copy(p, r.output[r.outputStart:])
	r.outputStart += n
	if r.outputStart == len(r.output) {
		r.output = r.output[:0]
		r.outputStart = 0
	}
	return n
}

// processMore reads one chunk and filters every complete line in it.
func (r *lineFilterReader) processMore() error {
	if r.bufStart > 0 {
		remaining := copy(r.buf, r.buf[r.bufStart:])
		r.buf = r.buf[:remaining]
		r.bufStart = 0
	}

	var readErr error
	if !r.sourceEOF {
		if cap(r.buf)-len(r.buf) < r.cfg.BufferSize {
			grown := make([]byte, len(r.buf), len(r.buf)+r.cfg.BufferSize)
			copy(grown, r.buf)
			r.buf = grown
		}

		n, err := r.source.Read(r.buf[len(r.buf):cap(r.buf)])
		r.buf = r.buf[:len(r.buf)+n]
		if err == io.EOF {
			r.sourceEOF = true
		} else if err != nil {
			readErr = err
		}
	}

	data := r.buf
	for {
		idx := bytes.IndexByte(data, '\n')
		if idx < 0 {
			break
		}
		r.filter(data[:idx+1], data[:idx])
		data = data[idx+1:]
		r.bufStart += idx + 1
	}

	// Complete lines from the failed read are kept; a partial tail is not.
	if readErr != nil {
		return readErr
	}

	if r.sourceEOF {
		if len(data) > 0 {
			r.filter(data, data)
			r.bufStart = len(r.buf)
		}
		return io.EOF
	}

	if limit := r.cfg.MaxLineLength; limit > 0 && len(data) > limit {
		return ErrLineTooLong{Limit: limit}
	}
	return nil
}

func (r *lineFilterReader) filter(line, content []byte) {
	content = bytes.TrimSuffix(content, []byte{'\r'})
	if r.m.MatchString(string(content)) {
		r.matched++
		r.output = append(r.output, line...)
	}
}
