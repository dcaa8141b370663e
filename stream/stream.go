// Package stream filters line-oriented input through a whole-string
// matcher.
//
// Every line is matched as one complete string, without its trailing
// "\n" or "\r\n", so the filter keeps exactly the lines the pattern
// accepts in full. Memory use is bounded by Config.MaxLineLength rather
// than by the size of the input.
//
// Example usage with a generated pattern:
//
//	file, _ := os.Open("words.txt")
//	defer file.Close()
//
//	r := stream.LineFilter(file, CompiledBanana, stream.DefaultConfig())
//	io.Copy(os.Stdout, r)
package stream

import "fmt"

// Matcher reports whether a whole string is accepted. Both *expr.Expr and
// the types emitted by the code generator implement it.
type Matcher interface {
	MatchString(input string) bool
}

// MinBufferSize is the smallest read chunk LineFilter accepts.
const MinBufferSize = 64

// Config configures line filtering.
type Config struct {
	// BufferSize is the chunk size for reading from the io.Reader.
	// Default: 64KB (65536). Minimum: MinBufferSize.
	BufferSize int

	// MaxLineLength limits how many bytes a single line may hold while
	// waiting for its newline. Longer lines fail with ErrLineTooLong.
	//
	// Default: 1MB. Set to -1 for unlimited (use with caution on
	// infinite streams!).
	MaxLineLength int
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		BufferSize:    64 * 1024,   // 64KB
		MaxLineLength: 1024 * 1024, // 1MB
	}
}

// ErrBufferTooSmall is returned when Config.BufferSize is positive but
// below MinBufferSize.
type ErrBufferTooSmall struct {
	Requested int
	Minimum   int
}

func (e ErrBufferTooSmall) Error() string {
	return fmt.Sprintf("stream: buffer size %d too small, need at least %d", e.Requested, e.Minimum)
}

// ErrLineTooLong is returned when a line exceeds Config.MaxLineLength.
type ErrLineTooLong struct {
	Limit int
}

func (e ErrLineTooLong) Error() string {
	return fmt.Sprintf("stream: line longer than %d bytes", e.Limit)
}

// Validate validates the Config and returns an error if invalid.
func (c Config) Validate() error {
	if c.BufferSize > 0 && c.BufferSize < MinBufferSize {
		return ErrBufferTooSmall{Requested: c.BufferSize, Minimum: MinBufferSize}
	}
	if c.BufferSize < 0 {
		return fmt.Errorf("stream: negative buffer size %d", c.BufferSize)
	}
	if c.MaxLineLength < -1 {
		return fmt.Errorf("stream: invalid max line length %d", c.MaxLineLength)
	}
	return nil
}

// ApplyDefaults returns a Config with defaults applied for any zero values.
func (c Config) ApplyDefaults() Config {
	result := c
	def := DefaultConfig()

	if result.BufferSize == 0 {
		result.BufferSize = def.BufferSize
	}
	if result.BufferSize < MinBufferSize {
		result.BufferSize = MinBufferSize
	}
	if result.MaxLineLength == 0 {
		result.MaxLineLength = def.MaxLineLength
	}

	return result
}
