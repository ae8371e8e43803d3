package encid

// Option configures a Codec.
type Option func(*Codec)

// WithPrefix makes Encode prepend prefix to every token.
// Decoding accepts tokens with or without the prefix.
func WithPrefix(prefix string) Option {
	return func(c *Codec) {
		c.prefix = prefix
	}
}
