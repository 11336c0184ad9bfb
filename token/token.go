// Package token defines the immutable lexical token value exchanged
// between the framework's scanner and parser layers.
package token

// Info describes a token class: a numeric identifier and a human-readable
// description of what the class matches.
type Info struct {
	ID          uint32
	Description string
}

// Token is an immutable lexical token: a class identifier, the matched
// input data and the line it was found on. The zero value is a valid
// empty token. Tokens are plain values and copy-assignable.
type Token struct {
	id          uint32
	description string
	data        string
	line        uint32
}

// New returns a token with the given class id, description, matched data
// and line number.
func New(id uint32, description, data string, line uint32) Token {
	return Token{
		id:          id,
		description: description,
		data:        data,
		line:        line,
	}
}

// FromInfo returns a token of the class described by info.
func FromInfo(info Info, data string, line uint32) Token {
	return New(info.ID, info.Description, data, line)
}

// ID returns the token class identifier.
func (t Token) ID() uint32 {
	return t.id
}

// Description returns the token class description.
func (t Token) Description() string {
	return t.description
}

// Data returns the matched input data.
func (t Token) Data() string {
	return t.data
}

// LineNumber returns the 1-based input line the token was found on.
func (t Token) LineNumber() uint32 {
	return t.line
}
