package converter

import (
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/htmlindex"

	"github.com/quantmind-br/repoanalyzer/internal/domain"
	"github.com/quantmind-br/repoanalyzer/internal/utils"
)

// UnreadablePrefix starts the placeholder written for files that cannot be read
const UnreadablePrefix = "Unable to read file content: "

// latin1Names resolve to a true ISO-8859-1 decoder. htmlindex maps them to
// windows-1252, which does not give every byte its own code point.
var latin1Names = map[string]bool{
	"iso-8859-1": true,
	"iso8859-1":  true,
	"iso_8859-1": true,
	"latin-1":    true,
	"latin1":     true,
	"l1":         true,
}

// Decoder reads files as text: a primary encoding first, then a permissive
// fallback when the primary cannot decode the bytes.
type Decoder struct {
	primaryName  string
	primary      encoding.Encoding
	fallbackName string
	fallback     encoding.Encoding
	logger       *utils.Logger
}

// DecoderOptions contains options for creating a Decoder
type DecoderOptions struct {
	Primary  string
	Fallback string
	Logger   *utils.Logger
}

// NewDecoder creates a Decoder. Empty encoding names default to utf-8 and
// iso-8859-1.
func NewDecoder(opts DecoderOptions) (*Decoder, error) {
	if opts.Primary == "" {
		opts.Primary = "utf-8"
	}
	if opts.Fallback == "" {
		opts.Fallback = "iso-8859-1"
	}

	primary, err := GetEncoder(opts.Primary)
	if err != nil {
		return nil, err
	}
	fallback, err := GetEncoder(opts.Fallback)
	if err != nil {
		return nil, err
	}

	return &Decoder{
		primaryName:  normalizeName(opts.Primary),
		primary:      primary,
		fallbackName: normalizeName(opts.Fallback),
		fallback:     fallback,
		logger:       opts.Logger,
	}, nil
}

// ReadText returns the text of the file at path. When the file cannot be
// read at all the returned text is a placeholder describing the error and ok
// is false.
func (d *Decoder) ReadText(path string) (string, bool) {
	content, err := os.ReadFile(path)
	if err != nil {
		if d.logger != nil {
			d.logger.Warn().Err(err).Str("file", path).Msg("Error reading file")
		}
		return UnreadablePrefix + err.Error(), false
	}

	text, err := d.Decode(content)
	if err != nil {
		if d.logger != nil {
			d.logger.Warn().Err(err).Str("file", path).Msg("Error decoding file")
		}
		return UnreadablePrefix + err.Error(), false
	}
	return text, true
}

// Decode converts content to a string, trying the primary encoding and then
// the fallback. Line endings are normalised to \n.
func (d *Decoder) Decode(content []byte) (string, error) {
	text, err := decodeWith(d.primaryName, d.primary, content)
	if err != nil {
		text, err = decodeWith(d.fallbackName, d.fallback, content)
		if err != nil {
			return "", err
		}
	}
	return NormalizeNewlines(text), nil
}

func decodeWith(name string, enc encoding.Encoding, content []byte) (string, error) {
	if name == "utf-8" {
		if !IsUTF8(content) {
			return "", fmt.Errorf("invalid utf-8 byte sequence")
		}
		return string(content), nil
	}

	out, err := enc.NewDecoder().Bytes(content)
	if err != nil {
		return "", fmt.Errorf("decode %s: %w", name, err)
	}
	return string(out), nil
}

// NormalizeNewlines converts \r\n and lone \r line endings to \n
func NormalizeNewlines(text string) string {
	if !strings.Contains(text, "\r") {
		return text
	}
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return strings.ReplaceAll(text, "\r", "\n")
}

// IsUTF8 checks if content is valid UTF-8
func IsUTF8(content []byte) bool {
	return utf8.Valid(content)
}

// GetEncoder returns the encoding for a charset name
func GetEncoder(charsetName string) (encoding.Encoding, error) {
	name := normalizeName(charsetName)
	if latin1Names[name] {
		return charmap.ISO8859_1, nil
	}
	enc, err := htmlindex.Get(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownEncoding, charsetName)
	}
	return enc, nil
}

func normalizeName(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "utf8" {
		return "utf-8"
	}
	return name
}
