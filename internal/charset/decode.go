package charset

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/encoding/unicode/utf32"
)

// ErrDecode reports bytes that could not be decoded and no fallback was
// allowed.
var ErrDecode = errors.New("decode failed")

// what to do when the declared charset cannot decode the input
type Mode string

const (
	// retry as ISO-8859-1, which cannot fail
	ModeFallback Mode = "fallback"
	// fail with ErrDecode
	ModeStrict Mode = "strict"
	// decode again with U+FFFD for undecodable bytes
	ModePermissive Mode = "permissive"
)

func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case "", ModeFallback:
		return ModeFallback, nil
	case ModeStrict:
		return ModeStrict, nil
	case ModePermissive:
		return ModePermissive, nil
	default:
		return "", fmt.Errorf(
			"invalid decode mode %q: use fallback, strict, or permissive",
			s,
		)
	}
}

// which decode strategy produced the text
type Tier int

const (
	TierDeclared Tier = iota
	TierLatin1
	TierReplacement
)

func (t Tier) String() string {
	switch t {
	case TierDeclared:
		return "declared"
	case TierLatin1:
		return "iso-8859-1 fallback"
	case TierReplacement:
		return "replacement"
	default:
		return fmt.Sprintf("Tier(%d)", int(t))
	}
}

type Result struct {
	Text    string
	Tier    Tier
	Charset string
}

// true when a fallback tier was used
func (r Result) Fallback() bool {
	return r.Tier != TierDeclared
}

const latin1 = "iso-8859-1"

var aliases = map[string]encoding.Encoding{
	UTF8:       unicode.UTF8,
	UTF8SIG:    unicode.UTF8,
	"utf8":     unicode.UTF8,
	"utf-16le": unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM),
	"utf-16be": unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM),
	"utf-32le": utf32.UTF32(utf32.LittleEndian, utf32.IgnoreBOM),
	"utf-32be": utf32.UTF32(utf32.BigEndian, utf32.IgnoreBOM),
	"gb-18030": simplifiedchinese.GB18030,
	latin1:     charmap.ISO8859_1,
	"latin1":   charmap.ISO8859_1,
	"latin-1":  charmap.ISO8859_1,
	"l1":       charmap.ISO8859_1,
}

// Lookup resolves a charset name to an encoding.
func Lookup(name string) (encoding.Encoding, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" || key == Unknown {
		return nil, fmt.Errorf("no charset declared")
	}
	if enc, ok := aliases[key]; ok {
		return enc, nil
	}
	// IANA returns a nil encoding for names it knows but cannot decode
	if enc, err := ianaindex.IANA.Encoding(key); err == nil && enc != nil {
		return enc, nil
	}
	if enc, err := htmlindex.Get(key); err == nil {
		return enc, nil
	}
	return nil, fmt.Errorf("unsupported charset %q", name)
}

// Decode converts data to text, starting with the declared charset and then
// falling back as mode allows. A leading byte order mark is removed.
func Decode(data []byte, declared string, mode Mode) (Result, error) {
	enc, lookupErr := Lookup(declared)
	if lookupErr == nil {
		if text, ok := decodeStrict(data, enc); ok {
			return Result{
				Text:    trimBOM(text),
				Tier:    TierDeclared,
				Charset: declared,
			}, nil
		}
	}

	switch mode {
	case ModeStrict:
		if lookupErr != nil {
			return Result{}, fmt.Errorf("%w: %v", ErrDecode, lookupErr)
		}
		return Result{}, fmt.Errorf(
			"%w: input is not valid %s",
			ErrDecode,
			declared,
		)
	case ModePermissive:
		name := declared
		if lookupErr != nil {
			enc, name = unicode.UTF8, UTF8
		}
		text, err := enc.NewDecoder().String(string(data))
		if err != nil {
			return Result{}, fmt.Errorf("%w: %v", ErrDecode, err)
		}
		return Result{
			Text:    trimBOM(strings.ToValidUTF8(text, "\uFFFD")),
			Tier:    TierReplacement,
			Charset: name,
		}, nil
	default:
		// every byte maps to a Latin-1 code point
		text, err := charmap.ISO8859_1.NewDecoder().String(string(data))
		if err != nil {
			return Result{}, fmt.Errorf("%w: %v", ErrDecode, err)
		}
		return Result{
			Text:    trimBOM(text),
			Tier:    TierLatin1,
			Charset: latin1,
		}, nil
	}
}

// DecodeWithFallback decodes with the declared charset, falling back to
// ISO-8859-1. The flag reports whether the fallback was used.
func DecodeWithFallback(data []byte, declared string) (string, bool, error) {
	res, err := Decode(data, declared, ModeFallback)
	if err != nil {
		return "", false, err
	}
	return res.Text, res.Fallback(), nil
}

// EncodeUTF8 returns text as UTF-8 bytes; Go strings holding decoded text
// are always representable.
func EncodeUTF8(text string) []byte {
	return []byte(strings.ToValidUTF8(text, "\uFFFD"))
}

func decodeStrict(data []byte, enc encoding.Encoding) (string, bool) {
	if enc == unicode.UTF8 {
		if !utf8.Valid(data) {
			return "", false
		}
		return string(data), true
	}

	text, err := enc.NewDecoder().String(string(data))
	if err != nil {
		return "", false
	}
	// x/text decoders substitute U+FFFD instead of failing
	if strings.ContainsRune(text, utf8.RuneError) {
		return "", false
	}
	return text, true
}

func trimBOM(text string) string {
	return strings.TrimPrefix(text, "\ufeff")
}
