package censor

import (
	"encoding/hex"
	"net/netip"
	"reflect"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/crypto/blake2b"
)

// MaskType names a built-in content-aware masker.
type MaskType string

const (
	MaskSSN         MaskType = "ssn"         // 123-45-6789 -> ***-**-6789
	MaskEmail       MaskType = "email"       // alice@example.com -> a***@example.com
	MaskPhone       MaskType = "phone"       // (555) 123-4567 -> (***) ***-4567
	MaskCard        MaskType = "card"        // 4111111111111111 -> ************1111
	MaskIP          MaskType = "ip"          // 192.168.1.100 -> 192.168.xxx.xxx
	MaskUUID        MaskType = "uuid"        // 550e8400-e29b-41d4-a716-446655440000 -> 550e8400-****-****-****-************
	MaskIBAN        MaskType = "iban"        // GB82WEST12345698765432 -> GB82**************5432
	MaskName        MaskType = "name"        // John Smith -> J*** S****
	MaskFingerprint MaskType = "fingerprint" // anything -> fp:3f2a9c1d0b7e6a55
)

// Masker partially hides a string. Masker output is used verbatim when a
// masker is installed as a type handler.
type Masker interface {
	Mask(value string) string
}

// MaskerFunc adapts a function to Masker.
type MaskerFunc func(string) string

// Mask calls f(value).
func (f MaskerFunc) Mask(value string) string {
	return f(value)
}

// builtinMaskers is the registry behind BuiltinMasker.
var builtinMaskers = map[MaskType]Masker{
	MaskSSN:         MaskerFunc(maskSSN),
	MaskEmail:       MaskerFunc(maskEmail),
	MaskPhone:       MaskerFunc(maskPhone),
	MaskCard:        MaskerFunc(maskCard),
	MaskIP:          MaskerFunc(maskIP),
	MaskUUID:        MaskerFunc(maskUUID),
	MaskIBAN:        MaskerFunc(maskIBAN),
	MaskName:        MaskerFunc(maskName),
	MaskFingerprint: FingerprintMasker(nil),
}

// BuiltinMasker returns the masker registered for mt.
func BuiltinMasker(mt MaskType) (Masker, bool) {
	m, ok := builtinMaskers[mt]
	return m, ok
}

// MaskerHandler adapts m to a TypeHandler for string-kinded values.
// Values of any other kind render as stars.
func MaskerHandler(m Masker) TypeHandler {
	return func(v any) string {
		if s, ok := stringOf(v); ok {
			return m.Mask(s)
		}
		return "****"
	}
}

// FingerprintMasker replaces a value with a short keyed BLAKE2b digest, so
// equal inputs can be correlated across log lines without being shown.
// A nil key produces an unkeyed digest.
func FingerprintMasker(key []byte) Masker {
	return MaskerFunc(func(value string) string {
		h, err := blake2b.New256(key)
		if err != nil {
			// Keys longer than 64 bytes are rejected by blake2b.
			sum := blake2b.Sum256(append(append([]byte(nil), key...), value...))
			return "fp:" + hex.EncodeToString(sum[:8])
		}
		h.Write([]byte(value))
		return "fp:" + hex.EncodeToString(h.Sum(nil)[:8])
	})
}

func maskSSN(value string) string {
	digits := extractDigits(value)
	if len(digits) < 4 {
		return stars(value)
	}
	return "***-**-" + digits[len(digits)-4:]
}

func maskEmail(value string) string {
	at := strings.LastIndex(value, "@")
	if at < 1 {
		return stars(value)
	}
	local, domain := value[:at], value[at:]
	r := []rune(local)
	return string(r[0]) + "***" + domain
}

func maskPhone(value string) string {
	digits := extractDigits(value)
	if len(digits) < 4 {
		return stars(value)
	}

	last4 := digits[len(digits)-4:]
	switch {
	case strings.HasPrefix(value, "(") && len(digits) >= 10:
		return "(***) ***-" + last4
	case len(digits) >= 10:
		return "***-***-" + last4
	default:
		return "***-" + last4
	}
}

func maskCard(value string) string {
	digits := extractDigits(value)
	if len(digits) < 4 {
		return stars(value)
	}

	last4 := digits[len(digits)-4:]
	for _, sep := range []string{" ", "-"} {
		if strings.Contains(value, sep) {
			groups := make([]string, (len(digits)-4+3)/4)
			for i := range groups {
				groups[i] = "****"
			}
			return strings.Join(append(groups, last4), sep)
		}
	}
	return strings.Repeat("*", len(digits)-4) + last4
}

// maskIP keeps the network half of an address: two octets for IPv4, four
// groups for IPv6.
func maskIP(value string) string {
	addr, err := netip.ParseAddr(value)
	if err != nil {
		return stars(value)
	}

	if addr.Is4() {
		b := addr.As4()
		return strconv.Itoa(int(b[0])) + "." + strconv.Itoa(int(b[1])) + ".xxx.xxx"
	}

	parts := strings.Split(addr.WithZone("").StringExpanded(), ":")
	return strings.Join(parts[:4], ":") + ":xxxx:xxxx:xxxx:xxxx"
}

func maskUUID(value string) string {
	parts := strings.Split(value, "-")
	if len(parts) != 5 {
		return stars(value)
	}
	return parts[0] + "-****-****-****-************"
}

func maskIBAN(value string) string {
	if len(value) <= 8 {
		return stars(value)
	}
	return value[:4] + strings.Repeat("*", len(value)-8) + value[len(value)-4:]
}

func maskName(value string) string {
	words := strings.Fields(value)
	for i, word := range words {
		r := []rune(word)
		words[i] = string(r[0]) + strings.Repeat("*", len(r)-1)
	}
	return strings.Join(words, " ")
}

func extractDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func stars(s string) string {
	return strings.Repeat("*", len([]rune(s)))
}

func stringOf(v any) (string, bool) {
	switch s := v.(type) {
	case string:
		return s, true
	case []byte:
		return string(s), true
	}
	rv := reflect.ValueOf(v)
	if rv.IsValid() && rv.Kind() == reflect.String {
		return rv.String(), true
	}
	return "", false
}
