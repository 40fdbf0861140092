// Package codec converts layouts to and from share tokens and the JSON
// records kept by the persistence gateway.
//
// A share token is base64(uriComponentEscape(json({m, t, n, d}))), which is
// what browsers produce with btoa(encodeURIComponent(JSON.stringify(x))).
// Browser-minted tokens, including the legacy mode names mode1, limbo and
// 4parties, decode here. Encode writes the mode as single, dual or quad.
package codec

import (
	"encoding/base64"
	"fmt"
	"net/url"
	"strings"
	"unicode/utf8"

	json "github.com/goccy/go-json"

	"github.com/heartmarshall/teambuilder/internal/domain"
	"github.com/heartmarshall/teambuilder/internal/layout"
)

type shareData struct {
	M string          `json:"m"`
	T json.RawMessage `json:"t"`
	N *string         `json:"n"`
	D *string         `json:"d"`
}

type shareOut struct {
	M string       `json:"m"`
	T [][]wireUnit `json:"t"`
	N string       `json:"n"`
	D string       `json:"d"`
}

// Encode produces the share token for l. The result is deterministic.
func Encode(l domain.Layout) (string, error) {
	data, err := marshal(shareOut{
		M: string(l.Mode),
		T: teamsToWire(l.Teams()),
		N: l.Name,
		D: l.Description,
	})
	if err != nil {
		return "", fmt.Errorf("encode share data: %w", err)
	}
	return base64.StdEncoding.EncodeToString([]byte(escapeURIComponent(string(data)))), nil
}

// Decode parses a share token. Anything up to and including the last '#'
// is ignored, so a full share URL decodes the same as the bare token.
// The returned layout is sized to its mode's topology.
func Decode(token string) (domain.Layout, error) {
	token = strings.TrimSpace(token)
	if i := strings.LastIndexByte(token, '#'); i >= 0 {
		token = strings.TrimSpace(token[i+1:])
	}
	if token == "" {
		return domain.Layout{}, fmt.Errorf("%w: empty token", domain.ErrCorruptToken)
	}

	raw, err := decodeBase64(token)
	if err != nil {
		return domain.Layout{}, fmt.Errorf("%w: base64: %v", domain.ErrCorruptToken, err)
	}
	text, err := url.PathUnescape(string(raw))
	if err != nil {
		return domain.Layout{}, fmt.Errorf("%w: unescape: %v", domain.ErrCorruptToken, err)
	}
	if !utf8.ValidString(text) {
		return domain.Layout{}, fmt.Errorf("%w: invalid utf-8", domain.ErrCorruptToken)
	}

	var sd shareData
	if err := json.Unmarshal([]byte(text), &sd); err != nil {
		return domain.Layout{}, fmt.Errorf("%w: json: %v", domain.ErrCorruptToken, err)
	}
	if sd.M == "" || len(sd.T) == 0 || string(sd.T) == "null" {
		return domain.Layout{}, domain.ErrMalformedShareData
	}

	var teams [][]wireUnit
	if err := json.Unmarshal(sd.T, &teams); err != nil {
		return domain.Layout{}, fmt.Errorf("%w: teams: %v", domain.ErrMalformedShareData, err)
	}

	mode, _ := domain.ParseMode(sd.M)
	l := domain.Layout{
		Mode:  mode,
		Slots: layout.Generate(mode).Normalize(domain.FlattenTeams(teamsFromWire(teams))),
	}
	if sd.N != nil {
		l.Name = *sd.N
	}
	if sd.D != nil {
		l.Description = *sd.D
	}
	return l, nil
}

// ShareURL places token in the fragment of base, replacing any fragment
// base already has.
func ShareURL(base, token string) string {
	base, _, _ = strings.Cut(base, "#")
	return base + "#" + token
}

func decodeBase64(s string) ([]byte, error) {
	s = strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '\n', '\r', '\f':
			return -1
		}
		return r
	}, s)

	var firstErr error
	for _, enc := range []*base64.Encoding{
		base64.StdEncoding,
		base64.RawStdEncoding,
		base64.URLEncoding,
		base64.RawURLEncoding,
	} {
		b, err := enc.DecodeString(s)
		if err == nil {
			return b, nil
		}
		if firstErr == nil {
			firstErr = err
		}
	}
	return nil, firstErr
}

const upperhex = "0123456789ABCDEF"

// escapeURIComponent escapes every byte except A-Z a-z 0-9 and -_.!~*'().
func escapeURIComponent(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if isUnreservedURIComponent(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(upperhex[c>>4])
		b.WriteByte(upperhex[c&15])
	}
	return b.String()
}

func isUnreservedURIComponent(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	}
	switch c {
	case '-', '_', '.', '!', '~', '*', '\'', '(', ')':
		return true
	}
	return false
}
