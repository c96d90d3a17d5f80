package tags

import (
	"bytes"
	"strings"

	"github.com/viant/parsly"
)

// Values represents tag value literal, i.e. name=Apple,discriminant
type Values string

// MatchPairs calls onMatch for each coma separated key[=value] pair
func (v Values) MatchPairs(onMatch func(key, value string) error) error {
	cursor := parsly.NewCursor("", []byte(v), 0)
	for cursor.Pos < len(cursor.Input) {
		key, value := matchPair(cursor)
		if key == "" {
			continue
		}
		if err := onMatch(key, value); err != nil {
			return err
		}
	}
	return nil
}

func matchPair(cursor *parsly.Cursor) (string, string) {
	input := cursor.Input[cursor.Pos:]
	eqIndex := bytes.IndexByte(input, '=')
	comaIndex := bytes.IndexByte(input, ',')
	if eqIndex != -1 && (comaIndex == -1 || eqIndex < comaIndex) {
		match := cursor.MatchAfterOptional(whitespaceMatcher, eqTerminatorMatcher)
		key := match.Text(cursor)
		key = key[:len(key)-1] //exclude =
		return strings.TrimSpace(key), matchValue(cursor)
	}
	key := ""
	match := cursor.MatchAfterOptional(whitespaceMatcher, comaTerminatorMatcher)
	switch match.Code {
	case comaTerminatorToken:
		key = match.Text(cursor)
		key = key[:len(key)-1] //exclude ,
	default:
		key = string(cursor.Input[cursor.Pos:])
		cursor.Pos = len(cursor.Input)
	}
	return strings.TrimSpace(key), ""
}

func matchValue(cursor *parsly.Cursor) string {
	value := ""
	match := cursor.MatchAfterOptional(whitespaceMatcher, quotedMatcher, comaTerminatorMatcher)
	switch match.Code {
	case quotedToken:
		value = match.Text(cursor)
		value = value[1 : len(value)-1]
		cursor.MatchAfterOptional(whitespaceMatcher, comaTerminatorMatcher)
		return value
	case comaTerminatorToken:
		value = match.Text(cursor)
		value = value[:len(value)-1]
	default:
		if cursor.Pos < len(cursor.Input) {
			value = string(cursor.Input[cursor.Pos:])
			cursor.Pos = len(cursor.Input)
		}
	}
	return strings.TrimSpace(value)
}
