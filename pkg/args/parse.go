package args

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrParse is returned (wrapped) when a token does not parse as the wanted kind.
var ErrParse = errors.New("invalid argument")

// ParseString always succeeds and keeps the token as is.
func ParseString(token string) (Value, error) {
	return String(token), nil
}

// ParseInt accepts a signed 32-bit decimal integer.
func ParseInt(token string) (Value, error) {
	i, err := strconv.ParseInt(token, 10, 32)
	if err != nil {
		return Value{}, fmt.Errorf("%w: %q is not an integer", ErrParse, token)
	}
	return Integer(int32(i)), nil
}

// ParseBool accepts exactly "true" or "false". Other spellings that
// strconv.ParseBool would take ("1", "T", "TRUE") are rejected so that a
// text command never reads a stray digit as a flag.
func ParseBool(token string) (Value, error) {
	switch token {
	case "true":
		return Boolean(true), nil
	case "false":
		return Boolean(false), nil
	}
	return Value{}, fmt.Errorf("%w: %q is not a boolean", ErrParse, token)
}

func ParseUser(token string) (Value, error) {
	id, err := parseID(token)
	if err != nil {
		return Value{}, err
	}
	return User(UserID(id)), nil
}

func ParseChannel(token string) (Value, error) {
	id, err := parseID(token)
	if err != nil {
		return Value{}, err
	}
	return Channel(ChannelID(id)), nil
}

func ParseRole(token string) (Value, error) {
	id, err := parseID(token)
	if err != nil {
		return Value{}, err
	}
	return Role(RoleID(id)), nil
}

// Parse dispatches to the parser for kind.
func Parse(kind Kind, token string) (Value, error) {
	switch kind {
	case KindString:
		return ParseString(token)
	case KindInteger:
		return ParseInt(token)
	case KindBoolean:
		return ParseBool(token)
	case KindUser:
		return ParseUser(token)
	case KindChannel:
		return ParseChannel(token)
	case KindRole:
		return ParseRole(token)
	default:
		return Value{}, fmt.Errorf("%w: unknown kind %s", ErrParse, kind)
	}
}

func parseID(token string) (uint64, error) {
	id, err := strconv.ParseUint(token, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not an id", ErrParse, token)
	}
	return id, nil
}
