package args

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		kind  Kind
		token string
		want  Value
		ok    bool
	}{
		{KindString, "anything at all", String("anything at all"), true},
		{KindString, "", String(""), true},
		{KindInteger, "42", Integer(42), true},
		{KindInteger, "-2147483648", Integer(-2147483648), true},
		{KindInteger, "2147483648", Value{}, false},
		{KindInteger, "4.2", Value{}, false},
		{KindInteger, "abc", Value{}, false},
		{KindBoolean, "true", Boolean(true), true},
		{KindBoolean, "false", Boolean(false), true},
		{KindBoolean, "True", Value{}, false},
		{KindBoolean, "1", Value{}, false},
		{KindUser, "80351110224678912", User(80351110224678912), true},
		{KindUser, "-1", Value{}, false},
		{KindUser, "<@123>", Value{}, false},
		{KindChannel, "18446744073709551615", Channel(18446744073709551615), true},
		{KindChannel, "18446744073709551616", Value{}, false},
		{KindRole, "5", Role(5), true},
		{Kind(99), "5", Value{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String()+"/"+tt.token, func(t *testing.T) {
			got, err := Parse(tt.kind, tt.token)
			if !tt.ok {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrParse)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValue_Equality(t *testing.T) {
	assert.True(t, User(1) == User(1))
	assert.False(t, User(1) == Role(1))
	assert.False(t, Integer(1) == Integer(2))
	assert.True(t, String("a").Equal(String("a")))
}

func TestValues_TypedGetters(t *testing.T) {
	v := Values{
		"name":  String("bob"),
		"n":     Integer(3),
		"on":    Boolean(true),
		"who":   User(9),
		"where": Channel(8),
		"as":    Role(7),
	}

	s, ok := v.String("name")
	assert.True(t, ok)
	assert.Equal(t, "bob", s)

	n, ok := v.Int("n")
	assert.True(t, ok)
	assert.Equal(t, int32(3), n)

	_, ok = v.Int("name")
	assert.False(t, ok)

	_, ok = v.Bool("missing")
	assert.False(t, ok)

	u, _ := v.User("who")
	c, _ := v.Channel("where")
	r, _ := v.Role("as")
	assert.Equal(t, UserID(9), u)
	assert.Equal(t, ChannelID(8), c)
	assert.Equal(t, RoleID(7), r)
}
