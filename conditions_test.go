package revenue_test

import (
	"encoding/json"
	"fmt"
	"reflect"
	"testing"

	"github.com/retok/revenue"
	"github.com/retok/revenue/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddressPrinting(t *testing.T) {
	b := []byte("ABCD123456LHB")
	addr := revenue.Address(b)
	assert.Equal(t, fmt.Sprintf("%X", b), addr.String())
	assert.Equal(t, "(nil)", revenue.Address(nil).String())

	cond := revenue.NewCondition("dist", "income", []byte{0, 1})
	assert.Equal(t, "dist/income/0001", cond.String())
}

func TestAddressBech32RoundTrip(t *testing.T) {
	addr := revenue.NewCondition("dist", "income", []byte{0, 0, 0, 1}).Address()
	enc, err := addr.Bech32()
	require.NoError(t, err)

	got, err := revenue.ParseAddress("bech32:" + enc)
	require.NoError(t, err)
	assert.Equal(t, addr, got)
}

func TestAddressUnmarshalJSON(t *testing.T) {
	valid := revenue.NewCondition("foo", "bar", []byte("conditiondata")).Address()

	cases := map[string]struct {
		json     string
		wantErr  *errors.Error
		wantAddr revenue.Address
	}{
		"default decoding": {
			json:     fmt.Sprintf(`"%s"`, valid),
			wantAddr: valid,
		},
		"hex decoding": {
			json:     fmt.Sprintf(`"hex:%s"`, valid),
			wantAddr: valid,
		},
		"hex of invalid length": {
			json:    `"hex:6865782d61646472"`,
			wantErr: errors.ErrInvalidInput,
		},
		"cond decoding": {
			json:     `"cond:foo/bar/636f6e646974696f6e64617461"`,
			wantAddr: valid,
		},
		"invalid condition format": {
			json:    `"cond:foo/636f6e646974696f6e64617461"`,
			wantErr: errors.ErrInvalidInput,
		},
		"invalid condition data": {
			json:    `"cond:foo/bar/zzzzz"`,
			wantErr: errors.ErrInvalidInput,
		},
		"unknown format": {
			json:    `"foobar:xxx"`,
			wantErr: errors.ErrInvalidInput,
		},
		"zero address": {
			json:     `""`,
			wantAddr: nil,
		},
		"zero hex address": {
			json:     `"hex:"`,
			wantAddr: nil,
		},
		"zero cond address": {
			json:     `"cond:"`,
			wantAddr: nil,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			var a revenue.Address
			err := json.Unmarshal([]byte(tc.json), &a)
			if !tc.wantErr.Is(err) {
				t.Fatalf("got error: %+v", err)
			}
			if err == nil && !reflect.DeepEqual(a, tc.wantAddr) {
				t.Fatalf("got address: %q", a)
			}
		})
	}
}

func TestConditionUnmarshalJSON(t *testing.T) {
	cases := map[string]struct {
		json          string
		wantErr       *errors.Error
		wantCondition revenue.Condition
	}{
		"default decoding": {
			json:          `"foo/bar/636f6e646974696f6e64617461"`,
			wantCondition: revenue.NewCondition("foo", "bar", []byte("conditiondata")),
		},
		"invalid condition format": {
			json:    `"foo/636f6e646974696f6e64617461"`,
			wantErr: errors.ErrInvalidInput,
		},
		"invalid condition data": {
			json:    `"foo/bar/zzzzz"`,
			wantErr: errors.ErrInvalidInput,
		},
		"zero address": {
			json:          `""`,
			wantCondition: nil,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			var got revenue.Condition
			err := json.Unmarshal([]byte(tc.json), &got)
			if !tc.wantErr.Is(err) {
				t.Fatalf("got error: %+v", err)
			}
			if err == nil && !got.Equals(tc.wantCondition) {
				t.Fatalf("expected %q but got condition: %q", tc.wantCondition, got)
			}
		})
	}
}

func TestConditionMarshalJSON(t *testing.T) {
	cases := map[string]struct {
		source   revenue.Condition
		wantJson string
	}{
		"cond encoding": {
			source:   revenue.NewCondition("foo", "bar", []byte("conditiondata")),
			wantJson: `"foo/bar/636F6E646974696F6E64617461"`,
		},
		"nil encoding": {
			source:   nil,
			wantJson: `""`,
		},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			got, err := json.Marshal(tc.source)
			require.NoError(t, err)
			assert.Equal(t, tc.wantJson, string(got))
		})
	}
}
