package coin

import (
	"math"
	"testing"

	"github.com/retok/revenue/errors"
	"github.com/retok/revenue/revenuetest/assert"
)

func TestAdd(t *testing.T) {
	cases := map[string]struct {
		a, b    int64
		want    int64
		wantErr *errors.Error
	}{
		"zero":         {a: 0, b: 0, want: 0},
		"simple":       {a: 7, b: 35, want: 42},
		"max":          {a: math.MaxInt64 - 1, b: 1, want: math.MaxInt64},
		"overflow":     {a: math.MaxInt64, b: 1, wantErr: errors.ErrOverflow},
		"negative":     {a: -1, b: 2, wantErr: errors.ErrInvalidAmount},
		"negative rhs": {a: 1, b: -2, wantErr: errors.ErrInvalidAmount},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			got, err := Add(tc.a, tc.b)
			assert.IsErr(t, tc.wantErr, err)
			if tc.wantErr == nil {
				assert.Equal(t, tc.want, got)
			}
		})
	}
}

func TestSub(t *testing.T) {
	cases := map[string]struct {
		a, b    int64
		want    int64
		wantErr *errors.Error
	}{
		"simple":       {a: 42, b: 2, want: 40},
		"to zero":      {a: 42, b: 42, want: 0},
		"insufficient": {a: 1, b: 2, wantErr: errors.ErrInsufficientFunds},
		"negative":     {a: 1, b: -2, wantErr: errors.ErrInvalidAmount},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			got, err := Sub(tc.a, tc.b)
			assert.IsErr(t, tc.wantErr, err)
			if tc.wantErr == nil {
				assert.Equal(t, tc.want, got)
			}
		})
	}
}

func TestMul(t *testing.T) {
	cases := map[string]struct {
		a, b    int64
		want    int64
		wantErr *errors.Error
	}{
		"zero":         {a: 0, b: math.MaxInt64, want: 0},
		"scale":        {a: 1234500, b: 10000, want: 12345000000},
		"overflow":     {a: math.MaxInt64 / 2, b: 3, wantErr: errors.ErrOverflow},
		"min overflow": {a: -1, b: math.MinInt64, wantErr: errors.ErrOverflow},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			got, err := Mul(tc.a, tc.b)
			assert.IsErr(t, tc.wantErr, err)
			if tc.wantErr == nil {
				assert.Equal(t, tc.want, got)
			}
		})
	}
}

func TestMulDiv(t *testing.T) {
	cases := map[string]struct {
		a, b, d int64
		want    int64
		wantErr *errors.Error
	}{
		"full share": {a: 1000000, b: 12345 * 100, d: 1000000, want: 1234500},
		"floors":     {a: 333333, b: 10, d: 1000000, want: 3},
		"third":      {a: 1, b: 1000000, d: 3, want: 333333},
		"wide intermediate": {
			a:    math.MaxInt64,
			b:    1000000,
			d:    1000000,
			want: math.MaxInt64,
		},
		"result overflow":  {a: math.MaxInt64, b: 2, d: 1, wantErr: errors.ErrOverflow},
		"division by zero": {a: 1, b: 1, d: 0, wantErr: errors.ErrInvalidInput},
		"negative":         {a: -1, b: 1, d: 1, wantErr: errors.ErrInvalidAmount},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			got, err := MulDiv(tc.a, tc.b, tc.d)
			assert.IsErr(t, tc.wantErr, err)
			if tc.wantErr == nil {
				assert.Equal(t, tc.want, got)
			}
		})
	}
}

func TestSum(t *testing.T) {
	got, err := Sum(1, 2, 3)
	assert.Nil(t, err)
	assert.Equal(t, int64(6), got)

	_, err = Sum(math.MaxInt64, 1)
	assert.IsErr(t, errors.ErrOverflow, err)
}
