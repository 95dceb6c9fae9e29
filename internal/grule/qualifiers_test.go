package grule

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_LoopCount_Valid(t *testing.T) {
	testCases := []struct {
		name  string
		lc    LoopCount
		valid bool
	}{
		{name: "zero-zero rejected", lc: LoopCount{0, 0}, valid: false},
		{name: "zero-one ok", lc: LoopCount{0, 1}, valid: true},
		{name: "zero-inf ok", lc: LoopCount{0, LoopMax}, valid: true},
		{name: "one-inf ok", lc: LoopCount{1, LoopMax}, valid: true},
		{name: "n-n ok", lc: LoopCount{3, 3}, valid: true},
		{name: "min greater than max rejected", lc: LoopCount{4, 2}, valid: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.valid, tc.lc.Valid())
		})
	}
}

func Test_LoopCount_String(t *testing.T) {
	testCases := []struct {
		name string
		lc   LoopCount
		want string
	}{
		{name: "optional", lc: LoopCount{0, 1}, want: "?"},
		{name: "star", lc: LoopCount{0, LoopMax}, want: "*"},
		{name: "plus", lc: LoopCount{1, LoopMax}, want: "+"},
		{name: "exact", lc: LoopCount{3, 3}, want: "{3}"},
		{name: "at least", lc: LoopCount{2, LoopMax}, want: "{2,}"},
		{name: "at most", lc: LoopCount{0, 5}, want: "{,5}"},
		{name: "range", lc: LoopCount{2, 5}, want: "{2,5}"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.lc.String())
		})
	}
}

func Test_LoopFromSymbol(t *testing.T) {
	testCases := []struct {
		sym  string
		want LoopCount
		ok   bool
	}{
		{sym: "?", want: LoopCount{0, 1}, ok: true},
		{sym: "*", want: LoopCount{0, LoopMax}, ok: true},
		{sym: "+", want: LoopCount{1, LoopMax}, ok: true},
		{sym: "{3}", ok: false},
	}

	for _, tc := range testCases {
		t.Run(tc.sym, func(t *testing.T) {
			got, ok := LoopFromSymbol(tc.sym)
			assert.Equal(t, tc.ok, ok)
			if ok {
				assert.Equal(t, tc.want, got)
			}
		})
	}
}

func Test_ReflectionStyle(t *testing.T) {
	assert.Equal(t, "", Reflection("").String())
	assert.Equal(t, "#name", Reflection("name").String())
	assert.Equal(t, "#", NoReflection().String())
	assert.Equal(t, "##", Expansion().String())
}

func Test_LookaheadFromSymbol(t *testing.T) {
	assert.Equal(t, LookaheadPositive, LookaheadFromSymbol("&"))
	assert.Equal(t, LookaheadNegative, LookaheadFromSymbol("!"))
	assert.Equal(t, LookaheadNone, LookaheadFromSymbol("?"))
}
