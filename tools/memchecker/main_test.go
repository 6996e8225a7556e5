package main

import (
	"bytes"
	"reflect"
	"testing"

	"github.com/kpfaulkner/gfxmaths/util"
	"github.com/stretchr/testify/assert"
)

func TestCheckIntPoint(t *testing.T) {
	assert.Nil(t, checkIntPoint())
}

func TestPadding(t *testing.T) {
	type padded struct {
		a bool
		b int64
	}

	assert.Equal(t, uintptr(0), padding(reflect.TypeOf(util.IntPoint{})))
	assert.Equal(t, uintptr(7), padding(reflect.TypeOf(padded{})))
	assert.Equal(t, uintptr(0), padding(reflect.TypeOf(int32(0))))
}

func TestReport(t *testing.T) {
	var buf bytes.Buffer
	report(&buf, util.IntPoint{})

	out := buf.String()
	assert.Contains(t, out, "IntPoint : 8 bytes, 0 padding")
	assert.Contains(t, out, "x ")
	assert.Contains(t, out, "offset   4 size   4")
}
