package main

import (
	"fmt"
	"io"
	"os"
	"reflect"

	"github.com/kpfaulkner/gfxmaths/util"
	"github.com/kpfaulkner/gfxmaths/vectors"
	log "github.com/sirupsen/logrus"
)

// IntPoint is copied by value everywhere, keep it two packed int32s.
const intPointSize = 8

// padding returns the bytes a struct wastes between and after its fields.
func padding(rType reflect.Type) uintptr {
	if rType.Kind() != reflect.Struct {
		return 0
	}
	var used uintptr
	for i := 0; i < rType.NumField(); i++ {
		used += rType.Field(i).Type.Size()
	}
	return rType.Size() - used
}

func report(w io.Writer, input any) {
	rType := reflect.TypeOf(input)
	fmt.Fprintf(w, "%s : %d bytes, %d padding\n", rType.Name(), rType.Size(), padding(rType))

	if rType.Kind() == reflect.Struct {
		for i := 0; i < rType.NumField(); i++ {
			field := rType.Field(i)
			fmt.Fprintf(w, "  %-8s offset %3d size %3d align %d\n", field.Name, field.Offset, field.Type.Size(), field.Type.Align())
		}
	}
}

func checkIntPoint() error {
	rType := reflect.TypeOf(util.IntPoint{})
	if rType.Size() != intPointSize {
		return fmt.Errorf("IntPoint is %d bytes, want %d", rType.Size(), intPointSize)
	}
	if p := padding(rType); p != 0 {
		return fmt.Errorf("IntPoint has %d bytes of padding", p)
	}
	return nil
}

func main() {
	report(os.Stdout, util.IntPoint{})
	report(os.Stdout, vectors.Vector{})
	report(os.Stdout, vectors.Result{})

	if err := checkIntPoint(); err != nil {
		log.Errorf("layout check failed: %v", err)
		os.Exit(1)
	}
}
