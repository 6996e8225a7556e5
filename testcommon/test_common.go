package testcommon

import (
	"os"
	"testing"

	"github.com/kpfaulkner/gfxmaths/vectors"
)

func LoadVectors(t *testing.T, filepath string) []vectors.Vector {
	f, err := os.Open(filepath)
	if err != nil {
		t.Errorf("error opening vectors file : %v", err)
		return nil
	}
	defer f.Close()

	vs, err := vectors.Parse(f)
	if err != nil {
		t.Errorf("error parsing vectors file : %v", err)
		return nil
	}
	return vs
}
