package dslr_test

import (
	"fmt"

	"github.com/vearutop/prophoto/dslr"
)

func ExampleByName() {
	cam, err := dslr.ByName("nikon 5100 (npl)")
	if err != nil {
		return
	}
	fmt.Println(cam.Name)
	fmt.Println(cam.Red.Len())
	min, max := cam.Red.Domain()
	fmt.Println(min, max)
	// Output:
	// Nikon 5100 (NPL)
	// 81
	// 380 780
}

func ExampleChannel_At() {
	cam, err := dslr.ByName("Sigma SDMerill (NPL)")
	if err != nil {
		return
	}
	fmt.Printf("%.4f\n", cam.Green.At(595))
	// Output:
	// 0.9847
}
