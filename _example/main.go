package main

import (
	"fmt"

	"github.com/hupe1980/bitarray"
)

func printReverse(a *bitarray.BitArray[uint8]) {
	for it, rend := a.RBegin(), a.REnd(); !it.Equal(rend); it.Next() {
		if it.Value() {
			fmt.Print("1")
		} else {
			fmt.Print("0")
		}
	}
	fmt.Println()
}

func main() {
	a := bitarray.New[uint8](24)

	a.SetAll()

	for i := 0; i < a.Len(); i++ {
		a.Clear(i)
		printReverse(a)
		a.Set(i)
	}

	for i := a.Len() - 1; i >= 0; i-- {
		a.Clear(i)
		printReverse(a)
		a.Set(i)
	}
}
