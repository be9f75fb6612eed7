package main

import (
	"fmt"
	"time"

	"github.com/mzharov/parwork"
)

func slowSquare(i int) int {
	time.Sleep(2 * time.Millisecond)
	return i * i
}

func main() {
	items := make([]int, 64)
	for i := range items {
		items[i] = i
	}

	for _, workers := range []int{1, 2, 4, 8, 16} {
		now := time.Now()
		out := parwork.Map(items, workers, slowSquare)
		fmt.Printf("workers=%-2d elapsed=%v last=%d\n",
			workers, time.Since(now).Round(time.Millisecond), out[len(out)-1])
	}

	now := time.Now()
	out := parwork.SerialMap(items, 1, slowSquare)
	fmt.Printf("serial     elapsed=%v last=%d\n",
		time.Since(now).Round(time.Millisecond), out[len(out)-1])
}

// func main() {
// 	r := parwork.NewRunner(4)
// 	defer r.Close()

// 	now := time.Now()
// 	for i := range 64 {
// 		r.Submit(func() {
// 			_ = slowSquare(i)
// 		})
// 	}
// 	r.Close()
// 	fmt.Println("runner elapsed:", time.Since(now))
// }
