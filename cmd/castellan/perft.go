package main

import (
	"log"
	"sync"

	"castellan/bench"
)

func runPerft(depth int, fen string) error {
	log.Printf("============ perft(%d)\n", depth)

	out := make(chan string, 64)
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for s := range out {
			log.Println(s)
		}
	}()

	err := bench.Run(depth, fen, true, out)
	close(out)
	wg.Wait()
	return err
}
