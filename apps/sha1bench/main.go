//
// main.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package main

import (
	gosha1 "crypto/sha1"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/pprof"
	"strconv"
	"strings"
	"time"

	"github.com/markkurossi/sha1"
	"github.com/markkurossi/sha1/prg"
	"github.com/markkurossi/sha1/timing"
)

func main() {
	size := flag.Int("size", 64*1000*1000, "bytes to hash per run")
	chunks := flag.String("chunks", "1,55,64,1024,8192,65536",
		"comma-separated Update chunk sizes")
	seed := flag.String("seed", "sha1bench", "message seed")
	cpuprofile := flag.String("cpuprofile", "", "write cpu profile to `file`")
	flag.Parse()

	log.SetFlags(0)

	sizes, err := parseSizes(*chunks)
	if err != nil {
		log.Fatalf("invalid chunk sizes '%s': %s", *chunks, err)
	}

	if len(*cpuprofile) > 0 {
		f, err := os.Create(*cpuprofile)
		if err != nil {
			log.Fatal("could not create CPU profile: ", err)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			log.Fatal("could not start CPU profile: ", err)
		}
		defer pprof.StopCPUProfile()
	}

	t := timing.NewTiming()
	for _, chunk := range sizes {
		data := prg.Bytes([]byte(*seed), chunk)
		count := *size / chunk
		if count == 0 {
			count = 1
		}
		total := uint64(count * chunk)

		start := time.Now()
		d := sha1.New()
		for i := 0; i < count; i++ {
			if err := d.Update(data); err != nil {
				log.Fatalf("update failed: %s", err)
			}
		}
		ours, err := d.Finalize()
		if err != nil {
			log.Fatalf("finalize failed: %s", err)
		}
		oursTime := time.Since(start)

		start = time.Now()
		h := gosha1.New()
		for i := 0; i < count; i++ {
			h.Write(data)
		}
		var theirs [sha1.Size]byte
		copy(theirs[:], h.Sum(nil))
		theirsTime := time.Since(start)

		if ours != theirs {
			log.Fatalf("chunk %d: digest mismatch: %x != %x",
				chunk, ours, theirs)
		}

		sample := t.Sample(fmt.Sprintf("%s chunks", timing.FileSize(chunk)),
			2*total, nil)
		sample.AbsSubSample("sha1", total, oursTime)
		sample.AbsSubSample("crypto/sha1", total, theirsTime)
	}
	t.Print(os.Stdout)
}

func parseSizes(val string) ([]int, error) {
	var result []int
	for _, part := range strings.Split(val, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, err
		}
		if n <= 0 {
			return nil, fmt.Errorf("chunk size %d is not positive", n)
		}
		result = append(result, n)
	}
	return result, nil
}
