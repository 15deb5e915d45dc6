//
// main.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"runtime/pprof"

	"github.com/markkurossi/sha1/checksum"
	"github.com/markkurossi/sha1/hashio"
	"github.com/markkurossi/sha1/utils"
)

const program = "sha1sum"

func main() {
	check := flag.Bool("c", false, "read checksums from files and check them")
	binary := flag.Bool("b", false, "print checksums in binary mode")
	tagged := flag.Bool("tag", false, "print tagged checksums")
	quiet := flag.Bool("quiet", false, "don't print OK for verified files")
	decompress := flag.Bool("xz", false, "decompress .xz files before hashing")
	workers := flag.Int("workers", 0, "number of hashing workers")
	verbose := flag.Bool("v", false, "verbose output")
	cpuprofile := flag.String("cpuprofile", "", "write cpu profile to `file`")
	flag.Parse()

	log.SetFlags(0)

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

	files := flag.Args()
	if len(files) == 0 {
		files = []string{hashio.Stdin}
	}

	logger := utils.NewLogger(os.Stderr)

	hasher := hashio.NewHasher()
	hasher.Decompress = *decompress

	pool := checksum.NewPool(hasher, *workers)
	pool.Log = logger
	if *verbose {
		pool.Trace = os.Stderr
	}

	var ok bool
	if *check {
		ok = checkLists(pool, logger, files, *quiet)
	} else {
		ok = hashFiles(pool, files, *binary, *tagged)
	}
	if *verbose {
		fmt.Fprintf(os.Stderr, "%s: %d files, %d bytes\n", program,
			hasher.Stats.Files.Load(), hasher.Stats.Bytes.Load())
	}
	if !ok {
		pprof.StopCPUProfile()
		os.Exit(1)
	}
}

func hashFiles(pool *checksum.Pool, files []string, binary, tagged bool) bool {
	ok := true
	for _, result := range pool.Hash(files) {
		if result.Err != nil {
			ok = false
			continue
		}
		entry := checksum.Entry{
			Sum:    result.Sum,
			Name:   result.Name,
			Binary: binary,
		}
		if tagged {
			fmt.Println(entry.Tagged())
		} else {
			fmt.Println(entry)
		}
	}
	return ok
}

func checkLists(pool *checksum.Pool, logger *utils.Logger, files []string,
	quiet bool) bool {

	ok := true
	for _, file := range files {
		list, err := readList(file, logger)
		if err != nil {
			logger.Errorf(utils.Point{Source: program}, "%v", err)
			ok = false
			continue
		}
		report := pool.Verify(list, os.Stdout, quiet)

		loc := utils.Point{Source: program}
		if list.Malformed > 0 {
			logger.Warningf(loc, "%d %s improperly formatted",
				list.Malformed, plural(list.Malformed, "line is", "lines are"))
		}
		if report.Unreadable > 0 {
			logger.Warningf(loc, "%d listed %s not be read",
				report.Unreadable,
				plural(report.Unreadable, "file could", "files could"))
		}
		if report.Failed > 0 {
			logger.Warningf(loc, "%d computed %s NOT match",
				report.Failed,
				plural(report.Failed, "checksum did", "checksums did"))
		}
		if !report.Success() {
			ok = false
		}
	}
	return ok
}

func readList(file string, logger *utils.Logger) (*checksum.List, error) {
	var in io.Reader
	source := file

	if file == hashio.Stdin {
		in = os.Stdin
		source = "standard input"
	} else {
		f, err := os.Open(file)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		in = f
	}
	return checksum.ParseList(in, source, logger)
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
