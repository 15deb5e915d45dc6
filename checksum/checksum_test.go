//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package checksum

import (
	"bytes"
	"encoding/hex"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/markkurossi/sha1"
	"github.com/markkurossi/sha1/utils"
	"github.com/stretchr/testify/require"
)

const abcSum = "a9993e364706816aba3e25717850c26c9cd0d89d"

func mustSum(t *testing.T, s string) [sha1.Size]byte {
	var sum [sha1.Size]byte
	_, err := hex.Decode(sum[:], []byte(s))
	require.NoError(t, err)
	return sum
}

func TestParse(t *testing.T) {
	sum := mustSum(t, abcSum)

	tests := []struct {
		line     string
		expected Entry
	}{
		{
			line:     abcSum + "  abc.txt",
			expected: Entry{Sum: sum, Name: "abc.txt"},
		},
		{
			line:     abcSum + " *abc.bin",
			expected: Entry{Sum: sum, Name: "abc.bin", Binary: true},
		},
		{
			line:     abcSum + "  name with  spaces\r",
			expected: Entry{Sum: sum, Name: "name with  spaces"},
		},
		{
			line:     "SHA1 (abc) = " + abcSum,
			expected: Entry{Sum: sum, Name: "abc", Binary: true},
		},
		{
			line:     "SHA1 (a) = b) = " + abcSum,
			expected: Entry{Sum: sum, Name: "a) = b", Binary: true},
		},
		{
			line:     "\\" + abcSum + "  a\\\\b\\nc",
			expected: Entry{Sum: sum, Name: "a\\b\nc"},
		},
		{
			line:     strings.ToUpper(abcSum) + "  upper",
			expected: Entry{Sum: sum, Name: "upper"},
		},
	}
	for _, test := range tests {
		entry, err := Parse(test.line)
		require.NoError(t, err, "line %q", test.line)
		require.Equal(t, test.expected, entry, "line %q", test.line)
	}
}

func TestParseMalformed(t *testing.T) {
	lines := []string{
		"",
		abcSum,
		abcSum + "  ",
		abcSum + "-+abc",
		abcSum[:39] + "   abc",
		"x" + abcSum[1:] + "  abc",
		"SHA1 () = " + abcSum,
		"SHA1 (abc) = " + abcSum[:38],
		"SHA1 (abc) " + abcSum,
		"\\" + abcSum + "  bad\\escape",
		"\\" + abcSum + "  trailing\\",
	}
	for _, line := range lines {
		_, err := Parse(line)
		require.ErrorIs(t, err, ErrMalformed, "line %q", line)
	}
}

func TestEntryString(t *testing.T) {
	sum := mustSum(t, abcSum)

	entries := []Entry{
		{Sum: sum, Name: "abc.txt"},
		{Sum: sum, Name: "abc.bin", Binary: true},
		{Sum: sum, Name: "a\\b\nc\rd"},
	}
	for _, entry := range entries {
		line := entry.String()
		parsed, err := Parse(line)
		require.NoError(t, err, "line %q", line)
		require.Equal(t, entry, parsed)
	}
	require.Equal(t, abcSum+"  abc.txt", entries[0].String())
	require.Equal(t, abcSum+" *abc.bin", entries[1].String())
	require.Equal(t, "\\"+abcSum+"  a\\\\b\\nc\\rd", entries[2].String())
}

func TestEntryTagged(t *testing.T) {
	sum := mustSum(t, abcSum)

	entry := Entry{Sum: sum, Name: "abc", Binary: true}
	require.Equal(t, "SHA1 (abc) = "+abcSum, entry.Tagged())

	entry = Entry{Sum: sum, Name: "a\nb", Binary: true}
	line := entry.Tagged()
	require.Equal(t, "\\SHA1 (a\\nb) = "+abcSum, line)
	parsed, err := Parse(line)
	require.NoError(t, err)
	require.Equal(t, entry, parsed)
}

func TestParseList(t *testing.T) {
	input := strings.Join([]string{
		abcSum + "  abc",
		"",
		"garbage",
		"SHA1 (tagged) = " + abcSum,
		abcSum + "  ",
	}, "\n")

	var buf bytes.Buffer
	log := utils.NewLogger(&buf)

	list, err := ParseList(strings.NewReader(input), "SHA1SUMS", log)
	require.NoError(t, err)
	require.Len(t, list.Entries, 2)
	require.Equal(t, "abc", list.Entries[0].Name)
	require.Equal(t, "tagged", list.Entries[1].Name)
	require.Equal(t, 2, list.Malformed)
	require.Equal(t, 2, log.Warnings())
	require.Contains(t, buf.String(), "SHA1SUMS:3: WARNING: ")
	require.Contains(t, buf.String(), "SHA1SUMS:5: WARNING: ")
}

func TestParseListLongLine(t *testing.T) {
	sum := mustSum(t, abcSum)
	long := Entry{Sum: sum, Name: strings.Repeat("n", 80001)}
	short := Entry{Sum: sum, Name: "abc"}

	input := long.String() + "\r\n\r\n" + short.String()
	list, err := ParseList(strings.NewReader(input), "SHA1SUMS", nil)
	require.NoError(t, err)
	require.Equal(t, []Entry{long, short}, list.Entries)
	require.Zero(t, list.Malformed)
}

func TestParseListReadError(t *testing.T) {
	r := iotest.TimeoutReader(strings.NewReader(abcSum + "  abc\n"))
	_, err := ParseList(r, "SHA1SUMS", nil)
	require.ErrorIs(t, err, iotest.ErrTimeout)
}

func TestParseListEmpty(t *testing.T) {
	_, err := ParseList(strings.NewReader("garbage\n\n"), "SHA1SUMS", nil)
	require.ErrorIs(t, err, ErrNoChecksums)
}
