//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Package checksum implements SHA-1 checksum lists in the format of
// the sha1sum utility. A list line is either
//
//	<40 hex digits> <space><space|*><name>
//
// or the tagged form
//
//	SHA1 (<name>) = <40 hex digits>
//
// Names containing a backslash, a carriage return, or a newline are
// escaped and the line starts with a backslash.
package checksum

import (
	"bufio"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/markkurossi/sha1"
	"github.com/markkurossi/sha1/utils"
)

const (
	hexSize = sha1.Size * 2
	tag     = "SHA1 ("
	tagSep  = ") = "
)

var (
	// ErrMalformed is returned for lines that are not checksum lines.
	ErrMalformed = errors.New("improperly formatted SHA1 checksum line")

	// ErrNoChecksums is returned for lists without any checksum lines.
	ErrNoChecksums = errors.New("no properly formatted SHA1 checksum lines found")
)

// Entry is one line of a checksum list.
type Entry struct {
	Sum    [sha1.Size]byte
	Name   string
	Binary bool
}

func (e Entry) String() string {
	var sb strings.Builder

	name, escaped := escape(e.Name)
	if escaped {
		sb.WriteByte('\\')
	}
	sb.WriteString(hex.EncodeToString(e.Sum[:]))
	if e.Binary {
		sb.WriteString(" *")
	} else {
		sb.WriteString("  ")
	}
	sb.WriteString(name)

	return sb.String()
}

// Tagged formats the entry in the tagged form.
func (e Entry) Tagged() string {
	name, escaped := escape(e.Name)
	var prefix string
	if escaped {
		prefix = "\\"
	}
	return fmt.Sprintf("%s%s%s%s%x", prefix, tag, name, tagSep, e.Sum)
}

func escape(name string) (string, bool) {
	if !strings.ContainsAny(name, "\\\n\r") {
		return name, false
	}
	var sb strings.Builder
	for i := 0; i < len(name); i++ {
		switch name[i] {
		case '\\':
			sb.WriteString("\\\\")
		case '\n':
			sb.WriteString("\\n")
		case '\r':
			sb.WriteString("\\r")
		default:
			sb.WriteByte(name[i])
		}
	}
	return sb.String(), true
}

func unescape(name string) (string, error) {
	var sb strings.Builder
	for i := 0; i < len(name); i++ {
		if name[i] != '\\' {
			sb.WriteByte(name[i])
			continue
		}
		i++
		if i >= len(name) {
			return "", ErrMalformed
		}
		switch name[i] {
		case '\\':
			sb.WriteByte('\\')
		case 'n':
			sb.WriteByte('\n')
		case 'r':
			sb.WriteByte('\r')
		default:
			return "", ErrMalformed
		}
	}
	return sb.String(), nil
}

// Parse parses a checksum list line.
func Parse(line string) (Entry, error) {
	var entry Entry
	var sum string

	line = strings.TrimSuffix(line, "\r")

	escaped := strings.HasPrefix(line, "\\")
	if escaped {
		line = line[1:]
	}

	if strings.HasPrefix(line, tag) {
		idx := strings.LastIndex(line, tagSep)
		if idx < len(tag) {
			return entry, ErrMalformed
		}
		entry.Name = line[len(tag):idx]
		entry.Binary = true
		sum = line[idx+len(tagSep):]
	} else {
		if len(line) <= hexSize+2 || line[hexSize] != ' ' {
			return entry, ErrMalformed
		}
		switch line[hexSize+1] {
		case ' ':
		case '*':
			entry.Binary = true
		default:
			return entry, ErrMalformed
		}
		sum = line[:hexSize]
		entry.Name = line[hexSize+2:]
	}
	if len(entry.Name) == 0 || len(sum) != hexSize {
		return entry, ErrMalformed
	}
	if _, err := hex.Decode(entry.Sum[:], []byte(sum)); err != nil {
		return entry, ErrMalformed
	}
	if escaped {
		name, err := unescape(entry.Name)
		if err != nil {
			return entry, err
		}
		entry.Name = name
	}

	return entry, nil
}

// List contains the entries of a checksum list.
type List struct {
	Source    string
	Entries   []Entry
	Malformed int
}

// ParseList parses the checksum list from r. The source names the
// list in diagnostics. Malformed lines are counted and reported as
// warnings to log, which may be nil. Empty lines are ignored.
func ParseList(r io.Reader, source string, log *utils.Logger) (*List, error) {
	list := &List{
		Source: source,
	}

	// Lines are not length limited; names may be arbitrarily long.
	reader := bufio.NewReader(r)
	var lineno int
	for {
		line, err := reader.ReadString('\n')
		if err != nil && err != io.EOF {
			return nil, fmt.Errorf("%s: %w", source, err)
		}
		if len(line) == 0 && err == io.EOF {
			break
		}
		lineno++
		line = strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r")
		if len(line) > 0 {
			entry, perr := Parse(line)
			if perr != nil {
				list.Malformed++
				if log != nil {
					log.Warningf(utils.Point{
						Source: source,
						Line:   lineno,
					}, "%v", perr)
				}
			} else {
				list.Entries = append(list.Entries, entry)
			}
		}
		if err == io.EOF {
			break
		}
	}
	if len(list.Entries) == 0 {
		return nil, fmt.Errorf("%s: %w", source, ErrNoChecksums)
	}

	return list, nil
}
