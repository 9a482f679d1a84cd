package bio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"
)

// NCBI distributes genetic codes as an ASN.1 text file (gc.prt):
//
//	Genetic-code-table ::= {
//	 {
//	  name "Standard" ,
//	  name "SGC0" ,
//	  id 1 ,
//	  ncbieaa  "FFLLSSSSYY**CC*W...",
//	  sncbieaa "---M------**--*-..."
//	 },
//	 ...
//	}

// gcState is a state of the gc.prt parser.
type gcState int

const (
	gcHeader gcState = iota
	gcAssign
	gcOpen
	gcList
	gcField
	gcValue
	gcAfterValue
	gcAfterEntry
	gcEnd
)

// gcEntry accumulates fields of one table.
type gcEntry struct {
	names    []string
	id       int
	ncbieaa  string
	sncbieaa string
}

// isWordByte tests if b can be a part of an unquoted token.
func isWordByte(b byte) bool {
	r := rune(b)
	return r == '-' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// splitGCPrt is a bufio.SplitFunc producing gc.prt tokens: words,
// quoted strings, "::=" and punctuation. Comments ("--" to the end of
// line) are returned as tokens starting with "--".
func splitGCPrt(data []byte, atEOF bool) (int, []byte, error) {
	skip := 0
	for skip < len(data) && unicode.IsSpace(rune(data[skip])) {
		skip++
	}
	data = data[skip:]
	if len(data) == 0 {
		return skip, nil, nil
	}

	more := func() (int, []byte, error) {
		if atEOF {
			return 0, nil, errors.New("unexpected end of file")
		}
		return skip, nil, nil
	}

	switch data[0] {
	case '-':
		if len(data) < 2 {
			return more()
		}
		if data[1] != '-' {
			return 0, nil, errors.New("unexpected character after '-'")
		}
		adv, tok, err := bufio.ScanLines(data, atEOF)
		return adv + skip, tok, err
	case ':':
		if len(data) < 3 {
			return more()
		}
		if string(data[:3]) != "::=" {
			return 0, nil, errors.New("unexpected character after ':'")
		}
		return skip + 3, data[:3], nil
	case '"':
		if end := strings.IndexByte(string(data[1:]), '"'); end >= 0 {
			return skip + end + 2, data[:end+2], nil
		}
		if atEOF {
			return 0, nil, errors.New("unfinished string literal")
		}
		return skip, nil, nil
	case '{', '}', ',':
		return skip + 1, data[:1], nil
	}
	if !isWordByte(data[0]) {
		return 0, nil, fmt.Errorf("unknown token starting with '%c'", data[0])
	}
	i := 1
	for i < len(data) && isWordByte(data[i]) {
		i++
	}
	if i == len(data) && !atEOF {
		return skip, nil, nil
	}
	return skip + i, data[:i], nil
}

// unquote removes quotes and line breaks from a string literal.
func unquote(s string) (string, error) {
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return "", fmt.Errorf("string literal expected, got %s", s)
	}
	s = strings.Replace(s[1:len(s)-1], "\n", "", -1)
	return strings.TrimSpace(s), nil
}

// expect returns an error if the token is not what is expected.
func expect(tok string, want ...string) error {
	for _, w := range want {
		if tok == w {
			return nil
		}
	}
	return fmt.Errorf("expecting %s, got '%s'", strings.Join(want, " or "), tok)
}

// ParseGCPrt parses the NCBI genetic codes file (gc.prt).
func ParseGCPrt(rd io.Reader) (codes []*GeneticCode, err error) {
	scanner := bufio.NewScanner(rd)
	scanner.Split(splitGCPrt)

	state := gcHeader
	var entry gcEntry
	var field string

	for scanner.Scan() {
		tok := scanner.Text()
		if strings.HasPrefix(tok, "--") {
			continue
		}

		switch state {
		case gcHeader:
			err = expect(tok, "Genetic-code-table")
			state = gcAssign
		case gcAssign:
			err = expect(tok, "::=")
			state = gcOpen
		case gcOpen:
			err = expect(tok, "{")
			state = gcList
		case gcList:
			err = expect(tok, "{", "}")
			if tok == "{" {
				entry = gcEntry{}
				state = gcField
			} else {
				state = gcEnd
			}
		case gcField:
			field = tok
			state = gcValue
		case gcValue:
			switch field {
			case "name":
				var name string
				name, err = unquote(tok)
				entry.names = append(entry.names, name)
			case "id":
				entry.id, err = strconv.Atoi(tok)
			case "ncbieaa":
				entry.ncbieaa, err = unquote(tok)
			case "sncbieaa":
				entry.sncbieaa, err = unquote(tok)
			}
			state = gcAfterValue
		case gcAfterValue:
			err = expect(tok, ",", "}")
			if tok == "," {
				state = gcField
				break
			}
			var gc *GeneticCode
			gc, err = entry.geneticCode()
			codes = append(codes, gc)
			state = gcAfterEntry
		case gcAfterEntry:
			err = expect(tok, ",", "}")
			if tok == "," {
				state = gcList
			} else {
				state = gcEnd
			}
		case gcEnd:
			err = errors.New("unexpected symbols at the end of file")
		}
		if err != nil {
			return nil, err
		}
	}

	if err = scanner.Err(); err != nil {
		return nil, err
	}
	if state != gcEnd {
		return nil, errors.New("unexpected end of genetic codes file")
	}
	return codes, nil
}

// geneticCode converts a parsed entry into a GeneticCode.
func (e gcEntry) geneticCode() (*GeneticCode, error) {
	var name, short string
	if len(e.names) > 0 {
		name = e.names[0]
	}
	if len(e.names) > 1 {
		short = e.names[1]
	}
	return NewGeneticCode(e.id, name, short, e.ncbieaa, e.sncbieaa)
}

// GoString returns go code creating the genetic code, it is used to
// generate the built-in table.
func (gc *GeneticCode) GoString() string {
	return fmt.Sprintf("newGeneticCode(%d,\n%q,\n%q,\n%q,\n%q)",
		gc.ID, gc.Name, gc.ShortName, gc.Ncbieaa, gc.Sncbieaa)
}

// ReadGeneticCode reads a gc.prt file and returns the code with the
// given id.
func ReadGeneticCode(rd io.Reader, id int) (*GeneticCode, error) {
	codes, err := ParseGCPrt(rd)
	if err != nil {
		return nil, err
	}
	for _, gc := range codes {
		if gc.ID == id {
			return gc, nil
		}
	}
	return nil, fmt.Errorf("genetic code with id=%d not found", id)
}
