package cnf

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
)

// WriteDIMACS serializes f in DIMACS CNF format to w: a header line
// "p cnf <max_var_id> <num_clauses>", one "c <name>=<id>" comment per
// named variable (sorted by name, for reproducible output), then one line
// per clause of signed integer ids terminated by " 0". Grounded on the
// teacher's bf.Dimacs function.
func WriteDIMACS(w io.Writer, f *Formula) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "p cnf %d %d\n", f.MaxVarID(), f.NumClauses()); err != nil {
		return err
	}
	if f.Table != nil {
		names := make([]string, 0, f.Table.Len())
		for id := range f.vars {
			names = append(names, f.Table.NameOf(id))
		}
		sort.Strings(names)
		for _, name := range names {
			id, _ := f.Table.Lookup(name)
			if _, err := fmt.Fprintf(bw, "c %s=%d\n", name, id); err != nil {
				return err
			}
		}
	}
	for _, c := range f.Clauses {
		parts := make([]string, len(c))
		for i, l := range c {
			parts[i] = strconv.Itoa(l.Signed())
		}
		if _, err := fmt.Fprintf(bw, "%s 0\n", strings.Join(parts, " ")); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// ParseDIMACS reads a plain DIMACS CNF stream (no variable-name comments)
// back into a Formula over a fresh SymbolTable, naming each variable by
// its DIMACS index ("1", "2", ...). It exists so that an independently
// written reader and writer can be checked against each other for
// agreement on the satisfying set, and is intentionally permissive about
// whitespace, matching common DIMACS producers.
func ParseDIMACS(r io.Reader) (*Formula, error) {
	table := NewSymbolTable()
	f := NewFormula(table)
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	seenHeader := false
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "c") {
			continue
		}
		if strings.HasPrefix(line, "p") {
			seenHeader = true
			continue
		}
		fields := strings.Fields(line)
		var clause Clause
		for _, tok := range fields {
			n, err := strconv.Atoi(tok)
			if err != nil {
				return nil, fmt.Errorf("cnf: malformed DIMACS literal %q: %w", tok, err)
			}
			if n == 0 {
				break
			}
			name := strconv.Itoa(abs(n))
			l := table.Var(name)
			if n < 0 {
				l = l.Not()
			}
			clause = append(clause, l)
		}
		if len(clause) > 0 {
			f.And(clause)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if !seenHeader {
		return nil, fmt.Errorf("cnf: missing DIMACS header line")
	}
	return f, nil
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
