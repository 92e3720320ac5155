// Package trace parses address traces and replays them against a
// multi-grain filter.
package trace

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/brianolson/mgbloom"
)

// Kind is a trace operation.
type Kind int

const (
	Set Kind = iota
	Unset
	Query
	Count
	Clear
)

var kindNames = map[string]Kind{
	"set":   Set,
	"unset": Unset,
	"query": Query,
	"count": Count,
	"clear": Clear,
}

func (k Kind) String() string {
	names := [...]string{"set", "unset", "query", "count", "clear"}
	if k < 0 || int(k) >= len(names) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return names[k]
}

// Op is one trace line. Addr is unused for Clear.
type Op struct {
	Kind Kind
	Addr uint64
	Line int
}

var ErrSyntax = errors.New("trace: syntax error")

// Parse reads one op per line: "<op> [addr]". Addresses are decimal or
// 0x-prefixed hex. Blank lines and text after '#' are ignored.
func Parse(r io.Reader) ([]Op, error) {
	var ops []Op
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := sc.Text()
		if i := strings.IndexByte(text, '#'); i >= 0 {
			text = text[:i]
		}
		fields := strings.Fields(text)
		if len(fields) == 0 {
			continue
		}
		kind, ok := kindNames[strings.ToLower(fields[0])]
		if !ok {
			return nil, fmt.Errorf("%w: line %d: unknown op %q", ErrSyntax, line, fields[0])
		}
		op := Op{Kind: kind, Line: line}
		switch {
		case kind == Clear && len(fields) == 1:
		case kind != Clear && len(fields) == 2:
			addr, err := strconv.ParseUint(fields[1], 0, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: bad address %q", ErrSyntax, line, fields[1])
			}
			op.Addr = addr
		default:
			return nil, fmt.Errorf("%w: line %d: wrong number of fields", ErrSyntax, line)
		}
		ops = append(ops, op)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to read trace: %w", err)
	}
	return ops, nil
}

// Summary totals a replay.
type Summary struct {
	Sets       int    `json:"sets"`
	Unsets     int    `json:"unsets"`
	Queries    int    `json:"queries"`
	Hits       int    `json:"hits"`
	Clears     int    `json:"clears"`
	CountSum   int    `json:"countSum"`
	TotalCount int    `json:"totalCount"`
	Distinct   uint64 `json:"distinct"`
}

// Replay applies ops to f in order. It stops early with ctx.Err() if ctx
// is cancelled; the summary then covers the ops applied so far.
func Replay(ctx context.Context, f *mgbloom.MultiGrain, ops []Op, log *zap.Logger) (Summary, error) {
	if log == nil {
		log = zap.NewNop()
	}
	var s Summary
	for _, op := range ops {
		if err := ctx.Err(); err != nil {
			s.TotalCount = f.TotalCount()
			s.Distinct = f.EstimateDistinct()
			return s, err
		}
		switch op.Kind {
		case Set:
			f.Set(op.Addr)
			s.Sets++
		case Unset:
			f.Unset(op.Addr)
			s.Unsets++
		case Query:
			hit := f.IsSet(op.Addr)
			s.Queries++
			if hit {
				s.Hits++
			}
			log.Debug("query",
				zap.Int("line", op.Line),
				zap.String("addr", fmt.Sprintf("%#x", op.Addr)),
				zap.Bool("hit", hit),
				zap.Int("votes", f.Votes(op.Addr)))
		case Count:
			s.CountSum += f.Count(op.Addr)
		case Clear:
			f.Clear()
			s.Clears++
		}
	}
	s.TotalCount = f.TotalCount()
	s.Distinct = f.EstimateDistinct()
	log.Info("trace replayed",
		zap.Int("ops", len(ops)),
		zap.Int("queries", s.Queries),
		zap.Int("hits", s.Hits))
	return s, nil
}
