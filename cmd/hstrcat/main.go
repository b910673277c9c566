package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/alexflint/go-arg"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/pavanmanishd/hstring"
	"github.com/pavanmanishd/hstring/allocator"
	"github.com/pavanmanishd/hstring/arena"
)

type CatArgs struct {
	ArenaSize    int    `arg:"--arena-size,env:HSTRCAT_ARENA_SIZE,help:bytes in the bump arena serving heap strings" default:"65536"`
	GrowthFactor int    `arg:"--growth-factor,env:HSTRCAT_GROWTH_FACTOR,help:capacity multiplier on append" default:"2"`
	HeapLimit    int    `arg:"--heap-limit,env:HSTRCAT_HEAP_LIMIT,help:max live bytes in the fallback allocator (0 means unlimited)"`
	Sep          string `arg:"--sep,env:HSTRCAT_SEP,help:separator between lines" default:" "`
	Safe         bool   `arg:"--safe,env:HSTRCAT_SAFE,help:use a mutex-guarded arena"`
	Verbose      bool   `arg:"--verbose,env:HSTRCAT_VERBOSE,help:development logger at debug level"`
	Metrics      bool   `arg:"--metrics,env:HSTRCAT_METRICS,help:print prometheus metrics to stderr on exit"`
}

// arenaStats is implemented by both arena.Arena and arena.SafeArena.
type arenaStats interface {
	allocator.Owner
	Metrics() arena.ArenaMetrics
	Report(name string)
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	config := zap.NewProductionConfig()
	config.EncoderConfig.EncodeTime = zapcore.RFC3339TimeEncoder
	return config.Build(
		zap.AddCaller(),
		zap.AddStacktrace(zap.ErrorLevel),
	)
}

func newArena(args CatArgs) arenaStats {
	if args.Safe {
		return arena.NewSafe(args.ArenaSize)
	}
	return arena.New(args.ArenaSize)
}

// concat reads lines from sc and joins them into one String.
func concat(sc *bufio.Scanner, sep string, opts []hstring.Option) (hstring.String, lineStats, error) {
	var st lineStats
	out := hstring.New(opts...)
	for sc.Scan() {
		line, err := hstring.NewFrom(sc.Bytes(), opts...)
		if err != nil {
			return out, st, fmt.Errorf("line %d: %w", st.lines+1, err)
		}
		st.add(&line)

		if st.lines > 1 {
			if err := out.AppendString(sep); err != nil {
				line.Release()
				return out, st, fmt.Errorf("line %d: %w", st.lines, err)
			}
		}
		err = out.AppendFrom(&line)
		line.Release()
		if err != nil {
			return out, st, fmt.Errorf("line %d: %w", st.lines, err)
		}
	}
	return out, st, sc.Err()
}

type lineStats struct {
	lines  int
	inline int
	bytes  int
}

func (st *lineStats) add(s *hstring.String) {
	st.lines++
	st.bytes += s.Len()
	if s.IsInline() {
		st.inline++
	}
}

func dumpMetrics() error {
	mfs, err := prometheus.DefaultGatherer.Gather()
	if err != nil {
		return err
	}
	for _, mf := range mfs {
		if _, err := expfmt.MetricFamilyToText(os.Stderr, mf); err != nil {
			return err
		}
	}
	return nil
}

func main() {
	args := CatArgs{}
	arg.MustParse(&args)

	logger, err := newLogger(args.Verbose)
	if err != nil {
		panic(fmt.Errorf("failed to construct logger: %v", err))
	}
	_ = zap.ReplaceGlobals(logger)
	defer func() { _ = logger.Sync() }()

	a := newArena(args)
	alloc := allocator.NewDefault(a, allocator.NewHeap(args.HeapLimit))
	opts := []hstring.Option{
		hstring.WithAllocator(alloc),
		hstring.WithGrowthFactor(args.GrowthFactor),
	}

	sc := bufio.NewScanner(os.Stdin)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<24)
	out, st, err := concat(sc, args.Sep, opts)
	if err != nil {
		logger.Fatal("failed to concatenate input", zap.Error(err))
	}

	w := bufio.NewWriter(os.Stdout)
	_, _ = w.Write(out.Bytes())
	_ = w.WriteByte('\n')
	if err := w.Flush(); err != nil {
		logger.Fatal("failed to write output", zap.Error(err))
	}

	m := a.Metrics()
	logger.Info("concatenated input",
		zap.Int("lines", st.lines),
		zap.Int("inline_lines", st.inline),
		zap.Int("bytes", st.bytes),
		zap.Int("result_len", out.Len()),
		zap.Int("result_cap", out.Cap()),
		zap.Bool("result_on_heap", out.IsHeap()),
		zap.Uint64("result_hash", out.Hash()),
	)
	logger.Info("allocator stats",
		zap.Int("arena_in_use", m.SizeInUse),
		zap.Int("arena_capacity", m.Capacity),
		zap.Float64("arena_utilization", m.Utilization),
		zap.Int64("arena_moves", m.Moves),
		zap.Int64("arena_in_place", m.InPlace),
		zap.Any("default", alloc.Stats()),
	)
	out.Release()

	if args.Metrics {
		a.Report("hstrcat")
		if err := dumpMetrics(); err != nil {
			logger.Error("failed to write metrics", zap.Error(err))
		}
	}
}
