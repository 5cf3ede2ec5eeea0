//go:build test

package lexicon

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"runtime/pprof"
	"strings"
	"sync"
	"testing"
	"testing/fstest"

	"github.com/bastiangx/pqwords/pkg/dictionary"
	"github.com/bastiangx/pqwords/pkg/selection"
	"github.com/charmbracelet/log"
)

func init() {
	log.SetLevel(log.ErrorLevel)
}

var stressQueries = []string{
	"hello", "helo", "wrld", "world", "progrm", "program",
	"there", "thre", "computr", "computer", "internationl", "developmnt",
}

// stressFS builds a word tree big enough to make index rebuilds and fuzzy
// probes measurable.
func stressFS() fstest.MapFS {
	base := []string{"hello", "world", "program", "there", "computer", "international", "development"}
	var sb strings.Builder
	for i := range 5000 {
		fmt.Fprintf(&sb, "%s%c%c\n", base[i%len(base)], 'a'+rune(i%26), 'a'+rune(i/26%26))
	}
	sb.WriteString(strings.Join(base, "\n"))
	return fstest.MapFS{
		"nouns/easy/general.txt": {Data: []byte(sb.String())},
	}
}

func newStressLexicon(t *testing.T) *Lexicon {
	t.Helper()
	l := New(dictionary.NewTextSource(stressFS()), WithTimeout(0))
	err := l.Load(context.Background(), selection.Params{
		Types:      []string{"nouns"},
		Levels:     []string{"easy"},
		Categories: []string{"general"},
	})
	if err != nil {
		t.Fatalf("lexicon load failed: %v", err)
	}
	return l
}

func TestMemoryLeakBasic(t *testing.T) {
	for _, iterCount := range []int{10, 50, 100} {
		t.Run(fmt.Sprintf("iterations_%d", iterCount), func(t *testing.T) {
			l := newStressLexicon(t)

			var baseline runtime.MemStats
			runtime.GC()
			runtime.ReadMemStats(&baseline)
			baselineGoroutines := runtime.NumGoroutine()

			for range iterCount {
				for _, q := range stressQueries {
					_ = l.FindWord(context.Background(), q, 1, 4)
				}
			}

			var final runtime.MemStats
			runtime.GC()
			runtime.ReadMemStats(&final)

			memDelta := int64(final.Alloc) - int64(baseline.Alloc)
			goroutineDelta := runtime.NumGoroutine() - baselineGoroutines
			totalOps := iterCount * len(stressQueries)
			memPerOp := float64(memDelta) / float64(totalOps)

			t.Logf("iterations=%d ops=%d mem_delta=%d bytes mem_per_op=%.2f goroutine_delta=%d",
				iterCount, totalOps, memDelta, memPerOp, goroutineDelta)

			if memPerOp > 1000 {
				t.Errorf("excessive memory usage per operation: %.2f bytes", memPerOp)
			}
			if goroutineDelta > 2 {
				t.Errorf("goroutine leak detected: %d goroutines leaked", goroutineDelta)
			}
		})
	}
}

func TestMemoryLeakConcurrent(t *testing.T) {
	memFile, err := os.Create("concurrent_memory.prof")
	if err != nil {
		t.Fatalf("profile file creation failed: %v", err)
	}
	defer func() {
		memFile.Close()
		os.Remove("concurrent_memory.prof")
	}()

	l := newStressLexicon(t)

	var baseline runtime.MemStats
	runtime.GC()
	runtime.ReadMemStats(&baseline)
	baselineGoroutines := runtime.NumGoroutine()

	const workers, iterations = 8, 20
	var wg sync.WaitGroup
	for w := range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range iterations {
				if w == 0 && i%5 == 0 {
					l.BuildIndex()
				}
				for _, q := range stressQueries {
					_ = l.FindWord(context.Background(), q, 1, 4)
				}
			}
		}()
	}
	wg.Wait()

	var final runtime.MemStats
	runtime.GC()
	runtime.ReadMemStats(&final)

	memDelta := int64(final.Alloc) - int64(baseline.Alloc)
	goroutineDelta := runtime.NumGoroutine() - baselineGoroutines
	t.Logf("workers=%d iter_per_worker=%d mem_delta=%d bytes goroutine_delta=%d",
		workers, iterations, memDelta, goroutineDelta)

	if err := pprof.WriteHeapProfile(memFile); err != nil {
		t.Errorf("heap profile write failed: %v", err)
	}
	if memDelta > 10*1024*1024 {
		t.Errorf("excessive retained memory: %d bytes", memDelta)
	}
	if goroutineDelta > 3 {
		t.Errorf("goroutine leak detected: %d goroutines leaked", goroutineDelta)
	}
}
