// Command smoketest runs the tokenizer and the number denormalizer over a
// directory of .txt files and reports invariant violations.
//
// For every chunk of text it checks that tokens reconstruct the input, that
// every rewritten span points back at its source text, and that rewriting
// is idempotent. Files whose number density is far above the median are
// flagged for review.
//
//	go run ./cmd/smoketest -l fr <directory>
package main

import (
	"bytes"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/Jeronymous/words2num"
	"github.com/Jeronymous/words2num/denorm"
	"github.com/Jeronymous/words2num/tokenizer"
)

const (
	chunkSize      = 4 << 20 // 4 MB per read chunk
	maxWorkers     = 4
	bytesToMBShift = 20
	outlierFactor  = 3
)

type fileDensity struct {
	path    string
	spans   int
	bytes   int64
	density float64 // spans per KB
}

type Stats struct {
	mu              sync.Mutex
	filesScanned    int
	totalBytes      int64
	reconOK         int
	reconFail       int
	spanFail        int
	idempotentFail  int
	densityOutliers int
	spans           int
	tokenTypeCounts map[tokenizer.TokenType]int
	densities       []fileDensity
}

type fileState struct {
	path            string
	tokenCounts     map[tokenizer.TokenType]int
	totalBytes      int64
	spans           int
	reconFailed     bool
	spanFailed      bool
	idempotentFails bool
}

func main() {
	tag := flag.String("l", words2num.DefaultLocale, "locale tag")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [-l tag] <directory>\n", os.Args[0])
	}
	flag.Parse()
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(1)
	}

	reg, err := words2num.Registry()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading locales: %v\n", err)
		os.Exit(1)
	}
	engine, err := reg.Resolve(*tag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	r := denorm.New(engine)

	dirPath := flag.Arg(0)
	stats := &Stats{
		tokenTypeCounts: make(map[tokenizer.TokenType]int),
	}

	var filePaths []string
	err = filepath.WalkDir(dirPath, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), ".txt") {
			return nil
		}
		filePaths = append(filePaths, path)
		return nil
	})

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error walking directory: %v\n", err)
		os.Exit(1)
	}

	fmt.Fprintf(os.Stderr, "Found %d files to process (locale %s)\n", len(filePaths), engine.Locale().Tag)
	start := time.Now()

	semaphore := make(chan struct{}, maxWorkers)
	var wg sync.WaitGroup

	for _, path := range filePaths {
		semaphore <- struct{}{}
		wg.Go(func() {
			defer func() { <-semaphore }()
			processFile(path, r, stats)
		})
	}

	wg.Wait()

	flagDensityOutliers(stats)

	fmt.Fprintf(os.Stderr, "\nCompleted in %s\n\n", time.Since(start).Round(time.Millisecond))
	printStats(stats)
}

func processFile(path string, r *denorm.Replacer, stats *Stats) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening %s: %v\n", path, err)
		return
	}
	defer func() { _ = f.Close() }()

	info, err := f.Stat()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error stat %s: %v\n", path, err)
		return
	}
	fmt.Fprintf(os.Stderr, "START %s (%d MB)\n", path, info.Size()>>bytesToMBShift)
	fileStart := time.Now()

	state := &fileState{
		path:        path,
		tokenCounts: make(map[tokenizer.TokenType]int),
	}

	buf := make([]byte, chunkSize)
	var leftover []byte

	for {
		n, err := f.Read(buf)
		if n > 0 {
			leftover = append(leftover, buf[:n]...)
			chunk := leftover

			if err == nil {
				// Split at the last newline so no phrase straddles two chunks.
				if idx := bytes.LastIndexByte(chunk, '\n'); idx > 0 {
					leftover = make([]byte, len(chunk)-idx-1)
					copy(leftover, chunk[idx+1:])
					chunk = chunk[:idx+1]
				} else {
					leftover = chunk
					continue
				}
			} else {
				leftover = nil
			}

			state.processChunk(chunk, r)
		}

		if err != nil {
			break
		}
	}

	if len(leftover) > 0 {
		state.processChunk(leftover, r)
	}

	fmt.Fprintf(os.Stderr, "DONE  %s in %s (%d spans)\n",
		filepath.Base(path), time.Since(fileStart).Round(time.Millisecond), state.spans)

	mergeFileState(state, stats)
}

func (fs *fileState) processChunk(chunk []byte, r *denorm.Replacer) {
	text := string(chunk)
	fs.totalBytes += int64(len(chunk))

	tokens := tokenizer.Tokens(text)

	var sb strings.Builder
	if !fs.reconFailed {
		sb.Grow(len(text))
	}
	for _, token := range tokens {
		fs.tokenCounts[token.Type]++
		if !fs.reconFailed {
			sb.WriteString(token.Text)
		}
	}
	if !fs.reconFailed && sb.String() != text {
		fs.reconFailed = true
		logDivergence("RECON_FAIL", fs.path, text, sb.String())
	}

	spans := r.Spans(text)
	fs.spans += len(spans)
	for _, sp := range spans {
		if !fs.spanFailed && text[sp.Start:sp.End] != sp.Text {
			fs.spanFailed = true
			fmt.Fprintf(os.Stderr, "SPAN_FAIL: %s: span [%d:%d] %q does not match its source\n",
				fs.path, sp.Start, sp.End, sp.Text)
		}
	}

	if !fs.idempotentFails {
		once := r.Replace(text)
		if twice := r.Replace(once); twice != once {
			fs.idempotentFails = true
			logDivergence("IDEMPOTENT_FAIL", fs.path, once, twice)
		}
	}
}

func mergeFileState(fs *fileState, stats *Stats) {
	stats.mu.Lock()
	defer stats.mu.Unlock()

	stats.filesScanned++
	stats.totalBytes += fs.totalBytes
	stats.spans += fs.spans

	if fs.reconFailed {
		stats.reconFail++
	} else {
		stats.reconOK++
	}
	if fs.spanFailed {
		stats.spanFail++
	}
	if fs.idempotentFails {
		stats.idempotentFail++
	}

	for tokenType, count := range fs.tokenCounts {
		stats.tokenTypeCounts[tokenType] += count
	}

	var density float64
	if fs.totalBytes > 0 {
		density = float64(fs.spans) / (float64(fs.totalBytes) / 1024)
	}
	stats.densities = append(stats.densities, fileDensity{
		path:    fs.path,
		spans:   fs.spans,
		bytes:   fs.totalBytes,
		density: density,
	})
}

// flagDensityOutliers computes the median spans-per-KB across all files and
// flags any file whose density exceeds 3x the median.
func flagDensityOutliers(stats *Stats) {
	if len(stats.densities) == 0 {
		return
	}

	values := make([]float64, len(stats.densities))
	for i, fd := range stats.densities {
		values[i] = fd.density
	}
	med := computeMedian(values)

	for _, fd := range stats.densities {
		if med > 0 && fd.density > outlierFactor*med {
			stats.densityOutliers++
			fmt.Fprintf(os.Stderr, "DENSITY_OUTLIER: %s: %d spans in %d bytes (%.2f/KB, median %.2f)\n",
				fd.path, fd.spans, fd.bytes, fd.density, med)
		}
	}
}

func logDivergence(kind, path, want, got string) {
	pos, g, w := firstDivergence(want, got)
	fmt.Fprintf(os.Stderr, "%s: %s: first divergence at byte %d (got 0x%02x, want 0x%02x)\n",
		kind, path, pos, g, w)
}

// firstDivergence finds the byte position where two strings first differ.
// Returns the position and the differing bytes from each string.
func firstDivergence(original, reconstructed string) (pos int, got, want byte) {
	n := min(len(original), len(reconstructed))
	for i := range n {
		if original[i] != reconstructed[i] {
			return i, reconstructed[i], original[i]
		}
	}
	pos = n
	if pos < len(reconstructed) {
		got = reconstructed[pos]
	}
	if pos < len(original) {
		want = original[pos]
	}
	return pos, got, want
}

func computeMedian(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		return (sorted[mid-1] + sorted[mid]) / 2 //nolint:mnd // arithmetic mean of two middle values
	}
	return sorted[mid]
}

func printStats(stats *Stats) {
	fmt.Printf("Files scanned:           %d\n", stats.filesScanned)
	fmt.Printf("Total bytes:             %d\n", stats.totalBytes)
	fmt.Printf("Number spans:            %d\n", stats.spans)
	fmt.Printf("Reconstruction OK:       %d\n", stats.reconOK)
	fmt.Printf("Reconstruction FAIL:     %d\n", stats.reconFail)
	fmt.Printf("Span offset FAIL:        %d\n", stats.spanFail)
	fmt.Printf("Idempotence FAIL:        %d\n", stats.idempotentFail)
	fmt.Printf("Density outliers:        %d\n", stats.densityOutliers)
	fmt.Println()

	totalTokens := 0
	for _, count := range stats.tokenTypeCounts {
		totalTokens += count
	}

	fmt.Println("Token type distribution:")
	for _, tt := range []tokenizer.TokenType{
		tokenizer.Word, tokenizer.Number, tokenizer.Punctuation, tokenizer.Space, tokenizer.Symbol,
	} {
		printTokenTypeStats(tt, stats.tokenTypeCounts, totalTokens)
	}
}

func printTokenTypeStats(tokenType tokenizer.TokenType, counts map[tokenizer.TokenType]int, total int) {
	count := counts[tokenType]
	percentage := 0.0
	if total > 0 {
		percentage = float64(count) / float64(total) * 100
	}
	fmt.Printf("  %-15s %d  (%.1f%%)\n", tokenType.String()+":", count, percentage)
}
