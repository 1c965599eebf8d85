// Command samples rewrites a word,stem samples file with the stems the
// current stemmer produces.
package main

import (
	"bufio"
	"bytes"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"GreekStem/internal/stemmer"
	"GreekStem/internal/storage"
)

func main() {
	path := flag.String("file", "internal/stemmer/testdata/stemming_samples.txt", "samples file to rewrite")
	stopwordsPath := flag.String("stopwords", "", "stopword list, defaults to the bundled one")
	check := flag.Bool("check", false, "report outdated samples without writing; exit 1 if any")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	var sw *stemmer.Stopwords
	if *stopwordsPath != "" {
		var err error
		sw, err = stemmer.LoadStopwordsFile(*stopwordsPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "load stopwords: %v\n", err)
			os.Exit(1)
		}
	}

	f, err := os.Open(*path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open samples: %v\n", err)
		os.Exit(1)
	}
	out, changed, err := updateSamples(f, stemmer.New(sw))
	f.Close()
	if err != nil {
		fmt.Fprintf(os.Stderr, "read samples: %v\n", err)
		os.Exit(1)
	}

	if *check {
		logger.Info("checked samples", "file", *path, "outdated", changed)
		if changed > 0 {
			os.Exit(1)
		}
		return
	}

	if err := storage.AtomicWriteFile(*path, out); err != nil {
		fmt.Fprintf(os.Stderr, "write samples: %v\n", err)
		os.Exit(1)
	}
	logger.Info("updated samples", "file", *path, "changed", changed)
}

// updateSamples recomputes the stem column of every word,stem line in r.
// Blank lines and # comments are copied unchanged. A line without a comma
// is treated as a bare word. It returns the new content and the number of
// lines whose stem changed.
func updateSamples(r io.Reader, st *stemmer.Stemmer) ([]byte, int, error) {
	var out bytes.Buffer
	changed := 0

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := sc.Text()
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			out.WriteString(line)
			out.WriteByte('\n')
			continue
		}

		word, old, _ := strings.Cut(trimmed, ",")
		word = strings.TrimSpace(word)
		stem := st.StemString(word)
		if stem != strings.TrimSpace(old) {
			changed++
		}
		out.WriteString(word)
		out.WriteByte(',')
		out.WriteString(stem)
		out.WriteByte('\n')
	}
	if err := sc.Err(); err != nil {
		return nil, 0, err
	}
	return out.Bytes(), changed, nil
}
