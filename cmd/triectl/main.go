/*
Command triectl loads a vocabulary into a prefix trie and queries it.

Query the trie once:

	triectl -vocab words.txt exact Orco
	triectl -vocab words.txt complete or
	triectl -vocab words.txt -ratio 0.5 approx booklet
	triectl -vocab words.txt extract "dos cinco tres"
	triectl -vocab words.txt similar tre

Serve msgpack requests on stdin/stdout:

	triectl -vocab words.txt -serve

Defaults come from a TOML file passed with -config; flags override it.
*/
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/charmbracelet/log"

	trie "github.com/sarthakjha889/go-prefix-trie"
	"github.com/sarthakjha889/go-prefix-trie/internal/config"
	"github.com/sarthakjha889/go-prefix-trie/internal/logger"
	"github.com/sarthakjha889/go-prefix-trie/internal/vocab"
	"github.com/sarthakjha889/go-prefix-trie/matcher"
	"github.com/sarthakjha889/go-prefix-trie/server"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdin, os.Stdout); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		log.Fatal(err)
	}
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout io.Writer) error {
	fs := flag.NewFlagSet("triectl", flag.ContinueOnError)
	configPath := fs.String("config", "", "TOML config file")
	vocabPath := fs.String("vocab", "", "Vocabulary file, one entry per line")
	debugMode := fs.Bool("d", false, "Toggle debug mode")
	serveMode := fs.Bool("serve", false, "Serve msgpack requests on stdin/stdout")
	ratio := fs.Float64("ratio", -1, "Acceptance ratio for approx (default from config)")
	minMatched := fs.Int("min", -1, "Minimum matched length for approx (default from config)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	if *ratio >= 0 {
		cfg.Search.Ratio = *ratio
	}
	if *minMatched >= 0 {
		cfg.Search.MinMatchedLength = *minMatched
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	log.SetLevel(logger.ParseLevel(cfg.Log.Level))
	if *debugMode {
		log.SetLevel(log.DebugLevel)
	}
	lg := logger.New("triectl")

	var words []string
	if *vocabPath != "" {
		words, err = vocab.Load(*vocabPath)
		if err != nil {
			return fmt.Errorf("loading vocabulary: %w", err)
		}
	} else {
		lg.Warn("No vocabulary given, starting empty")
	}

	t := trie.NewWithOptions(cfg.Trie.CaseSensitive, cfg.Trie.FoldASCII).WithLogger(lg)
	t.Insert(words...)
	lg.Debug("Vocabulary loaded", "entries", len(words), "distinct", t.Len())

	opts := server.Options{Ratio: cfg.Search.Ratio, MinMatched: cfg.Search.MinMatchedLength}
	if *serveMode {
		return server.New(t, stdin, stdout, opts).WithLogger(lg).Serve(ctx)
	}

	if fs.NArg() < 2 {
		return fmt.Errorf("usage: triectl [flags] exact|complete|approx|extract|similar WORD...")
	}
	op, queries := fs.Arg(0), fs.Args()[1:]

	switch op {
	case "exact":
		for _, q := range queries {
			fmt.Fprintf(stdout, "%s\t%t\n", q, t.Contains(q))
		}
	case "complete":
		for _, q := range queries {
			fmt.Fprintf(stdout, "%s\t%s\n", q, strings.Join(t.Complete(q), " "))
		}
	case "approx":
		for _, q := range queries {
			m, err := t.SearchApproximate(q, opts.Ratio, opts.MinMatched)
			if err != nil && !errors.Is(err, trie.ErrApproximationImpossible) {
				return err
			}
			fmt.Fprintf(stdout, "%s\t%s\t%s\t%.2f\n", q, m.Status, m.Word, m.Coverage)
		}
	case "extract":
		keywords := matcher.NewExact(cfg.Trie.CaseSensitive)
		keywords.Add(words...)
		for _, q := range queries {
			fmt.Fprintf(stdout, "%s\t%s\n", q, strings.Join(keywords.Extract(q), " "))
		}
	case "similar":
		similar := matcher.NewFuzzy(cfg.Matcher.MinSimilarity)
		similar.Add(words...)
		for _, q := range queries {
			hits := similar.Get(q)
			parts := make([]string, len(hits))
			for i, h := range hits {
				parts[i] = fmt.Sprintf("%s:%.2f", h.Word, h.Score)
			}
			fmt.Fprintf(stdout, "%s\t%s\n", q, strings.Join(parts, " "))
		}
	default:
		return fmt.Errorf("unknown operation %q", op)
	}
	return nil
}
