package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"git.sr.ht/~sircmpwn/getopt"
	"github.com/fatih/color"

	"github.com/zephyrtronium/smartcalc"
	"github.com/zephyrtronium/smartcalc/internal/history"
)

const usage = "usage: smartcalc [-x value] [-H history.db] [-l count] [-C] [-n] [expr ...]"

func main() {
	log.SetFlags(0)
	opts, optind, err := getopt.Getopts(os.Args, "x:H:l:Cnh")
	if err != nil {
		log.Fatalln(err)
	}
	var (
		x      *float64
		dbname string
		list   int
		wipe   bool
		echo   bool
	)
	for _, opt := range opts {
		switch opt.Option {
		case 'x':
			v, err := strconv.ParseFloat(opt.Value, 64)
			if err != nil {
				log.Fatalf("invalid -x value %q", opt.Value)
			}
			x = &v
		case 'H':
			dbname = opt.Value
		case 'l':
			n, err := strconv.Atoi(opt.Value)
			if err != nil || n <= 0 {
				log.Fatalf("invalid -l count %q", opt.Value)
			}
			list = n
		case 'C':
			wipe = true
		case 'n':
			echo = true
		case 'h':
			fmt.Println(usage)
			return
		}
	}
	args := os.Args[optind:]

	ctx := context.Background()
	var db *history.Store
	if dbname != "" {
		db, err = history.Open(dbname)
		if err != nil {
			log.Fatal(err)
		}
		defer db.Close()
	}
	if list > 0 || wipe {
		if db == nil {
			log.Fatalln("-l and -C need a history database (-H)")
		}
		if wipe {
			if err := db.Clear(ctx); err != nil {
				log.Fatal(err)
			}
		}
		if list > 0 {
			if err := show(ctx, db, list); err != nil {
				log.Fatal(err)
			}
		}
		return
	}

	exprs := args
	if len(exprs) == 0 {
		sc := bufio.NewScanner(os.Stdin)
		for sc.Scan() {
			if line := strings.TrimSpace(sc.Text()); line != "" {
				exprs = append(exprs, line)
			}
		}
		if err := sc.Err(); err != nil {
			log.Fatal(err)
		}
	}

	red := color.New(color.FgRed)
	failed := false
	for _, expr := range exprs {
		if echo {
			if g, err := smartcalc.Grouping(expr); err == nil {
				fmt.Printf("%s : ", g)
			}
		}
		var r float64
		if x != nil {
			r, err = smartcalc.EvaluateEquation(expr, *x)
		} else {
			r, err = smartcalc.EvaluateExpression(expr)
		}
		if db != nil {
			e := history.Entry{Expr: expr, X: x, Result: r, Code: smartcalc.Code(err).String()}
			if err := db.Record(ctx, e); err != nil {
				log.Println(err)
			}
		}
		if err != nil {
			red.Fprintln(os.Stderr, err)
			failed = true
			continue
		}
		fmt.Printf("%g\n", r)
	}
	if failed {
		// Deferred closes don't run after os.Exit.
		if db != nil {
			db.Close()
		}
		os.Exit(1)
	}
}

func show(ctx context.Context, db *history.Store, n int) error {
	es, err := db.Recent(ctx, n)
	if err != nil {
		return err
	}
	// Oldest first, like a terminal scrollback.
	for i := len(es) - 1; i >= 0; i-- {
		e := es[i]
		expr := e.Expr
		if e.X != nil {
			expr = fmt.Sprintf("%s [x=%g]", expr, *e.X)
		}
		if e.Code != smartcalc.Success.String() {
			color.Red("%s : %s", expr, e.Code)
			continue
		}
		fmt.Printf("%s = %g\n", expr, e.Result)
	}
	return nil
}
