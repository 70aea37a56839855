// Package main is the pwncheck command: it reads a password list from a
// file and reports how often each password appears in known breaches.
//
// Passwords are deliberately not accepted as command-line arguments, since
// those end up in shell history.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/atinyakov/pwncheck/internal/client/rangeapi"
	"github.com/atinyakov/pwncheck/internal/config"
	"github.com/atinyakov/pwncheck/internal/logger"
	"github.com/atinyakov/pwncheck/internal/passfile"
	"github.com/atinyakov/pwncheck/internal/report"
	"github.com/atinyakov/pwncheck/internal/service"
)

var (
	version   string
	buildDate string
)

const usage = "usage: pwncheck [flags] <password-file>"

// run checks every password in the file named by opts.Args[0] and writes one
// report line per password to out, followed by "done!".
func run(ctx context.Context, opts *config.Options, zl *zap.Logger, out io.Writer) error {
	if len(opts.Args) != 1 {
		return errors.New(usage)
	}

	passwords, err := passfile.Read(opts.Args[0])
	if err != nil {
		return err
	}

	httpClient, err := rangeapi.NewHTTPClient(time.Duration(opts.Timeout), opts.CAFile)
	if err != nil {
		return err
	}
	getter := &rangeapi.HTTPGetter{
		Client:    httpClient,
		UserAgent: opts.UserAgent,
		Padding:   opts.Padding,
	}
	client := rangeapi.New(getter, rangeapi.Options{BaseURL: opts.APIURL, Retries: opts.Retries}, zl)
	checker := service.NewCheckService(client, nil, zl)

	if err := checker.CheckAll(ctx, passwords, report.Writer(out)); err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, "done!")
	return err
}

func main() {
	opts, err := config.ParseClient(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		log.Fatal(err)
	}

	if opts.Version {
		fmt.Printf("pwncheck\nVersion: %s\nBuild Date: %s\n", version, buildDate)
		return
	}

	lg := logger.New()
	if err := lg.Init(opts.LogLevel); err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer func() { _ = lg.Log.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, opts, lg.Log, os.Stdout); err != nil {
		stop()
		log.Fatal(err)
	}
}
