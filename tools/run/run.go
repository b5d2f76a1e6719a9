// Package run implements the run command of dccgo. It starts the debugger
// which drains the target's DCC and watches its output for the end of the
// program.
package run

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strings"
	"sync/atomic"
	"time"

	"github.com/aymanbagabas/go-pty"
	"github.com/buildkite/shellwords"

	"github.com/clktmr/dcc/decode"
)

const usageString = `Run a debugger and print the DCC output of the target.

Usage: %s [flags] <command>

The command is split into arguments like a shell would do and runs in a
pseudo terminal. It must forward the DCC to its standard output, e.g.

	dccgo run "xsdb -eval 'conn; targets -set 0; rst -processor; dow hello.elf; readjtaguart -start; con'"

The exit code is 1 if the target panicked or printed FAIL.

`

// grace is the time given to the target to finish printing after the end of
// the program was detected.
var grace = 500 * time.Millisecond

var (
	flags = flag.NewFlagSet("run", flag.ExitOnError)

	charset = flags.String("charset", "", "IANA charset of the target's output")
	timeout = flags.Duration("timeout", 0, "stop the debugger after this duration")
)

func usage() {
	fmt.Fprintf(flags.Output(), usageString, "run")
	flags.PrintDefaults()
}

// Result is the state of the program derived from its output.
type Result int

const (
	Running Result = iota
	Passed
	Failed
)

// Classify returns the result a line of output implies.
func Classify(line string) Result {
	switch {
	case strings.HasPrefix(line, "panicked at "),
		strings.HasPrefix(line, "panic:"),
		strings.HasPrefix(line, "fatal error:"),
		strings.HasPrefix(line, "Unhandled "):
		return Failed
	case line == "FAIL":
		return Failed
	case line == "PASS":
		return Passed
	}
	return Running
}

// Split splits cmdline into arguments.
func Split(cmdline string) ([]string, error) {
	args, err := shellwords.Split(cmdline)
	if err != nil {
		return nil, err
	}
	if len(args) == 0 {
		return nil, errors.New("empty command")
	}
	return args, nil
}

// scan logs every line read from r. When the first line that ends the
// program is seen, stop is called. Returns the exit code.
func scan(r io.Reader, logger *log.Logger, stop func()) (code int) {
	scanner := bufio.NewScanner(r)
	exiting := false
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		logger.Println(line)
		if exiting {
			continue
		}
		switch Classify(line) {
		case Failed:
			code = 1
			fallthrough
		case Passed:
			exiting = true
			stop()
		}
	}
	return code
}

// Options configure a run.
type Options struct {
	Charset string        // IANA charset of the output, empty for UTF-8
	Timeout time.Duration // zero waits forever
}

// session is a started debugger and the output it forwards from the target.
type session interface {
	io.Reader
	Wait() error  // wait for the debugger to exit
	Stop() error  // ask the debugger to exit
	Close() error // unblock pending reads
}

type ptySession struct {
	pty.Pty
	cmd *pty.Cmd
}

func (s *ptySession) Wait() error { return s.cmd.Wait() }
func (s *ptySession) Stop() error { return processGroupKill(s.cmd.Process) }

// Run starts args in a pseudo terminal and logs its output until it exits or
// the end of the program was detected.
func Run(args []string, opts Options, logger *log.Logger) (int, error) {
	if _, err := decode.Charset(opts.Charset); err != nil {
		return 1, err
	}

	p, err := pty.New()
	if err != nil {
		return 1, fmt.Errorf("open pty: %w", err)
	}
	defer p.Close()

	cmd := p.Command(args[0], args[1:]...)
	if err := cmd.Start(); err != nil {
		return 1, fmt.Errorf("start command: %w", err)
	}

	return watch(&ptySession{p, cmd}, opts, logger)
}

// watch logs the output of s until the debugger exits. It stops the debugger
// after the end of the program was detected, on SIGINT or on timeout.
func watch(s session, opts Options, logger *log.Logger) (int, error) {
	stop := func() {
		go func() {
			// give the target time to print the rest of the message
			time.Sleep(grace)
			if err := s.Stop(); err != nil {
				logger.Println(err)
			}
		}()
	}

	sigintr := make(chan os.Signal, 1)
	signal.Notify(sigintr, os.Interrupt)
	defer signal.Stop(sigintr)
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-sigintr:
			stop()
		case <-done:
		}
	}()

	var timedOut atomic.Bool
	if opts.Timeout > 0 {
		t := time.AfterFunc(opts.Timeout, func() {
			timedOut.Store(true)
			logger.Println("dccgo: timeout after", opts.Timeout)
			stop()
		})
		defer t.Stop()
	}

	exited := make(chan struct{})
	go func() {
		s.Wait()
		close(exited)
		// unblock scan if the pty isn't closed by the exit
		time.Sleep(grace)
		s.Close()
	}()

	r, err := decode.Text(s, opts.Charset)
	if err != nil {
		stop()
		<-exited
		return 1, err
	}
	code := scan(r, logger, stop)
	<-exited
	if timedOut.Load() {
		code = 1
	}
	return code, nil
}

func Main(args []string) {
	flags.Usage = usage
	flags.Parse(args[1:])

	if flags.NArg() < 1 {
		flags.Usage()
		os.Exit(1)
	}

	cmdargs, err := Split(strings.Join(flags.Args(), " "))
	if err != nil {
		log.Fatalln("run:", err)
	}

	opts := Options{Charset: *charset, Timeout: *timeout}
	code, err := Run(cmdargs, opts, log.Default())
	if err != nil {
		log.Fatalln("run:", err)
	}
	os.Exit(code)
}
