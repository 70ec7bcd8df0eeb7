// Command console draws on a text canvas from commands typed at a prompt
// or read from a file.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"console-draw/session"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"golang.org/x/term"
)

func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		fmt.Fprintf(os.Stderr, "Failed to load .env: %v\n", err)
	}

	logLevel := flag.String("loglevel", "warn", "Set the logging level: debug, info, warn, error, fatal, panic")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] [command-file]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	level, err := logrus.ParseLevel(*logLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid log level: %v\n", err)
		os.Exit(1)
	}
	logrus.SetLevel(level)

	background, err := session.BackgroundFromEnv()
	if err != nil {
		logrus.WithError(err).Fatal("Invalid CANVAS_BACKGROUND")
	}
	s := session.New(session.WithBackground(background))

	if path := flag.Arg(0); path != "" {
		f, err := os.Open(path)
		if err != nil {
			logrus.WithError(err).WithField("path", path).Fatal("Failed to open command file")
		}
		defer f.Close()

		fmt.Fprint(os.Stdout, session.Banner)
		if err := run(s, newScannerReader(f), os.Stdout, runOptions{Prompt: true, Echo: true}); err != nil {
			logrus.WithError(err).Fatal("Failed to read command file")
		}
		return
	}

	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		fmt.Fprint(os.Stdout, session.Banner)
		if err := run(s, newScannerReader(os.Stdin), os.Stdout, runOptions{Prompt: true}); err != nil {
			logrus.WithError(err).Fatal("Failed to read input")
		}
		return
	}

	oldState, err := term.MakeRaw(fd)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to switch terminal to raw mode")
	}
	defer term.Restore(fd, oldState)

	screen := struct {
		io.Reader
		io.Writer
	}{os.Stdin, os.Stdout}
	t := term.NewTerminal(screen, session.Prompt)
	fmt.Fprint(t, session.Banner)
	if err := run(s, t, t, runOptions{}); err != nil {
		logrus.WithError(err).Error("Failed to read input")
	}
}
