package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/pmorris/wsend/internal/cli"
	"github.com/pmorris/wsend/internal/core"
	"github.com/pmorris/wsend/internal/send"
)

func main() {
	// Cancel the context when one of the below signals are caught.
	ctx, cancel := context.WithCancelCause(context.Background())
	chSig := make(chan os.Signal, 1)
	signal.Notify(chSig, syscall.SIGINT, syscall.SIGHUP, syscall.SIGTERM)
	go func() {
		sig := <-chSig
		cancel(core.SignalError(sig.String()))
	}()

	// Parse the CLI args.
	app, err := cli.Parse(os.Args[1:])
	if err != nil {
		p := core.NewHandle(app.Color).Stderr()
		writeCLIErr(p, err)
		os.Exit(1)
	}

	handle := core.NewHandle(app.Color)

	// Print help to stdout.
	if app.Help {
		p := handle.Stdout()
		app.PrintHelp(p)
		p.Flush()
		os.Exit(0)
	}

	// Print version to stdout.
	if app.Version {
		fmt.Fprintln(os.Stdout, "wsend", core.Version)
		os.Exit(0)
	}

	// Print build info to stdout.
	if app.BuildInfo {
		p := handle.Stdout()
		p.Write(core.GetBuildInfo())
		p.WriteString("\n")
		p.Flush()
		os.Exit(0)
	}

	// Otherwise, a file must be provided.
	if app.FilePath == "" {
		p := handle.Stderr()
		writeCLIErr(p, errors.New("<FILE> must be provided"))
		os.Exit(1)
	}

	req := send.Request{
		FilePath:      app.FilePath,
		URL:           app.URL,
		Insecure:      app.Insecure,
		Timeout:       app.Timeout,
		PrinterHandle: handle,
		Verbosity:     getVerbosity(app),
		Stdin:         os.Stdin,
	}
	status := send.Send(ctx, &req)
	os.Exit(status)
}

// getVerbosity returns the Verbosity level based on the app configuration.
func getVerbosity(app *cli.App) core.Verbosity {
	if app.Silent {
		return core.VSilent
	}
	switch app.Verbose {
	case 0:
		return core.VNormal
	case 1:
		return core.VVerbose
	default:
		return core.VExtraVerbose
	}
}

// writeCLIErr writes the provided CLI error to the Printer.
func writeCLIErr(p *core.Printer, err error) {
	core.WriteErrorMsgNoFlush(p, err)

	p.WriteString("\nFor more information, try '")

	p.Set(core.Bold)
	p.WriteString("--help")
	p.Reset()

	p.WriteString("'.\n")
	p.Flush()
}
