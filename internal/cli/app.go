package cli

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/pmorris/wsend/internal/core"
)

// DefaultURL is the endpoint used when --url is not provided.
const DefaultURL = "wss://192.168.1.199:2000"

func defaultEndpoint() *url.URL {
	u, err := url.Parse(DefaultURL)
	if err != nil {
		panic(err)
	}
	return u
}

// App represents the full configuration for a wsend invocation.
type App struct {
	FilePath string
	URL      *url.URL

	BuildInfo bool
	Color     core.Color
	Help      bool
	Insecure  bool
	Silent    bool
	Timeout   time.Duration
	Verbose   int
	Version   bool

	timeoutSet bool
}

func (a *App) PrintHelp(p *core.Printer) {
	printHelp(a.CLI(), p)
}

func (a *App) CLI() *CLI {
	return &CLI{
		Description: "wsend sends each line of a file as a websocket text message",
		Args: []Arguments{
			{Name: "FILE", Description: "The file to send, one message per line"},
		},
		ArgFn: func(s string) error {
			if a.FilePath != "" {
				return fmt.Errorf("unexpected argument: %q", s)
			}
			if s == "" {
				return fmt.Errorf("empty file path provided")
			}
			a.FilePath = s
			return nil
		},
		ExclusiveFlags: [][]string{
			{"silent", "verbose"},
		},
		Flags: []Flag{
			{
				Short:       "",
				Long:        "buildinfo",
				Args:        "",
				Description: "Print the build information",
				Default:     "",
				IsSet: func() bool {
					return a.BuildInfo
				},
				Fn: func(value string) error {
					a.BuildInfo = true
					return nil
				},
			},
			{
				Short:       "",
				Long:        "color",
				Args:        "OPTION",
				Description: "Enable/disable color",
				Default:     "",
				Aliases:     []string{"colour"},
				Values:      []string{"auto", "off", "on"},
				IsSet: func() bool {
					return a.Color != core.ColorUnknown
				},
				Fn: func(value string) error {
					switch value {
					case "auto":
						a.Color = core.ColorAuto
					case "on":
						a.Color = core.ColorOn
					case "off":
						a.Color = core.ColorOff
					default:
						return invalidValueError{flag: "color", value: value}
					}
					return nil
				},
			},
			{
				Short:       "h",
				Long:        "help",
				Args:        "",
				Description: "Print help",
				Default:     "",
				IsSet: func() bool {
					return a.Help
				},
				Fn: func(value string) error {
					a.Help = true
					return nil
				},
			},
			{
				Short:       "",
				Long:        "insecure",
				Args:        "",
				Description: "Accept invalid TLS certs (!)",
				Default:     "",
				IsSet: func() bool {
					return a.Insecure
				},
				Fn: func(value string) error {
					a.Insecure = true
					return nil
				},
			},
			{
				Short:       "s",
				Long:        "silent",
				Args:        "",
				Description: "Print only errors to stderr",
				Default:     "",
				IsSet: func() bool {
					return a.Silent
				},
				Fn: func(value string) error {
					a.Silent = true
					return nil
				},
			},
			{
				Short:       "t",
				Long:        "timeout",
				Args:        "SECONDS",
				Description: "Timeout applied to the handshake",
				Default:     "",
				IsSet: func() bool {
					return a.timeoutSet
				},
				Fn: func(value string) error {
					secs, err := strconv.ParseFloat(value, 64)
					if err != nil || secs < 0 {
						return invalidValueError{flag: "timeout", value: value}
					}
					a.Timeout = time.Duration(secs * float64(time.Second))
					a.timeoutSet = true
					return nil
				},
			},
			{
				Short:       "u",
				Long:        "url",
				Args:        "URL",
				Description: "The websocket endpoint",
				Default:     DefaultURL,
				IsSet: func() bool {
					return a.URL != nil
				},
				Fn: func(value string) error {
					if value == "" {
						return fmt.Errorf("empty URL provided")
					}

					// For URLs that have the scheme omitted, add two
					// slashes so it can be parsed correctly.
					if !strings.Contains(value, "://") && value[0] != '/' {
						value = "//" + value
					}

					u, err := url.Parse(value)
					if err != nil {
						return fmt.Errorf("invalid url: %w", err)
					}

					// Lowercase the scheme, and validate. Websockets
					// only; the scheme defaults to the encrypted one.
					u.Scheme = strings.ToLower(u.Scheme)
					switch u.Scheme {
					case "":
						u.Scheme = "wss"
					case "ws", "wss":
					default:
						return fmt.Errorf("unsupported url scheme: %s", u.Scheme)
					}

					a.URL = u
					return nil
				},
			},
			{
				Short:       "v",
				Long:        "verbose",
				Args:        "",
				Description: "Verbosity of the output",
				Default:     "",
				IsSet: func() bool {
					return a.Verbose > 0
				},
				Fn: func(value string) error {
					a.Verbose++
					return nil
				},
			},
			{
				Short:       "V",
				Long:        "version",
				Args:        "",
				Description: "Print version",
				Default:     "",
				IsSet: func() bool {
					return a.Version
				},
				Fn: func(value string) error {
					a.Version = true
					return nil
				},
			},
		},
	}
}
