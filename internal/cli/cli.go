// Package cli implements the restkit command line.
package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"net/url"
	"strconv"
	"strings"
	"time"

	"restkit/internal/config"
	"restkit/internal/http/cookie"
	"restkit/internal/http/header"
	"restkit/internal/http/location"
	"restkit/internal/middleware"
	"restkit/internal/uri"
	"restkit/internal/version"

	flag "github.com/ogier/pflag"
	"go.uber.org/zap"
)

var (
	ErrUsage          = errors.New("usage error")
	ErrUnknownCommand = errors.New("unknown command")
)

const usage = `usage: restkit <command> [arguments]

commands:
  uri BASE [SEGMENT...]        build a URI (-q key=value, --charset, --safe, --encode-keys)
  encode key=value...          form-encode query parameters
  headers                      rewrite a header block read from stdin (--set, --first, --strip-hop, --date,
                               --validate, --forwarded-for, --server, --location-host, --prefix)
  cookies RAW...               parse a Cookie header
  location HOST_URI LOCATION   rewrite a redirect for a proxy (--prefix)
  netloc URL                   print host and port of a URL
  date [UNIX_SECONDS]          format an HTTP date
  version                      print version and User-Agent
`

type App struct {
	cfg    config.Config
	in     io.Reader
	out    io.Writer
	styles styles
	now    func() time.Time
}

func New(cfg config.Config, in io.Reader, out io.Writer) *App {
	return &App{
		cfg:    cfg,
		in:     in,
		out:    out,
		styles: newStyles(out, cfg.NoColor()),
		now:    time.Now,
	}
}

// Run executes the command named by args[0].
func (a *App) Run(args []string) error {
	if len(args) == 0 {
		_, err := io.WriteString(a.out, usage)
		return err
	}

	cmd, rest := args[0], args[1:]
	zap.L().Debug("running command", zap.String("command", cmd), zap.Strings("args", rest))

	switch cmd {
	case "uri":
		return a.runURI(rest)
	case "encode":
		return a.runEncode(rest)
	case "headers":
		return a.runHeaders(rest)
	case "cookies":
		return a.runCookies(rest)
	case "location":
		return a.runLocation(rest)
	case "netloc":
		return a.runNetloc(rest)
	case "date":
		return a.runDate(rest)
	case "version":
		return a.runVersion()
	case "help", "-h", "--help":
		_, err := io.WriteString(a.out, usage)
		return err
	default:
		return fmt.Errorf("%w: %q", ErrUnknownCommand, cmd)
	}
}

func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {}
	return fs
}

func (a *App) runURI(args []string) error {
	var (
		query      fieldsFlag
		charset    string
		safe       string
		encodeKeys bool
	)
	fs := newFlagSet("uri")
	fs.VarP(&query, "query", "q", "query parameter as key=value, repeatable")
	fs.StringVar(&charset, "charset", a.cfg.Charset(), "charset for non-ASCII text")
	fs.StringVar(&safe, "safe", a.cfg.SafeChars(), "characters left unescaped in path segments")
	fs.BoolVar(&encodeKeys, "encode-keys", a.cfg.EncodeKeys(), "percent-encode query keys")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}
	if fs.NArg() < 1 {
		return fmt.Errorf("%w: uri needs a base", ErrUsage)
	}

	built, err := uri.Build(fs.Arg(0), fs.Args()[1:], query.params(),
		uri.WithCharset(charset),
		uri.WithSafe(safe),
		uri.WithEncodeKeys(encodeKeys),
	)
	if err != nil {
		return err
	}
	return a.println(built)
}

func (a *App) runEncode(args []string) error {
	var encodeKeys bool
	fs := newFlagSet("encode")
	fs.BoolVar(&encodeKeys, "encode-keys", false, "percent-encode query keys")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}

	var pairs fieldsFlag
	for _, arg := range fs.Args() {
		if err := pairs.Set(arg); err != nil {
			return err
		}
	}

	encoded, err := uri.Encode(pairs.params(),
		uri.WithCharset(a.cfg.Charset()),
		uri.WithEncodeKeys(encodeKeys),
	)
	if err != nil {
		return err
	}
	return a.println(encoded)
}

func (a *App) runHeaders(args []string) error {
	var (
		set          fieldsFlag
		first        bool
		stripHop     bool
		date         bool
		validate     bool
		forwardedFor string
		server       string
		locationHost string
		prefix       string
	)
	fs := newFlagSet("headers")
	fs.VarP(&set, "set", "s", "header to replace or append as Name=Value, repeatable")
	fs.BoolVar(&first, "first", false, "apply each --set on its own instead of in one pass")
	fs.BoolVar(&stripHop, "strip-hop", false, "remove hop-by-hop headers")
	fs.BoolVar(&date, "date", false, "set the Date header to now")
	fs.BoolVar(&validate, "validate", false, "reject invalid header names and values")
	fs.StringVar(&forwardedFor, "forwarded-for", "", "client address to append to X-Forwarded-For")
	fs.StringVar(&server, "server", "", "value for the Server header")
	fs.StringVar(&locationHost, "location-host", "", "backend URI whose Location redirects are rewritten")
	fs.StringVarP(&prefix, "prefix", "p", a.cfg.ProxyPrefix(), "path the proxy is mounted at")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}

	chain := middleware.NewChain()
	if stripHop {
		chain.UseRequestMiddleware(middleware.NewHopByHop())
	}
	if forwardedFor != "" {
		chain.UseRequestMiddleware(middleware.NewForwardedFor(forwardedFor))
	}
	if server != "" {
		chain.UseResponseMiddleware(middleware.NewServerName(server))
	}
	if locationHost != "" {
		chain.UseResponseMiddleware(middleware.NewLocationRewrite(locationHost, prefix))
	}

	headers, err := header.Read(bufio.NewReader(a.in))
	if err != nil {
		return fmt.Errorf("read headers: %w", err)
	}

	if first {
		for _, f := range set.fields {
			headers = header.ReplaceHeader(f.Name, f.Value, headers)
		}
	} else {
		headers = header.ReplaceHeaders(set.fields, headers)
	}

	if date {
		headers = header.ReplaceHeader("Date", header.Date(a.now()), headers)
	}

	if err = chain.ApplyRequestMiddlewares(&headers); err != nil {
		return err
	}
	if err = chain.ApplyResponseMiddlewares(&headers, nil); err != nil {
		return err
	}

	if validate {
		if err = headers.Validate(); err != nil {
			return err
		}
	}

	_, err = a.out.Write(headers.Finalize(nil))
	return err
}

func (a *App) runVersion() error {
	if err := a.println(version.GetVersion()); err != nil {
		return err
	}
	return a.println(a.styles.pair("user-agent", version.UserAgent()))
}

func (a *App) runCookies(args []string) error {
	cookies := cookie.Parse(strings.Join(args, "; "))
	if len(cookies) == 0 {
		return a.println(a.styles.muted.Render("no cookies"))
	}
	for _, name := range sortedKeys(cookies) {
		if err := a.println(a.styles.pair(name, cookies[name])); err != nil {
			return err
		}
	}
	return nil
}

func (a *App) runLocation(args []string) error {
	var prefix string
	fs := newFlagSet("location")
	fs.StringVarP(&prefix, "prefix", "p", a.cfg.ProxyPrefix(), "path the proxy is mounted at")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}
	if fs.NArg() != 2 {
		return fmt.Errorf("%w: location needs HOST_URI and LOCATION", ErrUsage)
	}
	return a.println(location.Rewrite(fs.Arg(0), fs.Arg(1), prefix))
}

func (a *App) runNetloc(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: netloc needs a URL", ErrUsage)
	}
	u, err := url.Parse(args[0])
	if err != nil {
		return fmt.Errorf("%w: %v", uri.ErrInvalidURL, err)
	}
	host, port, err := uri.SplitHostPort(u)
	if err != nil {
		return err
	}
	if err = a.println(a.styles.pair("host", host)); err != nil {
		return err
	}
	return a.println(a.styles.pair("port", strconv.Itoa(port)))
}

func (a *App) runDate(args []string) error {
	switch len(args) {
	case 0:
		return a.println(header.Date(a.now()))
	case 1:
		secs, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("%w: invalid timestamp %q", ErrUsage, args[0])
		}
		return a.println(header.Date(time.Unix(secs, 0)))
	default:
		return fmt.Errorf("%w: date takes at most one timestamp", ErrUsage)
	}
}

func (a *App) println(s string) error {
	_, err := fmt.Fprintln(a.out, s)
	return err
}
