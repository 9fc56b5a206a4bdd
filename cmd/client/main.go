package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"profrate/internal/client"
	"profrate/internal/module"
)

const usage = `Professor rating command-line client

Usage:
  client [global flags] <command> [flags]

Commands:
  register   Register a new user
  login      Log in and remember the token
  logout     Log out of the current session
  list       List module instances and professors
  view       View the rating of every professor
  average    View the average rating of a professor in a module
  rate       Rate a professor for a module instance

Global flags:
`

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdin, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

type cli struct {
	api       *client.Client
	tokenFile string
	in        *bufio.Reader
	out       io.Writer
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout io.Writer) error {
	global := flag.NewFlagSet("client", flag.ContinueOnError)
	global.SetOutput(stdout)
	baseURL := global.String("url", envOr("PROFRATE_URL", "http://127.0.0.1:8080"), "API base URL")
	tokenFile := global.String("token-file", ".profrate-token", "File that stores the login token")
	timeout := global.Duration("timeout", 30*time.Second, "Overall timeout per command")
	global.Usage = func() {
		fmt.Fprint(stdout, usage)
		global.PrintDefaults()
	}
	if err := global.Parse(args); err != nil {
		return err
	}
	if global.NArg() == 0 {
		global.Usage()
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, *timeout)
	defer cancel()

	c := &cli{tokenFile: *tokenFile, in: bufio.NewReader(stdin), out: stdout}
	opts := []client.Option{}
	if token, err := client.LoadToken(*tokenFile); err == nil {
		opts = append(opts, client.WithToken(token))
	}
	c.api = client.New(*baseURL, opts...)

	command, rest := global.Arg(0), global.Args()[1:]
	switch command {
	case "register":
		return c.register(ctx, rest)
	case "login":
		return c.login(ctx, rest)
	case "logout":
		return c.logout(ctx)
	case "list":
		return c.list(ctx)
	case "view":
		return c.view(ctx)
	case "average":
		return c.average(ctx, rest)
	case "rate":
		return c.rate(ctx, rest)
	default:
		global.Usage()
		return fmt.Errorf("unknown command %q", command)
	}
}

func (c *cli) register(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("register", flag.ContinueOnError)
	username := fs.String("username", "", "Username")
	email := fs.String("email", "", "Email address")
	password := fs.String("password", "", "Password (prompted when empty)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := c.ask("Enter username: ", username); err != nil {
		return err
	}
	if err := c.ask("Enter email: ", email); err != nil {
		return err
	}
	if err := c.ask("Enter password: ", password); err != nil {
		return err
	}

	sess, err := c.api.Register(ctx, *username, *email, *password)
	if err != nil {
		return err
	}
	if err := client.SaveToken(c.tokenFile, sess.Token); err != nil {
		return err
	}
	fmt.Fprintf(c.out, "Registration successful, logged in as %s\n", sess.Username)
	return nil
}

func (c *cli) login(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("login", flag.ContinueOnError)
	username := fs.String("username", "", "Username")
	password := fs.String("password", "", "Password (prompted when empty)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := c.ask("Enter username: ", username); err != nil {
		return err
	}
	if err := c.ask("Enter password: ", password); err != nil {
		return err
	}

	sess, err := c.api.Login(ctx, *username, *password)
	if err != nil {
		return err
	}
	if err := client.SaveToken(c.tokenFile, sess.Token); err != nil {
		return err
	}
	fmt.Fprintln(c.out, "Login successful")
	return nil
}

func (c *cli) logout(ctx context.Context) error {
	if c.api.Token() == "" {
		return client.ErrNoToken
	}
	if err := c.api.Logout(ctx); err != nil {
		return err
	}
	if err := client.RemoveToken(c.tokenFile); err != nil {
		return err
	}
	fmt.Fprintln(c.out, "Logout successful")
	return nil
}

func (c *cli) list(ctx context.Context) error {
	instances, err := c.api.ListInstances(ctx, module.ListQuery{})
	if err != nil {
		return err
	}
	client.PrintInstances(c.out, instances)
	return nil
}

func (c *cli) view(ctx context.Context) error {
	rows, err := c.api.Overview(ctx)
	if err != nil {
		return err
	}
	client.PrintOverview(c.out, rows)
	return nil
}

func (c *cli) average(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("average", flag.ContinueOnError)
	professorID := fs.Int64("professor", 0, "Professor id")
	code := fs.String("module", "", "Module code")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *professorID <= 0 || *code == "" {
		return errors.New("average needs -professor and -module")
	}

	avg, err := c.api.ModuleAverage(ctx, *professorID, *code)
	if err != nil {
		return err
	}
	client.PrintModuleAverage(c.out, avg)
	return nil
}

func (c *cli) rate(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("rate", flag.ContinueOnError)
	professorID := fs.Int64("professor", 0, "Professor id")
	code := fs.String("module", "", "Module code")
	year := fs.Int("year", 0, "Academic year, e.g. 2023")
	semester := fs.Int("semester", 0, "Semester (1 or 2)")
	score := fs.Int("score", 0, "Rating (1-5)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *professorID <= 0 || *code == "" || *year == 0 || *semester == 0 {
		return errors.New("rate needs -professor, -module, -year, -semester and -score")
	}

	outcome, _, err := c.api.Rate(ctx, client.RateInput{
		ProfessorID: *professorID,
		ModuleCode:  strings.ToUpper(*code),
		Year:        *year,
		Semester:    module.Semester(*semester),
		Score:       *score,
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(c.out, "Rating %s successfully\n", outcome)
	return nil
}

// ask prompts for *v on stdin unless it was given as a flag.
func (c *cli) ask(prompt string, v *string) error {
	if *v != "" {
		return nil
	}
	fmt.Fprint(c.out, prompt)
	line, err := c.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	*v = strings.TrimSpace(line)
	if *v == "" {
		return fmt.Errorf("%s is required", strings.TrimSuffix(strings.TrimPrefix(prompt, "Enter "), ": "))
	}
	return nil
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
