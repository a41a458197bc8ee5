package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/toolmedia"
	"github.com/fwojciec/toolmedia/sqlite"
	"github.com/joho/godotenv"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path used when TOOLMEDIA_DB and --db are unset.
	DBPath string

	// EnvFile is a dotenv file supplying environment defaults. Variables
	// already set in the process environment take precedence. A missing
	// file is ignored; an empty path disables loading.
	EnvFile string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Fetcher replaces the network fetcher for end-to-end testing.
	Fetcher toolmedia.Fetcher

	// Runs replaces the SQLite run store for end-to-end testing.
	Runs toolmedia.RunService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath:  defaultDBPath(),
		EnvFile: ".env",
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	dotenv, err := m.readEnvFile()
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", m.EnvFile, err)
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("toolmedia"),
		kong.Description("Discover screenshots and videos for an AI tool's website"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
		kong.Resolvers(dotenvResolver(dotenv)),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'toolmedia --help' to see available commands")
	}

	if args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	cmd := strings.Fields(kongCtx.Command())[0]

	cfg := toolmedia.Config{
		ScreenshotAPIKey: cli.ScreenshotAPIKey,
		VideoAPIKey:      cli.VideoAPIKey,
	}

	needsRuns := cmd == "runs" || cmd == "show" || cmd == "delete" || (cmd == "discover" && cli.Discover.Save)
	if needsRuns {
		deps.Runs = m.Runs
		if deps.Runs == nil {
			dbPath := m.DBPath
			if cli.DB != "" {
				dbPath = cli.DB
			}
			m.DB = sqlite.NewDB(dbPath)
			if err := m.DB.Open(); err != nil {
				fmt.Fprintf(stderr, "Hint: Set TOOLMEDIA_DB to use a different database path\n")
				return fmt.Errorf("failed to open database at %q: %w", dbPath, err)
			}
			defer m.Close()
			deps.Runs = sqlite.NewRunService(m.DB)
		}
	}

	switch cmd {
	case "discover":
		engine, cleanup, err := m.newEngine(cfg, cli.Discover.engineOptions(), stderr)
		if err != nil {
			return err
		}
		defer cleanup()
		deps.Engine = engine
	case "profile":
		engine, cleanup, err := m.newEngine(cfg, cli.Profile.engineOptions(), stderr)
		if err != nil {
			return err
		}
		defer cleanup()
		deps.Engine = engine
	}

	return kongCtx.Run(deps)
}

// readEnvFile returns the variables of m.EnvFile, or nil when it is unset
// or missing.
func (m *Main) readEnvFile() (map[string]string, error) {
	if m.EnvFile == "" {
		return nil, nil
	}
	vars, err := godotenv.Read(m.EnvFile)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	return vars, err
}

// dotenvResolver supplies flag values from dotenv variables named by the
// flag's env tag, unless the process environment already sets them.
func dotenvResolver(vars map[string]string) kong.Resolver {
	return kong.ResolverFunc(func(_ *kong.Context, _ *kong.Path, flag *kong.Flag) (any, error) {
		for _, env := range flag.Envs {
			if _, ok := os.LookupEnv(env); ok {
				return nil, nil
			}
			if v, ok := vars[env]; ok {
				return v, nil
			}
		}
		return nil, nil
	})
}

func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "toolmedia.db"
	}
	dir := filepath.Join(home, ".toolmedia")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "toolmedia.db")
}

// printError writes err to w in the CLI's error format.
func printError(w io.Writer, err error) {
	var e *toolmedia.Error
	if errors.As(err, &e) {
		fmt.Fprintf(w, "error: %s\n", e.Message)
		return
	}
	fmt.Fprintf(w, "error: %v\n", err)
}
