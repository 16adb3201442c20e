package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/yourusername/explorer-position/internal/config"
	"github.com/yourusername/explorer-position/internal/logging"
	"github.com/yourusername/explorer-position/internal/output"
	"github.com/yourusername/explorer-position/internal/placement"
	"github.com/yourusername/explorer-position/internal/platform"
	_ "github.com/yourusername/explorer-position/internal/platform/win32"
	"github.com/yourusername/explorer-position/internal/reposition"
	"github.com/yourusername/explorer-position/internal/types"
)

var (
	configPath string
	jsonOutput bool
	noColor    bool
	debugMode  bool

	// Loaded once in PersistentPreRunE
	cfg    *config.Config
	cfgErr error

	// Color functions
	successColor = color.New(color.FgGreen, color.Bold)
	errorColor   = color.New(color.FgRed, color.Bold)
	infoColor    = color.New(color.FgCyan)
)

// rootCmd is the base command. Without a subcommand it runs the daemon.
var rootCmd = &cobra.Command{
	Use:   "explorerpos",
	Short: "Open File Explorer windows under the mouse cursor",
	Long: `explorerpos watches for newly shown File Explorer windows and moves them
to the monitor under the mouse cursor, kept inside that monitor's work area.

Run without a subcommand to start watching. The other commands inspect the
monitor layout and preview placements without moving anything.`,
	Version:           "0.1.0",
	PersistentPreRunE: setup,
	RunE:              runDaemon,
}

// runCmd is an explicit alias for the default action
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Watch for Explorer windows and reposition them",
	RunE:  runDaemon,
}

// monitorsCmd lists monitors
var monitorsCmd = &cobra.Command{
	Use:   "monitors",
	Short: "List monitors with their bounds and work areas",
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := platform.NewProvider()
		if err != nil {
			printError(fmt.Sprintf("Platform unavailable: %v", err))
			return err
		}

		monitors, err := p.Desktop.Monitors()
		if err != nil {
			printError(fmt.Sprintf("Failed to enumerate monitors: %v", err))
			return err
		}

		if jsonOutput {
			return printJSON(monitors)
		}

		output.PrintMonitorsTable(os.Stdout, monitors)
		return nil
	},
}

// showCmd draws the monitor layout
var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Visualize monitors and the placement of a new window",
	Long: `Draws all monitors with their taskbar strips, the cursor and where a window
of the given size would be placed if it opened now.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := requireConfig().PlacementOptions()
		if err != nil {
			return err
		}

		p, err := platform.NewProvider()
		if err != nil {
			printError(fmt.Sprintf("Platform unavailable: %v", err))
			return err
		}

		monitors, err := p.Desktop.Monitors()
		if err != nil {
			printError(fmt.Sprintf("Failed to enumerate monitors: %v", err))
			return err
		}

		cursor, err := cursorFromFlag(p, showCursor)
		if err != nil {
			return err
		}

		width, height, err := config.ParseSize(showWindow)
		if err != nil {
			return err
		}

		preview := output.Preview{Monitors: monitors, Cursor: &cursor}
		window := previewWindow(cursor, monitors, width, height)
		result, err := placement.Compute(placementRequest(cursor, monitors, window), opts)
		if err != nil {
			printError(err.Error())
		} else {
			preview.Placement = &result
		}

		output.PrintVisualization(os.Stdout, preview, getVisualizationOptions())
		return nil
	},
}

var (
	showWindow  string
	showCursor  string
	showASCII   bool
	showUnicode bool
	showWidth   int
	showHeight  int
)

// placeCmd runs the engine without moving anything
var placeCmd = &cobra.Command{
	Use:   "place",
	Short: "Compute where a window would be placed (dry run)",
	Long: `Runs the placement engine against the live monitor layout for a window with
the given outer bounds. No window is moved.`,
	Example: `  explorerpos place --window 100,100,900,700
  explorerpos place --cursor -1200,400 --window 100,100,900,700 --json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := requireConfig().PlacementOptions()
		if err != nil {
			return err
		}

		window, err := config.ParseRect(placeWindow)
		if err != nil {
			return err
		}

		p, err := platform.NewProvider()
		if err != nil {
			printError(fmt.Sprintf("Platform unavailable: %v", err))
			return err
		}

		monitors, err := p.Desktop.Monitors()
		if err != nil {
			printError(fmt.Sprintf("Failed to enumerate monitors: %v", err))
			return err
		}

		cursor, err := cursorFromFlag(p, placeCursor)
		if err != nil {
			return err
		}

		result, err := placement.Compute(placementRequest(cursor, monitors, window), opts)
		if err != nil {
			printError(err.Error())
			return err
		}

		if jsonOutput {
			return printJSON(map[string]interface{}{
				"cursor": cursor,
				"window": window,
				"result": result,
			})
		}

		output.PrintPlacement(os.Stdout, cursor, window, monitors, result)
		return nil
	},
}

var (
	placeWindow string
	placeCursor string
)

// MARK: - Config Commands

// configCmd is the parent command for config subcommands
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long:  `Commands for showing, validating and creating the configuration file.`,
}

// configShowCmd shows the effective config
var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfgErr != nil {
			return fmt.Errorf("failed to load config: %w", cfgErr)
		}

		if jsonOutput {
			return printJSON(cfg)
		}

		data, err := yaml.Marshal(cfg)
		if err != nil {
			return err
		}
		fmt.Print(string(data))
		return nil
	},
}

// configValidateCmd validates a config file
var configValidateCmd = &cobra.Command{
	Use:   "validate [path]",
	Short: "Validate configuration file",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := configPath
		if len(args) > 0 {
			path = args[0]
		}

		c, err := config.LoadConfig(path)
		if err != nil {
			return fmt.Errorf("validation failed: %w", err)
		}

		opts, err := c.PlacementOptions()
		if err != nil {
			return fmt.Errorf("validation failed: %w", err)
		}

		successColor.Println("✓ Configuration is valid")
		fmt.Printf("  Target: %s / %s\n", c.TargetProcess(), c.TargetClass())
		fmt.Printf("  Position under cursor: %v\n", opts.PositionUnderCursor)
		fmt.Printf("  Edge margin: %d/%d\n", opts.Margin.X, opts.Margin.Y)
		if opts.UseTaskbarMargin {
			fmt.Printf("  Taskbar margin: %d/%d\n", opts.TaskbarMargin.X, opts.TaskbarMargin.Y)
		}

		return nil
	},
}

// configInitCmd creates the default config file
var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create default configuration file",
	RunE: func(cmd *cobra.Command, args []string) error {
		path := configPath
		if path == "" {
			path = config.GetConfigPath()
		}

		if err := config.WriteDefault(path); err != nil {
			return err
		}

		successColor.Printf("✓ Created config at %s\n", path)
		return nil
	},
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file path (default: user config dir)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(monitorsCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(placeCmd)

	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configValidateCmd)
	configCmd.AddCommand(configInitCmd)

	showCmd.Flags().StringVar(&showWindow, "window", "800x600", "Size of the previewed window (WxH)")
	showCmd.Flags().StringVar(&showCursor, "cursor", "", "Cursor position X,Y (default: live cursor)")
	showCmd.Flags().BoolVar(&showASCII, "ascii", false, "Force ASCII mode (no Unicode)")
	showCmd.Flags().BoolVar(&showUnicode, "unicode", false, "Force Unicode mode")
	showCmd.Flags().IntVar(&showWidth, "width", 0, "Override terminal width")
	showCmd.Flags().IntVar(&showHeight, "height", 0, "Override terminal height")

	placeCmd.Flags().StringVar(&placeWindow, "window", "", "Current window bounds L,T,R,B")
	placeCmd.Flags().StringVar(&placeCursor, "cursor", "", "Cursor position X,Y (default: live cursor)")
	placeCmd.MarkFlagRequired("window")

	// Disable color if requested
	cobra.OnInitialize(func() {
		if noColor {
			color.NoColor = true
		}
	})
}

func main() {
	os.Exit(run())
}

// run executes the command tree and returns the process exit code. The log
// file is closed before main exits.
func run() int {
	defer logging.Close()

	if err := rootCmd.Execute(); err != nil {
		return 1
	}
	return 0
}

// setup loads the config and starts logging. A broken config file does not
// stop the config commands from running; requireConfig reports it.
func setup(cmd *cobra.Command, args []string) error {
	cfg, cfgErr = config.LoadConfig(configPath)

	logCfg := config.DefaultConfig()
	if cfgErr == nil {
		logCfg = cfg
	}

	if err := logging.Init(logCfg.Logging.File); err != nil {
		logging.InitWriter(os.Stderr)
		logging.Warn().Err(err).Msg("log file unavailable, logging to stderr")
	}
	if err := logging.SetLevel(logCfg.LogLevel()); err != nil {
		return err
	}
	if debugMode {
		logging.SetDebug(true)
	}

	return nil
}

// runDaemon watches for windows until interrupted
func runDaemon(cmd *cobra.Command, args []string) error {
	c := requireConfig()
	if cfgErr != nil {
		printError(cfgErr.Error())
		return cfgErr
	}

	p, err := platform.NewProvider()
	if err != nil {
		printError(fmt.Sprintf("Platform unavailable: %v", err))
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = reposition.Run(ctx, p, c)
	if errors.Is(err, reposition.ErrAlreadyRunning) {
		infoColor.Println("Another instance is already running")
		return nil
	}
	if err != nil {
		logging.Error().Err(err).Msg("stopped")
		printError(err.Error())
		return err
	}

	logging.Info().Msg("stopped")
	return nil
}

// Helper functions

func printJSON(data interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}

func printError(msg string) {
	if noColor {
		fmt.Fprintln(os.Stderr, "Error:", msg)
	} else {
		errorColor.Fprint(os.Stderr, "✗ Error: ")
		fmt.Fprintln(os.Stderr, msg)
	}
}

// requireConfig returns the loaded config, or defaults when loading failed
func requireConfig() *config.Config {
	if cfgErr != nil || cfg == nil {
		return config.DefaultConfig()
	}
	return cfg
}

// cursorFromFlag parses "X,Y" or reads the live cursor when empty
func cursorFromFlag(p *platform.Provider, flag string) (types.Point, error) {
	if flag != "" {
		return config.ParsePoint(flag)
	}
	cursor, err := p.Desktop.CursorPos()
	if err != nil {
		printError(fmt.Sprintf("Failed to read cursor: %v", err))
		return types.Point{}, err
	}
	return cursor, nil
}

func placementRequest(cursor types.Point, monitors []types.Monitor, window types.Rect) placement.Request {
	return placement.Request{
		Cursor:   cursor,
		Monitors: monitors,
		Window:   window,
		Current:  types.NearestMonitor(window, monitors),
	}
}

// previewWindow puts a window of the given size at the origin of the work
// area under the cursor, where Explorer would open it before being moved
func previewWindow(cursor types.Point, monitors []types.Monitor, width, height int32) types.Rect {
	if i, ok := types.FindMonitorContaining(cursor, monitors); ok {
		wa := monitors[i].WorkArea
		return types.RectFromSize(wa.Left, wa.Top, width, height)
	}
	return types.RectFromSize(0, 0, width, height)
}

// getVisualizationOptions builds options from flags
func getVisualizationOptions() output.VisualizationOptions {
	opts := output.DefaultVisualizationOptions()

	if showASCII {
		opts.UseUnicode = false
	}
	if showUnicode {
		opts.UseUnicode = true
	}
	if showWidth > 0 {
		opts.MaxWidth = showWidth
	}
	if showHeight > 0 {
		opts.MaxHeight = showHeight
	}

	return opts
}
