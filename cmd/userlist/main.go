// cmd/userlist/main.go
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/yackko/userlist/internal/config"
	"github.com/yackko/userlist/internal/fetch"
	"github.com/yackko/userlist/internal/listctl"
	"github.com/yackko/userlist/tui"
	"github.com/yackko/userlist/types"
)

var version = "dev"

// cfg is filled by the root command before any subcommand runs.
var cfg = config.Default()

var explanations = map[string]map[string]string{
	"sort": {
		"NONE":    "No sort:\n  Rows keep the order the endpoint returned them in, after the country filter.\n  Selected by toggling country sort off (key 's' or the 'Don't sort by country' button).",
		"NAME":    "Sort by name:\n  Ascending by first name, using the collation rules of the configured locale.\n  Users with the same first name keep their relative order.\n  Selected by clicking the Name header or pressing '1'. Clicking again keeps it selected.",
		"LAST":    "Sort by last name:\n  Ascending by last name, locale-aware and stable.\n  Selected by clicking the Last name header or pressing '2'.",
		"COUNTRY": "Sort by country:\n  Ascending by country, locale-aware and stable.\n  Selected by clicking the Country header or pressing '3'.\n  The 's' key and the 'Sort by country' button toggle between this and no sort.",
	},
	"control": {
		"COLORS": "Color rows:\n  Alternates the background of even and odd rows. Order and content do not change.\n  Key 'c' or the 'Color rows' button.",
		"FILTER": "Country filter:\n  Keeps users whose country contains the typed text, ignoring case. Empty shows everyone.\n  Key '/' to type, Enter or Esc to leave the input, Esc again to clear it.",
		"DELETE": "Delete:\n  Removes a user from the list for this session only. Key 'd' on the selected row or click [ x ].",
		"RESET":  "Restore deleted users:\n  Brings back every deleted user in the original order. Sort, filter and colors are kept.\n  Key 'r' or the 'Restore deleted users' button.",
	},
}

var rootCmd = &cobra.Command{
	Use:   "userlist",
	Short: "Userlist fetches random users and lets you filter, sort and prune them in the terminal.",
	Long: `Userlist loads a list of users from the random-user API (or a saved response)
and shows it as an interactive table. Rows can be filtered by country, sorted by
name, last name or country, colored, deleted and restored.

The endpoint can be set with --endpoint, in userlist.yml, or with ` + config.EndpointEnvVar + `.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "help" || cmd.Name() == "version" || cmd.Name() == "explain" ||
			(cmd.Parent() != nil && cmd.Parent().Name() == "help") ||
			strings.HasPrefix(cmd.Use, "completion") {
			return nil
		}
		configPath, _ := cmd.Flags().GetString("config")
		loaded, err := config.Load(configPath, ".")
		if err != nil {
			return err
		}
		if err := applyFlags(cmd, loaded); err != nil {
			cmd.SilenceUsage = true
			return err
		}
		cfg = loaded
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runBrowse(cmd.Context())
	},
}

// applyFlags copies persistent flags the user set over the loaded config.
func applyFlags(cmd *cobra.Command, c *config.Config) error {
	flags := cmd.Flags()
	if flags.Changed("endpoint") {
		c.Endpoint, _ = flags.GetString("endpoint")
	}
	if flags.Changed("results") {
		c.Results, _ = flags.GetInt("results")
	}
	if flags.Changed("seed") {
		c.Seed, _ = flags.GetString("seed")
	}
	if flags.Changed("timeout") {
		c.Timeout, _ = flags.GetDuration("timeout")
	}
	if flags.Changed("input") {
		c.Input, _ = flags.GetString("input")
	}
	if flags.Changed("locale") {
		c.Locale, _ = flags.GetString("locale")
	}
	if flags.Changed("log-file") {
		c.LogFile, _ = flags.GetString("log-file")
	}
	return c.Validate()
}

func newController() *listctl.Controller {
	return listctl.New(
		listctl.WithLogger(log.Default()),
		listctl.WithLocale(listctl.ParseLocale(cfg.Locale)),
		listctl.WithColors(cfg.Colors),
	)
}

// runBrowse starts the TUI. Without a terminal on stdout it prints the table
// instead.
func runBrowse(ctx context.Context) error {
	ctl := newController()
	src := fetch.FromConfig(cfg)
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		if err := ctl.Load(ctx, src); err != nil {
			return fmt.Errorf("failed to load users: %w", err)
		}
		return printUsersTable(os.Stdout, ctl.View(), ctl.ShowColors())
	}

	logFile, err := tea.LogToFile(cfg.LogPath(), "userlist")
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer logFile.Close()
	return tui.Run(ctx, ctl, src)
}

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Open the interactive user table (default)",
	Long: `Fetches the users once and opens the interactive table.
Logs go to the file set by --log-file (default: ` + config.DefaultLogName + ` in the temp dir).
Run 'userlist explain control <name>' for what each control does.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runBrowse(cmd.Context())
	},
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Fetch users once and print the filtered, sorted list",
	Long: `Fetches users, applies the country filter, deletions and sort, and prints the result.
Output can be a table (default), JSON, or the interactive TUI.

Examples:
  userlist list --country per --sort name
  userlist list --sort country --colors --output table
  userlist list --input saved.json --delete 6b7e... --output json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		country, _ := cmd.Flags().GetString("country")
		sortStr, _ := cmd.Flags().GetString("sort")
		deletes, _ := cmd.Flags().GetStringSlice("delete")
		colors, _ := cmd.Flags().GetBool("colors")
		outputFormat, _ := cmd.Flags().GetString("output")

		mode, err := types.ParseSortMode(sortStr)
		if err != nil {
			cmd.SilenceUsage = true
			return err
		}
		outputFormat = strings.ToLower(outputFormat)
		switch outputFormat {
		case "table", "json", "tui":
		default:
			cmd.SilenceUsage = true
			return fmt.Errorf("invalid value for --output: '%s'. Use table, json or tui", outputFormat)
		}

		ctl := newController()
		if err := ctl.Load(cmd.Context(), fetch.FromConfig(cfg)); err != nil {
			return fmt.Errorf("failed to load users: %w", err)
		}
		for _, id := range deletes {
			ctl.DeleteUser(id)
		}
		ctl.SetCountryFilter(country)
		ctl.SetSort(mode)
		if cmd.Flags().Changed("colors") && colors != ctl.ShowColors() {
			ctl.ToggleColors()
		}

		users := ctl.View()
		switch outputFormat {
		case "tui":
			logFile, err := tea.LogToFile(cfg.LogPath(), "userlist")
			if err != nil {
				return fmt.Errorf("failed to open log file: %w", err)
			}
			defer logFile.Close()
			return tui.Run(cmd.Context(), ctl, nil)
		case "json":
			output, errJson := json.MarshalIndent(users, "", "  ")
			if errJson != nil {
				return fmt.Errorf("failed to marshal users to JSON: %w", errJson)
			}
			fmt.Println(string(output))
		default:
			if len(users) == 0 {
				fmt.Println("No users found matching specified criteria.")
				return nil
			}
			return printUsersTable(os.Stdout, users, ctl.ShowColors())
		}
		return nil
	},
}

var explainCmd = &cobra.Command{
	Use:   "explain [category] [term]",
	Short: "Explain a sort mode or a control of the user table.",
	Long: `Provides a short explanation of what a sort mode or control does.
Examples:
  userlist explain sort country
  userlist explain control reset`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		category := strings.ToLower(args[0])
		name := strings.ToUpper(args[1])
		terms, ok := explanations[category]
		if !ok {
			cmd.SilenceUsage = true
			return fmt.Errorf("unknown category for explanation: '%s'. Use 'sort' or 'control'", category)
		}
		explanation, found := terms[name]
		if !found {
			fmt.Fprintf(os.Stderr, "Error: Unknown %s: %s\n", category, args[1])
			fmt.Fprintf(os.Stderr, "Supported %s terms are:\n", category)
			var supported []string
			for k := range terms {
				supported = append(supported, strings.ToLower(k))
			}
			sort.Strings(supported)
			for _, t := range supported {
				fmt.Fprintf(os.Stderr, "  - %s\n", t)
			}
			cmd.SilenceUsage = true
			return fmt.Errorf("explanation not found for %s '%s'", category, args[1])
		}
		fmt.Println(explanation)
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("userlist", version)
	},
}

// addPersistentFlags registers the flags that override userlist.yml.
func addPersistentFlags(pf *pflag.FlagSet) {
	pf.String("config", "", "Config file (default: userlist.yml in the working directory)")
	pf.String("endpoint", config.DefaultEndpoint, "Random-user API endpoint")
	pf.IntP("results", "n", config.DefaultResults, "Number of users to fetch")
	pf.String("seed", "", "Seed so the endpoint returns the same users every time")
	pf.Duration("timeout", config.DefaultTimeout, "Timeout for the fetch (0 disables it)")
	pf.StringP("input", "i", "", "Read a saved API response from this file instead of fetching")
	pf.String("locale", config.DefaultLocale, "BCP 47 locale used for case folding and sorting")
	pf.String("log-file", "", "Log file for the TUI (default: "+config.DefaultLogName+" in the temp dir)")
}

func init() {
	addPersistentFlags(rootCmd.PersistentFlags())

	listCmd.Flags().StringP("country", "c", "", "Keep users whose country contains this text (case-insensitive)")
	listCmd.Flags().StringP("sort", "s", "none", "Sort by: none, name, last or country")
	listCmd.Flags().StringSliceP("delete", "d", nil, "Remove the user with this uuid (repeatable)")
	listCmd.Flags().Bool("colors", false, "Alternate row backgrounds")
	listCmd.Flags().StringP("output", "O", "table", "Output format: table, json, or tui")

	rootCmd.AddCommand(browseCmd, listCmd, explainCmd, versionCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
