package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/michellehirsch/matlab-custom-doc-prototype/internal/config"
	"github.com/michellehirsch/matlab-custom-doc-prototype/internal/parse"
	"github.com/michellehirsch/matlab-custom-doc-prototype/internal/render"
	"github.com/michellehirsch/matlab-custom-doc-prototype/internal/resolve"
	"github.com/michellehirsch/matlab-custom-doc-prototype/internal/site"
	"github.com/michellehirsch/matlab-custom-doc-prototype/internal/storage"
)

var (
	rootCmd = &cobra.Command{
		Use:   "matdoc",
		Short: "Reference documentation generator for comment-documented sources",
	}
	dbPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&dbPath, "db", "d", "matdoc.db", "Path to the page cache database (SQLite)")

	pageCmd.Flags().StringP("output", "o", "", "Write the page to this file instead of stdout")
	pageCmd.Flags().Bool("text", false, "Emit the plain-text rendition instead of HTML")

	updateCmd.Flags().String("base", "HEAD", "Git ref to diff against")

	rootCmd.AddCommand(pageCmd)
	rootCmd.AddCommand(siteCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(watchCmd)
}

func newBuilder(withStore bool) (*site.Builder, func(), error) {
	cfg, err := config.Load("matdoc.yaml")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}
	b := &site.Builder{Config: cfg}
	closeFn := func() {}
	if withStore {
		store, err := storage.NewSQLiteStore(dbPath)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open cache database: %w", err)
		}
		b.Store = store
		closeFn = func() { store.Close() }
	}
	return b, closeFn, nil
}

var pageCmd = &cobra.Command{
	Use:   "page <file>",
	Short: "Render the reference page for a single source file",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		data, err := os.ReadFile(args[0])
		if err != nil {
			log.Fatalf("Failed to read %s: %v", args[0], err)
		}
		unit, err := parse.ParseSource(string(data))
		if err != nil {
			log.Fatalf("Failed to parse %s: %v", args[0], err)
		}
		resolve.Apply(unit)

		var out string
		if text, _ := cmd.Flags().GetBool("text"); text {
			out = render.Text(unit)
		} else {
			r := render.New(render.Options{})
			out = r.Page(unit)
		}

		if dest, _ := cmd.Flags().GetString("output"); dest != "" {
			if err := os.WriteFile(dest, []byte(out), 0o644); err != nil {
				log.Fatalf("Failed to write %s: %v", dest, err)
			}
			return
		}
		fmt.Print(out)
	},
}

var siteCmd = &cobra.Command{
	Use:   "site",
	Short: "Build the full reference site",
	Run: func(cmd *cobra.Command, args []string) {
		b, closeFn, err := newBuilder(true)
		if err != nil {
			log.Fatal(err)
		}
		defer closeFn()

		n, err := b.Build(context.Background())
		if err != nil {
			log.Fatalf("Build failed: %v", err)
		}
		fmt.Printf("Built %d pages into %s\n", n, b.Config.Site.OutputDir)
	},
}

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Incrementally rebuild pages for files changed since a git ref",
	Run: func(cmd *cobra.Command, args []string) {
		b, closeFn, err := newBuilder(true)
		if err != nil {
			log.Fatal(err)
		}
		defer closeFn()

		base, _ := cmd.Flags().GetString("base")
		res, err := b.Update(context.Background(), base)
		if err != nil {
			log.Fatalf("Update failed: %v", err)
		}
		fmt.Printf("Rendered %d, removed %d, skipped %d\n", res.Rendered, res.Removed, res.Skipped)
	},
}

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Rebuild the site whenever sources change",
	Run: func(cmd *cobra.Command, args []string) {
		b, closeFn, err := newBuilder(true)
		if err != nil {
			log.Fatal(err)
		}
		defer closeFn()

		if _, err := b.Build(context.Background()); err != nil {
			log.Fatalf("Initial build failed: %v", err)
		}
		fmt.Println("Watching for changes...")
		if err := b.Watch(context.Background()); err != nil && err != context.Canceled {
			log.Fatalf("Watch failed: %v", err)
		}
	},
}
