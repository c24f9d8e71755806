package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"docview/internal/config"
	"docview/internal/content"
	"docview/internal/editor"
	"docview/internal/imagegen"
	"docview/internal/imaging"
	"docview/internal/render"

	"github.com/spf13/cobra"
)

var (
	rootCmd = &cobra.Command{
		Use:   "docview",
		Short: "Specification document viewer with an embedded AI image tool",
	}
	configPath string

	renderOut string

	editPrompt string
	editRatio  string
	editOut    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "config.yaml", "Path to the configuration file")

	renderCmd.Flags().StringVarP(&renderOut, "out", "o", "", "Write the rendered document to this file instead of stdout")
	editCmd.Flags().StringVarP(&editPrompt, "prompt", "p", "", "Edit instruction for the image model")
	editCmd.Flags().StringVarP(&editRatio, "ratio", "a", editor.DefaultAspectRatio, "Output aspect ratio ("+strings.Join(editor.AspectRatios, ", ")+")")
	editCmd.Flags().StringVarP(&editOut, "out", "o", "", "Path for the generated image (default: under the configured output dir)")

	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(sectionsCmd)
	rootCmd.AddCommand(editCmd)
}

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render the full specification document as Markdown",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.LoadConfig(configPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		title := cfg.Document.Title
		if title == "" {
			title = content.Title
		}

		r := &render.MarkdownRenderer{Diagnostics: log.New(os.Stderr, "docview: ", 0)}
		out := r.RenderDocument(title, content.Sections())

		if renderOut == "" {
			fmt.Print(out)
			return
		}
		if err := os.WriteFile(renderOut, []byte(out), 0644); err != nil {
			log.Fatalf("Failed to write %s: %v", renderOut, err)
		}
		fmt.Printf("📄 Document written to %s\n", renderOut)
	},
}

var sectionsCmd = &cobra.Command{
	Use:   "sections",
	Short: "List the document's sections",
	Run: func(cmd *cobra.Command, args []string) {
		for _, s := range content.Sections() {
			fmt.Printf("%-16s %s (%d blocks)\n", s.ID, s.Title, len(s.Blocks))
		}
	},
}

var editCmd = &cobra.Command{
	Use:   "edit [image]",
	Short: "Send an image and an instruction to the generative image model",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if editPrompt == "" {
			log.Fatalf("An edit instruction is required (-p)")
		}

		cfg, err := config.LoadConfig(configPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		if cfg.AI.APIKey == "" {
			log.Fatalf("AI API key not configured (set DOCVIEW_API_KEY or ai.api_key in %s)", configPath)
		}

		ctx := context.Background()

		img, err := imaging.EncodeFile(args[0])
		if err != nil {
			log.Fatalf("Failed to read image: %v", err)
		}
		fmt.Printf("🖼  Source: %s (%s, %d bytes)\n", args[0], img.MediaType, len(img.Data))

		generator, err := imagegen.NewGeminiGenerator(ctx, cfg.AI.APIKey, cfg.AI.Model)
		if err != nil {
			log.Fatalf("Failed to create generator: %v", err)
		}

		done := make(chan editor.Snapshot, 1)
		session := editor.NewSession(generator, func(snap editor.Snapshot) {
			switch snap.Status {
			case editor.StatusInFlight:
				fmt.Printf("✨ Session %s: generating with %s (%s)...\n", snap.ID, cfg.AI.Model, snap.AspectRatio)
			case editor.StatusSucceeded, editor.StatusFailed:
				select {
				case done <- snap:
				default:
				}
			}
		})

		session.SetSource(img)
		session.SetInstruction(editPrompt)
		if err := session.SetAspectRatio(editRatio); err != nil {
			log.Fatalf("Invalid aspect ratio %q (choose one of %s)", editRatio, strings.Join(editor.AspectRatios, ", "))
		}
		if err := session.Generate(ctx); err != nil {
			log.Fatalf("Failed to start generation: %v", err)
		}

		snap := <-done
		if snap.Status == editor.StatusFailed {
			if errors.Is(snap.Err, imagegen.ErrNoImage) {
				fmt.Printf("ℹ️  %s\n", snap.ErrorDetail)
			} else {
				fmt.Printf("❌ Generation failed: %s\n", snap.ErrorDetail)
			}
			os.Exit(1)
		}

		out := editOut
		if out == "" {
			if err := os.MkdirAll(cfg.Output.Dir, 0755); err != nil {
				log.Fatalf("Failed to create output dir: %v", err)
			}
			base := strings.TrimSuffix(filepath.Base(args[0]), filepath.Ext(args[0]))
			out = filepath.Join(cfg.Output.Dir, base+"_edited"+imaging.ExtensionFor(snap.Result.MediaType))
		}
		if err := os.WriteFile(out, snap.Result.Data, 0644); err != nil {
			log.Fatalf("Failed to write result: %v", err)
		}
		fmt.Printf("✅ Result (%s, %d bytes) written to %s\n", snap.Result.MediaType, len(snap.Result.Data), out)
	},
}
