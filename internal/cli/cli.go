// Package cli parses command line flags and drives either a one-shot
// generation run or the HTTP server.
package cli

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"

	"github.com/smartmcq/mcqgen/internal/config"
	"github.com/smartmcq/mcqgen/internal/core"
	"github.com/smartmcq/mcqgen/internal/domain"
	"github.com/smartmcq/mcqgen/internal/export"
	"github.com/smartmcq/mcqgen/internal/extract"
	"github.com/smartmcq/mcqgen/internal/log"
	"github.com/smartmcq/mcqgen/internal/normalize"
	"github.com/smartmcq/mcqgen/internal/plugins/ai"
	"github.com/smartmcq/mcqgen/internal/plugins/ai/groq"
	"github.com/smartmcq/mcqgen/internal/server"
)

// Flags holds every command line option.
type Flags struct {
	Topic        string `short:"t" long:"topic" description:"Topic or content to generate questions from"`
	File         string `short:"f" long:"file" description:"Read content from a text or PDF file"`
	Num          int    `short:"n" long:"num" default:"10" description:"Number of questions to generate"`
	Level        string `long:"level" default:"Medium" description:"Difficulty level (Easy, Medium, Hard)"`
	Grade        string `long:"grade" default:"High School" description:"Target audience"`
	PDFPath      string `long:"pdf" description:"Write a PDF worksheet to this path"`
	CSVPath      string `long:"csv" description:"Write a CSV export to this path"`
	NoAnswers    bool   `long:"no-answers" description:"Omit answers and explanations from the PDF"`
	ExamMode     bool   `long:"exam-mode" description:"Questions only, answers stripped everywhere"`
	Serve        bool   `long:"serve" description:"Run the HTTP API server instead of a one-shot generation"`
	Addr         string `long:"addr" description:"Listen address for --serve (overrides config)"`
	Config       string `long:"config" description:"Path to a YAML config file"`
	RawTransport bool   `long:"raw-transport" description:"Use the plain HTTP client instead of the OpenAI SDK"`
	Verbose      []bool `short:"v" long:"verbose" description:"Increase debug output (repeatable)"`
}

// Run parses args and executes the selected mode.
func Run(args []string) error {
	var opts Flags
	parser := flags.NewParser(&opts, flags.Default)
	parser.Usage = "[OPTIONS]"
	if _, err := parser.ParseArgs(args); err != nil {
		if flags.WroteHelp(err) {
			return nil
		}
		return err
	}

	log.SetLevel(log.LevelFromInt(len(opts.Verbose)))

	cfg, err := config.Load(opts.Config)
	if err != nil {
		return err
	}
	if opts.RawTransport {
		cfg.RawTransport = true
	}
	if opts.Addr != "" {
		cfg.HTTPAddr = opts.Addr
	}

	vendor := buildVendor(cfg)
	generator := core.NewGenerator(vendor, ai.Options{
		Model:       cfg.Model,
		Temperature: 0.7,
		MaxTokens:   4000,
	})

	if opts.Serve {
		return serve(cfg, generator)
	}
	return oneShot(&opts, generator)
}

func buildVendor(cfg *config.Config) ai.Vendor {
	if cfg.RawTransport {
		return groq.NewHTTPClient(cfg.APIKey, cfg.BaseURL)
	}
	return groq.NewClient(cfg.APIKey, cfg.BaseURL)
}

func serve(cfg *config.Config, generator *core.Generator) error {
	if cfg.AccessCode == "" {
		return errors.New("serve mode needs an access code (MCQGEN_ACCESS_CODE)")
	}
	if cfg.JWTSecret == "" {
		return errors.New("serve mode needs a signing secret (MCQGEN_JWT_SECRET)")
	}

	auth := server.NewAuthService(cfg.AccessCode, cfg.JWTSecret)
	srv := server.New(auth, generator)
	log.Debugf(log.Basic, "listening on %s", cfg.HTTPAddr)
	return http.ListenAndServe(cfg.HTTPAddr, srv.Routes(cfg.CORSOrigins))
}

func oneShot(opts *Flags, generator *core.Generator) error {
	content, err := resolveContent(opts)
	if err != nil {
		return err
	}

	params := domain.GenerationParams{
		Content: content,
		Level:   opts.Level,
		Grade:   opts.Grade,
		NumMCQs: opts.Num,
	}
	raw, err := generator.Generate(context.Background(), params)
	if err != nil {
		return err
	}

	records := normalize.Normalize(raw)
	meta := domain.GenerationMeta{
		Level:       opts.Level,
		Grade:       opts.Grade,
		NumMCQs:     opts.Num,
		GeneratedAt: time.Now(),
	}
	exportOpts := domain.ExportOptions{
		IncludeAnswers: !opts.NoAnswers,
		ExamMode:       opts.ExamMode,
	}

	wrote := false
	if opts.CSVPath != "" {
		if err := writeFile(opts.CSVPath, func(f *os.File) error {
			return export.WriteCSV(f, records, raw, meta)
		}); err != nil {
			return err
		}
		fmt.Printf("wrote %d questions to %s\n", len(records), opts.CSVPath)
		wrote = true
	}
	if opts.PDFPath != "" {
		if err := writeFile(opts.PDFPath, func(f *os.File) error {
			return export.WritePDF(f, records, raw, meta, exportOpts)
		}); err != nil {
			return err
		}
		fmt.Printf("wrote %d questions to %s\n", len(records), opts.PDFPath)
		wrote = true
	}
	if !wrote {
		fmt.Println(raw)
	}
	return nil
}

// resolveContent picks the generation input: --file wins over --topic.
func resolveContent(opts *Flags) (string, error) {
	if opts.File != "" {
		data, err := os.ReadFile(opts.File)
		if err != nil {
			return "", err
		}
		return extract.FromUpload(opts.File, data)
	}
	if strings.TrimSpace(opts.Topic) != "" {
		return opts.Topic, nil
	}
	return "", errors.New("either --topic or --file is required")
}

func writeFile(path string, render func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := render(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
