package main

import (
	"context"
	"io"
	"log/slog"

	carbon "github.com/ashton-krac/ibm-carbon-terminal-chatbot"
	"github.com/ashton-krac/ibm-carbon-terminal-chatbot/crawl"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger

	Loader    carbon.DocumentLoader
	Embedder  carbon.Embedder
	Generator carbon.Generator
	Crawler   *crawl.Crawler

	// Factories for path-dependent services; commands supply the flag
	// values at run time.
	NewWriter func(path string) carbon.DocumentWriter
	NewStore  func(dir string) carbon.IndexStore
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Provider string `help:"Model provider for embeddings and answers" enum:"openai,gemini" default:"openai"`
	Verbose  bool   `short:"v" help:"Enable debug logging"`

	Crawl CrawlCmd `cmd:"" help:"Crawl a documentation site into a JSON document file"`
	Build BuildCmd `cmd:"" help:"Build the vector index from a document file"`
	Stats StatsCmd `cmd:"" help:"Show statistics for a document file"`
	Chat  ChatCmd  `cmd:"" help:"Start the interactive chat loop"`
}

// CrawlCmd is the "crawl" subcommand.
type CrawlCmd struct {
	URL         string   `arg:"" optional:"" default:"https://carbondesignsystem.com" help:"Base URL to crawl"`
	Output      string   `short:"o" default:"ibm_carbon_v1.json" help:"Output document file"`
	Filter      []string `short:"F" name:"filter" help:"Filter URLs by regex (repeatable)"`
	Concurrency int      `short:"c" default:"10" help:"Concurrent fetch limit"`
	MaxPages    int      `default:"1000" help:"Maximum pages to crawl"`
}

// BuildCmd is the "build" subcommand.
type BuildCmd struct {
	Docs         string `short:"d" default:"ibm_carbon_v1.json" help:"Input document file"`
	Index        string `short:"i" default:"./vector_db" help:"Index directory"`
	ChunkSize    int    `default:"1000" help:"Chunk size in characters"`
	ChunkOverlap int    `default:"200" help:"Chunk overlap in characters"`
	BatchSize    int    `default:"64" help:"Chunks per embedding request"`
}

// StatsCmd is the "stats" subcommand.
type StatsCmd struct {
	Docs string `short:"d" default:"ibm_carbon_v1.json" help:"Document file to summarize"`
}

// ChatCmd is the "chat" subcommand.
type ChatCmd struct {
	Index string `short:"i" default:"./vector_db" help:"Index directory"`
	TopK  int    `short:"k" default:"2" help:"Chunks retrieved per question"`
}
