package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/promptsmith/promptsmith-cli/internal/adapters/driven/config/file"
	"github.com/promptsmith/promptsmith-cli/internal/adapters/driven/embedding/gemini"
	"github.com/promptsmith/promptsmith-cli/internal/adapters/driven/embedding/openai"
	"github.com/promptsmith/promptsmith-cli/internal/adapters/driven/loader/filesystem"
	profilesfile "github.com/promptsmith/promptsmith-cli/internal/adapters/driven/profiles/file"
	templatesfile "github.com/promptsmith/promptsmith-cli/internal/adapters/driven/templates/file"
	"github.com/promptsmith/promptsmith-cli/internal/adapters/driven/vector/chromem"
	"github.com/promptsmith/promptsmith-cli/internal/adapters/driving/cli"
	"github.com/promptsmith/promptsmith-cli/internal/chunker"
	"github.com/promptsmith/promptsmith-cli/internal/core/ports/driven"
	"github.com/promptsmith/promptsmith-cli/internal/core/services"
	"github.com/promptsmith/promptsmith-cli/internal/logger"
)

func main() {
	cli.OnConfigure(buildApp)
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}

// buildApp wires adapters and services once flags are parsed.
func buildApp(configDir string) error {
	cfg, err := file.NewConfigStore(configDir)
	if err != nil {
		return fmt.Errorf("open config: %w", err)
	}
	baseDir := filepath.Dir(cfg.Path())

	dir := func(key, fallback string) string {
		if v := cfg.GetString(key); v != "" {
			return v
		}
		return filepath.Join(baseDir, fallback)
	}

	profiles, err := profilesfile.NewStore(dir(file.KeyProfilesDir, "profiles"))
	if err != nil {
		return fmt.Errorf("open profile store: %w", err)
	}
	registry, err := services.NewRegistryService(profiles)
	if err != nil {
		return err
	}

	templates, err := templatesfile.NewStore(dir(file.KeyTemplatesDir, "templates"))
	if err != nil {
		return fmt.Errorf("open template store: %w", err)
	}

	index := chromem.New(dir(file.KeyIndexDir, "index"))
	embedder := buildEmbedder(cfg)

	var assemblyOpts []services.AssemblyOption
	if k := cfg.GetInt(file.KeyRetrievalK); k > 0 {
		assemblyOpts = append(assemblyOpts, services.WithRetrievalK(k))
	}
	if _, ok := cfg.Get(file.KeyRelevanceThreshold); ok {
		assemblyOpts = append(assemblyOpts, services.WithRelevanceThreshold(cfg.GetFloat(file.KeyRelevanceThreshold)))
	}
	assembly := services.NewAssemblyService(registry, templates, embedder, index, assemblyOpts...)

	var chunkOpts []chunker.Option
	if size := cfg.GetInt(file.KeyChunkSize); size > 0 {
		chunkOpts = append(chunkOpts, chunker.WithChunkSize(size))
	}
	if overlap := cfg.GetInt(file.KeyChunkOverlap); overlap > 0 {
		chunkOpts = append(chunkOpts, chunker.WithOverlap(overlap))
	}
	loader := filesystem.New(dir(file.KeyDocsDir, "docs"))
	indexer := services.NewIndexService(loader, chunker.New(chunkOpts...), embedder, index)

	cli.Configure(assembly, indexer, registry)
	return nil
}

// buildEmbedder constructs the configured embedding provider. Returns
// nil when no API key is available; generation then runs template-only
// and indexing fails with a clear error.
func buildEmbedder(cfg *file.ConfigStore) driven.EmbeddingService {
	provider := cfg.GetString(file.KeyEmbeddingProvider)
	if provider == "" {
		provider = "gemini"
	}

	keyEnv := cfg.GetString(file.KeyEmbeddingAPIKeyEnv)
	if keyEnv == "" {
		switch provider {
		case "openai":
			keyEnv = "OPENAI_API_KEY"
		default:
			keyEnv = "GEMINI_API_KEY"
		}
	}

	apiKey := os.Getenv(keyEnv)
	if apiKey == "" {
		logger.Warn("%s is not set; generating without documentation retrieval", keyEnv)
		return nil
	}

	timeout := time.Duration(cfg.GetInt(file.KeyEmbeddingTimeout)) * time.Second
	model := cfg.GetString(file.KeyEmbeddingModel)

	switch provider {
	case "openai":
		svc, err := openai.NewEmbeddingService(openai.Config{
			APIKey:  apiKey,
			Model:   model,
			Timeout: timeout,
		})
		if err != nil {
			logger.Warn("openai embedding unavailable: %v", err)
			return nil
		}
		return svc
	case "gemini":
		svc, err := gemini.NewEmbeddingService(gemini.Config{
			APIKey:  apiKey,
			Model:   model,
			Timeout: timeout,
		})
		if err != nil {
			logger.Warn("gemini embedding unavailable: %v", err)
			return nil
		}
		return svc
	default:
		logger.Warn("unknown embedding provider %q, retrieval disabled", provider)
		return nil
	}
}
